package analysis

import "github.com/google/uuid"

// State tracks the analysis lifecycle: the in-flight flag, the result
// text and the identity of the outstanding request. It is owned by the
// application model; components never mutate it directly.
//
// Each request carries a snapshot ID minted when it starts. A response
// arriving with a stale ID (the criteria changed meanwhile and
// Invalidate ran) is dropped instead of being displayed against a
// subset it was not computed for.
type State struct {
	text      string
	hasResult bool
	inFlight  bool
	requestID string
}

// InFlight reports whether a request is outstanding. Callers must
// check this before starting another request; the requester itself
// does not queue or reject overlapping calls.
func (s *State) InFlight() bool {
	return s.inFlight
}

// Result returns the displayable analysis text and whether one exists.
func (s *State) Result() (string, bool) {
	return s.text, s.hasResult
}

// Begin marks a new request as outstanding and returns its snapshot
// ID. Any previous result is cleared so stale text is never shown
// while the new request runs.
func (s *State) Begin() string {
	s.requestID = uuid.NewString()
	s.inFlight = true
	s.text = ""
	s.hasResult = false
	return s.requestID
}

// Complete records the outcome of the request identified by id.
// A mismatched id means the criteria changed while the request was in
// flight; the response is discarded. The in-flight flag is cleared on
// every path.
func (s *State) Complete(id, text string) bool {
	if id != s.requestID || !s.inFlight {
		return false
	}
	s.inFlight = false
	s.text = text
	s.hasResult = true
	return true
}

// Invalidate clears any result and forgets the outstanding request.
// Called whenever the applied criteria change: analysis text pertains
// to the subset it was computed from and must not survive a new
// selection. The response of a request still in flight will no longer
// match and gets dropped on arrival.
func (s *State) Invalidate() {
	s.requestID = ""
	s.inFlight = false
	s.text = ""
	s.hasResult = false
}
