package models

// Criteria represents the complete filter state. The empty string on
// any dimension means "no constraint". Two copies exist at runtime:
// the draft being edited in the filter form and the applied criteria
// driving the result view. Criteria is a plain value; copying it with
// assignment is the draft/applied handoff.
type Criteria struct {
	Code       string // substring, case-insensitive
	Element    string // exact or empty
	District   string // exact or empty
	Type       string // exact or empty
	Department string // exact or empty
	Format     string // substring, case-insensitive
	Width      string // substring
	Height     string // substring
}

// EmptyCriteria returns the reset sentinel: no constraint on any dimension.
func EmptyCriteria() Criteria {
	return Criteria{}
}

// IsEmpty reports whether no dimension is constrained.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// ActiveCount returns how many dimensions carry a constraint.
func (c Criteria) ActiveCount() int {
	count := 0
	for _, v := range []string{c.Code, c.Element, c.District, c.Type, c.Department, c.Format, c.Width, c.Height} {
		if v != "" {
			count++
		}
	}
	return count
}
