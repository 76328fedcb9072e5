package models

import "testing"

func TestEmptyCriteria(t *testing.T) {
	c := EmptyCriteria()
	if !c.IsEmpty() {
		t.Error("EmptyCriteria should report IsEmpty")
	}
	if c.ActiveCount() != 0 {
		t.Errorf("empty criteria should have 0 active dimensions, got %d", c.ActiveCount())
	}
}

func TestActiveCount(t *testing.T) {
	c := Criteria{Code: "lim", District: "Miraflores", Type: "Digital"}
	if c.ActiveCount() != 3 {
		t.Errorf("expected 3 active dimensions, got %d", c.ActiveCount())
	}
	if c.IsEmpty() {
		t.Error("constrained criteria should not report IsEmpty")
	}

	all := Criteria{
		Code: "a", Element: "b", District: "c", Type: "d",
		Department: "e", Format: "f", Width: "g", Height: "h",
	}
	if all.ActiveCount() != 8 {
		t.Errorf("expected 8 active dimensions, got %d", all.ActiveCount())
	}
}

func TestCriteriaCopySemantics(t *testing.T) {
	applied := Criteria{District: "Surco"}
	draft := applied

	// Editing the draft never leaks into the applied copy
	draft.Code = "LIM"
	draft.District = "Miraflores"

	if applied.Code != "" || applied.District != "Surco" {
		t.Error("editing a draft copy must not mutate the applied criteria")
	}

	// Reset restores the sentinel regardless of prior draft state
	draft = EmptyCriteria()
	if !draft.IsEmpty() {
		t.Error("reset draft should equal the empty sentinel")
	}
}
