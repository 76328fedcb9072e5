package filter

import (
	"testing"

	"github.com/jmtoutdoors/vallas/internal/models"
)

func sampleRecords() []models.Billboard {
	return []models.Billboard{
		{ID: "a", Code: "LIM-001", Element: "Unipolar", District: "Miraflores", Type: "Digital", Department: "Lima", Format: "12x5", Width: "12", Height: "5"},
		{ID: "b", Code: "LIM-002", Element: "Minipolar", District: "Surco", Type: "Estática", Department: "Lima", Format: "8x4", Width: "8", Height: "4"},
		{ID: "c", Code: "CAL-010", Element: "Unipolar", District: "Miraflores", Type: "Digital", Department: "Callao", Format: "10x5", Width: "10", Height: "5"},
	}
}

func TestMatches_EmptyCriteriaMatchesEverything(t *testing.T) {
	for _, b := range sampleRecords() {
		if !Matches(b, models.EmptyCriteria()) {
			t.Errorf("empty criteria should match record %s", b.ID)
		}
	}
	// Even a zero-value record matches the identity filter
	if !Matches(models.Billboard{}, models.EmptyCriteria()) {
		t.Error("empty criteria should match the zero record")
	}
}

func TestMatches_CodeIsCaseInsensitiveSubstring(t *testing.T) {
	b := models.Billboard{Code: "LIM-001"}

	cases := []struct {
		pattern string
		want    bool
	}{
		{"lim", true},
		{"LIM", true},
		{"im-0", true},
		{"LIM-001", true},
		{"cal", false},
	}
	for _, tc := range cases {
		got := Matches(b, models.Criteria{Code: tc.pattern})
		if got != tc.want {
			t.Errorf("code pattern %q: expected %v, got %v", tc.pattern, tc.want, got)
		}
	}
}

func TestMatches_ExactDimensionsRejectSubstrings(t *testing.T) {
	b := models.Billboard{District: "Miraflores", Element: "Unipolar", Type: "Digital", Department: "Lima"}

	if Matches(b, models.Criteria{District: "Mira"}) {
		t.Error("district must match exactly, substring should not match")
	}
	if !Matches(b, models.Criteria{District: "Miraflores"}) {
		t.Error("exact district should match")
	}
	if Matches(b, models.Criteria{District: "miraflores"}) {
		t.Error("exact dimensions are case-sensitive")
	}
	if Matches(b, models.Criteria{Element: "Uni"}) {
		t.Error("element must match exactly")
	}
	if Matches(b, models.Criteria{Type: "Digi"}) {
		t.Error("type must match exactly")
	}
	if Matches(b, models.Criteria{Department: "Li"}) {
		t.Error("department must match exactly")
	}
}

func TestMatches_WidthHeightAreSubstrings(t *testing.T) {
	b := models.Billboard{Width: "12", Height: "5"}

	if !Matches(b, models.Criteria{Width: "2"}) {
		t.Error("width '2' should match record width '12' as substring")
	}
	if !Matches(b, models.Criteria{Height: "5"}) {
		t.Error("height '5' should match")
	}
	if Matches(b, models.Criteria{Width: "3"}) {
		t.Error("width '3' should not match '12'")
	}
}

func TestMatches_AndComposition(t *testing.T) {
	b := models.Billboard{Code: "LIM-001", District: "Miraflores", Type: "Digital"}

	// All dimensions match
	if !Matches(b, models.Criteria{Code: "lim", District: "Miraflores", Type: "Digital"}) {
		t.Error("record satisfying every dimension should match")
	}

	// One failing dimension poisons the whole predicate
	if Matches(b, models.Criteria{Code: "lim", District: "Surco", Type: "Digital"}) {
		t.Error("a single failing dimension must reject the record")
	}
	if Matches(b, models.Criteria{Code: "xyz", District: "Miraflores"}) {
		t.Error("failing code must reject the record regardless of district")
	}
}

func TestMatches_MalformedRecordDegrades(t *testing.T) {
	// A zero-value record: substring dims see empty strings, exact dims
	// see non-matching values. Must not panic either way.
	var b models.Billboard

	if Matches(b, models.Criteria{District: "Miraflores"}) {
		t.Error("missing exact field should be a non-match")
	}
	if Matches(b, models.Criteria{Code: "lim"}) {
		t.Error("missing substring field should be a non-match for a non-empty pattern")
	}
}

func TestApply_PreservesStoreOrder(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, models.Criteria{District: "Miraflores"})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected [a c], got %v", ids(got))
	}

	// Stacking type on top keeps the same subset
	got = Apply(records, models.Criteria{District: "Miraflores", Type: "Digital"})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected [a c], got %v", ids(got))
	}

	got = Apply(records, models.Criteria{Code: "CAL"})
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected [c], got %v", ids(got))
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	records := sampleRecords()
	c := models.Criteria{Type: "Digital"}

	first := Apply(records, c)
	second := Apply(records, c)

	if len(first) != len(second) {
		t.Fatalf("repeated application changed result size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs between applications: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	// Input must be untouched
	if records[0].ID != "a" || records[1].ID != "b" || records[2].ID != "c" {
		t.Error("Apply must not reorder its input")
	}
}

func TestApply_EmptyCriteriaReturnsAll(t *testing.T) {
	records := sampleRecords()
	got := Apply(records, models.EmptyCriteria())
	if len(got) != len(records) {
		t.Fatalf("identity filter should return all %d records, got %d", len(records), len(got))
	}
}

func ids(records []models.Billboard) []string {
	out := make([]string, len(records))
	for i, b := range records {
		out[i] = b.ID
	}
	return out
}
