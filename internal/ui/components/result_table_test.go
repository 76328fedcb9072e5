package components

import (
	"testing"

	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
)

func tableRecords() []models.Billboard {
	return []models.Billboard{
		{ID: "a", Code: "LIM-001", District: "Miraflores"},
		{ID: "b", Code: "LIM-002", District: "Surco"},
		{ID: "c", Code: "CAL-010", District: "La Punta"},
	}
}

func TestResultTable_SelectionBounds(t *testing.T) {
	rt := NewResultTable(theme.DefaultTheme())
	rt.SetRecords(tableRecords(), 24)
	rt.VisibleRows = 10

	rt.MoveSelection(-5)
	if rt.SelectedRow != 0 {
		t.Errorf("selection must clamp at 0, got %d", rt.SelectedRow)
	}

	rt.MoveSelection(99)
	if rt.SelectedRow != 2 {
		t.Errorf("selection must clamp at last row, got %d", rt.SelectedRow)
	}
}

func TestResultTable_SelectedRecord(t *testing.T) {
	rt := NewResultTable(theme.DefaultTheme())
	rt.SetRecords(tableRecords(), 24)
	rt.VisibleRows = 10

	rt.MoveSelection(1)
	got := rt.Selected()
	if got == nil || got.ID != "b" {
		t.Fatalf("expected record b selected, got %+v", got)
	}
}

func TestResultTable_EmptySubset(t *testing.T) {
	rt := NewResultTable(theme.DefaultTheme())
	rt.SetRecords(nil, 24)

	if rt.Selected() != nil {
		t.Error("empty subset has no selected record")
	}

	rt.MoveSelection(1) // must not panic
	if rt.Selected() != nil {
		t.Error("moving selection on an empty subset should stay nil")
	}
}

func TestResultTable_SetRecordsResetsSelection(t *testing.T) {
	rt := NewResultTable(theme.DefaultTheme())
	rt.SetRecords(tableRecords(), 24)
	rt.VisibleRows = 10
	rt.MoveSelection(2)

	// A new subset invalidates old row indexes
	rt.SetRecords(tableRecords()[:1], 24)
	if rt.SelectedRow != 0 {
		t.Errorf("selection should reset on new records, got %d", rt.SelectedRow)
	}
	if got := rt.Selected(); got == nil || got.ID != "a" {
		t.Errorf("expected record a selected after reset, got %+v", got)
	}
}
