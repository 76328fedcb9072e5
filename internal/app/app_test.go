package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmtoutdoors/vallas/internal/analysis"
	"github.com/jmtoutdoors/vallas/internal/config"
	"github.com/jmtoutdoors/vallas/internal/inventory"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/components"
)

func newTestApp() *App {
	store := inventory.NewStore([]models.Billboard{
		{ID: "1", Code: "LIM-001", District: "Miraflores", Department: "Lima", Type: "Digital"},
		{ID: "2", Code: "LIM-002", District: "Surco", Department: "Lima", Type: "Estática"},
		{ID: "3", Code: "CAL-001", District: "La Punta", Department: "Callao", Type: "Estática"},
	})
	requester := analysis.NewRequester("", "gemini-2.5-flash")
	return New(config.GetDefaults(), store, requester, nil, nil)
}

func TestApp_ApplyFilterRecomputesSubset(t *testing.T) {
	a := newTestApp()

	if len(a.Subset()) != 3 {
		t.Fatalf("initial subset should be the whole store, got %d", len(a.Subset()))
	}

	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Department: "Lima"}})

	if len(a.Subset()) != 2 {
		t.Fatalf("expected 2 records after filtering, got %d", len(a.Subset()))
	}
	if a.Subset()[0].Code != "LIM-001" || a.Subset()[1].Code != "LIM-002" {
		t.Errorf("subset must preserve store order, got %v", a.Subset())
	}
	if a.Applied().Department != "Lima" {
		t.Errorf("applied criteria not committed, got %+v", a.Applied())
	}
}

func TestApp_ApplyFilterInvalidatesAnalysis(t *testing.T) {
	a := newTestApp()

	// Land an analysis result
	id := a.analysisState.Begin()
	a.Update(AnalysisCompleteMsg{RequestID: id, Text: "resumen"})
	if _, ok := a.analysisState.Result(); !ok {
		t.Fatal("analysis result should be displayed")
	}

	// Applying new criteria discards it, even when nothing matches
	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Code: "zzz"}})

	if _, ok := a.analysisState.Result(); ok {
		t.Error("applying criteria must invalidate the analysis")
	}
	if a.analysisPanel.Visible() {
		t.Error("analysis panel should be hidden after invalidation")
	}
}

func TestApp_StaleAnalysisResponseDropped(t *testing.T) {
	a := newTestApp()

	id := a.analysisState.Begin()

	// Criteria change before the response lands
	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Department: "Callao"}})

	a.Update(AnalysisCompleteMsg{RequestID: id, Text: "tardío"})

	if _, ok := a.analysisState.Result(); ok {
		t.Error("a response for a superseded subset must be discarded")
	}
	if a.analysisPanel.Visible() {
		t.Error("stale response must not surface in the panel")
	}
}

func TestApp_CloseFilterFormDiscardsDraft(t *testing.T) {
	a := newTestApp()
	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Department: "Lima"}})

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if !a.showFilterForm {
		t.Fatal("f should open the filter form")
	}

	a.Update(components.CloseFilterFormMsg{})

	if a.showFilterForm {
		t.Error("close message should hide the form")
	}
	if a.Applied().Department != "Lima" {
		t.Errorf("closing the form must not touch applied criteria, got %+v", a.Applied())
	}
	if len(a.Subset()) != 2 {
		t.Errorf("subset must survive a discarded draft, got %d records", len(a.Subset()))
	}
}

func TestApp_DetailOpensAndCloses(t *testing.T) {
	a := newTestApp()

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !a.detailPane.Visible() {
		t.Fatal("enter should open the detail pane on the selected record")
	}

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if a.detailPane.Visible() {
		t.Error("esc should close the detail pane")
	}
}

func TestApp_EmptySubsetHasNoDetail(t *testing.T) {
	a := newTestApp()
	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Code: "zzz"}})

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if a.detailPane.Visible() {
		t.Error("enter on an empty subset should not open a detail pane")
	}
}

func TestApp_ResultTitleReflectsActiveFilters(t *testing.T) {
	a := newTestApp()

	title := a.renderResultTitle()
	if title != "Inventario de Vallas · 3 ubicaciones encontradas" {
		t.Errorf("unfiltered title should omit the filter count, got %q", title)
	}

	a.Update(components.ApplyFilterMsg{Criteria: models.Criteria{Department: "Lima", Type: "Digital"}})
	title = a.renderResultTitle()
	want := "Inventario de Vallas · 1 ubicaciones encontradas · 2 filtros activos"
	if title != want {
		t.Errorf("filtered title = %q, want %q", title, want)
	}
}

func TestApp_CriteriaSummary(t *testing.T) {
	if got := criteriaSummary(models.EmptyCriteria()); got != "sin filtros" {
		t.Errorf("empty criteria summary = %q", got)
	}

	got := criteriaSummary(models.Criteria{Code: "lim", District: "Surco"})
	if got != "codigo=lim distrito=Surco" {
		t.Errorf("summary = %q", got)
	}
}
