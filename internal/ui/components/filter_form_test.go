package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
)

func newTestForm() *FilterForm {
	return NewFilterForm(
		theme.DefaultTheme(),
		[]string{"Unipolar", "Valla"},
		[]string{"Miraflores", "Surco"},
		[]string{"Digital", "Estática"},
		[]string{"Callao", "Lima"},
	)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestFilterForm_OpenSeedsDraftFromApplied(t *testing.T) {
	form := newTestForm()
	applied := models.Criteria{Code: "LIM", District: "Surco"}

	form.Open(applied)

	if form.Draft() != applied {
		t.Errorf("draft should equal the applied criteria on open, got %+v", form.Draft())
	}
}

func TestFilterForm_EditingDraftDoesNotLeak(t *testing.T) {
	form := newTestForm()
	applied := models.Criteria{District: "Surco"}
	form.Open(applied)

	// Type into the code field
	form, _ = form.Update(keyMsg("lim"))

	if form.Draft().Code != "lim" {
		t.Errorf("draft code should track typed input, got %q", form.Draft().Code)
	}
	// The caller's applied criteria is a value copy and must be untouched
	if applied.Code != "" {
		t.Error("editing the draft must not leak into the applied criteria")
	}
}

func TestFilterForm_ConfirmEmitsDraft(t *testing.T) {
	form := newTestForm()
	form.Open(models.EmptyCriteria())

	form, _ = form.Update(keyMsg("cal"))
	form, cmd := form.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	msg, ok := cmd().(ApplyFilterMsg)
	if !ok {
		t.Fatalf("expected ApplyFilterMsg, got %T", cmd())
	}
	if msg.Criteria.Code != "cal" {
		t.Errorf("confirmed criteria should carry the draft code, got %q", msg.Criteria.Code)
	}
	_ = form
}

func TestFilterForm_ResetIsIdempotentAndStaysOpen(t *testing.T) {
	form := newTestForm()
	form.Open(models.Criteria{Code: "LIM", District: "Surco", Type: "Digital"})

	form, cmd := form.Update(keyMsg("ctrl+r"))
	if cmd != nil {
		t.Error("reset must not emit an apply or close message")
	}
	if !form.Draft().IsEmpty() {
		t.Errorf("reset should force the empty sentinel, got %+v", form.Draft())
	}

	// Resetting again changes nothing
	form, _ = form.Update(keyMsg("ctrl+r"))
	if !form.Draft().IsEmpty() {
		t.Error("reset must be idempotent")
	}
}

func TestFilterForm_EscCloses(t *testing.T) {
	form := newTestForm()
	form.Open(models.EmptyCriteria())

	_, cmd := form.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(CloseFilterFormMsg); !ok {
		t.Fatalf("expected CloseFilterFormMsg, got %T", cmd())
	}
}

func TestFilterForm_SelectorCyclesOptions(t *testing.T) {
	form := newTestForm()
	form.Open(models.EmptyCriteria())

	// Move to the department selector (field 1)
	form, _ = form.Update(keyMsg("down"))

	form, _ = form.Update(keyMsg("right"))
	if form.Draft().Department != "Callao" {
		t.Errorf("first option should be 'Callao', got %q", form.Draft().Department)
	}

	form, _ = form.Update(keyMsg("right"))
	if form.Draft().Department != "Lima" {
		t.Errorf("second option should be 'Lima', got %q", form.Draft().Department)
	}

	// One more wraps back to no constraint
	form, _ = form.Update(keyMsg("right"))
	if form.Draft().Department != "" {
		t.Errorf("cycling past the last option should clear the constraint, got %q", form.Draft().Department)
	}

	// Cycling backwards from empty lands on the last option
	form, _ = form.Update(keyMsg("left"))
	if form.Draft().Department != "Lima" {
		t.Errorf("cycling left from empty should select 'Lima', got %q", form.Draft().Department)
	}
}

func TestFilterForm_ReopenPreservesLastApplied(t *testing.T) {
	form := newTestForm()

	// First session: type a code, confirm
	form.Open(models.EmptyCriteria())
	form, _ = form.Update(keyMsg("lim"))
	form, cmd := form.Update(keyMsg("enter"))
	applied := cmd().(ApplyFilterMsg).Criteria

	// Second session opens with the applied selection, not empty
	form.Open(applied)
	if form.Draft().Code != "lim" {
		t.Errorf("re-opened form should show the applied code, got %q", form.Draft().Code)
	}
}
