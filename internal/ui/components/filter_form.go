package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
)

// ApplyFilterMsg is sent when the draft criteria should become the
// applied criteria
type ApplyFilterMsg struct {
	Criteria models.Criteria
}

// CloseFilterFormMsg is sent when the form should close without
// applying; the draft is discarded
type CloseFilterFormMsg struct{}

// Form field kinds: free text dimensions get a text input, closed
// dimensions cycle through the options the inventory actually contains.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
)

type formField struct {
	label       string
	kind        fieldKind
	placeholder string
	options     []string // select fields only
}

// FilterForm edits a draft copy of the filter criteria. The draft is
// seeded from the applied criteria on Open and only leaves through
// ApplyFilterMsg on confirm; Esc throws it away.
type FilterForm struct {
	Width  int
	Height int
	Theme  theme.Theme

	fields     []formField
	draft      models.Criteria
	fieldIndex int
	input      textinput.Model
}

// NewFilterForm creates a filter form. The option lists come from the
// record store so the closed dimensions always reflect real values.
func NewFilterForm(th theme.Theme, elements, districts, types, departments []string) *FilterForm {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 28

	return &FilterForm{
		Width:  62,
		Height: 24,
		Theme:  th,
		input:  ti,
		fields: []formField{
			{label: "Código", kind: fieldText, placeholder: "Ej. LIM-001"},
			{label: "Departamento", kind: fieldSelect, options: departments},
			{label: "Distrito", kind: fieldSelect, options: districts},
			{label: "Elemento", kind: fieldSelect, options: elements},
			{label: "Tipo", kind: fieldSelect, options: types},
			{label: "Formato", kind: fieldText, placeholder: "Ej. 12x5"},
			{label: "Ancho", kind: fieldText, placeholder: "Ej. 8"},
			{label: "Alto", kind: fieldText, placeholder: "Ej. 4"},
		},
	}
}

// Open seeds the draft from the applied criteria so re-opening the
// form preserves the last applied selection for refinement.
func (f *FilterForm) Open(applied models.Criteria) {
	f.draft = applied
	f.fieldIndex = 0
	f.syncInput()
}

// Draft returns the current draft criteria (read-only view for tests
// and the status bar).
func (f *FilterForm) Draft() models.Criteria {
	return f.draft
}

// Reset forces the draft back to the empty sentinel. The form stays
// open; nothing is applied.
func (f *FilterForm) Reset() {
	f.draft = models.EmptyCriteria()
	f.syncInput()
}

// dimension accessors keyed by field position
func (f *FilterForm) fieldValue(i int) string {
	switch i {
	case 0:
		return f.draft.Code
	case 1:
		return f.draft.Department
	case 2:
		return f.draft.District
	case 3:
		return f.draft.Element
	case 4:
		return f.draft.Type
	case 5:
		return f.draft.Format
	case 6:
		return f.draft.Width
	default:
		return f.draft.Height
	}
}

func (f *FilterForm) setFieldValue(i int, v string) {
	switch i {
	case 0:
		f.draft.Code = v
	case 1:
		f.draft.Department = v
	case 2:
		f.draft.District = v
	case 3:
		f.draft.Element = v
	case 4:
		f.draft.Type = v
	case 5:
		f.draft.Format = v
	case 6:
		f.draft.Width = v
	default:
		f.draft.Height = v
	}
}

// syncInput points the shared text input at the focused field
func (f *FilterForm) syncInput() {
	field := f.fields[f.fieldIndex]
	if field.kind != fieldText {
		f.input.Blur()
		return
	}
	f.input.Placeholder = field.placeholder
	f.input.SetValue(f.fieldValue(f.fieldIndex))
	f.input.CursorEnd()
	f.input.Focus()
}

// cycleOption advances a select field through "" + its options
func (f *FilterForm) cycleOption(delta int) {
	field := f.fields[f.fieldIndex]
	if field.kind != fieldSelect || len(field.options) == 0 {
		return
	}

	// Position 0 is "Todos" (no constraint)
	current := 0
	for i, opt := range field.options {
		if opt == f.fieldValue(f.fieldIndex) {
			current = i + 1
			break
		}
	}

	total := len(field.options) + 1
	current = (current + delta + total) % total
	if current == 0 {
		f.setFieldValue(f.fieldIndex, "")
	} else {
		f.setFieldValue(f.fieldIndex, field.options[current-1])
	}
}

// Update handles keyboard input while the form is open
func (f *FilterForm) Update(msg tea.KeyMsg) (*FilterForm, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, func() tea.Msg { return CloseFilterFormMsg{} }

	case "enter":
		// Commit the focused text field before confirming
		if f.fields[f.fieldIndex].kind == fieldText {
			f.setFieldValue(f.fieldIndex, f.input.Value())
		}
		criteria := f.draft
		return f, func() tea.Msg { return ApplyFilterMsg{Criteria: criteria} }

	case "ctrl+r":
		f.Reset()
		return f, nil

	case "up", "shift+tab":
		f.commitFocusedText()
		f.fieldIndex--
		if f.fieldIndex < 0 {
			f.fieldIndex = len(f.fields) - 1
		}
		f.syncInput()
		return f, nil

	case "down", "tab":
		f.commitFocusedText()
		f.fieldIndex = (f.fieldIndex + 1) % len(f.fields)
		f.syncInput()
		return f, nil

	case "left":
		f.cycleOption(-1)
		return f, nil

	case "right":
		f.cycleOption(1)
		return f, nil
	}

	// Everything else edits the focused text field
	if f.fields[f.fieldIndex].kind == fieldText {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		f.setFieldValue(f.fieldIndex, f.input.Value())
		return f, cmd
	}
	return f, nil
}

func (f *FilterForm) commitFocusedText() {
	if f.fields[f.fieldIndex].kind == fieldText {
		f.setFieldValue(f.fieldIndex, f.input.Value())
	}
}

// View renders the form
func (f *FilterForm) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(f.Theme.Foreground).
		Background(f.Theme.Info).
		Padding(0, 1).
		Bold(true)

	labelStyle := lipgloss.NewStyle().Width(14)
	focusedLabel := labelStyle.Foreground(f.Theme.BorderFocused).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(f.Theme.Foreground)
	emptyStyle := lipgloss.NewStyle().Foreground(f.Theme.Metadata).Italic(true)

	var sections []string
	sections = append(sections, titleStyle.Render("Filtros"))
	sections = append(sections, "")

	for i, field := range f.fields {
		label := labelStyle.Render(field.label)
		if i == f.fieldIndex {
			label = focusedLabel.Render("▸ " + field.label)
		}

		var value string
		switch {
		case field.kind == fieldText && i == f.fieldIndex:
			value = f.input.View()
		case f.fieldValue(i) == "":
			if field.kind == fieldSelect {
				value = emptyStyle.Render("Todos")
			} else {
				value = emptyStyle.Render(field.placeholder)
			}
		default:
			value = valueStyle.Render(f.fieldValue(i))
		}

		sections = append(sections, fmt.Sprintf("  %s %s", label, value))
	}

	sections = append(sections, "")
	countStyle := lipgloss.NewStyle().Foreground(f.Theme.Metadata)
	sections = append(sections, countStyle.Render(fmt.Sprintf("  %d filtros activos en el borrador", f.draft.ActiveCount())))

	helpStyle := lipgloss.NewStyle().Foreground(f.Theme.Metadata).Italic(true)
	sections = append(sections, helpStyle.Render("  ↑↓ campo │ ←→ opción │ Ctrl+R limpiar │ Enter confirmar │ Esc cerrar"))

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Theme.BorderFocused).
		Width(f.Width).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}
