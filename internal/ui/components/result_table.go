package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
	"github.com/mattn/go-runewidth"
)

var resultColumns = []string{"Código", "Elemento", "Formato", "Ubicación", "Tipo", "Medida", "Audiencia", "Zona"}

// ResultTable renders the filtered subset with a selectable row.
// Records arrive in store order and are never re-sorted here.
type ResultTable struct {
	Records    []models.Billboard
	StoreTotal int
	Width      int
	Height     int
	Theme      theme.Theme

	// Scrolling state
	TopRow      int
	VisibleRows int
	SelectedRow int

	columnWidths []int
}

// NewResultTable creates a new result table
func NewResultTable(th theme.Theme) *ResultTable {
	return &ResultTable{Theme: th}
}

// SetRecords replaces the displayed subset. Selection resets to the
// top because row indexes from the previous subset are meaningless.
func (rt *ResultTable) SetRecords(records []models.Billboard, storeTotal int) {
	rt.Records = records
	rt.StoreTotal = storeTotal
	rt.SelectedRow = 0
	rt.TopRow = 0
	rt.calculateColumnWidths()
}

// Selected returns the currently selected record, or nil when the
// subset is empty.
func (rt *ResultTable) Selected() *models.Billboard {
	if rt.SelectedRow < 0 || rt.SelectedRow >= len(rt.Records) {
		return nil
	}
	b := rt.Records[rt.SelectedRow]
	return &b
}

func (rt *ResultTable) rowCells(b models.Billboard) []string {
	location := b.CommercialAddress
	if b.District != "" {
		location = fmt.Sprintf("%s (%s)", b.CommercialAddress, b.District)
	}
	return []string{
		b.Code,
		fmt.Sprintf("%s · Cara %s", b.Element, b.Face),
		b.Format,
		location,
		b.Type,
		b.Size,
		b.AudienceLabel(),
		b.ZoneLabel(),
	}
}

func (rt *ResultTable) calculateColumnWidths() {
	rt.columnWidths = make([]int, len(resultColumns))
	for i, col := range resultColumns {
		rt.columnWidths[i] = runewidth.StringWidth(col)
	}

	for _, b := range rt.Records {
		for i, cell := range rt.rowCells(b) {
			if w := runewidth.StringWidth(cell); w > rt.columnWidths[i] {
				rt.columnWidths[i] = w
			}
		}
	}

	// Clamp to keep wide addresses from eating the table
	const maxWidth = 38
	for i := range rt.columnWidths {
		if rt.columnWidths[i] > maxWidth {
			rt.columnWidths[i] = maxWidth
		}
		if rt.columnWidths[i] < 4 {
			rt.columnWidths[i] = 4
		}
	}
}

// View renders the table
func (rt *ResultTable) View() string {
	if len(rt.Records) == 0 {
		empty := "No se encontraron resultados.\n\nNo hay vallas que coincidan con los filtros seleccionados.\nPrueba [f] para ajustar o limpiar los filtros."
		return lipgloss.NewStyle().
			Foreground(rt.Theme.Metadata).
			Width(rt.Width).
			Height(rt.Height).
			Padding(1, 2).
			Render(empty)
	}

	var b strings.Builder

	b.WriteString(rt.renderHeader())
	b.WriteString("\n")
	b.WriteString(rt.renderSeparator())
	b.WriteString("\n")

	rt.VisibleRows = rt.Height - 3 // header + separator + status
	if rt.VisibleRows < 1 {
		rt.VisibleRows = 1
	}

	endRow := rt.TopRow + rt.VisibleRows
	if endRow > len(rt.Records) {
		endRow = len(rt.Records)
	}

	for i := rt.TopRow; i < endRow; i++ {
		b.WriteString(rt.renderRow(rt.Records[i], i == rt.SelectedRow))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(rt.renderStatus())

	return lipgloss.NewStyle().Width(rt.Width).Height(rt.Height).Render(b.String())
}

func (rt *ResultTable) renderHeader() string {
	var parts []string
	for i, col := range resultColumns {
		parts = append(parts, rt.pad(col, rt.columnWidths[i]))
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(rt.Theme.TableHeader)
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (rt *ResultTable) renderSeparator() string {
	var parts []string
	for _, width := range rt.columnWidths {
		parts = append(parts, strings.Repeat("─", width))
	}
	return lipgloss.NewStyle().
		Foreground(rt.Theme.Border).
		Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (rt *ResultTable) renderRow(record models.Billboard, selected bool) string {
	cells := rt.rowCells(record)
	var parts []string
	for i, cell := range cells {
		parts = append(parts, rt.pad(cell, rt.columnWidths[i]))
	}

	line := " " + strings.Join(parts, " │ ") + " "

	if selected {
		return lipgloss.NewStyle().
			Background(rt.Theme.TableRowSelected).
			Foreground(rt.Theme.Foreground).
			Bold(true).
			Render(line)
	}

	if record.IsDigital() {
		return lipgloss.NewStyle().Foreground(rt.Theme.BadgeDigital).Render(line)
	}
	return line
}

func (rt *ResultTable) renderStatus() string {
	showing := fmt.Sprintf(" Mostrando %d de %d registros", len(rt.Records), rt.StoreTotal)
	return lipgloss.NewStyle().
		Foreground(rt.Theme.Metadata).
		Italic(true).
		Render(showing)
}

func (rt *ResultTable) pad(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}

// MoveSelection moves the selection up or down
func (rt *ResultTable) MoveSelection(delta int) {
	rt.SelectedRow += delta

	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}
	if rt.SelectedRow >= len(rt.Records) {
		rt.SelectedRow = len(rt.Records) - 1
	}
	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}

	// Keep selection inside the visible window
	if rt.SelectedRow < rt.TopRow {
		rt.TopRow = rt.SelectedRow
	}
	if rt.VisibleRows > 0 && rt.SelectedRow >= rt.TopRow+rt.VisibleRows {
		rt.TopRow = rt.SelectedRow - rt.VisibleRows + 1
	}
}

// PageUp moves the selection one page up
func (rt *ResultTable) PageUp() {
	rt.SelectedRow -= rt.VisibleRows
	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}
	rt.TopRow = rt.SelectedRow
}

// PageDown moves the selection one page down
func (rt *ResultTable) PageDown() {
	rt.SelectedRow += rt.VisibleRows
	if rt.SelectedRow >= len(rt.Records) {
		rt.SelectedRow = len(rt.Records) - 1
	}
	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}
	rt.TopRow = rt.SelectedRow
	if rt.TopRow+rt.VisibleRows > len(rt.Records) {
		rt.TopRow = len(rt.Records) - rt.VisibleRows
		if rt.TopRow < 0 {
			rt.TopRow = 0
		}
	}
}
