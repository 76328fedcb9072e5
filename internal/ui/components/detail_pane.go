package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
	"github.com/mattn/go-runewidth"
)

// DetailPane is a stateless projection of one selected record. With no
// selection it renders nothing; selecting another record simply
// replaces the projection.
type DetailPane struct {
	Width     int
	MaxHeight int
	Theme     theme.Theme

	record *models.Billboard

	// Scrolling
	scrollY      int
	contentLines []string

	style lipgloss.Style
}

// NewDetailPane creates a new detail pane
func NewDetailPane(th theme.Theme) *DetailPane {
	return &DetailPane{
		Width:     80,
		MaxHeight: 14,
		Theme:     th,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
	}
}

// SetRecord selects a record for projection; nil closes the pane.
func (p *DetailPane) SetRecord(b *models.Billboard) {
	p.record = b
	p.scrollY = 0
	p.contentLines = nil
}

// Visible reports whether a record is selected
func (p *DetailPane) Visible() bool {
	return p.record != nil
}

// Close clears the selection
func (p *DetailPane) Close() {
	p.record = nil
	p.contentLines = nil
}

// Height returns the rendered height, 0 when closed
func (p *DetailPane) Height() int {
	if !p.Visible() {
		return 0
	}
	return p.MaxHeight
}

// lines builds the field projection for the selected record
func (p *DetailPane) lines() []string {
	b := p.record

	mapLine := "Sin ubicación disponible"
	if b.HasLocation() {
		mapLine = b.MapURL()
	}

	imageLine := "Sin imagen disponible"
	if b.ImageURL != "" {
		imageLine = b.ImageURL
	}

	observation := b.Observation
	if observation == "" {
		observation = "-"
	}

	return []string{
		fmt.Sprintf("Código:       %s", b.Code),
		fmt.Sprintf("Elemento:     %s · Cara %s · %s (%s)", b.Element, b.Face, b.Format, b.Size),
		fmt.Sprintf("Dimensiones:  %s x %s", b.Width, b.Height),
		fmt.Sprintf("Tipo:         %s", b.Type),
		fmt.Sprintf("Zona:         %s", b.ZoneLabel()),
		fmt.Sprintf("Dir. comercial: %s", b.CommercialAddress),
		fmt.Sprintf("Dir. legal:     %s", b.LegalAddress),
		fmt.Sprintf("Distrito:     %s, %s", b.District, b.Department),
		fmt.Sprintf("Audiencia:    %s", p.audienceLine()),
		fmt.Sprintf("Mapa:         %s", mapLine),
		fmt.Sprintf("Imagen:       %s", imageLine),
		fmt.Sprintf("Observación:  %s", observation),
	}
}

func (p *DetailPane) audienceLine() string {
	if p.record.Audience <= 0 {
		return "No disponible"
	}
	return p.record.AudienceLabel() + " impresiones diarias"
}

// formatContent wraps the projection to the pane width
func (p *DetailPane) formatContent() {
	contentWidth := p.Width - p.style.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}

	var wrapped []string
	for _, line := range p.lines() {
		wrapped = append(wrapped, wrapText(line, contentWidth)...)
	}
	p.contentLines = wrapped
}

// wrapText wraps text to fit within maxWidth, rune-width aware
func wrapText(text string, maxWidth int) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= maxWidth {
			result = append(result, line)
			continue
		}

		current := ""
		currentWidth := 0
		for _, r := range line {
			rWidth := runewidth.RuneWidth(r)
			if currentWidth+rWidth > maxWidth {
				result = append(result, current)
				current = string(r)
				currentWidth = rWidth
			} else {
				current += string(r)
				currentWidth += rWidth
			}
		}
		if current != "" {
			result = append(result, current)
		}
	}
	return result
}

// ScrollUp scrolls content up
func (p *DetailPane) ScrollUp() {
	if p.scrollY > 0 {
		p.scrollY--
	}
}

// ScrollDown scrolls content down
func (p *DetailPane) ScrollDown() {
	maxContentLines := p.MaxHeight - p.style.GetVerticalFrameSize() - 2
	if maxContentLines < 1 {
		maxContentLines = 1
	}
	maxScroll := len(p.contentLines) - maxContentLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.scrollY < maxScroll {
		p.scrollY++
	}
}

// CopyDetails copies the record projection to the clipboard
func (p *DetailPane) CopyDetails() error {
	if !p.Visible() {
		return nil
	}
	return clipboard.WriteAll(strings.Join(p.lines(), "\n"))
}

// View renders the detail pane
func (p *DetailPane) View() string {
	if !p.Visible() {
		return ""
	}

	if p.contentLines == nil {
		p.formatContent()
	}

	contentWidth := p.Width - p.style.GetHorizontalFrameSize()
	maxContentHeight := p.MaxHeight - p.style.GetVerticalFrameSize()
	if maxContentHeight < 1 {
		maxContentHeight = 1
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(p.Theme.Info).
		Bold(true)
	header := titleStyle.Render("Detalle: " + p.record.Code)
	if runewidth.StringWidth(header) > contentWidth-4 {
		header = runewidth.Truncate(header, contentWidth-4, "...")
	}

	startLine := p.scrollY
	endLine := startLine + maxContentHeight - 2 // header and footer
	if endLine > len(p.contentLines) {
		endLine = len(p.contentLines)
	}

	contentParts := []string{header}
	contentStyle := lipgloss.NewStyle().Foreground(p.Theme.Foreground)
	for i := startLine; i < endLine; i++ {
		line := p.contentLines[i]
		if runewidth.StringWidth(line) > contentWidth {
			line = runewidth.Truncate(line, contentWidth, "...")
		}
		contentParts = append(contentParts, contentStyle.Render(line))
	}

	helpText := "↑↓ desplazar │ y copiar │ Esc cerrar"
	helpStyle := lipgloss.NewStyle().
		Foreground(p.Theme.Metadata).
		Italic(true)

	footerPadding := contentWidth - runewidth.StringWidth(helpText)
	if footerPadding < 0 {
		footerPadding = 0
	}
	contentParts = append(contentParts, strings.Repeat(" ", footerPadding)+helpStyle.Render(helpText))

	innerHeight := p.MaxHeight - p.style.GetVerticalFrameSize()
	if innerHeight < 3 {
		innerHeight = 3
	}

	containerStyle := p.style.
		Width(p.Width - p.style.GetHorizontalFrameSize()).
		Height(innerHeight).
		MaxHeight(innerHeight)

	return containerStyle.Render(strings.Join(contentParts, "\n"))
}
