package components

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
	"github.com/mattn/go-runewidth"
)

// AnalysisPanel displays the AI-generated summary of the current
// subset, or a progress indicator while a request is in flight.
type AnalysisPanel struct {
	Width     int
	MaxHeight int
	Theme     theme.Theme

	text      string
	analyzing bool

	scrollY      int
	contentLines []string

	style lipgloss.Style
}

// NewAnalysisPanel creates a new analysis panel
func NewAnalysisPanel(th theme.Theme) *AnalysisPanel {
	return &AnalysisPanel{
		Width:     80,
		MaxHeight: 12,
		Theme:     th,
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Info).
			Padding(0, 1),
	}
}

// SetText stores result text for display
func (a *AnalysisPanel) SetText(text string) {
	a.text = text
	a.analyzing = false
	a.scrollY = 0
	a.contentLines = nil
}

// SetAnalyzing toggles the in-progress indicator
func (a *AnalysisPanel) SetAnalyzing(analyzing bool) {
	a.analyzing = analyzing
	if analyzing {
		a.text = ""
		a.contentLines = nil
		a.scrollY = 0
	}
}

// Clear drops any displayed analysis
func (a *AnalysisPanel) Clear() {
	a.text = ""
	a.analyzing = false
	a.contentLines = nil
	a.scrollY = 0
}

// Visible reports whether the panel has anything to show
func (a *AnalysisPanel) Visible() bool {
	return a.analyzing || a.text != ""
}

// Height returns the rendered height, 0 when hidden
func (a *AnalysisPanel) Height() int {
	if !a.Visible() {
		return 0
	}
	return a.MaxHeight
}

// ScrollUp scrolls content up
func (a *AnalysisPanel) ScrollUp() {
	if a.scrollY > 0 {
		a.scrollY--
	}
}

// ScrollDown scrolls content down
func (a *AnalysisPanel) ScrollDown() {
	maxContentLines := a.MaxHeight - a.style.GetVerticalFrameSize() - 2
	if maxContentLines < 1 {
		maxContentLines = 1
	}
	maxScroll := len(a.contentLines) - maxContentLines
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.scrollY < maxScroll {
		a.scrollY++
	}
}

// CopyText copies the analysis text to the clipboard
func (a *AnalysisPanel) CopyText() error {
	if a.text == "" {
		return nil
	}
	return clipboard.WriteAll(a.text)
}

func (a *AnalysisPanel) formatContent() {
	contentWidth := a.Width - a.style.GetHorizontalFrameSize()
	if contentWidth < 10 {
		contentWidth = 10
	}
	a.contentLines = wrapText(a.text, contentWidth)
}

// View renders the panel
func (a *AnalysisPanel) View() string {
	if !a.Visible() {
		return ""
	}

	contentWidth := a.Width - a.style.GetHorizontalFrameSize()
	maxContentHeight := a.MaxHeight - a.style.GetVerticalFrameSize()
	if maxContentHeight < 1 {
		maxContentHeight = 1
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(a.Theme.Info).
		Bold(true)
	header := titleStyle.Render("✦ Insights de Inteligencia Artificial")

	var contentParts []string
	contentParts = append(contentParts, header)

	if a.analyzing {
		progressStyle := lipgloss.NewStyle().
			Foreground(a.Theme.Warning).
			Italic(true)
		contentParts = append(contentParts, progressStyle.Render("Analizando..."))
	} else {
		if a.contentLines == nil {
			a.formatContent()
		}

		startLine := a.scrollY
		endLine := startLine + maxContentHeight - 2
		if endLine > len(a.contentLines) {
			endLine = len(a.contentLines)
		}

		contentStyle := lipgloss.NewStyle().Foreground(a.Theme.Foreground)
		for i := startLine; i < endLine; i++ {
			line := a.contentLines[i]
			if runewidth.StringWidth(line) > contentWidth {
				line = runewidth.Truncate(line, contentWidth, "...")
			}
			contentParts = append(contentParts, contentStyle.Render(line))
		}

		helpText := "Y copiar │ x ocultar"
		helpStyle := lipgloss.NewStyle().
			Foreground(a.Theme.Metadata).
			Italic(true)
		footerPadding := contentWidth - runewidth.StringWidth(helpText)
		if footerPadding < 0 {
			footerPadding = 0
		}
		contentParts = append(contentParts, strings.Repeat(" ", footerPadding)+helpStyle.Render(helpText))
	}

	innerHeight := a.MaxHeight - a.style.GetVerticalFrameSize()
	if innerHeight < 3 {
		innerHeight = 3
	}

	containerStyle := a.style.
		Width(a.Width - a.style.GetHorizontalFrameSize()).
		Height(innerHeight).
		MaxHeight(innerHeight)

	return containerStyle.Render(strings.Join(contentParts, "\n"))
}
