package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
)

// ErrorOverlay displays a dismissible error dialog centered on screen
type ErrorOverlay struct {
	Title   string
	Message string
	Theme   theme.Theme
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Theme: th}
}

// SetError sets the error to display
func (e *ErrorOverlay) SetError(title, message string) {
	e.Title = title
	e.Message = message
}

// View renders the error dialog
func (e *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Error).
		Bold(true).
		Padding(0, 1)

	messageStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Foreground).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().
		Foreground(e.Theme.Metadata).
		Italic(true).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("✗ " + e.Title))
	b.WriteString("\n\n")
	b.WriteString(messageStyle.Render(e.Message))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Esc/Enter para cerrar"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(e.Theme.Error).
		Padding(1, 2).
		Width(60)

	return boxStyle.Render(b.String())
}
