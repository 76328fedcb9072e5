package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"f", "Open filter form"},
		{"a", "Analyze subset with AI"},
		{"x", "Hide analysis panel"},
	}
}

// GetNavigationKeys returns navigation key bindings
func GetNavigationKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"Ctrl+U/Ctrl+D", "Page up / page down"},
		{"Enter", "Open detail inspector"},
		{"Esc", "Close detail inspector"},
	}
}

// GetRecordKeys returns per-record key bindings
func GetRecordKeys() []KeyBinding {
	return []KeyBinding{
		{"y", "Copy record details / analysis"},
		{"b", "Toggle bookmark on selected record"},
		{"e", "Export subset to CSV"},
		{"Shift+E", "Export subset to JSON"},
	}
}

// GetFilterFormKeys returns filter form key bindings
func GetFilterFormKeys() []KeyBinding {
	return []KeyBinding{
		{"↑↓ / Tab", "Move between fields"},
		{"←→", "Cycle selector options"},
		{"Ctrl+R", "Reset draft to empty"},
		{"Enter", "Confirm and apply"},
		{"Esc", "Close, discard draft"},
	}
}

// Render creates the help view
func Render(width, height int, theme lipgloss.Style) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	writeSection := func(b *strings.Builder, title string, keys []KeyBinding) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, kb := range keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("vallas - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	writeSection(&b, "Global", GetGlobalKeys())
	writeSection(&b, "Navigation", GetNavigationKeys())
	writeSection(&b, "Records", GetRecordKeys())
	writeSection(&b, "Filter Form", GetFilterFormKeys())

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
