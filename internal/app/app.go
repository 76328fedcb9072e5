package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmtoutdoors/vallas/internal/analysis"
	"github.com/jmtoutdoors/vallas/internal/config"
	"github.com/jmtoutdoors/vallas/internal/export"
	"github.com/jmtoutdoors/vallas/internal/favorites"
	"github.com/jmtoutdoors/vallas/internal/filter"
	"github.com/jmtoutdoors/vallas/internal/history"
	"github.com/jmtoutdoors/vallas/internal/inventory"
	"github.com/jmtoutdoors/vallas/internal/models"
	"github.com/jmtoutdoors/vallas/internal/ui/components"
	"github.com/jmtoutdoors/vallas/internal/ui/help"
	"github.com/jmtoutdoors/vallas/internal/ui/theme"
)

// App is the main application model. It owns the applied criteria and
// the analysis lifecycle; the filter form owns its own draft copy.
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	store   *inventory.Store
	applied models.Criteria
	subset  []models.Billboard

	requester     *analysis.Requester
	analysisState analysis.State
	analysisPanel *components.AnalysisPanel

	historyStore *history.Store     // nil when history is disabled
	bookmarks    *favorites.Manager // nil when the config dir is unavailable

	resultTable *components.ResultTable
	detailPane  *components.DetailPane

	showFilterForm bool
	filterForm     *components.FilterForm

	showError    bool
	errorOverlay *components.ErrorOverlay

	statusNote string // transient, e.g. export confirmation
}

// AnalysisCompleteMsg is sent when the external summarization call
// finishes, on every path: success, short-circuit or converted error.
type AnalysisCompleteMsg struct {
	RequestID string
	Text      string
}

// ExportDoneMsg is sent when a subset export finishes
type ExportDoneMsg struct {
	Path string
	Err  error
}

// New creates a new App instance
func New(cfg *config.Config, store *inventory.Store, requester *analysis.Requester, historyStore *history.Store, bookmarks *favorites.Manager) *App {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	a := &App{
		state:         state,
		config:        cfg,
		theme:         th,
		store:         store,
		requester:     requester,
		historyStore:  historyStore,
		bookmarks:     bookmarks,
		resultTable:   components.NewResultTable(th),
		detailPane:    components.NewDetailPane(th),
		analysisPanel: components.NewAnalysisPanel(th),
		errorOverlay:  components.NewErrorOverlay(th),
		filterForm: components.NewFilterForm(th,
			store.Elements(), store.Districts(), store.Types(), store.Departments()),
	}

	if cfg != nil && cfg.UI.DetailHeight > 0 {
		a.detailPane.MaxHeight = cfg.UI.DetailHeight
	}

	// Initial subset: identity filter over the whole store
	a.applyCriteria(models.EmptyCriteria())

	return a
}

// Applied returns the currently applied criteria
func (a *App) Applied() models.Criteria {
	return a.applied
}

// Subset returns the current filtered subset
func (a *App) Subset() []models.Billboard {
	return a.subset
}

// applyCriteria commits new criteria, recomputes the subset in store
// order and invalidates any analysis computed for the previous subset.
func (a *App) applyCriteria(c models.Criteria) {
	a.applied = c
	a.subset = filter.Apply(a.store.All(), c)
	a.resultTable.SetRecords(a.subset, a.store.Len())
	a.detailPane.Close()

	a.analysisState.Invalidate()
	a.analysisPanel.Clear()
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case components.ApplyFilterMsg:
		a.showFilterForm = false
		a.applyCriteria(msg.Criteria)
		return a, nil

	case components.CloseFilterFormMsg:
		// Draft edits die with the form; applied criteria untouched
		a.showFilterForm = false
		return a, nil

	case AnalysisCompleteMsg:
		if a.analysisState.Complete(msg.RequestID, msg.Text) {
			a.analysisPanel.SetText(msg.Text)
		}
		// A stale response (criteria changed meanwhile) is dropped;
		// the panel was already cleared by the invalidation.
		return a, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			a.ShowError("Export Failed", msg.Err.Error())
		} else {
			a.statusNote = fmt.Sprintf("Exportado a %s", msg.Path)
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error overlay eats every key except quit
	if a.showError {
		key := msg.String()
		if key == "esc" || key == "enter" {
			a.DismissError()
			return a, nil
		}
		if key == "q" || key == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showFilterForm {
		var cmd tea.Cmd
		a.filterForm, cmd = a.filterForm.Update(msg)
		return a, cmd
	}

	a.statusNote = ""

	switch msg.String() {
	case "q", "ctrl+c":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		return a, tea.Quit

	case "?":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else {
			a.state.ViewMode = models.HelpMode
		}
		return a, nil

	case "esc":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		if a.detailPane.Visible() {
			a.detailPane.Close()
		}
		return a, nil

	case "f":
		a.showFilterForm = true
		a.filterForm.Open(a.applied)
		return a, nil

	case "a":
		// Single-in-flight discipline lives here: the trigger is
		// ignored while a request is outstanding.
		if a.analysisState.InFlight() {
			return a, nil
		}
		return a, a.triggerAnalysis()

	case "x":
		a.analysisPanel.Clear()
		return a, nil

	case "j":
		a.moveSelection(1)
		return a, nil

	case "k":
		a.moveSelection(-1)
		return a, nil

	case "down":
		if a.detailPane.Visible() {
			a.detailPane.ScrollDown()
		} else {
			a.moveSelection(1)
		}
		return a, nil

	case "up":
		if a.detailPane.Visible() {
			a.detailPane.ScrollUp()
		} else {
			a.moveSelection(-1)
		}
		return a, nil

	case "ctrl+u":
		a.resultTable.PageUp()
		a.syncDetail()
		return a, nil

	case "ctrl+d":
		a.resultTable.PageDown()
		a.syncDetail()
		return a, nil

	case "enter":
		if selected := a.resultTable.Selected(); selected != nil {
			a.detailPane.SetRecord(selected)
		}
		return a, nil

	case "y":
		return a, a.copySomething()

	case "b":
		return a, a.toggleBookmark()

	case "e":
		return a, a.exportSubset("csv")

	case "E":
		return a, a.exportSubset("json")
	}

	return a, nil
}

// moveSelection moves the table cursor; an open detail pane follows
// the selection (the projection is simply replaced).
func (a *App) moveSelection(delta int) {
	a.resultTable.MoveSelection(delta)
	a.syncDetail()
}

func (a *App) syncDetail() {
	if a.detailPane.Visible() {
		a.detailPane.SetRecord(a.resultTable.Selected())
	}
}

// triggerAnalysis starts one summarization request over the current
// subset. The snapshot ID minted by Begin travels with the request so
// a response arriving after the criteria changed is discarded.
func (a *App) triggerAnalysis() tea.Cmd {
	id := a.analysisState.Begin()
	a.analysisPanel.SetAnalyzing(true)

	subset := make([]models.Billboard, len(a.subset))
	copy(subset, a.subset)
	summary := criteriaSummary(a.applied)

	timeout := 60 * time.Second
	if a.config != nil && a.config.Analysis.TimeoutSec > 0 {
		timeout = time.Duration(a.config.Analysis.TimeoutSec) * time.Second
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		text := a.requester.RequestAnalysis(ctx, subset)
		elapsed := time.Since(start)

		if a.historyStore != nil {
			_ = a.historyStore.Add(history.Entry{
				CriteriaSummary: summary,
				RecordCount:     len(subset),
				Duration:        elapsed,
				Success:         text != analysis.MsgCallFailed,
				Result:          text,
			})
		}

		return AnalysisCompleteMsg{RequestID: id, Text: text}
	}
}

// criteriaSummary renders the applied criteria for the history log
func criteriaSummary(c models.Criteria) string {
	if c.IsEmpty() {
		return "sin filtros"
	}

	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"="+value)
		}
	}
	add("codigo", c.Code)
	add("elemento", c.Element)
	add("distrito", c.District)
	add("tipo", c.Type)
	add("departamento", c.Department)
	add("formato", c.Format)
	add("ancho", c.Width)
	add("alto", c.Height)
	return strings.Join(parts, " ")
}

func (a *App) copySomething() tea.Cmd {
	if a.detailPane.Visible() {
		if err := a.detailPane.CopyDetails(); err != nil {
			a.ShowError("Clipboard Error", err.Error())
		} else {
			a.statusNote = "Detalle copiado al portapapeles"
		}
		return nil
	}
	if _, ok := a.analysisState.Result(); ok {
		if err := a.analysisPanel.CopyText(); err != nil {
			a.ShowError("Clipboard Error", err.Error())
		} else {
			a.statusNote = "Análisis copiado al portapapeles"
		}
	}
	return nil
}

func (a *App) toggleBookmark() tea.Cmd {
	if a.bookmarks == nil {
		return nil
	}
	selected := a.resultTable.Selected()
	if selected == nil {
		return nil
	}

	added, err := a.bookmarks.Toggle(selected.Code)
	if err != nil {
		a.ShowError("Bookmark Error", err.Error())
		return nil
	}
	if added {
		a.statusNote = fmt.Sprintf("Marcador añadido: %s", selected.Code)
	} else {
		a.statusNote = fmt.Sprintf("Marcador eliminado: %s", selected.Code)
	}
	return nil
}

// exportSubset writes the current subset to a timestamped file in the
// working directory.
func (a *App) exportSubset(format string) tea.Cmd {
	subset := make([]models.Billboard, len(a.subset))
	copy(subset, a.subset)

	name := fmt.Sprintf("vallas-%s.%s", time.Now().Format("20060102-150405"), format)
	path := filepath.Join(".", name)

	return func() tea.Msg {
		var err error
		if format == "json" {
			err = export.ExportToJSON(subset, path)
		} else {
			err = export.ExportToCSV(subset, path)
		}
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.showFilterForm {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.filterForm.View(),
		)
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height, lipgloss.NewStyle())
	}

	return a.renderNormalView()
}

// renderNormalView composes the top bar, optional analysis panel,
// result table, optional detail pane and bottom bar.
func (a *App) renderNormalView() string {
	topBar := a.renderTopBar()
	bottomBar := a.renderBottomBar()

	// Heights: bars take one line each, panes declare their own
	contentHeight := a.state.Height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	a.analysisPanel.Width = a.state.Width
	a.detailPane.Width = a.state.Width

	tableHeight := contentHeight - a.analysisPanel.Height() - a.detailPane.Height() - 2
	if tableHeight < 4 {
		tableHeight = 4
	}

	a.resultTable.Width = a.state.Width - 4
	a.resultTable.Height = tableHeight

	tablePanel := components.Panel{
		Title:   a.renderResultTitle(),
		Content: a.resultTable.View(),
		Width:   a.state.Width - 2,
		Height:  tableHeight,
		Style:   lipgloss.NewStyle().BorderForeground(a.theme.BorderFocused),
	}

	sections := []string{topBar}
	if a.analysisPanel.Visible() {
		sections = append(sections, a.analysisPanel.View())
	}
	sections = append(sections, tablePanel.View())
	if a.detailPane.Visible() {
		sections = append(sections, a.detailPane.View())
	}
	sections = append(sections, bottomBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderResultTitle() string {
	title := fmt.Sprintf("Inventario de Vallas · %d ubicaciones encontradas", len(a.subset))
	if count := a.applied.ActiveCount(); count > 0 {
		title += fmt.Sprintf(" · %d filtros activos", count)
	}
	return title
}

func (a *App) renderTopBar() string {
	left := "vallas"
	right := fmt.Sprintf("Total: %d", a.store.Len())
	return lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(a.formatStatusBar(left, right))
}

func (a *App) renderBottomBar() string {
	left := "[f] Filtrar │ [a] Analizar con IA │ [enter] Detalle │ [?] Ayuda │ [q] Salir"
	if a.analysisState.InFlight() {
		left = "Analizando... │ [q] Salir"
	}
	if a.statusNote != "" {
		left = a.statusNote
	}

	right := ""
	if a.bookmarks != nil && a.bookmarks.Count() > 0 {
		right = fmt.Sprintf("★ %d", a.bookmarks.Count())
	}

	return lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(left, right))
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len([]rune(left))
	rightLen := len([]rune(right))

	if leftLen+rightLen > availableWidth {
		runes := []rune(left)
		if availableWidth > rightLen {
			return string(runes[:availableWidth-rightLen]) + right
		}
		if availableWidth < leftLen {
			return string(runes[:availableWidth])
		}
		return left
	}

	spacing := availableWidth - leftLen - rightLen
	if spacing < 0 {
		spacing = 0
	}

	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}
