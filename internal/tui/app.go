package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/wingscore/internal/config"
	"github.com/jask/wingscore/internal/export"
	"github.com/jask/wingscore/internal/sheet"
)

// App renders a sheet.Store and turns key presses into store messages.
type App struct {
	store  *sheet.Store
	cfg    config.Config
	keys   keyMap
	gameID string
	now    func() time.Time

	nameInput textinput.Model
	cellInput textinput.Model
	focus     focusArea
	editing   bool
	row       int // category index
	col       int // player index
	showChart bool
	status    string
	width     int
	height    int
}

type focusArea string

const (
	focusName focusArea = "name"
	focusGrid focusArea = "grid"
)

type exportDoneMsg struct {
	path  string
	count int
	err   error
}

func New(cfg config.Config, store *sheet.Store, gameID string) *App {
	name := textinput.New()
	name.Placeholder = "Player Name"
	name.Prompt = "> "
	name.CharLimit = 32
	name.Width = 24
	name.Focus()
	if pending, ok := store.PendingName(); ok {
		name.SetValue(pending)
	}

	cell := textinput.New()
	cell.Prompt = ""
	cell.CharLimit = 3
	cell.Width = max(cfg.UI.ColumnWidth-2, 1)

	return &App{
		store:     store,
		cfg:       cfg,
		keys:      newKeyMap(),
		gameID:    gameID,
		now:       time.Now,
		nameInput: name,
		cellInput: cell,
		focus:     focusName,
		showChart: cfg.UI.ShowChart,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
	case exportDoneMsg:
		if m.err != nil {
			log.Printf("export failed: %v", m.err)
			a.status = fmt.Sprintf("Export failed: %v", m.err)
			return a, nil
		}
		log.Printf("exported game=%s players=%d path=%s", a.gameID, m.count, m.path)
		a.status = fmt.Sprintf("Exported %d players to %s", m.count, m.path)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.editing {
			return a.updateCellEditor(m)
		}
		if a.focus == focusName {
			return a.updateNameInput(m)
		}
		return a.updateGrid(m)
	}
	return a, nil
}

func (a *App) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		a.addPlayer()
		return a, nil
	case key.Matches(msg, a.keys.SwitchFocus):
		a.setFocus(focusGrid)
		return a, nil
	}

	before := a.nameInput.Value()
	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(msg)
	if v := a.nameInput.Value(); v != before {
		a.store.Dispatch(sheet.PlayerNameChanged{Name: v})
	}
	return a, cmd
}

func (a *App) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.SwitchFocus):
		a.setFocus(focusName)
	case key.Matches(msg, a.keys.Up):
		if a.row > 0 {
			a.row--
		}
	case key.Matches(msg, a.keys.Down):
		if a.row < sheet.CategoryCount-1 {
			a.row++
		}
	case key.Matches(msg, a.keys.Left):
		if a.col > 0 {
			a.col--
		}
	case key.Matches(msg, a.keys.Right):
		if a.col < a.store.Len()-1 {
			a.col++
		}
	case key.Matches(msg, a.keys.Edit):
		return a, a.startEdit("")
	case key.Matches(msg, a.keys.Zero):
		a.applyCell("")
	case key.Matches(msg, a.keys.Chart):
		a.showChart = !a.showChart
	case key.Matches(msg, a.keys.Export):
		return a, a.exportCmd()
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsDigit(msg.Runes[0]):
		return a, a.startEdit(string(msg.Runes))
	}
	return a, nil
}

func (a *App) updateCellEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Submit) || key.Matches(msg, a.keys.Cancel) {
		a.stopEdit()
		return a, nil
	}
	before := a.cellInput.Value()
	var cmd tea.Cmd
	a.cellInput, cmd = a.cellInput.Update(msg)
	if v := a.cellInput.Value(); v != before {
		a.applyCell(v)
	}
	return a, cmd
}

func (a *App) setFocus(f focusArea) {
	if f == focusGrid && a.store.Len() == 0 {
		a.status = "Add a player first."
		return
	}
	a.focus = f
	if f == focusName {
		a.nameInput.Focus()
		return
	}
	a.nameInput.Blur()
	a.status = ""
}

func (a *App) addPlayer() {
	before := a.store.Len()
	a.store.Dispatch(sheet.AddPlayer{})
	pending, _ := a.store.PendingName()
	a.nameInput.SetValue(pending)

	if a.store.Len() == before {
		a.status = "Type a name first."
		return
	}
	p, _ := a.store.Player(before)
	log.Printf("player added id=%d name=%q", p.ID, p.Name)
	a.status = fmt.Sprintf("Added %s.", displayName(p.Name))

	existing := make([]string, 0, before)
	for _, other := range a.store.Players()[:before] {
		existing = append(existing, other.Name)
	}
	if match, ok := similarName(p.Name, existing, a.cfg.UI.SimilarNameDistance); ok {
		a.status = fmt.Sprintf("Added %s (similar to %s).", displayName(p.Name), displayName(match))
	}
}

func (a *App) startEdit(seed string) tea.Cmd {
	p, ok := a.store.Player(a.col)
	if !ok {
		return nil
	}
	a.editing = true
	if seed == "" {
		seed = strconv.Itoa(int(p.Score(a.category()).Value()))
	} else {
		a.applyCell(seed)
	}
	a.cellInput.SetValue(seed)
	a.cellInput.CursorEnd()
	return a.cellInput.Focus()
}

func (a *App) stopEdit() {
	a.editing = false
	a.cellInput.Blur()
	a.cellInput.SetValue("")
}

// applyCell sends the edited text for the cursor cell. Text that does not
// parse re-sends the current score so the cell keeps its value.
func (a *App) applyCell(raw string) {
	p, ok := a.store.Player(a.col)
	if !ok {
		return
	}
	current := p.Score(a.category())
	if _, err := sheet.ParseValue(raw); err != nil {
		log.Printf("edit abandoned player=%d category=%s: %v", p.ID, current.Category(), err)
	}
	a.store.Dispatch(sheet.SetScore{PlayerIndex: p.ID, Score: sheet.ApplyInput(current, raw)})
}

func (a *App) category() sheet.Category {
	return sheet.Categories()[a.row]
}

func (a *App) exportCmd() tea.Cmd {
	players := a.store.Players()
	if len(players) == 0 {
		a.status = "Nothing to export yet."
		return nil
	}
	card := export.Build(a.gameID, players, a.now())
	dir := a.cfg.Export.Dir
	a.status = "Exporting..."
	return func() tea.Msg {
		path, err := export.WriteFile(dir, card)
		return exportDoneMsg{path: path, count: len(card.Players), err: err}
	}
}

func (a *App) View() string {
	sections := []string{
		titleStyle.Render(a.cfg.UI.Title),
		a.renderNameRow(),
	}
	players := a.store.Players()
	if len(players) > 0 {
		sections = append(sections, a.renderGrid(players))
		if a.showChart {
			sections = append(sections, renderTotalsChart(players, a.chartWidth(len(players)), a.cfg.UI.ChartHeight))
		}
	}
	body := strings.Join(sections, "\n\n")
	return body + "\n\n" + a.renderStatus() + "\n" + a.renderFooter()
}

func (a *App) renderNameRow() string {
	button := buttonStyle.Render("Add Player")
	if a.focus == focusName {
		button = buttonFocusStyle.Render("Add Player")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, a.nameInput.View(), "  ", button)
}

func (a *App) renderStatus() string {
	text := a.status
	if a.width > 0 {
		text = truncate(text, a.width)
	}
	return statusStyle.Render(text)
}

func (a *App) renderFooter() string {
	var bindings []key.Binding
	switch {
	case a.editing:
		bindings = a.keys.editHelp()
	case a.focus == focusName:
		bindings = a.keys.nameHelp()
	default:
		bindings = a.keys.gridHelp()
	}
	text := renderHelp(bindings)
	if a.width > 0 {
		text = padRight(truncate(text, a.width), a.width)
	}
	return footerStyle.Render(text)
}

func (a *App) chartWidth(players int) int {
	w := a.cfg.UI.LabelWidth + players*(a.cfg.UI.ColumnWidth+1)
	if a.width > 0 && w > a.width {
		w = a.width
	}
	return w
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return strconv.Quote(name)
}
