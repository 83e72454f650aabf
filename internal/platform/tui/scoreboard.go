package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	maxScores         = 100 // Rows loaded per variant
	minWidthForPlayer = 62  // Narrower tables drop the player column
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevVariant, k.NextVariant, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.PrevVariant, k.NextVariant},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top scores of one variant at a time.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	store    ScoreStore // Nil shows an empty board
	scores   []storage.ScoreEntry

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on gameID, or on the first
// variant when gameID is empty or unknown.
func NewScoreboardModel(store ScoreStore, gameID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		width:    width,
		height:   height,
	}
	for i, v := range m.variants {
		if v.ID == gameID {
			m.current = i
		}
	}

	m.table = m.newTable()
	m.reload()
	return m
}

// newTable builds the score table sized to the current window.
func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
	}
	if m.width-4 >= minWidthForPlayer {
		columns = append(columns, table.Column{Title: "Player", Width: 12})
	}
	columns = append(columns, table.Column{Title: "When", Width: 14})

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches the scores of the current variant and refills the table.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	if m.store != nil && len(m.variants) > 0 {
		// A read error shows as an empty board
		if scores, err := m.store.TopScores(m.variants[m.current].ID, maxScores); err == nil {
			m.scores = scores
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	withPlayer := len(m.table.Columns()) == 6

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		tile := fmt.Sprint(s.MaxTile)
		if s.Won {
			tile += "*"
		}
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(s.Score)),
			tile,
			fmt.Sprint(s.Moves),
		}
		if withPlayer {
			row = append(row, s.Player)
		}
		rows = append(rows, append(row, humanize.Time(s.CreatedAt)))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchVariant moves the tab cursor by delta, wrapping around.
func (m *ScoreboardModel) switchVariant(delta int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextVariant):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevVariant):
			m.switchVariant(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillRows()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.variants) > 0 {
		title = "HIGH SCORES - " + m.variants[m.current].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	if len(m.scores) == 0 {
		b.WriteString(centerText(emptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!"), m.width))
	} else {
		b.WriteString(centerText(tableBoxStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(summaryStyle.Render(m.summary()), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// tabs renders the variant selector, falling back to arrows when the
// titles do not fit.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts[i] = activeTabStyle.Render(v.Title)
		} else {
			parts[i] = tabStyle.Render(v.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.variants) > 0 {
		return fmt.Sprintf("< %s >", m.variants[m.current].Title)
	}
	return line
}

// summary describes the loaded rows: wins and the best tile reached.
func (m ScoreboardModel) summary() string {
	wins, bestTile := 0, 0
	for _, s := range m.scores {
		if s.Won {
			wins++
		}
		bestTile = max(bestTile, s.MaxTile)
	}
	games := "games"
	if len(m.scores) == 1 {
		games = "game"
	}
	return fmt.Sprintf("%s %s  |  %d won (*)  |  best tile %d",
		humanize.Comma(int64(len(m.scores))), games, wins, bestTile)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store ScoreStore, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
