package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crossing/internal/storage"
)

// HistoryKeyMap defines key bindings for the round history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Detail key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Filter, k.Reload, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Detail, k.Filter, k.Reload, k.Quit},
	}
}

// DefaultHistoryKeyMap returns the default history key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "all/player"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded rounds.
type HistoryModel struct {
	store     *storage.Store
	player    string // Filter target; empty disables filtering
	filtering bool
	limit     int
	rounds    []storage.RoundRecord
	totals    *storage.Totals
	detail    *storage.RoundRecord // Round shown below the table, if any
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
}

// NewHistoryModel creates a history browser. When player is set the list
// starts filtered to that player's rounds.
func NewHistoryModel(store *storage.Store, player string, limit, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:     store,
		player:    player,
		filtering: player != "",
		limit:     limit,
		help:      h,
		keys:      DefaultHistoryKeyMap(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Result", Width: 6},
		{Title: "Blue", Width: 4},
		{Title: "Green", Width: 5},
		{Title: "Orange", Width: 6},
		{Title: "W/L", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: 10},
	}

	height := m.height - 10 // Title, totals, borders and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads rounds and totals from the store.
func (m *HistoryModel) load() {
	m.rounds, m.totals, m.detail, m.loadErr = nil, nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.filtering {
		m.rounds, err = m.store.PlayerRounds(m.player, m.limit)
	} else {
		m.rounds, err = m.store.RecentRounds(m.limit)
	}
	if err != nil {
		m.loadErr = err
	}

	if totals, err := m.store.Totals(); err == nil {
		m.totals = totals
	} else if m.loadErr == nil {
		m.loadErr = err
	}

	m.updateTableRows()
}

// updateTableRows fills the table with the loaded rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = roundRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func roundRow(r storage.RoundRecord) table.Row {
	player := r.Player
	if player == "" {
		player = "-"
	}
	return table.Row{
		r.CreatedAt.Format("Jan 02 15:04"),
		strings.ToUpper(r.Outcome),
		fmt.Sprintf("%d", r.Blue),
		fmt.Sprintf("%d", r.Green),
		fmt.Sprintf("%d", r.Orange),
		fmt.Sprintf("%d/%d", r.GamesWon, r.GamesLost),
		r.Duration.Round(100 * time.Millisecond).String(),
		player,
	}
}

// showDetail re-reads the selected round from the store. Selecting the
// round already shown hides it again.
func (m *HistoryModel) showDetail() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.rounds) {
		return
	}
	id := m.rounds[i].ID
	if m.detail != nil && m.detail.ID == id {
		m.detail = nil
		return
	}

	r, err := m.store.RoundByID(id)
	if err != nil {
		m.loadErr = err
		return
	}
	m.detail = r // nil when the round was cleared meanwhile
}

func roundDetail(r storage.RoundRecord) string {
	player := r.Player
	if player == "" {
		player = "local"
	}
	return fmt.Sprintf("%s %s  %s %s  %s %d (%d/%d/%d)  %s %s  %s %s",
		hudLabelStyle.Render("Round:"), r.ID,
		hudLabelStyle.Render("Result:"), strings.ToUpper(r.Outcome),
		hudLabelStyle.Render("Haul:"), r.Haul(), r.Blue, r.Green, r.Orange,
		hudLabelStyle.Render("Player:"), player,
		hudLabelStyle.Render("At:"), r.CreatedAt.Format("2006-01-02 15:04:05"),
	)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			if m.player != "" {
				m.filtering = !m.filtering
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.Detail):
			m.showDetail()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to the table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "ROUND HISTORY"
	if m.filtering {
		title = fmt.Sprintf("ROUND HISTORY - %s", m.player)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderTotals())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	if m.detail != nil {
		b.WriteString("\n")
		b.WriteString(roundDetail(*m.detail))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTotals renders the lifetime statistics line.
func (m HistoryModel) renderTotals() string {
	if m.totals == nil {
		return noticeStyle.Render("No statistics available.")
	}
	t := m.totals
	return fmt.Sprintf("%s %d  %s %d  %s %d  %s %d/%d/%d  %s %d",
		hudLabelStyle.Render("Rounds:"), t.Rounds,
		hudLabelStyle.Render("Won:"), t.Wins,
		hudLabelStyle.Render("Lost:"), t.Losses,
		hudLabelStyle.Render("Gems:"), t.Blue, t.Green, t.Orange,
		hudLabelStyle.Render("Best haul:"), t.BestHaul,
	)
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := noticeStyle.Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not read history:\n%v", m.loadErr))
	}
	if len(m.rounds) == 0 {
		return emptyStyle.Render("No rounds recorded yet.\nPlay a game to start your history!")
	}
	return m.table.View()
}

// Rounds returns the rounds currently listed.
func (m HistoryModel) Rounds() []storage.RoundRecord {
	return m.rounds
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory runs the round history browser.
func RunHistory(store *storage.Store, player string, limit, width, height int) error {
	model := NewHistoryModel(store, player, limit, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
