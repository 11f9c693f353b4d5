package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-graphrag/pkg/algorithms"
	"github.com/dd0wney/cluso-graphrag/pkg/graph"
	"github.com/dd0wney/cluso-graphrag/pkg/search"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2).
			MarginRight(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	dashboardView view = iota
	searchView
	topView
	numViews
)

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Up, k.Down},
		{k.Quit},
	}
}

type model struct {
	graph       *graph.Graph
	stats       graph.Statistics
	currentView view
	queryInput  textinput.Model
	matchTable  table.Model
	topTable    table.Model
	hops        int
	help        help.Model
	keys        keyMap
	width       int
	height      int
	message     string
	messageErr  bool
}

func newEntityTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 20},
		{Title: "Type", Width: 12},
		{Title: "Text", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func initialModel(g *graph.Graph, hops int) model {
	ti := textinput.New()
	ti.Placeholder = "ciso mfa encryption"
	ti.CharLimit = 200
	ti.Width = 60

	topTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 20},
			{Title: "Type", Width: 12},
			{Title: "Text", Width: 30},
			{Title: "Degree", Width: 8},
		}),
		table.WithHeight(15),
	)
	rows := make([]table.Row, 0)
	for _, e := range graph.MostConnected(g, 20) {
		rows = append(rows, table.Row{e.ID, e.Type, e.Text, fmt.Sprintf("%d", e.Connections)})
	}
	topTable.SetRows(rows)

	return model{
		graph:       g,
		stats:       graph.GetStatistics(g),
		currentView: dashboardView,
		queryInput:  ti,
		matchTable:  newEntityTable(),
		topTable:    topTable,
		hops:        hops,
		help:        help.New(),
		keys:        keys,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.currentView != searchView || !m.queryInput.Focused() || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % numViews
			if m.currentView == searchView {
				m.queryInput.Focus()
			} else {
				m.queryInput.Blur()
			}

		case key.Matches(msg, m.keys.ShiftTab):
			if m.currentView == 0 {
				m.currentView = numViews - 1
			} else {
				m.currentView--
			}
			if m.currentView == searchView {
				m.queryInput.Focus()
			} else {
				m.queryInput.Blur()
			}

		case key.Matches(msg, m.keys.Enter):
			if m.currentView == searchView && m.queryInput.Focused() {
				m.runSearch()
			}
		}
	}

	switch m.currentView {
	case searchView:
		m.queryInput, cmd = m.queryInput.Update(msg)
		cmds = append(cmds, cmd)
		m.matchTable, cmd = m.matchTable.Update(msg)
		cmds = append(cmds, cmd)
	case topView:
		m.topTable, cmd = m.topTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) runSearch() {
	queryStr := m.queryInput.Value()
	if queryStr == "" {
		m.message = "Query cannot be empty"
		m.messageErr = true
		return
	}

	matches := search.Match(m.graph, search.Tokenize(queryStr))
	if len(matches) == 0 {
		m.message = "No entities matched; try broader terms"
		m.messageErr = true
		m.matchTable.SetRows(nil)
		return
	}

	related := algorithms.Expand(m.graph, algorithms.SeedSet(matches), m.hops)
	sub := algorithms.Induce(m.graph, related)

	byID := m.graph.NodeByID()
	ids := make([]string, 0, len(related))
	for id := range related {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]table.Row, 0, len(ids))
	for _, id := range ids {
		node, ok := byID[id]
		if !ok {
			continue
		}
		rows = append(rows, table.Row{node.ID, node.Type, node.Text})
	}
	m.matchTable.SetRows(rows)

	m.message = fmt.Sprintf("%d direct matches, %d related entities, subgraph %d nodes / %d edges",
		len(matches), len(related), len(sub.Nodes), len(sub.Edges))
	m.messageErr = false
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("GraphRAG Explorer"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case dashboardView:
		s.WriteString(m.renderDashboard())
	case searchView:
		s.WriteString(m.renderSearch())
	case topView:
		s.WriteString(m.renderTop())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("x " + m.message))
		} else {
			s.WriteString(successStyle.Render("+ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	tabs := []string{"Dashboard", "Search", "Top Entities"}
	var renderedTabs []string

	for i, tab := range tabs {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderDashboard() string {
	statsContent := fmt.Sprintf(`Graph
-----
Nodes:  %d
Edges:  %d
Hops:   %d`,
		m.stats.TotalNodes,
		m.stats.TotalEdges,
		m.hops,
	)

	typesContent := "Entity Types\n------------\n" + renderTypeCounts(m.stats.EntityTypes)
	relsContent := "Relationship Types\n------------------\n" + renderTypeCounts(m.stats.RelationshipTypes)

	return contentStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Top,
			statsBoxStyle.Render(statsContent),
			statsBoxStyle.Render(typesContent),
			statsBoxStyle.Render(relsContent),
		),
	)
}

func renderTypeCounts(counts map[string]int) string {
	type typeCount struct {
		name  string
		count int
	}
	sorted := make([]typeCount, 0, len(counts))
	for name, count := range counts {
		sorted = append(sorted, typeCount{name, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].name < sorted[j].name
	})

	var b strings.Builder
	for i, tc := range sorted {
		if i >= 8 {
			fmt.Fprintf(&b, "... %d more\n", len(sorted)-i)
			break
		}
		fmt.Fprintf(&b, "%-12s %d\n", tc.name, tc.count)
	}
	if b.Len() == 0 {
		b.WriteString("(none)\n")
	}
	return b.String()
}

func (m model) renderSearch() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Entity Search"))
	s.WriteString("\n\n")
	s.WriteString(m.queryInput.View())
	s.WriteString("\n\n")
	s.WriteString(m.matchTable.View())

	return contentStyle.Render(s.String())
}

func (m model) renderTop() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("Most Connected Entities"))
	s.WriteString("\n\n")
	s.WriteString(m.topTable.View())

	return contentStyle.Render(s.String())
}

func main() {
	graphPath := flag.String("graph", "data/graph.json", "Path to graph artifact")
	hops := flag.Int("hops", 2, "Hop budget for search expansion")
	flag.Parse()

	g, err := graph.Load(*graphPath)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	p := tea.NewProgram(initialModel(g, *hops), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
