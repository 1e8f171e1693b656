package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/wheelibin/ringlight/internal/models"
)

type stateMessage struct {
	states []models.EntityState
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type LightsTUI struct {
	teaProgram *tea.Program
}

func NewLightsTUI() LightsTUI {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	return LightsTUI{p}
}

// Run blocks until the user quits.
func (t LightsTUI) Run() error {
	_, err := t.teaProgram.Run()
	return err
}

func (t LightsTUI) RefreshLights(states ...models.EntityState) {
	if len(states) > 0 {
		t.teaProgram.Send(stateMessage{states: states})
	}
}

type Model struct {
	table  table.Model
	lights map[string]models.EntityState
}

func NewModel() Model {
	columns := []table.Column{
		{Title: "Light", Width: 24},
		{Title: "Entity", Width: 28},
		{Title: "Kind", Width: 8},
		{Title: "On", Width: 5},
		{Title: "Updated", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{table: t, lights: map[string]models.EntityState{}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case stateMessage:
		lights := lo.Assign(m.lights)
		for _, s := range msg.states {
			lights[s.UniqueID] = s
		}
		m.lights = lights
		m.table.SetRows(rows(lights))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(message)
	return m, cmd
}

func (m Model) View() string {
	return baseStyle.Render(m.table.View()) + "\n  q to quit\n"
}

// Rows returns the table rows currently shown.
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

func rows(lights map[string]models.EntityState) []table.Row {
	states := lo.Values(lights)
	sort.Slice(states, func(i, j int) bool {
		return states[i].EntityID < states[j].EntityID
	})

	return lo.Map(states, func(s models.EntityState, _ int) table.Row {
		on := lo.Ternary(s.On, "on", "off")
		updated := ""
		if !s.UpdatedAt.IsZero() {
			updated = s.UpdatedAt.Local().Format("15:04:05")
		}
		return table.Row{s.Name, s.EntityID, s.Kind, on, updated}
	})
}
