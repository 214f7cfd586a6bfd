package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wheelibin/light-driver/internal/models"
)

const headerBackgroundColor = "#1e7ba0"

type entitiesMessage struct {
	entities []models.Entity
}

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffffff")).
	Background(lipgloss.Color(headerBackgroundColor)).
	Padding(0, 1)

// MonitorTUI shows the configured entities and their current attributes
type MonitorTUI struct {
	teaProgram *tea.Program
}

func NewMonitorTUI(title string, entities []models.Entity) MonitorTUI {
	p := tea.NewProgram(NewModel(title, entities), tea.WithAltScreen())
	return MonitorTUI{p}
}

// Run blocks until the user quits
func (t MonitorTUI) Run() error {
	_, err := t.teaProgram.Run()
	return err
}

func (t MonitorTUI) Quit() {
	t.teaProgram.Quit()
}

// RefreshEntities replaces the table contents, safe to call from any goroutine
func (t MonitorTUI) RefreshEntities(entities []models.Entity) {
	t.teaProgram.Send(entitiesMessage{entities: entities})
}

type Model struct {
	title string
	table table.Model
}

func NewModel(title string, entities []models.Entity) Model {

	columns := []table.Column{
		{Title: "Entity", Width: 20},
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 12},
		{Title: "State", Width: 12},
		{Title: "Attributes", Width: 48},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(Rows(entities)),
		table.WithFocused(true),
		table.WithHeight(7),
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

	return Model{title: title, table: t}
}

// Rows renders one table row per entity
func Rows(entities []models.Entity) []table.Row {
	rows := make([]table.Row, 0, len(entities))
	for _, e := range entities {
		state, details := describe(e)
		rows = append(rows, table.Row{e.ID, e.DisplayName(), string(e.Type), state, details})
	}
	return rows
}

func describe(e models.Entity) (string, string) {
	switch a := e.Attributes.(type) {
	case models.LightAttributes:
		if !e.HasFeature(models.LightFeatureDim) {
			return string(a.State), ""
		}
		return string(a.State), fmt.Sprintf("brightness=%d", a.Brightness)
	case models.MediaPlayerAttributes:
		details := fmt.Sprintf("volume=%d", a.Volume)
		if e.HasFeature(models.MediaPlayerFeatureSelectSource) {
			details += " sources=" + strings.Join(a.SourceList, ",")
		}
		return string(a.State), details
	default:
		return "", ""
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := message.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case entitiesMessage:
		m.table.SetRows(Rows(msg.entities))
		return m, nil
	}

	m.table, cmd = m.table.Update(message)
	return m, cmd
}

func (m Model) View() string {
	return titleStyle.Render(m.title) + "\n" + baseStyle.Render(m.table.View()) + "\n"
}
