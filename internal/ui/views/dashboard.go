package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskmasterpro/tm/internal/db"
	"github.com/taskmasterpro/tm/internal/models"
	"github.com/taskmasterpro/tm/internal/ui/keys"
	"github.com/taskmasterpro/tm/internal/ui/styles"
)

// BackToTasks signals to switch back to the task list
type BackToTasks struct{}

// DashboardView summarizes task counts by status and priority
type DashboardView struct {
	store  *db.DB
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	total          int
	tagTotal       int
	overdue        int
	statusCounts   map[models.Status]int
	priorityCounts map[models.Priority]int
	errText        string
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(store *db.DB) *DashboardView {
	return &DashboardView{
		store:  store,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
	}
}

type statsLoadedMsg struct {
	total          int
	tagTotal       int
	overdue        int
	statusCounts   map[models.Status]int
	priorityCounts map[models.Priority]int
}

// Init loads the stats
func (v *DashboardView) Init() tea.Cmd {
	return v.loadStats
}

func (v *DashboardView) loadStats() tea.Msg {
	total, err := v.store.TaskCount()
	if err != nil {
		return errMsg{err}
	}
	tagTotal, err := v.store.TagCount()
	if err != nil {
		return errMsg{err}
	}
	overdue, err := v.store.OverdueCount(time.Now())
	if err != nil {
		return errMsg{err}
	}
	statusCounts, err := v.store.StatusCounts()
	if err != nil {
		return errMsg{err}
	}
	priorityCounts, err := v.store.PriorityCounts()
	if err != nil {
		return errMsg{err}
	}
	return statsLoadedMsg{
		total:          total,
		tagTotal:       tagTotal,
		overdue:        overdue,
		statusCounts:   statusCounts,
		priorityCounts: priorityCounts,
	}
}

// Update handles messages
func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case statsLoadedMsg:
		v.total = msg.total
		v.tagTotal = msg.tagTotal
		v.overdue = msg.overdue
		v.statusCounts = msg.statusCounts
		v.priorityCounts = msg.priorityCounts
		return v, nil

	case errMsg:
		v.errText = msg.err.Error()
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Dashboard):
			return v, func() tea.Msg { return BackToTasks{} }
		}
	}

	return v, nil
}

func (v *DashboardView) renderCard(title, value string, color lipgloss.Color) string {
	s := v.styles
	return s.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
		s.CardValue.Foreground(color).Render(value),
		s.CardTitle.Render(title),
	))
}

// renderBar draws a proportional bar for one row of a breakdown
func (v *DashboardView) renderBar(label string, count, total int, color lipgloss.Color) string {
	const barWidth = 24
	filled := 0
	if total > 0 {
		filled = count * barWidth / total
	}
	if count > 0 && filled == 0 {
		filled = 1
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		v.styles.TitleMuted.Render(strings.Repeat("░", barWidth-filled))

	return fmt.Sprintf("%-12s %s %3d", label, bar, count)
}

// View renders the dashboard
func (v *DashboardView) View() string {
	s := v.styles
	t := styles.Current

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		v.renderCard("Total", fmt.Sprintf("%d", v.total), t.Primary),
		v.renderCard("Completed", fmt.Sprintf("%d", v.statusCounts[models.StatusCompleted]), t.Success),
		v.renderCard("In Progress", fmt.Sprintf("%d", v.statusCounts[models.StatusInProgress]), t.Warning),
		v.renderCard("Overdue", fmt.Sprintf("%d", v.overdue), t.Error),
		v.renderCard("Tags", fmt.Sprintf("%d", v.tagTotal), t.Accent),
	)

	statusRows := []string{s.Title.Render("By status"), ""}
	for _, st := range models.Statuses() {
		statusRows = append(statusRows, v.renderBar(st.Label(), v.statusCounts[st], v.total, t.Info))
	}

	priorityColors := map[models.Priority]lipgloss.Color{
		models.PriorityLow:    t.Success,
		models.PriorityMedium: t.Warning,
		models.PriorityHigh:   t.Error,
	}
	priorityRows := []string{s.Title.Render("By priority"), ""}
	for _, p := range models.Priorities() {
		priorityRows = append(priorityRows, v.renderBar(p.String(), v.priorityCounts[p], v.total, priorityColors[p]))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Dashboard"),
		"",
		cards,
		"",
		strings.Join(statusRows, "\n"),
		"",
		strings.Join(priorityRows, "\n"),
	)

	if v.errText != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, s.ErrorText.Render(v.errText))
	}

	content = lipgloss.JoinVertical(lipgloss.Left, content, s.Help.Render("esc/g: back • q: quit"))

	return styles.CenterView(content, v.width, v.height)
}
