package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/taskmasterpro/tm/internal/db"
	"github.com/taskmasterpro/tm/internal/settings"
	"github.com/taskmasterpro/tm/internal/ui/styles"
	"github.com/taskmasterpro/tm/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewTasks View = iota
	ViewDashboard
)

// App is the top-level model. It owns the storage handle and the settings
// for the lifetime of the program; both are injected, never global.
type App struct {
	store       *db.DB
	settings    *settings.Settings
	log         *zap.SugaredLogger
	currentView View
	taskList    *views.TaskListView
	dashboard   *views.DashboardView
	width       int
	height      int
}

// NewApp creates a new application
func NewApp(store *db.DB, cfg *settings.Settings, log *zap.SugaredLogger) *App {
	styles.SetTheme(cfg.GetString("app.theme"))

	return &App{
		store:       store,
		settings:    cfg,
		log:         log,
		currentView: ViewTasks,
		taskList:    views.NewTaskListView(store, cfg, log),
		dashboard:   views.NewDashboardView(store),
	}
}

func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both views track the window size since they persist
		a.taskList.Update(msg)
		a.dashboard.Update(msg)
		return a, nil

	case views.ShowDashboard:
		a.currentView = ViewDashboard
		return a, tea.Batch(
			a.dashboard.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)

	case views.BackToTasks:
		a.currentView = ViewTasks
		return a, tea.Batch(
			a.taskList.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewTasks:
		_, cmd = a.taskList.Update(msg)
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewDashboard:
		return a.dashboard.View()
	}
	return a.taskList.View()
}
