package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/taskmasterpro/tm/internal/db"
	"github.com/taskmasterpro/tm/internal/models"
	"github.com/taskmasterpro/tm/internal/settings"
	"github.com/taskmasterpro/tm/internal/ui/keys"
	"github.com/taskmasterpro/tm/internal/ui/styles"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// dueLayouts are the accepted due date input forms
var dueLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusTaskList
)

// sort orders for the task list
const (
	SortCreated  = "created"
	SortPriority = "priority"
	SortDue      = "due"
)

var sortOrders = []string{SortCreated, SortPriority, SortDue}

// ShowDashboard signals to switch to the dashboard view
type ShowDashboard struct{}

// TaskListView shows the task list with filtering, search and editing
type TaskListView struct {
	store    *db.DB
	settings *settings.Settings
	log      *zap.SugaredLogger
	tasks    []models.Task
	styles   *styles.Styles
	keys     keys.KeyMap

	width  int
	height int

	// UI state
	focus         FocusArea
	cursor        int
	scrollY       int
	searchInput   textinput.Model
	statusFilter  *models.Status // nil = all statuses
	sortOrder     string
	showCompleted bool
	errText       string

	// Task creation/editing
	editing      bool
	editingNew   bool
	editTitle    textinput.Model
	editDesc     textarea.Model
	editDue      textinput.Model
	editTags     textinput.Model
	editPriority models.Priority
	editStatus   models.Status
	editFocusIdx int // 0=title, 1=desc, 2=priority, 3=status, 4=due, 5=tags, 6=save

	// Delete confirmation
	confirmingDelete bool
	deleteTargetID   int64
	deleteTargetName string

	// Help popup
	showHelpPopup bool
}

// NewTaskListView creates a new task list view
func NewTaskListView(store *db.DB, cfg *settings.Settings, log *zap.SugaredLogger) *TaskListView {
	s := styles.NewStyles()

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 2000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editDue := textinput.New()
	editDue.Placeholder = "YYYY-MM-DD [HH:MM]"
	editDue.CharLimit = 16

	editTags := textinput.New()
	editTags.Placeholder = "comma, separated, tags"
	editTags.CharLimit = 200

	sortOrder := cfg.GetString("tasks.sort")
	valid := false
	for _, o := range sortOrders {
		if o == sortOrder {
			valid = true
		}
	}
	if !valid {
		sortOrder = SortCreated
	}

	return &TaskListView{
		store:         store,
		settings:      cfg,
		log:           log,
		styles:        s,
		keys:          keys.DefaultKeyMap(),
		focus:         FocusTaskList,
		sortOrder:     sortOrder,
		showCompleted: cfg.GetBool("tasks.show_completed"),
		searchInput:   search,
		editTitle:     editTitle,
		editDesc:      editDesc,
		editDue:       editDue,
		editTags:      editTags,
	}
}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return v.loadTasks
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

type errMsg struct {
	err error
}

func (v *TaskListView) loadTasks() tea.Msg {
	search := strings.TrimSpace(v.searchInput.Value())

	tasks, err := v.store.SearchTasks(search, v.statusFilter)
	if err != nil {
		return errMsg{err}
	}

	// Hide finished tasks unless asked for, or an explicit filter is set
	if !v.showCompleted && v.statusFilter == nil {
		visible := tasks[:0]
		for _, t := range tasks {
			if t.Status != models.StatusCompleted && t.Status != models.StatusArchived {
				visible = append(visible, t)
			}
		}
		tasks = visible
	}

	sortTasks(tasks, v.sortOrder)
	return tasksLoadedMsg{tasks: tasks}
}

// sortTasks orders the list client-side; the store's contract leaves
// ordering unspecified
func sortTasks(tasks []models.Task, order string) {
	switch order {
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority > tasks[j].Priority
		})
	case SortDue:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	}
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tasksLoadedMsg:
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = max(0, len(v.tasks)-1)
		}
		return v, nil

	case errMsg:
		v.errText = msg.err.Error()
		v.log.Errorw("storage operation failed", "error", msg.err)
		return v, nil

	case tea.KeyMsg:
		v.errText = ""

		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Search input swallows hotkeys while focused
	if v.focus == FocusSearchInput {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.searchInput.Blur()
			v.searchInput.Reset()
			v.focus = FocusTaskList
			return v, v.loadTasks
		case key.Matches(msg, v.keys.Enter):
			v.searchInput.Blur()
			v.focus = FocusTaskList
			return v, v.loadTasks
		default:
			var cmd tea.Cmd
			v.searchInput, cmd = v.searchInput.Update(msg)
			return v, tea.Batch(cmd, v.loadTasks)
		}
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if len(v.tasks) > 0 {
			v.startEditTask(v.tasks[v.cursor])
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if len(v.tasks) > 0 {
			v.confirmingDelete = true
			v.deleteTargetID = v.tasks[v.cursor].ID
			v.deleteTargetName = v.tasks[v.cursor].Title
		}
		return v, nil

	case key.Matches(msg, v.keys.Toggle):
		return v, v.toggleDone()

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		v.searchInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Filter):
		v.cycleStatusFilter()
		v.cursor = 0
		v.scrollY = 0
		return v, v.loadTasks

	case key.Matches(msg, v.keys.Sort):
		v.cycleSortOrder()
		return v, v.loadTasks

	case key.Matches(msg, v.keys.Completed):
		v.showCompleted = !v.showCompleted
		v.settings.Set("tasks.show_completed", v.showCompleted)
		if err := v.settings.Save(); err != nil {
			v.log.Errorw("saving settings failed", "error", err)
		}
		v.cursor = 0
		v.scrollY = 0
		return v, v.loadTasks

	case key.Matches(msg, v.keys.Dashboard):
		return v, func() tea.Msg { return ShowDashboard{} }

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

// cycleStatusFilter advances the filter: all → each status in order → all
func (v *TaskListView) cycleStatusFilter() {
	statuses := models.Statuses()
	if v.statusFilter == nil {
		s := statuses[0]
		v.statusFilter = &s
		return
	}
	for i, s := range statuses {
		if s == *v.statusFilter {
			if i == len(statuses)-1 {
				v.statusFilter = nil
			} else {
				next := statuses[i+1]
				v.statusFilter = &next
			}
			return
		}
	}
	v.statusFilter = nil
}

func (v *TaskListView) cycleSortOrder() {
	for i, o := range sortOrders {
		if o == v.sortOrder {
			v.sortOrder = sortOrders[(i+1)%len(sortOrders)]
			break
		}
	}
	v.settings.Set("tasks.sort", v.sortOrder)
	if err := v.settings.Save(); err != nil {
		v.log.Errorw("saving settings failed", "error", err)
	}
}

// toggleDone flips the selected task between completed and to do
func (v *TaskListView) toggleDone() tea.Cmd {
	if len(v.tasks) == 0 {
		return nil
	}
	task := v.tasks[v.cursor]
	if task.Status == models.StatusCompleted {
		task.Status = models.StatusTodo
	} else {
		task.Status = models.StatusCompleted
	}

	return func() tea.Msg {
		ok, err := v.store.UpdateTask(&task)
		if err != nil {
			return errMsg{err}
		}
		if !ok {
			return errMsg{fmt.Errorf("task %d no longer exists", task.ID)}
		}
		return v.loadTasks()
	}
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		id := v.deleteTargetID
		return v, func() tea.Msg {
			if _, err := v.store.DeleteTask(id); err != nil {
				return errMsg{err}
			}
			return v.loadTasks()
		}
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case key.Matches(msg, v.keys.Save):
		return v, v.saveTask()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % 7
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + 6) % 7
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on single-line inputs moves on; on the save button it saves
		switch v.editFocusIdx {
		case 0, 2, 3, 4, 5:
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		case 6:
			return v, v.saveTask()
		}
		// Textarea keeps enter for newlines

	case key.Matches(msg, v.keys.Left):
		switch v.editFocusIdx {
		case 2:
			v.editPriority = cyclePriority(v.editPriority, -1)
			return v, nil
		case 3:
			v.editStatus = cycleStatus(v.editStatus, -1)
			return v, nil
		}

	case key.Matches(msg, v.keys.Right):
		switch v.editFocusIdx {
		case 2:
			v.editPriority = cyclePriority(v.editPriority, 1)
			return v, nil
		case 3:
			v.editStatus = cycleStatus(v.editStatus, 1)
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case 0:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case 4:
		v.editDue, cmd = v.editDue.Update(msg)
	case 5:
		v.editTags, cmd = v.editTags.Update(msg)
	}
	return v, cmd
}

func cyclePriority(p models.Priority, dir int) models.Priority {
	all := models.Priorities()
	for i, c := range all {
		if c == p {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return p
}

func cycleStatus(s models.Status, dir int) models.Status {
	all := models.Statuses()
	for i, c := range all {
		if c == s {
			return all[(i+dir+len(all))%len(all)]
		}
	}
	return s
}

func (v *TaskListView) ensureVisible() {
	// Each task item is 2 lines + 1 margin = 3 lines
	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingNew = true
	v.editFocusIdx = 0
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editTags.Reset()
	v.editStatus = models.StatusTodo

	v.editPriority = models.PriorityMedium
	if p, err := models.ParsePriority(v.settings.GetString("tasks.default_priority")); err == nil {
		v.editPriority = p
	}

	v.editDue.Reset()
	if days := v.settings.GetInt("tasks.default_due_days"); days > 0 {
		due := time.Now().AddDate(0, 0, days)
		v.editDue.SetValue(due.Format("2006-01-02"))
	}

	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task models.Task) {
	v.editing = true
	v.editingNew = false
	v.editFocusIdx = 0
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editPriority = task.Priority
	v.editStatus = task.Status
	if task.DueDate != nil {
		v.editDue.SetValue(task.DueDate.Format("2006-01-02 15:04"))
	} else {
		v.editDue.Reset()
	}
	v.editTags.SetValue(strings.Join(task.Tags, ", "))
	v.updateEditFocus()
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDue.Blur()
	v.editTags.Blur()

	switch v.editFocusIdx {
	case 0:
		v.editTitle.Focus()
	case 1:
		v.editDesc.Focus()
	case 4:
		v.editDue.Focus()
	case 5:
		v.editTags.Focus()
	}
}

// parseTagsInput splits the comma-separated tag field into trimmed names
func parseTagsInput(input string) []string {
	var tags []string
	for _, part := range strings.Split(input, ",") {
		if name := strings.TrimSpace(part); name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}

func parseDueInput(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	for _, layout := range dueLayouts {
		if due, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &due, nil
		}
	}
	return nil, fmt.Errorf("bad due date %q (want YYYY-MM-DD)", input)
}

func (v *TaskListView) saveTask() tea.Cmd {
	title := strings.TrimSpace(v.editTitle.Value())
	if title == "" {
		v.errText = "title is required"
		return nil
	}

	due, err := parseDueInput(v.editDue.Value())
	if err != nil {
		v.errText = err.Error()
		return nil
	}

	var task models.Task
	if v.editingNew {
		task = *models.NewTask(title)
	} else {
		if len(v.tasks) == 0 {
			v.editing = false
			return nil
		}
		task = v.tasks[v.cursor]
		task.Title = title
	}

	task.Description = strings.TrimSpace(v.editDesc.Value())
	task.Priority = v.editPriority
	task.Status = v.editStatus
	task.DueDate = due
	task.Tags = parseTagsInput(v.editTags.Value())

	v.editing = false
	isNew := v.editingNew

	return func() tea.Msg {
		if isNew {
			if _, err := v.store.CreateTask(&task); err != nil {
				return errMsg{err}
			}
		} else {
			ok, err := v.store.UpdateTask(&task)
			if err != nil {
				return errMsg{err}
			}
			if !ok {
				return errMsg{fmt.Errorf("task %d no longer exists", task.ID)}
			}
		}
		return v.loadTasks()
	}
}

// View renders the view
func (v *TaskListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.editing {
		return v.renderEditForm()
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	if v.errText != "" {
		b.WriteString(v.styles.ErrorText.Render(v.errText))
		b.WriteString("\n")
	}
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := s.Title.Render("TaskMaster")

	filterLabel := "All"
	if v.statusFilter != nil {
		filterLabel = v.statusFilter.Label()
	}
	filterBtn := s.Button.Render("Status: " + filterLabel)
	sortBtn := s.Button.Render("Sort: " + v.sortOrder)

	searchStyle := s.Input
	if v.focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-40, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(v.searchInput.View())

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		searchBox, "  ", filterBtn, "  ", sortBtn,
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, header)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one.")
	}

	availableHeight := v.height - 12
	if availableHeight < 3 {
		availableHeight = 3
	}
	visibleItems := availableHeight / 3
	if visibleItems < 1 {
		visibleItems = 1
	}

	var items []string
	endIdx := min(v.scrollY+visibleItems, len(v.tasks))

	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(v.tasks[i], i == v.cursor && v.focus == FocusTaskList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) priorityColor(p models.Priority) lipgloss.Color {
	t := styles.Current
	switch p {
	case models.PriorityHigh:
		return t.Error
	case models.PriorityMedium:
		return t.Warning
	default:
		return t.Success
	}
}

func (v *TaskListView) renderTaskItem(task models.Task, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	priorityDot := lipgloss.NewStyle().
		Foreground(v.priorityColor(task.Priority)).
		Render("●")

	titleLine := priorityDot + " " + task.Title + "  " + s.TitleMuted.Render(task.Status.Label())

	var details []string
	if task.DueDate != nil {
		due := task.DueDate.Format("Jan 02")
		if task.DueDate.Before(time.Now()) && task.Status != models.StatusCompleted && task.Status != models.StatusArchived {
			due = lipgloss.NewStyle().Foreground(styles.Current.Error).Render("overdue " + due)
		}
		details = append(details, due)
	}
	if len(task.Tags) > 0 {
		details = append(details, s.Tag.Render(strings.Join(task.Tags, " ")))
	}
	detailsLine := s.TitleMuted.Render("no details")
	if len(details) > 0 {
		detailsLine = strings.Join(details, " ")
	}

	var titleStyle, detailStyle lipgloss.Style
	if selected {
		titleStyle = s.ListSelected.Width(width)
		detailStyle = s.ListSelected.Width(width)
	} else {
		titleStyle = s.ListItem.Width(width)
		detailStyle = s.ListItem.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(titleLine),
		detailStyle.Render(detailsLine),
	) + "\n"
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	titleStyle := s.Input
	descStyle := s.Input
	priorityStyle := s.Button
	statusStyle := s.Button
	dueStyle := s.Input
	tagsStyle := s.Input
	btnStyle := s.Button

	switch v.editFocusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		priorityStyle = s.ButtonFocused
	case 3:
		statusStyle = s.ButtonFocused
	case 4:
		dueStyle = s.InputFocused
	case 5:
		tagsStyle = s.InputFocused
	case 6:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		descStyle.Render(v.editDesc.View()),
		"",
		"Priority:",
		priorityStyle.Render("◀ "+v.editPriority.String()+" ▶"),
		"",
		"Status:",
		statusStyle.Render("◀ "+v.editStatus.Label()+" ▶"),
		"",
		"Due date:",
		dueStyle.Width(22).Render(v.editDue.View()),
		"",
		"Tags:",
		tagsStyle.Width(inputWidth).Render(v.editTags.View()),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • ←→: cycle • Ctrl+S: save • Esc: cancel"),
	)

	if v.errText != "" {
		form = lipgloss.JoinVertical(lipgloss.Left, form, s.ErrorText.Render(v.errText))
	}

	return styles.CenterView(form, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	box := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Delete task?"),
		"",
		fmt.Sprintf("  %q", v.deleteTargetName),
		"",
		s.TitleMuted.Render("y: delete • n/esc: cancel"),
	)
	return styles.CenterView(s.FilterBar.Render(box), v.width, v.height)
}

func (v *TaskListView) renderHelpPopup() string {
	s := v.styles
	lines := []string{
		s.Title.Render("Keys"),
		"",
		"n  new task        e  edit task",
		"d  delete task     space  toggle done",
		"/  search          f  cycle status filter",
		"o  cycle sort      c  show/hide completed",
		"g  dashboard       q  quit",
		"",
		s.TitleMuted.Render("any key to close"),
	}
	return styles.CenterView(s.FilterBar.Render(strings.Join(lines, "\n")), v.width, v.height)
}

func (v *TaskListView) renderHelp() string {
	return v.styles.Help.Render("n: new • e: edit • d: delete • space: done • /: search • f: filter • o: sort • g: dashboard • ?: help • q: quit")
}
