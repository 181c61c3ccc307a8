package db

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/taskmasterpro/tm/internal/models"
)

// newTestStore creates a store backed by a file in a temp dir
func newTestStore(t *testing.T) *DB {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func makeTask(t *testing.T, store *DB, title string, status models.Status, tags ...string) *models.Task {
	t.Helper()

	task := models.NewTask(title)
	task.Status = status
	task.Tags = tags
	if _, err := store.CreateTask(task); err != nil {
		t.Fatalf("CreateTask(%q): %v", title, err)
	}
	return task
}

func sameTagSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]string{}, got...)
	w := append([]string{}, want...)
	sort.Strings(g)
	sort.Strings(w)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2026, 9, 1, 17, 30, 0, 0, time.UTC)
	task := models.NewTask("Write report")
	task.Description = "Quarterly numbers"
	task.Priority = models.PriorityHigh
	task.Status = models.StatusInProgress
	task.DueDate = &due
	task.Tags = []string{"work", "writing"}

	id, err := store.CreateTask(task)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if id == 0 {
		t.Fatal("CreateTask returned id 0")
	}
	if task.ID != id {
		t.Errorf("task.ID = %d, want %d", task.ID, id)
	}

	got, err := store.GetTask(id)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got == nil {
		t.Fatal("GetTask returned nil for existing id")
	}

	if got.Title != task.Title {
		t.Errorf("Title = %q, want %q", got.Title, task.Title)
	}
	if got.Description != task.Description {
		t.Errorf("Description = %q, want %q", got.Description, task.Description)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("Priority = %v, want HIGH", got.Priority)
	}
	if got.Status != models.StatusInProgress {
		t.Errorf("Status = %v, want In Progress", got.Status)
	}
	if got.DueDate == nil || models.FormatTime(*got.DueDate) != models.FormatTime(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if models.FormatTime(got.CreatedAt) != models.FormatTime(task.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, task.CreatedAt)
	}
	if models.FormatTime(got.UpdatedAt) != models.FormatTime(task.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, task.UpdatedAt)
	}
	if !sameTagSet(got.Tags, []string{"work", "writing"}) {
		t.Errorf("Tags = %v, want {work writing}", got.Tags)
	}
}

func TestGetMissingTask(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetTask(42)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != nil {
		t.Errorf("GetTask(42) = %+v, want nil", got)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	store := newTestStore(t)

	task := models.NewTask("")
	if _, err := store.CreateTask(task); err == nil {
		t.Fatal("CreateTask with empty title succeeded")
	}

	count, err := store.TaskCount()
	if err != nil {
		t.Fatalf("TaskCount: %v", err)
	}
	if count != 0 {
		t.Errorf("TaskCount = %d after rejected create, want 0", count)
	}
}

func TestTagReuseAcrossTasks(t *testing.T) {
	store := newTestStore(t)

	makeTask(t, store, "first", models.StatusTodo, "shared", "one")
	makeTask(t, store, "second", models.StatusTodo, "shared", "two")

	// "shared" maps to a single tag identity
	count, err := store.TagCount()
	if err != nil {
		t.Fatalf("TagCount: %v", err)
	}
	if count != 3 {
		t.Errorf("TagCount = %d, want 3 (shared, one, two)", count)
	}
}

func TestCreateDeduplicatesTagList(t *testing.T) {
	store := newTestStore(t)

	task := makeTask(t, store, "dup tags", models.StatusTodo, "home", "home")

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if !sameTagSet(got.Tags, []string{"home"}) {
		t.Errorf("Tags = %v, want {home}", got.Tags)
	}
}

func TestUpdateReplacesTagSet(t *testing.T) {
	store := newTestStore(t)

	task := makeTask(t, store, "retag me", models.StatusTodo, "errand", "home")

	task.Tags = []string{"errand", "urgent"}
	ok, err := store.UpdateTask(task)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !ok {
		t.Fatal("UpdateTask reported not found for existing task")
	}

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if !sameTagSet(got.Tags, []string{"errand", "urgent"}) {
		t.Errorf("Tags = %v, want {errand urgent}", got.Tags)
	}

	// "home" lost its last reference but the record is retained
	tags, err := store.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	var names []string
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	if !sameTagSet(names, []string{"errand", "home", "urgent"}) {
		t.Errorf("tag table = %v, want {errand home urgent}", names)
	}
}

func TestUpdateMissingTaskLeavesStoreUnchanged(t *testing.T) {
	store := newTestStore(t)

	existing := makeTask(t, store, "keep me", models.StatusTodo, "keep")

	phantom := models.NewTask("phantom")
	phantom.ID = 999
	phantom.Tags = []string{"ghost"}

	ok, err := store.UpdateTask(phantom)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if ok {
		t.Fatal("UpdateTask reported success for missing id")
	}

	count, err := store.TaskCount()
	if err != nil {
		t.Fatalf("TaskCount: %v", err)
	}
	if count != 1 {
		t.Errorf("TaskCount = %d, want 1", count)
	}

	got, err := store.GetTask(existing.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "keep me" || !sameTagSet(got.Tags, []string{"keep"}) {
		t.Errorf("existing task changed: %+v", got)
	}

	// The phantom's tag sync must not have landed either
	tagCount, err := store.TagCount()
	if err != nil {
		t.Fatalf("TagCount: %v", err)
	}
	if tagCount != 1 {
		t.Errorf("TagCount = %d, want 1", tagCount)
	}
}

func TestUpdateTransientTask(t *testing.T) {
	store := newTestStore(t)

	task := models.NewTask("never saved")
	ok, err := store.UpdateTask(task)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if ok {
		t.Error("UpdateTask reported success for transient task")
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	store := newTestStore(t)

	task := makeTask(t, store, "touch me", models.StatusTodo)

	// A caller-supplied value must be ignored
	task.UpdatedAt = time.Now().Add(-24 * time.Hour)
	time.Sleep(2 * time.Millisecond)

	ok, err := store.UpdateTask(task)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !ok {
		t.Fatal("UpdateTask reported not found")
	}

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
	if got.UpdatedAt.Before(time.Now().UTC().Add(-time.Minute)) {
		t.Errorf("UpdatedAt %v was not refreshed", got.UpdatedAt)
	}
}

func TestDeleteCascadesLinksOnly(t *testing.T) {
	store := newTestStore(t)

	victim := makeTask(t, store, "victim", models.StatusTodo, "shared", "solo")
	keeper := makeTask(t, store, "keeper", models.StatusTodo, "shared")

	deleted, err := store.DeleteTask(victim.ID)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if !deleted {
		t.Fatal("DeleteTask reported nothing removed")
	}

	var links int
	if err := store.QueryRow("SELECT COUNT(*) FROM task_tags WHERE task_id = ?", victim.ID).Scan(&links); err != nil {
		t.Fatalf("counting links: %v", err)
	}
	if links != 0 {
		t.Errorf("victim still has %d tag links", links)
	}

	got, err := store.GetTask(keeper.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if !sameTagSet(got.Tags, []string{"shared"}) {
		t.Errorf("keeper tags = %v, want {shared}", got.Tags)
	}

	// Orphaned tags are retained
	tagCount, err := store.TagCount()
	if err != nil {
		t.Fatalf("TagCount: %v", err)
	}
	if tagCount != 2 {
		t.Errorf("TagCount = %d, want 2", tagCount)
	}
}

func TestDeleteMissingTaskIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 2; i++ {
		deleted, err := store.DeleteTask(7)
		if err != nil {
			t.Fatalf("DeleteTask: %v", err)
		}
		if deleted {
			t.Errorf("DeleteTask(7) attempt %d reported a removal", i+1)
		}
	}
}

func TestListTasksStatusFilter(t *testing.T) {
	store := newTestStore(t)

	makeTask(t, store, "a", models.StatusTodo)
	makeTask(t, store, "b", models.StatusInProgress)
	makeTask(t, store, "c", models.StatusTodo)
	makeTask(t, store, "d", models.StatusCompleted)

	tests := []struct {
		name       string
		filter     *models.Status
		wantTitles []string
	}{
		{"no filter returns everything", nil, []string{"a", "b", "c", "d"}},
		{"todo only", statusPtr(models.StatusTodo), []string{"a", "c"}},
		{"in progress only", statusPtr(models.StatusInProgress), []string{"b"}},
		{"archived matches nothing", statusPtr(models.StatusArchived), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := store.ListTasks(tt.filter)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			var titles []string
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			if !sameTagSet(titles, tt.wantTitles) {
				t.Errorf("titles = %v, want %v", titles, tt.wantTitles)
			}
		})
	}
}

func TestSearchTasks(t *testing.T) {
	store := newTestStore(t)

	makeTask(t, store, "Buy groceries", models.StatusTodo)
	grocery := models.NewTask("Cook dinner")
	grocery.Description = "use the groceries"
	if _, err := store.CreateTask(grocery); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	makeTask(t, store, "Walk the dog", models.StatusTodo)

	tasks, err := store.SearchTasks("groceries", nil)
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	if !sameTagSet(titles, []string{"Buy groceries", "Cook dinner"}) {
		t.Errorf("titles = %v, want title and description matches", titles)
	}

	todo := models.StatusTodo
	tasks, err = store.SearchTasks("groceries", &todo)
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy groceries" {
		t.Errorf("filtered search = %v, want just Buy groceries", tasks)
	}
}

func statusPtr(s models.Status) *models.Status { return &s }

// Full lifecycle: create, fetch, rename with a narrower tag list, delete.
func TestTaskLifecycle(t *testing.T) {
	store := newTestStore(t)

	task := models.NewTask("Buy milk")
	task.Priority = models.PriorityHigh
	task.Tags = []string{"errand", "home"}

	id, err := store.CreateTask(task)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}

	got, err := store.GetTask(1)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "Buy milk" || got.Priority != models.PriorityHigh || got.Status != models.StatusTodo {
		t.Errorf("fetched task = %+v", got)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v on fresh task", got.CreatedAt, got.UpdatedAt)
	}
	if !sameTagSet(got.Tags, []string{"errand", "home"}) {
		t.Errorf("Tags = %v, want {errand home}", got.Tags)
	}

	time.Sleep(2 * time.Millisecond)

	got.Title = "Buy milk and eggs"
	got.Tags = []string{"errand"}
	ok, err := store.UpdateTask(got)
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !ok {
		t.Fatal("UpdateTask reported not found")
	}

	updated, err := store.GetTask(1)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if updated.Title != "Buy milk and eggs" {
		t.Errorf("Title = %q after update", updated.Title)
	}
	if !sameTagSet(updated.Tags, []string{"errand"}) {
		t.Errorf("Tags = %v, want {errand}", updated.Tags)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("UpdatedAt %v not after CreatedAt %v", updated.UpdatedAt, updated.CreatedAt)
	}

	deleted, err := store.DeleteTask(1)
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if !deleted {
		t.Fatal("DeleteTask reported nothing removed")
	}

	gone, err := store.GetTask(1)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if gone != nil {
		t.Errorf("GetTask after delete = %+v, want nil", gone)
	}

	// Orphans survive by design
	tags, err := store.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	var names []string
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	if !sameTagSet(names, []string{"errand", "home"}) {
		t.Errorf("tag table = %v, want {errand home}", names)
	}
}

func TestCorruptStatusFailsLoudly(t *testing.T) {
	store := newTestStore(t)

	task := makeTask(t, store, "soon corrupt", models.StatusTodo)

	if _, err := store.Exec("UPDATE tasks SET status = 'Nonsense' WHERE id = ?", task.ID); err != nil {
		t.Fatalf("corrupting row: %v", err)
	}

	if _, err := store.GetTask(task.ID); err == nil {
		t.Error("GetTask on corrupt status succeeded, want error")
	}
	if _, err := store.ListTasks(nil); err == nil {
		t.Error("ListTasks over corrupt status succeeded, want error")
	}
}
