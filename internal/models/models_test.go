package models

import (
	"testing"
	"time"
)

func TestNewTaskDefaults(t *testing.T) {
	before := time.Now()
	task := NewTask("defaults")
	after := time.Now()

	if task.ID != 0 {
		t.Errorf("ID = %d, want 0 (transient)", task.ID)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("Priority = %v, want MEDIUM", task.Priority)
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %v, want To Do", task.Status)
	}
	if task.Description != "" || len(task.Tags) != 0 || task.DueDate != nil {
		t.Errorf("non-empty optional fields: %+v", task)
	}
	if task.CreatedAt.Before(before) || task.CreatedAt.After(after) {
		t.Errorf("CreatedAt = %v, want between %v and %v", task.CreatedAt, before, after)
	}
	if task.UpdatedAt.Before(task.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", task.UpdatedAt, task.CreatedAt)
	}
}

func TestPriorityRoundTrip(t *testing.T) {
	tests := []struct {
		priority Priority
		name     string
	}{
		{PriorityLow, "LOW"},
		{PriorityMedium, "MEDIUM"},
		{PriorityHigh, "HIGH"},
	}
	for _, tt := range tests {
		if got := tt.priority.String(); got != tt.name {
			t.Errorf("%v.String() = %q, want %q", tt.priority, got, tt.name)
		}
		parsed, err := ParsePriority(tt.name)
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", tt.name, err)
		}
		if parsed != tt.priority {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.name, parsed, tt.priority)
		}
	}
}

func TestParsePriorityUnknown(t *testing.T) {
	// Lowercase and arbitrary values are corruption, not aliases
	for _, bad := range []string{"low", "URGENT", ""} {
		if _, err := ParsePriority(bad); err == nil {
			t.Errorf("ParsePriority(%q) succeeded, want error", bad)
		}
	}
}

func TestStatusRoundTrip(t *testing.T) {
	tests := []struct {
		status Status
		label  string
	}{
		{StatusTodo, "To Do"},
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{StatusArchived, "Archived"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("%d.Label() = %q, want %q", tt.status, got, tt.label)
		}
		parsed, err := ParseStatus(tt.label)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tt.label, err)
		}
		if parsed != tt.status {
			t.Errorf("ParseStatus(%q) = %v, want %v", tt.label, parsed, tt.status)
		}
	}
}

func TestParseStatusUnknown(t *testing.T) {
	for _, bad := range []string{"TODO", "Done", ""} {
		if _, err := ParseStatus(bad); err == nil {
			t.Errorf("ParseStatus(%q) succeeded, want error", bad)
		}
	}
}

func TestTaskMapRoundTrip(t *testing.T) {
	due := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	task := NewTask("round trip")
	task.ID = 7
	task.Description = "all fields set"
	task.Priority = PriorityHigh
	task.Status = StatusInProgress
	task.DueDate = &due
	task.Tags = []string{"alpha", "beta"}

	m := task.ToMap()
	if m["id"] != int64(7) {
		t.Errorf("id = %v, want 7", m["id"])
	}
	if m["priority"] != "HIGH" || m["status"] != "In Progress" {
		t.Errorf("enums = %v / %v", m["priority"], m["status"])
	}
	if m["due_date"] != "2026-03-15T09:00:00.000000" {
		t.Errorf("due_date = %v", m["due_date"])
	}

	back, err := TaskFromMap(m)
	if err != nil {
		t.Fatalf("TaskFromMap: %v", err)
	}
	if back.ID != 7 || back.Title != task.Title || back.Description != task.Description {
		t.Errorf("scalars changed: %+v", back)
	}
	if back.Priority != PriorityHigh || back.Status != StatusInProgress {
		t.Errorf("enums changed: %v / %v", back.Priority, back.Status)
	}
	if back.DueDate == nil || !back.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", back.DueDate, due)
	}
	if len(back.Tags) != 2 || back.Tags[0] != "alpha" || back.Tags[1] != "beta" {
		t.Errorf("Tags = %v", back.Tags)
	}
	if FormatTime(back.CreatedAt) != FormatTime(task.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", back.CreatedAt, task.CreatedAt)
	}
}

func TestToMapTransientTask(t *testing.T) {
	task := NewTask("no id yet")
	m := task.ToMap()

	if m["id"] != nil {
		t.Errorf("id = %v, want explicit nil", m["id"])
	}
	if m["due_date"] != nil {
		t.Errorf("due_date = %v, want explicit nil", m["due_date"])
	}
}

func TestTaskFromMapDefaults(t *testing.T) {
	task, err := TaskFromMap(map[string]any{"title": "bare"})
	if err != nil {
		t.Fatalf("TaskFromMap: %v", err)
	}

	if task.ID != 0 {
		t.Errorf("ID = %d, want 0 (transient)", task.ID)
	}
	if task.Priority != PriorityMedium || task.Status != StatusTodo {
		t.Errorf("defaults not applied: %v / %v", task.Priority, task.Status)
	}
	if task.DueDate != nil || len(task.Tags) != 0 {
		t.Errorf("optional fields not empty: %+v", task)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("timestamps not defaulted")
	}
}

func TestTaskFromMapJSONShapes(t *testing.T) {
	// json.Unmarshal produces float64 ids and []any tag lists
	task, err := TaskFromMap(map[string]any{
		"title": "from json",
		"id":    float64(3),
		"tags":  []any{"x", "y"},
	})
	if err != nil {
		t.Fatalf("TaskFromMap: %v", err)
	}
	if task.ID != 3 {
		t.Errorf("ID = %d, want 3", task.ID)
	}
	if len(task.Tags) != 2 || task.Tags[0] != "x" {
		t.Errorf("Tags = %v", task.Tags)
	}
}

func TestTaskFromMapBadValues(t *testing.T) {
	tests := []struct {
		name string
		m    map[string]any
	}{
		{"bad priority", map[string]any{"title": "x", "priority": "SEVERE"}},
		{"bad status", map[string]any{"title": "x", "status": "Doing"}},
		{"bad due date", map[string]any{"title": "x", "due_date": "tomorrow"}},
		{"bad tag type", map[string]any{"title": "x", "tags": []any{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TaskFromMap(tt.m); err == nil {
				t.Error("TaskFromMap succeeded, want error")
			}
		})
	}
}

func TestValidateRequiresTitle(t *testing.T) {
	task := NewTask("")
	if err := task.Validate(); err == nil {
		t.Error("Validate accepted empty title")
	}

	task.Title = "present"
	if err := task.Validate(); err != nil {
		t.Errorf("Validate rejected valid task: %v", err)
	}
}

func TestFormatTimeSortable(t *testing.T) {
	// The stored form must sort lexically like the times themselves
	earlier := FormatTime(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	later := FormatTime(time.Date(2026, 1, 2, 3, 4, 5, 500000000, time.UTC))
	if !(earlier < later) {
		t.Errorf("%q not < %q", earlier, later)
	}
}
