package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimeLayout is the canonical textual form for persisted timestamps:
// ISO-8601 shaped, microsecond precision, lexically sortable. Values are
// normalized to UTC before formatting.
const TimeLayout = "2006-01-02T15:04:05.000000"

// Priority represents a task priority level, ordered lowest to highest
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{"LOW", "MEDIUM", "HIGH"}

// String returns the canonical symbolic name used for storage
func (p Priority) String() string {
	if p < PriorityLow || p > PriorityHigh {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority maps a stored symbolic name back to a Priority.
// An unrecognized name is a corruption condition and returns an error.
func ParsePriority(name string) (Priority, error) {
	for i, n := range priorityNames {
		if n == name {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("unknown priority %q", name)
}

// Priorities returns all priority levels in ascending order
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Status represents a task's workflow state
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusCompleted
	StatusArchived
)

var statusLabels = [...]string{"To Do", "In Progress", "Completed", "Archived"}

// Label returns the display label, which is also the canonical stored form
func (s Status) Label() string {
	if s < StatusTodo || s > StatusArchived {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

func (s Status) String() string { return s.Label() }

// ParseStatus maps a stored display label back to a Status.
// An unrecognized label is a corruption condition and returns an error.
func ParseStatus(label string) (Status, error) {
	for i, l := range statusLabels {
		if l == label {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", label)
}

// Statuses returns all statuses in workflow order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted, StatusArchived}
}

// Tag represents a uniquely-named label attachable to any number of tasks
type Tag struct {
	ID   int64
	Name string
}

// Task represents a single task. ID is 0 until storage assigns an identity.
type Task struct {
	ID          int64
	Title       string `validate:"required"`
	Description string
	Priority    Priority
	Status      Status
	DueDate     *time.Time
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var validate = validator.New()

// NewTask creates a transient task with construction defaults:
// priority MEDIUM, status TODO, timestamps set to now.
func NewTask(title string) *Task {
	now := time.Now()
	return &Task{
		Title:     title,
		Priority:  PriorityMedium,
		Status:    StatusTodo,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the task's required fields
func (t *Task) Validate() error {
	return validate.Struct(t)
}

// FormatTime renders a timestamp in the canonical storage form
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a timestamp in the canonical storage form
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// ToMap produces a flat representation of the task: enums as their canonical
// strings, timestamps as sortable text, absent id and due date as explicit nils.
func (t *Task) ToMap() map[string]any {
	m := map[string]any{
		"title":       t.Title,
		"description": t.Description,
		"priority":    t.Priority.String(),
		"status":      t.Status.Label(),
		"tags":        append([]string{}, t.Tags...),
		"created_at":  FormatTime(t.CreatedAt),
		"updated_at":  FormatTime(t.UpdatedAt),
	}
	if t.ID != 0 {
		m["id"] = t.ID
	} else {
		m["id"] = nil
	}
	if t.DueDate != nil {
		m["due_date"] = FormatTime(*t.DueDate)
	} else {
		m["due_date"] = nil
	}
	return m
}

// TaskFromMap is the inverse of ToMap. Missing optional fields fall back to
// the construction defaults; a missing id leaves the task transient.
func TaskFromMap(m map[string]any) (*Task, error) {
	title, _ := m["title"].(string)
	t := NewTask(title)

	if v, ok := m["description"].(string); ok {
		t.Description = v
	}
	if v, ok := m["priority"].(string); ok {
		p, err := ParsePriority(v)
		if err != nil {
			return nil, err
		}
		t.Priority = p
	}
	if v, ok := m["status"].(string); ok {
		s, err := ParseStatus(v)
		if err != nil {
			return nil, err
		}
		t.Status = s
	}
	if v, ok := m["due_date"].(string); ok && v != "" {
		due, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("bad due_date: %w", err)
		}
		t.DueDate = &due
	}
	switch tags := m["tags"].(type) {
	case []string:
		t.Tags = append([]string{}, tags...)
	case []any:
		// JSON decoding yields []any
		t.Tags = make([]string, 0, len(tags))
		for _, v := range tags {
			name, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("bad tag value %v", v)
			}
			t.Tags = append(t.Tags, name)
		}
	}
	if v, ok := m["created_at"].(string); ok {
		ts, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("bad created_at: %w", err)
		}
		t.CreatedAt = ts
	}
	if v, ok := m["updated_at"].(string); ok {
		ts, err := ParseTime(v)
		if err != nil {
			return nil, fmt.Errorf("bad updated_at: %w", err)
		}
		t.UpdatedAt = ts
	}
	switch id := m["id"].(type) {
	case int64:
		t.ID = id
	case int:
		t.ID = int64(id)
	case float64:
		// JSON numbers decode as float64
		t.ID = int64(id)
	}
	return t, nil
}
