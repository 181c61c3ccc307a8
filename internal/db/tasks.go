package db

import (
	"database/sql"
	"time"

	"github.com/taskmasterpro/tm/internal/models"
)

// CreateTask persists a new task inside one transaction: scalar row insert
// plus tag-link sync. The assigned identity is written back into the task
// and returned. Zero timestamps are filled with the current time.
func (db *DB) CreateTask(task *models.Task) (int64, error) {
	if err := task.Validate(); err != nil {
		return 0, err
	}

	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO tasks (title, description, priority, status, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		task.Title,
		task.Description,
		task.Priority.String(),
		task.Status.Label(),
		dueDateValue(task.DueDate),
		models.FormatTime(task.CreatedAt),
		models.FormatTime(task.UpdatedAt),
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := syncTaskTags(tx, id, task.Tags); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	task.ID = id
	return id, nil
}

// GetTask retrieves a task by ID with its resolved tag list. A missing id is
// a normal outcome and returns (nil, nil).
func (db *DB) GetTask(id int64) (*models.Task, error) {
	task, err := scanTask(db.QueryRow(`
		SELECT id, title, description, priority, status, due_date, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tags, err := db.taskTagNames(id)
	if err != nil {
		return nil, err
	}
	task.Tags = tags

	return task, nil
}

// UpdateTask overwrites all mutable fields of an existing task and fully
// replaces its tag links, refreshing updated_at regardless of the value the
// caller supplied. It reports false, leaving the store untouched, when the
// task is transient or the identity no longer exists.
func (db *DB) UpdateTask(task *models.Task) (bool, error) {
	if task.ID == 0 {
		return false, nil
	}
	if err := task.Validate(); err != nil {
		return false, err
	}

	now := time.Now()

	tx, err := db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, status = ?, due_date = ?, updated_at = ?
		WHERE id = ?
	`,
		task.Title,
		task.Description,
		task.Priority.String(),
		task.Status.Label(),
		dueDateValue(task.DueDate),
		models.FormatTime(now),
		task.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := syncTaskTags(tx, task.ID, task.Tags); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	task.UpdatedAt = now
	return true, nil
}

// DeleteTask removes a task; its tag links go with it via the cascade while
// the tags themselves are retained. Idempotent: deleting a missing id reports
// false without error.
func (db *DB) DeleteTask(id int64) (bool, error) {
	result, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// ListTasks returns all tasks, optionally restricted to one status, each with
// its resolved tag list. Ordering is id order; callers sort as needed.
func (db *DB) ListTasks(status *models.Status) ([]models.Task, error) {
	return db.SearchTasks("", status)
}

// SearchTasks returns tasks whose title or description matches the search
// string, optionally restricted to one status. An empty search matches all.
func (db *DB) SearchTasks(search string, status *models.Status) ([]models.Task, error) {
	query := `
		SELECT id, title, description, priority, status, due_date, created_at, updated_at
		FROM tasks
	`
	var (
		conds []string
		args  []interface{}
	)

	if search != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	if status != nil {
		conds = append(conds, "status = ?")
		args = append(args, status.Label())
	}

	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load tags for each task
	for i := range tasks {
		tags, err := db.taskTagNames(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Tags = tags
	}

	return tasks, nil
}

// scanner matches *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanTask is the single row-to-entity mapping: enum strings are parsed
// against their enumerations (failing loudly on unknown values) and stored
// timestamps parsed back into time values.
func scanTask(row scanner) (*models.Task, error) {
	var (
		t         models.Task
		priority  string
		status    string
		dueDate   sql.NullString
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &priority, &status, &dueDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	p, err := models.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	t.Priority = p

	s, err := models.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	t.Status = s

	if dueDate.Valid {
		due, err := models.ParseTime(dueDate.String)
		if err != nil {
			return nil, err
		}
		t.DueDate = &due
	}

	if t.CreatedAt, err = models.ParseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = models.ParseTime(updatedAt); err != nil {
		return nil, err
	}

	return &t, nil
}

func dueDateValue(due *time.Time) interface{} {
	if due == nil {
		return nil
	}
	return models.FormatTime(*due)
}
