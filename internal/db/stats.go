package db

import (
	"time"

	"github.com/taskmasterpro/tm/internal/models"
)

// TaskCount returns the number of tasks
func (db *DB) TaskCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count)
	return count, err
}

// TagCount returns the number of tag records, orphans included
func (db *DB) TagCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&count)
	return count, err
}

// StatusCounts returns the number of tasks per status. Statuses with no
// tasks are present with a zero count.
func (db *DB) StatusCounts() (map[models.Status]int, error) {
	counts := make(map[models.Status]int, len(models.Statuses()))
	for _, s := range models.Statuses() {
		counts[s] = 0
	}

	rows, err := db.Query("SELECT status, COUNT(*) FROM tasks GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			label string
			n     int
		)
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		s, err := models.ParseStatus(label)
		if err != nil {
			return nil, err
		}
		counts[s] = n
	}
	return counts, rows.Err()
}

// PriorityCounts returns the number of tasks per priority level
func (db *DB) PriorityCounts() (map[models.Priority]int, error) {
	counts := make(map[models.Priority]int, len(models.Priorities()))
	for _, p := range models.Priorities() {
		counts[p] = 0
	}

	rows, err := db.Query("SELECT priority, COUNT(*) FROM tasks GROUP BY priority")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		p, err := models.ParsePriority(name)
		if err != nil {
			return nil, err
		}
		counts[p] = n
	}
	return counts, rows.Err()
}

// OverdueCount returns the number of open tasks whose due date has passed.
// Completed and archived tasks are never overdue. Relies on the lexical
// ordering of the stored timestamp form.
func (db *DB) OverdueCount(now time.Time) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM tasks
		WHERE due_date IS NOT NULL
		  AND due_date < ?
		  AND status NOT IN (?, ?)
	`,
		models.FormatTime(now),
		models.StatusCompleted.Label(),
		models.StatusArchived.Label(),
	).Scan(&count)
	return count, err
}
