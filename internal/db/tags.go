package db

import (
	"database/sql"

	"github.com/taskmasterpro/tm/internal/models"
)

// syncTaskTags fully replaces the tag links for a task: existing links are
// removed, then each tag name is resolved (reusing a known tag or creating a
// new record) and linked. Duplicate names in the list collapse through the
// primary key via INSERT OR IGNORE. Runs inside the caller's transaction.
func syncTaskTags(tx *sql.Tx, taskID int64, tags []string) error {
	if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", taskID); err != nil {
		return err
	}

	for _, name := range tags {
		tagID, err := getOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)
		`, taskID, tagID); err != nil {
			return err
		}
	}

	return nil
}

// getOrCreateTag resolves a tag name to its identity, creating the record on
// first use. The no-op-on-conflict insert tolerates a concurrent writer
// landing the same name first.
func getOrCreateTag(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	if _, err := tx.Exec("INSERT OR IGNORE INTO tags (name) VALUES (?)", name); err != nil {
		return 0, err
	}
	err = tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	return id, err
}

// taskTagNames returns the resolved tag names for a task
func (db *DB) taskTagNames(taskID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT t.name
		FROM tags t
		JOIN task_tags tt ON t.id = tt.tag_id
		WHERE tt.task_id = ?
		ORDER BY t.name
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListTags returns all known tags, including ones no task references
func (db *DB) ListTags() ([]models.Tag, error) {
	rows, err := db.Query("SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
