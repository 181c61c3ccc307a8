package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskmasterpro/tm/internal/models"
)

var (
	addDesc     string
	addPriority string
	addStatus   string
	addDue      string
	addTags     []string

	listStatus string
)

func init() {
	addCmd.Flags().StringVarP(&addDesc, "desc", "m", "", "task description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "status (todo, in-progress, completed, archived)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "tags (comma separated)")

	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "only tasks with this status")

	rootCmd.AddCommand(addCmd, listCmd, showCmd, doneCmd, rmCmd, tagsCmd)
}

// priorityFromArg accepts the canonical name in any case
func priorityFromArg(arg string) (models.Priority, error) {
	return models.ParsePriority(strings.ToUpper(strings.TrimSpace(arg)))
}

// statusFromArg accepts the display label or a compact lowercase form
func statusFromArg(arg string) (models.Status, error) {
	if s, err := models.ParseStatus(arg); err == nil {
		return s, nil
	}
	switch strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(arg))) {
	case "todo":
		return models.StatusTodo, nil
	case "inprogress":
		return models.StatusInProgress, nil
	case "completed", "done":
		return models.StatusCompleted, nil
	case "archived":
		return models.StatusArchived, nil
	}
	return 0, fmt.Errorf("unknown status %q", arg)
}

func dueFromArg(arg string) (*time.Time, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if due, err := time.ParseInLocation(layout, arg, time.Local); err == nil {
			return &due, nil
		}
	}
	return nil, fmt.Errorf("bad due date %q (want YYYY-MM-DD)", arg)
}

func idFromArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad task id %q", arg)
	}
	return id, nil
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		task := models.NewTask(strings.Join(args, " "))
		task.Description = addDesc
		task.Tags = addTags

		if addPriority != "" {
			if task.Priority, err = priorityFromArg(addPriority); err != nil {
				return err
			}
		}
		if addStatus != "" {
			if task.Status, err = statusFromArg(addStatus); err != nil {
				return err
			}
		}
		if task.DueDate, err = dueFromArg(addDue); err != nil {
			return err
		}

		id, err := store.CreateTask(task)
		if err != nil {
			return err
		}
		fmt.Printf("Created task %d\n", id)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var filter *models.Status
		if listStatus != "" {
			s, err := statusFromArg(listStatus)
			if err != nil {
				return err
			}
			filter = &s
		}

		tasks, err := store.ListTasks(filter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE\tTAGS")
		for _, t := range tasks {
			due := "-"
			if t.DueDate != nil {
				due = t.DueDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Title, t.Priority, t.Status.Label(), due, strings.Join(t.Tags, ","))
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idFromArg(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		task, err := store.GetTask(id)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %d not found", id)
		}

		fmt.Printf("Task %d: %s\n", task.ID, task.Title)
		if task.Description != "" {
			fmt.Printf("  Description: %s\n", task.Description)
		}
		fmt.Printf("  Priority:    %s\n", task.Priority)
		fmt.Printf("  Status:      %s\n", task.Status.Label())
		if task.DueDate != nil {
			fmt.Printf("  Due:         %s\n", task.DueDate.Format("2006-01-02 15:04"))
		}
		if len(task.Tags) > 0 {
			fmt.Printf("  Tags:        %s\n", strings.Join(task.Tags, ", "))
		}
		fmt.Printf("  Created:     %s\n", task.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("  Updated:     %s\n", task.UpdatedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idFromArg(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		task, err := store.GetTask(id)
		if err != nil {
			return err
		}
		if task == nil {
			return fmt.Errorf("task %d not found", id)
		}

		task.Status = models.StatusCompleted
		ok, err := store.UpdateTask(task)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("task %d not found", id)
		}
		fmt.Printf("Completed task %d: %s\n", task.ID, task.Title)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idFromArg(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.DeleteTask(id)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Printf("Task %d not found, nothing deleted\n", id)
			return nil
		}
		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all known tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		tags, err := store.ListTags()
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Println(t.Name)
		}
		return nil
	},
}
