package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskmasterpro/tm/internal/models"
)

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all tasks as JSON",
	Long:  "Export every task in its flat representation as a JSON array, to the given file or stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		tasks, err := store.ListTasks(nil)
		if err != nil {
			return err
		}

		out := make([]map[string]any, 0, len(tasks))
		for i := range tasks {
			out = append(out, tasks[i].ToMap())
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if len(args) == 0 {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(args[0], data, 0644)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks from a JSON export",
	Long:  "Read a JSON array of flat task representations and create each entry as a new task. Identities from the export are not preserved.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var entries []map[string]any
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		for i, entry := range entries {
			task, err := models.TaskFromMap(entry)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			task.ID = 0 // imported tasks get fresh identities
			if _, err := store.CreateTask(task); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}

		fmt.Printf("Imported %d tasks\n", len(entries))
		return nil
	},
}
