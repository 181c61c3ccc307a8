package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskmasterpro/tm/internal/db"
	"github.com/taskmasterpro/tm/internal/logger"
	"github.com/taskmasterpro/tm/internal/settings"
	"github.com/taskmasterpro/tm/internal/ui"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "tm",
	Short:         "TaskMaster, a terminal task manager",
	Long:          "TaskMaster manages a local list of tasks with priorities, statuses, due dates and tags.\nRun without arguments to open the interactive interface.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the task database (default: XDG data dir)")
}

// openStore opens the task store, honoring the --db flag
func openStore() (*db.DB, error) {
	if dbPath != "" {
		return db.Open(dbPath)
	}
	return db.New()
}

func runTUI(cmd *cobra.Command, args []string) error {
	dataDir, err := db.DataDir()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file in the data dir
	log, err := logger.New(filepath.Join(dataDir, "taskmaster.log"))
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := settings.New(filepath.Join(dataDir, "settings.json"))
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer store.Close()

	log.Infow("starting", "version", version)

	app := ui.NewApp(store, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorw("program exited with error", "error", err)
		return err
	}

	log.Infow("shutting down")
	return nil
}
