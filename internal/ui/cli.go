package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/db"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store     schedule.Store
	ownsStore bool
	planner   *schedule.Planner
	config    *config.Config
	root      *cobra.Command
	debug     bool // Enable debug logging
	logFile   io.Closer
	now       func() time.Time
}

// NewApp creates a new CLI application with the given store and config.
// A nil store is opened from the configured database path on first use.
func NewApp(store schedule.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "weekgrid",
		Short: "A weekly planner that follows you across timezones",
		Long: `Weekgrid is a weekly schedule editor built around half-hour blocks.

Blocks are stored in a fixed reference timezone and shown in whichever
display timezone you pick, so a plan made in Manila still lines up when
you are in New York.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			closer, err := setupLogging(a.debug, cmd == a.root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logFile = closer
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(planner, a.config)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.setCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.templateCmd())
	a.root.AddCommand(a.autoSeedCmd())
	a.root.AddCommand(a.notesCmd())
	a.root.AddCommand(a.offsetCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.ExecuteContext(context.Background())
}

// Close releases the store if the app opened it, and the debug log.
func (a *App) Close() error {
	var err error
	if a.ownsStore && a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
	return err
}

// ensurePlanner opens the store if needed and loads the planner once.
func (a *App) ensurePlanner(ctx context.Context) (*schedule.Planner, error) {
	if a.planner != nil {
		return a.planner, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if a.store == nil {
		store, err := openStore(a.config.Storage.DBPath)
		if err != nil {
			return nil, err
		}
		a.store = store
		a.ownsStore = true
	}
	ref, err := a.config.ReferenceLocation()
	if err != nil {
		return nil, err
	}
	a.planner = schedule.Load(ctx, a.store, ref)
	return a.planner, nil
}

func openStore(dbPath string) (*db.SQLite, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	store, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return store, nil
}
