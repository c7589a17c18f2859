package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/db"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import weeks from another database",
		Long: `Import every stored week from another weekgrid database into the current one.
Weeks that already exist are kept unless --overwrite is given.

Example:
  weekgrid import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := a.ensurePlanner(cmd.Context())
			if err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return errors.New("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			count, err := importWeeks(cmd.Context(), planner, sourcePath, overwrite)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d weeks from %s\n", count, sourcePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace weeks that already exist")
	return cmd
}

// importWeeks copies the weeks stored in the database at sourcePath into
// dest. The source is opened read-only.
func importWeeks(ctx context.Context, dest *schedule.Planner, sourcePath string, overwrite bool) (int, error) {
	source, err := db.OpenReadOnly(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = source.Close() }()

	raw, ok, err := source.Get(ctx, schedule.KeyScheduleData)
	if err != nil {
		return 0, fmt.Errorf("reading source database: %w", err)
	}
	if !ok {
		return 0, nil
	}
	if updated, ok, err := source.UpdatedAt(ctx, schedule.KeyScheduleData); err == nil && ok {
		log.WithFields(log.Fields{
			"source":  sourcePath,
			"updated": updated.Format(time.RFC3339),
		}).Debug("importing weeks")
	}

	var stored map[string]schedule.Week
	if err := json.Unmarshal(raw, &stored); err != nil {
		return 0, fmt.Errorf("decoding source weeks: %w", err)
	}
	weeks := make(map[string]schedule.Week, len(stored))
	for key, w := range stored {
		if w == nil {
			continue
		}
		weeks[key] = w
	}
	return dest.ImportWeeks(ctx, weeks, overwrite), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
