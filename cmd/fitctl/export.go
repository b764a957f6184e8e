package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all workouts as CSV",
	Long: `Export all workouts as CSV, one row per set.

Writes to stdout unless --out is given. With --out set to a directory the
file is named fitness-export-<today>.csv.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file or directory (default stdout)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	state, closeState, err := openState(cmd.Context())
	if err != nil {
		return err
	}
	defer closeState()

	if exportOut == "" {
		return writeExport(cmd.OutOrStdout(), state)
	}

	path := exportOut
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = fmt.Sprintf("%s/%s", path, export.FileName(state.Today()))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := writeExport(f, state); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d workouts to %s\n", state.Workouts.Len(), path)
	return nil
}

func writeExport(w io.Writer, state *app.State) error {
	snap := state.Snapshot()
	return export.WriteCSV(w, snap.Entries, snap.Catalog)
}
