package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sashworth/tonepick/internal/media/sqlite"
	"github.com/sashworth/tonepick/internal/scanner"
)

var flagWatch bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Index the sounds directory",
	Long: `Walk the sounds directory and reconcile the sound index with it: new
audio files are registered, renamed files keep their URI, and entries for
deleted files are removed.

With --watch the scan reruns whenever the directory changes.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "keep watching for changes")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	teardown, err := setup(ctx)
	if err != nil {
		return err
	}
	defer teardown()

	db, err := sqlite.Open(cfg.LibraryPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	s := scanner.New(db, cfg.SoundsDir)
	if err := s.Seed(ctx); err != nil {
		return err
	}

	stats, err := s.Scan(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d new, updated %d, removed %d, kept %d\n",
		stats.Indexed, stats.Updated, stats.Removed, stats.Kept)

	if flagWatch {
		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", s.Dir())
		return s.Watch(ctx)
	}
	return nil
}
