package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sashworth/tonepick/internal/config"
	"github.com/sashworth/tonepick/internal/paths"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
