// Package cmd wires the tonepick commands: the picker itself, the library
// scanner, and config bootstrap.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sashworth/tonepick/internal/audio"
	"github.com/sashworth/tonepick/internal/config"
	"github.com/sashworth/tonepick/internal/locale"
	"github.com/sashworth/tonepick/internal/log"
	"github.com/sashworth/tonepick/internal/media/domain"
	"github.com/sashworth/tonepick/internal/media/sqlite"
	"github.com/sashworth/tonepick/internal/picker"
	"github.com/sashworth/tonepick/internal/scanner"
	"github.com/sashworth/tonepick/internal/telemetry"
	pickerui "github.com/sashworth/tonepick/internal/ui/picker"
)

// ErrCancelled signals that the user left the picker without changing the
// sound. main maps it to exit status 1 with no message.
var ErrCancelled = errors.New("cancelled")

var (
	cfg        config.Config
	configPath string

	flagCategory       string
	flagExisting       string
	flagDefaultURI     string
	flagTitle          string
	flagNoDefault      bool
	flagNoSilent       bool
	flagNoButtons      bool
	flagEnforceAudible bool
	flagBypassMix      bool
	flagLibrary        string
	flagSoundsDir      string
)

var rootCmd = &cobra.Command{
	Use:   "tonepick",
	Short: "Pick a ringtone, notification, or alarm sound",
	Long: `Tonepick shows the sound library for a category, previews sounds as you
move through the list, and prints the URI of the sound you choose.

The chosen URI goes to stdout; everything else stays on stderr. Exit
status 0 means a sound was chosen, 1 means the selection was cancelled
or unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPicker,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "sound index database")
	rootCmd.PersistentFlags().StringVar(&flagSoundsDir, "sounds-dir", "", "directory of audio files")

	rootCmd.Flags().StringVarP(&flagCategory, "category", "c", "ringtone", "sound category: ringtone, notification, alarm")
	rootCmd.Flags().StringVarP(&flagExisting, "existing", "e", "", "currently selected URI; empty means silent")
	rootCmd.Flags().StringVar(&flagDefaultURI, "default-uri", "", "URI emitted for the Default row")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "picker title")
	rootCmd.Flags().BoolVar(&flagNoDefault, "no-default", false, "hide the Default row")
	rootCmd.Flags().BoolVar(&flagNoSilent, "no-silent", false, "hide the None row")
	rootCmd.Flags().BoolVar(&flagNoButtons, "no-buttons", false, "pick on selection instead of OK/Cancel")
	rootCmd.Flags().BoolVar(&flagEnforceAudible, "enforce-audible", false, "preview at full volume")
	rootCmd.Flags().BoolVar(&flagBypassMix, "bypass-mix", false, "preview bypassing the shared mix")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads config, logging, and tracing. It returns the teardown func.
func setup(ctx context.Context) (func(), error) {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if flagLibrary != "" {
		cfg.LibraryPath = flagLibrary
	}
	if flagSoundsDir != "" {
		cfg.SoundsDir = flagSoundsDir
	}

	if err := log.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("initializing log: %w", err)
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		_ = log.Close()
		return nil, fmt.Errorf("initializing telemetry: %w", err)
	}

	return func() {
		_ = shutdown(ctx)
		_ = log.Close()
	}, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	teardown, err := setup(ctx)
	if err != nil {
		return err
	}
	defer teardown()

	category := domain.ParseCategory(flagCategory)
	if category == domain.CategoryUnknown {
		return fmt.Errorf("unknown category %q", flagCategory)
	}

	db, err := sqlite.Open(cfg.LibraryPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := scanner.New(db, cfg.SoundsDir).Seed(ctx); err != nil {
		log.Warn(log.CatScan, "Seeding failed, continuing with existing index", "error", err)
	}

	engine := audio.NewEngine()
	names := locale.New(cfg.Locale, "title")
	enum := sqlite.NewEnumerator(db, engine, names)

	var flags domain.AttributeFlags
	if flagEnforceAudible {
		flags |= domain.FlagEnforceAudible
	}
	if flagBypassMix {
		flags |= domain.FlagBypassMix
	}

	ctrl := picker.NewController(picker.Config{
		Category:       category,
		ShowDefault:    cfg.Picker.ShowDefault && !flagNoDefault,
		ShowSilent:     cfg.Picker.ShowSilent && !flagNoSilent,
		DefaultURI:     flagDefaultURI,
		ExistingURI:    flagExisting,
		Title:          flagTitle,
		AttributeFlags: flags,
		ShowOkCancel:   cfg.Picker.ShowOkCancel && !flagNoButtons,
	}, enum, enum, picker.NewRegistry(), names)

	if err := ctrl.Open(picker.PosUnknown); err != nil {
		return err
	}
	defer enum.Deactivate()

	// The enumerator knows its stream only once Open has set the category.
	engine.SetStream(enum.PreferredStream())

	// stdout carries the chosen URI; the UI renders on stderr.
	program := tea.NewProgram(pickerui.New(ctrl),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	result := final.(pickerui.Model).Result()
	ctrl.Stop(false)

	if !result.Accepted {
		return ErrCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.URI)
	return nil
}
