package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hailam/mksample/internal/adapters/factory"
	adapterutils "github.com/hailam/mksample/internal/adapters/utils"
	"github.com/hailam/mksample/internal/application"
	"github.com/hailam/mksample/internal/ports"
	"github.com/hailam/mksample/internal/utils"
)

// Variables to hold flag values
var (
	modeStr  string
	seed     int64
	logLevel string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mksample <size-mb> [output-path]",
		Short: "Generates a sample file of an exact size in whole MiB.",
		Long: `mksample creates fixture files for testing tools that consume large
files (HTTP transfer, parsers, entropy-sensitive code paths).

The size argument is a whole number of MiB (1 MiB = 1,048,576 bytes).
Content is one of three patterns: a repeating readable sentence (text),
all zero bytes (zero), or random bytes (random). Whatever the pattern,
the produced file is always exactly size*1048576 bytes long.`,
		Args: cobra.MaximumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			// Zero arguments means the user wants to know how to drive this.
			if len(args) == 0 {
				_ = cmd.Help()
				return
			}

			if err := configureLogging(logLevel); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			// --- Composition Root: Initialize Adapters and Core Logic ---
			var fillerFactory ports.FillerFactory
			if cmd.Flags().Changed("seed") {
				fillerFactory = factory.NewSeededFillerFactory(seed)
			} else {
				fillerFactory = factory.NewStaticFillerFactory()
			}
			sizeResolver := adapterutils.NewUnitSizeResolver()
			sampleService := application.NewSampleService(fillerFactory, sizeResolver)
			// --- End Composition Root ---

			unitsSpec := args[0]
			outPath := ""
			if len(args) > 1 {
				outPath = args[1]
			}

			// Spin only on a terminal; piped stderr stays clean.
			var sp *spinner.Spinner
			if isatty.IsTerminal(os.Stderr.Fd()) {
				sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
					spinner.WithWriter(os.Stderr))
				sp.Suffix = fmt.Sprintf(" generating %s sample", modeStr)
				sp.Start()
			}

			path, sizeBytes, err := sampleService.CreateSample(outPath, unitsSpec, modeStr)

			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				log.Error().Err(err).Msg("sample generation failed")
				os.Exit(1)
			}

			log.Info().
				Str("path", path).
				Int64("bytes", sizeBytes).
				Str("size", utils.FormatBytes(sizeBytes)).
				Str("mode", modeStr).
				Msg("sample generated")
		},
	}

	// Define flags
	rootCmd.Flags().StringVarP(&modeStr, "mode", "m", "text",
		"Content pattern: text, zero or random")
	rootCmd.Flags().Int64Var(&seed, "seed", 0,
		"Deterministic seed for the random pattern (default: system entropy)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("Log level: %s, %s, %s or %s",
			zerolog.LevelDebugValue, zerolog.LevelInfoValue,
			zerolog.LevelWarnValue, zerolog.LevelErrorValue))

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}

func configureLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
	return nil
}
