// Package commands implements the CLI commands for folio.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/folio/cmd"
	"github.com/thoreinstein/folio/internal/config"
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./folio.yaml, then $XDG_CONFIG_HOME/folio/folio.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("folio version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

// currentConfig returns the loaded configuration, or defaults when loading
// has not happened.
func currentConfig() *config.Config {
	if loadedConfig == nil {
		return config.Default()
	}
	return loadedConfig
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Blog tooling for a static documentation site",
	Long: `folio supports a Markdown documentation site that carries a blog.

It scaffolds new posts with generated frontmatter and lists the most
recent posts (pages whose frontmatter type is "post"), newest first.`,
	Example: `  # Create a post
  folio new "Hello World" "My first post" --tags go,cli

  # Show the six most recent posts
  folio recent

  # Render the listing as HTML and keep it up to date
  folio recent --format html --watch

  See Also: folio config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pass only one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("FOLIO_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat), "Use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check that the --log-file directory exists and is writable")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces config load errors for commands that need the config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "gen-doc", "init":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
