package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/folio/internal/config"
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing folio.yaml")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the effective configuration as YAML: defaults, overlaid by the
config file (./folio.yaml, then $XDG_CONFIG_HOME/folio/folio.yaml, or
--config), overlaid by FOLIO_* environment variables.`,
	Example: `  # Show configuration
  folio config

  # Override a value for one run
  FOLIO_RECENT_LIMIT=10 folio config

  See Also: folio config init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a folio.yaml with default settings",
	Long:  `Write folio.yaml in the current directory with every setting at its default.`,
	Example: `  # Create ./folio.yaml
  folio config init

  # Replace an existing file
  folio config init --force

  See Also: folio config`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if used := config.Used(); used != "" {
		fmt.Fprintf(w, "# %s\n", used)
	} else {
		fmt.Fprintln(w, "# no config file; defaults and environment only")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(currentConfig()); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrap(enc.Close(), "encoding config")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := config.ConfigName + ".yaml"

	exists, err := fileutil.Exists(path)
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	if exists && !configInitForce {
		abs, _ := filepath.Abs(path)
		return errors.NewUserError(errors.Newf("configuration already exists at %s", abs), "Use --force to overwrite")
	}

	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
