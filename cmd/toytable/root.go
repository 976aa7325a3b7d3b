package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-table/internal/debug"
)

const envPrefix = "toytable"

var (
	configFile string
	debugLog   string
)

// RootCommand is the entry point of the CLI.
var RootCommand = &cobra.Command{
	Use:   "toytable",
	Short: "Render data table fixtures in the terminal",
	Long: `toytable loads a YAML table definition, runs it through the table engine
(header layout, column widths, sorting, tree expansion and selection) and
draws the result.

Every flag can also be set with a TOYTABLE_<FLAG> environment variable or in
the config file, e.g. TOYTABLE_CELL_PX=10 or "cell-px: 10".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := applyConfig(cmd, configFile); err != nil {
			return err
		}
		if debugLog != "" {
			if err := debug.Init(debugLog); err != nil {
				return err
			}
			debug.Log("toytable %s: debug logging to %s", cmd.Name(), debugLog)
		}
		return nil
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if debugLog != "" {
			return debug.Close()
		}
		return nil
	},
}

func init() {
	RootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $HOME/.toytable.yaml)")
	RootCommand.PersistentFlags().StringVar(&debugLog, "debug-log", "", "write debug logs to `PATH`")
}

// applyConfig fills every flag the user did not set on the command line from
// TOYTABLE_* environment variables or the config file.
func applyConfig(cmd *cobra.Command, path string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + envPrefix)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		var values []string
		switch f.Value.Type() {
		case "stringSlice", "stringArray":
			values = v.GetStringSlice(f.Name)
		default:
			values = []string{v.GetString(f.Name)}
		}
		for _, val := range values {
			if err := cmd.Flags().Set(f.Name, val); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("error mapping config to command flags: %s", strings.Join(errs, "; "))
	}
	if used := v.ConfigFileUsed(); used != "" {
		debug.Log("toytable: config from %s", filepath.Clean(used))
	}
	return nil
}
