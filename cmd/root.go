package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mj1618/active-window/internal/config"
	"github.com/mj1618/active-window/internal/logging"
	"github.com/mj1618/active-window/internal/output"
	"github.com/mj1618/active-window/internal/version"
	"github.com/mj1618/active-window/internal/windows"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "active-window",
	Short: "Print metadata about the active window",
	Long: `Print metadata about the frontmost window (or every on-screen window) as JSON:
owning application, bounds, window id and, for supported browsers, the URL,
title and mode of the active tab.

Prints null when no window qualifies.

Examples:
  active-window
  active-window --open-windows-list --pretty
  active-window --no-accessibility-permission --no-screen-recording-permission`,
	Args:          cobra.NoArgs,
	RunE:          runWindow,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// appConfig and appLogger are set by the root command's PersistentPreRunE.
var (
	appConfig = config.Default()
	appLogger = slog.New(slog.DiscardHandler)
)

// Execute runs the root command and exits non-zero on failure.
// A missing permission prints only its instructions.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var permErr *windows.PermissionError
		if errors.As(err, &permErr) {
			fmt.Fprintln(os.Stderr, permErr.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: json, yaml (default json)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/active-window/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.Flags().Bool("open-windows-list", false, "List every on-screen window instead of only the active one")
	rootCmd.Flags().Bool("no-accessibility-permission", false, "Skip the accessibility permission check and do not read browser tabs")
	rootCmd.Flags().Bool("no-screen-recording-permission", false, "Skip the screen recording permission check and do not report window titles")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		configPath := stringFlag(cmd, "config")
		explicit := configPath != ""
		if !explicit {
			configPath = config.DefaultPath()
		}
		cfg, err := config.Load(configPath, explicit)
		if err != nil {
			return err
		}

		// Flags win over the config file only when set explicitly.
		if f := cmd.Flag("format"); f != nil && f.Changed {
			cfg.Format = f.Value.String()
		}
		format, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput = boolSetting(cmd, "pretty", cfg.Pretty)

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if boolSetting(cmd, "verbose", false) {
			level = slog.LevelDebug
		}

		appConfig = cfg
		appLogger = logging.New(os.Stderr, level)
		return nil
	}
}

// boolSetting returns the named flag when it was set on the command line,
// otherwise fallback (usually the config file value).
func boolSetting(cmd *cobra.Command, name string, fallback bool) bool {
	f := cmd.Flag(name)
	if f == nil || !f.Changed {
		return fallback
	}
	v, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return fallback
	}
	return v
}

func stringFlag(cmd *cobra.Command, name string) string {
	if f := cmd.Flag(name); f != nil {
		return f.Value.String()
	}
	return ""
}
