package cmd

import (
	"github.com/mj1618/active-window/internal/config"
	"github.com/mj1618/active-window/internal/output"
	"github.com/mj1618/active-window/internal/platform"
	"github.com/mj1618/active-window/internal/scripting"
	"github.com/mj1618/active-window/internal/windows"
	"github.com/spf13/cobra"
)

func runWindow(cmd *cobra.Command, args []string) error {
	enumerator, err := newEnumerator(appConfig)
	if err != nil {
		return err
	}

	opts := windows.Options{
		AllWindows:          boolSetting(cmd, "open-windows-list", appConfig.OpenWindowsList),
		SkipAccessibility:   boolSetting(cmd, "no-accessibility-permission", appConfig.NoAccessibilityPermission),
		SkipScreenRecording: boolSetting(cmd, "no-screen-recording-permission", appConfig.NoScreenRecordingPermission),
	}

	result, err := enumerator.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return output.Print(result.Value())
}

// newEnumerator wires the platform provider and the browser table from cfg.
func newEnumerator(cfg *config.Config) (*windows.Enumerator, error) {
	provider, err := platform.NewProvider(platform.ProviderConfig{
		ScriptTimeout: cfg.ScriptTimeout,
	})
	if err != nil {
		return nil, err
	}
	table, err := browserTable(cfg)
	if err != nil {
		return nil, err
	}
	return windows.NewEnumerator(provider, table, appLogger), nil
}

// browserTable extends the built-in browser table with the config's entries.
func browserTable(cfg *config.Config) (*scripting.Table, error) {
	extra, err := cfg.Families()
	if err != nil {
		return nil, err
	}
	table := scripting.DefaultTable().With(extra)
	appLogger.Debug("browser table", "bundle_ids", table.BundleIDs())
	return table, nil
}
