package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/active-window/internal/output"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"list", "serve", "version"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name       string
		flagType   string
		persistent bool
	}{
		{"open-windows-list", "bool", false},
		{"no-accessibility-permission", "bool", false},
		{"no-screen-recording-permission", "bool", false},
		{"format", "string", true},
		{"pretty", "bool", true},
		{"config", "string", true},
		{"verbose", "bool", true},
	}

	for _, tt := range tests {
		flags := rootCmd.Flags()
		if tt.persistent {
			flags = rootCmd.PersistentFlags()
		}
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestServeCommand_Flags(t *testing.T) {
	tests := []struct {
		name     string
		flagType string
	}{
		{"transport", "string"},
		{"port", "int"},
		{"cache-ttl", "int"},
	}
	for _, tt := range tests {
		f := serveCmd.Flags().Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestPersistentPreRun_ConfigAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "format: yaml\npretty: true\nopen_windows_list: true\nbrowsers:\n  shared-tab: [org.chromium.Chromium]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() {
		output.OutputFormat, output.PrettyOutput = output.FormatJSON, false
		rootCmd.PersistentFlags().Set("config", "")
		rootCmd.PersistentFlags().Set("format", "")
		rootCmd.PersistentFlags().Lookup("config").Changed = false
		rootCmd.PersistentFlags().Lookup("format").Changed = false
	}()

	rootCmd.PersistentFlags().Set("config", path)
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatYAML || !output.PrettyOutput {
		t.Errorf("config not applied: format=%s pretty=%v", output.OutputFormat, output.PrettyOutput)
	}
	if !boolSetting(rootCmd, "open-windows-list", appConfig.OpenWindowsList) {
		t.Error("open_windows_list from config should apply when the flag is unset")
	}
	table, err := browserTable(appConfig)
	if err != nil {
		t.Fatal(err)
	}
	if table.Family("org.chromium.Chromium").String() != "shared-tab" {
		t.Errorf("config browser not added to table")
	}

	rootCmd.PersistentFlags().Set("format", "json")
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatal(err)
	}
	if output.OutputFormat != output.FormatJSON {
		t.Errorf("--format should override config, got %s", output.OutputFormat)
	}
}

func TestPersistentPreRun_BadFormat(t *testing.T) {
	defer func() {
		rootCmd.PersistentFlags().Set("format", "")
		rootCmd.PersistentFlags().Lookup("format").Changed = false
	}()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd.PersistentFlags().Set("format", "xml")
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Fatal("expected error for --format xml")
	}
}
