package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mj1618/active-window/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleWindow() model.Window {
	url, mode := "https://example.com/?a=1&b=<2>", "normal"
	return model.Window{
		Platform: model.Platform,
		Title:    "Example",
		ID:       42,
		Bounds:   model.Bounds{X: 0, Y: 25, Width: 1440, Height: 875},
		Owner:    model.Owner{Name: "Safari", ProcessID: 1234, BundleID: "com.apple.Safari", Path: "/Applications/Safari.app"},
		URL:      &url,
		Mode:     &mode,
	}
}

func TestPrint_JSONToStdout(t *testing.T) {
	OutputFormat, PrettyOutput = FormatJSON, false
	defer func() { OutputFormat, PrettyOutput = FormatJSON, false }()

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := Print(sampleWindow())
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()

	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact output should be a single line, got:\n%s", out)
	}
	if !strings.Contains(out, "a=1&b=<2>") {
		t.Errorf("HTML characters should not be escaped: %s", out)
	}

	var decoded model.Window
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Owner.BundleID != "com.apple.Safari" {
		t.Errorf("bundleId: got %q", decoded.Owner.BundleID)
	}
}

func TestEncode_NilIsNull(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, FormatJSON, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "null\n" {
		t.Errorf("got %q, want %q", buf.String(), "null\n")
	}

	buf.Reset()
	if err := Encode(&buf, nil, FormatYAML, false); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "null" {
		t.Errorf("yaml nil: got %q", buf.String())
	}
}

func TestEncode_JSONList(t *testing.T) {
	var buf bytes.Buffer
	windows := []model.Window{sampleWindow(), {Platform: model.Platform, ID: 7}}
	if err := Encode(&buf, windows, FormatJSON, true); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), "[\n  {") {
		t.Errorf("pretty list should be indented, got:\n%s", buf.String())
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d entries, want 2", len(decoded))
	}
	if _, ok := decoded[1]["url"]; ok {
		t.Error("unenriched window should not have url")
	}
}

func TestEncode_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleWindow(), FormatYAML, false); err != nil {
		t.Fatal(err)
	}

	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", buf.String())
	}
	var decoded model.Window
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.URL == nil || *decoded.URL != "https://example.com/?a=1&b=<2>" {
		t.Errorf("url round trip: %v", decoded.URL)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "agent", "JSON"} {
		if _, err := ParseFormat(s); err == nil {
			t.Errorf("ParseFormat(%q) should fail", s)
		}
	}
}
