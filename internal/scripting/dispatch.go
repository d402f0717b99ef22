// Package scripting builds the AppleScript commands that read a browser's
// active tab and parses their replies.
package scripting

import (
	"fmt"
	"sort"
	"strings"
)

// Delimiter separates the url, title and mode fields of a script reply.
const Delimiter = "+++++"

// Family groups applications that expose the same scripting vocabulary.
type Family int

const (
	// FamilyFallback reads the frontmost window title through System Events.
	FamilyFallback Family = iota
	// FamilySharedTab exposes "URL/title of active tab of front window" (Chromium browsers).
	FamilySharedTab
	// FamilyDocument exposes "URL/name of front document" (Safari).
	FamilyDocument
	// FamilyDocumentWindow exposes "URL of front document" and "name of front window" (Orion).
	FamilyDocumentWindow
	// FamilyNamedTab exposes "name of active tab" instead of "title of active tab" (Arc).
	FamilyNamedTab
)

var familyNames = map[Family]string{
	FamilyFallback:       "fallback",
	FamilySharedTab:      "shared-tab",
	FamilyDocument:       "document",
	FamilyDocumentWindow: "document-window",
	FamilyNamedTab:       "named-tab",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// ParseFamily converts a config value such as "shared-tab" into a Family.
func ParseFamily(s string) (Family, error) {
	for f, name := range familyNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return FamilyFallback, fmt.Errorf("unknown browser family: %q (expected shared-tab, document, document-window, or named-tab)", s)
}

var defaultFamilies = map[string]Family{
	"com.google.Chrome":                FamilySharedTab,
	"com.google.Chrome.beta":           FamilySharedTab,
	"com.google.Chrome.dev":            FamilySharedTab,
	"com.google.Chrome.canary":         FamilySharedTab,
	"com.brave.Browser":                FamilySharedTab,
	"com.brave.Browser.beta":           FamilySharedTab,
	"com.brave.Browser.nightly":        FamilySharedTab,
	"com.microsoft.edgemac":            FamilySharedTab,
	"com.microsoft.edgemac.Beta":       FamilySharedTab,
	"com.microsoft.edgemac.Dev":        FamilySharedTab,
	"com.microsoft.edgemac.Canary":     FamilySharedTab,
	"com.mighty.app":                   FamilySharedTab,
	"com.ghostbrowser.gb1":             FamilySharedTab,
	"com.bookry.wavebox":               FamilySharedTab,
	"com.pushplaylabs.sidekick":        FamilySharedTab,
	"com.operasoftware.Opera":          FamilySharedTab,
	"com.operasoftware.OperaNext":      FamilySharedTab,
	"com.operasoftware.OperaDeveloper": FamilySharedTab,
	"com.operasoftware.OperaGX":        FamilySharedTab,
	"com.vivaldi.Vivaldi":              FamilySharedTab,
	"ru.yandex.desktop.yandex-browser": FamilySharedTab,
	"ai.perplexity.comet":              FamilySharedTab,

	"com.apple.Safari":                  FamilyDocument,
	"com.apple.SafariTechnologyPreview": FamilyDocument,

	"com.kagi.kagimacOS": FamilyDocumentWindow,

	"company.thebrowser.Browser": FamilyNamedTab,
	"com.sigmaos.sigmaos.macos":  FamilyNamedTab,
	"com.SigmaOS.SigmaOS":        FamilyNamedTab,
}

// Table maps bundle identifiers to their scripting family. A Table is never
// mutated after construction and is safe for concurrent use.
type Table struct {
	families map[string]Family
}

// DefaultTable returns the built-in browser table.
func DefaultTable() *Table {
	return &Table{families: defaultFamilies}
}

// With returns a copy of t with extra bundle ids added. Entries in extra
// override the built-in ones.
func (t *Table) With(extra map[string]Family) *Table {
	if len(extra) == 0 {
		return t
	}
	families := make(map[string]Family, len(t.families)+len(extra))
	for id, f := range t.families {
		families[id] = f
	}
	for id, f := range extra {
		families[id] = f
	}
	return &Table{families: families}
}

// Family returns the family for bundleID, or FamilyFallback.
func (t *Table) Family(bundleID string) Family {
	if f, ok := t.families[bundleID]; ok {
		return f
	}
	return FamilyFallback
}

// BundleIDs returns the known browser bundle ids, sorted.
func (t *Table) BundleIDs() []string {
	ids := make([]string, 0, len(t.families))
	for id := range t.families {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Command returns the AppleScript that reads the active tab of bundleID.
// Unknown applications get the System Events fallback, which reports an
// empty URL and mode "normal".
func (t *Table) Command(bundleID string) string {
	return t.Family(bundleID).command(bundleID)
}

func (f Family) command(bundleID string) string {
	switch f {
	case FamilySharedTab:
		return tellApp(bundleID,
			"URL of active tab of front window",
			"title of active tab of front window",
			"mode of front window")
	case FamilyDocument:
		return tellApp(bundleID,
			"URL of front document",
			"name of front document",
			`"normal"`)
	case FamilyDocumentWindow:
		return tellApp(bundleID,
			"URL of front document",
			"name of front window",
			`"normal"`)
	case FamilyNamedTab:
		return tellApp(bundleID,
			"URL of active tab of front window",
			"name of active tab of front window",
			"mode of front window")
	default:
		return fallbackCommand
	}
}

func tellApp(bundleID, url, title, mode string) string {
	return fmt.Sprintf(`tell app id %q
	set window_url to %s
	set window_name to %s
	set window_mode to %s
	set window_data to window_url & %q & window_name & %q & window_mode
end tell
window_data`, bundleID, url, title, mode, Delimiter, Delimiter)
}

var fallbackCommand = fmt.Sprintf(`tell application "System Events"
	tell (first process whose frontmost is true)
		set window_url to ""
		set window_name to value of attribute "AXTitle" of window 1
		set window_mode to "normal"
		set window_data to window_url & %q & window_name & %q & window_mode
	end tell
end tell
window_data`, Delimiter, Delimiter)
