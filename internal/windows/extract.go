package windows

import (
	"context"
	"log/slog"

	"github.com/mj1618/active-window/internal/model"
	"github.com/mj1618/active-window/internal/platform"
	"github.com/mj1618/active-window/internal/scripting"
)

// unknownOwner is reported when neither the window server nor the process
// table has a name for the owner.
const unknownOwner = "<Unknown>"

// ExtractOptions controls what the Extractor is allowed to collect.
type ExtractOptions struct {
	Titles        bool // Report window titles (requires screen recording permission)
	Tabs          bool // Script browsers for their active tab (requires accessibility permission)
	ForegroundPID int  // Owner of the frontmost window; the fallback script only describes this process
}

// Extractor turns an accepted raw window into a model.Window.
type Extractor struct {
	Table   *scripting.Table
	Scripts platform.ScriptRunner
	Logger  *slog.Logger
}

// Extract builds the record for w, owned by proc. A parsed reply always sets
// url and mode, even when the url is empty. Scripting failures are logged and
// leave the record without tab fields; they never fail the call.
func (e *Extractor) Extract(ctx context.Context, w platform.RawWindow, proc platform.Process, opts ExtractOptions) model.Window {
	out := model.Window{
		Platform: model.Platform,
		ID:       *w.Number,
		Bounds: model.Bounds{
			X:      w.Bounds.X,
			Y:      w.Bounds.Y,
			Width:  w.Bounds.Width,
			Height: w.Bounds.Height,
		},
		Owner: model.Owner{
			Name:      ownerName(w, proc),
			ProcessID: *w.OwnerPID,
			BundleID:  proc.BundleID,
			Path:      proc.Path,
		},
		MemoryUsage: w.MemoryUsage,
	}
	if opts.Titles {
		out.Title = w.Name
	}

	if !opts.Tabs || proc.BundleID == "" {
		return out
	}

	family := e.Table.Family(proc.BundleID)
	if family == scripting.FamilyFallback && *w.OwnerPID != opts.ForegroundPID {
		return out
	}

	tab, err := e.readTab(ctx, proc.BundleID)
	if err != nil {
		e.logger().Debug("tab extraction failed",
			"window", out.ID, "bundle_id", proc.BundleID, "family", family.String(), "error", err)
		return out
	}

	out.Title = tab.Title
	out.URL = &tab.URL
	out.Mode = &tab.Mode
	return out
}

func (e *Extractor) readTab(ctx context.Context, bundleID string) (scripting.TabInfo, error) {
	reply, err := e.Scripts.RunScript(ctx, bundleID, e.Table.Command(bundleID))
	if err != nil {
		return scripting.TabInfo{}, err
	}
	return scripting.ParseReply(reply)
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func ownerName(w platform.RawWindow, proc platform.Process) string {
	if w.OwnerName != "" {
		return w.OwnerName
	}
	if proc.Name != "" {
		return proc.Name
	}
	return unknownOwner
}
