// Package windows resolves on-screen windows into reported records: it
// filters raw window-server entries, correlates them with their owning
// application and, for browsers, reads the active tab.
package windows

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mj1618/active-window/internal/model"
	"github.com/mj1618/active-window/internal/platform"
	"github.com/mj1618/active-window/internal/scripting"
)

// Options selects the enumeration mode and the permissions to rely on.
type Options struct {
	// AllWindows reports every on-screen window instead of only the frontmost one.
	AllWindows bool
	// SkipAccessibility skips the accessibility check and disables tab extraction.
	SkipAccessibility bool
	// SkipScreenRecording skips the screen recording check and disables titles.
	SkipScreenRecording bool
}

// PermissionError is returned when a required OS permission is missing.
// Nothing is enumerated when it is returned.
type PermissionError struct {
	Permission platform.Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("active-window requires the %s permission in “%s”.", e.Permission, e.Permission.SettingsPane())
}

// Result is the outcome of one enumeration: a single window, a list, or nothing.
type Result struct {
	Window  *model.Window
	Windows []model.Window
}

// Empty reports whether nothing qualified.
func (r Result) Empty() bool {
	return r.Window == nil && len(r.Windows) == 0
}

// Value returns what should be printed: the window, the list, or nil.
func (r Result) Value() any {
	switch {
	case r.Empty():
		return nil
	case r.Window != nil:
		return r.Window
	default:
		return r.Windows
	}
}

// OwnedBy keeps only the windows owned by pid, preserving order.
func (r Result) OwnedBy(pid int) Result {
	var out Result
	if r.Window != nil && r.Window.Owner.ProcessID == pid {
		out.Window = r.Window
	}
	for _, w := range r.Windows {
		if w.Owner.ProcessID == pid {
			out.Windows = append(out.Windows, w)
		}
	}
	return out
}

// Enumerator runs the window pipeline against a platform.Provider.
type Enumerator struct {
	provider  *platform.Provider
	filter    *Filter
	extractor *Extractor
	logger    *slog.Logger
}

// NewEnumerator creates an Enumerator. A nil table uses scripting.DefaultTable
// and a nil logger discards.
func NewEnumerator(provider *platform.Provider, table *scripting.Table, logger *slog.Logger) *Enumerator {
	if table == nil {
		table = scripting.DefaultTable()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Enumerator{
		provider:  provider,
		filter:    &Filter{Processes: provider.Processes},
		extractor: &Extractor{Table: table, Scripts: provider.Scripts, Logger: logger},
		logger:    logger,
	}
}

// Run checks permissions, then enumerates once. The only error it returns is
// *PermissionError; every other failure yields an empty Result.
func (e *Enumerator) Run(ctx context.Context, opts Options) (Result, error) {
	if err := e.checkPermissions(opts); err != nil {
		return Result{}, err
	}

	frontPID, ok := e.provider.Foreground.ForegroundPID()
	if !ok {
		e.logger.Debug("no frontmost application")
		return Result{}, nil
	}

	raw, err := e.provider.Windows.ListOnScreenWindows()
	if err != nil {
		e.logger.Debug("window list unavailable", "error", err)
		return Result{}, nil
	}

	extractOpts := ExtractOptions{
		Titles:        !opts.SkipScreenRecording,
		Tabs:          !opts.SkipAccessibility,
		ForegroundPID: frontPID,
	}

	var found []model.Window
	for i, w := range raw {
		if !opts.AllWindows && w.OwnerPID != nil && *w.OwnerPID != frontPID {
			continue
		}

		verdict, err := e.filter.Check(w)
		if err != nil {
			e.logger.Warn("skipping window", "index", i, "error", err)
			continue
		}
		if !verdict.Accepted() {
			e.logger.Debug("window rejected", "id", *w.Number, "owner_pid", *w.OwnerPID, "reason", verdict.Reject.String())
			continue
		}

		record := e.extractor.Extract(ctx, w, verdict.Process, extractOpts)
		e.logger.Debug("window accepted", "id", record.ID, "owner", record.Owner.Name, "tab", record.HasTab())
		if !opts.AllWindows {
			return Result{Window: &record}, nil
		}
		found = append(found, record)
	}

	return Result{Windows: found}, nil
}

func (e *Enumerator) checkPermissions(opts Options) error {
	if !opts.SkipAccessibility && !e.provider.Permissions.HasPermission(platform.PermissionAccessibility, true) {
		return &PermissionError{Permission: platform.PermissionAccessibility}
	}
	if !opts.SkipScreenRecording && !e.provider.Permissions.HasPermission(platform.PermissionScreenRecording, true) {
		return &PermissionError{Permission: platform.PermissionScreenRecording}
	}
	return nil
}
