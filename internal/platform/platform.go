package platform

import "context"

// WindowLister snapshots the on-screen windows from the window server.
type WindowLister interface {
	// ListOnScreenWindows returns the raw window records in front-to-back order.
	// Offscreen windows and desktop elements are omitted.
	ListOnScreenWindows() ([]RawWindow, error)
}

// ProcessResolver maps a pid to a live running application.
type ProcessResolver interface {
	// ResolveProcess returns false when the process no longer exists.
	ResolveProcess(pid int) (Process, bool)
}

// ForegroundResolver reports the application that currently has focus.
type ForegroundResolver interface {
	// ForegroundPID returns false when no frontmost application is known.
	ForegroundPID() (int, bool)
}

// ScriptRunner sends a script to a running application and returns its reply.
type ScriptRunner interface {
	RunScript(ctx context.Context, bundleID, script string) (string, error)
}

// PermissionChecker checks (and may prompt for) an OS privacy permission.
type PermissionChecker interface {
	// HasPermission reports whether p is granted. The OS prompt is shown
	// at most once per call when prompt is true.
	HasPermission(p Permission, prompt bool) bool
}
