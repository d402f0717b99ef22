package platform

import "fmt"

// Rect is the raw bounds rectangle reported by the window server.
type Rect struct {
	X, Y, Width, Height float64
}

// RawWindow is one entry of the window server's on-screen list, before filtering.
// Number, OwnerPID, Alpha and Bounds are documented to always be present;
// nil means the window server broke that contract for this entry.
type RawWindow struct {
	Number      *int
	OwnerPID    *int
	Alpha       *float64
	Bounds      *Rect
	Name        string // Window title; empty without screen recording permission
	OwnerName   string
	MemoryUsage int64
}

// Process is a running application resolved from a pid.
type Process struct {
	PID      int
	Name     string // Localized application name, or the kernel process name
	BundleID string
	Path     string // Bundle path, or executable path for unbundled processes
}

// Permission identifies an OS privacy permission.
type Permission int

const (
	// PermissionAccessibility is needed to script other applications.
	PermissionAccessibility Permission = iota
	// PermissionScreenRecording is needed to read window titles.
	PermissionScreenRecording
)

func (p Permission) String() string {
	switch p {
	case PermissionAccessibility:
		return "accessibility"
	case PermissionScreenRecording:
		return "screen recording"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// SettingsPane returns the System Settings location where p is granted.
func (p Permission) SettingsPane() string {
	switch p {
	case PermissionAccessibility:
		return "System Settings › Privacy & Security › Accessibility"
	case PermissionScreenRecording:
		return "System Settings › Privacy & Security › Screen Recording"
	default:
		return "System Settings › Privacy & Security"
	}
}
