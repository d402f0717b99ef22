package windows

import (
	"errors"
	"fmt"

	"github.com/mj1618/active-window/internal/platform"
)

// MinWindowSize is the smallest width and height of a reported window.
// Anything smaller is a tooltip, link-hover status bar or similar overlay.
const MinWindowSize = 50

// ShellBundleID is the Dock, which owns the desktop and Mission Control surfaces.
const ShellBundleID = "com.apple.dock"

// ErrMalformedWindow is returned for a raw window missing a field the window
// server documents as always present.
var ErrMalformedWindow = errors.New("malformed window record")

// Reject explains why a raw window was not reported.
type Reject int

const (
	Accepted Reject = iota
	RejectTransparent
	RejectTooSmall
	RejectNoProcess
	RejectShell
)

func (r Reject) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectTransparent:
		return "transparent"
	case RejectTooSmall:
		return "too small"
	case RejectNoProcess:
		return "owner not running"
	case RejectShell:
		return "dock"
	default:
		return fmt.Sprintf("reject(%d)", int(r))
	}
}

// Verdict is the outcome of Filter.Check. Process is only set when accepted.
type Verdict struct {
	Reject  Reject
	Process platform.Process
}

// Accepted reports whether the window should be reported.
func (v Verdict) Accepted() bool {
	return v.Reject == Accepted
}

// Filter decides whether a raw window is a real, user-visible window.
type Filter struct {
	Processes platform.ProcessResolver
}

// Check applies the rejection rules in order: transparency, size, owner
// liveness, then the Dock. Resolving the owner is the only check against
// processes that exited after the window list was captured.
func (f *Filter) Check(w platform.RawWindow) (Verdict, error) {
	if err := validate(w); err != nil {
		return Verdict{}, err
	}

	if *w.Alpha == 0 {
		return Verdict{Reject: RejectTransparent}, nil
	}

	if w.Bounds.Width < MinWindowSize || w.Bounds.Height < MinWindowSize {
		return Verdict{Reject: RejectTooSmall}, nil
	}

	proc, ok := f.Processes.ResolveProcess(*w.OwnerPID)
	if !ok {
		return Verdict{Reject: RejectNoProcess}, nil
	}

	if proc.BundleID == ShellBundleID {
		return Verdict{Reject: RejectShell}, nil
	}

	return Verdict{Reject: Accepted, Process: proc}, nil
}

func validate(w platform.RawWindow) error {
	switch {
	case w.Alpha == nil:
		return fmt.Errorf("%w: no alpha", ErrMalformedWindow)
	case w.Bounds == nil:
		return fmt.Errorf("%w: no bounds", ErrMalformedWindow)
	case w.OwnerPID == nil:
		return fmt.Errorf("%w: no owner pid", ErrMalformedWindow)
	case w.Number == nil:
		return fmt.Errorf("%w: no window number", ErrMalformedWindow)
	}
	return nil
}
