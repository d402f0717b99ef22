//go:build darwin && cgo

package darwin

import (
	"github.com/mj1618/active-window/internal/platform"
	"github.com/progrium/darwinkit/macos/appkit"
	"github.com/progrium/darwinkit/macos/foundation"
	"golang.org/x/sys/unix"
)

// Applications resolves pids to running applications through NSWorkspace.
// It implements platform.ProcessResolver and platform.ForegroundResolver.
type Applications struct {
	workspace appkit.Workspace
}

// NewApplications creates a resolver backed by the shared workspace.
func NewApplications() *Applications {
	return &Applications{
		workspace: appkit.Workspace_SharedWorkspace(),
	}
}

// ForegroundPID returns the pid of the frontmost application.
func (a *Applications) ForegroundPID() (int, bool) {
	app := a.workspace.FrontmostApplication()
	if app.Ptr() == nil {
		return 0, false
	}
	return int(app.ProcessIdentifier()), true
}

// ResolveProcess looks up the running application for pid. A process that
// has exited since the window list was captured resolves to false.
func (a *Applications) ResolveProcess(pid int) (platform.Process, bool) {
	if pid <= 0 || !processAlive(pid) {
		return platform.Process{}, false
	}

	app := appkit.RunningApplication_RunningApplicationWithProcessIdentifier(int32(pid))
	if app.Ptr() == nil || app.IsTerminated() {
		return platform.Process{}, false
	}

	proc := platform.Process{
		PID:      pid,
		Name:     app.LocalizedName(),
		BundleID: app.BundleIdentifier(),
		Path:     urlPath(app.BundleURL()),
	}
	if proc.Path == "" {
		proc.Path = urlPath(app.ExecutableURL())
	}
	if proc.Name == "" {
		proc.Name = kernelProcessName(pid)
	}
	return proc, true
}

func urlPath(u foundation.URL) string {
	if u.Ptr() == nil {
		return ""
	}
	return u.Path()
}

// processAlive probes pid with signal 0. EPERM still means the process exists.
func processAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || err == unix.EPERM
}

func kernelProcessName(pid int) string {
	kp, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		return ""
	}
	return unix.ByteSliceToString(kp.Proc.P_comm[:])
}
