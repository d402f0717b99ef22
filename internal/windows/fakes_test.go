package windows

import (
	"context"
	"errors"

	"github.com/mj1618/active-window/internal/platform"
)

func intPtr(v int) *int                { return &v }
func floatPtr(v float64) *float64      { return &v }
func rect(w, h float64) *platform.Rect { return &platform.Rect{X: 10, Y: 20, Width: w, Height: h} }

// rawWindow returns a well-formed, visible 800x600 window.
func rawWindow(number, pid int, name string) platform.RawWindow {
	return platform.RawWindow{
		Number:      intPtr(number),
		OwnerPID:    intPtr(pid),
		Alpha:       floatPtr(1),
		Bounds:      rect(800, 600),
		Name:        name,
		OwnerName:   "",
		MemoryUsage: 2048,
	}
}

type fakeProcesses map[int]platform.Process

func (f fakeProcesses) ResolveProcess(pid int) (platform.Process, bool) {
	p, ok := f[pid]
	return p, ok
}

type fakeForeground struct {
	pid int
	ok  bool
}

func (f fakeForeground) ForegroundPID() (int, bool) { return f.pid, f.ok }

type fakeLister struct {
	windows []platform.RawWindow
	err     error
	calls   int
}

func (f *fakeLister) ListOnScreenWindows() ([]platform.RawWindow, error) {
	f.calls++
	return f.windows, f.err
}

type scriptCall struct {
	bundleID string
	script   string
}

type fakeScripts struct {
	replies map[string]string // bundle id -> reply
	err     error
	calls   []scriptCall
}

func (f *fakeScripts) RunScript(_ context.Context, bundleID, script string) (string, error) {
	f.calls = append(f.calls, scriptCall{bundleID: bundleID, script: script})
	if f.err != nil {
		return "", f.err
	}
	reply, ok := f.replies[bundleID]
	if !ok {
		return "", errors.New("execution error: application isn't running")
	}
	return reply, nil
}

type fakePermissions struct {
	granted map[platform.Permission]bool
	checked []platform.Permission
}

func (f *fakePermissions) HasPermission(p platform.Permission, _ bool) bool {
	f.checked = append(f.checked, p)
	return f.granted[p]
}

func allPermissions() *fakePermissions {
	return &fakePermissions{granted: map[platform.Permission]bool{
		platform.PermissionAccessibility:   true,
		platform.PermissionScreenRecording: true,
	}}
}

var (
	safari = platform.Process{PID: 100, Name: "Safari", BundleID: "com.apple.Safari", Path: "/Applications/Safari.app"}
	chrome = platform.Process{PID: 200, Name: "Google Chrome", BundleID: "com.google.Chrome", Path: "/Applications/Google Chrome.app"}
	editor = platform.Process{PID: 300, Name: "Editor", BundleID: "com.unknown.App", Path: "/Applications/Editor.app"}
	dock   = platform.Process{PID: 400, Name: "Dock", BundleID: "com.apple.dock", Path: "/System/Library/CoreServices/Dock.app"}
	daemon = platform.Process{PID: 500, Name: "helperd"}
)

func processes(procs ...platform.Process) fakeProcesses {
	f := fakeProcesses{}
	for _, p := range procs {
		f[p.PID] = p
	}
	return f
}
