package windows

import (
	"errors"
	"testing"

	"github.com/mj1618/active-window/internal/platform"
)

func TestFilter_AcceptsVisibleWindow(t *testing.T) {
	f := &Filter{Processes: processes(safari)}

	v, err := f.Check(rawWindow(1, safari.PID, "Apple"))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Accepted() {
		t.Fatalf("expected accept, got %v", v.Reject)
	}
	if v.Process != safari {
		t.Errorf("Process = %+v, want %+v", v.Process, safari)
	}
}

func TestFilter_RejectsTransparent(t *testing.T) {
	f := &Filter{Processes: processes(chrome)}
	for _, size := range [][2]float64{{800, 600}, {10, 10}, {50, 50}} {
		w := rawWindow(1, chrome.PID, "")
		w.Alpha = floatPtr(0)
		w.Bounds = rect(size[0], size[1])

		v, err := f.Check(w)
		if err != nil {
			t.Fatal(err)
		}
		if v.Reject != RejectTransparent {
			t.Errorf("size %v: Reject = %v, want transparent", size, v.Reject)
		}
	}
}

func TestFilter_PartialAlphaIsVisible(t *testing.T) {
	f := &Filter{Processes: processes(chrome)}
	w := rawWindow(1, chrome.PID, "")
	w.Alpha = floatPtr(0.01)

	v, err := f.Check(w)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Accepted() {
		t.Errorf("alpha 0.01 should be accepted, got %v", v.Reject)
	}
}

func TestFilter_RejectsSmallWindows(t *testing.T) {
	f := &Filter{Processes: processes(chrome)}
	tests := []struct {
		w, h   float64
		reject bool
	}{
		{49, 600, true},
		{800, 49, true},
		{49.9, 49.9, true},
		{0, 0, true},
		{50, 50, false},
		{50, 1000, false},
		{1000, 50, false},
	}
	for _, tt := range tests {
		w := rawWindow(1, chrome.PID, "")
		w.Bounds = rect(tt.w, tt.h)

		v, err := f.Check(w)
		if err != nil {
			t.Fatal(err)
		}
		if got := v.Reject == RejectTooSmall; got != tt.reject {
			t.Errorf("%vx%v: too small = %v, want %v", tt.w, tt.h, got, tt.reject)
		}
	}
}

func TestFilter_RejectsExitedOwner(t *testing.T) {
	f := &Filter{Processes: processes(safari)}

	v, err := f.Check(rawWindow(1, 9999, "Ghost"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Reject != RejectNoProcess {
		t.Errorf("Reject = %v, want owner not running", v.Reject)
	}
}

func TestFilter_RejectsDock(t *testing.T) {
	f := &Filter{Processes: processes(dock)}

	v, err := f.Check(rawWindow(1, dock.PID, ""))
	if err != nil {
		t.Fatal(err)
	}
	if v.Reject != RejectShell {
		t.Errorf("Reject = %v, want dock", v.Reject)
	}
}

func TestFilter_RuleOrder(t *testing.T) {
	// A transparent, tiny window from an exited process is reported as transparent.
	f := &Filter{Processes: processes()}
	w := rawWindow(1, 9999, "")
	w.Alpha = floatPtr(0)
	w.Bounds = rect(1, 1)

	v, err := f.Check(w)
	if err != nil {
		t.Fatal(err)
	}
	if v.Reject != RejectTransparent {
		t.Errorf("Reject = %v, want transparent", v.Reject)
	}

	w.Alpha = floatPtr(1)
	if v, _ = f.Check(w); v.Reject != RejectTooSmall {
		t.Errorf("Reject = %v, want too small", v.Reject)
	}
}

func TestFilter_MalformedRecords(t *testing.T) {
	f := &Filter{Processes: processes(safari)}
	tests := []struct {
		name   string
		mutate func(*platform.RawWindow)
	}{
		{"no alpha", func(w *platform.RawWindow) { w.Alpha = nil }},
		{"no bounds", func(w *platform.RawWindow) { w.Bounds = nil }},
		{"no owner pid", func(w *platform.RawWindow) { w.OwnerPID = nil }},
		{"no window number", func(w *platform.RawWindow) { w.Number = nil }},
	}
	for _, tt := range tests {
		w := rawWindow(1, safari.PID, "")
		tt.mutate(&w)

		_, err := f.Check(w)
		if !errors.Is(err, ErrMalformedWindow) {
			t.Errorf("%s: err = %v, want ErrMalformedWindow", tt.name, err)
		}
	}
}

func TestReject_String(t *testing.T) {
	if RejectNoProcess.String() != "owner not running" {
		t.Errorf("RejectNoProcess.String() = %q", RejectNoProcess.String())
	}
	if Reject(42).String() != "reject(42)" {
		t.Errorf("Reject(42).String() = %q", Reject(42).String())
	}
}
