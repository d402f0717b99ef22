package platform

import (
	"fmt"
	"runtime"
	"time"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Windows     WindowLister
	Processes   ProcessResolver
	Foreground  ForegroundResolver
	Scripts     ScriptRunner
	Permissions PermissionChecker
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("active-window is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func(cfg ProviderConfig) (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(cfg)
}

// ProviderConfig carries the settings platform backends are built with.
type ProviderConfig struct {
	ScriptTimeout time.Duration // Upper bound on a single scripting call (0 = no limit)
}
