//go:build darwin && cgo

package darwin

import (
	"github.com/mj1618/active-window/internal/platform"
	"github.com/mj1618/active-window/internal/scripting"
)

func init() {
	platform.NewProviderFunc = func(cfg platform.ProviderConfig) (*platform.Provider, error) {
		apps := NewApplications()
		return &platform.Provider{
			Windows:     NewWindowLister(),
			Processes:   apps,
			Foreground:  apps,
			Scripts:     scripting.NewRunner(cfg.ScriptTimeout),
			Permissions: NewPermissions(),
		}, nil
	}
}
