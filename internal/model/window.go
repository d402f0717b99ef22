package model

// Platform is the value reported in Window.Platform.
const Platform = "macos"

// Bounds is a window rectangle in window-manager coordinates.
type Bounds struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Owner describes the application that owns a window.
// BundleID and Path are empty when the running application could not report them.
type Owner struct {
	Name      string `yaml:"name"      json:"name"`
	ProcessID int    `yaml:"processId" json:"processId"`
	BundleID  string `yaml:"bundleId"  json:"bundleId"`
	Path      string `yaml:"path"      json:"path"`
}

// Window is the record reported for one on-screen window.
// URL and Mode are only set when the active browser tab could be read.
type Window struct {
	Platform    string  `yaml:"platform"       json:"platform"`
	Title       string  `yaml:"title"          json:"title"`
	ID          int     `yaml:"id"             json:"id"`
	Bounds      Bounds  `yaml:"bounds"         json:"bounds"`
	Owner       Owner   `yaml:"owner"          json:"owner"`
	MemoryUsage int64   `yaml:"memoryUsage"    json:"memoryUsage"`
	URL         *string `yaml:"url,omitempty"  json:"url,omitempty"`
	Mode        *string `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// HasTab reports whether the window was enriched with browser tab state.
func (w Window) HasTab() bool {
	return w.Mode != nil
}
