package scripting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedReply is returned when a script reply does not split into
// exactly url, title and mode.
var ErrMalformedReply = errors.New("malformed script reply")

// TabInfo is the active-tab state read from a browser.
type TabInfo struct {
	URL   string
	Title string
	Mode  string
}

// ParseReply splits a Delimiter-joined script reply. Any field count other
// than three is rejected rather than guessed at.
func ParseReply(reply string) (TabInfo, error) {
	parts := strings.Split(reply, Delimiter)
	if len(parts) != 3 {
		return TabInfo{}, fmt.Errorf("%w: got %d fields, want 3", ErrMalformedReply, len(parts))
	}
	return TabInfo{URL: parts[0], Title: parts[1], Mode: parts[2]}, nil
}
