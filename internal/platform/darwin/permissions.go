//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreGraphics -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>

static int is_trusted(int prompt) {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { prompt ? kCFBooleanTrue : kCFBooleanFalse };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault, keys, values, 1,
        &kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
    Boolean trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted ? 1 : 0;
}

static int can_record_screen(int prompt) {
    if (CGPreflightScreenCaptureAccess()) {
        return 1;
    }
    if (prompt) {
        CGRequestScreenCaptureAccess();
    }
    return 0;
}
*/
import "C"

import "github.com/mj1618/active-window/internal/platform"

// Permissions implements platform.PermissionChecker with the TCC APIs.
type Permissions struct{}

// NewPermissions returns a new Permissions checker.
func NewPermissions() *Permissions {
	return &Permissions{}
}

// HasPermission reports whether p is granted. With prompt set, macOS shows its
// permission dialog the first time a missing permission is checked.
func (Permissions) HasPermission(p platform.Permission, prompt bool) bool {
	var cPrompt C.int
	if prompt {
		cPrompt = 1
	}
	switch p {
	case platform.PermissionAccessibility:
		return C.is_trusted(cPrompt) != 0
	case platform.PermissionScreenRecording:
		return C.can_record_screen(cPrompt) != 0
	default:
		return false
	}
}
