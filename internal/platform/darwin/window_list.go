//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
    int has_number;
    int64_t number;
    int has_pid;
    int64_t pid;
    int has_alpha;
    double alpha;
    int has_bounds;
    double x, y, width, height;
    int64_t memory;
    char *name;
    char *owner_name;
} raw_window;

static char *copy_string(CFDictionaryRef dict, CFStringRef key) {
    const void *value = CFDictionaryGetValue(dict, key);
    if (value == NULL || CFGetTypeID(value) != CFStringGetTypeID()) {
        return NULL;
    }
    CFStringRef str = (CFStringRef)value;
    CFIndex max = CFStringGetMaximumSizeForEncoding(CFStringGetLength(str), kCFStringEncodingUTF8) + 1;
    char *buf = (char *)malloc(max);
    if (buf == NULL) {
        return NULL;
    }
    if (!CFStringGetCString(str, buf, max, kCFStringEncodingUTF8)) {
        free(buf);
        return NULL;
    }
    return buf;
}

static int read_int64(CFDictionaryRef dict, CFStringRef key, int64_t *out) {
    const void *value = CFDictionaryGetValue(dict, key);
    if (value == NULL || CFGetTypeID(value) != CFNumberGetTypeID()) {
        return 0;
    }
    return CFNumberGetValue((CFNumberRef)value, kCFNumberSInt64Type, out) ? 1 : 0;
}

static int read_double(CFDictionaryRef dict, CFStringRef key, double *out) {
    const void *value = CFDictionaryGetValue(dict, key);
    if (value == NULL || CFGetTypeID(value) != CFNumberGetTypeID()) {
        return 0;
    }
    return CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, out) ? 1 : 0;
}

// list_windows copies the on-screen window list, excluding desktop elements.
// Returns -1 when the window server gives no list.
static int list_windows(raw_window **out, int *count) {
    *out = NULL;
    *count = 0;

    CFArrayRef list = CGWindowListCopyWindowInfo(
        kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
        kCGNullWindowID);
    if (list == NULL) {
        return -1;
    }

    CFIndex n = CFArrayGetCount(list);
    if (n == 0) {
        CFRelease(list);
        return 0;
    }

    raw_window *windows = (raw_window *)calloc(n, sizeof(raw_window));
    if (windows == NULL) {
        CFRelease(list);
        return -1;
    }

    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef dict = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
        raw_window *w = &windows[i];
        if (dict == NULL) {
            continue;
        }

        w->has_number = read_int64(dict, kCGWindowNumber, &w->number);
        w->has_pid = read_int64(dict, kCGWindowOwnerPID, &w->pid);
        w->has_alpha = read_double(dict, kCGWindowAlpha, &w->alpha);
        read_int64(dict, kCGWindowMemoryUsage, &w->memory);

        const void *bounds = CFDictionaryGetValue(dict, kCGWindowBounds);
        if (bounds != NULL && CFGetTypeID(bounds) == CFDictionaryGetTypeID()) {
            CGRect rect;
            if (CGRectMakeWithDictionaryRepresentation((CFDictionaryRef)bounds, &rect)) {
                w->has_bounds = 1;
                w->x = rect.origin.x;
                w->y = rect.origin.y;
                w->width = rect.size.width;
                w->height = rect.size.height;
            }
        }

        w->name = copy_string(dict, kCGWindowName);
        w->owner_name = copy_string(dict, kCGWindowOwnerName);
    }

    CFRelease(list);
    *out = windows;
    *count = (int)n;
    return 0;
}

static void free_windows(raw_window *windows, int count) {
    if (windows == NULL) {
        return;
    }
    for (int i = 0; i < count; i++) {
        free(windows[i].name);
        free(windows[i].owner_name);
    }
    free(windows);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/active-window/internal/platform"
)

// WindowLister implements platform.WindowLister using CGWindowListCopyWindowInfo.
type WindowLister struct{}

// NewWindowLister creates a new macOS window lister.
func NewWindowLister() *WindowLister {
	return &WindowLister{}
}

// ListOnScreenWindows returns every on-screen window in front-to-back order.
// Fields the window server omitted are left nil for the caller to judge.
func (l *WindowLister) ListOnScreenWindows() ([]platform.RawWindow, error) {
	var cWindows *C.raw_window
	var cCount C.int

	if C.list_windows(&cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.free_windows(cWindows, cCount)

	count := int(cCount)
	if count == 0 {
		return []platform.RawWindow{}, nil
	}

	cSlice := unsafe.Slice(cWindows, count)
	windows := make([]platform.RawWindow, 0, count)
	for i := 0; i < count; i++ {
		windows = append(windows, convertWindow(&cSlice[i]))
	}
	return windows, nil
}

func convertWindow(cw *C.raw_window) platform.RawWindow {
	w := platform.RawWindow{
		MemoryUsage: int64(cw.memory),
	}
	if cw.has_number != 0 {
		n := int(cw.number)
		w.Number = &n
	}
	if cw.has_pid != 0 {
		pid := int(cw.pid)
		w.OwnerPID = &pid
	}
	if cw.has_alpha != 0 {
		alpha := float64(cw.alpha)
		w.Alpha = &alpha
	}
	if cw.has_bounds != 0 {
		w.Bounds = &platform.Rect{
			X:      float64(cw.x),
			Y:      float64(cw.y),
			Width:  float64(cw.width),
			Height: float64(cw.height),
		}
	}
	if cw.name != nil {
		w.Name = C.GoString(cw.name)
	}
	if cw.owner_name != nil {
		w.OwnerName = C.GoString(cw.owner_name)
	}
	return w
}
