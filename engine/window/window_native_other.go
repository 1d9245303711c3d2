//go:build !linux || wayland

package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
)

func platformNativeHandle(w *engineWindow) (glx.NativeWindow, error) {
	return 0, fmt.Errorf("no X11 window on %s", runtime.GOOS)
}
