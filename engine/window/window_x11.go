//go:build linux && !wayland

package window

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
)

// platformNativeHandle returns the X11 window id GLFW created.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.GetX11Window
func platformNativeHandle(w *engineWindow) (glx.NativeWindow, error) {
	if w.internalWindow == nil {
		return 0, fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	xid := uint32(gw.window.GetX11Window())
	if xid == 0 {
		return 0, fmt.Errorf("GLFW window has no X11 window")
	}
	return glx.NativeWindow(xid), nil
}
