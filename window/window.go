// Package window declares the boundary contract the renderer depends on
// for its host surface. The windowing shell itself (Win32 message pump,
// HWND creation) is out of scope; this package is deliberately just the
// interface cmd/onirun and render need to drive a frame loop against any
// host window implementation.
package window

// Window is the minimal surface a frame loop needs: a native handle to
// create a swap chain against, a size to size render targets to, and a
// resize callback.
type Window interface {
	// Size returns the current client-area size in pixels.
	Size() (width, height int)

	// IsOpen reports whether the window has not yet received a close
	// request.
	IsOpen() bool

	// OnResize registers a callback invoked after the window's size
	// changes. Only one callback is kept; registering again replaces it.
	OnResize(func(width, height int))

	// PollEvents pumps the host event queue once. Safe to call every
	// frame; does not block.
	PollEvents()

	// NativeHandle returns the backend-specific handle (e.g. an HWND on
	// Windows) a swap chain is created against.
	NativeHandle() uintptr
}
