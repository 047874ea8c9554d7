package entity

// WindowID identifies a client window on the display server.
type WindowID uint32

// FrameID identifies the display surface backing a container.
type FrameID uint32

// Window is the leaf-level client a container can hold. Class, Instance and
// Title mirror the properties the display server reports for the window.
type Window struct {
	ID       WindowID
	Class    string
	Instance string
	Title    string
}

// Criterion is a swallow rule: a container carrying it claims a future window
// whose properties match. Empty string fields and a zero window ID are
// wildcards; how fields are compared belongs to the match collaborator, not to
// the entity.
type Criterion struct {
	Class    string
	Instance string
	Title    string
	Window   WindowID
}

// ExtendedState is a window state advertised to the display server.
type ExtendedState string

// ExtendedStateFullscreen marks a window as fullscreen towards the display
// server.
const ExtendedStateFullscreen ExtendedState = "FULLSCREEN"
