package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable window layer.
type OverlayID uint8

const (
	OverlayControls OverlayID = iota
	OverlayHUD
	OverlayPerf
	OverlayHitboxes
	overlayCount
)

// Overlay describes one toggle as shown in the controls panel.
type Overlay struct {
	ID    OverlayID
	Name  string
	Key   int32
	Label string
	Debug bool
}

var overlayTable = [overlayCount]Overlay{
	{OverlayControls, "Controls", rl.KeyF1, "F1", false},
	{OverlayHUD, "HUD", rl.KeyF2, "F2", false},
	{OverlayPerf, "Performance", rl.KeyF3, "F3", true},
	{OverlayHitboxes, "Hitboxes", rl.KeyF4, "F4", true},
}

// OverlayRegistry holds the on/off state of every overlay.
type OverlayRegistry struct {
	on [overlayCount]bool
}

// NewOverlayRegistry starts with only the HUD visible.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{}
	r.on[OverlayHUD] = true
	return r
}

// Keys returns the toggle keys in table order.
func (r *OverlayRegistry) Keys() []int32 {
	keys := make([]int32, len(overlayTable))
	for i, o := range overlayTable {
		keys[i] = o.Key
	}
	return keys
}

// HandleKeyPress flips the overlay bound to key and reports whether one was.
func (r *OverlayRegistry) HandleKeyPress(key int32) bool {
	for _, o := range overlayTable {
		if o.Key == key {
			r.on[o.ID] = !r.on[o.ID]
			return true
		}
	}
	return false
}

// SetEnabled forces an overlay on or off.
func (r *OverlayRegistry) SetEnabled(id OverlayID, on bool) {
	if id < overlayCount {
		r.on[id] = on
	}
}

// IsEnabled reports whether id is visible.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return id < overlayCount && r.on[id]
}

// Group returns the display or the debug overlays.
func (r *OverlayRegistry) Group(debug bool) []Overlay {
	var out []Overlay
	for _, o := range overlayTable {
		if o.Debug == debug {
			out = append(out, o)
		}
	}
	return out
}
