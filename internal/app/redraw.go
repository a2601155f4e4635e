package app

import "sync/atomic"

// Redraw is a repaint request flag. The controller raises it through
// Update and the frame loop consumes it through Take.
type Redraw struct {
	dirty atomic.Bool
}

// NewRedraw returns a flag that is already raised so the first frame paints.
func NewRedraw() *Redraw {
	r := &Redraw{}
	r.dirty.Store(true)
	return r
}

// Update requests a repaint.
func (r *Redraw) Update() {
	r.dirty.Store(true)
}

// Take reports whether a repaint was requested and lowers the flag.
func (r *Redraw) Take() bool {
	return r.dirty.Swap(false)
}
