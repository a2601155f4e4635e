package scene

// MousePress starts a drag: left orbits, right pans.
func (c *Controller) MousePress(button MouseButton, x, y int) {
	switch button {
	case MouseLeft:
		c.win.Rotate = true
	case MouseRight:
		c.win.Translate = true
	default:
		return
	}
	c.win.OrigX = x
	c.win.OrigY = y
	c.deps.Redraw.Update()
}

// MouseMove continues an active drag.
func (c *Controller) MouseMove(x, y int) {
	if !c.win.Rotate && !c.win.Translate {
		return
	}
	if c.camera == nil {
		return
	}

	dx := float32(x - c.win.OrigX)
	dy := float32(y - c.win.OrigY)
	c.win.OrigX = x
	c.win.OrigY = y

	if c.win.Rotate {
		c.camera.HandleDrag(dx, dy)
	} else {
		c.camera.HandlePan(dx, dy)
	}
	c.syncCamera()
	c.deps.Redraw.Update()
}

// MouseRelease ends the drag started by button.
func (c *Controller) MouseRelease(button MouseButton) {
	switch button {
	case MouseLeft:
		c.win.Rotate = false
	case MouseRight:
		c.win.Translate = false
	default:
		return
	}
	c.deps.Redraw.Update()
}

// Wheel zooms the camera; positive delta moves closer.
func (c *Controller) Wheel(delta float32) {
	if c.camera == nil || delta == 0 {
		return
	}
	c.camera.HandleZoom(delta)
	c.syncCamera()
	c.deps.Redraw.Update()
}

// syncCamera copies the orbit camera into the view matrix. The camPos
// uniform follows on the next paint.
func (c *Controller) syncCamera() {
	c.view = c.camera.ViewMatrix()
	c.camPos = c.camera.Position()
	c.camPending = true
}
