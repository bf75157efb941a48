package controller

import (
	"LocalSketch/internal/state"
)

// EventKind identifies an input notification from the drawing surface.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
	TouchStart
	TouchMove
	TouchEnd
	TouchCancel
)

var kindNames = map[EventKind]string{
	PointerDown:  "pointer-down",
	PointerMove:  "pointer-move",
	PointerUp:    "pointer-up",
	PointerLeave: "pointer-leave",
	TouchStart:   "touch-start",
	TouchMove:    "touch-move",
	TouchEnd:     "touch-end",
	TouchCancel:  "touch-cancel",
}

func (k EventKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is an input notification with a surface-local position.
// Position is ignored by kinds that end a stroke.
type Event struct {
	Kind  EventKind
	Point state.Point
}

type route struct {
	handle          func(c *Controller, p state.Point)
	suppressDefault bool
}

// Touch kinds suppress the platform's scroll and gesture handling while drawing.
var routes = map[EventKind]route{
	PointerDown:  {handle: (*Controller).BeginStroke},
	PointerMove:  {handle: (*Controller).ExtendStroke},
	PointerUp:    {handle: end},
	PointerLeave: {handle: end},
	TouchStart:   {handle: (*Controller).BeginStroke, suppressDefault: true},
	TouchMove:    {handle: (*Controller).ExtendStroke, suppressDefault: true},
	TouchEnd:     {handle: end, suppressDefault: true},
	TouchCancel:  {handle: end, suppressDefault: true},
}

func end(c *Controller, _ state.Point) { c.EndStroke() }

// Dispatch runs the operation registered for ev.Kind and reports whether the
// platform's default handling of the event must be suppressed.
// Unknown kinds are ignored.
func (c *Controller) Dispatch(ev Event) (suppressDefault bool) {
	r, ok := routes[ev.Kind]
	if !ok {
		c.log.Debugf("No handler for %s event", ev.Kind)
		return false
	}
	r.handle(c, ev.Point)
	return r.suppressDefault
}
