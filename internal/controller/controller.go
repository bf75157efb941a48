// Package controller turns pointer and touch input into strokes on a surface.
package controller

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"LocalSketch/internal/export"
	"LocalSketch/internal/state"
	"LocalSketch/internal/surface"

	"github.com/sirupsen/logrus"
)

// ClearQuestion is asked before the surface is wiped.
const ClearQuestion = "Are you sure you want to clear the canvas?"

var ErrNoSurface = errors.New("surface not initialized")

// Confirmer asks the user a yes/no question and reports the answer.
// The answer callback may run after Confirm returns.
type Confirmer interface {
	Confirm(question string, answer func(ok bool))
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(question string, answer func(ok bool))

func (f ConfirmFunc) Confirm(question string, answer func(ok bool)) { f(question, answer) }

// Options are the starting values for a Controller.
type Options struct {
	Background  color.Color
	Color       color.Color
	StrokeWidth int
}

// Controller owns the single ToolState and the surface it paints into.
// All methods must be called from the UI event goroutine.
type Controller struct {
	tools      *state.ToolState
	surf       *surface.Surface
	background color.NRGBA
	strokeID   string
	log        *logrus.Entry

	OnChange     func()           // pixels changed
	OnToolChange func(state.Tool) // active tool (re)selected
}

func New(opts Options) *Controller {
	return &Controller{
		tools:      state.NewToolState(opts.Color, opts.StrokeWidth),
		background: state.Opaque(opts.Background),
		log:        logrus.WithField("session", state.SessionID()[:8]),
	}
}

// Initialize sizes the surface to its container. It is the same operation as
// Resize and may be called on every container resize.
func (c *Controller) Initialize(w, h int) error {
	return c.Resize(w, h)
}

// Resize fits the surface to w x h. A change of size discards everything drawn.
func (c *Controller) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		c.log.Debugf("Ignoring resize to %dx%d", w, h)
		return nil
	}
	if c.surf == nil {
		s, err := surface.New(w, h, c.background)
		if err != nil {
			return err
		}
		c.surf = s
		c.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("Surface created")
		c.changed()
		return nil
	}
	changed, err := c.surf.Resize(w, h)
	if err != nil {
		return err
	}
	if changed {
		c.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("Surface resized, contents cleared")
		c.changed()
	}
	return nil
}

// BeginStroke starts a stroke at p, in surface-local coordinates.
func (c *Controller) BeginStroke(p state.Point) {
	c.tools.Begin(p)
	c.strokeID = state.NextStrokeID()
	c.log.WithFields(logrus.Fields{
		"stroke": c.strokeID,
		"tool":   c.tools.ActiveTool,
		"width":  c.tools.StrokeWidth,
	}).Debugf("Begin stroke at (%.1f, %.1f)", p.X, p.Y)
}

// ExtendStroke draws from the last point to p. It does nothing unless a
// stroke is in progress.
func (c *Controller) ExtendStroke(p state.Point) {
	seg, ok := c.tools.Advance(p, c.background)
	if !ok || c.surf == nil {
		return
	}
	if err := c.surf.DrawSegment(seg); err != nil {
		c.log.WithField("stroke", c.strokeID).Errorf("Draw segment: %v", err)
		return
	}
	c.changed()
}

// EndStroke finishes the current stroke. Leaving the surface ends the
// stroke too; moving back in does not resume it.
func (c *Controller) EndStroke() {
	if c.tools.IsDrawing {
		c.log.WithField("stroke", c.strokeID).Debug("End stroke")
	}
	c.tools.End()
}

// SetColor changes the pencil color for subsequent segments.
func (c *Controller) SetColor(col color.Color) {
	c.tools.Color = state.Opaque(col)
	c.log.Debugf("Color set to #%02x%02x%02x", c.tools.Color.R, c.tools.Color.G, c.tools.Color.B)
	if c.tools.ActiveTool == state.ToolPencil {
		c.SelectTool(state.ToolPencil)
	}
}

// SetStrokeWidth changes the width in pixels. The input control bounds it.
func (c *Controller) SetStrokeWidth(width int) {
	c.tools.StrokeWidth = width
	c.log.Debugf("Stroke width set to %dpx", width)
}

// SelectTool makes t the active tool. The color is kept across switches.
func (c *Controller) SelectTool(t state.Tool) {
	c.tools.ActiveTool = t
	c.log.WithField("tool", t).Debug("Tool selected")
	if c.OnToolChange != nil {
		c.OnToolChange(t)
	}
}

// Clear wipes the surface to the background color once confirm accepts.
// A declined confirmation leaves the surface untouched.
func (c *Controller) Clear(confirm Confirmer) {
	confirm.Confirm(ClearQuestion, func(ok bool) {
		if !ok {
			c.log.Debug("Clear declined")
			return
		}
		if c.surf == nil {
			return
		}
		c.surf.Clear()
		c.log.Info("Surface cleared")
		c.changed()
	})
}

// Export writes the surface as PNG. The image has the surface's current size.
func (c *Controller) Export(w io.Writer) error {
	if c.surf == nil {
		return ErrNoSurface
	}
	if err := c.surf.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	c.log.WithFields(logrus.Fields{"width": c.surf.Width(), "height": c.surf.Height()}).Info("Exported PNG")
	return nil
}

// ExportPDF writes the surface onto a single PDF page.
func (c *Controller) ExportPDF(w io.Writer) error {
	if c.surf == nil {
		return ErrNoSurface
	}
	if err := export.WritePDF(w, c.surf.Image()); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"width": c.surf.Width(), "height": c.surf.Height()}).Info("Exported PDF")
	return nil
}

// Tools returns a copy of the tool state.
func (c *Controller) Tools() state.ToolState { return *c.tools }

// Image returns a copy of the current pixels, or nil before Initialize.
func (c *Controller) Image() *image.RGBA {
	if c.surf == nil {
		return nil
	}
	return c.surf.Image()
}

// Size returns the surface size in pixels.
func (c *Controller) Size() (w, h int) {
	if c.surf == nil {
		return 0, 0
	}
	return c.surf.Width(), c.surf.Height()
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
