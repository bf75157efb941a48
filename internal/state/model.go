package state

import (
	"image/color"
)

// Tool is the active drawing tool. Exactly one tool is active at a time.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Point is a position in surface-local coordinates.
type Point struct{ X, Y float32 }

// Segment is a single line request handed to the surface.
// Segments are not retained after they are drawn.
type Segment struct {
	From, To Point
	Color    color.NRGBA
	Width    int
}

// ToolState is the controller's mutable tool record.
type ToolState struct {
	ActiveTool  Tool
	Color       color.NRGBA
	StrokeWidth int

	IsDrawing    bool
	LastPoint    Point
	HasLastPoint bool
}

// NewToolState returns the state for a fresh surface: pencil, not drawing.
func NewToolState(c color.Color, width int) *ToolState {
	return &ToolState{
		ActiveTool:  ToolPencil,
		Color:       Opaque(c),
		StrokeWidth: width,
	}
}

// Begin marks the start of a stroke at p.
func (ts *ToolState) Begin(p Point) {
	ts.IsDrawing = true
	ts.LastPoint = p
	ts.HasLastPoint = true
}

// Advance returns the segment from the last point to p and moves the last
// point forward. ok is false when no stroke is in progress.
func (ts *ToolState) Advance(p Point, background color.NRGBA) (seg Segment, ok bool) {
	if !ts.IsDrawing {
		return Segment{}, false
	}
	seg = Segment{
		From:  ts.LastPoint,
		To:    p,
		Color: ts.StrokeColor(background),
		Width: ts.StrokeWidth,
	}
	ts.LastPoint = p
	return seg, true
}

// End finishes the current stroke, if any.
func (ts *ToolState) End() {
	ts.IsDrawing = false
}

// StrokeColor resolves the color segments are painted with. The eraser
// paints the background color; it does not clear alpha.
func (ts *ToolState) StrokeColor(background color.NRGBA) color.NRGBA {
	if ts.ActiveTool == ToolEraser {
		return background
	}
	return ts.Color
}

// Opaque converts c to an NRGBA with full alpha.
func Opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}
