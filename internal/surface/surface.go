// Package surface holds the raster buffer strokes are painted into.
package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"LocalSketch/internal/state"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
)

// Surface is a fixed-size raster with an opaque background color.
// It keeps no stroke history: once a segment is drawn only pixels remain.
type Surface struct {
	dc         *gg.Context
	background color.NRGBA
}

// New creates a surface of w x h pixels filled with background.
func New(w, h int, background color.Color) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	s := &Surface{
		dc:         gg.NewContext(w, h),
		background: state.Opaque(background),
	}
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.Clear()
	return s, nil
}

func (s *Surface) Width() int  { return s.dc.Width() }
func (s *Surface) Height() int { return s.dc.Height() }

// Background returns the color the surface is cleared to and the eraser paints with.
func (s *Surface) Background() color.NRGBA { return s.background }

// Resize reallocates the buffer. Any change of size discards the current
// contents; resizing to the current size keeps them.
func (s *Surface) Resize(w, h int) (changed bool, err error) {
	if w == s.Width() && h == s.Height() {
		return false, nil
	}
	if err := s.dc.Resize(w, h); err != nil {
		return false, fmt.Errorf("resize surface: %w", err)
	}
	s.Clear()
	return true, nil
}

// DrawSegment strokes seg with round caps and joins.
func (s *Surface) DrawSegment(seg state.Segment) error {
	s.dc.SetColor(seg.Color)
	s.dc.SetLineWidth(float64(seg.Width))
	s.dc.DrawLine(float64(seg.From.X), float64(seg.From.Y), float64(seg.To.X), float64(seg.To.Y))
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke segment: %w", err)
	}
	return nil
}

// Clear fills the whole surface with the background color.
func (s *Surface) Clear() {
	s.dc.ClearWithColor(gg.FromColor(s.background))
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() *image.RGBA {
	if err := s.dc.FlushGPU(); err != nil {
		logrus.Warnf("Flush pending GPU drawing: %v", err)
	}
	if img, ok := s.dc.Image().(*image.RGBA); ok {
		return img
	}
	src := s.dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img
}

// Snapshot returns a copy of the raw RGBA bytes.
func (s *Surface) Snapshot() []byte {
	return s.Image().Pix
}

// EncodePNG writes the surface as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush surface: %w", err)
	}
	return s.dc.EncodePNG(w)
}
