package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"LocalSketch/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func isDark(c color.RGBA) bool  { return c.R < 64 && c.G < 64 && c.B < 64 }
func isLight(c color.RGBA) bool { return c.R > 191 && c.G > 191 && c.B > 191 }

func newSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := New(w, h, white)
	require.NoError(t, err)
	return s
}

func TestNewRejectsEmptySize(t *testing.T) {
	_, err := New(0, 10, white)
	assert.Error(t, err)
}

func TestNewFillsBackground(t *testing.T) {
	s := newSurface(t, 8, 8)
	img := s.Image()

	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(3, 3))
}

func TestDrawSegmentPaintsLine(t *testing.T) {
	s := newSurface(t, 64, 32)

	require.NoError(t, s.DrawSegment(state.Segment{
		From:  state.Point{X: 10, Y: 10},
		To:    state.Point{X: 50, Y: 10},
		Color: black,
		Width: 4,
	}))

	img := s.Image()
	assert.True(t, isDark(img.RGBAAt(30, 9)))
	assert.True(t, isDark(img.RGBAAt(30, 10)))
	assert.True(t, isLight(img.RGBAAt(30, 20)))
	assert.True(t, isLight(img.RGBAAt(60, 10)))
}

func TestResizeClears(t *testing.T) {
	s := newSurface(t, 64, 32)
	require.NoError(t, s.DrawSegment(state.Segment{
		From: state.Point{X: 0, Y: 5}, To: state.Point{X: 60, Y: 5}, Color: black, Width: 6,
	}))

	changed, err := s.Resize(80, 40)
	require.NoError(t, err)
	assert.True(t, changed)

	img := s.Image()
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
	assert.True(t, isLight(img.RGBAAt(30, 5)))
}

func TestResizeSameSizeKeepsPixels(t *testing.T) {
	s := newSurface(t, 64, 32)
	require.NoError(t, s.DrawSegment(state.Segment{
		From: state.Point{X: 0, Y: 5}, To: state.Point{X: 60, Y: 5}, Color: black, Width: 6,
	}))
	before := s.Snapshot()

	changed, err := s.Resize(64, 32)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, s.Snapshot())
}

func TestResizeRejectsEmptySize(t *testing.T) {
	s := newSurface(t, 8, 8)
	_, err := s.Resize(0, 0)
	assert.Error(t, err)
}

func TestEncodePNGKeepsDimensions(t *testing.T) {
	s := newSurface(t, 33, 17)

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 33, cfg.Width)
	assert.Equal(t, 17, cfg.Height)
}

func TestImageIsACopy(t *testing.T) {
	s := newSurface(t, 8, 8)
	before := s.Snapshot()

	img := s.Image()
	img.SetRGBA(2, 2, color.RGBA{A: 255})

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, 8, img.Bounds().Dx())
}
