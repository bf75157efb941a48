package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchPointerStroke(t *testing.T) {
	c := newController(t, 64, 32)

	assert.False(t, c.Dispatch(Event{Kind: PointerDown, Point: pt(10, 10)}))
	assert.True(t, c.Tools().IsDrawing)

	assert.False(t, c.Dispatch(Event{Kind: PointerMove, Point: pt(50, 10)}))
	assert.True(t, isDark(c.Image().RGBAAt(30, 10)))

	assert.False(t, c.Dispatch(Event{Kind: PointerUp}))
	assert.False(t, c.Tools().IsDrawing)
}

func TestDispatchTouchSuppressesDefault(t *testing.T) {
	c := newController(t, 64, 32)

	for _, kind := range []EventKind{TouchStart, TouchMove, TouchEnd, TouchCancel} {
		assert.True(t, c.Dispatch(Event{Kind: kind, Point: pt(20, 20)}), kind.String())
	}
	assert.False(t, c.Tools().IsDrawing)
}

func TestDispatchEndingKinds(t *testing.T) {
	for _, kind := range []EventKind{PointerUp, PointerLeave, TouchEnd, TouchCancel} {
		t.Run(kind.String(), func(t *testing.T) {
			c := newController(t, 64, 32)
			c.Dispatch(Event{Kind: PointerDown, Point: pt(10, 10)})

			c.Dispatch(Event{Kind: kind})
			assert.False(t, c.Tools().IsDrawing)
		})
	}
}

func TestDispatchLeaveRequiresNewBegin(t *testing.T) {
	c := newController(t, 64, 32)
	c.Dispatch(Event{Kind: PointerDown, Point: pt(5, 5)})
	c.Dispatch(Event{Kind: PointerLeave})
	before := c.Image().Pix

	c.Dispatch(Event{Kind: PointerMove, Point: pt(40, 20)})

	assert.Equal(t, before, c.Image().Pix)
	assert.False(t, c.Tools().IsDrawing)
}

func TestDispatchUnknownKind(t *testing.T) {
	c := newController(t, 8, 8)

	assert.False(t, c.Dispatch(Event{Kind: EventKind(99)}))
	assert.Equal(t, "unknown", EventKind(99).String())
	assert.False(t, c.Tools().IsDrawing)
}

func TestIsDrawingFollowsEventSequence(t *testing.T) {
	c := newController(t, 32, 32)
	seq := []struct {
		kind EventKind
		want bool
	}{
		{PointerMove, false},
		{PointerDown, true},
		{PointerMove, true},
		{PointerMove, true},
		{PointerUp, false},
		{PointerMove, false},
		{TouchStart, true},
		{TouchMove, true},
		{TouchCancel, false},
		{PointerLeave, false},
	}
	for i, s := range seq {
		c.Dispatch(Event{Kind: s.kind, Point: pt(float32(i), float32(i))})
		assert.Equal(t, s.want, c.Tools().IsDrawing, "step %d (%s)", i, s.kind)
	}
}
