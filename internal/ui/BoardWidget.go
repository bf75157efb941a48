package ui

import (
	"image"

	"LocalSketch/internal/controller"
	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

// BoardWidget shows the drawing surface and feeds pointer and touch input
// to the controller.
type BoardWidget struct {
	widget.BaseWidget
	ctrl      *controller.Controller
	raster    *canvas.Raster
	statusBar *widget.Label
	touching  bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *controller.Controller) *BoardWidget {
	b := &BoardWidget{
		ctrl:      ctrl,
		statusBar: widget.NewLabel("Ready"),
	}
	b.raster = canvas.NewRaster(b.generate)
	// The surface is sized in logical units; smooth scaling on HiDPI
	// matches how a browser upscales a canvas sized to its CSS box.
	b.raster.ScaleMode = canvas.ImageScaleSmooth
	ctrl.OnChange = func() {
		b.raster.Refresh()
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) generate(w, h int) image.Image {
	if img := b.ctrl.Image(); img != nil {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Controller returns the controller the board drives.
func (b *BoardWidget) Controller() *controller.Controller { return b.ctrl }

// Status returns the label the board reports progress in.
func (b *BoardWidget) Status() *widget.Label { return b.statusBar }

// setStatus must run on the UI goroutine.
func (b *BoardWidget) setStatus(text string) {
	b.statusBar.SetText(text)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

// dispatch reports whether the route claims the gesture from the platform.
func (b *BoardWidget) dispatch(kind controller.EventKind, p fyne.Position) (claimed bool) {
	return b.ctrl.Dispatch(controller.Event{Kind: kind, Point: toPoint(p)})
}

func (b *BoardWidget) contains(p fyne.Position) bool {
	size := b.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.Width && p.Y < size.Height
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.dispatch(controller.PointerDown, e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.dispatch(controller.PointerUp, e.Position)
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.dispatch(controller.PointerMove, e.Position)
}

func (b *BoardWidget) MouseOut() {
	b.dispatch(controller.PointerLeave, fyne.Position{})
}

// Dragged receives moves while the button or finger is held down. fyne
// does not send MouseOut to the widget being dragged, so leaving the
// board is detected here and ends the stroke.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.contains(e.Position) {
		if b.touching {
			b.touching = false
			b.dispatch(controller.TouchCancel, e.Position)
			return
		}
		b.dispatch(controller.PointerLeave, e.Position)
		return
	}
	if b.touching {
		b.dispatch(controller.TouchMove, e.Position)
		return
	}
	b.dispatch(controller.PointerMove, e.Position)
}

func (b *BoardWidget) DragEnd() {
	if b.touching {
		return
	}
	b.dispatch(controller.PointerUp, fyne.Position{})
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.touching = b.dispatch(controller.TouchStart, e.Position)
}

func (b *BoardWidget) TouchUp(e *mobile.TouchEvent) {
	b.touching = false
	b.dispatch(controller.TouchEnd, e.Position)
}

func (b *BoardWidget) TouchCancel(e *mobile.TouchEvent) {
	b.touching = false
	b.dispatch(controller.TouchCancel, e.Position)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{board: b}
}

type boardWidgetRenderer struct {
	board *BoardWidget
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

// Layout fits the surface to the widget. A new size wipes the drawing.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	if err := r.board.ctrl.Resize(int(size.Width), int(size.Height)); err != nil {
		logrus.Errorf("Resize surface: %v", err)
	}
	r.board.raster.Resize(size)
	r.board.raster.Move(fyne.NewPos(0, 0))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
