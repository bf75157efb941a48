package ui

import (
	"fmt"
	"image/color"

	"LocalSketch/internal/config"
	"LocalSketch/internal/controller"
	"LocalSketch/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// dialogConfirmer asks through a fyne confirmation dialog.
type dialogConfirmer struct {
	win fyne.Window
}

func (d dialogConfirmer) Confirm(question string, answer func(ok bool)) {
	dialog.ShowConfirm("Clear canvas", question, answer, d.win)
}

// Toolbar holds the drawing controls for one board.
type Toolbar struct {
	board *BoardWidget
	ctrl  *controller.Controller
	win   fyne.Window
	cfg   *config.Config

	pencil, eraser *widget.Button
	colorPreview   *canvas.Rectangle
	widthSlider    *widget.Slider
	widthLabel     *widget.Label
	clear, save    *widget.Button
	savePDF        *widget.Button

	content fyne.CanvasObject
}

// NewToolbar builds the controls and registers for tool changes on the
// board's controller.
func NewToolbar(board *BoardWidget, win fyne.Window, cfg *config.Config) *Toolbar {
	t := &Toolbar{
		board: board,
		ctrl:  board.Controller(),
		win:   win,
		cfg:   cfg,
	}
	tools := t.ctrl.Tools()

	// --- Tools ---
	t.pencil = widget.NewButtonWithIcon("Pencil", theme.DocumentCreateIcon(), func() {
		t.ctrl.SelectTool(state.ToolPencil)
	})
	t.eraser = widget.NewButtonWithIcon("Eraser", theme.ContentRemoveIcon(), func() {
		t.ctrl.SelectTool(state.ToolEraser)
	})
	t.ctrl.OnToolChange = t.highlight
	t.highlight(tools.ActiveTool)

	// --- Color Palette ---
	t.colorPreview = canvas.NewRectangle(tools.Color)
	t.colorPreview.SetMinSize(fyne.NewSize(28, 28))
	t.colorPreview.StrokeColor = color.Gray{Y: 100}
	t.colorPreview.StrokeWidth = 2
	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, t.setColor))
	}
	more := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), t.showColorPicker)

	// --- Stroke Width Slider ---
	t.widthLabel = widget.NewLabel("")
	t.widthSlider = widget.NewSlider(float64(cfg.MinStroke), float64(cfg.MaxStroke))
	t.widthSlider.Step = 1
	t.widthSlider.SetValue(float64(tools.StrokeWidth))
	t.widthSlider.OnChanged = func(v float64) {
		t.setWidth(int(v))
	}
	t.setWidth(tools.StrokeWidth)
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.widthSlider)

	// --- Actions ---
	t.clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		t.ctrl.Clear(dialogConfirmer{win: win})
	})
	t.save = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		showSaveDialog(win, config.ExportName, board.SaveToFile)
	})
	t.savePDF = widget.NewButtonWithIcon("PDF", theme.FileIcon(), func() {
		showSaveDialog(win, pdfName(config.ExportName), board.SavePDFToFile)
	})

	// --- Assemble everything ---
	t.content = container.NewHBox(
		t.pencil,
		t.eraser,
		widget.NewSeparator(),
		t.colorPreview,
		swatches,
		more,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		t.widthLabel,
		layout.NewSpacer(),
		t.clear,
		t.save,
		t.savePDF,
	)
	return t
}

// CanvasObject returns the toolbar's layout.
func (t *Toolbar) CanvasObject() fyne.CanvasObject { return t.content }

// highlight marks exactly one of the tool buttons as active.
func (t *Toolbar) highlight(active state.Tool) {
	t.pencil.Importance = widget.MediumImportance
	t.eraser.Importance = widget.MediumImportance
	switch active {
	case state.ToolPencil:
		t.pencil.Importance = widget.HighImportance
	case state.ToolEraser:
		t.eraser.Importance = widget.HighImportance
	}
	t.pencil.Refresh()
	t.eraser.Refresh()
}

func (t *Toolbar) setColor(c color.Color) {
	t.ctrl.SetColor(c)
	t.colorPreview.FillColor = t.ctrl.Tools().Color
	t.colorPreview.Refresh()
}

func (t *Toolbar) setWidth(w int) {
	t.ctrl.SetStrokeWidth(w)
	t.widthLabel.SetText(fmt.Sprintf("%dpx", w))
}

func (t *Toolbar) showColorPicker() {
	picker := dialog.NewColorPicker("Pick a Color", "Stroke color", t.setColor, t.win)
	picker.Advanced = true
	picker.SetColor(t.ctrl.Tools().Color)
	picker.Show()
}
