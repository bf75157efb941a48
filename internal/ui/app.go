package ui

import (
	"LocalSketch/internal/config"
	"LocalSketch/internal/controller"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// NewSketchWindow lays out the toolbar, board and status line in win.
func NewSketchWindow(win fyne.Window, cfg *config.Config) (*BoardWidget, *Toolbar) {
	ctrl := controller.New(controller.Options{
		Background:  cfg.Background,
		Color:       cfg.Color,
		StrokeWidth: cfg.StrokeWidth,
	})
	board := NewBoardWidget(ctrl)
	toolbar := NewToolbar(board, win, cfg)

	win.SetContent(container.NewBorder(toolbar.CanvasObject(), board.Status(), nil, nil, board))
	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		showSaveDialog(win, config.ExportName, board.SaveToFile)
	})
	return board, toolbar
}

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Sketch")
	myWindow.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	NewSketchWindow(myWindow, cfg)
	myWindow.ShowAndRun()
}
