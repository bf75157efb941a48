package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"
)

// showSaveDialog opens a save dialog prefilled with name and hands the chosen
// writer to save. Cancelling does nothing.
func showSaveDialog(win fyne.Window, name string, save func(fyne.URIWriteCloser)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		save(writer)
	}, win)
	d.SetFileName(name)
	if ext := filepath.Ext(name); ext != "" {
		d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	}
	d.Show()
}

func pdfName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
}

// SaveToFile writes the drawing as PNG and closes writer.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	b.saveTo(writer, "PNG", b.ctrl.Export)
}

// SavePDFToFile writes the drawing as a one-page PDF and closes writer.
func (b *BoardWidget) SavePDFToFile(writer fyne.URIWriteCloser) {
	b.saveTo(writer, "PDF", b.ctrl.ExportPDF)
}

func (b *BoardWidget) saveTo(writer fyne.URIWriteCloser, kind string, encode func(io.Writer) error) {
	name := writer.URI().Name()
	log := logrus.WithFields(logrus.Fields{"format": kind, "file": name})
	log.Debug("Starting save operation")

	err := encode(writer)
	// Close flushes file writers, so its error counts as a failed save.
	if cerr := writer.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close writer: %w", cerr)
	}
	if err != nil {
		log.Errorf("Save failed: %v", err)
		b.setStatus(fmt.Sprintf("Error saving %s", name))
		return
	}
	log.Info("Saved")
	b.setStatus(fmt.Sprintf("Saved %s", name))
}
