package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const imageName = "drawing"

// WritePDF writes img to w as a single PDF page the size of the image,
// one point per pixel.
func WritePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("cannot export empty image")
	}
	wd, ht := float64(b.Dx()), float64(b.Dy())

	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return fmt.Errorf("encode raster: %w", err)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(imageName, opts, &raster)
	p.ImageOptions(imageName, 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
