package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/roadscene-data/sequence.report/internal/scene"
)

// Rasterize draws a projected frame into a black RGBA image of the given
// bounds, one pixel per projected point. Pixel coordinates are truncated to
// integers; a later point at the same pixel overwrites an earlier one.
func Rasterize(pf scene.ProjectedFrame, params scene.ProjectionParams) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, params.ImageWidth, params.ImageHeight))
	// Opaque black background.
	for y := 0; y < params.ImageHeight; y++ {
		for x := 0; x < params.ImageWidth; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}

	for i := range pf.Pixels {
		x := int(pf.Pixels[i].U)
		y := int(pf.Pixels[i].V)
		if x < 0 || x >= params.ImageWidth || y < 0 || y >= params.ImageHeight {
			continue
		}
		img.SetRGBA(x, y, ClassColor(pf.Semantic[i]))
	}

	return img
}

// WritePNG encodes an image to a PNG file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
