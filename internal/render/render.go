// Package render turns image files into terminal frames drawn with
// upper-half block characters, two image rows per terminal row.
package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/lipgloss"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const halfBlock = "▀"

// Picture is a decoded image file
type Picture struct {
	Image  image.Image
	Format string
	Width  int
	Height int
}

// Decode reads and decodes the image at path
func Decode(path string) (Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Picture{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Picture{}, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return Picture{Image: img, Format: format, Width: b.Dx(), Height: b.Dy()}, nil
}

// Fit scales srcW x srcH to fill maxH, keeping the aspect ratio and
// shrinking further when that would overflow maxW
func Fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	h := maxH
	w := srcW * h / srcH
	if w > maxW {
		w = maxW
		h = srcH * w / srcW
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Frame renders img into at most cols x rows terminal cells
func Frame(img image.Image, cols, rows int) string {
	b := img.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), cols, rows*2)
	if w == 0 || h == 0 {
		return ""
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := hex(scaled.RGBAAt(x, y))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(top))
			if y+1 < h {
				style = style.Background(lipgloss.Color(hex(scaled.RGBAAt(x, y+1))))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

// File decodes path and renders it into at most cols x rows cells
func File(path string, cols, rows int) (string, Picture, error) {
	pic, err := Decode(path)
	if err != nil {
		return "", Picture{}, err
	}
	return Frame(pic.Image, cols, rows), pic, nil
}

// hex composites the premultiplied colour c over white
func hex(c color.RGBA) string {
	bg := 255 - c.A
	return fmt.Sprintf("#%02x%02x%02x", c.R+bg, c.G+bg, c.B+bg)
}
