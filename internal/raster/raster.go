// Package raster turns images into terminal cells using half-block
// characters, giving two vertical pixels per cell.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/capydino/internal/core"
)

// HalfBlock is drawn in every cell: foreground is the top pixel and
// background is the bottom pixel.
const HalfBlock = '▀'

// Rasterizer converts images to cells. It keeps a scratch buffer between
// calls, so a single Rasterizer must not be used concurrently.
type Rasterizer struct {
	scaler draw.Scaler
	buf    *image.RGBA
}

// New creates a Rasterizer that resamples with bilinear filtering.
func New() *Rasterizer {
	return &Rasterizer{scaler: draw.BiLinear}
}

// Blit draws src into the cols x rows cell area of dst whose top-left cell
// is (x, y). src is resampled to cols x 2*rows pixels when its size differs.
func (r *Rasterizer) Blit(dst *core.Screen, src image.Image, x, y, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}

	img := r.fit(src, cols, rows*2)
	b := img.Bounds()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := pixel(img, b.Min.X+col, b.Min.Y+row*2)
			bottom := pixel(img, b.Min.X+col, b.Min.Y+row*2+1)
			dst.SetCell(x+col, y+row, core.Cell{Rune: HalfBlock, Fg: top, Bg: bottom})
		}
	}
}

// fit returns src unchanged when it already has the wanted size, otherwise
// a resampled copy held in the scratch buffer.
func (r *Rasterizer) fit(src image.Image, w, h int) image.Image {
	sb := src.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		return src
	}

	if r.buf == nil || r.buf.Bounds().Dx() != w || r.buf.Bounds().Dy() != h {
		r.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.scaler.Scale(r.buf, r.buf.Bounds(), src, sb, draw.Src, nil)
	return r.buf
}

func pixel(img image.Image, x, y int) core.Color {
	if rgba, ok := img.(*image.RGBA); ok {
		c := rgba.RGBAAt(x, y)
		return core.RGB(c.R, c.G, c.B)
	}
	return FromColor(img.At(x, y))
}

// FromColor converts any colour to a cell colour, dropping alpha.
func FromColor(c color.Color) core.Color {
	r, g, b, _ := c.RGBA()
	return core.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
