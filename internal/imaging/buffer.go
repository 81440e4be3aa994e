package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Red is pure red in the buffer's channel order.
var Red = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// Buffer is a mutable raster with fixed dimensions.
//
// The zero value is not usable; create buffers with NewBuffer or FromImage.
type Buffer struct {
	pix *image.NRGBA
	gen uint64
}

// NewBuffer creates a transparent black buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{pix: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies img into a new buffer.
//
// The copy is rebased so that its top-left pixel sits at (0,0), regardless
// of where img's bounds start.
func FromImage(img image.Image) *Buffer {
	return &Buffer{pix: imaging.Clone(img)}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.pix.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.pix.Rect.Dy()
}

// Bounds returns the buffer rectangle, always anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return b.pix.Rect
}

// Contains reports whether (x, y) addresses a pixel in the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.pix.Rect)
}

// At returns the pixel at (x, y). Out-of-range coordinates yield the zero
// color.
func (b *Buffer) At(x, y int) color.NRGBA {
	return b.pix.NRGBAAt(x, y)
}

// Set writes a single pixel. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.Contains(x, y) {
		return
	}
	b.pix.SetNRGBA(x, y, c)
	b.gen++
}

// Fill paints every pixel with c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.pix.Pix); i += 4 {
		b.pix.Pix[i+0] = c.R
		b.pix.Pix[i+1] = c.G
		b.pix.Pix[i+2] = c.B
		b.pix.Pix[i+3] = c.A
	}
	b.gen++
}

// Image exposes the backing raster for read-only use, e.g. rendering or
// encoding. Writing through it bypasses the generation counter.
func (b *Buffer) Image() *image.NRGBA {
	return b.pix
}

// Generation returns a counter that changes whenever the buffer is
// mutated through its methods or through DrawCircle.
func (b *Buffer) Generation() uint64 {
	return b.gen
}
