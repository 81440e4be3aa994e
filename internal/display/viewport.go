package display

import (
	"image"
	"math"
)

// Viewport maps between buffer pixels and the terminal cells that show them.
//
// The picture occupies Cols x Rows cells starting at (OffsetX, OffsetY).
// It is PixW x PixH pixels after scaling; each cell row holds two pixel rows.
type Viewport struct {
	ImageW, ImageH   int
	PixW, PixH       int
	Cols, Rows       int
	OffsetX, OffsetY int
}

// FitViewport scales an imageW x imageH buffer into a cols x rows cell area,
// preserving aspect ratio and never enlarging. The picture is centered.
func FitViewport(imageW, imageH, cols, rows int) Viewport {
	if imageW <= 0 || imageH <= 0 || cols <= 0 || rows <= 0 {
		return Viewport{}
	}

	maxW := float64(cols)
	maxH := float64(rows * 2)
	scale := math.Min(1, math.Min(maxW/float64(imageW), maxH/float64(imageH)))

	pw := max(1, int(math.Round(float64(imageW)*scale)))
	ph := max(1, int(math.Round(float64(imageH)*scale)))
	pw = min(pw, cols)
	ph = min(ph, rows*2)

	v := Viewport{
		ImageW: imageW,
		ImageH: imageH,
		PixW:   pw,
		PixH:   ph,
		Cols:   pw,
		Rows:   (ph + 1) / 2,
	}
	v.OffsetX = (cols - v.Cols) / 2
	v.OffsetY = (rows - v.Rows) / 2
	return v
}

// Empty reports whether the viewport shows nothing.
func (v Viewport) Empty() bool {
	return v.PixW == 0 || v.PixH == 0
}

// Scaled reports whether the picture is shown at a size other than 1:1.
func (v Viewport) Scaled() bool {
	return v.PixW != v.ImageW || v.PixH != v.ImageH
}

// ToImage converts a cell position to the buffer pixel under the upper half
// of that cell. ok is false when the cell is outside the picture.
func (v Viewport) ToImage(cellX, cellY int) (p image.Point, ok bool) {
	if v.Empty() {
		return image.Point{}, false
	}

	lx := cellX - v.OffsetX
	ly := cellY - v.OffsetY
	if lx < 0 || lx >= v.Cols || ly < 0 || ly*2 >= v.PixH {
		return image.Point{}, false
	}

	fx := (float64(lx) + 0.5) * float64(v.ImageW) / float64(v.PixW)
	fy := (float64(ly*2) + 0.5) * float64(v.ImageH) / float64(v.PixH)

	p.X = min(int(fx), v.ImageW-1)
	p.Y = min(int(fy), v.ImageH-1)
	return p, true
}
