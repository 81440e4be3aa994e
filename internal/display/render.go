package display

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/image-annotate/internal/imaging"
)

// upperHalf draws the top pixel as foreground and the bottom as background.
const upperHalf = '▀'

// frameCache holds the last scaled picture so that unchanged buffers are
// not resampled on every refresh.
type frameCache struct {
	buf  *imaging.Buffer
	gen  uint64
	view Viewport
	img  image.Image
}

// scaled returns buf at the viewport's pixel size.
func (c *frameCache) scaled(buf *imaging.Buffer, view Viewport) image.Image {
	if c.img != nil && c.buf == buf && c.gen == buf.Generation() && c.view == view {
		return c.img
	}

	var img image.Image = buf.Image()
	if view.Scaled() && !view.Empty() {
		img = transform.Resize(buf.Image(), view.PixW, view.PixH, transform.Box)
	}

	c.buf = buf
	c.gen = buf.Generation()
	c.view = view
	c.img = img
	return img
}

// cellColor converts a pixel to a terminal color, compositing over black.
func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// paintPicture writes the scaled picture into the screen's cell buffer.
func paintPicture(screen tcell.Screen, view Viewport, img image.Image) {
	if view.Empty() {
		return
	}
	origin := img.Bounds().Min

	for cy := 0; cy < view.Rows; cy++ {
		top := origin.Y + cy*2
		for cx := 0; cx < view.Cols; cx++ {
			x := origin.X + cx
			style := tcell.StyleDefault.Foreground(cellColor(img, x, top))
			if cy*2+1 < view.PixH {
				style = style.Background(cellColor(img, x, top+1))
			} else {
				style = style.Background(tcell.ColorBlack)
			}
			screen.SetContent(view.OffsetX+cx, view.OffsetY+cy, upperHalf, nil, style)
		}
	}
}

// paintStatus writes text on row y, padded or truncated to width.
func paintStatus(screen tcell.Screen, width, y int, text string) {
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(text)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		screen.SetContent(x, y, r, nil, style)
	}
}
