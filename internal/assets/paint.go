package assets

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Small pixel painting helpers. Sprites are built from rectangles, ellipses and
// upscaled bitmap text so the game needs no image files.

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func fillRect(dst *image.RGBA, x, y, w, h int, c color.Color) {
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

// fillEllipse paints every pixel whose centre lies inside the ellipse.
func fillEllipse(dst *image.RGBA, cx, cy, rx, ry float64, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				dst.SetRGBA(x, y, c)
			}
		}
	}
}

// outlinedEllipse paints an ellipse with a border of the given width.
func outlinedEllipse(dst *image.RGBA, cx, cy, rx, ry, border float64, fill, edge color.RGBA) {
	fillEllipse(dst, cx, cy, rx, ry, edge)
	fillEllipse(dst, cx, cy, rx-border, ry-border, fill)
}

// flipVertical returns a copy of src mirrored top to bottom.
func flipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := newCanvas(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(x, b.Dy()-1-y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// scaleNearest upscales src by an integer factor without smoothing.
func scaleNearest(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := newCanvas(b.Dx()*factor, b.Dy()*factor)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// paste draws src over dst with its top-left corner at (x, y).
func paste(dst *image.RGBA, src image.Image, x, y int) {
	b := src.Bounds()
	draw.Draw(dst, image.Rect(x, y, x+b.Dx(), y+b.Dy()), src, b.Min, draw.Over)
}

// textSprite renders s with the 7x13 bitmap font, scales it and adds a one
// source-pixel outline so it reads on any background.
func textSprite(s string, scale int, fill, edge color.RGBA) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil() + 2
	h := face.Metrics().Height.Ceil() + 2

	glyphs := newCanvas(w, h)
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  fixed.P(1, 1+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	// Outline: any transparent pixel next to a glyph pixel.
	out := newCanvas(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if glyphs.RGBAAt(x, y).A != 0 {
				out.SetRGBA(x, y, fill)
				continue
			}
			if touchesInk(glyphs, x, y) {
				out.SetRGBA(x, y, edge)
			}
		}
	}
	return scaleNearest(out, scale)
}

func touchesInk(img *image.RGBA, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(img.Bounds()) && img.RGBAAt(p.X, p.Y).A != 0 {
				return true
			}
		}
	}
	return false
}
