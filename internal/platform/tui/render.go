package tui

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
)

// halfBlock shows two vertical pixels per cell: foreground on top,
// background below.
const halfBlock = '▀'

var hitboxColors = map[flappy.HitboxKind]color.RGBA{
	flappy.HitboxPlayer: {R: 0xff, G: 0x20, B: 0x20, A: 0xff},
	flappy.HitboxPipe:   {R: 0x20, G: 0x40, B: 0xff, A: 0xff},
	flappy.HitboxFloor:  {R: 0xff, G: 0xd0, B: 0x20, A: 0xff},
}

// Renderer turns a flappy.Scene into styled terminal output.
// The scene is painted at full resolution, scaled to fit the screen and
// written as half-block cells.
type Renderer struct {
	images *assets.Images
	lg     *lipgloss.Renderer
	canvas *image.RGBA
	small  *image.RGBA
	styles map[[2]core.Color]lipgloss.Style
}

// NewRenderer creates a renderer for a w x h pixel scene.
func NewRenderer(images *assets.Images, w, h int, lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		images: images,
		lg:     lg,
		canvas: image.NewRGBA(image.Rect(0, 0, w, h)),
		styles: make(map[[2]core.Color]lipgloss.Style),
	}
}

// Draw paints the scene into the screen buffer below the first top rows,
// which are left blank for the caller.
func (r *Renderer) Draw(sc flappy.Scene, dst *core.Screen, top int) {
	r.compose(sc)
	r.downsample(dst, top)
}

// compose paints sprites and hitboxes onto the full-size canvas.
func (r *Renderer) compose(sc flappy.Scene) {
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for _, s := range sc.Sprites {
		src := r.images.Image(s.ID)
		if src == nil {
			continue
		}
		paintSprite(r.canvas, src, s)
	}
	if sc.Debug {
		for _, hb := range sc.Hitboxes {
			strokeRect(r.canvas, hb.Rect, hitboxColors[hb.Kind])
		}
	}
}

func paintSprite(dst *image.RGBA, src *image.RGBA, s flappy.Sprite) {
	b := src.Bounds()
	if s.Rotation != 0 {
		xdraw.NearestNeighbor.Transform(dst, rotation(s, b.Dx(), b.Dy()), src, b, xdraw.Over, nil)
		return
	}

	x, y := int(math.Round(s.X)), int(math.Round(s.Y))
	rect := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	if s.Alpha >= 1 {
		draw.Draw(dst, rect, src, b.Min, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(core.ClampF(s.Alpha, 0, 1) * 0xff)})
	draw.DrawMask(dst, rect, src, b.Min, mask, image.Point{}, draw.Over)
}

// rotation maps source pixels to the canvas, turning the sprite
// counter-clockwise about its centre.
func rotation(s flappy.Sprite, w, h int) f64.Aff3 {
	rad := s.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	hw, hh := float64(w)/2, float64(h)/2
	cx, cy := s.X+hw, s.Y+hh
	return f64.Aff3{
		cos, sin, cx - cos*hw - sin*hh,
		-sin, cos, cy + sin*hw - cos*hh,
	}
}

func strokeRect(dst *image.RGBA, r core.Rect, c color.RGBA) {
	for x := r.X; x < r.Right(); x++ {
		dst.SetRGBA(x, r.Y, c)
		dst.SetRGBA(x, r.Bottom()-1, c)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetRGBA(r.X, y, c)
		dst.SetRGBA(r.Right()-1, y, c)
	}
}

// fit returns the largest pixel size with the canvas aspect ratio that fits
// in a cols x rows screen of half-block cells.
func fit(canvasW, canvasH, cols, rows int) (w, h int) {
	if canvasW <= 0 || canvasH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(cols)/float64(canvasW), float64(rows*2)/float64(canvasH))
	w = int(float64(canvasW) * scale)
	h = int(float64(canvasH) * scale)
	return core.Max(w, 1), core.Max(h, 1)
}

// downsample scales the canvas to the screen area below top and fills it
// with half blocks.
func (r *Renderer) downsample(dst *core.Screen, top int) {
	dst.Clear()
	avail := dst.Height() - top
	cb := r.canvas.Bounds()
	w, h := fit(cb.Dx(), cb.Dy(), dst.Width(), avail)
	if w == 0 {
		return
	}
	if r.small == nil || r.small.Bounds().Dx() != w || r.small.Bounds().Dy() != h {
		r.small = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	xdraw.ApproxBiLinear.Scale(r.small, r.small.Bounds(), r.canvas, cb, xdraw.Src, nil)

	rows := (h + 1) / 2
	ox := (dst.Width() - w) / 2
	oy := top + (avail-rows)/2
	for row := 0; row < rows; row++ {
		for x := 0; x < w; x++ {
			cell := core.Cell{Rune: halfBlock, Fg: toColor(r.small.RGBAAt(x, row*2))}
			if row*2+1 < h {
				cell.Bg = toColor(r.small.RGBAAt(x, row*2+1))
			}
			dst.SetCell(ox+x, oy+row, cell)
		}
	}
}

func toColor(c color.RGBA) core.Color {
	return core.RGB(c.R, c.G, c.B)
}

// style returns the cached lipgloss style for a colour pair.
func (r *Renderer) style(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if fg.Valid {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.Valid {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	r.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.Fg.Valid && !start.Bg.Valid {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
