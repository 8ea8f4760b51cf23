package assets

import (
	"image"
	"image/color"
	"math/rand"
)

// Sprite sizes match the classic artwork so the playfield geometry holds.
const (
	BackgroundWidth  = 288
	BackgroundHeight = 512
	FloorWidth       = 336
	FloorHeight      = 112
	PipeWidth        = 52
	PipeHeight       = 320
	PlayerWidth      = 34
	PlayerHeight     = 24
	WelcomeWidth     = 184
	WelcomeHeight    = 267
	GameOverWidth    = 192
	GameOverHeight   = 42
	DigitWidth       = 24
	DigitOneWidth    = 16
	DigitHeight      = 36
)

var (
	outline = rgb(84, 56, 71)
	white   = rgb(252, 252, 252)
	orange  = rgb(252, 160, 72)
)

type skyPalette struct {
	sky, cloud, city, window, bush color.RGBA
	lit                            bool
}

var skies = map[string]skyPalette{
	"day": {
		sky:    rgb(78, 192, 202),
		cloud:  rgb(233, 252, 217),
		city:   rgb(162, 228, 183),
		window: rgb(130, 208, 160),
		bush:   rgb(94, 226, 112),
	},
	"night": {
		sky:    rgb(0, 135, 147),
		cloud:  rgb(42, 164, 172),
		city:   rgb(18, 90, 105),
		window: rgb(240, 220, 90),
		bush:   rgb(30, 120, 60),
		lit:    true,
	},
}

// skyline is the floor line on the default window; everything below it is
// covered by the floor sprite.
const skyline = 404

func paintBackground(kind string) *image.RGBA {
	p := skies[kind]
	img := newCanvas(BackgroundWidth, BackgroundHeight)
	fillRect(img, 0, 0, BackgroundWidth, BackgroundHeight, p.sky)

	// Cloud band.
	for x := -10; x < BackgroundWidth+20; x += 22 {
		r := 14 + float64((x*7)%9)
		fillEllipse(img, float64(x), 352, r, r*0.8, p.cloud)
	}
	fillRect(img, 0, 352, BackgroundWidth, skyline-352, p.cloud)

	// Buildings, placed from a fixed seed so both backgrounds share a skyline.
	rng := rand.New(rand.NewSource(7))
	for x := 0; x < BackgroundWidth; {
		w := 14 + rng.Intn(18)
		h := 22 + rng.Intn(34)
		top := skyline - 12 - h
		fillRect(img, x, top, w, h+12, p.city)
		for wy := top + 4; wy < skyline-16; wy += 6 {
			for wx := x + 3; wx < x+w-3; wx += 5 {
				if !p.lit || rng.Intn(3) > 0 {
					fillRect(img, wx, wy, 2, 3, p.window)
				}
			}
		}
		x += w + rng.Intn(4)
	}

	// Bushes along the bottom.
	for x := -6; x < BackgroundWidth+12; x += 12 {
		r := 9 + float64((x*7)%5)
		fillEllipse(img, float64(x), skyline-4, r, r*0.9, p.bush)
	}
	fillRect(img, 0, skyline-4, BackgroundWidth, BackgroundHeight-skyline+4, p.bush)
	return img
}

type birdPalette struct {
	body, belly color.RGBA
}

var birds = map[string]birdPalette{
	"yellow": {body: rgb(248, 200, 28), belly: rgb(251, 232, 140)},
	"red":    {body: rgb(232, 81, 74), belly: rgb(244, 154, 140)},
	"blue":   {body: rgb(58, 154, 217), belly: rgb(164, 212, 244)},
}

// wingOffset is the vertical wing position of each animation frame.
var wingOffset = [3]float64{-3, 0, 3}

func paintPlayer(colour string, frame int) *image.RGBA {
	p := birds[colour]
	img := newCanvas(PlayerWidth, PlayerHeight)

	outlinedEllipse(img, 16, 12, 15, 11.5, 2, p.body, outline)
	fillEllipse(img, 14, 16, 10, 4, p.belly)

	// Eye.
	outlinedEllipse(img, 23, 7, 6, 6, 1.5, white, outline)
	fillRect(img, 25, 5, 2, 4, outline)

	// Beak.
	fillRect(img, 20, 13, 14, 8, outline)
	fillRect(img, 21, 14, 12, 2, orange)
	fillRect(img, 21, 18, 11, 2, orange)

	outlinedEllipse(img, 8, 12+wingOffset[frame], 7, 4.5, 1.5, white, outline)
	return img
}

type pipePalette struct {
	light, base, dark color.RGBA
}

var pipeColours = map[string]pipePalette{
	"green": {light: rgb(156, 230, 89), base: rgb(115, 191, 46), dark: rgb(85, 128, 34)},
	"red":   {light: rgb(245, 130, 100), base: rgb(216, 72, 40), dark: rgb(150, 40, 20)},
}

const pipeCapHeight = 24

// paintPipe paints the lower pipe, opening at the top.
func paintPipe(colour string) *image.RGBA {
	p := pipeColours[colour]
	img := newCanvas(PipeWidth, PipeHeight)

	shade := func(x, left, right int) color.RGBA {
		switch {
		case x == left || x == right-1:
			return outline
		case x < left+7:
			return p.light
		case x > right-12:
			return p.dark
		}
		return p.base
	}

	for x := 2; x < PipeWidth-2; x++ {
		fillRect(img, x, pipeCapHeight, 1, PipeHeight-pipeCapHeight, shade(x, 2, PipeWidth-2))
	}
	for x := 0; x < PipeWidth; x++ {
		fillRect(img, x, 0, 1, pipeCapHeight, shade(x, 0, PipeWidth))
	}
	fillRect(img, 0, 0, PipeWidth, 2, outline)
	fillRect(img, 0, pipeCapHeight-2, PipeWidth, 2, outline)
	return img
}

func paintFloor() *image.RGBA {
	var (
		light = rgb(156, 230, 89)
		base  = rgb(115, 191, 46)
		dark  = rgb(85, 128, 34)
		edge  = rgb(215, 168, 76)
		sand  = rgb(222, 216, 149)
	)
	img := newCanvas(FloorWidth, FloorHeight)
	fillRect(img, 0, 0, FloorWidth, FloorHeight, sand)
	fillRect(img, 0, 0, FloorWidth, 2, outline)

	// Diagonal stripes repeat every 16 pixels, which divides the scroll wrap.
	for y := 2; y < 14; y++ {
		for x := 0; x < FloorWidth; x++ {
			c := base
			if ((x+y)/8)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	fillRect(img, 0, 14, FloorWidth, 4, dark)
	fillRect(img, 0, 18, FloorWidth, 2, edge)
	return img
}

func paintWelcome(bird *image.RGBA) *image.RGBA {
	img := newCanvas(WelcomeWidth, WelcomeHeight)

	centred := func(src *image.RGBA, y int) {
		paste(img, src, (WelcomeWidth-src.Bounds().Dx())/2, y)
	}
	centred(textSprite("GET READY!", 2, orange, white), 8)
	centred(scaleNearest(bird, 2), 90)
	centred(textSprite("TAP", 3, white, outline), 170)
	centred(textSprite("SPACE  UP  CLICK", 1, white, outline), 236)
	return img
}

func paintGameOver() *image.RGBA {
	img := newCanvas(GameOverWidth, GameOverHeight)
	text := textSprite("GAME OVER", 2, orange, white)
	b := text.Bounds()
	paste(img, text, (GameOverWidth-b.Dx())/2, (GameOverHeight-b.Dy())/2)
	return img
}

// Seven segment layout: top, top-right, bottom-right, bottom, bottom-left,
// top-left, middle.
var segments = [10][7]bool{
	{true, true, true, true, true, true, false},
	{false, true, true, false, false, false, false},
	{true, true, false, true, true, false, true},
	{true, true, true, true, false, false, true},
	{false, true, true, false, false, true, true},
	{true, false, true, true, false, true, true},
	{true, false, true, true, true, true, true},
	{true, true, true, false, false, false, false},
	{true, true, true, true, true, true, true},
	{true, true, true, true, false, true, true},
}

func paintDigit(d int) *image.RGBA {
	w := DigitWidth
	if d == 1 {
		w = DigitOneWidth
	}
	const (
		h      = DigitHeight
		t      = 8
		border = 2
	)
	img := newCanvas(w, h)
	mid := h/2 - t/2

	rects := [7]image.Rectangle{
		image.Rect(0, 0, w, t),
		image.Rect(w-t, 0, w, mid+t),
		image.Rect(w-t, mid, w, h),
		image.Rect(0, h-t, w, h),
		image.Rect(0, mid, t, h),
		image.Rect(0, 0, t, mid+t),
		image.Rect(0, mid, w, mid+t),
	}

	// Outlines first so overlapping segments join cleanly.
	for i, on := range segments[d] {
		if on {
			r := rects[i]
			fillRect(img, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), outline)
		}
	}
	for i, on := range segments[d] {
		if on {
			r := rects[i].Inset(border)
			fillRect(img, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), white)
		}
	}
	return img
}
