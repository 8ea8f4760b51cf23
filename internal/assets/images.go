// Package assets generates the sprites and sound effects used by the game.
//
// Nothing is loaded from disk: every image is painted at start-up with the
// same pixel sizes as the classic artwork, and every sound is synthesized as
// 16-bit stereo PCM.
package assets

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/vovakirdan/flappy/internal/config"
)

// SpriteID names an image independent of the active theme.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteBackground
	SpriteFloor
	SpritePipeUpper
	SpritePipeLower
	SpritePlayer0
	SpritePlayer1
	SpritePlayer2
	SpriteWelcome
	SpriteGameOver
	SpriteDigit0
	SpriteDigit1
	SpriteDigit2
	SpriteDigit3
	SpriteDigit4
	SpriteDigit5
	SpriteDigit6
	SpriteDigit7
	SpriteDigit8
	SpriteDigit9
)

var spriteNames = map[SpriteID]string{
	SpriteNone:       "none",
	SpriteBackground: "background",
	SpriteFloor:      "floor",
	SpritePipeUpper:  "pipe-upper",
	SpritePipeLower:  "pipe-lower",
	SpritePlayer0:    "player-0",
	SpritePlayer1:    "player-1",
	SpritePlayer2:    "player-2",
	SpriteWelcome:    "welcome",
	SpriteGameOver:   "game-over",
}

func (id SpriteID) String() string {
	if id >= SpriteDigit0 && id <= SpriteDigit9 {
		return fmt.Sprintf("digit-%d", id-SpriteDigit0)
	}
	if name, ok := spriteNames[id]; ok {
		return name
	}
	return fmt.Sprintf("sprite(%d)", int(id))
}

// PlayerFrame returns the sprite of wing frame 0, 1 or 2.
func PlayerFrame(frame int) SpriteID {
	if frame < 0 || frame > 2 {
		frame = 0
	}
	return SpritePlayer0 + SpriteID(frame)
}

// Digit returns the sprite of a decimal digit.
func Digit(d int) SpriteID {
	if d < 0 || d > 9 {
		return SpriteNone
	}
	return SpriteDigit0 + SpriteID(d)
}

// Theme is the colour selection applied to themed sprites.
type Theme struct {
	Player     string
	Background string
	Pipe       string
}

// Images holds every generated sprite and the active theme.
type Images struct {
	backgrounds map[string]*image.RGBA
	players     map[string][3]*image.RGBA
	pipes       map[string][2]*image.RGBA
	floor       *image.RGBA
	welcome     *image.RGBA
	gameOver    *image.RGBA
	digits      [10]*image.RGBA

	theme Theme
}

// NewImages paints all sprite variants. The theme starts as the first entry of
// each name list until Randomize is called.
func NewImages() *Images {
	img := &Images{
		backgrounds: make(map[string]*image.RGBA, len(config.BackgroundKinds)),
		players:     make(map[string][3]*image.RGBA, len(config.PlayerColors)),
		pipes:       make(map[string][2]*image.RGBA, len(config.PipeColors)),
	}

	for _, kind := range config.BackgroundKinds {
		img.backgrounds[kind] = paintBackground(kind)
	}
	for _, colour := range config.PlayerColors {
		img.players[colour] = [3]*image.RGBA{
			paintPlayer(colour, 0),
			paintPlayer(colour, 1),
			paintPlayer(colour, 2),
		}
	}
	for _, colour := range config.PipeColors {
		lower := paintPipe(colour)
		img.pipes[colour] = [2]*image.RGBA{flipVertical(lower), lower}
	}
	img.floor = paintFloor()
	img.welcome = paintWelcome(img.players["yellow"][1])
	img.gameOver = paintGameOver()
	for d := range img.digits {
		img.digits[d] = paintDigit(d)
	}

	img.theme = Theme{
		Player:     config.PlayerColors[0],
		Background: config.BackgroundKinds[0],
		Pipe:       config.PipeColors[0],
	}
	return img
}

// Randomize picks a new theme. Non-empty fields of pinned are kept as given.
func (img *Images) Randomize(rng *rand.Rand, pinned config.ThemeConfig) Theme {
	img.theme = Theme{
		Player:     pick(rng, pinned.Player, config.PlayerColors),
		Background: pick(rng, pinned.Background, config.BackgroundKinds),
		Pipe:       pick(rng, pinned.Pipe, config.PipeColors),
	}
	return img.theme
}

func pick(rng *rand.Rand, pinned string, names []string) string {
	if pinned != "" {
		return pinned
	}
	return names[rng.Intn(len(names))]
}

// Theme returns the active theme.
func (img *Images) Theme() Theme {
	return img.theme
}

// Image returns the sprite for id under the active theme, or nil for SpriteNone.
func (img *Images) Image(id SpriteID) *image.RGBA {
	switch {
	case id == SpriteBackground:
		return img.backgrounds[img.theme.Background]
	case id == SpriteFloor:
		return img.floor
	case id == SpritePipeUpper:
		return img.pipes[img.theme.Pipe][0]
	case id == SpritePipeLower:
		return img.pipes[img.theme.Pipe][1]
	case id >= SpritePlayer0 && id <= SpritePlayer2:
		return img.players[img.theme.Player][id-SpritePlayer0]
	case id == SpriteWelcome:
		return img.welcome
	case id == SpriteGameOver:
		return img.gameOver
	case id >= SpriteDigit0 && id <= SpriteDigit9:
		return img.digits[id-SpriteDigit0]
	}
	return nil
}

// Size returns the pixel size of a sprite. Sizes do not depend on the theme.
func (img *Images) Size(id SpriteID) (w, h int) {
	i := img.Image(id)
	if i == nil {
		return 0, 0
	}
	return i.Bounds().Dx(), i.Bounds().Dy()
}
