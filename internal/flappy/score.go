package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
)

// Score counts pipes passed in the current round.
type Score struct {
	value int
	y     float64
	width int
	sizes SpriteSizer
	play  soundFunc
}

// NewScore creates a zero score shown near the top of the window.
func NewScore(cfg config.GameConfig, sizes SpriteSizer, play soundFunc) *Score {
	return &Score{
		y:     float64(cfg.Window.Height) * cfg.Score.YRatio,
		width: cfg.Window.Width,
		sizes: sizes,
		play:  play,
	}
}

// Value returns the current score.
func (s *Score) Value() int { return s.value }

// Reset sets the score back to zero.
func (s *Score) Reset() { s.value = 0 }

// Add counts one passed pipe.
func (s *Score) Add() {
	s.value++
	if s.play != nil {
		s.play(assets.SoundPoint)
	}
}

// Sprites lays the digits out centred horizontally.
func (s *Score) Sprites() []Sprite {
	digits := strconv.Itoa(s.value)
	total := 0
	for _, r := range digits {
		w, _ := s.sizes.Size(assets.Digit(int(r - '0')))
		total += w
	}

	x := float64(s.width-total) / 2
	out := make([]Sprite, 0, len(digits))
	for _, r := range digits {
		id := assets.Digit(int(r - '0'))
		w, _ := s.sizes.Size(id)
		out = append(out, Sprite{ID: id, X: x, Y: s.y, Alpha: 1})
		x += float64(w)
	}
	return out
}
