package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/flappy/internal/assets"
)

// soundBoard holds one player per effect. A zero soundBoard is silent.
type soundBoard struct {
	players map[assets.Sound]*audio.Player
}

// newSoundBoard builds players for the synthesized sounds. A nil sounds
// yields a silent board.
func newSoundBoard(sounds *assets.Sounds, volume float64) (*soundBoard, error) {
	b := &soundBoard{}
	if sounds == nil {
		return b, nil
	}

	// Ebitengine allows a single audio context per process.
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sounds.SampleRate())
	}
	if ctx.SampleRate() != sounds.SampleRate() {
		return nil, fmt.Errorf("audio context runs at %d Hz, sounds at %d Hz", ctx.SampleRate(), sounds.SampleRate())
	}

	b.players = make(map[assets.Sound]*audio.Player)
	for _, snd := range assets.AllSounds() {
		p := ctx.NewPlayerFromBytes(sounds.PCM(snd))
		p.SetVolume(volume)
		b.players[snd] = p
	}
	return b, nil
}

// Play restarts the effect from the beginning.
func (b *soundBoard) Play(snd assets.Sound) {
	p := b.players[snd]
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}
