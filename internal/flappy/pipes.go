package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
)

// Pipe is one half of an obstacle pair.
type Pipe struct {
	Entity
	VelX float64
}

// Tick moves the pipe horizontally.
func (p *Pipe) Tick() {
	p.X += p.VelX
}

// Pipes spawns, moves and retires obstacle pairs. Upper[i] and Lower[i] always
// form one pair.
type Pipes struct {
	Upper []*Pipe
	Lower []*Pipe

	cfg   config.PipesConfig
	width int
	// viewport is the height above the floor.
	viewport float64
	sizes    SpriteSizer
	rng      *rand.Rand
}

// NewPipes creates the two initial pairs off the right edge.
func NewPipes(cfg config.GameConfig, sizes SpriteSizer, rng *rand.Rand) *Pipes {
	p := &Pipes{
		cfg:      cfg.Pipes,
		width:    cfg.Window.Width,
		viewport: cfg.Window.ViewportHeight(),
		sizes:    sizes,
		rng:      rng,
	}
	p.spawnInitial()
	return p
}

// Tick spawns a new pair when there is room, drops pairs that left the
// screen and moves the rest.
func (p *Pipes) Tick() {
	if p.canSpawn() {
		p.spawn()
	}
	p.removeOld()
	for i := range p.Upper {
		p.Upper[i].Tick()
		p.Lower[i].Tick()
	}
}

// Stop freezes every pipe.
func (p *Pipes) Stop() {
	for _, pipe := range p.Upper {
		pipe.VelX = 0
	}
	for _, pipe := range p.Lower {
		pipe.VelX = 0
	}
}

func (p *Pipes) canSpawn() bool {
	if len(p.Upper) == 0 {
		return true
	}
	last := p.Upper[len(p.Upper)-1]
	return float64(p.width)-(last.X+float64(last.W)) > float64(last.W)*p.cfg.SpawnDistance
}

func (p *Pipes) spawn() {
	upper, lower := p.makeRandom()
	p.Upper = append(p.Upper, upper)
	p.Lower = append(p.Lower, lower)
}

func (p *Pipes) removeOld() {
	upper, lower := p.Upper[:0], p.Lower[:0]
	for i := range p.Upper {
		if p.Upper[i].X < -float64(p.Upper[i].W) {
			continue
		}
		upper = append(upper, p.Upper[i])
		lower = append(lower, p.Lower[i])
	}
	clear(p.Upper[len(upper):])
	clear(p.Lower[len(lower):])
	p.Upper, p.Lower = upper, lower
}

func (p *Pipes) spawnInitial() {
	upper1, lower1 := p.makeRandom()
	upper1.X = float64(p.width) + float64(upper1.W)*p.cfg.FirstOffset
	lower1.X = upper1.X

	upper2, lower2 := p.makeRandom()
	upper2.X = upper1.X + float64(upper1.W)*p.cfg.SecondOffset
	lower2.X = upper2.X

	p.Upper = append(p.Upper, upper1, upper2)
	p.Lower = append(p.Lower, lower1, lower2)
}

// makeRandom builds a pair whose opening starts somewhere in the gap band.
func (p *Pipes) makeRandom() (upper, lower *Pipe) {
	span := int(p.viewport*p.cfg.GapBandHeight - p.cfg.Gap)
	gapY := 0
	if span > 0 {
		gapY = p.rng.Intn(span)
	}
	gapY += int(p.viewport * p.cfg.GapBandStart)

	x := float64(p.width) + p.cfg.SpawnOffset
	_, h := p.sizes.Size(assets.SpritePipeUpper)
	upper = &Pipe{
		Entity: newEntity(p.sizes, assets.SpritePipeUpper, x, float64(gapY-h)),
		VelX:   p.cfg.VelX,
	}
	lower = &Pipe{
		Entity: newEntity(p.sizes, assets.SpritePipeLower, x, float64(gapY)+p.cfg.Gap),
		VelX:   p.cfg.VelX,
	}
	return upper, lower
}
