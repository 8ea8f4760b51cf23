package flappy

import (
	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// PlayerMode selects how the bird moves.
type PlayerMode int

const (
	// PlayerSHM bobs up and down on the splash screen.
	PlayerSHM PlayerMode = iota
	// PlayerNormal falls under gravity and flaps on tap.
	PlayerNormal
	// PlayerCrash drops to the floor after a collision.
	PlayerCrash
)

func (m PlayerMode) String() string {
	switch m {
	case PlayerSHM:
		return "SHM"
	case PlayerNormal:
		return "Normal"
	case PlayerCrash:
		return "Crash"
	default:
		return "Unknown"
	}
}

// CrashCause records what the bird hit.
type CrashCause int

const (
	CrashNone CrashCause = iota
	CrashFloor
	CrashPipe
)

func (c CrashCause) String() string {
	switch c {
	case CrashFloor:
		return "floor"
	case CrashPipe:
		return "pipe"
	default:
		return "none"
	}
}

// Player is the bird.
type Player struct {
	Entity

	mode    PlayerMode
	velY    float64
	maxVelY float64
	minVelY float64
	accY    float64
	rot     float64
	velRot  float64
	rotMin  float64
	rotMax  float64
	flapAcc float64
	flapped bool

	minY, maxY float64

	cause CrashCause

	// Wing animation.
	frame     int
	cycleStep int
	wing      int

	cfg  config.PlayerConfig
	play soundFunc
}

// NewPlayer places the bird at its start position in SHM mode.
func NewPlayer(cfg config.GameConfig, sizes SpriteSizer, play soundFunc) *Player {
	w, h := sizes.Size(assets.SpritePlayer0)
	p := &Player{
		Entity: Entity{
			X:      float64(int(float64(cfg.Window.Width) * cfg.Player.XRatio)),
			Y:      float64((cfg.Window.Height - h) / 2),
			W:      w,
			H:      h,
			Sprite: assets.SpritePlayer0,
		},
		minY: float64(-2 * h),
		maxY: cfg.Window.ViewportHeight() - float64(h)*0.75,
		cfg:  cfg.Player,
		play: play,
	}
	p.resetSHM()
	return p
}

// Mode returns the current movement mode.
func (p *Player) Mode() PlayerMode { return p.mode }

// VelY returns the vertical velocity in pixels per tick.
func (p *Player) VelY() float64 { return p.velY }

// Rotation returns the tilt in degrees, counter-clockwise.
func (p *Player) Rotation() float64 { return p.rot }


// Cause returns what the bird crashed into.
func (p *Player) Cause() CrashCause { return p.cause }

// Bounds returns the vertical limits of the bird's top edge.
func (p *Player) Bounds() (minY, maxY float64) { return p.minY, p.maxY }

// SetMode switches movement mode and resets its motion values.
func (p *Player) SetMode(mode PlayerMode) {
	p.mode = mode
	switch mode {
	case PlayerNormal:
		p.resetNormal()
		p.emit(assets.SoundWing)
	case PlayerCrash:
		p.emit(assets.SoundHit)
		if p.cause == CrashPipe {
			p.emit(assets.SoundDie)
		}
		p.resetCrash()
	default:
		p.resetSHM()
	}
}

func (p *Player) resetSHM() {
	m := p.cfg.SHM
	p.velY, p.maxVelY, p.minVelY, p.accY = m.VelY, m.MaxVelY, m.MinVelY, m.AccY
	p.rot, p.velRot, p.rotMin, p.rotMax = m.Rot, m.VelRot, m.RotMin, m.RotMax
	p.flapAcc = m.FlapAcc
	p.flapped = false
}

func (p *Player) resetNormal() {
	m := p.cfg.Normal
	p.velY, p.maxVelY, p.minVelY, p.accY = m.VelY, m.MaxVelY, m.MinVelY, m.AccY
	p.rot, p.velRot, p.rotMin, p.rotMax = m.Rot, m.VelRot, m.RotMin, m.RotMax
	p.flapAcc = m.FlapAcc
	p.flapped = false
}

// resetCrash keeps the current rotation and its limits.
func (p *Player) resetCrash() {
	c := p.cfg.Crash
	p.accY, p.velY, p.maxVelY, p.velRot = c.AccY, c.VelY, c.MaxVelY, c.VelRot
}

// Tick advances the animation and the motion of the current mode.
func (p *Player) Tick() {
	p.animate()
	switch p.mode {
	case PlayerSHM:
		p.tickSHM()
	case PlayerNormal:
		p.tickNormal()
	case PlayerCrash:
		p.tickCrash()
	}
}

// animate steps the wing cycle every AnimationPeriod ticks. A crashed bird
// keeps its last frame.
func (p *Player) animate() {
	if p.mode == PlayerCrash {
		return
	}
	p.frame++
	if p.frame%p.cfg.AnimationPeriod != 0 {
		return
	}
	cycle := p.cfg.AnimationCycle
	p.wing = cycle[p.cycleStep%len(cycle)]
	p.cycleStep++
	p.Sprite = assets.PlayerFrame(p.wing)
}

func (p *Player) tickSHM() {
	if p.velY >= p.maxVelY || p.velY <= p.minVelY {
		p.accY = -p.accY
	}
	p.velY += p.accY
	p.Y += p.velY
}

func (p *Player) tickNormal() {
	if p.velY < p.maxVelY && !p.flapped {
		p.velY += p.accY
	}
	p.flapped = false

	p.Y = core.ClampF(p.Y+p.velY, p.minY, p.maxY)
	p.rotate()
}

func (p *Player) tickCrash() {
	if p.Y >= p.minY && p.Y <= p.maxY {
		p.Y = core.ClampF(p.Y+p.velY, p.minY, p.maxY)
		// A floor crash leaves the bird's tilt as it was.
		if p.cause != CrashFloor {
			p.rotate()
		}
	}
	if p.velY < p.maxVelY {
		p.velY += p.accY
	}
}

func (p *Player) rotate() {
	p.rot = core.ClampF(p.rot+p.velRot, p.rotMin, p.rotMax)
}

// Flap gives the bird an upward kick unless it is already above the top limit.
func (p *Player) Flap() {
	if p.Y <= p.minY {
		return
	}
	p.velY = p.flapAcc
	p.flapped = true
	p.rot = p.cfg.Normal.Rot
	p.emit(assets.SoundWing)
}

// Crossed reports whether the bird's centre passed the pipe's centre during
// the last pipe move.
func (p *Player) Crossed(pipe *Pipe) bool {
	return pipe.CX() <= p.CX() && p.CX() < pipe.CX()-pipe.VelX
}

// Collided checks the floor first, then upper and lower pipes, and records
// what was hit.
func (p *Player) Collided(pipes *Pipes, floor *Floor) bool {
	if p.Collide(floor.Entity) {
		p.crash(CrashFloor)
		return true
	}
	for _, pipe := range pipes.Upper {
		if p.Collide(pipe.Entity) {
			p.crash(CrashPipe)
			return true
		}
	}
	for _, pipe := range pipes.Lower {
		if p.Collide(pipe.Entity) {
			p.crash(CrashPipe)
			return true
		}
	}
	return false
}

func (p *Player) crash(cause CrashCause) {
	p.cause = cause
}

func (p *Player) emit(s assets.Sound) {
	if p.play != nil {
		p.play(s)
	}
}

func (p *Player) spriteWithRotation() Sprite {
	s := p.sprite()
	s.Rotation = p.rot
	return s
}
