// Package flappy implements the Flappy Bird game logic.
// The player steers a bird through gaps in scrolling pipes. The game is a
// state machine advanced one fixed tick at a time; frontends poll input,
// present the Scene and play the sounds each Step reports.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Phase is the stage of the current round.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "Splash"
	case PhasePlay:
		return "Play"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is a snapshot of the game for HUDs and logging.
type State struct {
	Phase Phase
	Score int
	Best  int // best score since Reset, not persisted
	Round int
	Tick  int
	Crash CrashCause
}

// StepResult reports what happened during one tick.
type StepResult struct {
	// Sounds to play, in the order they were triggered.
	Sounds []assets.Sound
	Quit   bool
	State  State
}

// Game implements Flappy Bird.
type Game struct {
	cfg   config.GameConfig
	sizes SpriteSizer
	rc    core.RuntimeConfig
	rng   *rand.Rand

	phase      Phase
	background *Background
	floor      *Floor
	player     *Player
	welcome    *WelcomeMessage
	gameOver   *GameOver
	pipes      *Pipes
	score      *Score

	sounds []assets.Sound
	best   int
	round  int
	tick   int
	debug  bool
}

// New creates a game. Call Reset before the first Step.
func New(cfg config.GameConfig, sizes SpriteSizer) *Game {
	return &Game{cfg: cfg, sizes: sizes}
}

// Reset starts over from the splash screen with the RNG seeded from rc.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.best = 0
	g.round = 0
	g.tick = 0
	g.debug = rc.Debug
	g.newRound()
}

// newRound builds fresh entities and shows the splash screen.
func (g *Game) newRound() {
	g.round++
	g.background = NewBackground(g.sizes)
	g.floor = NewFloor(g.cfg, g.sizes)
	g.player = NewPlayer(g.cfg, g.sizes, g.emit)
	g.welcome = NewWelcomeMessage(g.cfg, g.sizes)
	g.gameOver = NewGameOver(g.cfg, g.sizes, g.rc.TickSeconds(), g.emit)
	g.pipes = NewPipes(g.cfg, g.sizes, g.rng)
	g.score = NewScore(g.cfg, g.sizes, g.emit)

	g.phase = PhaseSplash
	g.player.SetMode(PlayerSHM)
}

func (g *Game) emit(s assets.Sound) {
	g.sounds = append(g.sounds, s)
}

// Step advances the game by one tick.
//
// A phase change hands the rest of the tick to the new phase, so entering
// Play after a splash tap moves the bird in the same frame. The tap that
// caused a transition is consumed by it.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.sounds = nil

	if in.Has(core.ActionQuit) {
		return StepResult{Quit: true, State: g.State()}
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	g.tick++
	tap := in.Has(core.ActionTap)
	for {
		next, consumed := g.stepPhase(tap)
		if next == g.phase && !consumed {
			break
		}
		if consumed {
			tap = false
		}
		switch next {
		case PhasePlay:
			g.enterPlay()
		case PhaseGameOver:
			g.enterGameOver()
		case PhaseSplash:
			g.newRound()
		}
	}

	return StepResult{Sounds: g.sounds, State: g.State()}
}

// stepPhase runs one frame of the current phase. When the phase ends it
// returns the next phase without ticking, and whether the tap was used up.
func (g *Game) stepPhase(tap bool) (next Phase, consumed bool) {
	switch g.phase {
	case PhaseSplash:
		if tap {
			return PhasePlay, true
		}
		g.floor.Tick()
		g.player.Tick()

	case PhasePlay:
		if g.player.Collided(g.pipes, g.floor) {
			return PhaseGameOver, false
		}
		for _, pipe := range g.pipes.Upper {
			if g.player.Crossed(pipe) {
				g.score.Add()
			}
		}
		if tap {
			g.player.Flap()
		}
		g.floor.Tick()
		g.pipes.Tick()
		g.player.Tick()

	case PhaseGameOver:
		if tap && g.player.Y+float64(g.player.H) >= g.floor.Y-1 {
			return PhaseSplash, true
		}
		g.floor.Tick()
		g.pipes.Tick()
		g.player.Tick()
		g.gameOver.Tick()
	}
	return g.phase, false
}

func (g *Game) enterPlay() {
	g.phase = PhasePlay
	g.score.Reset()
	g.player.SetMode(PlayerNormal)
}

func (g *Game) enterGameOver() {
	g.phase = PhaseGameOver
	g.player.SetMode(PlayerCrash)
	g.pipes.Stop()
	g.floor.Stop()
	if s := g.score.Value(); s > g.best {
		g.best = s
	}
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	return State{
		Phase: g.phase,
		Score: g.score.Value(),
		Best:  g.best,
		Round: g.round,
		Tick:  g.tick,
		Crash: g.player.Cause(),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Player returns the bird.
func (g *Game) Player() *Player { return g.player }

// Pipes returns the obstacles.
func (g *Game) Pipes() *Pipes { return g.pipes }

// Floor returns the scrolling base.
func (g *Game) Floor() *Floor { return g.floor }

// Debug reports whether the hitbox overlay is on.
func (g *Game) Debug() bool { return g.debug }
