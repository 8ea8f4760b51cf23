package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/registry"
)

// Terminal rows outside the game picture. The HUD is drawn into the top of
// the screen buffer; the help line is rendered below it.
const (
	hudRows  = 1
	helpRows = 1
)

// Model is the Bubble Tea model for running Flappy in a terminal.
type Model struct {
	game       *flappy.Game
	renderer   *Renderer
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	state      flappy.State
	fps        int
	quitting   bool
}

// NewModel creates a model for a cols x rows terminal. lg styles the output;
// SSH sessions pass the session's renderer so colours match the client.
func NewModel(opts registry.Options, cols, rows int, lg *lipgloss.Renderer) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}

	game := flappy.New(opts.Config, opts.Images)
	game.Reset(cfg)

	h := help.New()
	h.Styles.ShortKey = lg.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.Hex()))
	h.Styles.ShortDesc = lg.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	return Model{
		game:       game,
		renderer:   NewRenderer(opts.Images, opts.Config.Window.Width, opts.Config.Window.Height, lg),
		screen:     core.NewScreen(cols, rows-helpRows),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		state:      game.State(),
		fps:        cfg.FPS,
	}
}

// Init starts the tick loop. The game was reset in NewModel.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Set(MouseAction(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "best", m.state.Best, "rounds", m.state.Round)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the game running; only the picture is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	for _, snd := range res.Sounds {
		m.logger.Debug("sound", "name", snd)
	}
	m.trackPhase(res.State)
	m.state = res.State

	return m, tickCmd(m.fps)
}

func (m Model) trackPhase(st flappy.State) {
	if st.Phase == m.state.Phase {
		return
	}
	if st.Phase == flappy.PhaseGameOver {
		m.logger.Info("round over", "round", st.Round, "score", st.Score, "best", st.Best, "crash", st.Crash)
	} else {
		m.logger.Debug("phase", "from", m.state.Phase, "to", st.Phase, "round", st.Round)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.game.Scene(), m.screen, hudRows)
	m.drawHUD()

	var sb strings.Builder
	sb.WriteString(m.renderer.RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// drawHUD writes the score line into the top row of the screen.
func (m Model) drawHUD() {
	title := fmt.Sprintf("FLAPPY  score %d  best %d", m.state.Score, m.state.Best)
	m.screen.DrawText(0, 0, title, core.ColorYellow, core.ColorDefault)
	m.screen.DrawText(len(title)+2, 0, hint(m.state.Phase), core.ColorGray, core.ColorDefault)
}

func hint(p flappy.Phase) string {
	switch p {
	case flappy.PhaseSplash:
		return "tap to start"
	case flappy.PhaseGameOver:
		return "tap to try again"
	default:
		return ""
	}
}

// State returns the last game state seen by the model.
func (m Model) State() flappy.State {
	return m.state
}
