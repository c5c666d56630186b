package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/gamelog"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Board footprint on the terminal: a one-cell border around the arena and
// the score line above it.
const (
	boardW  = tetris.ArenaWidth*cellCols + 2
	boardH  = tetris.ArenaHeight + 2
	minW    = boardW
	minH    = boardH + 1
	scoreFg = core.Color("#ffffff")
)

// Options configures a Model.
type Options struct {
	Settings tetris.Settings
	Renderer tetris.Renderer // zero value means tetris.DefaultRenderer
	Keys     KeyMap

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// Lipgloss renders styles for the output. Nil uses the default
	// renderer; SSH sessions pass one bound to the session.
	Lipgloss *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes. Empty means
	// ~/.tetris/screenshots.
	ScreenshotDir string
}

// scoreLabel is the score readout the game writes to after every lock.
type scoreLabel struct {
	text string
}

func (l *scoreLabel) SetText(text string) {
	l.text = text
}

// Model is the Bubble Tea model for one tetris session.
type Model struct {
	game          *tetris.Game
	renderer      tetris.Renderer
	keys          KeyMap
	score         *scoreLabel
	screen        *core.Screen
	lipgloss      *lipgloss.Renderer
	logger        *log.Logger
	config        core.RuntimeConfig
	screenshotDir string
	lastFrame     time.Time
	quitting      bool
}

// NewModel creates a model and starts a fresh game.
func NewModel(opts Options, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = gamelog.Discard()
	}

	if opts.Renderer == (tetris.Renderer{}) {
		opts.Renderer = tetris.DefaultRenderer()
	}

	label := &scoreLabel{text: "0"}
	game := tetris.New(opts.Settings,
		tetris.WithScoreSink(label),
		tetris.WithObserver(gamelog.NewObserver(logger)),
	)
	game.Reset(cfg)

	return Model{
		game:          game,
		renderer:      opts.Renderer,
		keys:          opts.Keys,
		score:         label,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		lipgloss:      opts.Lipgloss,
		logger:        logger,
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.game.Apply(action)
	return m, nil
}

// handleFrame feeds the real time since the previous frame to gravity.
// The first frame only records the clock.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() {
		m.game.Update(now.Sub(m.lastFrame))
	}
	m.lastFrame = now
	return m, frameCmd(m.config.TickRate)
}

// draw paints the board and score into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()

	if m.screen.Width() < minW || m.screen.Height() < minH {
		m.screen.DrawTextCentered(m.screen.Height()/2,
			fmt.Sprintf("Terminal too small: need %dx%d", minW, minH))
		return
	}

	left := (m.screen.Width() - boardW) / 2
	top := (m.screen.Height() - minH) / 2

	scoreText := "Score: " + m.score.text
	for i, r := range scoreText {
		m.screen.SetCell(left+i, top, core.Cell{Rune: r, Color: scoreFg})
	}

	m.screen.DrawBox(core.NewRect(left, top+1, boardW, boardH))
	m.renderer.Draw(newScreenSurface(m.screen, core.Point{X: left + 1, Y: top + 2}), m.game)
}

func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tetris", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen, m.lipgloss)
}

// Game returns the session being played.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Result summarizes a finished session.
type Result struct {
	Score     int
	HighScore int
}

// Run plays one session on the local terminal until the player quits.
func Run(opts Options, cfg core.RuntimeConfig) (Result, error) {
	p := tea.NewProgram(NewModel(opts, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{Score: m.game.Score(), HighScore: m.game.HighScore()}, nil
}
