// Package window runs tetris in a desktop window with ebiten, where the
// renderer's fill and stroke rectangles map onto real pixels.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/gamelog"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// DefaultCellSize is the pixel size of one arena cell.
const DefaultCellSize = 20

// Options configures an App.
type Options struct {
	Settings tetris.Settings
	Renderer tetris.Renderer // zero value means tetris.DefaultRenderer
	Bindings tetris.Bindings // nil means tetris.DefaultBindings
	CellSize int
	Seed     int64

	// Logger receives game events. Nil discards them.
	Logger *log.Logger
}

type scoreLabel struct {
	text string
}

func (l *scoreLabel) SetText(text string) {
	l.text = text
}

// App implements ebiten.Game around one tetris session.
type App struct {
	game     *tetris.Game
	renderer tetris.Renderer
	bindings tetris.Bindings
	score    *scoreLabel
	cellSize int
	step     time.Duration
	pressed  []ebiten.Key
}

var _ ebiten.Game = (*App)(nil)

// NewApp creates an App and starts a fresh game.
func NewApp(opts Options) *App {
	if opts.Renderer == (tetris.Renderer{}) {
		opts.Renderer = tetris.DefaultRenderer()
	}
	if opts.Bindings == nil {
		opts.Bindings = tetris.DefaultBindings()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = gamelog.Discard()
	}

	label := &scoreLabel{text: "0"}
	game := tetris.New(opts.Settings,
		tetris.WithScoreSink(label),
		tetris.WithObserver(gamelog.NewObserver(logger)),
	)
	game.Reset(core.RuntimeConfig{
		ScreenW:  tetris.ArenaWidth * opts.CellSize,
		ScreenH:  tetris.ArenaHeight * opts.CellSize,
		TickRate: ebiten.DefaultTPS,
		Seed:     opts.Seed,
	})

	return &App{
		game:     game,
		renderer: opts.Renderer,
		bindings: opts.Bindings,
		score:    label,
		cellSize: opts.CellSize,
		step:     time.Second / ebiten.DefaultTPS,
	}
}

// Game returns the session being played.
func (a *App) Game() *tetris.Game {
	return a.game
}

// Update implements ebiten.Game. ebiten calls it at a fixed rate, so each
// call advances gravity by one step.
func (a *App) Update() error {
	a.pressed = inpututil.AppendJustPressedKeys(a.pressed[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	names := make([]string, 0, len(a.pressed))
	for _, k := range a.pressed {
		if name, ok := keyName(k, ctrl); ok {
			names = append(names, name)
		}
	}
	return a.tick(names)
}

// tick applies the keys pressed this frame, then advances gravity.
// It returns ebiten.Termination when a quit key is among them.
func (a *App) tick(keys []string) error {
	for _, k := range keys {
		action := a.bindings.Lookup(k)
		if action == core.ActionQuit {
			return ebiten.Termination
		}
		a.game.Apply(action)
	}
	a.game.Update(a.step)
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(imageSurface{dst: screen, scale: float32(a.cellSize)}, a.game)
	ebitenutil.DebugPrintAt(screen, "Score: "+a.score.text, 4, 4)
}

// Layout implements ebiten.Game. The logical screen is always the arena.
func (a *App) Layout(_, _ int) (int, int) {
	return tetris.ArenaWidth * a.cellSize, tetris.ArenaHeight * a.cellSize
}

// Result summarizes a finished session.
type Result struct {
	Score     int
	HighScore int
}

// Run opens the window and plays until it is closed or a quit key is
// pressed.
func Run(opts Options) (Result, error) {
	app := NewApp(opts)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.game.Title())

	if err := ebiten.RunGame(app); err != nil {
		return Result{}, fmt.Errorf("window: %w", err)
	}
	return Result{Score: app.game.Score(), HighScore: app.game.HighScore()}, nil
}
