// Package tetris implements the falling-block puzzle: the piece catalog,
// collision, line sweeping and a Game session that a platform drives with
// Update and Apply and draws through a Renderer.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Settings tunes a session. The zero value is not usable; start from
// DefaultSettings.
type Settings struct {
	DropInterval time.Duration // Gravity period
	LinePoints   int           // Award for the first row of a sweep
}

// DefaultSettings returns one drop per second and 10 points per line.
func DefaultSettings() Settings {
	return Settings{
		DropInterval: time.Second,
		LinePoints:   DefaultLinePoints,
	}
}

// ScoreSink receives the score as text after every lock.
type ScoreSink interface {
	SetText(text string)
}

// Observer is notified of scoring events.
type Observer interface {
	LinesCleared(rows, points, score int)
	ToppedOut(score, highScore int)
}

type nopSink struct{}

func (nopSink) SetText(string) {}

type nopObserver struct{}

func (nopObserver) LinesCleared(int, int, int) {}
func (nopObserver) ToppedOut(int, int)         {}

// Option configures a Game.
type Option func(*Game)

// WithScoreSink routes score updates to s.
func WithScoreSink(s ScoreSink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithObserver routes scoring events to o.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observer = o
		}
	}
}

// Game is one play session. It is not safe for concurrent use; the host
// calls Update, Apply and Draw from a single goroutine.
type Game struct {
	settings    Settings
	rng         *rand.Rand
	frames      uint64
	dropCounter time.Duration

	arena  Grid
	player Player

	sink     ScoreSink
	observer Observer
}

// New creates a game. Call Reset before the first Update.
func New(settings Settings, opts ...Option) *Game {
	if settings.DropInterval <= 0 {
		settings.DropInterval = DefaultSettings().DropInterval
	}
	if settings.LinePoints <= 0 {
		settings.LinePoints = DefaultLinePoints
	}

	g := &Game{
		settings: settings,
		sink:     nopSink{},
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier used in logs and screenshots.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a fresh session: empty arena, zero scores and a random
// first piece hanging one row above the field.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frames = 0
	g.dropCounter = 0
	g.arena = NewArena()
	g.player = Player{
		Pos:    core.Point{X: 3, Y: -1},
		Matrix: RandomBlock(g.rng),
	}
}

// Update advances gravity by dt. A drop fires once the accumulated time
// exceeds the drop interval.
func (g *Game) Update(dt time.Duration) {
	g.frames++
	if dt > 0 {
		g.dropCounter += dt
	}
	if g.dropCounter > g.settings.DropInterval {
		g.Drop()
	}
}

// Apply performs a player action. Actions the game does not handle are
// ignored.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		g.Move(-1)
	case core.ActionMoveRight:
		g.Move(1)
	case core.ActionSoftDrop:
		g.Drop()
	case core.ActionRotateCCW:
		g.Rotate(-1)
	case core.ActionRotateCW:
		g.Rotate(1)
	}
}

// Arena returns the settled grid. Callers must not modify it.
func (g *Game) Arena() Grid {
	return g.arena
}

// Player returns the current player state. The matrix is shared with the
// game and must not be modified.
func (g *Game) Player() Player {
	return g.player
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.player.Score
}

// HighScore returns the best score reached before a top-out.
func (g *Game) HighScore() int {
	return g.player.HighScore
}
