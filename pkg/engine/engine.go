package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tsumego/ishi/pkg/board"
)

var version = build.NewVersion(0, 1, 0)

// Engine wraps a single Go board as a session: the board, its Zobrist
// table, and the player on move. It adds no search or evaluation --
// move generation and policy are explicit non-goals of the core.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	seed int64

	b    *board.Board
	turn board.Color
	mu   sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithZobrist configures the engine to use the given random seed instead of
// the default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns a cloned board, safe for the caller to inspect or mutate
// independently of the engine's live session state.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Clone()
}

// Turn returns the color on move.
func (e *Engine) Turn() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.turn
}

// Reset starts a new empty game, Black to move.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.b = board.New(e.zt)
	e.turn = board.Black

	logw.Infof(ctx, "New board: %v", e.name)
}

// Place plays the color on move at (x, y) and advances the turn.
func (e *Engine) Place(ctx context.Context, x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.b.IsValid(e.turn, x, y) {
		return fmt.Errorf("illegal move: %v at %v", e.turn, board.FormatCoordinate(x, y))
	}

	e.b.Place(e.turn, x, y)
	logw.Infof(ctx, "Place %v %v: hash=0x%x", e.turn, board.FormatCoordinate(x, y), e.b.ZobristHash())

	e.turn = e.turn.Opposite()
	return nil
}

// Score returns the Tromp-Taylor area score (black, white) of the current
// board.
func (e *Engine) Score() (int, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.GetScore()
}
