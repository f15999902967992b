package eval

import (
	"context"
	"sync"

	"github.com/komainu-shogi/shogicore/pkg/shogi/board"
	"github.com/seekerror/logw"
)

// Evaluator is a static, tapered sub-scorer, evaluated from the side to
// move's perspective. Each Evaluator is an independent summand of the
// Pipeline's final score (§4.4).
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) TaperedScore
}

// phaseCacheEntry is a single memoized game-phase computation, keyed by a
// cheap position hash.
type phaseCacheEntry struct {
	hash  board.Hash
	phase int
}

// Pipeline sums the enabled evaluators and interpolates once by game phase,
// caching the phase lookup per position hash (§4.4.6). It owns no game
// state itself: Config changes take effect on the very next Evaluate call
// (the one-entry cache below is simply overwritten, which is the cheapest
// possible invalidation for a single hot position such as a search root).
type Pipeline struct {
	Config  Config
	Zobrist *board.ZobristTable

	Material   *Material
	Positional *Positional
	Tactical   *Tactical
	Opening    *Opening
	Endgame    *Endgame

	mu    sync.Mutex
	cache phaseCacheEntry
}

// Option is a Pipeline construction option, mirroring the teacher's
// pkg/engine Option pattern (engine.WithTable, engine.WithZobrist).
type Option func(*Pipeline)

// WithConfig overrides the default (every-evaluator-enabled) Config.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.Config = cfg
	}
}

// NewPipeline builds a Pipeline with every evaluator wired in and the
// default configuration, customized by opts.
func NewPipeline(zt *board.ZobristTable, opts ...Option) *Pipeline {
	p := &Pipeline{
		Config:     DefaultConfig(),
		Zobrist:    zt,
		Material:   NewMaterial(),
		Positional: NewPositional(),
		Tactical:   NewTactical(),
		Opening:    NewOpening(),
		Endgame:    NewEndgame(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate computes the final interpolated Score for the side to move.
func (p *Pipeline) Evaluate(ctx context.Context, b *board.Board, hands [board.NumColors]board.Hand, turn board.Color, moveCount int) Score {
	var total TaperedScore

	if p.Config.EnableMaterial {
		total = total.Add(p.Material.Evaluate(ctx, b, hands, turn, moveCount))
	}
	if p.Config.EnablePositional {
		total = total.Add(p.Positional.Evaluate(ctx, b, hands, turn, moveCount))
	}
	if p.Config.EnableTactical {
		total = total.Add(p.Tactical.Evaluate(ctx, b, hands, turn, moveCount))
	}
	if p.Config.EnableOpening {
		total = total.Add(p.Opening.Evaluate(ctx, b, hands, turn, moveCount))
	}
	if p.Config.EnableEndgame {
		total = total.Add(p.Endgame.Evaluate(ctx, b, hands, turn, moveCount))
	}

	phase := p.phase(b, hands, turn)
	score := Crop(Interpolate(total, phase))

	logw.Debugf(ctx, "eval: turn=%v moveCount=%v phase=%v score=%v", turn, moveCount, phase, score)
	return score
}

// phase returns the cached game phase for b if the position hash matches
// the single cached entry, recomputing (and overwriting the cache) on a
// miss.
func (p *Pipeline) phase(b *board.Board, hands [board.NumColors]board.Hand, turn board.Color) int {
	if p.Zobrist == nil {
		return CalculateGamePhase(b)
	}

	h := p.Zobrist.Hash(b, hands, turn)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cache.hash == h {
		return p.cache.phase
	}
	phase := CalculateGamePhase(b)
	p.cache = phaseCacheEntry{hash: h, phase: phase}
	return phase
}
