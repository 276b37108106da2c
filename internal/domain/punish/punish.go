// Package punish buckets punish candidates into timing windows and computes
// frame advantage for opponent-move/punisher pairings.
package punish

import (
	"sort"

	"github.com/pena92022/Tekken/internal/domain/classify"
	"github.com/pena92022/Tekken/internal/domain/frames"
	"github.com/pena92022/Tekken/internal/domain/model"
)

// Bucket is one inclusive startup range with a short description of the
// situation it answers. Max < Min never happens; the open final bucket uses
// Max = noUpperBound.
type Bucket struct {
	Label     string
	Situation string
	Min       int
	Max       int
}

const noUpperBound = 1<<31 - 1

// buckets are the conventional fast-punish timing classes. Contiguous,
// non-overlapping, covering [9, infinity). Sub-9f punishers are rare and
// folded into the 10f class rather than given one of their own, so the
// first bucket accepts any positive startup up to 10.
var buckets = []Bucket{
	{Label: "10f", Situation: "standing jab-speed punish; answers anything -10 or worse", Min: 1, Max: 10},
	{Label: "12f", Situation: "fast mid punish for moves left -12 or worse", Min: 11, Max: 12},
	{Label: "13f", Situation: "stronger standing punish, often a knockdown, at -13", Min: 13, Max: 13},
	{Label: "14f", Situation: "delayed punish that still reaches through pushback at -14", Min: 14, Max: 14},
	{Label: "15f+", Situation: "full launch punish when the move is -15 or worse", Min: 15, Max: noUpperBound},
}

// DefaultCandidateCap bounds punishers listed per window.
const DefaultCandidateCap = 3

// Candidate is one punisher inside a window, with its parsed startup.
type Candidate struct {
	Move    *model.Move
	Index   int // position in the punisher move list
	Startup int
}

// Window is one emitted timing bucket. Windows with zero candidates are
// never emitted: an empty window would read as "no punish exists in this
// class", which is not what it means.
type Window struct {
	Bucket     Bucket
	Candidates []Candidate
}

// Advantage is the frame advantage of a single pairing. Known is false when
// either side's value did not parse to a number; callers must not treat the
// zero Frames as a real advantage in that case.
type Advantage struct {
	Frames int
	Known  bool
}

// PairAdvantage computes abs(onBlock) - startup for one opponent move and
// one punisher. Defined only when both parse numerically.
func PairAdvantage(opponentMove, punisher model.Move) Advantage {
	block, okBlock := frames.Parse(opponentMove.OnBlock).Int()
	startup, okStartup := frames.Parse(punisher.Startup).Int()
	if !okBlock || !okStartup {
		return Advantage{}
	}
	if block < 0 {
		block = -block
	}
	return Advantage{Frames: block - startup, Known: true}
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithCandidateCap bounds candidates per window. Non-positive disables it.
func WithCandidateCap(n int) Option {
	return func(b *Builder) {
		b.candidateCap = n
	}
}

// Builder assembles punish windows from a punishable set and the punishing
// side's full move list.
type Builder struct {
	candidateCap int
}

// New creates a Builder with the default candidate cap.
func New(opts ...Option) *Builder {
	b := &Builder{candidateCap: DefaultCandidateCap}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildWindows walks the buckets in increasing-speed order and fills each
// with punishers whose parsed startup falls in its range. Moves with
// unparseable startup belong to no bucket. The punishable set is accepted
// so callers hand over both halves of the matchup; it does not influence
// which windows exist, only whether building them is worthwhile at all.
func (b *Builder) BuildWindows(punishable classify.ClassifiedSet, punishers []model.Move) []Window {
	if len(punishable.Entries) == 0 {
		return nil
	}

	windows := make([]Window, 0, len(buckets))
	for _, bucket := range buckets {
		var candidates []Candidate
		for i := range punishers {
			n, ok := frames.Parse(punishers[i].Startup).Int()
			if !ok || n < bucket.Min || n > bucket.Max {
				continue
			}
			candidates = append(candidates, Candidate{
				Move:    &punishers[i],
				Index:   i,
				Startup: n,
			})
			if b.candidateCap > 0 && len(candidates) == b.candidateCap {
				break
			}
		}
		if len(candidates) == 0 {
			continue
		}
		windows = append(windows, Window{Bucket: bucket, Candidates: candidates})
	}
	return windows
}

// Pairing joins one punishable opponent move with one punisher fast enough
// to connect inside its block disadvantage.
type Pairing struct {
	Opponent      *model.Move
	OpponentIndex int // position in the opponent's original move list
	Punisher      *model.Move
	PunisherIndex int // position in the punisher move list
	Startup       int
	Advantage     Advantage
}

// BuildPairings computes the advantage entries for every punishable move:
// the punishers whose startup fits inside the move's block disadvantage,
// fastest first, up to the candidate cap per move. The output is grouped by
// opponent move in punishable-set order. Punishers with unparseable startup
// cannot be scheduled against a recovery and are skipped.
func (b *Builder) BuildPairings(punishable classify.ClassifiedSet, punishers []model.Move) []Pairing {
	var pairings []Pairing
	for _, e := range punishable.Entries {
		block, ok := e.OnBlock.Int()
		if !ok {
			continue
		}
		gap := -block

		var fits []Pairing
		for i := range punishers {
			n, ok := frames.Parse(punishers[i].Startup).Int()
			if !ok || n < 1 || n > gap {
				continue
			}
			fits = append(fits, Pairing{
				Opponent:      e.Move,
				OpponentIndex: e.Index,
				Punisher:      &punishers[i],
				PunisherIndex: i,
				Startup:       n,
				Advantage:     Advantage{Frames: gap - n, Known: true},
			})
		}
		sort.SliceStable(fits, func(x, y int) bool {
			return fits[x].Startup < fits[y].Startup
		})
		if b.candidateCap > 0 && len(fits) > b.candidateCap {
			fits = fits[:b.candidateCap]
		}
		pairings = append(pairings, fits...)
	}
	return pairings
}

// Buckets exposes the bucket table for tests and downstream consumers.
func Buckets() []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets)
	return out
}
