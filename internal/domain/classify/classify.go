// Package classify derives matchup-relevant move sets from a character's
// move list.
//
// Conventions:
// - Both classification operations are pure functions of their input:
//   no I/O, no shared mutable state, safe to call concurrently.
// - Ordering is deterministic and total; ties break by original list
//   position so identical input always yields identical output.
package classify

import (
	"sort"

	"github.com/pena92022/Tekken/internal/domain/frames"
	"github.com/pena92022/Tekken/internal/domain/model"
)

// Reason explains why a move was included in a classified set.
type Reason string

// Classification reasons.
const (
	ReasonLauncher        Reason = "launcher"
	ReasonFastPoke        Reason = "fast-poke"
	ReasonPlusOnBlock     Reason = "plus-on-block"
	ReasonSpecialProperty Reason = "special-property"
	ReasonPunishable      Reason = "punishable"
)

// Classification thresholds.
const (
	// fastPokeStartupMax is the slowest startup that still counts as a poke.
	fastPokeStartupMax = 12
	// punishableBlockMax is the least negative block value that is still
	// considered punishable (i.e. onBlock <= -10).
	punishableBlockMax = -10
)

// Default truncation caps. Presentation-driven, not correctness: they bound
// downstream report size. Configurable via options; a cap <= 0 disables
// truncation.
const (
	DefaultKeyMoveCap    = 20
	DefaultPunishableCap = 15
)

// Entry references one move of the original list together with the parsed
// values the ranking used and the reasons it qualified.
type Entry struct {
	Move    *model.Move
	Index   int // position in the original move list
	Reasons []Reason
	Startup frames.Value
	OnBlock frames.Value
}

// ClassifiedSet is an ordered subset of a move list. Total carries the
// pre-truncation size so callers can tell when the cap was hit.
type ClassifiedSet struct {
	Entries []Entry
	Total   int
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithKeyMoveCap bounds the key-move set size. Non-positive disables the cap.
func WithKeyMoveCap(n int) Option {
	return func(c *Classifier) {
		c.keyMoveCap = n
	}
}

// WithPunishableCap bounds the punishable-move set size. Non-positive
// disables the cap.
func WithPunishableCap(n int) Option {
	return func(c *Classifier) {
		c.punishableCap = n
	}
}

// Classifier produces key-move and punishable-move sets.
type Classifier struct {
	keyMoveCap    int
	punishableCap int
}

// New creates a Classifier with default caps.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		keyMoveCap:    DefaultKeyMoveCap,
		punishableCap: DefaultPunishableCap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// KeyMoves selects the moves that shape a character's offense: launchers,
// fast pokes, plus-on-block pressure tools, and special-property moves.
//
// Ranking: launchers first, then non-launchers by descending numeric
// onBlock. Moves without a numeric block value sort after all numeric ones,
// keeping their relative order.
func (c *Classifier) KeyMoves(moves []model.Move) ClassifiedSet {
	entries := make([]Entry, 0, len(moves))
	for i := range moves {
		e := Entry{
			Move:    &moves[i],
			Index:   i,
			Startup: frames.Parse(moves[i].Startup),
			OnBlock: frames.Parse(moves[i].OnBlock),
		}
		if frames.Parse(moves[i].OnHit).Is(frames.OutcomeLaunch) ||
			frames.Parse(moves[i].OnCounterHit).Is(frames.OutcomeLaunch) {
			e.Reasons = append(e.Reasons, ReasonLauncher)
		}
		if n, ok := e.Startup.Int(); ok && n <= fastPokeStartupMax {
			e.Reasons = append(e.Reasons, ReasonFastPoke)
		}
		if n, ok := e.OnBlock.Int(); ok && n > 0 {
			e.Reasons = append(e.Reasons, ReasonPlusOnBlock)
		}
		if frames.HasProperty(moves[i].Notes) {
			e.Reasons = append(e.Reasons, ReasonSpecialProperty)
		}
		if len(e.Reasons) > 0 {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return keyRank(entries[i]) < keyRank(entries[j])
	})

	return truncate(entries, c.keyMoveCap)
}

// PunishableMoves selects the moves that are unsafe on block, most
// exploitable first (ascending onBlock, i.e. most negative leads).
func (c *Classifier) PunishableMoves(moves []model.Move) ClassifiedSet {
	entries := make([]Entry, 0, len(moves))
	for i := range moves {
		block := frames.Parse(moves[i].OnBlock)
		n, ok := block.Int()
		if !ok || n > punishableBlockMax {
			continue
		}
		entries = append(entries, Entry{
			Move:    &moves[i],
			Index:   i,
			Reasons: []Reason{ReasonPunishable},
			Startup: frames.Parse(moves[i].Startup),
			OnBlock: block,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, _ := entries[i].OnBlock.Int()
		b, _ := entries[j].OnBlock.Int()
		return a < b
	})

	return truncate(entries, c.punishableCap)
}

// IsLauncher reports whether the entry qualified as a launcher.
func (e Entry) IsLauncher() bool {
	for _, r := range e.Reasons {
		if r == ReasonLauncher {
			return true
		}
	}
	return false
}

// keyRank orders key moves into three bands: launchers, numeric-block moves
// by descending advantage, then everything else. Stable sort keeps the
// original list order within equal ranks.
func keyRank(e Entry) int {
	if e.IsLauncher() {
		return -1 << 20
	}
	if n, ok := e.OnBlock.Int(); ok {
		// Map descending block advantage onto ascending rank. Block values
		// live in a narrow band; 1000 comfortably covers it.
		return 1000 - n
	}
	return 1 << 20
}

func truncate(entries []Entry, limit int) ClassifiedSet {
	total := len(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return ClassifiedSet{Entries: entries, Total: total}
}
