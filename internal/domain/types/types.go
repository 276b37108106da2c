// Package types contains common read shapes shared between the service and
// the HTTP layer.
package types

// MoveView is the JSON shape of one move.
type MoveView struct {
	Command      string `json:"command"`
	HitLevel     string `json:"hit_level,omitempty"`
	Damage       string `json:"damage,omitempty"`
	Startup      string `json:"startup,omitempty"`
	OnBlock      string `json:"on_block,omitempty"`
	OnHit        string `json:"on_hit,omitempty"`
	OnCounterHit string `json:"on_counter_hit,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ClassifiedMoveView is a move plus the reasons it was selected.
type ClassifiedMoveView struct {
	MoveView
	Reasons []string `json:"reasons"`
}

// PairingView is one opponent-move/punisher pairing with its advantage.
// Advantage is null when either side's value did not parse numerically.
type PairingView struct {
	Punisher  string `json:"punisher"`
	Startup   int    `json:"startup"`
	Advantage *int   `json:"advantage"`
}

// WindowView is one emitted punish window.
type WindowView struct {
	Label     string        `json:"label"`
	Situation string        `json:"situation,omitempty"`
	Pairings  []PairingView `json:"pairings"`
}

// AdvantageView groups the advantage pairings for one punishable move.
type AdvantageView struct {
	OpponentMove string        `json:"opponent_move"`
	OnBlock      string        `json:"on_block,omitempty"`
	Pairings     []PairingView `json:"pairings"`
}

// MatchupView is the read shape of a built matchup context.
type MatchupView struct {
	RequestID       string               `json:"request_id"`
	Player          string               `json:"player"`
	Opponent        string               `json:"opponent"`
	KeyMoves        []ClassifiedMoveView `json:"key_moves"`
	PunishableMoves []ClassifiedMoveView `json:"punishable_moves"`
	Windows         []WindowView         `json:"punish_windows"`
	Advantages      []AdvantageView      `json:"advantages"`
	BuiltAt         string               `json:"built_at"`
}
