// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"time"

	service "github.com/pena92022/Tekken/internal/app"
	"github.com/pena92022/Tekken/internal/domain/classify"
	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/internal/domain/punish"
	"github.com/pena92022/Tekken/internal/domain/types"
)

func toMoveView(m model.Move) types.MoveView {
	return types.MoveView{
		Command:      m.Command,
		HitLevel:     m.HitLevel,
		Damage:       m.Damage,
		Startup:      m.Startup,
		OnBlock:      m.OnBlock,
		OnHit:        m.OnHit,
		OnCounterHit: m.OnCounterHit,
		Notes:        m.Notes,
	}
}

func toClassifiedViews(set classify.ClassifiedSet) []types.ClassifiedMoveView {
	views := make([]types.ClassifiedMoveView, len(set.Entries))
	for i, e := range set.Entries {
		reasons := make([]string, len(e.Reasons))
		for j, r := range e.Reasons {
			reasons[j] = string(r)
		}
		views[i] = types.ClassifiedMoveView{
			MoveView: toMoveView(*e.Move),
			Reasons:  reasons,
		}
	}
	return views
}

// toWindowViews pairs every window candidate with the opponent's most
// punishable move. Each pairing carries its own advantage; an unparseable
// side leaves Advantage null rather than zero.
func toWindowViews(windows []punish.Window, punishable classify.ClassifiedSet) []types.WindowView {
	views := make([]types.WindowView, len(windows))
	for i, win := range windows {
		pairings := make([]types.PairingView, len(win.Candidates))
		for j, cand := range win.Candidates {
			p := types.PairingView{
				Punisher: cand.Move.Command,
				Startup:  cand.Startup,
			}
			if len(punishable.Entries) > 0 {
				adv := punish.PairAdvantage(*punishable.Entries[0].Move, *cand.Move)
				if adv.Known {
					frames := adv.Frames
					p.Advantage = &frames
				}
			}
			pairings[j] = p
		}
		views[i] = types.WindowView{
			Label:     win.Bucket.Label,
			Situation: win.Bucket.Situation,
			Pairings:  pairings,
		}
	}
	return views
}

// toAdvantageViews regroups the flat pairing list by opponent move. The
// builder emits pairings contiguously per move, so a change in opponent
// index starts a new group.
func toAdvantageViews(pairings []punish.Pairing) []types.AdvantageView {
	var views []types.AdvantageView
	last := -1
	for _, p := range pairings {
		if p.OpponentIndex != last {
			views = append(views, types.AdvantageView{
				OpponentMove: p.Opponent.Command,
				OnBlock:      p.Opponent.OnBlock,
			})
			last = p.OpponentIndex
		}
		pv := types.PairingView{Punisher: p.Punisher.Command, Startup: p.Startup}
		if p.Advantage.Known {
			frames := p.Advantage.Frames
			pv.Advantage = &frames
		}
		views[len(views)-1].Pairings = append(views[len(views)-1].Pairings, pv)
	}
	return views
}

func toMatchupView(mc *service.MatchupContext) types.MatchupView {
	return types.MatchupView{
		RequestID:       mc.RequestID,
		Player:          mc.PlayerID,
		Opponent:        mc.OpponentID,
		KeyMoves:        toClassifiedViews(mc.KeyMoves),
		PunishableMoves: toClassifiedViews(mc.PunishableMoves),
		Windows:         toWindowViews(mc.Windows, mc.PunishableMoves),
		Advantages:      toAdvantageViews(mc.Advantages),
		BuiltAt:         mc.BuiltAt.UTC().Format(time.RFC3339),
	}
}
