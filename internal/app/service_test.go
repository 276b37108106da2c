package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pena92022/Tekken/internal/adapters/repository"
	"github.com/pena92022/Tekken/internal/domain/classify"
	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeSource serves canned move lists keyed by character id.
type fakeSource struct {
	mu    sync.Mutex
	lists map[string][]model.Move
	errs  map[string]error
	gets  []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		lists: make(map[string][]model.Move),
		errs:  make(map[string]error),
	}
}

func (f *fakeSource) Get(ctx context.Context, id string) ([]model.Move, error) {
	f.mu.Lock()
	f.gets = append(f.gets, id)
	f.mu.Unlock()
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	moves, ok := f.lists[id]
	if !ok {
		return nil, repository.ErrFetch
	}
	return moves, nil
}

func (f *fakeSource) Clear(id string) { delete(f.lists, id) }
func (f *fakeSource) ClearAll()       { f.lists = make(map[string][]model.Move) }
func (f *fakeSource) Count() int      { return len(f.lists) }

func devilJinMoves() []model.Move {
	return []model.Move{
		{Command: "1,1,2", HitLevel: "h,h,m", Damage: "5,6,10", Startup: "10", OnBlock: "+5", OnHit: "+8", OnCounterHit: "+8"},
		{Command: "f,n,d,df+2", HitLevel: "m", Damage: "23", Startup: "i11", OnBlock: "-5", OnHit: "Launch", OnCounterHit: "Launch"},
		{Command: "b+4", HitLevel: "m", Damage: "22", Startup: "i17", OnBlock: "-9", OnHit: "+7", OnCounterHit: "Launch", Notes: "Homing"},
		{Command: "uf+4", HitLevel: "m", Damage: "15", Startup: "i15", OnBlock: "-13", OnHit: "Launch", OnCounterHit: "Launch"},
	}
}

func dragunovMoves() []model.Move {
	return []model.Move{
		{Command: "db+3+4", HitLevel: "l", Damage: "24", Startup: "unused", OnBlock: "-31", OnHit: "KND", OnCounterHit: "KND"},
		{Command: "df+1", HitLevel: "m", Damage: "10", Startup: "i13", OnBlock: "-3", OnHit: "+5", OnCounterHit: "+5"},
		{Command: "f+4,4", HitLevel: "m,m", Damage: "12,20", Startup: "i17", OnBlock: "-15", OnHit: "KND", OnCounterHit: "KND"},
	}
}

func startedService(source repository.MoveSource) *Service {
	_ = logger.Init()
	s := New(source)
	_ = s.Start(context.Background())
	return s
}

func TestServiceBuild(t *testing.T) {
	Convey("Given a service over a two-character source", t, func() {
		source := newFakeSource()
		source.lists["devil-jin"] = devilJinMoves()
		source.lists["dragunov"] = dragunovMoves()
		svc := startedService(source)

		Convey("When building Devil Jin vs Dragunov", func() {
			mc, err := svc.Build(context.Background(), "Devil Jin", "Sergei Dragunov")
			So(err, ShouldBeNil)

			Convey("Then the context carries resolved ids and a request id", func() {
				So(mc.PlayerID, ShouldEqual, "devil-jin")
				So(mc.OpponentID, ShouldEqual, "dragunov")
				So(mc.RequestID, ShouldNotBeEmpty)
				So(mc.BuiltAt.IsZero(), ShouldBeFalse)
			})

			Convey("Then both raw move lists are retained", func() {
				So(len(mc.PlayerMoves), ShouldEqual, 4)
				So(len(mc.OpponentMoves), ShouldEqual, 3)
			})

			Convey("Then the player's key moves lead with launchers", func() {
				So(len(mc.KeyMoves.Entries), ShouldBeGreaterThan, 0)
				So(mc.KeyMoves.Entries[0].IsLauncher(), ShouldBeTrue)

				var commands []string
				for _, e := range mc.KeyMoves.Entries {
					commands = append(commands, e.Move.Command)
				}
				So(commands, ShouldContain, "1,1,2") // plus on block, fast poke
			})

			Convey("Then the opponent's most punishable move ranks first", func() {
				So(len(mc.PunishableMoves.Entries), ShouldEqual, 2)
				So(mc.PunishableMoves.Entries[0].Move.Command, ShouldEqual, "db+3+4")
				So(mc.PunishableMoves.Entries[1].Move.Command, ShouldEqual, "f+4,4")
			})

			Convey("Then punish windows cover the player's punishers", func() {
				So(len(mc.Windows), ShouldBeGreaterThan, 0)
				So(mc.Windows[0].Bucket.Label, ShouldEqual, "10f")
				So(mc.Windows[0].Candidates[0].Move.Command, ShouldEqual, "1,1,2")
			})

			Convey("Then advantage pairings cover every punishable move", func() {
				So(len(mc.Advantages), ShouldBeGreaterThan, 0)
				So(mc.Advantages[0].Opponent.Command, ShouldEqual, "db+3+4")
				So(mc.Advantages[0].Punisher.Command, ShouldEqual, "1,1,2")
				So(mc.Advantages[0].Advantage.Known, ShouldBeTrue)
				So(mc.Advantages[0].Advantage.Frames, ShouldEqual, 21)

				seen := map[string]bool{}
				for _, p := range mc.Advantages {
					seen[p.Opponent.Command] = true
				}
				So(seen["f+4,4"], ShouldBeTrue)
			})
		})

		Convey("When building the same matchup twice", func() {
			a, errA := svc.Build(context.Background(), "Devil Jin", "Dragunov")
			b, errB := svc.Build(context.Background(), "Devil Jin", "Dragunov")
			So(errA, ShouldBeNil)
			So(errB, ShouldBeNil)

			Convey("Then the derivation is identical and the request ids are not", func() {
				So(a.RequestID, ShouldNotEqual, b.RequestID)
				So(len(a.KeyMoves.Entries), ShouldEqual, len(b.KeyMoves.Entries))
				for i := range a.KeyMoves.Entries {
					So(a.KeyMoves.Entries[i].Move.Command, ShouldEqual, b.KeyMoves.Entries[i].Move.Command)
				}
				So(len(a.Windows), ShouldEqual, len(b.Windows))
			})
		})
	})
}

func TestServiceBuildFailures(t *testing.T) {
	Convey("Given a service whose source fails selectively", t, func() {
		source := newFakeSource()
		source.lists["devil-jin"] = devilJinMoves()
		source.errs["dragunov"] = repository.ErrFetch
		svc := startedService(source)

		Convey("When one side's fetch fails", func() {
			mc, err := svc.Build(context.Background(), "Devil Jin", "Dragunov")

			Convey("Then the whole build fails with the fetch error", func() {
				So(mc, ShouldBeNil)
				So(errors.Is(err, repository.ErrFetch), ShouldBeTrue)
			})
		})

		Convey("When a display name cannot be resolved", func() {
			mc, err := svc.Build(context.Background(), "!!!", "Dragunov")

			Convey("Then the build fails before touching the source", func() {
				So(mc, ShouldBeNil)
				So(errors.Is(err, ErrResolution), ShouldBeTrue)
				So(len(source.gets), ShouldEqual, 0)
			})
		})
	})
}

func TestServiceMovesAndCache(t *testing.T) {
	Convey("Given a started service", t, func() {
		source := newFakeSource()
		source.lists["kazuya"] = devilJinMoves()
		svc := startedService(source)

		Convey("When listing moves by display name", func() {
			moves, err := svc.Moves(context.Background(), "Kazuya Mishima")
			So(err, ShouldBeNil)
			So(len(moves), ShouldEqual, 4)
		})

		Convey("When listing moves for an unresolvable name", func() {
			_, err := svc.Moves(context.Background(), "   ")
			So(errors.Is(err, ErrResolution), ShouldBeTrue)
		})

		Convey("When clearing one character", func() {
			So(svc.ClearCache("Kazuya Mishima"), ShouldBeNil)
			So(source.Count(), ShouldEqual, 0)
		})

		Convey("When clearing everything", func() {
			source.lists["jin"] = dragunovMoves()
			So(svc.ClearCache(""), ShouldBeNil)
			So(source.Count(), ShouldEqual, 0)
		})

		Convey("Then stats expose the configured caps", func() {
			stats := svc.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["keyMoveCap"], ShouldEqual, classify.DefaultKeyMoveCap)
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a fresh service", t, func() {
		_ = logger.Init()
		svc := New(newFakeSource(), WithKeyMoveCap(5), WithPunishableCap(4), WithWindowCandidateCap(2))

		Convey("When started twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)

			Convey("Then options survive into stats", func() {
				stats := svc.GetStats()
				So(stats["keyMoveCap"], ShouldEqual, 5)
				So(stats["punishableCap"], ShouldEqual, 4)
				So(stats["windowCandidateCap"], ShouldEqual, 2)
			})
		})

		Convey("When stopped without starting", func() {
			So(func() { svc.Stop() }, ShouldNotPanic)
		})
	})
}
