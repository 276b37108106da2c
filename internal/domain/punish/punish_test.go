package punish_test

import (
	"testing"

	"github.com/pena92022/Tekken/internal/domain/classify"
	"github.com/pena92022/Tekken/internal/domain/model"
	"github.com/pena92022/Tekken/internal/domain/punish"
	. "github.com/smartystreets/goconvey/convey"
)

func punishableSet(onBlock string) classify.ClassifiedSet {
	moves := []model.Move{{Command: "unsafe", OnBlock: onBlock}}
	return classify.New().PunishableMoves(moves)
}

func TestBuildWindows(t *testing.T) {
	Convey("Given a punishable set and a spread of punishers", t, func() {
		punishers := []model.Move{
			{Command: "1,1,2", Startup: "10"},
			{Command: "df+1", Startup: "13"},
			{Command: "ws+4", Startup: "11"},
			{Command: "uf+4", Startup: "15"},
			{Command: "ff+2", Startup: "14"},
			{Command: "rage-art", Startup: "20"},
			{Command: "no-data", Startup: ""},
		}
		b := punish.New()

		Convey("When building windows", func() {
			windows := b.BuildWindows(punishableSet("-31"), punishers)

			Convey("Then every bucket with candidates is emitted in speed order", func() {
				So(len(windows), ShouldEqual, 5)
				So(windows[0].Bucket.Label, ShouldEqual, "10f")
				So(windows[1].Bucket.Label, ShouldEqual, "12f")
				So(windows[2].Bucket.Label, ShouldEqual, "13f")
				So(windows[3].Bucket.Label, ShouldEqual, "14f")
				So(windows[4].Bucket.Label, ShouldEqual, "15f+")
			})

			Convey("And candidates land in their startup bucket", func() {
				So(windows[0].Candidates[0].Move.Command, ShouldEqual, "1,1,2")
				So(windows[1].Candidates[0].Move.Command, ShouldEqual, "ws+4")
				So(windows[4].Candidates[0].Move.Command, ShouldEqual, "uf+4")
				So(windows[4].Candidates[1].Move.Command, ShouldEqual, "rage-art")
			})

			Convey("And unparseable startup lands in no bucket", func() {
				for _, w := range windows {
					for _, c := range w.Candidates {
						So(c.Move.Command, ShouldNotEqual, "no-data")
					}
				}
			})
		})

		Convey("When no punisher fits a bucket", func() {
			windows := b.BuildWindows(punishableSet("-14"), []model.Move{
				{Command: "only-slow", Startup: "22"},
			})

			Convey("Then empty buckets are omitted entirely", func() {
				So(len(windows), ShouldEqual, 1)
				So(windows[0].Bucket.Label, ShouldEqual, "15f+")
				So(len(windows[0].Candidates), ShouldEqual, 1)
			})
		})

		Convey("When the punishable set is empty", func() {
			windows := b.BuildWindows(classify.ClassifiedSet{}, punishers)

			Convey("Then no windows are built", func() {
				So(windows, ShouldBeNil)
			})
		})
	})
}

func TestWindowCandidateCap(t *testing.T) {
	Convey("Given more 10f punishers than the candidate cap", t, func() {
		punishers := []model.Move{
			{Command: "a", Startup: "10"},
			{Command: "b", Startup: "10"},
			{Command: "c", Startup: "9"},
			{Command: "d", Startup: "10"},
		}

		Convey("When building with the default cap", func() {
			windows := punish.New().BuildWindows(punishableSet("-12"), punishers)

			Convey("Then the first three in original order are kept", func() {
				So(len(windows), ShouldEqual, 1)
				So(len(windows[0].Candidates), ShouldEqual, punish.DefaultCandidateCap)
				So(windows[0].Candidates[0].Move.Command, ShouldEqual, "a")
				So(windows[0].Candidates[1].Move.Command, ShouldEqual, "b")
				So(windows[0].Candidates[2].Move.Command, ShouldEqual, "c")
			})
		})

		Convey("When the cap is raised", func() {
			windows := punish.New(punish.WithCandidateCap(10)).BuildWindows(punishableSet("-12"), punishers)

			Convey("Then all candidates appear", func() {
				So(len(windows[0].Candidates), ShouldEqual, 4)
			})
		})
	})
}

func TestSubNineStartupFoldsIntoFastest(t *testing.T) {
	Convey("Given a sub-9f punisher", t, func() {
		windows := punish.New().BuildWindows(punishableSet("-10"), []model.Move{
			{Command: "jab", Startup: "8"},
		})

		Convey("Then it lands in the 10f window", func() {
			So(len(windows), ShouldEqual, 1)
			So(windows[0].Bucket.Label, ShouldEqual, "10f")
		})
	})
}

func TestBucketTable(t *testing.T) {
	Convey("Given the bucket table", t, func() {
		bs := punish.Buckets()

		Convey("Then ranges are contiguous and non-overlapping", func() {
			for i := 1; i < len(bs); i++ {
				So(bs[i].Min, ShouldEqual, bs[i-1].Max+1)
			}
		})

		Convey("And the table covers nine frames and above", func() {
			So(bs[0].Min, ShouldBeLessThanOrEqualTo, 9)
			So(bs[len(bs)-1].Max, ShouldBeGreaterThan, 1<<30)
		})

		Convey("And every bucket describes its situation", func() {
			for _, b := range bs {
				So(b.Situation, ShouldNotBeEmpty)
			}
		})
	})
}

func TestBuildPairings(t *testing.T) {
	Convey("Given a punishable set and a spread of punishers", t, func() {
		opponent := []model.Move{
			{Command: "db+3+4", OnBlock: "-31"},
			{Command: "f+4,4", OnBlock: "-12"},
		}
		punishers := []model.Move{
			{Command: "df+1", Startup: "13"},
			{Command: "1,1,2", Startup: "10"},
			{Command: "no-data", Startup: "unused"},
		}
		punishable := classify.New().PunishableMoves(opponent)
		b := punish.New()

		Convey("When building pairings", func() {
			pairings := b.BuildPairings(punishable, punishers)

			Convey("Then every punishable move gets its advantage entries, fastest punisher first", func() {
				So(len(pairings), ShouldEqual, 3)

				So(pairings[0].Opponent.Command, ShouldEqual, "db+3+4")
				So(pairings[0].Punisher.Command, ShouldEqual, "1,1,2")
				So(pairings[0].Advantage.Known, ShouldBeTrue)
				So(pairings[0].Advantage.Frames, ShouldEqual, 21)

				So(pairings[1].Opponent.Command, ShouldEqual, "db+3+4")
				So(pairings[1].Punisher.Command, ShouldEqual, "df+1")
				So(pairings[1].Advantage.Frames, ShouldEqual, 18)

				So(pairings[2].Opponent.Command, ShouldEqual, "f+4,4")
				So(pairings[2].Punisher.Command, ShouldEqual, "1,1,2")
				So(pairings[2].Advantage.Frames, ShouldEqual, 2)
			})

			Convey("And a punisher too slow to connect is excluded", func() {
				for _, p := range pairings {
					if p.Opponent.Command == "f+4,4" {
						So(p.Punisher.Command, ShouldNotEqual, "df+1")
					}
				}
			})

			Convey("And unparseable startup never pairs", func() {
				for _, p := range pairings {
					So(p.Punisher.Command, ShouldNotEqual, "no-data")
				}
			})
		})

		Convey("When more punishers fit than the candidate cap", func() {
			many := []model.Move{
				{Command: "a", Startup: "10"},
				{Command: "b", Startup: "12"},
				{Command: "c", Startup: "11"},
				{Command: "d", Startup: "13"},
			}
			pairings := punish.New(punish.WithCandidateCap(2)).BuildPairings(punishableSet("-15"), many)

			Convey("Then only the fastest ones up to the cap remain", func() {
				So(len(pairings), ShouldEqual, 2)
				So(pairings[0].Punisher.Command, ShouldEqual, "a")
				So(pairings[1].Punisher.Command, ShouldEqual, "c")
			})
		})

		Convey("When the punishable set is empty", func() {
			pairings := b.BuildPairings(classify.ClassifiedSet{}, punishers)

			Convey("Then no pairings are built", func() {
				So(pairings, ShouldBeNil)
			})
		})
	})
}

func TestPairAdvantage(t *testing.T) {
	Convey("Given opponent move and punisher pairings", t, func() {
		Convey("When both values are numeric", func() {
			adv := punish.PairAdvantage(
				model.Move{Command: "db+3+4", OnBlock: "-31"},
				model.Move{Command: "1,1,2", Startup: "10"},
			)

			Convey("Then advantage is abs(onBlock) minus startup", func() {
				So(adv.Known, ShouldBeTrue)
				So(adv.Frames, ShouldEqual, 21)
			})
		})

		Convey("When the block value is an outcome tag", func() {
			adv := punish.PairAdvantage(
				model.Move{OnBlock: "KND"},
				model.Move{Startup: "10"},
			)

			Convey("Then the advantage is reported unknown, not omitted", func() {
				So(adv.Known, ShouldBeFalse)
			})
		})

		Convey("When the punisher startup is unparseable", func() {
			adv := punish.PairAdvantage(
				model.Move{OnBlock: "-15"},
				model.Move{Startup: "unused"},
			)

			Convey("Then the advantage is unknown", func() {
				So(adv.Known, ShouldBeFalse)
			})
		})
	})
}
