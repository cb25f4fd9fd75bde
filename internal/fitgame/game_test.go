package fitgame_test

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gridfit/internal/curve"
	"github.com/san-kum/gridfit/internal/fitgame"
)

var _ = Describe("Game", func() {
	var (
		clock *clockwork.FakeClock
		game  *fitgame.Game

		mu          sync.Mutex
		transitions []fitgame.Mode
	)

	solve := func() {
		for _, r := range fitgame.DefaultRegions {
			Expect(game.ActivateRegion(r.ID)).To(BeTrue())
			Expect(game.SelectRegionDistribution(r.Canonical)).To(BeTrue())
		}
	}

	enterGridwise := func() {
		Expect(game.StartExperiment()).To(BeTrue())
		Expect(game.SelectArealDistribution(curve.Normal)).To(BeTrue())
		Expect(game.TryGridwise()).To(BeTrue())
	}

	BeforeEach(func() {
		clock = clockwork.NewFakeClock()
		mu.Lock()
		transitions = nil
		mu.Unlock()
		game = fitgame.New(
			fitgame.WithClock(clock),
			fitgame.WithOnTransition(func(_, to fitgame.Mode) {
				mu.Lock()
				transitions = append(transitions, to)
				mu.Unlock()
			}),
		)
	})

	AfterEach(func() {
		game.Close()
	})

	It("starts in start mode with nothing chosen", func() {
		snap := game.Snapshot()
		Expect(snap.Mode).To(Equal(fitgame.ModeStart))
		Expect(snap.Areal).To(Equal(curve.Unset))
		Expect(snap.Active).To(BeZero())
		Expect(snap.Choices).To(BeEmpty())
	})

	Describe("areal phase", func() {
		BeforeEach(func() {
			Expect(game.StartExperiment()).To(BeTrue())
		})

		It("counts every region as an error before a choice", func() {
			Expect(game.ArealErrorCount()).To(Equal(3))
			Expect(game.TryGridwise()).To(BeFalse())
			Expect(game.Mode()).To(Equal(fitgame.ModeAreal))
		})

		DescribeTable("error count per choice",
			func(kind curve.Kind, want int) {
				Expect(game.SelectArealDistribution(kind)).To(BeTrue())
				Expect(game.ArealErrorCount()).To(Equal(want))
			},
			Entry("normal", curve.Normal, 2),
			Entry("gamma", curve.Gamma, 2),
			Entry("gev", curve.GEV, 2),
		)

		It("overwrites the previous choice", func() {
			game.SelectArealDistribution(curve.Normal)
			game.SelectArealDistribution(curve.GEV)
			snap := game.Snapshot()
			Expect(snap.Areal).To(Equal(curve.GEV))
			for _, tile := range snap.Tiles {
				Expect(tile.Choice).To(Equal(curve.GEV))
			}
			Expect(snap.Tiles[2].Status).To(Equal(fitgame.FitGood))
			Expect(snap.Tiles[0].Status).To(Equal(fitgame.FitBad))
		})

		It("ignores region activation", func() {
			Expect(game.ActivateRegion(1)).To(BeFalse())
			Expect(game.Snapshot().Active).To(BeZero())
		})

		It("advances to grid-wise once a choice exists", func() {
			game.SelectArealDistribution(curve.Gamma)
			Expect(game.Snapshot().CanTryGridwise()).To(BeTrue())
			Expect(game.TryGridwise()).To(BeTrue())
			Expect(game.Mode()).To(Equal(fitgame.ModeGridwise))
		})
	})

	Describe("mode gating", func() {
		It("ignores activation in start mode", func() {
			Expect(game.ActivateRegion(2)).To(BeFalse())
		})

		It("ignores areal selection outside the areal phase", func() {
			Expect(game.SelectArealDistribution(curve.Normal)).To(BeFalse())
			Expect(game.Snapshot().Areal).To(Equal(curve.Unset))
		})

		It("ignores start once started", func() {
			enterGridwise()
			Expect(game.StartExperiment()).To(BeFalse())
			Expect(game.Mode()).To(Equal(fitgame.ModeGridwise))
		})
	})

	Describe("grid-wise phase", func() {
		BeforeEach(enterGridwise)

		It("keeps the picker inert until a region is active", func() {
			before := game.Snapshot()
			Expect(before.PickerEnabled()).To(BeFalse())
			Expect(game.SelectRegionDistribution(curve.Gamma)).To(BeFalse())
			Expect(game.Snapshot()).To(Equal(before))
		})

		It("rejects unknown regions", func() {
			Expect(game.ActivateRegion(42)).To(BeFalse())
			Expect(game.Snapshot().Active).To(BeZero())
		})

		It("records choices for the active region", func() {
			Expect(game.ActivateRegion(2)).To(BeTrue())
			Expect(game.Snapshot().PickerEnabled()).To(BeTrue())
			Expect(game.SelectRegionDistribution(curve.Normal)).To(BeTrue())
			snap := game.Snapshot()
			Expect(snap.Choices).To(HaveKeyWithValue(fitgame.RegionID(2), curve.Normal))
			Expect(snap.Tiles[1].Status).To(Equal(fitgame.FitBad))
			Expect(snap.Tiles[0].Status).To(Equal(fitgame.FitNone))
			Expect(snap.GridErrors).To(Equal(3))
		})

		It("enters victory after the delay when every region matches", func() {
			solve()
			Expect(game.GridErrorCount()).To(BeZero())
			Expect(game.VictoryPending()).To(BeTrue())
			Expect(game.Mode()).To(Equal(fitgame.ModeGridwise))

			clock.Advance(fitgame.DefaultVictoryDelay / 2)
			Consistently(game.Mode, 50*time.Millisecond).Should(Equal(fitgame.ModeGridwise))

			clock.Advance(fitgame.DefaultVictoryDelay / 2)
			Eventually(game.Mode).Should(Equal(fitgame.ModeVictory))
			Expect(game.VictoryPending()).To(BeFalse())
		})

		It("enters victory exactly once", func() {
			solve()
			clock.Advance(fitgame.DefaultVictoryDelay)
			Eventually(game.Mode).Should(Equal(fitgame.ModeVictory))
			clock.Advance(10 * fitgame.DefaultVictoryDelay)
			Consistently(func() int {
				mu.Lock()
				defer mu.Unlock()
				n := 0
				for _, m := range transitions {
					if m == fitgame.ModeVictory {
						n++
					}
				}
				return n
			}, 50*time.Millisecond).Should(Equal(1))
		})

		It("does not win on stale state when a choice is undone", func() {
			solve()
			clock.Advance(fitgame.DefaultVictoryDelay / 2)

			Expect(game.SelectRegionDistribution(curve.Normal)).To(BeTrue())
			Expect(game.VictoryPending()).To(BeFalse())
			clock.Advance(fitgame.DefaultVictoryDelay)
			Consistently(game.Mode, 50*time.Millisecond).Should(Equal(fitgame.ModeGridwise))

			Expect(game.SelectRegionDistribution(curve.GEV)).To(BeTrue())
			clock.Advance(fitgame.DefaultVictoryDelay / 2)
			Consistently(game.Mode, 50*time.Millisecond).Should(Equal(fitgame.ModeGridwise))
			clock.Advance(fitgame.DefaultVictoryDelay / 2)
			Eventually(game.Mode).Should(Equal(fitgame.ModeVictory))
		})

		It("ignores activation after victory", func() {
			solve()
			clock.Advance(fitgame.DefaultVictoryDelay)
			Eventually(game.Mode).Should(Equal(fitgame.ModeVictory))
			active := game.Snapshot().Active
			Expect(game.ActivateRegion(1)).To(BeFalse())
			Expect(game.Snapshot().Active).To(Equal(active))
		})

		It("never arms a timer after Close", func() {
			game.Close()
			solve()
			Expect(game.VictoryPending()).To(BeFalse())
		})
	})

	Describe("replay", func() {
		DescribeTable("resets from any mode",
			func(setup func()) {
				setup()
				Expect(game.Replay()).To(BeTrue())
				snap := game.Snapshot()
				Expect(snap.Mode).To(Equal(fitgame.ModeStart))
				Expect(snap.Areal).To(Equal(curve.Unset))
				Expect(snap.Choices).To(BeEmpty())
				Expect(snap.Active).To(BeZero())
				Expect(game.VictoryPending()).To(BeFalse())
			},
			Entry("start", func() {}),
			Entry("areal", func() {
				game.StartExperiment()
				game.SelectArealDistribution(curve.Gamma)
			}),
			Entry("grid-wise with pending victory", func() {
				enterGridwise()
				solve()
			}),
			Entry("victory", func() {
				enterGridwise()
				solve()
				clock.Advance(fitgame.DefaultVictoryDelay)
				Eventually(game.Mode).Should(Equal(fitgame.ModeVictory))
			}),
		)

		It("cancels a pending victory", func() {
			enterGridwise()
			solve()
			game.Replay()
			clock.Advance(fitgame.DefaultVictoryDelay)
			Consistently(game.Mode, 50*time.Millisecond).Should(Equal(fitgame.ModeStart))
		})
	})

	It("notifies observers with the new snapshot", func() {
		var got []fitgame.Mode
		g := fitgame.New(fitgame.WithClock(clock), fitgame.WithOnChange(func(s fitgame.Snapshot) {
			got = append(got, s.Mode)
		}))
		defer g.Close()
		g.StartExperiment()
		g.ActivateRegion(1)
		g.SelectArealDistribution(curve.GEV)
		Expect(got).To(Equal([]fitgame.Mode{fitgame.ModeAreal, fitgame.ModeAreal}))
	})
})
