package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playingGroup puts a group on the rink of s at the current clock with a game
// ending at end.
func playingGroup(t *testing.T, s *Simulator, end float64) *Group {
	t.Helper()
	g := NewGroup(1)
	require.True(t, s.Rink.Request(g, PriorityGroup, s.Clock))
	g.State = GroupPlaying
	g.gameEnd = end
	return g
}

func TestGroup_PlayStep_BadIceCountsStepLength(t *testing.T) {
	// GIVEN ice two and a half intervals past its baseline (quality 0.25)
	s := NewSimulator(fixedParams(5, 10, 1, 10, 1, 10))
	s.Clock = 150
	g := playingGroup(t, s, 150.4)

	// WHEN the group samples the ice
	y := g.playStep(s)

	// THEN the fractional last step is booked as bad ice
	assert.Equal(t, WaitUntil{At: 150.4}, y)
	assert.InDelta(t, 0.4, s.Stats.BadIceTime, 1e-12)
	require.Len(t, s.Stats.IceQualityTimes, 1)
	assert.InDelta(t, 0.25, s.Stats.IceQualityTimes[0].Quality, 1e-12)
}

func TestGroup_PlayStep_OverdueResurfacing_NotCountedTwice(t *testing.T) {
	// GIVEN bad ice while the machine is already waiting for the rink
	s := NewSimulator(fixedParams(5, 10, 1, 10, 1, 10))
	s.Clock = 150
	s.Ice.AwaitingRink = true
	g := playingGroup(t, s, 160)

	// WHEN the group samples the ice
	y := g.playStep(s)

	// THEN the sample is kept but the time is left to the machine
	assert.Equal(t, WaitUntil{At: 151}, y)
	assert.Equal(t, 0.0, s.Stats.BadIceTime)
	assert.Len(t, s.Stats.IceQualityTimes, 1)
}

func TestGroup_PlayStep_GoodIce_NoBadTime(t *testing.T) {
	s := NewSimulator(fixedParams(5, 10, 1, 10, 1, 10))
	s.Clock = 30
	g := playingGroup(t, s, 40)

	g.playStep(s)

	assert.Equal(t, 0.0, s.Stats.BadIceTime)
	assert.Equal(t, 1.0, s.Stats.IceQualityTimes[0].Quality)
}

func TestGroup_Lifecycle_FreeRink(t *testing.T) {
	// GIVEN an idle rink and a 2.5-minute game
	s := NewSimulator(fixedParams(5, 2.5, 2, 1, 100, 1))
	s.Clock = 3
	g := NewGroup(7)

	// WHEN the group arrives
	s.Start(g)

	// THEN it is playing immediately and out of the waiting area
	assert.Equal(t, GroupPlaying, g.State)
	assert.Equal(t, 0, s.WaitingArea.Len())
	assert.Equal(t, 3.0, g.AcquiredTime)
	assert.Equal(t, 2.5, g.GameDuration)

	// WHEN the clock runs out the game
	s.Run()

	// THEN it departed at 5.5 after three samples (3, 4, 5)
	assert.Equal(t, GroupDeparted, g.State)
	assert.Equal(t, 1, s.Stats.ServedGroups)
	assert.Equal(t, 0, s.Rink.Holders())
	assert.Len(t, s.Stats.IceQualityTimes, 3)
	assert.Equal(t, 5.0, s.Stats.IceQualityTimes[2].Time)
}

func TestGroup_Arrival_FullWaitingArea_Rejected(t *testing.T) {
	// GIVEN a busy rink and a full single-slot waiting area
	s := NewSimulator(fixedParams(5, 10, 1, 1, 100, 1))
	s.Start(NewGroup(1))
	s.Start(NewGroup(2))
	require.Equal(t, 1, s.WaitingArea.Len())

	// WHEN a third group arrives
	g := NewGroup(3)
	s.Start(g)

	// THEN it is rejected on the spot
	assert.Equal(t, GroupRejected, g.State)
	assert.Equal(t, 1, s.Stats.RejectedGroups)
	assert.Equal(t, 1, s.WaitingArea.Len())
}

func TestGroup_ResumeAfterDeparture_Panics(t *testing.T) {
	s := NewSimulator(fixedParams(5, 10, 1, 1, 100, 1))
	g := NewGroup(1)
	g.State = GroupDeparted
	assert.Panics(t, func() { g.Resume(s) })
}

func TestArrivalGenerator_SpawnsWithIncrementingIDs(t *testing.T) {
	// GIVEN arrivals every 5 minutes over 21 minutes
	p := fixedParams(5, 1, 5, 0.35, 100, 1)
	p.TraceLevel = "decisions"
	s := NewSimulator(p)

	// WHEN only the generator runs
	s.Start(NewArrivalGenerator())
	s.Run()

	// THEN four groups arrived at 5, 10, 15, 20 with ids 1..4
	require.Len(t, s.Trace.Admissions, 4)
	for i, a := range s.Trace.Admissions {
		assert.Equal(t, i+1, a.GroupID)
		assert.Equal(t, float64(5*(i+1)), a.Clock)
	}
	assert.Equal(t, 4, s.Stats.GroupsGenerated)
}

func TestResurfacing_CompletionMode_ResetsBaselineAtEnd(t *testing.T) {
	// GIVEN completion mode, S=1h, L=5, an empty rink
	p := fixedParams(500, 1, 5, 3, 1, 5)
	p.BaselineMode = BaselineAtCompletion
	s := NewSimulator(p)

	// WHEN the machine runs alone for 3h (due at 60 and 125)
	s.Start(NewResurfacing())
	s.Run()

	// THEN the baseline sits at the last completion (130), not at a due time
	assert.Equal(t, 2, s.Stats.IceResurfacingCount)
	assert.Equal(t, 130.0, s.Ice.LastBaseline)
	assert.False(t, s.Ice.Resurfacing)
}

func TestResurfacing_IntervalMode_ResetsBaselineWhenDue(t *testing.T) {
	p := fixedParams(500, 1, 5, 3, 1, 5)
	s := NewSimulator(p)

	s.Start(NewResurfacing())
	s.Run()

	assert.Equal(t, 2, s.Stats.IceResurfacingCount)
	assert.Equal(t, 125.0, s.Ice.LastBaseline)
}
