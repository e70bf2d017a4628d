package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitingArea_TryEnter_RecordsOccupancyBeforeInsertion(t *testing.T) {
	// GIVEN an empty waiting area of capacity 3
	wa := NewWaitingArea(3)
	stats := NewStatistics()

	// WHEN three groups enter
	for i := 1; i <= 3; i++ {
		assert.True(t, wa.TryEnter(NewGroup(i), float64(i), stats))
	}

	// THEN the samples are the occupancies seen on arrival
	assert.Equal(t, []int{0, 1, 2}, stats.QueueLengths)
	assert.Equal(t, []float64{1, 2, 3}, stats.QueueTimes)
	assert.Equal(t, 3, wa.Len())
}

func TestWaitingArea_Full_RejectsWithoutSample(t *testing.T) {
	// GIVEN a full waiting area
	wa := NewWaitingArea(1)
	stats := NewStatistics()
	assert.True(t, wa.TryEnter(NewGroup(1), 0, stats))

	// WHEN another group arrives
	admitted := wa.TryEnter(NewGroup(2), 1, stats)

	// THEN it is rejected and nothing is recorded
	assert.False(t, admitted)
	assert.Equal(t, 1, wa.Len())
	assert.Equal(t, []int{0}, stats.QueueLengths)
}

func TestWaitingArea_Leave_FreesSlot(t *testing.T) {
	wa := NewWaitingArea(2)
	g1, g2 := NewGroup(1), NewGroup(2)
	wa.TryEnter(g1, 0, nil)
	wa.TryEnter(g2, 0, nil)

	wa.Leave(g1)

	assert.Equal(t, 1, wa.Len())
	assert.Equal(t, "[group_2]", wa.String())
	assert.True(t, wa.TryEnter(NewGroup(3), 1, nil))
}

func TestWaitingArea_Leave_UnknownGroup_Panics(t *testing.T) {
	wa := NewWaitingArea(2)
	assert.Panics(t, func() { wa.Leave(NewGroup(9)) })
}

func TestNewWaitingArea_NonPositiveCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { NewWaitingArea(0) })
}
