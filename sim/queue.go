// Implements the WaitingArea, the bounded holding area in front of the rink.
// Groups are admitted on arrival and leave once they obtain the rink.

package sim

import (
	"fmt"
	"strings"
)

// WaitingArea is a FIFO of at most K admitted groups. It only gates
// admission; the order in which groups obtain the rink is decided by the
// rink's wait list.
type WaitingArea struct {
	capacity int
	queue    []*Group
}

// NewWaitingArea creates an empty waiting area of the given capacity.
func NewWaitingArea(capacity int) *WaitingArea {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewWaitingArea: capacity must be positive, got %d", capacity))
	}
	return &WaitingArea{capacity: capacity}
}

// TryEnter admits g if a slot is free. It never suspends. On admission the
// occupancy before insertion and the current time are appended to stats
// (stats may be nil).
func (wa *WaitingArea) TryEnter(g *Group, now float64, stats *Statistics) bool {
	if len(wa.queue) >= wa.capacity {
		return false
	}
	if stats != nil {
		stats.QueueLengths = append(stats.QueueLengths, len(wa.queue))
		stats.QueueTimes = append(stats.QueueTimes, now)
	}
	wa.queue = append(wa.queue, g)
	if len(wa.queue) > wa.capacity {
		panic(fmt.Sprintf("WaitingArea: occupancy %d exceeds capacity %d", len(wa.queue), wa.capacity))
	}
	return true
}

// Leave removes g once it has obtained the rink.
func (wa *WaitingArea) Leave(g *Group) {
	for i, q := range wa.queue {
		if q == g {
			wa.queue = append(wa.queue[:i], wa.queue[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("WaitingArea.Leave: %v is not waiting", g))
}

// Len returns the current occupancy.
func (wa *WaitingArea) Len() int {
	return len(wa.queue)
}

// Capacity returns K.
func (wa *WaitingArea) Capacity() int {
	return wa.capacity
}

func (wa *WaitingArea) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, g := range wa.queue {
		sb.WriteString(fmt.Sprint(g))
		if i < len(wa.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
