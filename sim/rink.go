package sim

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// PriorityResurfacing is the rink priority of the resurfacing machine.
	PriorityResurfacing = 0
	// PriorityGroup is the rink priority of a playing group.
	PriorityGroup = 1
)

// RinkRequest is a parked claim on the rink.
type RinkRequest struct {
	Holder      Process
	Priority    int     // lower is served first
	RequestTime float64 // minutes
	seqID       int64
}

// rinkWaitList is a min-heap ordered by (Priority, RequestTime, seqID).
type rinkWaitList []RinkRequest

func (w rinkWaitList) Len() int { return len(w) }

func (w rinkWaitList) Less(i, j int) bool {
	if w[i].Priority != w[j].Priority {
		return w[i].Priority < w[j].Priority
	}
	if w[i].RequestTime != w[j].RequestTime {
		return w[i].RequestTime < w[j].RequestTime
	}
	return w[i].seqID < w[j].seqID
}

func (w rinkWaitList) Swap(i, j int) { w[i], w[j] = w[j], w[i] }

func (w *rinkWaitList) Push(x any) {
	*w = append(*w, x.(RinkRequest))
}

func (w *rinkWaitList) Pop() any {
	old := *w
	n := len(old)
	item := old[n-1]
	*w = old[0 : n-1]
	return item
}

// scheduler is the part of Simulator the rink needs to wake a parked holder.
type scheduler interface {
	ScheduleAt(t float64, p Process)
}

// Rink is the exclusive capacity-1 facility. Waiting requests are ordered by
// priority then request time. A holder is never preempted: a pending
// resurfacing only jumps ahead of other waiting requests.
type Rink struct {
	holder    Process
	heldSince float64
	busyTime  float64
	waiting   rinkWaitList
	seqID     int64
	sched     scheduler

	// OnGrant, if set, is called each time a request obtains the rink.
	OnGrant func(req RinkRequest, now float64)
}

// NewRink creates an idle rink that wakes parked holders through s.
func NewRink(s scheduler) *Rink {
	return &Rink{sched: s, waiting: make(rinkWaitList, 0)}
}

// Request grants the rink to p immediately when it is free and returns true.
// Otherwise the request is parked and false is returned; p is resumed by a
// later Release.
func (r *Rink) Request(p Process, priority int, now float64) bool {
	if p == nil {
		panic("Rink.Request: process must not be nil")
	}
	r.seqID++
	req := RinkRequest{Holder: p, Priority: priority, RequestTime: now, seqID: r.seqID}
	if r.holder == nil {
		r.grant(req, now)
		return true
	}
	heap.Push(&r.waiting, req)
	logrus.Debugf("[t=%9.3f] rink busy, %v parked with priority %d (%d waiting)", now, p, priority, len(r.waiting))
	return false
}

// Release frees the rink. If requests are parked, the head is granted at the
// same instant and its process is scheduled to resume.
func (r *Rink) Release(p Process, now float64) {
	if r.holder != p {
		panic(fmt.Sprintf("Rink.Release: %v does not hold the rink (holder %v)", p, r.holder))
	}
	r.busyTime += now - r.heldSince
	r.holder = nil
	if len(r.waiting) == 0 {
		return
	}
	next := heap.Pop(&r.waiting).(RinkRequest)
	r.grant(next, now)
	r.sched.ScheduleAt(now, next.Holder)
}

func (r *Rink) grant(req RinkRequest, now float64) {
	if r.holder != nil {
		panic(fmt.Sprintf("Rink: granting %v while %v holds the rink", req.Holder, r.holder))
	}
	r.holder = req.Holder
	r.heldSince = now
	if r.OnGrant != nil {
		r.OnGrant(req, now)
	}
}

// Holder returns the process holding the rink, or nil.
func (r *Rink) Holder() Process {
	return r.holder
}

// Holders returns the number of holders, always 0 or 1.
func (r *Rink) Holders() int {
	if r.holder == nil {
		return 0
	}
	return 1
}

// Waiting returns the number of parked requests.
func (r *Rink) Waiting() int {
	return len(r.waiting)
}

// BusyTime returns the total time the rink has been held up to now,
// including the current holder's share.
func (r *Rink) BusyTime(now float64) float64 {
	if r.holder == nil {
		return r.busyTime
	}
	return r.busyTime + now - r.heldSince
}
