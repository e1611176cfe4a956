package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// EventHeap is the future-event schedule: a priority queue of pending
// events with deterministic ordering.
// Ordering: timestamp → event id.
type EventHeap struct {
	events []Event
}

// NewEventHeap creates an empty schedule.
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		events: make([]Event, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering.
// Events at the same timestamp are processed in creation (id) order; the
// tie-break is explicit rather than left to incidental heap layout.
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}
	return ei.ID() < ej.ID()
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x interface{}) {
	h.events = append(h.events, x.(Event))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the schedule.
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, e)
}

// PopNext removes and returns the earliest pending event. The driver
// guarantees the schedule is never drained (every Arrival schedules its
// successor), so an empty pop is a scheduling defect, not a condition to
// handle.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		logrus.Panicf("PopNext on empty schedule")
	}
	return heap.Pop(h).(Event)
}

// Peek returns the earliest pending event without removing it, or nil if
// the schedule is empty.
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0]
}
