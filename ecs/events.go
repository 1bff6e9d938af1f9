package ecs

// Event is a world event payload.
type Event struct {
	Type string
	Data any
}

// Event types emitted by the folio systems.
const (
	EventFieldRebuilt     = "field_rebuilt"
	EventSectionActivated = "section_activated"
	EventBootFinished     = "boot_finished"
)

// EventQueue is a simple FIFO queue, flushed at the end of each tick.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
