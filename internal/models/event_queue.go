package models

import (
	"container/heap"
	"sync"
	"time"
)

const (
	EventCustomerArrival   = "CustomerArrival"
	EventCustomerSeated    = "CustomerSeated"
	EventOrderPlaced       = "OrderPlaced"
	EventOrderServed       = "OrderServed"
	EventPaymentProcessed  = "PaymentProcessed"
	EventCustomerDeparture = "CustomerDeparture"
	EventVenueStatus       = "VenueStatus"
)

// Event is one engine notification pending delivery to the output sink.
type Event struct {
	Time time.Time
	Type string
	Data interface{}
}

// EventMessage is a serialized event ready for a topic.
type EventMessage struct {
	Topic   string
	Message []byte
}

// EventQueue buffers notifications emitted during a tick, ordered by
// simulation time, until the scheduler drains them to the output destination.
type EventQueue struct {
	events []*Event
	mutex  sync.Mutex
}

type eventHeap []*Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].Time.Before(h[j].Time) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]*Event, 0)}
}

func (eq *EventQueue) Enqueue(event *Event) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	heap.Push((*eventHeap)(&eq.events), event)
}

// Peek returns the earliest pending event without removing it, or nil.
func (eq *EventQueue) Peek() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0]
}

// Dequeue removes and returns the earliest pending event, or nil.
func (eq *EventQueue) Dequeue() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return heap.Pop((*eventHeap)(&eq.events)).(*Event)
}

func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events)
}
