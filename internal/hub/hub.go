package hub

import (
	"context"
	"log/slog"
)

// Subscriber is one client receiving broadcasts from the Hub.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub closes it when
	// the subscriber leaves or falls behind.
	Send chan []byte
}

// NewSubscriber returns a subscriber with the given buffer size.
func NewSubscriber(buffer int) *Subscriber {
	return &Subscriber{Send: make(chan []byte, buffer)}
}

// Hub fans messages out to every registered subscriber. All state is owned by
// the Run goroutine.
type Hub struct {
	subscribers map[*Subscriber]bool

	broadcast  chan []byte
	register   chan *Subscriber
	unregister chan *Subscriber
	count      chan chan int
	done       chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		broadcast:   make(chan []byte),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		count:       make(chan chan int),
		done:        make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled. On exit
// every remaining subscriber channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for s := range h.subscribers {
				close(s.Send)
				delete(h.subscribers, s)
			}
			return

		case s := <-h.register:
			h.subscribers[s] = true
			slog.Debug("Subscriber registered", "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.Send)
				slog.Debug("Subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)

		case message := <-h.broadcast:
			for s := range h.subscribers {
				// A full buffer means the client stopped reading.
				select {
				case s.Send <- message:
				default:
					close(s.Send)
					delete(h.subscribers, s)
					slog.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

// Register adds s. It reports false when the hub has stopped.
func (h *Hub) Register(s *Subscriber) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes s and closes its channel. It is a no-op once the hub has
// stopped or s is already gone.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast queues message for every subscriber. It returns early if ctx is
// cancelled or the hub has stopped.
func (h *Hub) Broadcast(ctx context.Context, message []byte) {
	select {
	case h.broadcast <- message:
	case <-ctx.Done():
	case <-h.done:
	}
}

// Len returns the number of registered subscribers, or zero once stopped.
func (h *Hub) Len() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
