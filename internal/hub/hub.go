package hub

import (
	"context"
	"log/slog"
)

// Subscriber is a single client of the Hub, typically one browser tab.
type Subscriber struct {
	// Send is a buffered channel of outbound messages. The Hub closes it when
	// the subscriber is unregistered or falls behind.
	Send chan []byte
}

// NewSubscriber creates a Subscriber with a send buffer of size buffer.
func NewSubscriber(buffer int) *Subscriber {
	return &Subscriber{Send: make(chan []byte, buffer)}
}

// Hub fans out messages to all registered subscribers. All state is owned by
// the Run goroutine.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast delivers a message to every subscriber.
	Broadcast chan []byte

	// Register adds a subscriber.
	Register chan *Subscriber

	// Unregister removes a subscriber and closes its Send channel.
	Unregister chan *Subscriber

	count chan chan int
	done  chan struct{}
}

// NewHub creates and returns a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		count:       make(chan chan int),
		done:        make(chan struct{}),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Join registers s. It returns false if the hub has stopped.
func (h *Hub) Join(s *Subscriber) bool {
	select {
	case h.Register <- s:
		return true
	case <-h.done:
		return false
	}
}

// Leave unregisters s. It returns immediately if the hub has stopped, in
// which case s was already closed.
func (h *Hub) Leave(s *Subscriber) {
	select {
	case h.Unregister <- s:
	case <-h.done:
	}
}

// Count returns the number of registered subscribers. It must only be called
// while Run is active.
func (h *Hub) Count() int {
	reply := make(chan int)
	h.count <- reply
	return <-reply
}

// Run processes hub traffic until ctx is cancelled, then closes every
// remaining subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for subscriber := range h.subscribers {
			close(subscriber.Send)
			delete(h.subscribers, subscriber)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case subscriber := <-h.Register:
			h.subscribers[subscriber] = true
			slog.Debug("Reload subscriber registered", "total_subscribers", len(h.subscribers))

		case subscriber := <-h.Unregister:
			if _, ok := h.subscribers[subscriber]; ok {
				delete(h.subscribers, subscriber)
				close(subscriber.Send)
				slog.Debug("Reload subscriber unregistered", "total_subscribers", len(h.subscribers))
			}

		case reply := <-h.count:
			reply <- len(h.subscribers)

		case message := <-h.Broadcast:
			slog.Debug("Broadcasting message", "recipient_count", len(h.subscribers))
			for subscriber := range h.subscribers {
				select {
				case subscriber.Send <- message:
				default:
					close(subscriber.Send)
					delete(h.subscribers, subscriber)
					slog.Warn("Unregistering slow subscriber", "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}
