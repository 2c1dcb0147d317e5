// Package broadcast fans a single byte stream out to any number of
// subscribers, the way terminal.AsyncDualWriter fanned SSH output out to a
// WebSocket plus a monitor — generalized from two fixed destinations to an
// arbitrary, dynamically changing set of attached viewers.
package broadcast

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultBufferCapacity is the per-subscriber channel size used unless the
// caller overrides it.
const DefaultBufferCapacity = 1024

// Subscription is a live feed of one Hub's published bytes. The channel
// is closed when the subscription is cancelled via Unsubscribe.
type Subscription struct {
	ch     chan []byte
	hub    *Hub
	id     uint64
	closed bool
}

// C returns the channel to range over for published chunks.
func (s *Subscription) C() <-chan []byte {
	return s.ch
}

// LagCount returns how many chunks have been dropped for this subscriber
// because it was not keeping up.
func (s *Subscription) LagCount() int64 {
	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()
	if sub, ok := s.hub.subs[s.id]; ok {
		return sub.lag.Load()
	}
	return 0
}

// Unsubscribe removes this subscription from the hub and closes its channel.
func (s *Subscription) Unsubscribe() {
	s.hub.unsubscribe(s.id)
}

type subscriber struct {
	ch  chan []byte
	lag atomic.Int64
}

// Hub publishes bytes to N subscribers with bounded per-subscriber buffers.
// A slow subscriber never blocks a fast one: when its buffer is full the
// oldest queued chunk is dropped to make room, and the drop is counted.
type Hub struct {
	mu       sync.RWMutex
	subs     map[uint64]*subscriber
	nextID   uint64
	capacity int
	logger   *slog.Logger
}

// New creates a Hub with the given per-subscriber buffer capacity.
func New(capacity int) *Hub {
	if capacity <= 0 {
		capacity = DefaultBufferCapacity
	}
	return &Hub{
		subs:     make(map[uint64]*subscriber),
		capacity: capacity,
		logger:   slog.Default(),
	}
}

// Subscribe registers a new listener and returns its Subscription.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	sub := &subscriber{ch: make(chan []byte, h.capacity)}
	h.subs[id] = sub

	return &Subscription{ch: sub.ch, hub: h, id: id}
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return
	}
	delete(h.subs, id)
	close(sub.ch)
}

// Publish delivers data to every current subscriber, dropping the oldest
// buffered chunk for any subscriber whose channel is full rather than
// blocking the publisher.
func (h *Hub) Publish(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.subs) == 0 {
		return
	}

	// Copy once; subscribers must not mutate shared buffers.
	chunk := make([]byte, len(data))
	copy(chunk, data)

	for id, sub := range h.subs {
		select {
		case sub.ch <- chunk:
		default:
			select {
			case <-sub.ch:
				lag := sub.lag.Add(1)
				h.logger.Warn("broadcast: dropped chunk for slow subscriber", "subscriber_id", id, "lag", lag)
			default:
			}
			select {
			case sub.ch <- chunk:
			default:
				lag := sub.lag.Add(1)
				h.logger.Warn("broadcast: subscriber still full after drop", "subscriber_id", id, "lag", lag)
			}
		}
	}
}

// SubscriberCount returns the number of currently attached subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close unsubscribes and closes every subscriber's channel, e.g. once the
// underlying session has ended and no further output will be published.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subs {
		close(sub.ch)
		delete(h.subs, id)
	}
}
