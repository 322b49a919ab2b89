package event

import (
	"strconv"
	"sync"
	"sync/atomic"
)

// Handler consumes status events. Handlers run on a per-subscription
// goroutine, so a slow handler delays only its own subscription.
type Handler func(StatusEvent)

// BusConfig configures bus behavior.
type BusConfig struct {
	// BufferSize is the channel buffer size per subscription.
	// Default: 256
	BufferSize int

	// OnDrop is called when a subscription's buffer is full and an event
	// is discarded. Delivery to a UI is best-effort; execution never
	// waits for a slow consumer.
	OnDrop func(evt StatusEvent, subscriberID string)
}

// DefaultBusConfig provides reasonable defaults.
var DefaultBusConfig = BusConfig{
	BufferSize: 256,
}

// Bus is an in-memory fan-out of status events. Publish never blocks:
// events that do not fit a subscriber's buffer are dropped for that
// subscriber only.
type Bus struct {
	config BusConfig

	mu            sync.RWMutex
	subscriptions map[string]*Subscription
	byStatus      map[string]map[string]*Subscription
	wildcards     map[string]*Subscription

	nextID atomic.Int64
	closed atomic.Bool
}

// NewBus creates a new status event bus.
func NewBus(config BusConfig) *Bus {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBusConfig.BufferSize
	}
	return &Bus{
		config:        config,
		subscriptions: make(map[string]*Subscription),
		byStatus:      make(map[string]map[string]*Subscription),
		wildcards:     make(map[string]*Subscription),
	}
}

// Subscription is an active registration on the bus.
type Subscription struct {
	id       string
	statuses []string // empty = all statuses
	handler  Handler
	events   chan StatusEvent
	done     chan struct{}
	bus      *Bus
}

// Publish delivers an event to all matching subscribers without blocking.
func (b *Bus) Publish(evt StatusEvent) {
	if b.closed.Load() {
		return
	}

	b.mu.RLock()
	subs := b.matching(evt.Status)
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.events <- evt:
		default:
			if b.config.OnDrop != nil {
				b.config.OnDrop(evt, sub.id)
			}
		}
	}
}

// Subscribe registers a handler for specific statuses
// ("idle", "running", "success", "error").
func (b *Bus) Subscribe(statuses []string, handler Handler) *Subscription {
	return b.subscribe(statuses, handler)
}

// SubscribeAll registers a handler for every status transition.
func (b *Bus) SubscribeAll(handler Handler) *Subscription {
	return b.subscribe(nil, handler)
}

func (b *Bus) subscribe(statuses []string, handler Handler) *Subscription {
	if b.closed.Load() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		id:       strconv.FormatInt(b.nextID.Add(1), 10),
		statuses: statuses,
		handler:  handler,
		events:   make(chan StatusEvent, b.config.BufferSize),
		done:     make(chan struct{}),
		bus:      b,
	}
	b.subscriptions[sub.id] = sub

	if len(statuses) == 0 {
		b.wildcards[sub.id] = sub
	} else {
		for _, s := range statuses {
			if b.byStatus[s] == nil {
				b.byStatus[s] = make(map[string]*Subscription)
			}
			b.byStatus[s][sub.id] = sub
		}
	}

	go sub.process()
	return sub
}

// matching returns all subscriptions interested in a status.
// Callers must hold b.mu.
func (b *Bus) matching(status string) []*Subscription {
	subs := make([]*Subscription, 0, len(b.wildcards))
	if byStatus, ok := b.byStatus[status]; ok {
		for _, sub := range byStatus {
			subs = append(subs, sub)
		}
	}
	for _, sub := range b.wildcards {
		subs = append(subs, sub)
	}
	return subs
}

// Close shuts down the bus and all subscriptions.
func (b *Bus) Close() {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subscriptions {
		close(sub.done)
	}
	b.subscriptions = make(map[string]*Subscription)
	b.byStatus = make(map[string]map[string]*Subscription)
	b.wildcards = make(map[string]*Subscription)
}

// process drains events for one subscription.
func (s *Subscription) process() {
	for {
		select {
		case evt := <-s.events:
			s.handler(evt)
		case <-s.done:
			// Flush what is already buffered before exiting.
			for {
				select {
				case evt := <-s.events:
					s.handler(evt)
				default:
					return
				}
			}
		}
	}
}

// Unsubscribe removes the subscription from the bus.
func (s *Subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	if _, ok := s.bus.subscriptions[s.id]; !ok {
		return
	}
	delete(s.bus.subscriptions, s.id)
	delete(s.bus.wildcards, s.id)
	for _, st := range s.statuses {
		if byStatus, ok := s.bus.byStatus[st]; ok {
			delete(byStatus, s.id)
		}
	}
	close(s.done)
}
