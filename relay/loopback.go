package relay

import (
	"context"
	"log/slog"
	"sync"

	"runar/contract"
	"runar/domain/event"
)

// Loopback is an in-process bus connecting several session endpoints,
// used in tests and single-host setups. Like the NATS carrier it
// delivers every publish to every endpoint, the publisher included, so
// the routing layer's self-echo handling is exercised the same way.
type Loopback struct {
	mu        sync.Mutex
	log       *slog.Logger
	endpoints []*LoopbackEndpoint
}

func NewLoopback(log *slog.Logger) *Loopback {
	return &Loopback{log: log}
}

// Endpoint attaches a new session to the bus.
func (b *Loopback) Endpoint() *LoopbackEndpoint {
	b.mu.Lock()
	defer b.mu.Unlock()
	ep := &LoopbackEndpoint{bus: b}
	b.endpoints = append(b.endpoints, ep)
	return ep
}

func (b *Loopback) broadcast(evt event.Event, recipients []string) {
	// Round-trip through the codec so loopback sessions exchange the
	// exact wire shape NATS sessions would.
	data, err := Encode(evt, recipients)
	if err != nil {
		b.log.Warn("Dropping unencodable event", "error", err)
		return
	}
	decoded, recips, err := Decode(data)
	if err != nil {
		b.log.Warn("Dropping undecodable envelope", "error", err)
		return
	}

	b.mu.Lock()
	handlers := make([]contract.Handler, 0, len(b.endpoints))
	for _, ep := range b.endpoints {
		if ep.handler != nil {
			handlers = append(handlers, ep.handler)
		}
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(decoded, recips)
	}
}

// LoopbackEndpoint is one session's view of the bus.
type LoopbackEndpoint struct {
	bus     *Loopback
	handler contract.Handler
}

func (ep *LoopbackEndpoint) Publish(_ context.Context, evt event.Event, recipients []string) error {
	ep.bus.broadcast(evt, recipients)
	return nil
}

func (ep *LoopbackEndpoint) Subscribe(h contract.Handler) error {
	ep.bus.mu.Lock()
	defer ep.bus.mu.Unlock()
	ep.handler = h
	return nil
}

func (ep *LoopbackEndpoint) Close() {
	ep.bus.mu.Lock()
	defer ep.bus.mu.Unlock()
	ep.handler = nil
}
