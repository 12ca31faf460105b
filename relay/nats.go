package relay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"runar/contract"
	"runar/domain/event"
)

// NATSRelay carries envelopes over a single shared subject. Every
// session subscribes to the same subject and sees every envelope,
// including its own publishes; the dispatcher filters.
//
// Core NATS (not JetStream) is deliberate: the transport contract is
// at-most-once with no queuing or retry, so a durable stream would
// promise more than the protocol does.
type NATSRelay struct {
	nc      *nats.Conn
	subject string
	log     *slog.Logger
	sub     *nats.Subscription
}

func NewNATSRelay(url, subject string, log *slog.Logger) (*NATSRelay, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSRelay{nc: nc, subject: subject, log: log}, nil
}

func (r *NATSRelay) Publish(_ context.Context, evt event.Event, recipients []string) error {
	data, err := Encode(evt, recipients)
	if err != nil {
		return err
	}
	if err := r.nc.Publish(r.subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Type(), err)
	}
	return nil
}

func (r *NATSRelay) Subscribe(h contract.Handler) error {
	sub, err := r.nc.Subscribe(r.subject, func(msg *nats.Msg) {
		evt, recipients, err := Decode(msg.Data)
		if err != nil {
			r.log.Warn("Dropping undecodable envelope", "error", err)
			return
		}
		h(evt, recipients)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %q: %w", r.subject, err)
	}
	r.sub = sub
	return nil
}

func (r *NATSRelay) Close() {
	if r.sub != nil {
		_ = r.sub.Unsubscribe()
	}
	if r.nc != nil {
		r.nc.Close()
	}
}
