// Package relay implements the shared-channel transport: a JSON
// envelope codec plus two carriers, NATS for multi-host sessions and an
// in-process loopback bus.
package relay

import (
	"encoding/json"
	"fmt"

	"runar/domain/event"
	"runar/errors"
)

// envelope is the wire shape of one broadcast. Recipients travel in the
// clear: any connected party can observe any payload at this layer,
// privacy of pairwise traffic is enforced by cooperating handlers.
type envelope struct {
	Type       event.Type      `json:"type"`
	Recipients []string        `json:"recipients"`
	Payload    json.RawMessage `json:"payload"`
}

// Encode serializes an event with its recipient hint.
func Encode(evt event.Event, recipients []string) ([]byte, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", evt.Type(), err)
	}
	return json.Marshal(envelope{Type: evt.Type(), Recipients: recipients, Payload: payload})
}

// Decode parses an envelope back into its typed event. The event union
// is closed: an unknown type tag is an error, not a silent drop.
func Decode(data []byte) (event.Event, []string, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("decoding envelope: %w", err)
	}

	var evt event.Event
	switch env.Type {
	case event.TypePrivateMessage:
		evt = &event.PrivateMessage{}
	case event.TypeGroupMessage:
		evt = &event.GroupMessage{}
	case event.TypeGroupCreate:
		evt = &event.GroupCreate{}
	case event.TypeGroupDelete:
		evt = &event.GroupDelete{}
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownEventType, env.Type)
	}
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, nil, fmt.Errorf("decoding %s payload: %w", env.Type, err)
	}
	return deref(evt), env.Recipients, nil
}

// deref returns the value form so handlers can type-switch on the same
// concrete types that were published.
func deref(evt event.Event) event.Event {
	switch e := evt.(type) {
	case *event.PrivateMessage:
		return *e
	case *event.GroupMessage:
		return *e
	case *event.GroupCreate:
		return *e
	case *event.GroupDelete:
		return *e
	}
	return evt
}
