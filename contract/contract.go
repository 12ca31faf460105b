//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"runar/domain/event"
)

// Identity is the platform collaborator that knows who is present and
// who holds moderator privilege. The core never stores participant
// objects, only identifiers resolved through this interface.
type Identity interface {
	CurrentParticipantID() string
	ParticipantName(id string) string
	ParticipantAvatar(id string) string
	IsModerator(id string) bool
	IsConnected(id string) bool
	ConnectedParticipants() []string
	// ActiveModerator returns the connected moderator, if any.
	ActiveModerator() (string, bool)
}

// BlobStore is the durable-storage collaborator: whole-object named
// blobs, read and written as a unit. ReadNamedBlob reports false when
// the blob was never written.
type BlobStore interface {
	ReadNamedBlob(name string, out any) (bool, error)
	WriteNamedBlob(name string, value any) error
}

// Handler receives every envelope on the shared channel, addressed or
// not. Filtering by recipient membership is the handler's job: the
// transport gives no confidentiality, recipient sets are a routing hint.
type Handler func(evt event.Event, recipients []string)

// Relay is the best-effort publish/subscribe transport connecting all
// active sessions. Publish is fire-and-forget: delivery to recipients
// not currently connected is silently dropped, never queued or retried.
type Relay interface {
	Publish(ctx context.Context, evt event.Event, recipients []string) error
	// Subscribe registers the single dispatcher of this process.
	Subscribe(h Handler) error
	Close()
}

// NotificationSink fires a side effect (sound, visual cue) when the
// routing policy decides a received message qualifies.
type NotificationSink interface {
	Notify()
}
