// Package event defines the closed set of relay events. The union is
// intentionally exhaustive: the relay codec rejects unknown type tags
// instead of silently ignoring them.
package event

import "runar/domain"

type Type string

const (
	TypePrivateMessage Type = "privateMessage"
	TypeGroupMessage   Type = "groupMessage"
	TypeGroupCreate    Type = "groupCreate"
	TypeGroupDelete    Type = "groupDelete"
)

// Event is implemented only by the four payload types below.
type Event interface {
	Type() Type
}

// PrivateMessage carries a pairwise message. When IsRelay is set the
// event is the moderator shadow copy of a player-to-player message and
// carries the real endpoints.
type PrivateMessage struct {
	RecipientID         string         `json:"recipientId"`
	Message             domain.Message `json:"message"`
	IsRelay             bool           `json:"isRelay,omitempty"`
	OriginalSenderID    string         `json:"originalSenderId,omitempty"`
	OriginalRecipientID string         `json:"originalRecipientId,omitempty"`
}

func (PrivateMessage) Type() Type { return TypePrivateMessage }

// GroupMessage carries a message for an existing group.
type GroupMessage struct {
	GroupID string         `json:"groupId"`
	Message domain.Message `json:"message"`
}

func (GroupMessage) Type() Type { return TypeGroupMessage }

// GroupCreate announces a new group to all connected participants.
// Receivers adopt the group only if they are members.
type GroupCreate struct {
	Group domain.GroupConversation `json:"group"`
}

func (GroupCreate) Type() Type { return TypeGroupCreate }

// GroupDelete announces the moderator removed a group.
type GroupDelete struct {
	GroupID string `json:"groupId"`
}

func (GroupDelete) Type() Type { return TypeGroupDelete }
