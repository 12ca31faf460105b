// Package domain contains core concepts of the messaging system.
// This file defines Message records and the speaker variant.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"
)

// SpeakerKind distinguishes the two identity spaces a message can be
// spoken from: a real participant, or an actor a moderator impersonates.
type SpeakerKind string

const (
	SpeakerParticipant SpeakerKind = "participant"
	SpeakerActor       SpeakerKind = "actor"
)

// Speaker is the display identity attached to a message. It equals the
// sender unless a moderator speaks as one of their actors.
type Speaker struct {
	Kind      SpeakerKind `json:"kind"`
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	AvatarRef string      `json:"avatarRef"`
}

// Message represents an immutable chat record.
type Message struct {
	SenderID string  `json:"senderId"`
	Speaker  Speaker `json:"speaker"`
	Content  string  `json:"content"`
	SentAt   int64   `json:"sentAt"` // milliseconds since epoch
}

// NewMessage builds a message stamped with the current send time.
// Content is trimmed; an all-whitespace content yields a message the
// command validation layer rejects before it reaches any store.
func NewMessage(senderID string, speaker Speaker, content string) Message {
	return Message{
		SenderID: senderID,
		Speaker:  speaker,
		Content:  strings.TrimSpace(content),
		SentAt:   time.Now().UnixMilli(),
	}
}
