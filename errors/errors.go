package errors

import "fmt"

var (
	ErrEmptyContent         = fmt.Errorf("message content is empty")
	ErrEmptyGroupName       = fmt.Errorf("group name is empty")
	ErrNoMembers            = fmt.Errorf("no members selected")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrStorageUnavailable   = fmt.Errorf("durable storage unavailable")
	ErrNotAuthorized        = fmt.Errorf("moderator privilege required")
	ErrUnknownEventType     = fmt.Errorf("unknown relay event type")
)
