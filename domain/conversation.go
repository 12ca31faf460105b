package domain

// The pairwise key delimiter. Participant identifiers come from the
// identity provider's id space (URL-safe alphanumerics), which never
// contains '-', so two distinct unordered pairs can never produce the
// same key.
const keyDelimiter = "-"

// Key derives the canonical identifier of a pairwise conversation.
// It is pure and commutative: Key(a, b) == Key(b, a).
func Key(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + keyDelimiter + b
}

// PairwiseConversation holds the history between exactly two participants.
// A conversation with an empty history is a placeholder: it reserves the
// canonical key (e.g. a chat window opened before any message) and must
// not surface in listings.
type PairwiseConversation struct {
	Participants [2]string `json:"participants"`
	History      []Message `json:"history"`
}

// Other returns the participant facing the given viewer, or "" when the
// viewer is not part of the conversation.
func (c *PairwiseConversation) Other(viewerID string) string {
	switch viewerID {
	case c.Participants[0]:
		return c.Participants[1]
	case c.Participants[1]:
		return c.Participants[0]
	}
	return ""
}

// Placeholder reports whether the conversation carries no real message yet.
func (c *PairwiseConversation) Placeholder() bool {
	return len(c.History) == 0
}

// GroupConversation is an explicitly created multi-party conversation.
// Unlike pairwise conversations it is listed immediately, even empty.
type GroupConversation struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Members []string  `json:"members"`
	History []Message `json:"history"`
}

// HasMember reports whether the participant belongs to the group.
func (g *GroupConversation) HasMember(participantID string) bool {
	for _, m := range g.Members {
		if m == participantID {
			return true
		}
	}
	return false
}

// ConversationKind tags a ConversationRef.
type ConversationKind string

const (
	KindPairwise ConversationKind = "pairwise"
	KindGroup    ConversationKind = "group"
)

// ConversationRef addresses a conversation without holding it: the
// canonical key for pairwise chats, the generated id for groups.
type ConversationRef struct {
	Kind ConversationKind
	ID   string
}

func PairwiseRef(key string) ConversationRef {
	return ConversationRef{Kind: KindPairwise, ID: key}
}

func GroupRef(id string) ConversationRef {
	return ConversationRef{Kind: KindGroup, ID: id}
}
