// Package store owns the in-memory conversation maps and their
// whole-blob persistence cycle. It is the only writer of both maps.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"runar/contract"
	"runar/domain"
	"runar/errors"
	"runar/repositories"
)

// MessageStore maps conversation keys to pairwise histories and group
// ids to group conversations. Mutation is synchronous within one relay
// dispatch; the mutex only guards against the transport's delivery
// goroutine racing a caller goroutine.
//
// Persistence is role-gated: only the moderator is the durability
// authority. Persist from any other role is a no-op, which keeps
// multiple non-authoritative clients from writing divergent partial
// snapshots. Load is open to all roles.
type MessageStore struct {
	mu       sync.RWMutex
	log      *slog.Logger
	identity contract.Identity
	blobs    contract.BlobStore

	pairwise map[string]*domain.PairwiseConversation
	groups   map[string]*domain.GroupConversation
}

func NewMessageStore(identity contract.Identity, blobs contract.BlobStore, log *slog.Logger) *MessageStore {
	return &MessageStore{
		log:      log,
		identity: identity,
		blobs:    blobs,
		pairwise: make(map[string]*domain.PairwiseConversation),
		groups:   make(map[string]*domain.GroupConversation),
	}
}

// OpenPairwise reserves the canonical key for a pair without appending
// anything: a placeholder conversation, hidden from listings until a
// first real message arrives.
func (s *MessageStore) OpenPairwise(idA, idB string) domain.ConversationRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.ensurePairwise(idA, idB)
	return domain.PairwiseRef(key)
}

// AppendPairwise appends under Key(idA, idB), creating the conversation
// lazily if absent.
func (s *MessageStore) AppendPairwise(idA, idB string, msg domain.Message) domain.ConversationRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := s.ensurePairwise(idA, idB)
	conv := s.pairwise[key]
	conv.History = append(conv.History, msg)
	return domain.PairwiseRef(key)
}

func (s *MessageStore) ensurePairwise(idA, idB string) string {
	key := domain.Key(idA, idB)
	if _, ok := s.pairwise[key]; !ok {
		a, b := idA, idB
		if a > b {
			a, b = b, a
		}
		s.pairwise[key] = &domain.PairwiseConversation{Participants: [2]string{a, b}}
	}
	return key
}

// AppendGroup appends to an existing group. Unlike pairwise chats,
// groups are never created lazily.
func (s *MessageStore) AppendGroup(groupID string, msg domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok {
		return fmt.Errorf("%w: group %q", errors.ErrConversationNotFound, groupID)
	}
	g.History = append(g.History, msg)
	return nil
}

// PutGroup adopts a group conversation (creation, or a GroupCreate
// received over the relay).
func (s *MessageStore) PutGroup(g domain.GroupConversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = &g
}

// Group returns a snapshot of the group, or false when absent. The
// snapshot shares nothing with store state.
func (s *MessageStore) Group(id string) (domain.GroupConversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[id]
	if !ok {
		return domain.GroupConversation{}, false
	}
	return copyGroup(g), true
}

// Pairwise returns the participant pair behind a conversation key, or
// false when the conversation does not exist. The snapshot shares
// nothing with store state.
func (s *MessageStore) Pairwise(key string) (domain.PairwiseConversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.pairwise[key]
	if !ok {
		return domain.PairwiseConversation{}, false
	}
	return copyPairwise(c), true
}

// Read returns the current history snapshot, nil when the conversation
// does not exist.
func (s *MessageStore) Read(ref domain.ConversationRef) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var history []domain.Message
	switch ref.Kind {
	case domain.KindPairwise:
		if c, ok := s.pairwise[ref.ID]; ok {
			history = c.History
		}
	case domain.KindGroup:
		if g, ok := s.groups[ref.ID]; ok {
			history = g.History
		}
	}
	return copyHistory(history)
}

func copyHistory(history []domain.Message) []domain.Message {
	if history == nil {
		return nil
	}
	out := make([]domain.Message, len(history))
	copy(out, history)
	return out
}

func copyPairwise(c *domain.PairwiseConversation) domain.PairwiseConversation {
	return domain.PairwiseConversation{
		Participants: c.Participants,
		History:      copyHistory(c.History),
	}
}

func copyGroup(g *domain.GroupConversation) domain.GroupConversation {
	return domain.GroupConversation{
		ID:      g.ID,
		Name:    g.Name,
		Members: append([]string(nil), g.Members...),
		History: copyHistory(g.History),
	}
}

// Delete removes a conversation entirely. Irreversible.
func (s *MessageStore) Delete(ref domain.ConversationRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ref.Kind {
	case domain.KindPairwise:
		delete(s.pairwise, ref.ID)
	case domain.KindGroup:
		delete(s.groups, ref.ID)
	}
}

// PersistPairwise writes the whole pairwise map as one blob. No-op for
// non-moderators. The blob is marshalled from a deep copy taken under
// the read lock: the live map keeps mutating on the delivery goroutine
// while the write is in flight.
func (s *MessageStore) PersistPairwise() error {
	if !s.callerIsModerator(repositories.BlobPairwise) {
		return nil
	}
	s.mu.RLock()
	snapshot := make(map[string]domain.PairwiseConversation, len(s.pairwise))
	for key, c := range s.pairwise {
		snapshot[key] = copyPairwise(c)
	}
	s.mu.RUnlock()
	return s.blobs.WriteNamedBlob(repositories.BlobPairwise, snapshot)
}

// PersistGroups writes the whole group map as one blob. No-op for
// non-moderators. Deep-copied under the read lock, like PersistPairwise.
func (s *MessageStore) PersistGroups() error {
	if !s.callerIsModerator(repositories.BlobGroups) {
		return nil
	}
	s.mu.RLock()
	snapshot := make(map[string]domain.GroupConversation, len(s.groups))
	for id, g := range s.groups {
		snapshot[id] = copyGroup(g)
	}
	s.mu.RUnlock()
	return s.blobs.WriteNamedBlob(repositories.BlobGroups, snapshot)
}

func (s *MessageStore) callerIsModerator(blob string) bool {
	self := s.identity.CurrentParticipantID()
	if s.identity.IsModerator(self) {
		return true
	}
	s.log.Debug("Skipping persist, caller is not the durability authority", "participant", self, "blob", blob)
	return false
}

// LoadPairwise replaces the in-memory pairwise map with the persisted
// snapshot. Open to all roles: read replication is not gated.
func (s *MessageStore) LoadPairwise() error {
	loaded := make(map[string]*domain.PairwiseConversation)
	ok, err := s.blobs.ReadNamedBlob(repositories.BlobPairwise, &loaded)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairwise = loaded
	return nil
}

// LoadGroups replaces the in-memory group map with the persisted
// snapshot.
func (s *MessageStore) LoadGroups() error {
	loaded := make(map[string]*domain.GroupConversation)
	ok, err := s.blobs.ReadNamedBlob(repositories.BlobGroups, &loaded)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = loaded
	return nil
}

// Summary describes one conversation for listings.
type Summary struct {
	Ref          domain.ConversationRef
	Name         string
	MemberCount  int
	MessageCount int
}

// Conversations lists what the viewer may see: the moderator sees
// everything, a participant only conversations they belong to. Groups
// are listed immediately on creation, even empty; placeholder pairwise
// conversations are filtered until a first real message exists.
func (s *MessageStore) Conversations(viewerID string, viewerIsModerator bool) []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Summary
	for _, g := range s.groups {
		if !viewerIsModerator && !g.HasMember(viewerID) {
			continue
		}
		out = append(out, Summary{
			Ref:          domain.GroupRef(g.ID),
			Name:         g.Name,
			MemberCount:  len(g.Members),
			MessageCount: len(g.History),
		})
	}
	for key, c := range s.pairwise {
		if c.Placeholder() {
			continue
		}
		name := ""
		switch {
		case viewerIsModerator && c.Other(viewerID) == "":
			name = s.identity.ParticipantName(c.Participants[0]) + " & " + s.identity.ParticipantName(c.Participants[1])
		case c.Other(viewerID) != "":
			name = "Chat with " + s.identity.ParticipantName(c.Other(viewerID))
		default:
			continue
		}
		out = append(out, Summary{
			Ref:          domain.PairwiseRef(key),
			Name:         name,
			MemberCount:  2,
			MessageCount: len(c.History),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
