// Package routing decides, on every send and every receipt, who must
// see a message, whether the moderator audit copy applies, and whether
// this client persists. It is the only place role knowledge lives.
package routing

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"runar/contract"
	"runar/domain"
	"runar/domain/event"
	"runar/errors"
	"runar/store"
)

// Policy is one session's routing brain. All handlers run on the relay
// dispatcher; callers invoke the send methods from their own goroutine.
type Policy struct {
	log      *slog.Logger
	identity contract.Identity
	relay    contract.Relay
	store    *store.MessageStore
	audit    *domain.AuditBuffer
	notify   contract.NotificationSink

	mu             sync.Mutex
	onConversation []func(domain.ConversationRef)
	onAudit        []func()
}

func NewPolicy(identity contract.Identity, relay contract.Relay, st *store.MessageStore,
	audit *domain.AuditBuffer, notify contract.NotificationSink, log *slog.Logger) *Policy {
	return &Policy{
		log:      log,
		identity: identity,
		relay:    relay,
		store:    st,
		audit:    audit,
		notify:   notify,
	}
}

// Subscribe attaches this policy as the process dispatcher.
func (p *Policy) Subscribe() error {
	return p.relay.Subscribe(p.handle)
}

// OnConversationChanged registers a presentation callback fired after
// any local mutation of a conversation.
func (p *Policy) OnConversationChanged(fn func(domain.ConversationRef)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onConversation = append(p.onConversation, fn)
}

// OnAuditChanged registers a callback fired when the moderator monitor
// gains a record.
func (p *Policy) OnAuditChanged(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onAudit = append(p.onAudit, fn)
}

func (p *Policy) conversationChanged(ref domain.ConversationRef) {
	p.mu.Lock()
	callbacks := make([]func(domain.ConversationRef), len(p.onConversation))
	copy(callbacks, p.onConversation)
	p.mu.Unlock()
	for _, fn := range callbacks {
		fn(ref)
	}
}

func (p *Policy) auditChanged() {
	p.mu.Lock()
	callbacks := make([]func(), len(p.onAudit))
	copy(callbacks, p.onAudit)
	p.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

// speaker resolves the display identity for an outbound message.
func (p *Policy) speaker(override *domain.Speaker) domain.Speaker {
	if override != nil {
		return *override
	}
	self := p.identity.CurrentParticipantID()
	return domain.Speaker{
		Kind:      domain.SpeakerParticipant,
		ID:        self,
		Name:      p.identity.ParticipantName(self),
		AvatarRef: p.identity.ParticipantAvatar(self),
	}
}

// SendPairwise implements the pairwise send protocol: optimistic local
// append, direct publish addressed to both endpoints (the sender too,
// so their other open clients refresh), then either an immediate
// persist (moderator sender) or a shadow relay copy to the active
// moderator (player-to-player traffic).
func (p *Policy) SendPairwise(ctx context.Context, cmd domain.SendPairwiseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	self := p.identity.CurrentParticipantID()
	msg := domain.NewMessage(self, p.speaker(cmd.Speaker), cmd.Content)

	ref := p.store.AppendPairwise(self, cmd.RecipientID, msg)

	direct := event.PrivateMessage{RecipientID: cmd.RecipientID, Message: msg}
	if err := p.relay.Publish(ctx, direct, []string{self, cmd.RecipientID}); err != nil {
		p.log.Warn("Direct publish failed", "error", err)
	}

	switch {
	case p.identity.IsModerator(self):
		if err := p.store.PersistPairwise(); err != nil {
			p.conversationChanged(ref)
			return err
		}
	case !p.identity.IsModerator(cmd.RecipientID):
		// Player-to-player: shadow-deliver to the moderator, the only
		// durability authority. No active moderator, no audit copy.
		if moderatorID, ok := p.identity.ActiveModerator(); ok {
			shadow := event.PrivateMessage{
				RecipientID:         moderatorID,
				Message:             msg,
				IsRelay:             true,
				OriginalSenderID:    self,
				OriginalRecipientID: cmd.RecipientID,
			}
			if err := p.relay.Publish(ctx, shadow, []string{moderatorID}); err != nil {
				p.log.Warn("Relay copy publish failed", "error", err)
			}
		}
	}

	p.conversationChanged(ref)
	return nil
}

// SendGroup validates, appends locally, and fans out to the member set,
// sender included for multi-client consistency. A send against a
// deleted group is dropped silently per the protocol.
func (p *Policy) SendGroup(ctx context.Context, cmd domain.SendGroupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	self := p.identity.CurrentParticipantID()
	msg := domain.NewMessage(self, p.speaker(cmd.Speaker), cmd.Content)

	if err := p.store.AppendGroup(cmd.GroupID, msg); err != nil {
		if stderrors.Is(err, errors.ErrConversationNotFound) {
			p.log.Debug("Dropping send against missing group", "group", cmd.GroupID)
			return nil
		}
		return err
	}

	g, _ := p.store.Group(cmd.GroupID)
	if len(g.Members) > 0 {
		evt := event.GroupMessage{GroupID: cmd.GroupID, Message: msg}
		if err := p.relay.Publish(ctx, evt, g.Members); err != nil {
			p.log.Warn("Group publish failed", "error", err)
		}
	}

	ref := domain.GroupRef(cmd.GroupID)
	if p.identity.IsModerator(self) {
		if err := p.store.PersistGroups(); err != nil {
			p.conversationChanged(ref)
			return err
		}
	}
	p.conversationChanged(ref)
	return nil
}

// CreateGroup builds the group with the creator forced into the member
// set and announces it to every connected participant; non-members that
// observe the announcement discard it.
func (p *Policy) CreateGroup(ctx context.Context, cmd domain.CreateGroupCommand) (domain.GroupConversation, error) {
	if err := cmd.Validate(); err != nil {
		return domain.GroupConversation{}, err
	}
	self := p.identity.CurrentParticipantID()
	g := domain.GroupConversation{
		ID:      uuid.NewString(),
		Name:    cmd.Name,
		Members: lo.Uniq(append([]string{self}, cmd.MemberIDs...)),
	}
	p.store.PutGroup(g)

	if err := p.relay.Publish(ctx, event.GroupCreate{Group: g}, p.identity.ConnectedParticipants()); err != nil {
		p.log.Warn("Group announce failed", "error", err)
	}

	ref := domain.GroupRef(g.ID)
	if p.identity.IsModerator(self) {
		if err := p.store.PersistGroups(); err != nil {
			p.conversationChanged(ref)
			return g, err
		}
	}
	p.conversationChanged(ref)
	return g, nil
}

// DeleteConversation removes a conversation log for good. Moderator
// only; group deletions are announced so members drop their local copy.
func (p *Policy) DeleteConversation(ctx context.Context, ref domain.ConversationRef) error {
	self := p.identity.CurrentParticipantID()
	if !p.identity.IsModerator(self) {
		return errors.ErrNotAuthorized
	}
	p.store.Delete(ref)

	var err error
	switch ref.Kind {
	case domain.KindPairwise:
		err = p.store.PersistPairwise()
	case domain.KindGroup:
		err = p.store.PersistGroups()
		if pubErr := p.relay.Publish(ctx, event.GroupDelete{GroupID: ref.ID}, p.identity.ConnectedParticipants()); pubErr != nil {
			p.log.Warn("Group delete announce failed", "error", pubErr)
		}
	}
	p.conversationChanged(ref)
	return err
}

// OpenPairwise reserves the canonical key before any message exists, so
// a chat window can open on an empty conversation. The reservation is
// persisted straight away when this client is the moderator.
func (p *Policy) OpenPairwise(peerID string) (domain.ConversationRef, error) {
	self := p.identity.CurrentParticipantID()
	ref := p.store.OpenPairwise(self, peerID)
	if p.identity.IsModerator(self) {
		if err := p.store.PersistPairwise(); err != nil {
			return ref, err
		}
	}
	return ref, nil
}

// AuditLog exposes the intercepted-traffic buffer, moderator only.
func (p *Policy) AuditLog() ([]domain.InterceptedRecord, error) {
	if !p.identity.IsModerator(p.identity.CurrentParticipantID()) {
		return nil, errors.ErrNotAuthorized
	}
	return p.audit.Snapshot(), nil
}

// handle is the single dispatcher: every envelope on the shared channel
// lands here, addressed to this session or not. The recipient list is a
// routing hint; the payload carries the authoritative addressing, so
// filtering happens per event type below.
func (p *Policy) handle(evt event.Event, _ []string) {
	switch e := evt.(type) {
	case event.PrivateMessage:
		p.handlePrivate(e)
	case event.GroupMessage:
		p.handleGroup(e)
	case event.GroupCreate:
		p.handleGroupCreate(e)
	case event.GroupDelete:
		p.handleGroupDelete(e)
	}
}

func (p *Policy) handlePrivate(e event.PrivateMessage) {
	self := p.identity.CurrentParticipantID()
	if e.RecipientID != self {
		return
	}

	if e.IsRelay {
		if !p.identity.IsModerator(self) {
			// Correct addressing never sends a relay copy to a player.
			p.log.Warn("Discarding relay copy addressed to non-moderator", "participant", self)
			return
		}
		ref := p.store.AppendPairwise(e.OriginalSenderID, e.OriginalRecipientID, e.Message)
		if err := p.store.PersistPairwise(); err != nil {
			p.log.Warn("Persist after relay copy failed", "error", err)
		}
		p.audit.Record(domain.InterceptedRecord{
			ID:                  uuid.NewString(),
			OriginalSenderID:    e.OriginalSenderID,
			OriginalRecipientID: e.OriginalRecipientID,
			Message:             e.Message,
		})
		p.auditChanged()
		p.conversationChanged(ref)
		return
	}

	// Direct copy. The sender's own append happened at send time; a
	// session receiving its own message (multi-client refresh) must not
	// ingest it twice.
	if e.Message.SenderID == self {
		return
	}
	ref := p.store.AppendPairwise(e.Message.SenderID, e.RecipientID, e.Message)
	if p.identity.IsModerator(self) {
		if err := p.store.PersistPairwise(); err != nil {
			p.log.Warn("Persist after private receipt failed", "error", err)
		}
	}
	p.notify.Notify()
	p.conversationChanged(ref)
}

func (p *Policy) handleGroup(e event.GroupMessage) {
	self := p.identity.CurrentParticipantID()
	g, ok := p.store.Group(e.GroupID)
	if !ok || !g.HasMember(self) || e.Message.SenderID == self {
		return
	}
	if err := p.store.AppendGroup(e.GroupID, e.Message); err != nil {
		p.log.Warn("Group append failed on receipt", "error", err)
		return
	}
	if p.identity.IsModerator(self) {
		if err := p.store.PersistGroups(); err != nil {
			p.log.Warn("Persist after group receipt failed", "error", err)
		}
	}
	p.notify.Notify()
	p.conversationChanged(domain.GroupRef(e.GroupID))
}

func (p *Policy) handleGroupCreate(e event.GroupCreate) {
	self := p.identity.CurrentParticipantID()
	if !e.Group.HasMember(self) {
		return
	}
	if p.storeHasGroup(e.Group.ID) {
		// Self-echo of our own announcement: the creator adopted the
		// group at creation time, before the round-trip.
		return
	}
	p.store.PutGroup(e.Group)
	p.conversationChanged(domain.GroupRef(e.Group.ID))
}

func (p *Policy) storeHasGroup(id string) bool {
	_, ok := p.store.Group(id)
	return ok
}

func (p *Policy) handleGroupDelete(e event.GroupDelete) {
	if _, ok := p.store.Group(e.GroupID); !ok {
		return
	}
	p.store.Delete(domain.GroupRef(e.GroupID))
	p.conversationChanged(domain.GroupRef(e.GroupID))
}
