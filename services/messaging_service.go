package services

import (
	"context"

	"runar/contract"
	"runar/domain"
	"runar/routing"
	"runar/store"
)

type IMessagingService interface {
	SendPairwise(ctx context.Context, recipientID, content string, speaker *domain.Speaker) error
	SendGroup(ctx context.Context, groupID, content string, speaker *domain.Speaker) error
	CreateGroup(ctx context.Context, name string, memberIDs []string) (domain.GroupConversation, error)
	DeleteConversation(ctx context.Context, ref domain.ConversationRef) error
	OpenPairwise(peerID string) (domain.ConversationRef, error)
	Conversations() []store.Summary
	History(ref domain.ConversationRef) []domain.Message
	AuditLog() ([]domain.InterceptedRecord, error)
	OnConversationChanged(fn func(domain.ConversationRef))
}

// MessagingService is the surface the presentation layer talks to; it
// stays thin over the routing policy and the store.
type MessagingService struct {
	policy   *routing.Policy
	store    *store.MessageStore
	identity contract.Identity
}

func NewMessagingService(policy *routing.Policy, st *store.MessageStore, identity contract.Identity) *MessagingService {
	return &MessagingService{policy: policy, store: st, identity: identity}
}

func (s *MessagingService) SendPairwise(ctx context.Context, recipientID, content string, speaker *domain.Speaker) error {
	return s.policy.SendPairwise(ctx, domain.SendPairwiseCommand{
		RecipientID: recipientID,
		Content:     content,
		Speaker:     speaker,
	})
}

func (s *MessagingService) SendGroup(ctx context.Context, groupID, content string, speaker *domain.Speaker) error {
	return s.policy.SendGroup(ctx, domain.SendGroupCommand{
		GroupID: groupID,
		Content: content,
		Speaker: speaker,
	})
}

func (s *MessagingService) CreateGroup(ctx context.Context, name string, memberIDs []string) (domain.GroupConversation, error) {
	return s.policy.CreateGroup(ctx, domain.CreateGroupCommand{Name: name, MemberIDs: memberIDs})
}

func (s *MessagingService) DeleteConversation(ctx context.Context, ref domain.ConversationRef) error {
	return s.policy.DeleteConversation(ctx, ref)
}

func (s *MessagingService) OpenPairwise(peerID string) (domain.ConversationRef, error) {
	return s.policy.OpenPairwise(peerID)
}

func (s *MessagingService) Conversations() []store.Summary {
	self := s.identity.CurrentParticipantID()
	return s.store.Conversations(self, s.identity.IsModerator(self))
}

func (s *MessagingService) History(ref domain.ConversationRef) []domain.Message {
	return s.store.Read(ref)
}

func (s *MessagingService) AuditLog() ([]domain.InterceptedRecord, error) {
	return s.policy.AuditLog()
}

func (s *MessagingService) OnConversationChanged(fn func(domain.ConversationRef)) {
	s.policy.OnConversationChanged(fn)
}
