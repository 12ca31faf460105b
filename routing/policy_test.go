package routing

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"runar/domain"
	"runar/domain/event"
	"runar/errors"
	"runar/identity"
	"runar/relay"
	"runar/repositories"
	"runar/store"
)

// fakeBlobs keeps named blobs in memory, JSON-encoded like the Badger
// repository, so persistence assertions inspect real snapshots.
type fakeBlobs struct {
	data map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: make(map[string][]byte)}
}

func (f *fakeBlobs) ReadNamedBlob(name string, out any) (bool, error) {
	raw, ok := f.data[name]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (f *fakeBlobs) WriteNamedBlob(name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[name] = raw
	return nil
}

func (f *fakeBlobs) pairwise(t *testing.T) map[string]*domain.PairwiseConversation {
	t.Helper()
	out := make(map[string]*domain.PairwiseConversation)
	if raw, ok := f.data[repositories.BlobPairwise]; ok {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

func (f *fakeBlobs) groups(t *testing.T) map[string]*domain.GroupConversation {
	t.Helper()
	out := make(map[string]*domain.GroupConversation)
	if raw, ok := f.data[repositories.BlobGroups]; ok {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

type countingSink struct {
	fired int
}

func (s *countingSink) Notify() { s.fired++ }

// client simulates one connected session on the shared bus.
type client struct {
	id     string
	policy *Policy
	store  *store.MessageStore
	audit  *domain.AuditBuffer
	blobs  *fakeBlobs
	sink   *countingSink
}

var sessionRoster = []identity.Participant{
	{ID: "gm", Name: "Game Master", Moderator: true, Connected: true},
	{ID: "alice", Name: "Alice", Connected: true},
	{ID: "bob", Name: "Bob", Connected: true},
}

func newClient(t *testing.T, bus *relay.Loopback, selfID string) *client {
	t.Helper()
	roster := identity.NewRoster(selfID, sessionRoster)
	blobs := newFakeBlobs()
	st := store.NewMessageStore(roster, blobs, slog.Default())
	audit := domain.NewAuditBuffer()
	sink := &countingSink{}
	policy := NewPolicy(roster, bus.Endpoint(), st, audit, sink, slog.Default())
	require.NoError(t, policy.Subscribe())
	return &client{id: selfID, policy: policy, store: st, audit: audit, blobs: blobs, sink: sink}
}

func newSession(t *testing.T) (gm, alice, bob *client) {
	t.Helper()
	bus := relay.NewLoopback(slog.Default())
	return newClient(t, bus, "gm"), newClient(t, bus, "alice"), newClient(t, bus, "bob")
}

func Test_Player_To_Player_Message_Reaches_Recipient_And_Moderator(t *testing.T) {
	req := require.New(t)
	gm, alice, bob := newSession(t)
	ctx := context.Background()

	req.NoError(alice.policy.SendPairwise(ctx, domain.SendPairwiseCommand{RecipientID: "bob", Content: "hello"}))

	key := domain.Key("alice", "bob")
	ref := domain.PairwiseRef(key)

	// Sender appended exactly once despite receiving its own broadcast.
	req.Len(alice.store.Read(ref), 1)

	// Recipient appended once and got notified.
	req.Len(bob.store.Read(ref), 1)
	req.Equal("hello", bob.store.Read(ref)[0].Content)
	req.Equal(1, bob.sink.fired)

	// Moderator ingested the relay copy: audit record plus durable copy.
	req.Len(gm.store.Read(ref), 1)
	req.Equal(1, gm.audit.Len())
	intercepted := gm.audit.Snapshot()[0]
	req.Equal("alice", intercepted.OriginalSenderID)
	req.Equal("bob", intercepted.OriginalRecipientID)
	persisted := gm.blobs.pairwise(t)
	req.Contains(persisted, key)
	req.Len(persisted[key].History, 1)

	// Players never wrote durable state.
	req.Empty(alice.blobs.data)
	req.Empty(bob.blobs.data)

	// The relay copy never notified anyone.
	req.Zero(gm.sink.fired)
	req.Zero(alice.sink.fired)
}

func Test_Moderator_Sender_Persists_Without_Relay_Copy(t *testing.T) {
	req := require.New(t)
	gm, alice, _ := newSession(t)
	ctx := context.Background()

	req.NoError(gm.policy.SendPairwise(ctx, domain.SendPairwiseCommand{RecipientID: "alice", Content: "beware"}))

	key := domain.Key("gm", "alice")
	req.Len(gm.store.Read(domain.PairwiseRef(key)), 1)
	req.Len(alice.store.Read(domain.PairwiseRef(key)), 1)

	// The sender is itself the durability authority: no shadow copy.
	req.Zero(gm.audit.Len())
	req.Contains(gm.blobs.pairwise(t), key)
}

func Test_Message_To_Moderator_Gets_No_Relay_Copy(t *testing.T) {
	req := require.New(t)
	gm, alice, _ := newSession(t)
	ctx := context.Background()

	req.NoError(alice.policy.SendPairwise(ctx, domain.SendPairwiseCommand{RecipientID: "gm", Content: "question"}))

	key := domain.Key("alice", "gm")
	req.Len(gm.store.Read(domain.PairwiseRef(key)), 1)
	// Direct receipt by the moderator persists but is not an intercept.
	req.Zero(gm.audit.Len())
	req.Contains(gm.blobs.pairwise(t), key)
	req.Equal(1, gm.sink.fired)
}

func Test_Relay_Copy_Addressed_To_Player_Is_Discarded(t *testing.T) {
	req := require.New(t)
	bus := relay.NewLoopback(slog.Default())
	bob := newClient(t, bus, "bob")

	// Misaddressed shadow copy, as a faulty client could emit.
	rogue := bus.Endpoint()
	shadow := event.PrivateMessage{
		RecipientID:         "bob",
		Message:             domain.Message{SenderID: "alice", Content: "psst"},
		IsRelay:             true,
		OriginalSenderID:    "alice",
		OriginalRecipientID: "carol",
	}
	req.NoError(rogue.Publish(context.Background(), shadow, []string{"bob"}))

	req.Nil(bob.store.Read(domain.PairwiseRef(domain.Key("alice", "carol"))))
	req.Zero(bob.audit.Len())
}

func Test_Group_Lifecycle_Create_Send_Delete(t *testing.T) {
	req := require.New(t)
	gm, alice, bob := newSession(t)
	ctx := context.Background()

	g, err := gm.policy.CreateGroup(ctx, domain.CreateGroupCommand{Name: "party", MemberIDs: []string{"alice", "bob"}})
	req.NoError(err)
	req.Contains(g.Members, "gm")

	// Members adopted the announcement; the empty group lists immediately.
	_, ok := alice.store.Group(g.ID)
	req.True(ok)
	req.Len(bob.store.Conversations("bob", false), 1)

	req.NoError(gm.policy.SendGroup(ctx, domain.SendGroupCommand{GroupID: g.ID, Content: "welcome"}))

	ref := domain.GroupRef(g.ID)
	req.Len(gm.store.Read(ref), 1)
	req.Len(alice.store.Read(ref), 1)
	req.Len(bob.store.Read(ref), 1)
	req.Equal(1, alice.sink.fired)
	req.Equal(1, bob.sink.fired)

	// Only the moderator persisted.
	req.Len(gm.blobs.groups(t)[g.ID].History, 1)
	req.Empty(alice.blobs.data)
	req.Empty(bob.blobs.data)

	// Delete propagates and later sends are silently dropped.
	req.NoError(gm.policy.DeleteConversation(ctx, ref))
	_, ok = alice.store.Group(g.ID)
	req.False(ok)
	req.NotContains(gm.blobs.groups(t), g.ID)

	req.NoError(alice.policy.SendGroup(ctx, domain.SendGroupCommand{GroupID: g.ID, Content: "anyone?"}))
	req.Nil(alice.store.Read(ref))
	req.Nil(bob.store.Read(ref))
}

func Test_Group_Announcement_Ignored_By_Non_Members(t *testing.T) {
	req := require.New(t)
	_, alice, bob := newSession(t)
	ctx := context.Background()

	g, err := alice.policy.CreateGroup(ctx, domain.CreateGroupCommand{Name: "duo", MemberIDs: []string{"gm"}})
	req.NoError(err)

	_, ok := bob.store.Group(g.ID)
	req.False(ok)
}

func Test_Placeholder_Conversation_Hidden_Until_First_Message(t *testing.T) {
	req := require.New(t)
	_, alice, bob := newSession(t)
	ctx := context.Background()

	ref, err := alice.policy.OpenPairwise("bob")
	req.NoError(err)
	req.Empty(alice.store.Conversations("alice", false))
	req.Empty(alice.store.Read(ref))

	req.NoError(bob.policy.SendPairwise(ctx, domain.SendPairwiseCommand{RecipientID: "alice", Content: "hi"}))
	req.Len(alice.store.Conversations("alice", false), 1)
	req.Len(alice.store.Read(ref), 1)
}

func Test_Delete_And_Audit_Are_Moderator_Only(t *testing.T) {
	req := require.New(t)
	gm, alice, _ := newSession(t)
	ctx := context.Background()

	err := alice.policy.DeleteConversation(ctx, domain.PairwiseRef(domain.Key("alice", "bob")))
	req.ErrorIs(err, errors.ErrNotAuthorized)

	_, err = alice.policy.AuditLog()
	req.ErrorIs(err, errors.ErrNotAuthorized)

	records, err := gm.policy.AuditLog()
	req.NoError(err)
	req.Empty(records)
}

func Test_Invalid_Sends_Leave_No_Trace(t *testing.T) {
	req := require.New(t)
	_, alice, bob := newSession(t)
	ctx := context.Background()

	err := alice.policy.SendPairwise(ctx, domain.SendPairwiseCommand{RecipientID: "bob", Content: "  "})
	req.ErrorIs(err, errors.ErrEmptyContent)

	req.Nil(alice.store.Read(domain.PairwiseRef(domain.Key("alice", "bob"))))
	req.Nil(bob.store.Read(domain.PairwiseRef(domain.Key("alice", "bob"))))
	req.Zero(bob.sink.fired)
}

func Test_Speaker_Override_Travels_With_The_Message(t *testing.T) {
	req := require.New(t)
	gm, alice, _ := newSession(t)
	ctx := context.Background()

	actor := domain.Speaker{Kind: domain.SpeakerActor, ID: "npc-7", Name: "Mysterious Stranger", AvatarRef: "npc7.webp"}
	req.NoError(gm.policy.SendPairwise(ctx, domain.SendPairwiseCommand{
		RecipientID: "alice",
		Content:     "we meet at dawn",
		Speaker:     &actor,
	}))

	history := alice.store.Read(domain.PairwiseRef(domain.Key("gm", "alice")))
	req.Len(history, 1)
	// The authenticated author stays the moderator; only the display
	// identity is impersonated.
	req.Equal("gm", history[0].SenderID)
	req.Equal(actor, history[0].Speaker)
}
