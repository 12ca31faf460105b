package relay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"runar/domain"
	"runar/domain/event"
	"runar/errors"
)

func Test_Envelope_RoundTrip_Private_Relay_Copy(t *testing.T) {
	req := require.New(t)
	in := event.PrivateMessage{
		RecipientID:         "gm",
		Message:             domain.Message{SenderID: "alice", Content: "psst", SentAt: 1700000000000},
		IsRelay:             true,
		OriginalSenderID:    "alice",
		OriginalRecipientID: "bob",
	}
	data, err := Encode(in, []string{"gm"})
	req.NoError(err)

	out, recipients, err := Decode(data)
	req.NoError(err)
	req.Equal([]string{"gm"}, recipients)
	req.Equal(in, out)
}

func Test_Envelope_RoundTrip_Group_Create(t *testing.T) {
	req := require.New(t)
	in := event.GroupCreate{Group: domain.GroupConversation{
		ID:      "g1",
		Name:    "party",
		Members: []string{"gm", "p1", "p2"},
	}}
	data, err := Encode(in, []string{"gm", "p1", "p2"})
	req.NoError(err)

	out, _, err := Decode(data)
	req.NoError(err)
	req.Equal(in, out)
}

func Test_Decode_Rejects_Unknown_Event_Type(t *testing.T) {
	req := require.New(t)
	raw, err := json.Marshal(map[string]any{
		"type":       "selfDestruct",
		"recipients": []string{"bob"},
		"payload":    map[string]any{},
	})
	req.NoError(err)

	_, _, err = Decode(raw)
	req.ErrorIs(err, errors.ErrUnknownEventType)
}
