package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func Test_ParseRoster(t *testing.T) {
	req := require.New(t)
	entries, err := ParseRoster("gm=Game Master:moderator, alice=Alice, bob=Bob")
	req.NoError(err)
	req.Len(entries, 3)
	req.Equal(RosterEntry{ID: "gm", Name: "Game Master", Moderator: true}, entries[0])
	req.Equal(RosterEntry{ID: "alice", Name: "Alice"}, entries[1])
}

func Test_ViewerConfig_Needs_Only_The_Database_Path(t *testing.T) {
	req := require.New(t)
	t.Setenv("BADGER_FILEPATH", t.TempDir())

	// No PARTICIPANT_ID, no ROSTER: the viewer must still configure.
	var config ViewerConfig
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.NotEmpty(config.BadgerFilepath)
	req.Equal("INFO", config.LogLevel)
}

func Test_ParseRoster_Rejects_Malformed_Input(t *testing.T) {
	req := require.New(t)
	_, err := ParseRoster("just-an-id")
	req.Error(err)
	_, err = ParseRoster("   ")
	req.Error(err)
}
