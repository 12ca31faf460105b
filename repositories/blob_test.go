package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"runar/domain"
)

func Test_Blob_Write_Then_Read(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewBlobRepository(db, slog.Default())
	in := map[string]*domain.PairwiseConversation{
		"alice-bob": {
			Participants: [2]string{"alice", "bob"},
			History: []domain.Message{
				{SenderID: "alice", Content: "hello", SentAt: 1700000000000},
			},
		},
	}
	req.NoError(repository.WriteNamedBlob(BlobPairwise, in))

	out := make(map[string]*domain.PairwiseConversation)
	ok, err := repository.ReadNamedBlob(BlobPairwise, &out)
	req.NoError(err)
	req.True(ok)
	req.Equal(in, out)
}

func Test_Blob_Read_Missing_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewBlobRepository(db, slog.Default())
	out := make(map[string]*domain.GroupConversation)
	ok, err := repository.ReadNamedBlob(BlobGroups, &out)
	req.NoError(err)
	req.False(ok)
	req.Empty(out)
}

func Test_Blob_Write_Replaces_Whole_Object(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewBlobRepository(db, slog.Default())
	req.NoError(repository.WriteNamedBlob(BlobGroups, map[string]*domain.GroupConversation{
		"g1": {ID: "g1", Name: "old", Members: []string{"gm"}},
		"g2": {ID: "g2", Name: "gone", Members: []string{"gm"}},
	}))
	req.NoError(repository.WriteNamedBlob(BlobGroups, map[string]*domain.GroupConversation{
		"g1": {ID: "g1", Name: "new", Members: []string{"gm"}},
	}))

	out := make(map[string]*domain.GroupConversation)
	ok, err := repository.ReadNamedBlob(BlobGroups, &out)
	req.NoError(err)
	req.True(ok)
	req.Len(out, 1)
	req.Equal("new", out["g1"].Name)
}
