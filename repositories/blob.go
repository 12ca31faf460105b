package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"runar/errors"
)

// Blob names used by the message store. Each holds one whole-object
// snapshot: a mapping from conversation key/id to conversation.
const (
	BlobPairwise = "privateChats"
	BlobGroups   = "groupChats"
)

const blobPrefix = "blob:"

// BlobRepository stores named whole-object blobs in BadgerDB, JSON
// encoded. Writes are last-write-wins with no version check; two
// moderator sessions persisting concurrently overwrite each other.
type BlobRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBlobRepository(db *badger.DB, log *slog.Logger) BlobRepository {
	return BlobRepository{db: db, log: log}
}

// ReadNamedBlob unmarshals the blob into out. Returns false when the
// blob was never written, which is not an error.
func (r BlobRepository) ReadNamedBlob(name string, out any) (bool, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobPrefix + name))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	switch {
	case err == badger.ErrKeyNotFound:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: reading blob %q: %v", errors.ErrStorageUnavailable, name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: blob %q is corrupt: %v", errors.ErrStorageUnavailable, name, err)
	}
	return true, nil
}

// WriteNamedBlob replaces the blob as a unit.
func (r BlobRepository) WriteNamedBlob(name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding blob %q: %w", name, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(blobPrefix+name), raw)
	})
	if err != nil {
		return fmt.Errorf("%w: writing blob %q: %v", errors.ErrStorageUnavailable, name, err)
	}
	r.log.Debug("Blob written", "name", name, "bytes", len(raw))
	return nil
}
