// Package uploads stores profile images in a key-value blob store.
package uploads

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/vida-hq/vida-admin/internal/uniuri"
)

// ErrNotFound is returned when no blob exists under the given key.
var ErrNotFound = errors.New("upload not found")

// Store saves uploaded blobs and hands back the reference to persist on the
// account.
type Store struct {
	storage fiber.Storage
}

// NewStore creates a store on top of the given storage backend.
func NewStore(storage fiber.Storage) *Store {
	if storage == nil {
		panic("storage is nil")
	}

	return &Store{storage: storage}
}

// Save stores the blob under a random name that keeps the original
// extension and returns that name. Random naming avoids collisions between
// uploads sharing a file name.
func (s *Store) Save(originalName string, data []byte) (string, error) {
	key := uniuri.New() + filepath.Ext(originalName)

	if err := s.storage.Set(key, data, 0); err != nil {
		return "", pkgerrors.Wrap(err, "failed to store upload")
	}

	return key, nil
}

// Get returns the blob stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := s.storage.Get(key)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read upload")
	}

	// fiber storage backends report a miss as nil without error
	if len(data) == 0 {
		return nil, ErrNotFound
	}

	return data, nil
}
