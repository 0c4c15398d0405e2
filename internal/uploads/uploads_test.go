package uploads

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/storage/memory/v2"
)

func newTestStore() *Store {
	return NewStore(memory.New())
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStore()

	key, err := s.Save("logo.png", []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasSuffix(key, ".png") {
		t.Errorf("key = %q, want .png suffix", key)
	}

	data, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if len(data) != 4 {
		t.Errorf("Get() returned %d bytes, want 4", len(data))
	}
}

func TestSaveRandomizesNames(t *testing.T) {
	s := newTestStore()

	k1, err := s.Save("same.jpg", []byte("one"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	k2, err := s.Save("same.jpg", []byte("two"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if k1 == k2 {
		t.Error("two uploads with the same name must get distinct keys")
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore()

	if _, err := s.Get("nope.png"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
