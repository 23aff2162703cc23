package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mhollowell/winnow/internal/session"
)

func TestSaveAndGet(t *testing.T) {
	st := NewMemoryStore()
	s := session.New(5, []string{"crane", "slate"})

	if err := st.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != s {
		t.Fatal("expected the stored session back")
	}
}

func TestGetUnknown(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
