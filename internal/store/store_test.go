package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vibetimer/vibe/internal/model"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vibe-test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := setupStore(t)
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetGetOverwrite(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestLoadStateMissingDocument(t *testing.T) {
	s := setupStore(t)
	st, err := s.LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := model.DefaultState()
	if st.UserData.Coins != want.UserData.Coins || st.Settings.Theme != want.Settings.Theme {
		t.Fatalf("expected default state, got %+v", st)
	}
}

func TestLoadStateMalformedFallsBackToDefault(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	if err := s.Set(ctx, StateKey, []byte("{not json")); err != nil {
		t.Fatalf("set: %v", err)
	}
	st, err := s.LoadState(ctx)
	if err == nil {
		t.Fatal("expected diagnostic error for malformed document")
	}
	if st.UserData.Coins != 0 || st.Timer.PomodoroDuration != 25*60 {
		t.Fatalf("expected default fallback state, got %+v", st)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	st := model.DefaultState()
	st.UserData.Coins = 77
	st.UserData.Streak = 2
	when := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	st.UserData.LastSessionDate = &when
	st.Sessions = append(st.Sessions, model.Session{ID: "s-1", Date: when, Duration: 25, Emoji: "🍄"})
	st.Settings.Language = model.LangEn
	st.IsSessionActive = true

	if err := s.SaveState(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.UserData.Coins != 77 || got.UserData.Streak != 2 {
		t.Fatalf("user data did not round-trip: %+v", got.UserData)
	}
	if len(got.Sessions) != 1 || got.Sessions[0].Emoji != "🍄" {
		t.Fatalf("sessions did not round-trip: %#v", got.Sessions)
	}
	if got.Settings.Language != model.LangEn {
		t.Fatalf("settings did not round-trip: %+v", got.Settings)
	}
	if got.IsSessionActive {
		t.Fatal("expected session-active flag reset on load")
	}
}
