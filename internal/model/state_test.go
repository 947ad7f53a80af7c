package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if st.UserData.Coins != 0 || st.UserData.Streak != 0 {
		t.Fatalf("unexpected default user data: %+v", st.UserData)
	}
	if len(st.UserData.UnlockedEmojis) != 2 {
		t.Fatalf("expected 2 starter items, got %#v", st.UserData.UnlockedEmojis)
	}
	if st.Settings.Theme != ThemeLight || st.Settings.Language != LangDe {
		t.Fatalf("unexpected default settings: %+v", st.Settings)
	}
	if st.Timer.Mode != ModePomodoro || st.Timer.PomodoroDuration != 25*60 {
		t.Fatalf("unexpected default timer: %+v", st.Timer)
	}
	if st.CurrentScreen != ScreenFocus {
		t.Fatalf("unexpected default screen: %q", st.CurrentScreen)
	}
}

func TestMergeWithDefaultsFillsMissingFields(t *testing.T) {
	raw := []byte(`{"userData":{"coins":120,"streak":3},"sessions":[]}`)
	st, err := MergeWithDefaults(raw)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if st.UserData.Coins != 120 || st.UserData.Streak != 3 {
		t.Fatalf("merged values lost: %+v", st.UserData)
	}
	if st.Settings.Theme != ThemeLight || st.Settings.Language != LangDe {
		t.Fatalf("expected default settings for missing section, got %+v", st.Settings)
	}
	if st.Timer.PomodoroDuration != 25*60 {
		t.Fatalf("expected default pomodoro duration, got %d", st.Timer.PomodoroDuration)
	}
	if st.SelectedEmoji != "🌲" {
		t.Fatalf("expected default selection, got %q", st.SelectedEmoji)
	}
}

func TestMergeWithDefaultsFillsNestedFields(t *testing.T) {
	raw := []byte(`{"settings":{"theme":"dark"},"timer":{"mode":"stopwatch"}}`)
	st, err := MergeWithDefaults(raw)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	if st.Settings.Theme != ThemeDark {
		t.Fatalf("expected dark theme, got %q", st.Settings.Theme)
	}
	if st.Settings.Language != LangDe {
		t.Fatalf("expected default language inside partial settings, got %q", st.Settings.Language)
	}
	if st.Timer.Mode != ModeStopwatch || st.Timer.PomodoroDuration != 25*60 {
		t.Fatalf("expected merged timer with default duration, got %+v", st.Timer)
	}
}

func TestMergeWithDefaultsMalformedJSON(t *testing.T) {
	if _, err := MergeWithDefaults([]byte(`{broken`)); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestMergeWithDefaultsRestoresStarterItems(t *testing.T) {
	raw := []byte(`{"userData":{"unlockedEmojis":["🦊"]}}`)
	st, err := MergeWithDefaults(raw)
	if err != nil {
		t.Fatalf("merge failed: %v", err)
	}
	for _, emoji := range DefaultUnlocked {
		if !Unlocked(st.UserData, emoji) {
			t.Fatalf("starter item %q missing after merge: %#v", emoji, st.UserData.UnlockedEmojis)
		}
	}
	if !Unlocked(st.UserData, "🦊") {
		t.Fatalf("imported unlock lost: %#v", st.UserData.UnlockedEmojis)
	}
}

func TestResetTransient(t *testing.T) {
	st := DefaultState()
	st.IsSessionActive = true
	ResetTransient(&st)
	if st.IsSessionActive {
		t.Fatal("expected session-active flag cleared")
	}
}

func TestExportDocumentOmitsTransientAndRoundTrips(t *testing.T) {
	st := DefaultState()
	st.UserData.Coins = 42
	st.UserData.Streak = 5
	when := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)
	st.UserData.LastSessionDate = &when
	st.Sessions = []Session{{ID: "s-1", Date: when, Duration: 25, Emoji: "🌲"}}
	st.Settings.Theme = ThemeDark
	st.IsSessionActive = true

	raw, err := ExportDocument(st)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	if _, ok := doc["isSessionActive"]; ok {
		t.Fatal("transient field leaked into export")
	}

	back, err := MergeWithDefaults(raw)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if back.UserData.Coins != 42 || back.UserData.Streak != 5 {
		t.Fatalf("user data did not round-trip: %+v", back.UserData)
	}
	if len(back.Sessions) != 1 || back.Sessions[0].Duration != 25 || back.Sessions[0].Emoji != "🌲" {
		t.Fatalf("sessions did not round-trip: %#v", back.Sessions)
	}
	if back.Settings.Theme != ThemeDark {
		t.Fatalf("settings did not round-trip: %+v", back.Settings)
	}
	if back.IsSessionActive {
		t.Fatal("expected inactive session after re-import")
	}
}
