package model

import (
	"encoding/json"
	"time"
)

type Screen string

const (
	ScreenFocus  Screen = "focus"
	ScreenForest Screen = "forest"
	ScreenShop   Screen = "shop"
	ScreenStats  Screen = "stats"
)

func (s Screen) IsValid() bool {
	switch s {
	case ScreenFocus, ScreenForest, ScreenShop, ScreenStats:
		return true
	default:
		return false
	}
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Language string

const (
	LangDe Language = "de"
	LangEn Language = "en"
)

type TimerMode string

const (
	ModePomodoro  TimerMode = "pomodoro"
	ModeStopwatch TimerMode = "stopwatch"
)

// RandomEmoji is the sentinel next-plant selection meaning "pick one of the
// unlocked items at random when the session completes".
const RandomEmoji = "random"

// DefaultUnlocked are the two free starter items. They are always present in
// UserData.UnlockedEmojis, even after merging a legacy or imported document.
var DefaultUnlocked = []string{"🌲", "🍄"}

type UserData struct {
	Coins           int        `json:"coins"`
	UnlockedEmojis  []string   `json:"unlockedEmojis"`
	Streak          int        `json:"streak"`
	LastSessionDate *time.Time `json:"lastSessionDate"`
	// LastCheckedDate is the local calendar day (YYYY-MM-DD) of the most
	// recent daily streak check. Empty means never checked.
	LastCheckedDate string `json:"lastCheckedDate"`
}

// Session is one completed focus interval. The session log is append-only.
type Session struct {
	ID       string    `json:"id,omitempty"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // whole minutes, >= 1
	Emoji    string    `json:"emoji"`
}

type Settings struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

type TimerState struct {
	Mode             TimerMode `json:"mode"`
	PomodoroDuration int       `json:"pomodoroDuration"` // seconds
	ElapsedSeconds   int       `json:"elapsedSeconds"`
	StartTime        time.Time `json:"startTime"`
}

// AppState is the single persisted application document.
type AppState struct {
	UserData        UserData   `json:"userData"`
	Sessions        []Session  `json:"sessions"`
	Settings        Settings   `json:"settings"`
	CurrentScreen   Screen     `json:"currentScreen"`
	IsSessionActive bool       `json:"isSessionActive"`
	Timer           TimerState `json:"timer"`
	SelectedEmoji   string     `json:"selectedEmoji"`
}

func DefaultState() AppState {
	return AppState{
		UserData: UserData{
			Coins:          0,
			UnlockedEmojis: append([]string(nil), DefaultUnlocked...),
			Streak:         0,
		},
		Sessions: []Session{},
		Settings: Settings{
			Theme:    ThemeLight,
			Language: LangDe,
		},
		CurrentScreen: ScreenFocus,
		Timer: TimerState{
			Mode:             ModePomodoro,
			PomodoroDuration: 25 * 60,
		},
		SelectedEmoji: "🌲",
	}
}

// MergeWithDefaults fills a partially-shaped or legacy document field by field
// from the defaults. Absent fields (at any nesting level) silently keep their
// default value; only malformed JSON is an error. Normal load and import both
// go through this merge.
func MergeWithDefaults(raw []byte) (AppState, error) {
	st := DefaultState()
	if err := json.Unmarshal(raw, &st); err != nil {
		return DefaultState(), err
	}
	ensureDefaultUnlocked(&st.UserData)
	if st.Sessions == nil {
		st.Sessions = []Session{}
	}
	if !st.CurrentScreen.IsValid() {
		st.CurrentScreen = ScreenFocus
	}
	return st, nil
}

// ResetTransient clears the fields that must never survive a load: a crash
// mid-session may persist an active flag, but the running tick source is gone.
func ResetTransient(st *AppState) {
	st.IsSessionActive = false
}

// ExportDocument produces the serializable backup snapshot: the full document
// with the transient session-active flag removed. The result round-trips
// through MergeWithDefaults.
func ExportDocument(st AppState) ([]byte, error) {
	raw, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "isSessionActive")
	return json.MarshalIndent(doc, "", "  ")
}

func ensureDefaultUnlocked(u *UserData) {
	missing := make([]string, 0, len(DefaultUnlocked))
	for _, emoji := range DefaultUnlocked {
		if !containsString(u.UnlockedEmojis, emoji) {
			missing = append(missing, emoji)
		}
	}
	if len(missing) > 0 {
		u.UnlockedEmojis = append(missing, u.UnlockedEmojis...)
	}
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
