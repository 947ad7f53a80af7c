package update

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/model"
)

type fakeRand struct {
	value int
}

func (f fakeRand) Intn(n int) int {
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func testModel() Model {
	m := NewModel()
	m.rng = fakeRand{}
	m.now = func() time.Time {
		return time.Date(2024, 3, 14, 10, 0, 0, 0, time.Local)
	}
	return m
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TimerTickMsg{Seq: m.tickSeq})
		m = next.(Model)
	}
	return m
}

func TestPomodoroRunsToCompletion(t *testing.T) {
	m := testModel()
	m.State.Timer.PomodoroDuration = 2 * 60

	m, cmd := press(t, m, " ")
	if !m.State.IsSessionActive {
		t.Fatal("session should be active after start")
	}
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if m.State.Timer.ElapsedSeconds != 120 {
		t.Fatalf("expected countdown to start at 120, got %d", m.State.Timer.ElapsedSeconds)
	}

	m = tick(t, m, 120)

	if m.State.IsSessionActive {
		t.Fatal("session should have completed")
	}
	if m.State.UserData.Coins != 2 {
		t.Fatalf("expected 2 coins, got %d", m.State.UserData.Coins)
	}
	if len(m.State.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(m.State.Sessions))
	}
	s := m.State.Sessions[0]
	if s.Duration != 2 || s.Emoji != "🌲" || s.ID == "" {
		t.Fatalf("unexpected session entry: %#v", s)
	}
	if m.State.UserData.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", m.State.UserData.Streak)
	}
}

func TestManualPomodoroStopDiscards(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, " ")
	m = tick(t, m, 30)

	m, _ = press(t, m, " ")
	if m.State.IsSessionActive {
		t.Fatal("session should be stopped")
	}
	if m.State.UserData.Coins != 0 || len(m.State.Sessions) != 0 {
		t.Fatal("a manually stopped pomodoro must not pay out")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, " ")
	staleSeq := m.tickSeq
	m, _ = press(t, m, " ") // stop retires the tick source

	next, cmd := m.Update(TimerTickMsg{Seq: staleSeq})
	m = next.(Model)
	if cmd != nil {
		t.Fatal("stale tick must not re-arm the timer")
	}
	if m.State.IsSessionActive {
		t.Fatal("stale tick must not revive the session")
	}
}

func TestStopwatchBanksWholeMinutes(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "m")
	if m.State.Timer.Mode != model.ModeStopwatch {
		t.Fatalf("expected stopwatch mode, got %q", m.State.Timer.Mode)
	}

	// 59 seconds is below a whole minute and is discarded.
	m, _ = press(t, m, " ")
	m = tick(t, m, 59)
	m, _ = press(t, m, " ")
	if len(m.State.Sessions) != 0 || m.State.UserData.Coins != 0 {
		t.Fatal("sub-minute stopwatch run must be discarded")
	}

	m, _ = press(t, m, " ")
	m = tick(t, m, 60)
	m, _ = press(t, m, " ")
	if len(m.State.Sessions) != 1 {
		t.Fatalf("expected 1 banked session, got %d", len(m.State.Sessions))
	}
	if m.State.Sessions[0].Duration != 1 || m.State.UserData.Coins != 1 {
		t.Fatalf("expected 1 minute and 1 coin, got %d min / %d coins",
			m.State.Sessions[0].Duration, m.State.UserData.Coins)
	}
}

func TestRandomPlantResolvesAgainstUnlocked(t *testing.T) {
	m := testModel()
	m.rng = fakeRand{value: 1}
	m.State.SelectedEmoji = model.RandomEmoji
	m.State.Timer.PomodoroDuration = 60

	m, _ = press(t, m, " ")
	m = tick(t, m, 60)

	if len(m.State.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(m.State.Sessions))
	}
	if got := m.State.Sessions[0].Emoji; got != "🍄" {
		t.Fatalf("expected random pick 🍄, got %q", got)
	}
}

func TestScreenSwitchBlockedDuringSession(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, " ")
	m, _ = press(t, m, "2")
	if m.State.CurrentScreen != model.ScreenFocus {
		t.Fatal("navigation must be blocked while a session runs")
	}

	m, _ = press(t, m, " ")
	m, _ = press(t, m, "2")
	if m.State.CurrentScreen != model.ScreenForest {
		t.Fatalf("expected forest screen, got %q", m.State.CurrentScreen)
	}
}

func TestDurationCycleAndModeGuards(t *testing.T) {
	m := testModel()
	m, _ = press(t, m, "d")
	if m.State.Timer.PomodoroDuration != 50*60 {
		t.Fatalf("expected 50 min after cycling from 25, got %d s", m.State.Timer.PomodoroDuration)
	}
	m, _ = press(t, m, "d")
	if m.State.Timer.PomodoroDuration != 15*60 {
		t.Fatalf("expected wrap to 15 min, got %d s", m.State.Timer.PomodoroDuration)
	}

	m, _ = press(t, m, " ")
	m, _ = press(t, m, "d")
	if m.State.Timer.PomodoroDuration != 15*60 {
		t.Fatal("duration must not change while a session runs")
	}
	m, _ = press(t, m, "m")
	if m.State.Timer.Mode != model.ModePomodoro {
		t.Fatal("mode must not change while a session runs")
	}
}
