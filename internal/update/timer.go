package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vibetimer/vibe/internal/i18n"
	"github.com/vibetimer/vibe/internal/model"
)

var pomodoroDurations = []int{15, 25, 50}

func timerTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TimerTickMsg{Seq: seq}
	})
}

func (m Model) handleStartStop() (Model, tea.Cmd) {
	if m.State.IsSessionActive {
		return m.stopSession(), nil
	}
	return m.startSession()
}

func (m Model) startSession() (Model, tea.Cmd) {
	m.State.IsSessionActive = true
	m.State.Timer.StartTime = m.now()
	if m.State.Timer.Mode == model.ModePomodoro {
		// In pomodoro mode ElapsedSeconds carries the remaining time and
		// counts down to zero.
		m.State.Timer.ElapsedSeconds = m.State.Timer.PomodoroDuration
	} else {
		m.State.Timer.ElapsedSeconds = 0
	}
	m.pickQuote()
	m.Status = StatusBar{}
	m.tickSeq++
	return m, timerTickCmd(m.tickSeq)
}

// stopSession handles a manual stop. A stopwatch run that covered at least a
// whole minute is banked as a session; anything shorter is discarded without
// touching the persisted document. A manually stopped pomodoro never pays out.
func (m Model) stopSession() Model {
	if m.State.Timer.Mode == model.ModeStopwatch {
		minutes := m.State.Timer.ElapsedSeconds / 60
		if minutes >= 1 {
			m.completeSession(minutes)
			return m
		}
	}
	m.discardSession()
	return m
}

func (m Model) onTimerTick(msg TimerTickMsg) (Model, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.State.IsSessionActive {
		return m, nil
	}
	if m.State.Timer.Mode == model.ModePomodoro {
		m.State.Timer.ElapsedSeconds--
		if m.State.Timer.ElapsedSeconds <= 0 {
			minutes := m.State.Timer.PomodoroDuration / 60
			m.completeSession(minutes)
			m.notify("Pomodoro", fmt.Sprintf("%d min", minutes))
			return m, nil
		}
	} else {
		m.State.Timer.ElapsedSeconds++
	}
	return m, timerTickCmd(m.tickSeq)
}

// completeSession banks a finished interval: one coin per minute, a new log
// entry, a streak update, then a save.
func (m *Model) completeSession(minutes int) {
	m.invalidateTicks()
	m.State.IsSessionActive = false
	if minutes < 1 {
		return
	}
	m.State.UserData.Coins += minutes
	m.State.Sessions = append(m.State.Sessions, model.Session{
		ID:       uuid.NewString(),
		Date:     m.now(),
		Duration: minutes,
		Emoji:    m.resolvePlant(),
	})
	model.UpdateStreak(&m.State.UserData, m.now())
	m.persist()
	m.Status = StatusBar{Text: fmt.Sprintf("+%d 💰", minutes)}
}

func (m *Model) discardSession() {
	m.invalidateTicks()
	m.State.IsSessionActive = false
	m.State.Timer.ElapsedSeconds = 0
	m.Status = StatusBar{}
}

// invalidateTicks retires the current tick source. Any TimerTickMsg still in
// flight carries a stale seq and is dropped.
func (m *Model) invalidateTicks() {
	m.tickSeq++
}

// resolvePlant turns the selected next plant into a concrete emoji,
// resolving the random sentinel against the unlocked items.
func (m Model) resolvePlant() string {
	if m.State.SelectedEmoji != model.RandomEmoji {
		return m.State.SelectedEmoji
	}
	unlocked := m.State.UserData.UnlockedEmojis
	if len(unlocked) == 0 {
		return model.DefaultUnlocked[0]
	}
	return unlocked[m.rng.Intn(len(unlocked))]
}

func (m *Model) pickQuote() {
	all := i18n.Quotes(m.State.Settings.Language)
	if len(all) == 0 {
		m.quote = ""
		return
	}
	m.quote = all[m.rng.Intn(len(all))]
}

func (m Model) toggleMode() Model {
	if m.State.IsSessionActive {
		return m
	}
	if m.State.Timer.Mode == model.ModePomodoro {
		m.State.Timer.Mode = model.ModeStopwatch
	} else {
		m.State.Timer.Mode = model.ModePomodoro
	}
	m.State.Timer.ElapsedSeconds = 0
	m.persist()
	return m
}

func (m Model) cycleDuration() Model {
	if m.State.IsSessionActive || m.State.Timer.Mode != model.ModePomodoro {
		return m
	}
	current := m.State.Timer.PomodoroDuration / 60
	next := pomodoroDurations[0]
	for i, d := range pomodoroDurations {
		if d == current {
			next = pomodoroDurations[(i+1)%len(pomodoroDurations)]
			break
		}
	}
	return m.setDuration(next)
}

func (m Model) setDuration(minutes int) Model {
	if m.State.IsSessionActive || minutes < 1 {
		return m
	}
	m.State.Timer.PomodoroDuration = minutes * 60
	m.State.Timer.ElapsedSeconds = 0
	m.persist()
	return m
}

func (m Model) setMode(mode model.TimerMode) Model {
	if m.State.IsSessionActive || m.State.Timer.Mode == mode {
		return m
	}
	m.State.Timer.Mode = mode
	m.State.Timer.ElapsedSeconds = 0
	m.persist()
	return m
}

// timerDisplay is the clock text for the focus screen in the current mode.
func (m Model) timerDisplay() string {
	if m.State.IsSessionActive {
		return formatDuration(m.State.Timer.ElapsedSeconds)
	}
	if m.State.Timer.Mode == model.ModePomodoro {
		return formatDuration(m.State.Timer.PomodoroDuration)
	}
	return formatDuration(0)
}

// progressPct is the pomodoro completion ratio in [0, 1].
func (m Model) progressPct() float64 {
	total := m.State.Timer.PomodoroDuration
	if m.State.Timer.Mode != model.ModePomodoro || total <= 0 {
		return 0
	}
	done := total - m.State.Timer.ElapsedSeconds
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(total)
}
