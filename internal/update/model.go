package update

import (
	"context"
	"fmt"
	"math/rand"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vibetimer/vibe/internal/model"
	"github.com/vibetimer/vibe/internal/store"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Focus  string
	Forest string
	Shop   string
	Stats  string
	Help   string
	Quit   string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// RandomSource abstracts the random picks (next plant, quote) so tests can
// inject determinism.
type RandomSource interface {
	Intn(n int) int
}

type stdRandom struct{}

func (stdRandom) Intn(n int) int { return rand.Intn(n) }

type Notification struct {
	Title string
	Body  string
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type Model struct {
	State          model.AppState
	Status         StatusBar
	Keys           GlobalKeyMap
	Palette        CommandPaletteState
	HelpVisible    bool
	Selecting      bool
	SelectCursor   int
	ShopCursor     int
	Importing      bool
	Quitting       bool
	LastError      error
	DesktopEnabled bool

	store     *store.Store
	notifier  DesktopNotifier
	rng       RandomSource
	now       func() time.Time
	backupDir string
	quote     string

	// tickSeq is the generation token of the active tick source. Every
	// transition out of Running bumps it, so a tick message from a stale
	// source is discarded instead of driving a second countdown.
	tickSeq int

	// Bubble components used for rich TUI controls
	timerProgress progress.Model
	importInput   textinput.Model
	commandInput  textinput.Model
	helpModel     help.Model
}

type SwitchScreenMsg struct {
	Screen model.Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// TimerTickMsg arrives once per second while a session runs. Seq identifies
// the tick source that scheduled it.
type TimerTickMsg struct {
	Seq int
}

func NewModel() Model {
	m := Model{
		State: model.DefaultState(),
		Keys: GlobalKeyMap{
			Focus:  "1",
			Forest: "2",
			Shop:   "3",
			Stats:  "4",
			Help:   "?",
			Quit:   "q",
		},
		notifier:  NoopDesktopNotifier{},
		rng:       stdRandom{},
		now:       time.Now,
		backupDir: ".",
	}
	m.initBubbleComponents()
	return m
}

func NewModelWithState(initial model.AppState) Model {
	m := NewModel()
	m.State = initial
	return m
}

// NewModelWithConfig wires the store, notifier and runtime config, then runs
// the once-per-launch daily streak check against the loaded state.
func NewModelWithConfig(s *store.Store, initial model.AppState, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel()
	m.State = initial
	m.store = s
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}
	if cfg.BackupDir != "" {
		m.backupDir = cfg.BackupDir
	}
	if cfg.PomodoroMinutes > 0 {
		m.State.Timer.PomodoroDuration = cfg.PomodoroMinutes * 60
	}
	model.ResetTransient(&m.State)
	if model.CheckStreak(&m.State.UserData, m.now()) {
		m.persist()
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.timerProgress = progress.New(progress.WithDefaultGradient())

	m.importInput = textinput.New()
	m.importInput.Placeholder = "path/to/vibe-backup.json"
	m.importInput.CharLimit = 256
	m.importInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "export | theme dark | duration 25 ..."
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func (m *Model) notify(title, body string) {
	if !m.DesktopEnabled {
		return
	}
	if err := m.notifier.Send(Notification{Title: title, Body: body}); err != nil {
		m.LastError = err
	}
}

// persist writes the document after a mutation. A failed write is logged into
// the status bar and LastError; the in-memory state stays authoritative.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveState(context.Background(), m.State); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
	}
}
