package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/model"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TimerTickMsg:
		return m.onTimerTick(msg)
	case SwitchScreenMsg:
		return m.switchScreen(msg.Screen), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: msg.Text, IsError: msg.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = msg.Err
		m.Status = StatusBar{Text: fmt.Sprintf("error: %v", msg.Err), IsError: true}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Quitting = true
		return m, tea.Quit
	}

	// Text-entry overlays swallow every key until closed.
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Importing {
		return m.handleImportKey(msg)
	}
	if m.Selecting {
		return m.handleSelectionKey(msg)
	}

	idle := !m.State.IsSessionActive

	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Focus:
		return m.switchScreen(model.ScreenFocus), nil
	case m.Keys.Forest:
		return m.switchScreen(model.ScreenForest), nil
	case m.Keys.Shop:
		return m.switchScreen(model.ScreenShop), nil
	case m.Keys.Stats:
		return m.switchScreen(model.ScreenStats), nil
	case " ":
		if m.State.CurrentScreen == model.ScreenFocus {
			return m.handleStartStop()
		}
		return m, nil
	case "m":
		if m.State.CurrentScreen == model.ScreenFocus {
			return m.toggleMode(), nil
		}
	case "d":
		if m.State.CurrentScreen == model.ScreenFocus {
			return m.cycleDuration(), nil
		}
	case "p":
		if m.State.CurrentScreen == model.ScreenForest && idle {
			return m.openSelection(), nil
		}
	case "t":
		if idle {
			return m.toggleTheme(), nil
		}
	case "g":
		if idle {
			return m.toggleLanguage(), nil
		}
	case "e":
		if idle {
			return m.exportData(), nil
		}
	case "i":
		if idle {
			return m.openImportPrompt()
		}
	case "/":
		if idle {
			return m.openPalette()
		}
	}

	if m.State.CurrentScreen == model.ScreenShop && idle {
		return m.handleShopKey(msg)
	}
	return m, nil
}
