package update

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/commands"
	"github.com/vibetimer/vibe/internal/model"
)

func (m Model) openPalette() (Model, tea.Cmd) {
	m.Palette = CommandPaletteState{Active: true}
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	return m, textinput.Blink
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		return m, nil
	case tea.KeyEnter:
		input := m.commandInput.Value()
		m.Palette = CommandPaletteState{}
		m.commandInput.Blur()
		return m.executeCommand(input)
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

// executeCommand wires the palette grammar to the same mutations the key
// bindings use. Handlers close over m so the routed mutation survives into
// the returned model.
func (m Model) executeCommand(input string) (Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("command error: %v", err), IsError: true}
		return m, nil
	}

	var teaCmd tea.Cmd
	handlers := commands.Handlers{
		Export: func() (commands.Result, error) {
			m = m.exportData()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Import: func(args commands.ImportArgs) (commands.Result, error) {
			m, teaCmd = m.runImport(args.Path)
			return commands.Result{Message: m.Status.Text}, nil
		},
		Theme: func(args commands.ThemeArgs) (commands.Result, error) {
			switch args.Theme {
			case "":
				m = m.toggleTheme()
			default:
				m = m.setTheme(model.Theme(args.Theme))
			}
			return commands.Result{Message: "theme: " + string(m.State.Settings.Theme)}, nil
		},
		Lang: func(args commands.LangArgs) (commands.Result, error) {
			m = m.setLanguage(model.Language(args.Lang))
			return commands.Result{Message: "language: " + string(m.State.Settings.Language)}, nil
		},
		Mode: func(args commands.ModeArgs) (commands.Result, error) {
			if m.State.IsSessionActive {
				return commands.Result{}, errors.New("stop the timer before switching mode")
			}
			m = m.setMode(model.TimerMode(args.Mode))
			return commands.Result{Message: "mode: " + string(m.State.Timer.Mode)}, nil
		},
		Duration: func(args commands.DurationArgs) (commands.Result, error) {
			if m.State.IsSessionActive {
				return commands.Result{}, errors.New("stop the timer before changing the duration")
			}
			m = m.setDuration(args.Minutes)
			return commands.Result{Message: fmt.Sprintf("duration: %d min", args.Minutes)}, nil
		},
	}

	res, err := commands.Execute(cmd, handlers)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("command error: %v", err), IsError: true}
		return m, teaCmd
	}
	if res.Message != "" && !m.Status.IsError {
		m.Status = StatusBar{Text: res.Message}
	}
	return m, teaCmd
}

func (m Model) openImportPrompt() (Model, tea.Cmd) {
	m.Importing = true
	m.importInput.SetValue("")
	m.importInput.Focus()
	return m, textinput.Blink
}

func (m Model) handleImportKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Importing = false
		m.importInput.Blur()
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.importInput.Value())
		m.Importing = false
		m.importInput.Blur()
		if path == "" {
			return m, nil
		}
		return m.runImport(path)
	}
	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}
