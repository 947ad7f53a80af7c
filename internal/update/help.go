package update

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	StartStop key.Binding
	Mode      key.Binding
	Duration  key.Binding
	Screens   key.Binding
	Shop      key.Binding
	Plant     key.Binding
	Theme     key.Binding
	Language  key.Binding
	Export    key.Binding
	Import    key.Binding
	Palette   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Screens, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartStop, k.Mode, k.Duration, k.Screens},
		{k.Shop, k.Plant, k.Theme, k.Language},
		{k.Export, k.Import, k.Palette, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	StartStop: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/stop")),
	Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pomodoro/stopwatch")),
	Duration:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "cycle duration")),
	Screens:   key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "screens")),
	Shop:      key.NewBinding(key.WithKeys("j", "k", "enter"), key.WithHelp("j/k/enter", "browse & buy")),
	Plant:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pick next plant")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Language:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "language")),
	Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export backup")),
	Import:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import backup")),
	Palette:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

const aboutMarkdown = `# vibe

Focused minutes grow a forest. Finish a session, earn a coin per minute,
spend coins on new plants and keep the daily streak alive.

- **Pomodoro** counts down a fixed block and pays out on completion.
- **Stopwatch** counts up and banks whole minutes when stopped.
- Backups are plain JSON; export with ` + "`e`" + `, restore with ` + "`i`" + `.
`
