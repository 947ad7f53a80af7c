package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/i18n"
	"github.com/vibetimer/vibe/internal/model"
	"github.com/vibetimer/vibe/internal/shop"
)

func (m Model) toggleTheme() Model {
	if m.State.Settings.Theme == model.ThemeDark {
		return m.setTheme(model.ThemeLight)
	}
	return m.setTheme(model.ThemeDark)
}

func (m Model) setTheme(theme model.Theme) Model {
	if theme != model.ThemeLight && theme != model.ThemeDark {
		return m
	}
	m.State.Settings.Theme = theme
	m.persist()
	return m
}

func (m Model) toggleLanguage() Model {
	if m.State.Settings.Language == model.LangDe {
		return m.setLanguage(model.LangEn)
	}
	return m.setLanguage(model.LangDe)
}

func (m Model) setLanguage(lang model.Language) Model {
	if lang != model.LangDe && lang != model.LangEn {
		return m
	}
	m.State.Settings.Language = lang
	m.persist()
	return m
}

func (m Model) switchScreen(screen model.Screen) Model {
	if m.State.IsSessionActive || !screen.IsValid() {
		return m
	}
	// Screen focus is part of the document but only written out with the
	// next real mutation; flipping screens alone does not hit the store.
	m.State.CurrentScreen = screen
	return m
}

func (m Model) handleShopKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	items := shop.Items()
	switch msg.String() {
	case "j", "down":
		if m.ShopCursor < len(items)-1 {
			m.ShopCursor++
		}
	case "k", "up":
		if m.ShopCursor > 0 {
			m.ShopCursor--
		}
	case "enter":
		return m.buySelected(), nil
	}
	return m, nil
}

func (m Model) buySelected() Model {
	items := shop.Items()
	if m.ShopCursor < 0 || m.ShopCursor >= len(items) {
		return m
	}
	item := items[m.ShopCursor]
	if !model.Purchase(&m.State.UserData, item.Emoji, item.Price) {
		return m
	}
	m.persist()
	m.Status = StatusBar{Text: item.Emoji + " " + item.Name(m.State.Settings.Language)}
	return m
}

// selectionOptions is the next-plant list: random first, then every unlocked
// item in unlock order.
func (m Model) selectionOptions() []string {
	opts := make([]string, 0, len(m.State.UserData.UnlockedEmojis)+1)
	opts = append(opts, model.RandomEmoji)
	opts = append(opts, m.State.UserData.UnlockedEmojis...)
	return opts
}

func (m Model) openSelection() Model {
	m.Selecting = true
	m.SelectCursor = 0
	for i, opt := range m.selectionOptions() {
		if opt == m.State.SelectedEmoji {
			m.SelectCursor = i
			break
		}
	}
	return m
}

func (m Model) handleSelectionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	opts := m.selectionOptions()
	switch msg.String() {
	case "esc":
		m.Selecting = false
	case "j", "down":
		if m.SelectCursor < len(opts)-1 {
			m.SelectCursor++
		}
	case "k", "up":
		if m.SelectCursor > 0 {
			m.SelectCursor--
		}
	case "enter":
		m.State.SelectedEmoji = opts[m.SelectCursor]
		m.Selecting = false
		m.persist()
	}
	return m, nil
}

// selectedPlantName is the display name of the next-plant widget entry.
func (m Model) selectedPlantName() string {
	lang := m.State.Settings.Language
	if m.State.SelectedEmoji == model.RandomEmoji {
		return i18n.T(lang, "widget_random_name")
	}
	if item, ok := shop.Find(m.State.SelectedEmoji); ok {
		return item.Name(lang)
	}
	return m.State.SelectedEmoji
}
