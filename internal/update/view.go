package update

import (
	"fmt"

	"github.com/vibetimer/vibe/internal/i18n"
	"github.com/vibetimer/vibe/internal/model"
	"github.com/vibetimer/vibe/internal/shop"
	"github.com/vibetimer/vibe/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		if m.Status.Text != "" {
			return m.Status.Text + "\n"
		}
		return "bye\n"
	}

	lang := m.State.Settings.Language
	dark := m.State.Settings.Theme == model.ThemeDark

	danger := ""
	if model.StreakInDanger(m.State.UserData, m.now()) {
		danger = " !"
	}
	header := fmt.Sprintf("vibe | %s | 💰 %d | 🔥 %d%s",
		i18n.T(lang, "nav_"+string(m.State.CurrentScreen)),
		m.State.UserData.Coins,
		m.State.UserData.Streak,
		danger,
	)

	var left string
	switch m.State.CurrentScreen {
	case model.ScreenForest:
		left = m.renderForestView()
	case model.ScreenShop:
		left = m.renderShopView()
	case model.ScreenStats:
		left = m.renderStatsView()
	default:
		left = m.renderFocusView()
	}

	return views.RenderApp(views.AppData{
		Header:     header,
		LeftPane:   left,
		RightPane:  m.renderRightPane(dark),
		StatusLine: m.statusLine(),
		Footer:     m.footer(lang),
		Dark:       dark,
	})
}

// renderRightPane shows at most one overlay; the summary fills the idle gap.
func (m Model) renderRightPane(dark bool) string {
	lang := m.State.Settings.Language
	switch {
	case m.Palette.Active:
		return views.RenderCommandPalette(true, m.commandInput.View())
	case m.Importing:
		return views.RenderImportPrompt(views.ImportPromptData{
			Label:     i18n.T(lang, "settings_import"),
			InputView: m.importInput.View(),
		})
	case m.Selecting:
		return m.renderSelectionSheet()
	case m.HelpVisible:
		return views.RenderHelpPanel(views.HelpPanelData{
			CurrentScreen: i18n.T(lang, "nav_"+string(m.State.CurrentScreen)),
			Bindings:      []string{},
			HelpView:      m.helpModel.FullHelpView(defaultKeyMap.FullHelp()),
			AboutView:     views.RenderMarkdown(aboutMarkdown, dark),
		})
	default:
		return m.renderSummary()
	}
}

func (m Model) renderFocusView() string {
	lang := m.State.Settings.Language
	isPomodoro := m.State.Timer.Mode == model.ModePomodoro

	modeKey := "focus_stopwatch"
	if isPomodoro {
		modeKey = "focus_pomodoro"
	}
	startStop := i18n.T(lang, "focus_start")
	if m.State.IsSessionActive {
		startStop = i18n.T(lang, "focus_stop")
	}

	durations := make([]views.DurationOption, 0, len(pomodoroDurations))
	for _, d := range pomodoroDurations {
		durations = append(durations, views.DurationOption{
			Minutes:  d,
			Selected: d*60 == m.State.Timer.PomodoroDuration,
		})
	}

	quote := ""
	if m.State.IsSessionActive {
		quote = m.quote
	}

	pct := m.progressPct()
	return views.RenderFocusPanel(views.FocusPanelData{
		ModeLabel:      i18n.T(lang, modeKey),
		IsPomodoro:     isPomodoro,
		Timer:          m.timerDisplay(),
		Quote:          quote,
		Durations:      durations,
		ProgressView:   m.timerProgress.ViewAs(pct),
		ProgressPct:    int(pct * 100),
		Running:        m.State.IsSessionActive && isPomodoro,
		StartStopLabel: startStop,
	})
}

func (m Model) renderForestView() string {
	lang := m.State.Settings.Language
	planted := make([]string, 0, len(m.State.Sessions))
	for _, s := range m.State.Sessions {
		planted = append(planted, s.Emoji)
	}

	widgetEmoji := m.State.SelectedEmoji
	if widgetEmoji == model.RandomEmoji {
		widgetEmoji = "🎲"
	}

	return views.RenderForestPanel(views.ForestPanelData{
		WidgetHeader: i18n.T(lang, "widget_header"),
		WidgetEmoji:  widgetEmoji,
		WidgetName:   m.selectedPlantName(),
		PlantedLabel: i18n.T(lang, "widget_planted"),
		PlantedCount: len(planted),
		Planted:      planted,
	})
}

func (m Model) renderShopView() string {
	lang := m.State.Settings.Language
	coins := m.State.UserData.Coins

	items := shop.Items()
	data := views.ShopPanelData{Coins: coins, Items: make([]views.ShopItemData, 0, len(items))}
	for i, item := range items {
		data.Items = append(data.Items, views.ShopItemData{
			Emoji:      item.Emoji,
			Price:      item.Price,
			Name:       item.Name(lang),
			Owned:      model.Unlocked(m.State.UserData, item.Emoji),
			Affordable: coins >= item.Price,
			Cursor:     i == m.ShopCursor,
			OwnedLabel: i18n.T(lang, "shop_unlocked"),
			BuyLabel:   i18n.T(lang, "shop_buy"),
		})
	}
	return views.RenderShopPanel(data)
}

func (m Model) renderStatsView() string {
	lang := m.State.Settings.Language
	now := m.now()

	week := computeWeekStats(m.State.Sessions, now)
	total := totalMinutes(m.State.Sessions)

	return views.RenderStatsPanel(views.StatsPanelData{
		StreakLabel:     i18n.T(lang, "stat_streak"),
		Streak:          m.State.UserData.Streak,
		StreakDaysLabel: i18n.T(lang, "stat_streak_days"),
		TotalLabel:      i18n.T(lang, "stat_total"),
		TotalSessions:   len(m.State.Sessions),
		HoursLabel:      i18n.T(lang, "stat_total_hours"),
		TotalHours:      fmt.Sprintf("%.1f", float64(total)/60),
		WeeklyLabel:     i18n.T(lang, "stat_weekly"),
		WeeklyTotal:     week.Total,
		DayLabels:       dayLabels(lang),
		WeeklyMinutes:   week.Minutes,
		AxisMax:         week.AxisMax,
		YearlyLabel:     i18n.T(lang, "stat_yearly"),
		HeatmapLevels:   computeHeatmap(m.State.Sessions, now),
	})
}

func (m Model) renderSelectionSheet() string {
	lang := m.State.Settings.Language
	opts := m.selectionOptions()
	data := views.SelectionSheetData{
		Title:   i18n.T(lang, "widget_select_title"),
		Options: make([]views.SelectionOption, 0, len(opts)),
	}
	for i, opt := range opts {
		emoji, name := opt, opt
		if opt == model.RandomEmoji {
			emoji = "🎲"
			name = i18n.T(lang, "widget_random_name")
		} else if item, ok := shop.Find(opt); ok {
			name = item.Name(lang)
		}
		data.Options = append(data.Options, views.SelectionOption{
			Emoji:    emoji,
			Name:     name,
			Selected: opt == m.State.SelectedEmoji,
			Cursor:   i == m.SelectCursor,
		})
	}
	return views.RenderSelectionSheet(data)
}

func (m Model) renderSummary() string {
	lang := m.State.Settings.Language
	today := 0
	todayKey := m.now().Format("2006-01-02")
	for _, s := range m.State.Sessions {
		if s.Date.In(m.now().Location()).Format("2006-01-02") == todayKey {
			today += s.Duration
		}
	}
	return fmt.Sprintf("%s: %d %s\n%s: %d\n%s: %d min\n\n%s",
		i18n.T(lang, "stat_streak"), m.State.UserData.Streak, i18n.T(lang, "stat_streak_days"),
		i18n.T(lang, "widget_planted"), len(m.State.Sessions),
		i18n.T(lang, "summary_today"), today,
		m.helpModel.ShortHelpView(defaultKeyMap.ShortHelp()),
	)
}

func (m Model) statusLine() string {
	if m.Status.Text == "" {
		return " "
	}
	if m.Status.IsError {
		return "error: " + m.Status.Text
	}
	return m.Status.Text
}

// footer collapses to the bare stop hint during a session so a running timer
// stays distraction free.
func (m Model) footer(lang model.Language) string {
	if m.State.IsSessionActive {
		return "[space] " + i18n.T(lang, "focus_stop")
	}
	return fmt.Sprintf("[1]%s [2]%s [3]%s [4]%s [?]help [q]quit",
		i18n.T(lang, "nav_focus"),
		i18n.T(lang, "nav_forest"),
		i18n.T(lang, "nav_shop"),
		i18n.T(lang, "nav_stats"),
	)
}

func dayLabels(lang model.Language) [7]string {
	if lang == model.LangDe {
		return [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}
	}
	return [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}
