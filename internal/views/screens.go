package views

import (
	"fmt"
	"strings"
)

type DurationOption struct {
	Minutes  int
	Selected bool
}

type FocusPanelData struct {
	ModeLabel      string
	IsPomodoro     bool
	Timer          string
	Quote          string
	Durations      []DurationOption
	ProgressView   string
	ProgressPct    int
	Running        bool
	StartStopLabel string
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", data.ModeLabel))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	if data.IsPomodoro {
		opts := make([]string, 0, len(data.Durations))
		for _, opt := range data.Durations {
			mark := " "
			if opt.Selected {
				mark = "*"
			}
			opts = append(opts, fmt.Sprintf("[%s]%d min", mark, opt.Minutes))
		}
		b.WriteString("durations: " + strings.Join(opts, " ") + "\n")
	}
	if data.Running {
		b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	}
	if data.Quote != "" {
		b.WriteString(fmt.Sprintf("» %s\n", data.Quote))
	}
	b.WriteString(fmt.Sprintf("[space] %s\n", data.StartStopLabel))
	b.WriteString("actions: [m]mode [d]duration [1-4]screens")
	return strings.TrimSpace(b.String())
}

type ForestPanelData struct {
	WidgetHeader string
	WidgetEmoji  string
	WidgetName   string
	PlantedLabel string
	PlantedCount int
	Planted      []string
}

const forestRowWidth = 16

func RenderForestPanel(data ForestPanelData) string {
	var b strings.Builder
	b.WriteString("forest:\n")
	if len(data.Planted) == 0 {
		b.WriteString("(nothing planted yet)\n")
	}
	for i := 0; i < len(data.Planted); i += forestRowWidth {
		end := i + forestRowWidth
		if end > len(data.Planted) {
			end = len(data.Planted)
		}
		b.WriteString(strings.Join(data.Planted[i:end], " ") + "\n")
	}
	b.WriteString("\n" + data.WidgetHeader + "\n")
	b.WriteString(fmt.Sprintf("%s %s | %s: %d ›\n", data.WidgetEmoji, data.WidgetName, data.PlantedLabel, data.PlantedCount))
	b.WriteString("actions: [p]select plant")
	return strings.TrimSpace(b.String())
}

type ShopItemData struct {
	Emoji      string
	Price      int
	Name       string
	Owned      bool
	Affordable bool
	Cursor     bool
	OwnedLabel string
	BuyLabel   string
}

type ShopPanelData struct {
	Coins int
	Items []ShopItemData
}

func RenderShopPanel(data ShopPanelData) string {
	var b strings.Builder
	b.WriteString("shop:\n")
	b.WriteString(fmt.Sprintf("balance: 💰 %d\n", data.Coins))
	b.WriteString("actions: [j/k]move [enter]buy\n")
	for _, item := range data.Items {
		cursor := " "
		if item.Cursor {
			cursor = ">"
		}
		label := item.BuyLabel
		switch {
		case item.Owned:
			label = item.OwnedLabel
		case !item.Affordable:
			label = "—"
		}
		b.WriteString(fmt.Sprintf("%s %s %-18s 💰 %-6d %s\n", cursor, item.Emoji, item.Name, item.Price, label))
	}
	return strings.TrimSpace(b.String())
}

type StatsPanelData struct {
	StreakLabel     string
	Streak          int
	StreakDaysLabel string
	TotalLabel      string
	TotalSessions   int
	HoursLabel      string
	TotalHours      string
	WeeklyLabel     string
	WeeklyTotal     int
	DayLabels       [7]string
	WeeklyMinutes   [7]int
	AxisMax         int
	YearlyLabel     string
	HeatmapLevels   []int
}

const weeklyBarWidth = 30

var heatmapGlyphs = []string{"·", "░", "▒", "▓", "█"}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("%s: %d %s\n", data.StreakLabel, data.Streak, data.StreakDaysLabel))
	b.WriteString(fmt.Sprintf("%s: %d\n", data.TotalLabel, data.TotalSessions))
	b.WriteString(fmt.Sprintf("%s: %s h\n", data.HoursLabel, data.TotalHours))

	b.WriteString(fmt.Sprintf("\n%s (%d min, max %d):\n", data.WeeklyLabel, data.WeeklyTotal, data.AxisMax))
	for i, mins := range data.WeeklyMinutes {
		width := 0
		if data.AxisMax > 0 {
			width = mins * weeklyBarWidth / data.AxisMax
		}
		if width > weeklyBarWidth {
			width = weeklyBarWidth
		}
		b.WriteString(fmt.Sprintf("%-3s %s %d\n", data.DayLabels[i], strings.Repeat("█", width), mins))
	}

	b.WriteString(fmt.Sprintf("\n%s:\n", data.YearlyLabel))
	for i := 0; i < len(data.HeatmapLevels); i += 30 {
		end := i + 30
		if end > len(data.HeatmapLevels) {
			end = len(data.HeatmapLevels)
		}
		for _, level := range data.HeatmapLevels[i:end] {
			if level < 0 || level >= len(heatmapGlyphs) {
				level = 0
			}
			b.WriteString(heatmapGlyphs[level])
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

type SelectionOption struct {
	Emoji    string
	Name     string
	Selected bool
	Cursor   bool
}

type SelectionSheetData struct {
	Title   string
	Options []SelectionOption
}

func RenderSelectionSheet(data SelectionSheetData) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	b.WriteString("keys: [j/k]move [enter]select [esc]close\n")
	for _, opt := range data.Options {
		cursor := " "
		if opt.Cursor {
			cursor = ">"
		}
		mark := " "
		if opt.Selected {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%s[%s] %s %s\n", cursor, mark, opt.Emoji, opt.Name))
	}
	return strings.TrimSpace(b.String())
}

type ImportPromptData struct {
	Label     string
	InputView string
}

func RenderImportPrompt(data ImportPromptData) string {
	return fmt.Sprintf("%s:\n%s\nkeys: [enter]import [esc]cancel", data.Label, data.InputView)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s\nknown: export | import <path> | theme [light|dark] | lang <de|en> | mode <pomodoro|stopwatch> | duration <min>", inputView)
}

type HelpPanelData struct {
	CurrentScreen string
	Bindings      []string
	HelpView      string
	AboutView     string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s screen:\n%s\n%s\n%s",
		strings.ToLower(data.CurrentScreen),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
		data.AboutView,
	)
}
