// Package i18n holds the static German/English UI strings and quotes.
package i18n

import "github.com/vibetimer/vibe/internal/model"

var tables = map[model.Language]map[string]string{
	model.LangDe: {
		"nav_focus": "Fokus", "nav_forest": "Wald", "nav_shop": "Shop", "nav_stats": "Statistik",
		"settings_theme": "Dark Mode / Light Mode", "settings_language": "Sprache",
		"settings_export": "Daten exportieren", "settings_import": "Daten importieren",
		"focus_start": "Start", "focus_stop": "Stopp",
		"focus_pomodoro": "Pomodoro", "focus_stopwatch": "Stoppuhr",
		"shop_buy": "Kaufen", "shop_unlocked": "Frei",
		"stat_streak": "Aktueller Streak", "stat_streak_days": "Tage",
		"stat_total": "Sitzungen gesamt", "stat_total_hours": "Stunden insgesamt",
		"stat_weekly": "Minuten diese Woche", "stat_yearly": "Jahresübersicht",
		"widget_header": "Pflanze als Nächstes:", "widget_planted": "Gepflanzt",
		"widget_random_name": "Zufällig", "widget_select_title": "Pflanze wählen",
		"summary_today": "Heute",
	},
	model.LangEn: {
		"nav_focus": "Focus", "nav_forest": "Forest", "nav_shop": "Shop", "nav_stats": "Stats",
		"settings_theme": "Dark Mode / Light Mode", "settings_language": "Language",
		"settings_export": "Export Data", "settings_import": "Import Data",
		"focus_start": "Start", "focus_stop": "Stop",
		"focus_pomodoro": "Pomodoro", "focus_stopwatch": "Stopwatch",
		"shop_buy": "Buy", "shop_unlocked": "Owned",
		"stat_streak": "Current Streak", "stat_streak_days": "Days",
		"stat_total": "Total Sessions", "stat_total_hours": "Total Hours",
		"stat_weekly": "Minutes this week", "stat_yearly": "Yearly Activity",
		"widget_header": "Plant next:", "widget_planted": "Planted",
		"widget_random_name": "Random", "widget_select_title": "Select Plant",
		"summary_today": "Today",
	},
}

var quotes = map[model.Language][]string{
	model.LangDe: {
		"Jeder Schritt zählt.",
		"Konzentration ist der Schlüssel.",
		"Bleib dran, du schaffst das!",
		"Eine Minute nach der anderen.",
		"Wachstum braucht Zeit und Fokus.",
	},
	model.LangEn: {
		"Every step counts.",
		"Concentration is the key.",
		"Keep going, you can do it!",
		"One minute at a time.",
		"Growth needs time and focus.",
	},
}

// T resolves a UI string for the given language, falling back to English and
// then to the key itself so a missing entry never blanks the UI.
func T(lang model.Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[model.LangEn][key]; ok {
		return s
	}
	return key
}

// Quotes returns the motivational quotes for the given language.
func Quotes(lang model.Language) []string {
	if q, ok := quotes[lang]; ok {
		return q
	}
	return quotes[model.LangEn]
}
