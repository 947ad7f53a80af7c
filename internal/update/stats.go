package update

import (
	"time"

	"github.com/vibetimer/vibe/internal/model"
)

type WeekStats struct {
	// Minutes per weekday, Monday first.
	Minutes [7]int
	Total   int
	AxisMax int
}

// weekStart is the local Monday midnight of the week containing t.
func weekStart(t time.Time) time.Time {
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return localMidnight(t).AddDate(0, 0, -offset)
}

func computeWeekStats(sessions []model.Session, now time.Time) WeekStats {
	start := weekStart(now)
	var ws WeekStats
	for _, s := range sessions {
		d := s.Date.In(now.Location())
		if d.Before(start) || !d.Before(start.AddDate(0, 0, 7)) {
			continue
		}
		idx := (int(d.Weekday()) + 6) % 7
		ws.Minutes[idx] += s.Duration
	}
	max := 0
	for _, mins := range ws.Minutes {
		ws.Total += mins
		if mins > max {
			max = mins
		}
	}
	ws.AxisMax = axisMax(max)
	return ws
}

// axisMax picks the y-axis ceiling for the weekly chart so short days are
// still visible and long days do not clip.
func axisMax(maxMinutes int) int {
	switch {
	case maxMinutes == 0:
		return 10
	case maxMinutes <= 5:
		return 5
	case maxMinutes <= 10:
		return 10
	case maxMinutes <= 15:
		return 15
	case maxMinutes <= 30:
		return 30
	case maxMinutes <= 60:
		return 60
	default:
		return (maxMinutes + 29) / 30 * 30
	}
}

// computeHeatmap covers the last 365 local days, padded backwards to the
// preceding Sunday so the grid starts on a full week. Levels: 0 none, 1 any,
// 2 from 30 min, 3 from 60 min, 4 from 120 min.
func computeHeatmap(sessions []model.Session, now time.Time) []int {
	perDay := make(map[string]int)
	for _, s := range sessions {
		key := s.Date.In(now.Location()).Format("2006-01-02")
		perDay[key] += s.Duration
	}

	start := localMidnight(now).AddDate(0, 0, -364)
	start = start.AddDate(0, 0, -int(start.Weekday()))

	days := int(localMidnight(now).Sub(start).Hours()/24+0.5) + 1
	levels := make([]int, 0, days)
	for i := 0; i < days; i++ {
		mins := perDay[start.AddDate(0, 0, i).Format("2006-01-02")]
		levels = append(levels, heatLevel(mins))
	}
	return levels
}

func heatLevel(minutes int) int {
	switch {
	case minutes >= 120:
		return 4
	case minutes >= 60:
		return 3
	case minutes >= 30:
		return 2
	case minutes > 0:
		return 1
	default:
		return 0
	}
}

func totalMinutes(sessions []model.Session) int {
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}
