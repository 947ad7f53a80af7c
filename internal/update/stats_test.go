package update

import (
	"testing"
	"time"

	"github.com/vibetimer/vibe/internal/model"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestComputeWeekStats(t *testing.T) {
	// 2024-03-14 is a Thursday; the week runs Mon 11th through Sun 17th.
	now := day(2024, time.March, 14, 12)
	sessions := []model.Session{
		{Date: day(2024, time.March, 11, 9), Duration: 25},  // Monday
		{Date: day(2024, time.March, 14, 10), Duration: 50}, // Thursday
		{Date: day(2024, time.March, 8, 10), Duration: 99},  // previous week
		{Date: day(2024, time.March, 18, 10), Duration: 99}, // next week
	}

	ws := computeWeekStats(sessions, now)
	if ws.Minutes[0] != 25 {
		t.Fatalf("expected 25 min on Monday, got %d", ws.Minutes[0])
	}
	if ws.Minutes[3] != 50 {
		t.Fatalf("expected 50 min on Thursday, got %d", ws.Minutes[3])
	}
	if ws.Total != 75 {
		t.Fatalf("expected 75 min total, got %d", ws.Total)
	}
	if ws.AxisMax != 60 {
		t.Fatalf("expected axis max 60, got %d", ws.AxisMax)
	}
}

func TestAxisMax(t *testing.T) {
	cases := []struct {
		max  int
		want int
	}{
		{0, 10}, {3, 5}, {5, 5}, {7, 10}, {12, 15}, {20, 30},
		{30, 30}, {45, 60}, {60, 60}, {61, 90}, {100, 120}, {200, 210},
	}
	for _, tc := range cases {
		if got := axisMax(tc.max); got != tc.want {
			t.Errorf("axisMax(%d) = %d, want %d", tc.max, got, tc.want)
		}
	}
}

func TestComputeHeatmap(t *testing.T) {
	now := day(2024, time.March, 14, 12)
	sessions := []model.Session{
		{Date: day(2024, time.March, 14, 8), Duration: 130},
		{Date: day(2024, time.March, 13, 8), Duration: 45},
		{Date: day(2024, time.March, 12, 8), Duration: 10},
	}

	levels := computeHeatmap(sessions, now)
	if len(levels) < 365 {
		t.Fatalf("heatmap must cover at least a year, got %d days", len(levels))
	}
	last := len(levels) - 1
	if levels[last] != 4 {
		t.Fatalf("expected level 4 today, got %d", levels[last])
	}
	if levels[last-1] != 2 {
		t.Fatalf("expected level 2 yesterday, got %d", levels[last-1])
	}
	if levels[last-2] != 1 {
		t.Fatalf("expected level 1 two days ago, got %d", levels[last-2])
	}
	if levels[last-3] != 0 {
		t.Fatalf("expected empty day, got %d", levels[last-3])
	}
}

func TestHeatLevelThresholds(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{0, 0}, {1, 1}, {29, 1}, {30, 2}, {59, 2}, {60, 3}, {119, 3}, {120, 4},
	}
	for _, tc := range cases {
		if got := heatLevel(tc.minutes); got != tc.want {
			t.Errorf("heatLevel(%d) = %d, want %d", tc.minutes, got, tc.want)
		}
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{day(2024, time.March, 14, 12), day(2024, time.March, 11, 0)}, // Thursday
		{day(2024, time.March, 11, 0), day(2024, time.March, 11, 0)},  // Monday itself
		{day(2024, time.March, 17, 23), day(2024, time.March, 11, 0)}, // Sunday
	}
	for _, tc := range cases {
		if got := weekStart(tc.in); !got.Equal(tc.want) {
			t.Errorf("weekStart(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
