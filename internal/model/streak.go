package model

import (
	"math"
	"time"
)

const dayFormat = "2006-01-02"

// DaysBetween returns the number of local calendar days between two
// timestamps. Both are truncated to local midnight first; the division is
// rounded to the nearest whole day so daylight-saving transitions (23h/25h
// days) do not produce off-by-one gaps.
func DaysBetween(from, to time.Time) int {
	diff := atMidnight(to).Sub(atMidnight(from))
	return int(math.Round(diff.Hours() / 24))
}

// CheckStreak is the once-per-launch daily check. It only decays the streak
// for missed days and never increments it. The check is idempotent within a
// calendar day: if it already ran today it does nothing. Returns true when
// the document changed and should be persisted.
func CheckStreak(u *UserData, now time.Time) bool {
	today := now.Format(dayFormat)
	if u.LastCheckedDate == today {
		return false
	}

	if u.LastSessionDate != nil {
		if DaysBetween(*u.LastSessionDate, now) > 1 {
			u.Streak = 0
		}
	} else {
		u.Streak = 0
	}

	u.LastCheckedDate = today
	return true
}

// UpdateStreak runs on every completed session. The rule ordering matters:
// the "prior session was today but streak is 0" case restores the streak to 1
// because CheckStreak may have zeroed it earlier the same day, before any
// session completed. Keep the cases in this exact order.
func UpdateStreak(u *UserData, now time.Time) {
	today := atMidnight(now)

	var last *time.Time
	if u.LastSessionDate != nil {
		t := atMidnight(*u.LastSessionDate)
		last = &t
	}
	u.LastSessionDate = &today

	if last == nil {
		u.Streak = 1
		return
	}
	if last.Equal(today) {
		if u.Streak == 0 {
			u.Streak = 1
		}
		return
	}

	switch gap := DaysBetween(*last, today); {
	case gap == 1:
		u.Streak++
	case gap > 1:
		u.Streak = 1
	}
}

// StreakInDanger reports whether the streak is alive but no session has been
// completed yet today, meaning it will reset tomorrow without one.
func StreakInDanger(u UserData, now time.Time) bool {
	if u.Streak == 0 || u.LastSessionDate == nil {
		return false
	}
	return atMidnight(*u.LastSessionDate).Before(atMidnight(now))
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
