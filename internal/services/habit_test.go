package services

import (
	"testing"
	"time"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return d
}

func TestComputeStreaks(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 0, 0, time.UTC)

	cases := []struct {
		name        string
		days        []string
		wantCurrent int
		wantLongest int
		wantTotal   int
	}{
		{
			name: "empty",
		},
		{
			name:        "single_today",
			days:        []string{"2026-08-30"},
			wantCurrent: 1,
			wantLongest: 1,
			wantTotal:   1,
		},
		{
			name:        "streak_ending_today",
			days:        []string{"2026-08-28", "2026-08-29", "2026-08-30"},
			wantCurrent: 3,
			wantLongest: 3,
			wantTotal:   3,
		},
		{
			name:        "streak_ending_yesterday_still_counts",
			days:        []string{"2026-08-27", "2026-08-28", "2026-08-29"},
			wantCurrent: 3,
			wantLongest: 3,
			wantTotal:   3,
		},
		{
			name:        "gap_breaks_current_streak",
			days:        []string{"2026-08-25", "2026-08-26", "2026-08-27"},
			wantCurrent: 0,
			wantLongest: 3,
			wantTotal:   3,
		},
		{
			name:        "longest_in_the_past",
			days:        []string{"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13", "2026-08-29", "2026-08-30"},
			wantCurrent: 2,
			wantLongest: 4,
			wantTotal:   6,
		},
		{
			name:        "duplicate_days_collapse",
			days:        []string{"2026-08-30", "2026-08-30", "2026-08-29"},
			wantCurrent: 2,
			wantLongest: 2,
			wantTotal:   2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := make([]time.Time, 0, len(tc.days))
			for _, d := range tc.days {
				days = append(days, day(t, d))
			}
			got := computeStreaks(days, now)
			if got.CurrentStreak != tc.wantCurrent {
				t.Fatalf("CurrentStreak=%d, want %d", got.CurrentStreak, tc.wantCurrent)
			}
			if got.LongestStreak != tc.wantLongest {
				t.Fatalf("LongestStreak=%d, want %d", got.LongestStreak, tc.wantLongest)
			}
			if got.TotalCheckIns != tc.wantTotal {
				t.Fatalf("TotalCheckIns=%d, want %d", got.TotalCheckIns, tc.wantTotal)
			}
		})
	}
}
