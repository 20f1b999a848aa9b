package personalization

import "testing"

func TestToneForArchetype(t *testing.T) {
	cases := []struct {
		archetype string
		want      Tone
	}{
		{"straight_shooter", ToneDirect},
		{"steady_builder", ToneCalm},
		{"analyst", ToneData},
		{"competitor", ToneHype},
		{"minimalist", ToneQuiet},
		{"", ToneCalm},
		{"unknown_value", ToneCalm},
	}
	for _, tc := range cases {
		if got := ToneForArchetype(tc.archetype); got != tc.want {
			t.Fatalf("ToneForArchetype(%q)=%q, want %q", tc.archetype, got, tc.want)
		}
	}
}

func TestTipForPhaseBoundaries(t *testing.T) {
	cases := []struct {
		streak int
		want   string
	}{
		{0, toneTips[ToneCalm].Early},
		{6, toneTips[ToneCalm].Early},
		{7, toneTips[ToneCalm].Mid},
		{29, toneTips[ToneCalm].Mid},
		{30, toneTips[ToneCalm].Strong},
		{365, toneTips[ToneCalm].Strong},
	}
	for _, tc := range cases {
		if got := TipFor(ToneCalm, tc.streak); got != tc.want {
			t.Fatalf("TipFor(calm, %d)=%q, want %q", tc.streak, got, tc.want)
		}
	}
}

func TestTipForUnknownToneFallsBackToCalm(t *testing.T) {
	if got := TipFor(Tone("growly"), 3); got != toneTips[ToneCalm].Early {
		t.Fatalf("TipFor(unknown)=%q", got)
	}
}

func TestCopyTablesComplete(t *testing.T) {
	for _, tone := range []Tone{ToneDirect, ToneCalm, ToneData, ToneHype, ToneQuiet} {
		cs, ok := copySets[tone]
		if !ok {
			t.Fatalf("missing copy set for tone %q", tone)
		}
		if cs.Welcome == "" || cs.MissedDay == "" || cs.StreakGoing == "" ||
			cs.NoStreak == "" || cs.CheckInNudge == "" || cs.KeepGoing == "" {
			t.Fatalf("tone %q has empty copy slots: %+v", tone, cs)
		}
		tips, ok := toneTips[tone]
		if !ok || tips.Early == "" || tips.Mid == "" || tips.Strong == "" {
			t.Fatalf("tone %q has missing tips: %+v", tone, tips)
		}
	}
}

func TestGreeting(t *testing.T) {
	cases := []struct {
		name string
		who  string
		hour int
		want string
	}{
		{"morning", "Maya", 0, "Good morning, Maya"},
		{"late_morning", "Maya", 11, "Good morning, Maya"},
		{"noon", "Maya", 12, "Good afternoon, Maya"},
		{"afternoon_edge", "Maya", 16, "Good afternoon, Maya"},
		{"evening_start", "Maya", 17, "Good evening, Maya"},
		{"night", "Maya", 23, "Good evening, Maya"},
		{"missing_name", "", 9, "Good morning, there"},
		{"blank_name", "   ", 20, "Good evening, there"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Greeting(tc.who, tc.hour); got != tc.want {
				t.Fatalf("Greeting(%q, %d)=%q, want %q", tc.who, tc.hour, got, tc.want)
			}
		})
	}
}

func TestFocusAreaLabel(t *testing.T) {
	if got := FocusAreaLabel("mind"); got != "your mind" {
		t.Fatalf("FocusAreaLabel(mind)=%q", got)
	}
	if got := FocusAreaLabel(""); got != "your goals" {
		t.Fatalf("FocusAreaLabel(empty)=%q", got)
	}
	if got := FocusAreaLabel("finance"); got != "your goals" {
		t.Fatalf("FocusAreaLabel(unmapped)=%q", got)
	}
}

func TestFormatCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mental_clarity", "Mental Clarity"},
		{"mind", "Mind"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatCategory(tc.in); got != tc.want {
			t.Fatalf("FormatCategory(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}
