package personalization

import (
	"reflect"
	"testing"
)

func TestNormalizeMotivation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mental Clarity", "mental_clarity"},
		{"  mental   clarity  ", "mental_clarity"},
		{"LESS_STRESS", "less_stress"},
		{"focus", "focus"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeMotivation(tc.in); got != tc.want {
			t.Fatalf("NormalizeMotivation(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRecommendMindFocus(t *testing.T) {
	got := Recommend("mind", []string{"mental_clarity"})
	if len(got) == 0 {
		t.Fatalf("expected recommendations for mind/mental_clarity")
	}
	if len(got) > 6 {
		t.Fatalf("expected at most 6 recommendations, got %d", len(got))
	}

	ids := make(map[string]int, len(got))
	for i, tpl := range got {
		ids[tpl.ID] = i
	}
	// Journaling and breathing templates carry both the focus area and
	// the motivation tag, so they must be present.
	if _, ok := ids["morning_journal"]; !ok {
		t.Fatalf("expected morning_journal in %v", got)
	}
	if _, ok := ids["breathing_reset"]; !ok {
		t.Fatalf("expected breathing_reset in %v", got)
	}
	// A focus+motivation match (5) outranks a motivation-only match (2).
	if walkIdx, ok := ids["daily_walk"]; ok {
		if walkIdx < ids["morning_journal"] {
			t.Fatalf("daily_walk ranked above morning_journal: %v", got)
		}
	}
}

func TestRecommendCaseAndWhitespace(t *testing.T) {
	a := Recommend("MIND", []string{"Mental  Clarity"})
	b := Recommend("mind", []string{"mental_clarity"})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalization mismatch:\n%v\n%v", a, b)
	}
}

func TestRecommendUnknownVocabulary(t *testing.T) {
	if got := Recommend("spaceflight", []string{"zero_gravity"}); len(got) != 0 {
		t.Fatalf("expected empty result for unknown vocabulary, got %v", got)
	}
}

func TestRecommendStableAcrossCalls(t *testing.T) {
	first := Recommend("lifestyle", []string{"less_stress", "better_routine"})
	for i := 0; i < 5; i++ {
		again := Recommend("lifestyle", []string{"less_stress", "better_routine"})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("call %d differs:\n%v\n%v", i, first, again)
		}
	}
}

func TestRecommendTieBreakKeepsCatalogOrder(t *testing.T) {
	// Motivation-only matches score identically, so their relative order
	// must follow catalog declaration order.
	got := Recommend("", []string{"creative_expression"})
	wantOrder := []string{"daily_sketch", "write_100_words", "instrument_practice"}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d results, got %v", len(wantOrder), got)
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q (full: %v)", i, got[i].ID, id, got)
		}
	}
}

func TestRecommendAdditiveMotivationScoring(t *testing.T) {
	// gratitude_three matches 3 motivation tags (6 points) and should
	// outrank templates with a focus match plus one tag (5 points).
	got := Recommend("body", []string{"self_reflection", "becoming_my_best_self", "calm"})
	if len(got) == 0 {
		t.Fatalf("expected results")
	}
	if got[0].ID != "gratitude_three" {
		t.Fatalf("expected gratitude_three first, got %v", got)
	}
}

func TestRecommendTruncatesToSix(t *testing.T) {
	got := Recommend("mind", []string{"mental_clarity", "less_stress", "calm", "better_sleep", "self_reflection"})
	if len(got) != 6 {
		t.Fatalf("expected exactly 6 results, got %d: %v", len(got), got)
	}
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID("deep_work_block")
	if !ok || tpl.Category != "work" {
		t.Fatalf("TemplateByID(deep_work_block)=%+v, %v", tpl, ok)
	}
	if _, ok := TemplateByID("does_not_exist"); ok {
		t.Fatalf("expected ok=false for unknown id")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, tpl := range Templates() {
		if _, dup := seen[tpl.ID]; dup {
			t.Fatalf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = struct{}{}
	}
}
