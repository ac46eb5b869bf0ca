package game

import "testing"

func TestTierSettings(t *testing.T) {
	cases := []struct {
		tier     Tier
		name     string
		label    string
		maxTries int
	}{
		{TierEasy, "easy", "EASY", 15},
		{TierMedium, "medium", "MEDIUM", 10},
		{TierHard, "hard", "HARD", 7},
		{TierInsane, "insane", "INSANE", 5},
	}
	for _, tc := range cases {
		if tc.tier.String() != tc.name || tc.tier.Label() != tc.label || tc.tier.MaxTries() != tc.maxTries {
			t.Fatalf("unexpected settings for %s: %s/%d", tc.name, tc.tier.Label(), tc.tier.MaxTries())
		}
	}
	if TierNone.Valid() || TierNone.MaxTries() != 0 || TierNone.Label() != "" {
		t.Fatalf("TierNone must not carry settings")
	}
}

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"easy":   TierEasy,
		"MEDIUM": TierMedium,
		" Hard ": TierHard,
		"insane": TierInsane,
		"1":      TierEasy,
		"4":      TierInsane,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}
	for _, in := range []string{"", "0", "5", "nightmare"} {
		if _, err := ParseTier(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestTierNamesOrder(t *testing.T) {
	names := TierNames()
	want := []string{"easy", "medium", "hard", "insane"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order: %v", names)
		}
	}
}
