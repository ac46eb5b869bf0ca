package game

import "testing"

func TestMessage(t *testing.T) {
	cases := []struct {
		name  string
		state State
		want  string
	}{
		{"none", State{}, ""},
		{"ignored", State{Last: OutcomeIgnored}, ""},
		{"invalid", State{Last: OutcomeInvalidInput}, "ERROR! ENTER NUMBER 1-100"},
		{"won single", State{Tier: TierEasy, Attempts: 1, Last: OutcomeWon}, "★ WINNER! 1 TRY! ★"},
		{"won plural", State{Tier: TierEasy, Attempts: 4, Last: OutcomeWon}, "★ WINNER! 4 TRIES! ★"},
		{"lost", State{Tier: TierInsane, Target: 13, Attempts: 5, Last: OutcomeLost}, "☠ GAME OVER! NUMBER WAS 13 ☠"},
		{"low single", State{Tier: TierInsane, Attempts: 4, Last: OutcomeTooLow}, "↑ TOO LOW! 1 TRY LEFT ↑"},
		{"low plural", State{Tier: TierHard, Attempts: 1, Last: OutcomeTooLow}, "↑ TOO LOW! 6 TRIES LEFT ↑"},
		{"high", State{Tier: TierMedium, Attempts: 2, Last: OutcomeTooHigh}, "↓ TOO HIGH! 8 TRIES LEFT ↓"},
	}
	for _, tc := range cases {
		if got := Message(tc.state); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestActionLabel(t *testing.T) {
	if got := ActionLabel(State{Status: StatusInProgress}); got != "► GUESS ◄" {
		t.Fatalf("unexpected in-progress label: %q", got)
	}
	if got := ActionLabel(State{Status: StatusWon}); got != "★ YOU WIN! ★" {
		t.Fatalf("unexpected won label: %q", got)
	}
	if got := ActionLabel(State{Status: StatusLost}); got != "☠ GAME OVER ☠" {
		t.Fatalf("unexpected lost label: %q", got)
	}
}

func TestCounter(t *testing.T) {
	if Counter(3) != "03" || Counter(15) != "15" || Counter(0) != "00" {
		t.Fatalf("unexpected counter formatting")
	}
}
