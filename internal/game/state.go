package game

import (
	"strconv"
	"strings"
)

// Range of targets and accepted guesses, inclusive.
const (
	MinNumber = 1
	MaxNumber = 100
)

// Status is the phase of a session.
type Status int

// Session phases.
const (
	StatusSelecting Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusSelecting:
		return "selecting"
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome classifies the result of the last operation.
type Outcome int

// Outcomes. OutcomeIgnored is returned for guesses outside a running round.
const (
	OutcomeNone Outcome = iota
	OutcomeIgnored
	OutcomeInvalidInput
	OutcomeTooLow
	OutcomeTooHigh
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalidInput:
		return "invalid_input"
	case OutcomeTooLow:
		return "too_low"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is a snapshot of a session. Transitions return a new value and never
// modify the receiver's Guesses slice.
type State struct {
	Tier     Tier
	Target   int
	Attempts int
	Status   Status
	Last     Outcome
	Guesses  []int
}

// NewState returns a session waiting for a tier selection.
func NewState(target int) State {
	return State{Target: clampTarget(target), Status: StatusSelecting}
}

// MaxTries returns the attempt budget of the selected tier.
func (s State) MaxTries() int {
	return s.Tier.MaxTries()
}

// Remaining returns the attempts left in the round.
func (s State) Remaining() int {
	left := s.MaxTries() - s.Attempts
	if left < 0 {
		return 0
	}
	return left
}

// Finished reports whether the round ended. Input is disabled exactly then.
func (s State) Finished() bool {
	return s.Status == StatusWon || s.Status == StatusLost
}

// Event is an input to Apply.
type Event interface {
	apply(State) (State, Outcome)
}

// StartEvent begins a round for Tier against Target.
type StartEvent struct {
	Tier   Tier
	Target int
}

// GuessEvent submits raw user input.
type GuessEvent struct {
	Raw string
}

// ResetEvent returns to tier selection with a fresh Target.
type ResetEvent struct {
	Target int
}

// Apply computes the state that follows e.
func Apply(s State, e Event) (State, Outcome) {
	if e == nil {
		return s, OutcomeIgnored
	}
	return e.apply(s)
}

func (e StartEvent) apply(s State) (State, Outcome) {
	if !e.Tier.Valid() {
		return s, OutcomeIgnored
	}
	return State{
		Tier:   e.Tier,
		Target: clampTarget(e.Target),
		Status: StatusInProgress,
	}, OutcomeNone
}

func (e ResetEvent) apply(State) (State, Outcome) {
	return NewState(e.Target), OutcomeNone
}

func (e GuessEvent) apply(s State) (State, Outcome) {
	if s.Status != StatusInProgress {
		return s, OutcomeIgnored
	}
	n, ok := ParseGuess(e.Raw)
	if !ok {
		s.Last = OutcomeInvalidInput
		return s, OutcomeInvalidInput
	}

	next := s
	next.Attempts = s.Attempts + 1
	next.Guesses = appendGuess(s.Guesses, n)

	switch {
	case n == s.Target:
		next.Status = StatusWon
		next.Last = OutcomeWon
	case next.Attempts >= s.MaxTries():
		next.Status = StatusLost
		next.Last = OutcomeLost
	case n < s.Target:
		next.Last = OutcomeTooLow
	default:
		next.Last = OutcomeTooHigh
	}
	return next, next.Last
}

// ParseGuess reads an optional sign and the leading decimal digits of raw,
// ignoring surrounding whitespace and anything after the digits, so "4.5"
// reads as 4 and "1e2" as 1. The value must lie in [MinNumber, MaxNumber].
func ParseGuess(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	if n < MinNumber || n > MaxNumber {
		return 0, false
	}
	return n, true
}

func appendGuess(guesses []int, n int) []int {
	out := make([]int, len(guesses), len(guesses)+1)
	copy(out, guesses)
	return append(out, n)
}

func clampTarget(n int) int {
	if n < MinNumber {
		return MinNumber
	}
	if n > MaxNumber {
		return MaxNumber
	}
	return n
}
