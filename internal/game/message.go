package game

import "fmt"

// Message returns the feedback line for the last outcome in s.
func Message(s State) string {
	switch s.Last {
	case OutcomeInvalidInput:
		return fmt.Sprintf("ERROR! ENTER NUMBER %d-%d", MinNumber, MaxNumber)
	case OutcomeWon:
		return fmt.Sprintf("★ WINNER! %d %s! ★", s.Attempts, Pluralize(s.Attempts))
	case OutcomeLost:
		return fmt.Sprintf("☠ GAME OVER! NUMBER WAS %d ☠", s.Target)
	case OutcomeTooLow:
		left := s.Remaining()
		return fmt.Sprintf("↑ TOO LOW! %d %s LEFT ↑", left, Pluralize(left))
	case OutcomeTooHigh:
		left := s.Remaining()
		return fmt.Sprintf("↓ TOO HIGH! %d %s LEFT ↓", left, Pluralize(left))
	default:
		return ""
	}
}

// Pluralize returns the attempt unit for n.
func Pluralize(n int) string {
	if n == 1 {
		return "TRY"
	}
	return "TRIES"
}

// ActionLabel returns the submit button caption.
func ActionLabel(s State) string {
	switch s.Status {
	case StatusWon:
		return "★ YOU WIN! ★"
	case StatusLost:
		return "☠ GAME OVER ☠"
	default:
		return "► GUESS ◄"
	}
}

// Counter formats a USED/LEFT counter with two digits.
func Counter(n int) string {
	return fmt.Sprintf("%02d", n)
}

// RangeLabel describes the accepted range.
func RangeLabel() string {
	return fmt.Sprintf("%d-%d", MinNumber, MaxNumber)
}
