// Package game implements the number guessing state machine.
package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier is a difficulty setting with a fixed attempt budget.
type Tier int

// Tiers in menu order. TierNone marks a session with no round selected.
const (
	TierNone Tier = iota
	TierEasy
	TierMedium
	TierHard
	TierInsane
)

type tierSetting struct {
	name     string
	label    string
	maxTries int
}

var tierSettings = map[Tier]tierSetting{
	TierEasy:   {name: "easy", label: "EASY", maxTries: 15},
	TierMedium: {name: "medium", label: "MEDIUM", maxTries: 10},
	TierHard:   {name: "hard", label: "HARD", maxTries: 7},
	TierInsane: {name: "insane", label: "INSANE", maxTries: 5},
}

// Tiers returns the selectable tiers in menu order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard, TierInsane}
}

// Valid reports whether t is one of the four selectable tiers.
func (t Tier) Valid() bool {
	_, ok := tierSettings[t]
	return ok
}

// MaxTries returns the attempt budget, or 0 for TierNone.
func (t Tier) MaxTries() int {
	return tierSettings[t].maxTries
}

// Label returns the display label.
func (t Tier) Label() string {
	if !t.Valid() {
		return ""
	}
	return tierSettings[t].label
}

// String returns the lower-case name used in flags and config.
func (t Tier) String() string {
	if !t.Valid() {
		return "none"
	}
	return tierSettings[t].name
}

// ParseTier accepts a tier name (any case) or its 1-based menu index.
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return TierNone, fmt.Errorf("tier is empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		tiers := Tiers()
		if n >= 1 && n <= len(tiers) {
			return tiers[n-1], nil
		}
		return TierNone, fmt.Errorf("unknown tier %q (use 1-%d)", s, len(tiers))
	}
	for _, t := range Tiers() {
		if t.String() == s {
			return t, nil
		}
	}
	return TierNone, fmt.Errorf("unknown tier %q (available: %s)", s, strings.Join(TierNames(), ", "))
}

// TierNames returns the names of the selectable tiers in menu order.
func TierNames() []string {
	tiers := Tiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return names
}
