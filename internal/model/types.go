// Package model defines shared data structures.
package model

import "time"

// Config defines play settings.
type Config struct {
	Difficulty string
	Seed       int64
	Plain      bool
	LogLevel   string
	Board      ScoreFilter
}

// ScoreFilter narrows scoreboard queries.
type ScoreFilter struct {
	Tier string
	Last int
}

// RoundResult captures a finished round.
type RoundResult struct {
	StartedAt time.Time
	EndedAt   time.Time
	Tier      string
	MaxTries  int
	Target    int
	Attempts  int
	Won       bool
	Guesses   []int
}

// RoundAggregate summarizes a recorded round for reporting.
type RoundAggregate struct {
	RoundID    int64
	EndedAt    time.Time
	Tier       string
	MaxTries   int
	Target     int
	Attempts   int
	Won        bool
	DurationMs int64
	Guesses    []int
}

// TierAggregate aggregates rounds played on one tier.
type TierAggregate struct {
	Tier         string
	Rounds       int
	Wins         int
	AttemptsSum  int
	BestAttempts int
}
