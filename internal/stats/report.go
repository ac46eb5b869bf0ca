package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/guessmaster/internal/model"
	"github.com/verte-zerg/guessmaster/internal/store"
)

// RecentRounds is how many rounds carry their guess history in a Report.
const RecentRounds = 5

// Report contains precomputed data for scoreboard rendering.
type Report struct {
	Rounds  []model.RoundAggregate
	Tiers   []model.TierAggregate
	Recent  []model.RoundAggregate
	Summary Summary
}

// BuildReport loads and prepares data for scoreboard rendering.
func BuildReport(ctx context.Context, st *store.Store, filter model.ScoreFilter) (Report, error) {
	rounds, err := st.ListRounds(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	tiers, err := st.ListTierAggregates(ctx, filter)
	if err != nil {
		return Report{}, err
	}
	recent, err := loadRecent(ctx, st, rounds)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Rounds:  rounds,
		Tiers:   tiers,
		Recent:  recent,
		Summary: Summarize(rounds),
	}, nil
}

// loadRecent returns the last RecentRounds rounds, newest first, with guesses.
func loadRecent(ctx context.Context, st *store.Store, rounds []model.RoundAggregate) ([]model.RoundAggregate, error) {
	n := len(rounds)
	if n > RecentRounds {
		n = RecentRounds
	}
	recent := make([]model.RoundAggregate, 0, n)
	for i := len(rounds) - 1; i >= len(rounds)-n; i-- {
		round := rounds[i]
		guesses, err := st.ListGuesses(ctx, round.RoundID)
		if err != nil {
			return nil, fmt.Errorf("failed to load guesses for round %d: %w", round.RoundID, err)
		}
		round.Guesses = guesses
		recent = append(recent, round)
	}
	return recent, nil
}

// Render writes the summary and the per-tier table.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Rounds); err != nil {
		return err
	}
	if len(r.Rounds) == 0 {
		return nil
	}
	if err := RenderTierTable(w, r.Tiers); err != nil {
		return err
	}
	return RenderRecent(w, r.Recent)
}
