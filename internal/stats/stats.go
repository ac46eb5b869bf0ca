// Package stats contains scoreboard calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/verte-zerg/guessmaster/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Summary aggregates the rounds played in this process.
type Summary struct {
	Rounds      int
	Wins        int
	Losses      int
	WinRate     float64
	AvgAttempts float64
	Best        int
	BestTier    string
	Streak      int
	BestStreak  int
}

// WinRate returns wins/rounds, or 0 when no rounds were played.
func WinRate(wins, rounds int) float64 {
	if rounds <= 0 {
		return 0
	}
	return float64(wins) / float64(rounds)
}

// Summarize computes the scoreboard summary. Rounds must be in play order.
func Summarize(rounds []model.RoundAggregate) Summary {
	var s Summary
	attemptsOnWins := 0
	for _, r := range rounds {
		s.Rounds++
		if !r.Won {
			s.Losses++
			s.Streak = 0
			continue
		}
		s.Wins++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		attemptsOnWins += r.Attempts
		if s.Best == 0 || r.Attempts < s.Best {
			s.Best = r.Attempts
			s.BestTier = r.Tier
		}
	}
	s.WinRate = WinRate(s.Wins, s.Rounds)
	if s.Wins > 0 {
		s.AvgAttempts = float64(attemptsOnWins) / float64(s.Wins)
	}
	return s
}

// AttemptSeries returns the attempts used per round.
func AttemptSeries(rounds []model.RoundAggregate) []float64 {
	out := make([]float64, len(rounds))
	for i, r := range rounds {
		out[i] = float64(r.Attempts)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary block for rounds.
func RenderSummary(w io.Writer, rounds []model.RoundAggregate) error {
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	s := Summarize(rounds)
	lines := []string{
		"Scoreboard",
		fmt.Sprintf("Rounds: %d", s.Rounds),
		fmt.Sprintf("Won: %d  Lost: %d", s.Wins, s.Losses),
		fmt.Sprintf("Win rate: %.1f%%", s.WinRate*100),
	}
	if s.Wins > 0 {
		lines = append(lines,
			fmt.Sprintf("Avg tries on wins: %.2f", s.AvgAttempts),
			fmt.Sprintf("Best: %d (%s)", s.Best, s.BestTier),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Streak: %d  Best streak: %d", s.Streak, s.BestStreak),
		fmt.Sprintf("Tries: [%s]", Sparkline(AttemptSeries(rounds))),
		"",
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TierRows formats per-tier aggregates as table cells.
func TierRows(aggs []model.TierAggregate) [][]string {
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		avg := "-"
		best := "-"
		if agg.Rounds > 0 {
			avg = fmt.Sprintf("%.1f", float64(agg.AttemptsSum)/float64(agg.Rounds))
		}
		if agg.BestAttempts > 0 {
			best = fmt.Sprintf("%d", agg.BestAttempts)
		}
		rows = append(rows, []string{
			strings.ToUpper(agg.Tier),
			fmt.Sprintf("%d", agg.Rounds),
			fmt.Sprintf("%d", agg.Wins),
			fmt.Sprintf("%.1f%%", WinRate(agg.Wins, agg.Rounds)*100),
			avg,
			best,
		})
	}
	return rows
}

// TierHeaders are the column titles for TierRows.
var TierHeaders = []string{"Tier", "Rounds", "Won", "Win %", "Avg Tries", "Best"}

// RenderTierTable prints per-tier aggregates.
func RenderTierTable(w io.Writer, aggs []model.TierAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No tier stats yet.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Tier"); err != nil {
		return err
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(TierHeaders, TierRows(aggs), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RecentHeaders are the column titles for RecentRows.
var RecentHeaders = []string{"#", "Tier", "Result", "Tries", "Target", "Time", "Guesses"}

// RecentRows formats rounds with their guess history as table cells.
func RecentRows(rounds []model.RoundAggregate) [][]string {
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		result := "LOST"
		if r.Won {
			result = "WON"
		}
		guesses := make([]string, len(r.Guesses))
		for i, g := range r.Guesses {
			guesses[i] = strconv.Itoa(g)
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.RoundID, 10),
			strings.ToUpper(r.Tier),
			result,
			fmt.Sprintf("%d/%d", r.Attempts, r.MaxTries),
			strconv.Itoa(r.Target),
			FormatDuration(r.DurationMs),
			strings.Join(guesses, " "),
		})
	}
	return rows
}

// FormatDuration renders a round duration rounded to whole seconds.
func FormatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	d := (time.Duration(ms) * time.Millisecond).Round(time.Second)
	if d < time.Second {
		return "<1s"
	}
	return d.String()
}

// RenderRecent prints the latest rounds with their guesses.
func RenderRecent(w io.Writer, rounds []model.RoundAggregate) error {
	if len(rounds) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recent"); err != nil {
		return err
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(RecentHeaders, RecentRows(rounds), rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
