// Package console provides a line-based game loop for pipes and dumb terminals.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessmaster/internal/game"
	"github.com/verte-zerg/guessmaster/internal/store"
)

const (
	bannerWidth = 36
	title       = "GUESS MASTER"
)

// Runner drives a game session from line input.
type Runner struct {
	session *game.Session
	store   *store.Store
	logger  zerolog.Logger

	out io.Writer
	err error
}

// New constructs a Runner. st may be nil to skip recording rounds.
func New(session *game.Session, st *store.Store, logger zerolog.Logger) *Runner {
	return &Runner{session: session, store: st, logger: logger}
}

// Run reads commands from in until EOF, ":quit" or ctx is done.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	r.out = out
	r.err = nil
	scanner := bufio.NewScanner(in)

	r.renderScreen()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.prompt()
		if r.err != nil {
			return fmt.Errorf("failed to write output: %w", r.err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			r.println()
			return r.writeErr()
		}
		if quit := r.handleLine(ctx, scanner.Text()); quit {
			return r.writeErr()
		}
	}
}

func (r *Runner) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return true
	case ":new":
		r.session.Reset()
		r.renderScreen()
		return false
	case ":replay":
		if tier := r.session.State().Tier; tier.Valid() {
			r.session.Start(tier)
			r.renderScreen()
		}
		return false
	}

	st := r.session.State()
	switch st.Status {
	case game.StatusSelecting:
		tier, err := game.ParseTier(line)
		if err != nil {
			r.printf("%s\n", strings.ToUpper(err.Error()))
			return false
		}
		r.session.Start(tier)
		r.renderScreen()
	case game.StatusInProgress:
		r.session.SubmitGuess(line)
		next := r.session.State()
		r.println(game.Message(next))
		if next.Finished() {
			r.recordRound(ctx)
			r.renderFinished()
		}
	default:
		switch strings.ToLower(line) {
		case "", "n":
			r.session.Reset()
			r.renderScreen()
		case "r":
			r.session.Start(st.Tier)
			r.renderScreen()
		case "q":
			return true
		default:
			r.println("PRESS ENTER FOR NEW GAME, R TO REPLAY, Q TO QUIT")
		}
	}
	return false
}

func (r *Runner) recordRound(ctx context.Context) {
	if r.store == nil {
		return
	}
	result, ok := r.session.Result()
	if !ok {
		return
	}
	if _, err := r.store.InsertRound(ctx, result); err != nil {
		r.logger.Warn().Err(err).Msg("failed to record round")
	}
}

func (r *Runner) renderScreen() {
	st := r.session.State()
	r.println(banner(title, bannerWidth))
	if st.Status == game.StatusSelecting {
		r.println(center("SELECT DIFFICULTY", bannerWidth))
		for i, tier := range game.Tiers() {
			r.printf("  %d) %s - %d TRIES\n", i+1, runewidth.FillRight(tier.Label(), 6), tier.MaxTries())
		}
		return
	}
	r.println(center(fmt.Sprintf("%s | %s", st.Tier.Label(), game.RangeLabel()), bannerWidth))
}

func (r *Runner) renderFinished() {
	st := r.session.State()
	r.println(banner(game.ActionLabel(st), bannerWidth))
	r.println("PRESS ENTER FOR NEW GAME, R TO REPLAY, Q TO QUIT")
}

func (r *Runner) prompt() {
	st := r.session.State()
	switch st.Status {
	case game.StatusSelecting:
		r.printf("TIER (1-%d)> ", len(game.Tiers()))
	case game.StatusInProgress:
		r.printf("USED %s | LEFT %s > ", game.Counter(st.Attempts), game.Counter(st.Remaining()))
	default:
		r.printf("⟲ NEW GAME ⟲ > ")
	}
}

func (r *Runner) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) println(args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintln(r.out, args...)
}

func (r *Runner) writeErr() error {
	if r.err != nil {
		return fmt.Errorf("failed to write output: %w", r.err)
	}
	return nil
}

// banner frames text in a box of the given inner width.
func banner(text string, width int) string {
	edge := "+" + strings.Repeat("-", width) + "+"
	return edge + "\n|" + center(text, width) + "|\n" + edge
}

// center pads text to width display cells.
func center(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return runewidth.Truncate(text, width, "")
	}
	left := (width - textWidth) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-textWidth-left)
}
