package game

import (
	"time"

	"github.com/verte-zerg/guessmaster/internal/model"
)

// TargetSource draws round targets.
type TargetSource interface {
	Target() int
}

// Session owns the current State and draws a target for every new round.
type Session struct {
	state     State
	src       TargetSource
	now       func() time.Time
	startedAt time.Time
	endedAt   time.Time
}

// NewSession returns a session in the selecting phase.
func NewSession(src TargetSource) *Session {
	return &Session{
		state: NewState(src.Target()),
		src:   src,
		now:   time.Now,
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	return s.state
}

// Start begins a round for tier, from any phase.
func (s *Session) Start(tier Tier) {
	next, out := Apply(s.state, StartEvent{Tier: tier, Target: s.src.Target()})
	if out == OutcomeIgnored {
		return
	}
	s.state = next
	s.startedAt = s.now()
	s.endedAt = time.Time{}
}

// SubmitGuess applies raw input to the running round.
func (s *Session) SubmitGuess(raw string) Outcome {
	next, out := Apply(s.state, GuessEvent{Raw: raw})
	if next.Finished() && !s.state.Finished() {
		s.endedAt = s.now()
	}
	s.state = next
	return out
}

// Reset returns to tier selection.
func (s *Session) Reset() {
	s.state, _ = Apply(s.state, ResetEvent{Target: s.src.Target()})
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// Result summarizes the finished round. ok is false while a round is running
// or no round was started.
func (s *Session) Result() (model.RoundResult, bool) {
	if !s.state.Finished() {
		return model.RoundResult{}, false
	}
	guesses := make([]int, len(s.state.Guesses))
	copy(guesses, s.state.Guesses)
	return model.RoundResult{
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
		Tier:      s.state.Tier.String(),
		MaxTries:  s.state.MaxTries(),
		Target:    s.state.Target,
		Attempts:  s.state.Attempts,
		Won:       s.state.Status == StatusWon,
		Guesses:   guesses,
	}, true
}
