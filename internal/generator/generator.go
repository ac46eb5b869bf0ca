// Package generator draws hidden targets for rounds.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/guessmaster/internal/game"
)

// Generator produces uniformly distributed targets.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for reproducible rounds.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Target draws a value in [game.MinNumber, game.MaxNumber].
func (g *Generator) Target() int {
	return game.MinNumber + g.rnd.Intn(game.MaxNumber-game.MinNumber+1)
}
