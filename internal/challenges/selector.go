package challenges

import (
	"math/rand"

	"github.com/2beens/fitchallenge/internal/goals"
)

type SelectorOption func(*Selector)

// WithIntN replaces the random source. intN must return a value in [0, n).
func WithIntN(intN func(n int) int) SelectorOption {
	return func(s *Selector) {
		s.intN = intN
	}
}

type Selector struct {
	intN func(n int) int
}

func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{
		intN: rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks today's challenge for a goal out of the catalog. Only active challenges of
// the goal type are candidates; among them, the ones eligible for the level are drawn
// from uniformly. With no eligible challenge, beginners fall back to a looser marker set
// and every other level to all candidates. A beginner whose loose set is empty too gets
// all candidates, so a non-empty candidate list always yields a challenge.
func (s *Selector) Select(catalog []CatalogChallenge, goalType goals.GoalType, level goals.ExperienceLevel) (CatalogChallenge, error) {
	var candidates []CatalogChallenge
	for _, c := range catalog {
		if c.GoalType == goalType && c.IsActive {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return CatalogChallenge{}, ErrNoChallengeAvailable
	}

	var eligible []CatalogChallenge
	for _, c := range candidates {
		if IsEligible(c, level) {
			eligible = append(eligible, c)
		}
	}

	if len(eligible) == 0 {
		eligible = fallback(candidates, level)
	}

	return s.pick(eligible)
}

func fallback(candidates []CatalogChallenge, level goals.ExperienceLevel) []CatalogChallenge {
	if level != goals.ExperienceLevelBeginner {
		return candidates
	}

	var loose []CatalogChallenge
	for _, c := range candidates {
		if containsAny(c.Title, beginnerFallbackMarkers) {
			loose = append(loose, c)
		}
	}
	if len(loose) == 0 {
		return candidates
	}
	return loose
}

func (s *Selector) pick(from []CatalogChallenge) (CatalogChallenge, error) {
	if len(from) == 0 {
		return CatalogChallenge{}, ErrNoChallengeAvailable
	}
	return from[s.intN(len(from))], nil
}
