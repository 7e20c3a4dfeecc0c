package challenges

import (
	"errors"

	"github.com/2beens/fitchallenge/internal/goals"
)

var (
	ErrNoActiveGoal         = goals.ErrNoActiveGoal
	ErrNoChallengeAvailable = errors.New("no challenge available")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAlreadyAccepted      = errors.New("assignment already accepted")
	ErrAlreadyCompleted     = errors.New("assignment already completed")
	ErrNotYetAccepted       = errors.New("assignment not yet accepted")

	// ErrAssignmentExists is returned by the store when the user already has an assignment for the day.
	ErrAssignmentExists = errors.New("assignment for the day already exists")
)
