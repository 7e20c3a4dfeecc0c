package challenges

import (
	"time"

	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/pkg"
)

const dateLayout = "2006-01-02"

// CatalogChallenge is a challenge definition from the catalog. The engine never writes it.
type CatalogChallenge struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Points      int            `json:"points"`
	GoalType    goals.GoalType `json:"goalType"`
	Category    string         `json:"category"`
	Difficulty  string         `json:"difficulty"`
	Duration    int            `json:"duration"`
	IsActive    bool           `json:"isActive"`
}

type AssignmentState string

const (
	StateNoAssignmentToday AssignmentState = "no_assignment_today"
	StatePendingToday      AssignmentState = "pending"
	StateAcceptedToday     AssignmentState = "accepted"
	StateCompletedToday    AssignmentState = "completed"
)

// Assignment binds a user to one catalog challenge for one calendar day.
// AssignmentDate is always midnight UTC of that day.
type Assignment struct {
	ID             int
	UserID         int
	ChallengeID    int
	Challenge      CatalogChallenge
	AssignmentDate time.Time
	IsAccepted     bool
	IsCompleted    bool
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

func (a *Assignment) State(today time.Time) AssignmentState {
	switch {
	case a == nil || !pkg.SameCalendarDay(a.AssignmentDate, today):
		return StateNoAssignmentToday
	case a.IsCompleted:
		return StateCompletedToday
	case a.IsAccepted:
		return StateAcceptedToday
	default:
		return StatePendingToday
	}
}

// acceptError tells why the assignment cannot be accepted today, if it can't.
func (a *Assignment) acceptError(today time.Time) error {
	switch {
	case a == nil || !pkg.SameCalendarDay(a.AssignmentDate, today):
		return ErrAssignmentNotFound
	case a.IsCompleted:
		return ErrAlreadyCompleted
	case a.IsAccepted:
		return ErrAlreadyAccepted
	default:
		return nil
	}
}

// completeError tells why the assignment cannot be completed today, if it can't.
// Acceptance is checked first: an unaccepted assignment is never completable.
func (a *Assignment) completeError(today time.Time) error {
	switch {
	case a == nil || !pkg.SameCalendarDay(a.AssignmentDate, today):
		return ErrAssignmentNotFound
	case !a.IsAccepted:
		return ErrNotYetAccepted
	case a.IsCompleted:
		return ErrAlreadyCompleted
	default:
		return nil
	}
}

type ChallengeSummary struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Points      int            `json:"points"`
	GoalType    goals.GoalType `json:"goalType"`
	Difficulty  string         `json:"difficulty"`
	Category    string         `json:"category"`
	Duration    int            `json:"duration"`
}

type AssignmentView struct {
	ID          int              `json:"id"`
	Challenge   ChallengeSummary `json:"challenge"`
	Date        string           `json:"date"`
	State       AssignmentState  `json:"state"`
	IsAccepted  bool             `json:"isAccepted"`
	IsCompleted bool             `json:"isCompleted"`
	CompletedAt *time.Time       `json:"completedAt"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type ActionResponse struct {
	AssignmentView
	DerivedWorkoutCount int `json:"derivedWorkoutCount"`
}

func NewAssignmentView(a Assignment, today time.Time) AssignmentView {
	return AssignmentView{
		ID: a.ID,
		Challenge: ChallengeSummary{
			ID:          a.Challenge.ID,
			Title:       a.Challenge.Title,
			Description: a.Challenge.Description,
			Points:      a.Challenge.Points,
			GoalType:    a.Challenge.GoalType,
			Difficulty:  a.Challenge.Difficulty,
			Category:    a.Challenge.Category,
			Duration:    a.Challenge.Duration,
		},
		Date:        a.AssignmentDate.Format(dateLayout),
		State:       a.State(today),
		IsAccepted:  a.IsAccepted,
		IsCompleted: a.IsCompleted,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
	}
}
