package workouts

import "time"

type WorkoutType string

const (
	WorkoutTypeStrength    WorkoutType = "Strength"
	WorkoutTypeCardio      WorkoutType = "Cardio"
	WorkoutTypeFunctional  WorkoutType = "Functional"
	WorkoutTypeEndurance   WorkoutType = "Endurance"
	WorkoutTypeFlexibility WorkoutType = "Flexibility"
	WorkoutTypeBalance     WorkoutType = "Balance"
	WorkoutTypeCore        WorkoutType = "Core"
)

func (wt WorkoutType) IsValid() bool {
	switch wt {
	case WorkoutTypeStrength,
		WorkoutTypeCardio,
		WorkoutTypeFunctional,
		WorkoutTypeEndurance,
		WorkoutTypeFlexibility,
		WorkoutTypeBalance,
		WorkoutTypeCore:
		return true
	default:
		return false
	}
}

// SourceUserCreated is the source of every stored workout, including the ones
// generated from daily challenges.
const SourceUserCreated = "user-created"

type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight,omitempty"`
}

type Workout struct {
	ID            int         `json:"id"`
	UserID        int         `json:"userId"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Type          WorkoutType `json:"type"`
	Duration      int         `json:"duration"`
	Calories      int         `json:"calories"`
	Exercises     []Exercise  `json:"exercises"`
	Notes         string      `json:"notes"`
	ScheduledDate time.Time   `json:"scheduledDate"`
	IsCompleted   bool        `json:"isCompleted"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
	Source        string      `json:"source"`
	CreatedAt     time.Time   `json:"createdAt"`
}
