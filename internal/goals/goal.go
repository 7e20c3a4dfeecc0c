package goals

import (
	"strings"
	"time"
)

// GoalType selects which part of the challenge catalog applies to a user.
type GoalType string

const (
	GoalTypeLoseWeight          GoalType = "lose_weight"
	GoalTypeGainMass            GoalType = "gain_mass"
	GoalTypeImproveConditioning GoalType = "improve_conditioning"
)

func (gt GoalType) String() string {
	return string(gt)
}

func (gt GoalType) IsValid() bool {
	switch gt {
	case GoalTypeLoseWeight,
		GoalTypeGainMass,
		GoalTypeImproveConditioning:
		return true
	default:
		return false
	}
}

// ExperienceLevel drives which catalog challenges a user is eligible for.
type ExperienceLevel string

const (
	ExperienceLevelBeginner     ExperienceLevel = "beginner"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelAdvanced     ExperienceLevel = "advanced"
)

func (el ExperienceLevel) String() string {
	return string(el)
}

// ParseExperienceLevel normalizes a stored level. Unknown values are returned as-is,
// which the classifier treats as "no filtering".
func ParseExperienceLevel(s string) ExperienceLevel {
	return ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
}

// Goal is the user's active fitness goal. Exactly one experience level per active goal.
type Goal struct {
	ID              int             `json:"id"`
	UserID          int             `json:"userId"`
	GoalType        GoalType        `json:"goalType"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}
