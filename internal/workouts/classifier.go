package workouts

import "strings"

var workoutKeywords = []string{
	"treino",
	"força",
	"cardio",
	"hiit",
	"musculação",
	"exercício",
}

// IsWorkoutChallenge reports whether accepting a challenge with this title should
// produce a workout.
func IsWorkoutChallenge(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range workoutKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
