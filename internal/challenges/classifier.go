package challenges

import (
	"strings"

	"github.com/2beens/fitchallenge/internal/goals"
)

// Title markers per experience level. A title may carry markers of several levels.
var levelMarkers = map[goals.ExperienceLevel][]string{
	goals.ExperienceLevelBeginner: {
		"5kg", "10kg", "1 repetição", "flexão", "corpo livre", "sem peso", "caminhada", "iniciante",
	},
	goals.ExperienceLevelIntermediate: {
		"15kg", "20kg", "25kg", "30kg", "5 repetições", "8 repetições", "10 repetições", "intermediário",
	},
	goals.ExperienceLevelAdvanced: {
		"40kg", "50kg", "60kg", "80kg", "100kg", "12 repetições", "15 repetições", "20 repetições", "avançado",
	},
}

// Looser set used when no catalog challenge matches a beginner's markers.
var beginnerFallbackMarkers = []string{
	"5kg", "10kg", "1 repetição", "2 repetições", "3 repetições", "flexão", "agachamento",
}

// IsEligible reports whether the challenge suits the experience level.
// Levels without a marker table accept every challenge.
func IsEligible(challenge CatalogChallenge, level goals.ExperienceLevel) bool {
	markers, ok := levelMarkers[level]
	if !ok {
		return true
	}
	return containsAny(challenge.Title, markers)
}

func containsAny(title string, markers []string) bool {
	lower := strings.ToLower(title)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
