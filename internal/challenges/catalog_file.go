package challenges

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/2beens/fitchallenge/internal/goals"
)

type catalogFileEntry struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Points      int    `toml:"points"`
	GoalType    string `toml:"goal_type"`
	Category    string `toml:"category"`
	Difficulty  string `toml:"difficulty"`
	Duration    int    `toml:"duration"`
	Active      *bool  `toml:"active"`
}

type catalogFile struct {
	Challenges []catalogFileEntry `toml:"challenge"`
}

// LoadCatalogFile reads challenges from a TOML file with one [[challenge]] table per entry.
// Entries are active unless they say otherwise.
func LoadCatalogFile(path string) ([]CatalogChallenge, error) {
	var f catalogFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}
	return f.challenges()
}

// ParseCatalog is LoadCatalogFile for catalog contents already in memory.
func ParseCatalog(data string) ([]CatalogChallenge, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.challenges()
}

func (f catalogFile) challenges() ([]CatalogChallenge, error) {
	if len(f.Challenges) == 0 {
		return nil, errors.New("catalog has no challenges")
	}

	list := make([]CatalogChallenge, 0, len(f.Challenges))
	for i, e := range f.Challenges {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			return nil, fmt.Errorf("challenge #%d: missing title", i+1)
		}
		goalType := goals.GoalType(strings.TrimSpace(e.GoalType))
		if !goalType.IsValid() {
			return nil, fmt.Errorf("challenge %q: invalid goal type %q", title, e.GoalType)
		}

		active := true
		if e.Active != nil {
			active = *e.Active
		}
		list = append(list, CatalogChallenge{
			Title:       title,
			Description: e.Description,
			Points:      e.Points,
			GoalType:    goalType,
			Category:    e.Category,
			Difficulty:  e.Difficulty,
			Duration:    e.Duration,
			IsActive:    active,
		})
	}

	return list, nil
}
