package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitchallenge/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNoActiveGoal = errors.New("no active goal")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// FindActive returns the user's active goal, or ErrNoActiveGoal.
func (r *Repo) FindActive(ctx context.Context, userID int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.findactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	goal := &Goal{}
	var level string
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, goal_type, experience_level, is_active, created_at
		FROM goal
		WHERE user_id = $1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1;`,
		userID,
	).Scan(&goal.ID, &goal.UserID, &goal.GoalType, &level, &goal.IsActive, &goal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveGoal
		}
		return nil, fmt.Errorf("query active goal: %w", err)
	}

	goal.ExperienceLevel = ParseExperienceLevel(level)
	return goal, nil
}
