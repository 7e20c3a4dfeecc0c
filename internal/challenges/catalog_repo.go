package challenges

import (
	"context"
	"fmt"

	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// CatalogRepo reads the challenge catalog. Seed fills it from a catalog file.
type CatalogRepo struct {
	db *pgxpool.Pool
}

func NewCatalogRepo(db *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{
		db: db,
	}
}

func (r *CatalogRepo) FindChallenges(ctx context.Context, goalType goals.GoalType) (_ []CatalogChallenge, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.findchallenges")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal_type", goalType.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, description, points, goal_type, category, difficulty, duration, is_active
			FROM challenge
			WHERE goal_type = $1 AND is_active
			ORDER BY id;`,
		goalType,
	)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}

	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (CatalogChallenge, error) {
		var c CatalogChallenge
		err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Points, &c.GoalType, &c.Category, &c.Difficulty, &c.Duration, &c.IsActive)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect challenges: %w", err)
	}

	span.SetAttributes(attribute.Int("challenges.count", len(list)))
	return list, nil
}

// Seed inserts the challenges that are not in the catalog yet, matched by title and goal
// type, and returns how many were inserted. Existing rows are left as they are.
func (r *CatalogRepo) Seed(ctx context.Context, list []CatalogChallenge) (inserted int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("challenges.count", len(list)))

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range list {
			tag, err := tx.Exec(
				ctx,
				`INSERT INTO challenge (title, description, points, goal_type, category, difficulty, duration, is_active)
					SELECT $1::varchar, $2::text, $3::int, $4::varchar, $5::varchar, $6::varchar, $7::int, $8::boolean
					WHERE NOT EXISTS (SELECT 1 FROM challenge WHERE title = $1 AND goal_type = $4);`,
				c.Title, c.Description, c.Points, string(c.GoalType), c.Category, c.Difficulty, c.Duration, c.IsActive,
			)
			if err != nil {
				return fmt.Errorf("insert challenge %q: %w", c.Title, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}

	span.SetAttributes(attribute.Int("challenges.inserted", inserted))
	return inserted, nil
}
