package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitchallenge/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type ListParams struct {
	UserID int
	Page   int
	Size   int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", workout.UserID))

	if workout.Source == "" {
		workout.Source = SourceUserCreated
	}
	if workout.Exercises == nil {
		workout.Exercises = []Exercise{}
	}

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout
				(user_id, name, description, type, duration, calories, exercises, notes,
				 scheduled_date, is_completed, completed_at, source, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`,
		workout.UserID, workout.Name, workout.Description, workout.Type, workout.Duration, workout.Calories,
		exercisesJson, workout.Notes, workout.ScheduledDate, workout.IsCompleted, workout.CompletedAt,
		workout.Source, workout.CreatedAt,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

// MarkCompleted flags the given workouts of the user as completed and returns
// how many rows changed.
func (r *Repo) MarkCompleted(ctx context.Context, userID int, ids []int, completedAt time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.markcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("workouts.count", len(ids)),
	)

	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET is_completed = true, completed_at = $1
			WHERE user_id = $2 AND id = ANY($3);`,
		completedAt, userID, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("update workouts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, ErrWorkoutNotFound
	}

	return int(tag.RowsAffected()), nil
}

func (r *Repo) ListForUser(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", params.UserID),
		attribute.Int("page", params.Page),
		attribute.Int("size", params.Size),
	)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Size < 1 {
		params.Size = 20
	}

	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1;`,
		params.UserID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, type, duration, calories, exercises, notes,
				scheduled_date, is_completed, completed_at, source, created_at
			FROM workout
			WHERE user_id = $1
			ORDER BY scheduled_date DESC, id DESC
			LIMIT $2 OFFSET $3;`,
		params.UserID, params.Size, (params.Page-1)*params.Size,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	list, err := pgx.CollectRows(rows, scanWorkout)
	if err != nil {
		return nil, 0, fmt.Errorf("collect workouts: %w", err)
	}

	return list, total, nil
}

func scanWorkout(row pgx.CollectableRow) (Workout, error) {
	var w Workout
	var exercisesJson []byte
	if err := row.Scan(
		&w.ID, &w.UserID, &w.Name, &w.Description, &w.Type, &w.Duration, &w.Calories,
		&exercisesJson, &w.Notes, &w.ScheduledDate, &w.IsCompleted, &w.CompletedAt, &w.Source, &w.CreatedAt,
	); err != nil {
		return Workout{}, err
	}
	if len(exercisesJson) > 0 {
		if err := json.Unmarshal(exercisesJson, &w.Exercises); err != nil {
			return Workout{}, fmt.Errorf("unmarshal exercises of workout %d: %w", w.ID, err)
		}
	}
	return w, nil
}
