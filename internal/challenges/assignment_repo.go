package challenges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitchallenge/internal/telemetry/tracing"
	"github.com/2beens/fitchallenge/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const uniqueUserDateConstraint = "uq_daily_challenge_user_date"

const selectAssignmentColumns = `
	SELECT dc.id, dc.user_id, dc.challenge_id, dc.assignment_date, dc.is_accepted, dc.is_completed,
		dc.completed_at, dc.created_at,
		c.id, c.title, c.description, c.points, c.goal_type, c.category, c.difficulty, c.duration, c.is_active
	FROM daily_challenge dc
	JOIN challenge c ON c.id = dc.challenge_id`

type AssignmentRepo struct {
	db *pgxpool.Pool
}

func NewAssignmentRepo(db *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{
		db: db,
	}
}

// FindInRange returns the user's assignment dated in [from, to), or ErrAssignmentNotFound.
func (r *AssignmentRepo) FindInRange(ctx context.Context, userID int, from, to time.Time) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.findinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		selectAssignmentColumns+`
			WHERE dc.user_id = $1 AND dc.assignment_date >= $2 AND dc.assignment_date < $3
			ORDER BY dc.assignment_date DESC, dc.id DESC
			LIMIT 1;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query assignment: %w", err)
	}

	a, err := pgx.CollectOneRow(rows, scanAssignment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("collect assignment: %w", err)
	}

	return &a, nil
}

// Get returns the assignment only if it belongs to the user.
func (r *AssignmentRepo) Get(ctx context.Context, userID, id int) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("id", id),
	)

	rows, err := r.db.Query(
		ctx,
		selectAssignmentColumns+` WHERE dc.id = $1 AND dc.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query assignment: %w", err)
	}

	a, err := pgx.CollectOneRow(rows, scanAssignment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("collect assignment: %w", err)
	}

	return &a, nil
}

// DeleteBefore removes the user's assignments dated before the given day.
func (r *AssignmentRepo) DeleteBefore(ctx context.Context, userID int, day time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.deletebefore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM daily_challenge WHERE user_id = $1 AND assignment_date < $2;`,
		userID, day,
	)
	if err != nil {
		return 0, fmt.Errorf("delete stale assignments: %w", err)
	}

	span.SetAttributes(attribute.Int("deleted", int(tag.RowsAffected())))
	return int(tag.RowsAffected()), nil
}

// Create stores a new assignment. A second assignment for the same user and day is
// rejected with ErrAssignmentExists.
func (r *AssignmentRepo) Create(ctx context.Context, a Assignment) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", a.UserID),
		attribute.Int("challenge_id", a.ChallengeID),
	)

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO daily_challenge
				(user_id, challenge_id, assignment_date, is_accepted, is_completed, completed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		a.UserID, a.ChallengeID, a.AssignmentDate, a.IsAccepted, a.IsCompleted, a.CompletedAt, a.CreatedAt,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationOn(err, uniqueUserDateConstraint) {
			return nil, ErrAssignmentExists
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	span.SetAttributes(attribute.Int("id", id))

	a.ID = id
	return &a, nil
}

// MarkAccepted accepts the assignment only while it is still pending on the given day.
// It reports whether a row was updated.
func (r *AssignmentRepo) MarkAccepted(ctx context.Context, userID, id int, day time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.markaccepted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("id", id),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE daily_challenge SET is_accepted = true
			WHERE id = $1 AND user_id = $2 AND assignment_date = $3
				AND is_accepted = false AND is_completed = false;`,
		id, userID, day,
	)
	if err != nil {
		return false, fmt.Errorf("accept assignment: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkCompleted completes the assignment only while it is accepted and not completed on
// the given day. It reports whether a row was updated.
func (r *AssignmentRepo) MarkCompleted(ctx context.Context, userID, id int, day, completedAt time.Time) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.markcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("id", id),
	)

	tag, err := r.db.Exec(
		ctx,
		`UPDATE daily_challenge SET is_completed = true, completed_at = $4
			WHERE id = $1 AND user_id = $2 AND assignment_date = $3
				AND is_accepted = true AND is_completed = false;`,
		id, userID, day, completedAt,
	)
	if err != nil {
		return false, fmt.Errorf("complete assignment: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *AssignmentRepo) ListForUser(ctx context.Context, userID int) (_ []Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.challenges.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		selectAssignmentColumns+`
			WHERE dc.user_id = $1
			ORDER BY dc.assignment_date DESC, dc.id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}

	list, err := pgx.CollectRows(rows, scanAssignment)
	if err != nil {
		return nil, fmt.Errorf("collect assignments: %w", err)
	}

	return list, nil
}

func scanAssignment(row pgx.CollectableRow) (Assignment, error) {
	var a Assignment
	err := row.Scan(
		&a.ID, &a.UserID, &a.ChallengeID, &a.AssignmentDate, &a.IsAccepted, &a.IsCompleted,
		&a.CompletedAt, &a.CreatedAt,
		&a.Challenge.ID, &a.Challenge.Title, &a.Challenge.Description, &a.Challenge.Points,
		&a.Challenge.GoalType, &a.Challenge.Category, &a.Challenge.Difficulty, &a.Challenge.Duration,
		&a.Challenge.IsActive,
	)
	return a, err
}
