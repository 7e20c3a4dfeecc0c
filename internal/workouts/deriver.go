package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitchallenge/internal/telemetry/metrics"
	"github.com/2beens/fitchallenge/internal/telemetry/tracing"
	"github.com/2beens/fitchallenge/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=deriver_mocks_test.go -package=workouts_test

// ErrDerivationFailure marks a workout that could not be persisted. Callers treat it as non-fatal.
var ErrDerivationFailure = errors.New("workout derivation failure")

type workoutsStore interface {
	Create(ctx context.Context, workout Workout) (*Workout, error)
	MarkCompleted(ctx context.Context, userID int, ids []int, completedAt time.Time) (int, error)
}

type DeriverOption func(*Deriver)

func WithClock(clock func() time.Time) DeriverOption {
	return func(d *Deriver) {
		d.clock = clock
	}
}

func WithLocation(loc *time.Location) DeriverOption {
	return func(d *Deriver) {
		d.loc = loc
	}
}

// Deriver turns workout challenges into workouts scheduled for the next day.
type Deriver struct {
	store          workoutsStore
	metricsManager *metrics.Manager
	clock          func() time.Time
	loc            *time.Location
}

func NewDeriver(store workoutsStore, metricsManager *metrics.Manager, opts ...DeriverOption) *Deriver {
	d := &Deriver{
		store:          store,
		metricsManager: metricsManager,
		clock:          time.Now,
		loc:            time.UTC,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Derive creates the workouts the challenge title maps to. Titles without a workout keyword
// or without a template yield nothing. The returned slice holds only the workouts actually
// stored; a storage error is wrapped with ErrDerivationFailure.
func (d *Deriver) Derive(ctx context.Context, userID int, challengeTitle string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.deriver.derive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	if !IsWorkoutChallenge(challengeTitle) {
		return nil, nil
	}

	tmpl, ok := LookupTemplate(challengeTitle)
	if !ok {
		log.Debugf("workout challenge [%s] has no template", challengeTitle)
		return nil, nil
	}

	now := d.clock()
	workout := tmpl.workout(userID)
	workout.ScheduledDate = pkg.CalendarDay(now, d.loc).AddDate(0, 0, 1)
	workout.CreatedAt = now

	created, err := d.store.Create(ctx, workout)
	if err != nil {
		d.metricsManager.CounterDerivationFailures.Inc()
		return nil, fmt.Errorf("%w: create workout [%s]: %w", ErrDerivationFailure, tmpl.Name, err)
	}

	d.metricsManager.CounterDerivedWorkouts.WithLabelValues(string(created.Type)).Inc()
	span.SetAttributes(attribute.Int("workout.id", created.ID))

	return []Workout{*created}, nil
}

// DeriveCompleted derives the workouts and marks them completed right away.
func (d *Deriver) DeriveCompleted(ctx context.Context, userID int, challengeTitle string) ([]Workout, error) {
	derived, err := d.Derive(ctx, userID, challengeTitle)
	if err != nil || len(derived) == 0 {
		return derived, err
	}

	ids := make([]int, 0, len(derived))
	for _, w := range derived {
		ids = append(ids, w.ID)
	}

	completedAt := d.clock()
	if _, err := d.store.MarkCompleted(ctx, userID, ids, completedAt); err != nil {
		d.metricsManager.CounterDerivationFailures.Inc()
		return derived, fmt.Errorf("%w: mark workouts %v completed: %w", ErrDerivationFailure, ids, err)
	}

	for i := range derived {
		derived[i].IsCompleted = true
		derived[i].CompletedAt = &completedAt
	}

	return derived, nil
}
