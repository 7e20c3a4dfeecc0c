package challenges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/internal/telemetry/metrics"
	"github.com/2beens/fitchallenge/internal/telemetry/tracing"
	"github.com/2beens/fitchallenge/internal/workouts"
	"github.com/2beens/fitchallenge/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type assignmentsStore interface {
	FindInRange(ctx context.Context, userID int, from, to time.Time) (*Assignment, error)
	Get(ctx context.Context, userID, id int) (*Assignment, error)
	DeleteBefore(ctx context.Context, userID int, day time.Time) (int, error)
	Create(ctx context.Context, a Assignment) (*Assignment, error)
	MarkAccepted(ctx context.Context, userID, id int, day time.Time) (bool, error)
	MarkCompleted(ctx context.Context, userID, id int, day, completedAt time.Time) (bool, error)
	ListForUser(ctx context.Context, userID int) ([]Assignment, error)
}

type goalsFinder interface {
	FindActive(ctx context.Context, userID int) (*goals.Goal, error)
}

type workoutDeriver interface {
	Derive(ctx context.Context, userID int, challengeTitle string) ([]workouts.Workout, error)
	DeriveCompleted(ctx context.Context, userID int, challengeTitle string) ([]workouts.Workout, error)
}

type NewServiceParams struct {
	Assignments    assignmentsStore
	Goals          goalsFinder
	Catalog        catalogSource
	Deriver        workoutDeriver
	Selector       *Selector
	MetricsManager *metrics.Manager
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Location is where calendar days are observed; defaults to UTC.
	Location *time.Location
}

// Service runs the daily challenge lifecycle: one assignment per user per day, moving
// from pending to accepted to completed.
type Service struct {
	assignments    assignmentsStore
	goals          goalsFinder
	catalog        catalogSource
	deriver        workoutDeriver
	selector       *Selector
	metricsManager *metrics.Manager
	clock          func() time.Time
	loc            *time.Location
}

func NewService(params NewServiceParams) *Service {
	s := &Service{
		assignments:    params.Assignments,
		goals:          params.Goals,
		catalog:        params.Catalog,
		deriver:        params.Deriver,
		selector:       params.Selector,
		metricsManager: params.MetricsManager,
		clock:          params.Clock,
		loc:            params.Location,
	}
	if s.selector == nil {
		s.selector = NewSelector()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}

func (s *Service) Today() time.Time {
	return pkg.CalendarDay(s.clock(), s.loc)
}

// GetToday returns the user's assignment for today, creating it when missing.
// Assignments of earlier days are deleted before a new one is created.
func (s *Service) GetToday(ctx context.Context, userID int) (_ *Assignment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.gettoday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	today := s.Today()
	tomorrow := today.AddDate(0, 0, 1)

	existing, err := s.assignments.FindInRange(ctx, userID, today, tomorrow)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrAssignmentNotFound) {
		return nil, fmt.Errorf("find today's assignment: %w", err)
	}

	removed, err := s.assignments.DeleteBefore(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("delete stale assignments: %w", err)
	}
	if removed > 0 {
		log.Debugf("removed %d stale assignments of user %d", removed, userID)
		s.metricsManager.CounterStaleAssignments.Add(float64(removed))
	}

	goal, err := s.goals.FindActive(ctx, userID)
	if err != nil {
		if errors.Is(err, goals.ErrNoActiveGoal) {
			return nil, ErrNoActiveGoal
		}
		return nil, fmt.Errorf("find active goal: %w", err)
	}

	catalog, err := s.catalog.FindChallenges(ctx, goal.GoalType)
	if err != nil {
		return nil, fmt.Errorf("load catalog for %s: %w", goal.GoalType, err)
	}

	challenge, err := s.selector.Select(catalog, goal.GoalType, goal.ExperienceLevel)
	if err != nil {
		log.Warnf("no challenge for goal type %s, level %s (catalog size %d)", goal.GoalType, goal.ExperienceLevel, len(catalog))
		return nil, err
	}

	created, err := s.assignments.Create(ctx, Assignment{
		UserID:         userID,
		ChallengeID:    challenge.ID,
		AssignmentDate: today,
		CreatedAt:      s.clock(),
	})
	if err != nil {
		if !errors.Is(err, ErrAssignmentExists) {
			return nil, fmt.Errorf("create assignment: %w", err)
		}
		// a concurrent request created today's assignment first, use that one
		s.metricsManager.CounterCreateConflicts.Inc()
		winner, err := s.assignments.FindInRange(ctx, userID, today, tomorrow)
		if err != nil {
			return nil, fmt.Errorf("re-read today's assignment after conflict: %w", err)
		}
		return winner, nil
	}

	created.Challenge = challenge
	s.metricsManager.CounterAssignmentsCreated.Inc()
	span.SetAttributes(
		attribute.Int("assignment.id", created.ID),
		attribute.Int("challenge.id", challenge.ID),
	)

	return created, nil
}

// Accept moves today's pending assignment to accepted. Workout challenges also get their
// workout generated; a failure there is logged and does not undo the acceptance.
func (s *Service) Accept(ctx context.Context, userID, assignmentID int) (_ *ActionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.accept")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("assignment.id", assignmentID),
	)

	today := s.Today()
	a, err := s.assignments.Get(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := a.acceptError(today); err != nil {
		return nil, err
	}

	updated, err := s.assignments.MarkAccepted(ctx, userID, assignmentID, today)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, s.transitionLost(ctx, userID, assignmentID, (*Assignment).acceptError)
	}

	a.IsAccepted = true
	s.metricsManager.CounterAssignmentsAccepted.Inc()

	derived, err := s.deriver.Derive(ctx, userID, a.Challenge.Title)
	if err != nil {
		log.Warnf("accept assignment %d of user %d: %s", assignmentID, userID, err)
	}

	return &ActionResponse{
		AssignmentView:      NewAssignmentView(*a, today),
		DerivedWorkoutCount: len(derived),
	}, nil
}

// Complete moves today's accepted assignment to completed. Workouts derived for a workout
// challenge are stored as completed.
func (s *Service) Complete(ctx context.Context, userID, assignmentID int) (_ *ActionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.challenges.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", userID),
		attribute.Int("assignment.id", assignmentID),
	)

	now := s.clock()
	today := pkg.CalendarDay(now, s.loc)
	a, err := s.assignments.Get(ctx, userID, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := a.completeError(today); err != nil {
		return nil, err
	}

	updated, err := s.assignments.MarkCompleted(ctx, userID, assignmentID, today, now)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, s.transitionLost(ctx, userID, assignmentID, (*Assignment).completeError)
	}

	a.IsCompleted = true
	a.CompletedAt = &now
	s.metricsManager.CounterAssignmentsCompleted.Inc()

	derived, err := s.deriver.DeriveCompleted(ctx, userID, a.Challenge.Title)
	if err != nil {
		log.Warnf("complete assignment %d of user %d: %s", assignmentID, userID, err)
	}

	return &ActionResponse{
		AssignmentView:      NewAssignmentView(*a, today),
		DerivedWorkoutCount: len(derived),
	}, nil
}

// transitionLost explains a guarded update that changed nothing: the row moved on
// (or went away) between the read and the update.
func (s *Service) transitionLost(
	ctx context.Context,
	userID, assignmentID int,
	guard func(*Assignment, time.Time) error,
) error {
	current, err := s.assignments.Get(ctx, userID, assignmentID)
	if err != nil {
		return err
	}
	if err := guard(current, s.Today()); err != nil {
		return err
	}
	return fmt.Errorf("assignment %d changed concurrently: %w", assignmentID, ErrAssignmentNotFound)
}

// History lists the user's stored assignments, newest first.
func (s *Service) History(ctx context.Context, userID int) ([]AssignmentView, error) {
	list, err := s.assignments.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	views := make([]AssignmentView, 0, len(list))
	for _, a := range list {
		views = append(views, NewAssignmentView(a, today))
	}
	return views, nil
}
