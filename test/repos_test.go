//go:build integration_test || all_tests

package test

import (
	"context"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitchallenge/internal/challenges"
	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/internal/workouts"
	"github.com/2beens/fitchallenge/pkg"
)

func (s *IntegrationTestSuite) TestAssignmentRepo() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	repo := challenges.NewAssignmentRepo(s.dbPool)
	// inactive, so it never shows up in selections of the http tests
	challengeID := s.seedChallenge(ctx, "Flexão 3x10 - iniciante", goals.GoalTypeLoseWeight, false)
	userID := nextUserID()

	now := time.Now().UTC()
	today := pkg.CalendarDay(now, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	stale, err := repo.Create(ctx, challenges.Assignment{
		UserID:         userID,
		ChallengeID:    challengeID,
		AssignmentDate: yesterday,
		CreatedAt:      now.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	created, err := repo.Create(ctx, challenges.Assignment{
		UserID:         userID,
		ChallengeID:    challengeID,
		AssignmentDate: today,
		CreatedAt:      now,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	s.Run("one assignment per user and day", func() {
		_, err := repo.Create(ctx, challenges.Assignment{
			UserID:         userID,
			ChallengeID:    challengeID,
			AssignmentDate: today,
			CreatedAt:      now,
		})
		require.ErrorIs(s.T(), err, challenges.ErrAssignmentExists)
	})

	s.Run("find today", func() {
		t := s.T()
		found, err := repo.FindInRange(ctx, userID, today, tomorrow)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Flexão 3x10 - iniciante", found.Challenge.Title)
		assert.True(t, pkg.SameCalendarDay(today, found.AssignmentDate))

		_, err = repo.FindInRange(ctx, nextUserID(), today, tomorrow)
		require.ErrorIs(t, err, challenges.ErrAssignmentNotFound)
	})

	s.Run("get is scoped to the owner", func() {
		t := s.T()
		got, err := repo.Get(ctx, userID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = repo.Get(ctx, userID+1_000_000, created.ID)
		require.ErrorIs(t, err, challenges.ErrAssignmentNotFound)
	})

	s.Run("guarded transitions", func() {
		t := s.T()

		ok, err := repo.MarkCompleted(ctx, userID, created.ID, today, now)
		require.NoError(t, err)
		assert.False(t, ok, "complete requires acceptance")

		ok, err = repo.MarkAccepted(ctx, userID, created.ID, yesterday)
		require.NoError(t, err)
		assert.False(t, ok, "only the assignment's own day counts")

		ok, err = repo.MarkAccepted(ctx, userID, created.ID, today)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.MarkAccepted(ctx, userID, created.ID, today)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.MarkCompleted(ctx, userID, created.ID, today, now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.MarkCompleted(ctx, userID, created.ID, today, now)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.Get(ctx, userID, created.ID)
		require.NoError(t, err)
		assert.True(t, got.IsAccepted)
		assert.True(t, got.IsCompleted)
		require.NotNil(t, got.CompletedAt)
	})

	s.Run("delete stale", func() {
		t := s.T()
		deleted, err := repo.DeleteBefore(ctx, userID, today)
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)

		_, err = repo.Get(ctx, userID, stale.ID)
		require.ErrorIs(t, err, challenges.ErrAssignmentNotFound)

		list, err := repo.ListForUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})
}

func (s *IntegrationTestSuite) TestGoalsRepo() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	repo := goals.NewRepo(s.dbPool)

	userID := nextUserID()
	_, err := repo.FindActive(ctx, userID)
	require.ErrorIs(t, err, goals.ErrNoActiveGoal)

	s.seedGoal(ctx, userID, goals.GoalTypeImproveConditioning, goals.ExperienceLevelAdvanced)
	goal, err := repo.FindActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, goal.UserID)
	assert.Equal(t, goals.GoalTypeImproveConditioning, goal.GoalType)
	assert.Equal(t, goals.ExperienceLevelAdvanced, goal.ExperienceLevel)
	assert.True(t, goal.IsActive)
}

func (s *IntegrationTestSuite) TestWorkoutsRepo() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	repo := workouts.NewRepo(s.dbPool)
	userID := nextUserID()
	today := pkg.CalendarDay(time.Now(), time.UTC)

	template, ok := workouts.LookupTemplate("Cardio HIIT - 20 minutos")
	require.True(t, ok)

	var ids []int
	for i := 0; i < 3; i++ {
		created, err := repo.Create(ctx, workouts.Workout{
			UserID:        userID,
			Name:          template.Name,
			Type:          template.Type,
			Duration:      template.Duration,
			Calories:      template.Calories,
			Exercises:     template.Exercises,
			ScheduledDate: today.AddDate(0, 0, i),
			Source:        workouts.SourceUserCreated,
			CreatedAt:     time.Now(),
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	marked, err := repo.MarkCompleted(ctx, userID, ids[:2], time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	// other users' workouts are never touched
	marked, err = repo.MarkCompleted(ctx, nextUserID(), ids, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, marked)

	list, total, err := repo.ListForUser(ctx, workouts.ListParams{UserID: userID, Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 2)
	// newest schedule first
	assert.Equal(t, ids[2], list[0].ID)
	assert.False(t, list[0].IsCompleted)
	assert.Equal(t, ids[1], list[1].ID)
	assert.True(t, list[1].IsCompleted)
	assert.Len(t, list[0].Exercises, len(template.Exercises))
}

func (s *IntegrationTestSuite) TestCatalogSeed() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	repo := challenges.NewCatalogRepo(s.dbPool)
	// inactive entries keep the catalog used by the http tests unchanged
	catalog, err := challenges.ParseCatalog(`
[[challenge]]
title = "Prancha 1 minuto - iniciante"
goal_type = "improve_conditioning"
points = 10
active = false

[[challenge]]
title = "Supino 40kg - 12 repetições"
goal_type = "gain_mass"
points = 40
active = false
`)
	require.NoError(t, err)

	inserted, err := repo.Seed(ctx, catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.Seed(ctx, catalog)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	var count int
	require.NoError(t, s.DB.QueryRowContext(
		ctx,
		`SELECT count(*) FROM challenge WHERE title IN ($1, $2) AND NOT is_active;`,
		catalog[0].Title, catalog[1].Title,
	).Scan(&count))
	assert.Equal(t, 2, count)
}
