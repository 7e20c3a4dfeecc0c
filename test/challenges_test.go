//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitchallenge/internal/challenges"
	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/internal/workouts"
)

const workoutChallengeTitle = "Treino de Força - Peito e Tríceps"

func (s *IntegrationTestSuite) TestDailyChallengeLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	// every active gain_mass challenge carries this title, so selection is deterministic
	s.seedChallenge(ctx, workoutChallengeTitle, goals.GoalTypeGainMass, true)
	userID := nextUserID()
	s.seedGoal(ctx, userID, goals.GoalTypeGainMass, goals.ExperienceLevelAdvanced)
	token := s.newSession(ctx, userID)

	resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var today challenges.AssignmentView
	require.NoError(t, json.Unmarshal(body, &today))
	assert.Equal(t, workoutChallengeTitle, today.Challenge.Title)
	assert.Equal(t, challenges.StatePendingToday, today.State)
	assert.False(t, today.IsAccepted)
	assert.False(t, today.IsCompleted)
	assert.Nil(t, today.CompletedAt)

	// idempotent within the day
	resp, body = s.doRequest(ctx, http.MethodGet, "/challenges/today", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var again challenges.AssignmentView
	require.NoError(t, json.Unmarshal(body, &again))
	assert.Equal(t, today.ID, again.ID)

	acceptPath := fmt.Sprintf("/challenges/%d/accept", today.ID)
	completePath := fmt.Sprintf("/challenges/%d/complete", today.ID)

	resp, body = s.doRequest(ctx, http.MethodPost, acceptPath, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var accepted challenges.ActionResponse
	require.NoError(t, json.Unmarshal(body, &accepted))
	assert.True(t, accepted.IsAccepted)
	assert.Equal(t, challenges.StateAcceptedToday, accepted.State)
	assert.Equal(t, 1, accepted.DerivedWorkoutCount)

	resp, body = s.doRequest(ctx, http.MethodPost, acceptPath, token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	s.requireErrorCode(body, "already_accepted")

	resp, body = s.doRequest(ctx, http.MethodPost, completePath, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var completed challenges.ActionResponse
	require.NoError(t, json.Unmarshal(body, &completed))
	assert.True(t, completed.IsCompleted)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, challenges.StateCompletedToday, completed.State)
	assert.Equal(t, 1, completed.DerivedWorkoutCount)

	resp, body = s.doRequest(ctx, http.MethodPost, completePath, token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	s.requireErrorCode(body, "already_completed")

	resp, body = s.doRequest(ctx, http.MethodPost, acceptPath, token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	s.requireErrorCode(body, "already_completed")

	// one workout from accepting, one already completed from completing
	resp, body = s.doRequest(ctx, http.MethodGet, "/workouts", token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var workoutsResp workouts.ListResponse
	require.NoError(t, json.Unmarshal(body, &workoutsResp))
	require.Equal(t, 2, workoutsResp.Total)
	require.Len(t, workoutsResp.Workouts, 2)

	completedCount := 0
	for _, w := range workoutsResp.Workouts {
		assert.Equal(t, workoutChallengeTitle, w.Name)
		assert.Equal(t, workouts.WorkoutTypeStrength, w.Type)
		assert.Equal(t, workouts.SourceUserCreated, w.Source)
		assert.Len(t, w.Exercises, 4)
		if w.IsCompleted {
			completedCount++
			assert.NotNil(t, w.CompletedAt)
		}
	}
	assert.Equal(t, 1, completedCount)

	resp, body = s.doRequest(ctx, http.MethodGet, "/challenges/history", token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var history challenges.HistoryResponse
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history.Assignments, 1)
	assert.Equal(t, today.ID, history.Assignments[0].ID)
}

func (s *IntegrationTestSuite) TestCompleteBeforeAccept() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	s.seedChallenge(ctx, "Caminhada leve 30 minutos", goals.GoalTypeLoseWeight, true)
	userID := nextUserID()
	s.seedGoal(ctx, userID, goals.GoalTypeLoseWeight, goals.ExperienceLevelBeginner)
	token := s.newSession(ctx, userID)

	resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var today challenges.AssignmentView
	require.NoError(t, json.Unmarshal(body, &today))

	resp, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/challenges/%d/complete", today.ID), token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	s.requireErrorCode(body, "not_yet_accepted")

	// not a workout challenge: nothing derived
	resp, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/challenges/%d/accept", today.ID), token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var accepted challenges.ActionResponse
	require.NoError(t, json.Unmarshal(body, &accepted))
	assert.Equal(t, 0, accepted.DerivedWorkoutCount)
}

func (s *IntegrationTestSuite) TestChallengeErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Run("missing token", func() {
		t := s.T()
		resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		s.requireErrorCode(body, "unauthorized")
	})

	s.Run("unknown token", func() {
		t := s.T()
		resp, _ := s.doRequest(ctx, http.MethodGet, "/challenges/today", "not-a-session")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	s.Run("no active goal", func() {
		t := s.T()
		token := s.newSession(ctx, nextUserID())
		resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", token)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		s.requireErrorCode(body, "no_active_goal")
	})

	s.Run("empty catalog", func() {
		t := s.T()
		userID := nextUserID()
		s.seedGoal(ctx, userID, goals.GoalTypeImproveConditioning, goals.ExperienceLevelIntermediate)
		token := s.newSession(ctx, userID)

		resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", token)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("Retry-After"))
		s.requireErrorCode(body, "no_challenge_available")
	})

	s.Run("assignment of another user", func() {
		t := s.T()
		s.seedChallenge(ctx, workoutChallengeTitle, goals.GoalTypeGainMass, true)
		owner := nextUserID()
		s.seedGoal(ctx, owner, goals.GoalTypeGainMass, goals.ExperienceLevelBeginner)
		ownerToken := s.newSession(ctx, owner)

		resp, body := s.doRequest(ctx, http.MethodGet, "/challenges/today", ownerToken)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		var today challenges.AssignmentView
		require.NoError(t, json.Unmarshal(body, &today))

		otherToken := s.newSession(ctx, nextUserID())
		resp, body = s.doRequest(ctx, http.MethodPost, fmt.Sprintf("/challenges/%d/accept", today.ID), otherToken)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		s.requireErrorCode(body, "assignment_not_found")
	})
}

func (s *IntegrationTestSuite) TestHealth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp, body := s.doRequest(ctx, http.MethodGet, "/health", "")
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(body))
}
