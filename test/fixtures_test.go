//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fitchallenge/internal/goals"
	"github.com/2beens/fitchallenge/pkg"
)

var lastUserID atomic.Int64

func nextUserID() int {
	return int(lastUserID.Add(1))
}

func (s *IntegrationTestSuite) seedGoal(ctx context.Context, userID int, goalType goals.GoalType, level goals.ExperienceLevel) {
	_, err := s.DB.ExecContext(
		ctx,
		`INSERT INTO goal (user_id, goal_type, experience_level, is_active, created_at)
			VALUES ($1, $2, $3, true, $4);`,
		userID, string(goalType), string(level), time.Now(),
	)
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) seedChallenge(ctx context.Context, title string, goalType goals.GoalType, active bool) int {
	var id int
	err := s.DB.QueryRowContext(
		ctx,
		`INSERT INTO challenge (title, description, points, goal_type, category, difficulty, duration, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		title,
		gofakeit.Sentence(8),
		gofakeit.Number(10, 100),
		string(goalType),
		gofakeit.RandomString([]string{"strength", "cardio", "mobility"}),
		gofakeit.RandomString([]string{"easy", "medium", "hard"}),
		gofakeit.Number(10, 60),
		active,
	).Scan(&id)
	require.NoError(s.T(), err)
	return id
}

// newSession stores a redis session for the user and returns its token.
func (s *IntegrationTestSuite) newSession(ctx context.Context, userID int) string {
	token := gofakeit.UUID()
	require.NoError(s.T(), s.sessionStore.Put(ctx, token, userID, time.Now()))
	return token
}

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string) (*http.Response, []byte) {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, respBytes
}

func (s *IntegrationTestSuite) requireErrorCode(respBytes []byte, expectedCode string) {
	var errResp pkg.ErrorResponse
	require.NoError(s.T(), json.Unmarshal(respBytes, &errResp), fmt.Sprintf("body: %s", respBytes))
	require.Equal(s.T(), expectedCode, errResp.Code)
}
