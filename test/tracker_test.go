//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/trainingtracker/internal/program"
	"github.com/2beens/trainingtracker/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) getState(ctx context.Context) tracker.View {
	status, respBytes := s.doRequest(ctx, "GET", "/api/state", nil)
	require.Equal(s.T(), http.StatusOK, status, string(respBytes))

	var view tracker.View
	require.NoError(s.T(), json.Unmarshal(respBytes, &view))
	return view
}

func (s *IntegrationTestSuite) mutate(ctx context.Context, method, path string, body any) tracker.Preferences {
	status, respBytes := s.doRequest(ctx, method, path, body)
	require.Equal(s.T(), http.StatusOK, status, string(respBytes))

	var prefs tracker.Preferences
	require.NoError(s.T(), json.Unmarshal(respBytes, &prefs))
	return prefs
}

func (s *IntegrationTestSuite) TestTracker_DefaultState() {
	ctx := context.Background()
	t := s.T()

	view := s.getState(ctx)
	assert.Equal(t, 1, view.Week)
	assert.Equal(t, program.PhaseFoundation, view.Phase.Phase)
	assert.Equal(t, int64(0), view.Version)
	assert.Equal(t, 0, view.Stats.Completed)
	assert.Equal(t, 24, view.Stats.Total)
	assert.Equal(t, 0, view.Percentage)
	require.Len(t, view.Days, 3)
	assert.Equal(t, program.DayPush, view.Days[0].Name)
	assert.Len(t, view.Days[0].Exercises, 8)
	assert.Len(t, view.Days[0].Nutrition, len(program.DailyNutritionGoals))

	var rows int
	require.NoError(t, s.DB.QueryRow("SELECT count(*) FROM user_preferences").Scan(&rows))
	assert.Zero(t, rows)
}

func (s *IntegrationTestSuite) TestTracker_ToggleAndWeights() {
	ctx := context.Background()
	t := s.T()

	prefs := s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/toggle", nil)
	assert.Equal(t, int64(1), prefs.Version)
	key := program.ExerciseKey{Day: program.DayPush, Index: 0, Week: 1}
	assert.True(t, prefs.CompletedExercises[key])

	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/weight", tracker.AdjustWeightRequest{Delta: 2.5})
	prefs = s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/weight", tracker.AdjustWeightRequest{Delta: 2.5})
	assert.Equal(t, 5.0, prefs.ExerciseWeights[key])
	assert.Equal(t, int64(3), prefs.Version)

	prefs = s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/weight", tracker.AdjustWeightRequest{Delta: -10})
	assert.Equal(t, 0.0, prefs.ExerciseWeights[key])

	prefs = s.mutate(ctx, "POST", "/api/days/friday-legs/nutrition/2/toggle", nil)
	assert.True(t, prefs.NutritionGoals[program.NutritionKey{Day: program.DayLegs, Index: 2, Week: 1}])

	view := s.getState(ctx)
	assert.Equal(t, 1, view.Stats.Completed)
	assert.Equal(t, 4, view.Percentage)
	assert.True(t, view.Days[0].Exercises[0].Completed)
	assert.Equal(t, 1, view.Days[2].NutritionCompleted)
	assert.Equal(t, prefs.Version, view.Version)

	var rawCompleted []byte
	require.NoError(t, s.DB.QueryRow(
		"SELECT completed_exercises FROM user_preferences WHERE user_id = $1", testUserID,
	).Scan(&rawCompleted))
	assert.JSONEq(t, `{"Monday - Push Day-0-week1": true}`, string(rawCompleted))

	status, _ := s.doRequest(ctx, "POST", "/api/days/sunday-rest/exercises/0/toggle", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.doRequest(ctx, "POST", "/api/days/monday-push/exercises/42/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestTracker_WeekChangeAndReset() {
	ctx := context.Background()
	t := s.T()

	s.mutate(ctx, "POST", "/api/days/wednesday-pull/exercises/1/toggle", nil)

	prefs := s.mutate(ctx, "PUT", "/api/state/week", tracker.SetWeekRequest{Week: 10})
	assert.Equal(t, 10, prefs.CurrentWeek)
	s.mutate(ctx, "POST", "/api/days/wednesday-pull/exercises/1/toggle", nil)

	view := s.getState(ctx)
	assert.Equal(t, program.PhaseIntensity, view.Phase.Phase)
	assert.Equal(t, 1, view.Stats.Completed)

	status, _ := s.doRequest(ctx, "PUT", "/api/state/week", tracker.SetWeekRequest{Week: 13})
	assert.Equal(t, http.StatusBadRequest, status)

	prefs = s.mutate(ctx, "POST", "/api/week/reset", nil)
	assert.Len(t, prefs.CompletedExercises, 1)
	assert.True(t, prefs.CompletedExercises[program.ExerciseKey{Day: program.DayPull, Index: 1, Week: 1}])

	prefs = s.mutate(ctx, "PUT", "/api/state/week", tracker.SetWeekRequest{Week: 1})
	assert.Equal(t, 1, prefs.CurrentWeek)
	view = s.getState(ctx)
	assert.Equal(t, 1, view.Stats.Completed)
}

func (s *IntegrationTestSuite) TestTracker_Sessions() {
	ctx := context.Background()
	t := s.T()

	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/toggle", nil)
	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/0/weight", tracker.AdjustWeightRequest{Delta: 2.5})

	status, respBytes := s.doRequest(ctx, "POST", "/api/days/monday-push/sessions", nil)
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	var saved tracker.SaveSessionResponse
	require.NoError(t, json.Unmarshal(respBytes, &saved))
	require.NotNil(t, saved.Session)
	assert.NotEmpty(t, saved.Session.ID)
	assert.Equal(t, program.DayPush, saved.Session.DayName)
	assert.Equal(t, 1, saved.Session.ExercisesCompleted)
	assert.Equal(t, 8, saved.Session.TotalExercises)
	assert.Equal(t, 2.5, saved.Session.Exercises[0].Weight)
	assert.Equal(t, saved.Session.SummaryMessage(), saved.Message)
	require.Len(t, saved.Sessions, 1)
	assert.Equal(t, saved.Session.ID, saved.Sessions[0].ID)

	status, respBytes = s.doRequest(ctx, "POST", "/api/days/friday-legs/sessions", nil)
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	status, respBytes = s.doRequest(ctx, "GET", "/api/sessions", nil)
	require.Equal(t, http.StatusOK, status)
	var sessions []tracker.Session
	require.NoError(t, json.Unmarshal(respBytes, &sessions))
	require.Len(t, sessions, 2)
	assert.Equal(t, program.DayLegs, sessions[0].DayName)
	assert.Equal(t, program.DayPush, sessions[1].DayName)

	status, respBytes = s.doRequest(ctx, "DELETE", fmt.Sprintf("/api/sessions/%s", saved.Session.ID), nil)
	require.Equal(t, http.StatusOK, status)
	var deleted tracker.DeleteSessionResponse
	require.NoError(t, json.Unmarshal(respBytes, &deleted))
	assert.True(t, deleted.Deleted)

	status, respBytes = s.doRequest(ctx, "DELETE", "/api/sessions/not-a-uuid", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(respBytes, &deleted))
	assert.False(t, deleted.Deleted)

	view := s.getState(ctx)
	require.Len(t, view.Sessions, 1)
	assert.Equal(t, program.DayLegs, view.Sessions[0].DayName)

	status, _ = s.doRequest(ctx, "POST", "/api/days/sunday-rest/sessions", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestTracker_LastUsedWeightFromHistory() {
	ctx := context.Background()
	t := s.T()

	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/1/weight", tracker.AdjustWeightRequest{Delta: 2.5})
	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/1/weight", tracker.AdjustWeightRequest{Delta: 2.5})
	s.mutate(ctx, "POST", "/api/days/monday-push/exercises/1/weight", tracker.AdjustWeightRequest{Delta: 2.5})

	s.mutate(ctx, "PUT", "/api/state/week", tracker.SetWeekRequest{Week: 2})
	prefs := s.mutate(ctx, "POST", "/api/days/monday-push/exercises/1/weight", tracker.AdjustWeightRequest{Delta: 2.5})

	assert.Equal(t, 10.0, prefs.ExerciseWeights[program.ExerciseKey{Day: program.DayPush, Index: 1, Week: 2}])
	assert.Equal(t, 7.5, prefs.ExerciseWeights[program.ExerciseKey{Day: program.DayPush, Index: 1, Week: 1}])
}

func (s *IntegrationTestSuite) TestProgram() {
	ctx := context.Background()
	t := s.T()

	status, respBytes := s.doRequest(ctx, "GET", "/api/program?week=6", nil)
	require.Equal(t, http.StatusOK, status)

	var view tracker.ProgramView
	require.NoError(t, json.Unmarshal(respBytes, &view))
	assert.Equal(t, 6, view.Week)
	assert.Equal(t, program.PhaseGrowth, view.Phase.Phase)
	require.Len(t, view.Workouts, 3)
	assert.Len(t, view.Workouts[0].Exercises, 9)
	assert.Len(t, view.Targets, 4)
}
