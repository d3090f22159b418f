//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"

	"github.com/2beens/trainingtracker/internal/program"
	"github.com/2beens/trainingtracker/internal/store"
	"github.com/2beens/trainingtracker/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestGateway_PreferencesVersioning() {
	ctx := context.Background()
	t := s.T()

	gw := store.NewGateway(s.dbPool, "gateway-user", false)

	prefs, err := gw.ReadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), prefs.Version)
	assert.Equal(t, 1, prefs.CurrentWeek)
	assert.NotNil(t, prefs.CompletedExercises)

	prefs.CurrentWeek = 3
	prefs.ExerciseWeights[program.ExerciseKey{Day: program.DayLegs, Index: 2, Week: 3}] = 60
	stored, err := gw.WritePreferences(ctx, prefs)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.False(t, stored.CreatedAt.IsZero())

	// a second writer still holding version 0 loses
	stale := prefs.Clone()
	stale.CurrentWeek = 7
	_, err = gw.WritePreferences(ctx, stale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrVersionConflict))

	stored.CurrentWeek = 4
	stored, err = gw.WritePreferences(ctx, stored)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)

	read, err := gw.ReadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, read.CurrentWeek)
	assert.Equal(t, int64(2), read.Version)
	assert.Equal(t, 60.0, read.ExerciseWeights[program.ExerciseKey{Day: program.DayLegs, Index: 2, Week: 3}])

	lww := store.NewGateway(s.dbPool, "gateway-user", true)
	_, err = lww.WritePreferences(ctx, stale)
	require.NoError(t, err)
	read, err = gw.ReadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, read.CurrentWeek)
	assert.Equal(t, int64(3), read.Version)
}

func (s *IntegrationTestSuite) TestGateway_SessionsArePerUser() {
	ctx := context.Background()
	t := s.T()

	gw := store.NewGateway(s.dbPool, "user-a", false)
	other := store.NewGateway(s.dbPool, "user-b", false)

	session := tracker.Session{
		SessionDate: "2026-03-02",
		SessionTime: "18:30:00",
		Week:        5,
		Phase:       program.PhaseGrowth,
		DayName:     program.DayPull,
		Exercises: []tracker.ExerciseSnapshot{
			{Name: "Weighted Pull-ups", Sets: "5 x 6-8", Weight: 10, Completed: true},
		},
		Nutrition: []tracker.NutritionSnapshot{
			{Name: "Protein", Icon: "P", Category: program.CategoryProtein, Completed: true},
		},
		ExercisesCompleted: 1,
		TotalExercises:     9,
		NutritionCompleted: 1,
		TotalNutrition:     len(program.DailyNutritionGoals),
	}

	added, err := gw.AppendSession(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.Equal(t, "user-a", added.UserID)

	sessions, err := gw.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, added.ID, sessions[0].ID)
	assert.Equal(t, "2026-03-02", sessions[0].SessionDate)
	assert.Equal(t, "18:30:00", sessions[0].SessionTime)
	assert.Equal(t, program.PhaseGrowth, sessions[0].Phase)
	assert.Equal(t, session.Exercises, sessions[0].Exercises)
	assert.Equal(t, session.Nutrition, sessions[0].Nutrition)

	otherSessions, err := other.ListSessions(ctx)
	require.NoError(t, err)
	assert.NotNil(t, otherSessions)
	assert.Empty(t, otherSessions)

	deleted, err := other.DeleteSession(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = gw.DeleteSession(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = gw.DeleteSession(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
