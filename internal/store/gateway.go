package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/trainingtracker/internal/program"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/internal/tracker"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ErrVersionConflict is tracker.ErrVersionConflict, so callers of either
// package can match it.
var ErrVersionConflict = tracker.ErrVersionConflict

// Gateway persists the tracker state of a single user in Postgres.
type Gateway struct {
	db            *pgxpool.Pool
	userID        string
	lastWriteWins bool
}

func NewGateway(db *pgxpool.Pool, userID string, lastWriteWins bool) *Gateway {
	return &Gateway{
		db:            db,
		userID:        userID,
		lastWriteWins: lastWriteWins,
	}
}

// ReadPreferences returns the stored record, or defaults when there is none.
func (g *Gateway) ReadPreferences(ctx context.Context) (_ *tracker.Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.read")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prefs := tracker.Preferences{UserID: g.userID}
	var completed, weights, nutrition []byte
	err = g.db.QueryRow(
		ctx,
		`SELECT current_week, completed_exercises, exercise_weights, nutrition_goals, version, created_at, updated_at
			FROM user_preferences
			WHERE user_id = $1;`,
		g.userID,
	).Scan(&prefs.CurrentWeek, &completed, &weights, &nutrition, &prefs.Version, &prefs.CreatedAt, &prefs.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		span.SetAttributes(attribute.Bool("defaults", true))
		return tracker.DefaultPreferences(g.userID), nil
	}
	if err != nil {
		if pkg.IsUndefinedTableError(err) {
			return nil, fmt.Errorf("user_preferences table missing (db_auto_migrate off?): %w", err)
		}
		return nil, err
	}

	if err := unmarshalJSONB(completed, &prefs.CompletedExercises); err != nil {
		return nil, fmt.Errorf("completed_exercises: %w", err)
	}
	if err := unmarshalJSONB(weights, &prefs.ExerciseWeights); err != nil {
		return nil, fmt.Errorf("exercise_weights: %w", err)
	}
	if err := unmarshalJSONB(nutrition, &prefs.NutritionGoals); err != nil {
		return nil, fmt.Errorf("nutrition_goals: %w", err)
	}
	span.SetAttributes(attribute.Int64("version", prefs.Version))

	// Clone turns missing maps into empty ones.
	return prefs.Clone(), nil
}

// WritePreferences replaces the whole record. Unless last write wins, the
// update only applies on top of prefs.Version, ErrVersionConflict otherwise.
func (g *Gateway) WritePreferences(ctx context.Context, prefs *tracker.Preferences) (_ *tracker.Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.write")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("version", prefs.Version))

	completed, err := json.Marshal(prefs.CompletedExercises)
	if err != nil {
		return nil, fmt.Errorf("marshal completed exercises: %w", err)
	}
	weights, err := json.Marshal(prefs.ExerciseWeights)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise weights: %w", err)
	}
	nutrition, err := json.Marshal(prefs.NutritionGoals)
	if err != nil {
		return nil, fmt.Errorf("marshal nutrition goals: %w", err)
	}

	expectedVersion := prefs.Version
	if g.lastWriteWins {
		expectedVersion = -1
	}

	stored := prefs.Clone()
	stored.UserID = g.userID
	err = g.db.QueryRow(
		ctx,
		`INSERT INTO user_preferences
				(user_id, current_week, completed_exercises, exercise_weights, nutrition_goals, version, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, 1, now(), now())
			ON CONFLICT (user_id) DO UPDATE SET
				current_week = EXCLUDED.current_week,
				completed_exercises = EXCLUDED.completed_exercises,
				exercise_weights = EXCLUDED.exercise_weights,
				nutrition_goals = EXCLUDED.nutrition_goals,
				version = user_preferences.version + 1,
				updated_at = now()
			WHERE $6::bigint < 0 OR user_preferences.version = $6::bigint
			RETURNING version, created_at, updated_at;`,
		g.userID, prefs.CurrentWeek, completed, weights, nutrition, expectedVersion,
	).Scan(&stored.Version, &stored.CreatedAt, &stored.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: expected version %d", ErrVersionConflict, prefs.Version)
	}
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// AppendSession inserts a new session with a generated id.
func (g *Gateway) AppendSession(ctx context.Context, session tracker.Session) (_ *tracker.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := json.Marshal(session.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}
	nutrition, err := json.Marshal(session.Nutrition)
	if err != nil {
		return nil, fmt.Errorf("marshal nutrition: %w", err)
	}

	session.UserID = g.userID
	for attempt := 0; attempt < 2; attempt++ {
		session.ID = uuid.NewString()
		err = g.db.QueryRow(
			ctx,
			`INSERT INTO completed_sessions
					(id, user_id, session_date, session_time, week, phase, day_name, exercises, nutrition,
					 exercises_completed, total_exercises, nutrition_completed, total_nutrition, created_at, updated_at)
					VALUES ($1, $2, $3::date, $4::time, $5, $6, $7, $8, $9, $10, $11, $12, $13, now(), now())
				RETURNING created_at, updated_at;`,
			session.ID, session.UserID, session.SessionDate, session.SessionTime, session.Week, string(session.Phase),
			session.DayName, exercises, nutrition,
			session.ExercisesCompleted, session.TotalExercises, session.NutritionCompleted, session.TotalNutrition,
		).Scan(&session.CreatedAt, &session.UpdatedAt)
		if !pkg.IsUniqueViolationError(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("session.id", session.ID))
	return &session, nil
}

// ListSessions returns the user's sessions, newest first.
func (g *Gateway) ListSessions(ctx context.Context) (_ []tracker.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := g.db.Query(
		ctx,
		`SELECT id::text, user_id, session_date::text, session_time::text, week, phase, day_name, exercises, nutrition,
				exercises_completed, total_exercises, nutrition_completed, total_nutrition, created_at, updated_at
			FROM completed_sessions
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		g.userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]tracker.Session, 0)
	for rows.Next() {
		var (
			s                    tracker.Session
			phase                string
			exercises, nutrition []byte
		)
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SessionDate, &s.SessionTime, &s.Week, &phase, &s.DayName, &exercises, &nutrition,
			&s.ExercisesCompleted, &s.TotalExercises, &s.NutritionCompleted, &s.TotalNutrition, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.Phase = program.Phase(phase)
		if err := unmarshalJSONB(exercises, &s.Exercises); err != nil {
			return nil, fmt.Errorf("session %s exercises: %w", s.ID, err)
		}
		if err := unmarshalJSONB(nutrition, &s.Nutrition); err != nil {
			return nil, fmt.Errorf("session %s nutrition: %w", s.ID, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, nil
}

// DeleteSession removes one of the user's sessions. Unknown, foreign or
// malformed ids report false without an error.
func (g *Gateway) DeleteSession(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	tag, err := g.db.Exec(
		ctx,
		`DELETE FROM completed_sessions WHERE id = $1 AND user_id = $2;`,
		id, g.userID,
	)
	if err != nil {
		if pkg.IsInvalidTextRepresentationError(err) {
			return false, nil
		}
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func unmarshalJSONB(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
