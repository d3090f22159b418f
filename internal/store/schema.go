package store

import (
	"context"
	"fmt"

	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema mirrors the two tables of the hosted store.
const Schema = `
CREATE TABLE IF NOT EXISTS user_preferences (
	id                  BIGSERIAL PRIMARY KEY,
	user_id             TEXT NOT NULL UNIQUE,
	current_week        INTEGER NOT NULL DEFAULT 1,
	completed_exercises JSONB NOT NULL DEFAULT '{}'::jsonb,
	exercise_weights    JSONB NOT NULL DEFAULT '{}'::jsonb,
	nutrition_goals     JSONB NOT NULL DEFAULT '{}'::jsonb,
	version             BIGINT NOT NULL DEFAULT 1,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS completed_sessions (
	id                  UUID PRIMARY KEY,
	user_id             TEXT NOT NULL,
	session_date        DATE NOT NULL,
	session_time        TIME NOT NULL,
	week                INTEGER NOT NULL,
	phase               TEXT NOT NULL,
	day_name            TEXT NOT NULL,
	exercises           JSONB NOT NULL DEFAULT '[]'::jsonb,
	nutrition           JSONB NOT NULL DEFAULT '[]'::jsonb,
	exercises_completed INTEGER NOT NULL DEFAULT 0,
	total_exercises     INTEGER NOT NULL DEFAULT 0,
	nutrition_completed INTEGER NOT NULL DEFAULT 0,
	total_nutrition     INTEGER NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS completed_sessions_user_created_idx
	ON completed_sessions (user_id, created_at DESC);
`

// EnsureSchema creates the tables when they are missing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schema.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	log.Debugln("db schema in place")
	return nil
}
