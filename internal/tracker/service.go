package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

const maxDispatchAttempts = 3

type gateway interface {
	ReadPreferences(ctx context.Context) (*Preferences, error)
	WritePreferences(ctx context.Context, prefs *Preferences) (*Preferences, error)
	AppendSession(ctx context.Context, session Session) (*Session, error)
	ListSessions(ctx context.Context) ([]Session, error)
	DeleteSession(ctx context.Context, id string) (bool, error)
}

type Service struct {
	gw             gateway
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(gw gateway, metricsManager *metrics.Manager) *Service {
	return &Service{
		gw:             gw,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// Load fetches preferences and session history concurrently.
func (s *Service) Load(ctx context.Context) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.load")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	prefs, sessions, err := s.readState(ctx, true)
	if err != nil {
		return nil, err
	}
	return &State{Preferences: prefs, Sessions: sessions}, nil
}

// Dispatch applies the action on the stored preferences and writes the
// result back. A version conflict re-applies the action on a fresh read.
func (s *Service) Dispatch(ctx context.Context, action Action) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.dispatch")
	span.SetAttributes(attribute.String("action", action.Name()))
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metricsManager.CounterActions.WithLabelValues(action.Name(), result).Inc()
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for attempt := 1; ; attempt++ {
		prefs, history, err := s.readState(ctx, needsHistory(action))
		if err != nil {
			return nil, err
		}

		next, err := action.Apply(prefs, history)
		if err != nil {
			return nil, err
		}

		stored, err := s.gw.WritePreferences(ctx, next)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, fmt.Errorf("write preferences: %w", err)
		}

		s.metricsManager.CounterPreferencesConflicts.Inc()
		span.SetAttributes(attribute.Int("conflicts", attempt))
		if attempt >= maxDispatchAttempts {
			return nil, fmt.Errorf("%s after %d attempts: %w", action.Name(), attempt, err)
		}
		log.Debugf("dispatch %s: version %d is stale, re-applying", action.Name(), next.Version)
	}
}

// SaveSession appends a snapshot of the day and returns it together with
// the refreshed history.
func (s *Service) SaveSession(ctx context.Context, day string) (_ *Session, _ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.save")
	span.SetAttributes(attribute.String("day", day))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	prefs, err := s.gw.ReadPreferences(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read preferences: %w", err)
	}

	session, err := BuildSession(prefs, day, s.now())
	if err != nil {
		return nil, nil, err
	}

	saved, err := s.gw.AppendSession(ctx, session)
	if err != nil {
		return nil, nil, fmt.Errorf("append session: %w", err)
	}
	s.metricsManager.CounterSessionsSaved.Inc()
	log.Debugf("session saved [%s]: %s", saved.ID, saved.SummaryMessage())

	sessions, err := s.gw.ListSessions(ctx)
	if err != nil {
		return saved, nil, fmt.Errorf("list sessions: %w", err)
	}
	return saved, sessions, nil
}

func (s *Service) Sessions(ctx context.Context) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	sessions, err := s.gw.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracker.session.delete")
	span.SetAttributes(attribute.String("id", id))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	deleted, err := s.gw.DeleteSession(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete session %s: %w", id, err)
	}
	if deleted {
		s.metricsManager.CounterSessionsDeleted.Inc()
	}
	return deleted, nil
}

func (s *Service) readState(ctx context.Context, withHistory bool) (*Preferences, []Session, error) {
	if !withHistory {
		prefs, err := s.gw.ReadPreferences(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("read preferences: %w", err)
		}
		return prefs, nil, nil
	}

	var (
		prefs    *Preferences
		sessions []Session
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if prefs, err = s.gw.ReadPreferences(gctx); err != nil {
			return fmt.Errorf("read preferences: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sessions, err = s.gw.ListSessions(gctx); err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return prefs, sessions, nil
}
