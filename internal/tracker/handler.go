package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainingtracker/internal/middleware"
	"github.com/2beens/trainingtracker/internal/program"
	"github.com/2beens/trainingtracker/internal/telemetry/metrics"
	"github.com/2beens/trainingtracker/internal/telemetry/tracing"
	"github.com/2beens/trainingtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type trackerService interface {
	Load(ctx context.Context) (*State, error)
	Dispatch(ctx context.Context, action Action) (*Preferences, error)
	SaveSession(ctx context.Context, day string) (*Session, []Session, error)
	Sessions(ctx context.Context) ([]Session, error)
	DeleteSession(ctx context.Context, id string) (bool, error)
}

type SetWeekRequest struct {
	Week int `json:"week"`
}

type AdjustWeightRequest struct {
	Delta float64 `json:"delta"`
}

type SaveSessionResponse struct {
	Session  *Session  `json:"session"`
	Sessions []Session `json:"sessions"`
	Message  string    `json:"message"`
}

type DeleteSessionResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type Handler struct {
	service trackerService
}

func NewHandler(service trackerService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the read routes on router and the state changing
// ones on a rate limited subrouter.
func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	mutationsPerMin int,
	metricsManager *metrics.Manager,
) {
	router.HandleFunc("/api/program", handler.HandleProgram).Methods("GET", "OPTIONS").Name("program")
	router.HandleFunc("/api/state", handler.HandleState).Methods("GET", "OPTIONS").Name("state")
	router.HandleFunc("/api/sessions", handler.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")

	mutations := router.PathPrefix("/api").Subrouter()
	mutations.HandleFunc("/state/week", handler.HandleSetWeek).Methods("PUT", "OPTIONS").Name("set-week")
	mutations.HandleFunc("/days/{day}/exercises/{index}/toggle", handler.HandleToggleExercise).Methods("POST", "OPTIONS").Name("toggle-exercise")
	mutations.HandleFunc("/days/{day}/exercises/{index}/weight", handler.HandleAdjustWeight).Methods("POST", "OPTIONS").Name("adjust-weight")
	mutations.HandleFunc("/days/{day}/nutrition/{index}/toggle", handler.HandleToggleNutrition).Methods("POST", "OPTIONS").Name("toggle-nutrition")
	mutations.HandleFunc("/week/reset", handler.HandleResetWeek).Methods("POST", "OPTIONS").Name("reset-week")
	mutations.HandleFunc("/days/{day}/sessions", handler.HandleSaveSession).Methods("POST", "OPTIONS").Name("save-session")
	mutations.HandleFunc("/sessions/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")

	if rateLimiter != nil && mutationsPerMin > 0 {
		mutations.Use(middleware.RateLimit(rateLimiter, "tracker-mutations", mutationsPerMin, metricsManager))
	}
}

func (handler *Handler) HandleProgram(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.program")
	defer span.End()

	week := program.MinWeek
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		var err error
		week, err = strconv.Atoi(weekStr)
		if err != nil || week < program.MinWeek || week > program.MaxWeek {
			http.Error(w, "error, week must be 1-12", http.StatusBadRequest)
			return
		}
	}

	pkg.WriteJSON(w, BuildProgramView(week), http.StatusOK)
}

func (handler *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.state")
	defer span.End()

	state, err := handler.service.Load(ctx)
	if err != nil {
		log.Errorf("load tracker state: %s", err)
		http.Error(w, "error, failed to load state", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, BuildView(state), http.StatusOK)
}

func (handler *Handler) HandleSetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.week.set")
	defer span.End()

	var req SetWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set week, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	handler.dispatch(ctx, w, SetWeek{Week: req.Week})
}

func (handler *Handler) HandleToggleExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.exercise.toggle")
	defer span.End()

	day, index, ok := dayAndIndex(w, r)
	if !ok {
		return
	}

	handler.dispatch(ctx, w, ToggleExercise{Day: day, Index: index})
}

func (handler *Handler) HandleAdjustWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.exercise.weight")
	defer span.End()

	day, index, ok := dayAndIndex(w, r)
	if !ok {
		return
	}

	var req AdjustWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("adjust weight, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}
	if req.Delta == 0 {
		http.Error(w, "error, delta empty", http.StatusBadRequest)
		return
	}

	handler.dispatch(ctx, w, AdjustWeight{Day: day, Index: index, Delta: req.Delta})
}

func (handler *Handler) HandleToggleNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.nutrition.toggle")
	defer span.End()

	day, index, ok := dayAndIndex(w, r)
	if !ok {
		return
	}

	handler.dispatch(ctx, w, ToggleNutrition{Day: day, Index: index})
}

func (handler *Handler) HandleResetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.week.reset")
	defer span.End()

	handler.dispatch(ctx, w, ResetWeek{})
}

func (handler *Handler) HandleSaveSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.save")
	defer span.End()

	workout, ok := program.WorkoutBySlug(mux.Vars(r)["day"])
	if !ok {
		http.Error(w, "error, unknown day", http.StatusNotFound)
		return
	}

	session, sessions, err := handler.service.SaveSession(ctx, workout.Name)
	if err != nil {
		log.Errorf("save session [%s]: %s", workout.Slug, err)
		http.Error(w, "error, failed to save session", statusFor(err))
		return
	}

	pkg.WriteJSON(w, SaveSessionResponse{
		Session:  session,
		Sessions: sessions,
		Message:  session.SummaryMessage(),
	}, http.StatusCreated)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.list")
	defer span.End()

	sessions, err := handler.service.Sessions(ctx)
	if err != nil {
		log.Errorf("list sessions: %s", err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.session.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	deleted, err := handler.service.DeleteSession(ctx, id)
	if err != nil {
		log.Errorf("delete session [%s]: %s", id, err)
		http.Error(w, "error, failed to delete session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteSessionResponse{ID: id, Deleted: deleted}, http.StatusOK)
}

func (handler *Handler) dispatch(ctx context.Context, w http.ResponseWriter, action Action) {
	prefs, err := handler.service.Dispatch(ctx, action)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.Errorf("dispatch %s: %s", action.Name(), err)
			http.Error(w, "error, failed to update state", status)
			return
		}
		log.Debugf("dispatch %s rejected: %s", action.Name(), err)
		http.Error(w, err.Error(), status)
		return
	}

	pkg.WriteJSON(w, prefs, http.StatusOK)
}

func dayAndIndex(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	vars := mux.Vars(r)
	workout, ok := program.WorkoutBySlug(vars["day"])
	if !ok {
		http.Error(w, "error, unknown day", http.StatusNotFound)
		return "", 0, false
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, "error, index NaN", http.StatusBadRequest)
		return "", 0, false
	}
	return workout.Name, index, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownDay):
		return http.StatusNotFound
	case errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrInvalidWeek),
		errors.Is(err, ErrInvalidDelta):
		return http.StatusBadRequest
	case errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
