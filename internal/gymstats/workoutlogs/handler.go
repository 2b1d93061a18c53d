package workoutlogs

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workoutlogs_test

type logsStore interface {
	List() []WorkoutLog
	FindByRoutine(routineID string) []WorkoutLog
	Recent(limit int) []WorkoutLog
}

type ListResponse struct {
	Logs  []WorkoutLog `json:"logs"`
	Total int          `json:"total"`
}

type Handler struct {
	store logsStore
}

func NewHandler(store logsStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	router.HandleFunc("/workouts/recent", handler.HandleRecent).Methods("GET", "OPTIONS").Name("workouts-recent")
	router.HandleFunc("/routines/{id}/workouts", handler.HandleListByRoutine).Methods("GET", "OPTIONS").Name("workouts-by-routine")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.list")
	defer span.End()

	logs := handler.store.List()
	pkg.WriteJSON(w, ListResponse{
		Logs:  logs,
		Total: len(logs),
	}, http.StatusOK)
}

func (handler *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.recent")
	defer span.End()

	limit := DefaultRecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, limit NaN", http.StatusBadRequest)
			return
		}
	}

	pkg.WriteJSON(w, handler.store.Recent(limit), http.StatusOK)
}

func (handler *Handler) HandleListByRoutine(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.by_routine")
	defer span.End()

	routineID := mux.Vars(r)["id"]
	if routineID == "" {
		http.Error(w, "error, routine id empty", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.store.FindByRoutine(routineID), http.StatusOK)
}
