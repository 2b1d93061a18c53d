package stats

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type routinesLister interface {
	List() []routines.Routine
}

type logsLister interface {
	List() []workoutlogs.WorkoutLog
}

type Handler struct {
	routines routinesLister
	logs     logsLister
	loc      *time.Location
}

func NewHandler(routines routinesLister, logs logsLister, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		routines: routines,
		logs:     logs,
		loc:      loc,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("stats")
	router.HandleFunc("/stats/exercises/{exerciseId}/history", handler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("stats-exercise-history")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.compute")
	defer span.End()

	statistics := Compute(handler.routines.List(), handler.logs.List(), handler.loc)
	pkg.WriteJSON(w, statistics, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exercise_history")
	defer span.End()

	exerciseID := mux.Vars(r)["exerciseId"]
	if exerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, NewExerciseHistory(handler.logs.List(), exerciseID, handler.loc), http.StatusOK)
}
