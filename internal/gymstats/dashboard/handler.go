package dashboard

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"
)

type routinesLister interface {
	List() []routines.Routine
}

type logsLister interface {
	List() []workoutlogs.WorkoutLog
}

type Handler struct {
	routines routinesLister
	logs     logsLister
}

func NewHandler(routines routinesLister, logs logsLister) *Handler {
	return &Handler{
		routines: routines,
		logs:     logs,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.snapshot")
	defer span.End()

	params, err := routines.ParseFilterParams(r)
	if err != nil {
		log.Debugf("dashboard: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, NewSnapshot(handler.routines.List(), handler.logs.List(), params), http.StatusOK)
}
