package routines

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=routines_test

type routinesStore interface {
	List() []Routine
	Catalog() []Exercise
	FindByID(id string) (Routine, bool)
	FindByMuscleGroup(group MuscleGroup) []Routine
	Add(ctx context.Context, draft RoutineDraft) (Routine, error)
	Update(ctx context.Context, routine Routine) error
	Delete(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
}

type DeleteRoutineResponse struct {
	DeletedID string `json:"deletedId"`
}

type AddExerciseRequest struct {
	CatalogExerciseID string `json:"catalogExerciseId"`
}

type Handler struct {
	store          routinesStore
	metricsManager *metrics.Manager
	newID          func() string
}

func NewHandler(store routinesStore, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		metricsManager: metricsManager,
		newID:          uuid.NewString,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, mutating func(http.Handler) http.Handler) {
	router.HandleFunc("/routines", handler.HandleList).Methods("GET", "OPTIONS").Name("routines-list")
	router.HandleFunc("/routines/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("routines-get")
	router.HandleFunc("/catalog", handler.HandleCatalog).Methods("GET", "OPTIONS").Name("catalog")

	mutatingRouter := router.NewRoute().Subrouter()
	if mutating != nil {
		mutatingRouter.Use(mutating)
	}
	mutatingRouter.HandleFunc("/routines", handler.HandleAdd).Methods("POST", "OPTIONS").Name("routines-add")
	mutatingRouter.HandleFunc("/routines/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("routines-update")
	mutatingRouter.HandleFunc("/routines/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("routines-delete")
	mutatingRouter.HandleFunc("/routines/{id}/favorite", handler.HandleToggleFavorite).Methods("POST", "OPTIONS").Name("routines-favorite")
	mutatingRouter.HandleFunc("/routines/{id}/exercises", handler.HandleAddExercise).Methods("POST", "OPTIONS").Name("routines-exercise-add")
	mutatingRouter.HandleFunc("/routines/{id}/exercises/{exerciseId}", handler.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("routines-exercise-update")
	mutatingRouter.HandleFunc("/routines/{id}/exercises/{exerciseId}", handler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("routines-exercise-remove")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	params, err := ParseFilterParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var routines []Routine
	if params.MuscleGroup != "" {
		routines = handler.store.FindByMuscleGroup(params.MuscleGroup)
	} else {
		routines = handler.store.List()
	}
	routines = Filter(routines, FilterParams{FavoritesOnly: params.FavoritesOnly})

	pkg.WriteJSON(w, routines, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	routine, ok := handler.store.FindByID(id)
	if !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}

	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.catalog")
	defer span.End()

	group := MuscleGroup(r.URL.Query().Get("muscle_group"))
	if group != "" && !group.IsValid() {
		http.Error(w, "error, invalid muscle group", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, FilterCatalog(handler.store.Catalog(), group), http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var draft RoutineDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Tracef("add routine, unmarshal json: %s", err)
		http.Error(w, "error, invalid routine", http.StatusBadRequest)
		return
	}
	if err := draft.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	// the store keeps the routine even when persisting fails
	routine, err := handler.store.Add(ctx, draft)
	if err != nil {
		pkg.SetPersistError(w, fmt.Errorf("add routine [%s]: %w", routine.ID, err))
	}
	handler.countMutation("add")

	log.Debugf("new routine added: %s [%s]", routine.ID, routine.Name)
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	var routine Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("update routine, unmarshal json: %s", err)
		http.Error(w, "error, invalid routine", http.StatusBadRequest)
		return
	}
	routine.ID = id
	if err := routine.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, ok := handler.store.FindByID(id); !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}

	handler.saveAndRespond(ctx, w, routine, "update")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	// deleting is irreversible
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if !confirmed {
		http.Error(w, "error, deleting a routine must be confirmed with confirm=true", http.StatusPreconditionRequired)
		return
	}

	if err := handler.store.Delete(ctx, id); err != nil {
		pkg.SetPersistError(w, fmt.Errorf("delete routine [%s]: %w", id, err))
	}
	handler.countMutation("delete")

	pkg.WriteJSON(w, DeleteRoutineResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.toggle_favorite")
	defer span.End()

	id := mux.Vars(r)["id"]
	if _, ok := handler.store.FindByID(id); !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}

	if err := handler.store.ToggleFavorite(ctx, id); err != nil {
		pkg.SetPersistError(w, fmt.Errorf("toggle favorite [%s]: %w", id, err))
	}
	handler.countMutation("toggle_favorite")

	routine, ok := handler.store.FindByID(id)
	if !ok {
		// deleted in the meantime
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.add")
	defer span.End()

	routine, ok := handler.store.FindByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CatalogExerciseID == "" {
		http.Error(w, "error, catalog exercise id missing", http.StatusBadRequest)
		return
	}

	var (
		template Exercise
		found    bool
	)
	for _, e := range handler.store.Catalog() {
		if e.ID == req.CatalogExerciseID {
			template, found = e, true
			break
		}
	}
	if !found {
		http.Error(w, "error, catalog exercise not found", http.StatusNotFound)
		return
	}

	handler.saveAndRespond(ctx, w, AddExercise(routine, template, handler.newID), "exercise_add")
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.update")
	defer span.End()

	vars := mux.Vars(r)
	routine, ok := handler.store.FindByID(vars["id"])
	if !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}

	var details ExerciseDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "error, invalid exercise details", http.StatusBadRequest)
		return
	}

	updated, ok := UpdateExercise(routine, vars["exerciseId"], details)
	if !ok {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}
	if err := updated.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	handler.saveAndRespond(ctx, w, updated, "exercise_update")
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.remove")
	defer span.End()

	vars := mux.Vars(r)
	routine, ok := handler.store.FindByID(vars["id"])
	if !ok {
		http.Error(w, "error, routine not found", http.StatusNotFound)
		return
	}
	if _, ok := routine.FindExercise(vars["exerciseId"]); !ok {
		http.Error(w, "error, exercise not found", http.StatusNotFound)
		return
	}

	handler.saveAndRespond(ctx, w, RemoveExercise(routine, vars["exerciseId"]), "exercise_remove")
}

func (handler *Handler) saveAndRespond(ctx context.Context, w http.ResponseWriter, routine Routine, op string) {
	if err := handler.store.Update(ctx, routine); err != nil {
		pkg.SetPersistError(w, fmt.Errorf("update routine [%s] [%s]: %w", routine.ID, op, err))
	}
	handler.countMutation(op)

	if stored, ok := handler.store.FindByID(routine.ID); ok {
		routine = stored
	}
	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) countMutation(op string) {
	if handler.metricsManager == nil {
		return
	}
	handler.metricsManager.CounterRoutineMutations.WithLabelValues(op).Inc()
}

var errInvalidFavorites = errors.New("error, favorites must be a boolean")

// ParseFilterParams reads the muscle_group and favorites query params.
func ParseFilterParams(r *http.Request) (FilterParams, error) {
	query := r.URL.Query()

	params := FilterParams{
		MuscleGroup: MuscleGroup(query.Get("muscle_group")),
	}
	if params.MuscleGroup != "" && !params.MuscleGroup.IsValid() {
		return FilterParams{}, errors.New("error, invalid muscle group")
	}

	if favorites := query.Get("favorites"); favorites != "" {
		favoritesOnly, err := strconv.ParseBool(favorites)
		if err != nil {
			return FilterParams{}, errInvalidFavorites
		}
		params.FavoritesOnly = favoritesOnly
	}

	return params, nil
}
