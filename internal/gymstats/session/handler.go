package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymroutines/internal/telemetry/tracing"
	"github.com/2beens/gymroutines/pkg"
)

type StartRequest struct {
	RoutineID string `json:"routineId"`
	Notes     string `json:"notes,omitempty"`
}

type EditSetRequest struct {
	Field SetField `json:"field"`
	Value *float64 `json:"value"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", handler.HandleStart).Methods("POST", "OPTIONS").Name("sessions-start")
	router.HandleFunc("/sessions/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("sessions-get")
	router.HandleFunc("/sessions/{id}", handler.HandleCancel).Methods("DELETE", "OPTIONS").Name("sessions-cancel")
	router.HandleFunc("/sessions/{id}/sets/{set}", handler.HandleEditSet).Methods("PUT", "OPTIONS").Name("sessions-edit-set")
	router.HandleFunc("/sessions/{id}/notes", handler.HandleSetNotes).Methods("PUT", "OPTIONS").Name("sessions-notes")
	router.HandleFunc("/sessions/{id}/advance", handler.HandleAdvance).Methods("POST", "OPTIONS").Name("sessions-advance")
	router.HandleFunc("/sessions/{id}/retreat", handler.HandleRetreat).Methods("POST", "OPTIONS").Name("sessions-retreat")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.start")
	defer span.End()

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RoutineID == "" {
		http.Error(w, "error, routine id missing", http.StatusBadRequest)
		return
	}

	s, err := handler.manager.Start(req.RoutineID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoutineNotFound):
			http.Error(w, "error, routine not found", http.StatusNotFound)
		case errors.Is(err, ErrEmptyRoutine):
			http.Error(w, "error, routine has no exercises", http.StatusUnprocessableEntity)
		default:
			log.Errorf("start session [%s]: %s", req.RoutineID, err)
			http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, s.View(), http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.get")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) HandleEditSet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.edit_set")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}

	setIndex, err := strconv.Atoi(mux.Vars(r)["set"])
	if err != nil {
		http.Error(w, "error, set index NaN", http.StatusBadRequest)
		return
	}

	var req EditSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		http.Error(w, "error, numeric value missing", http.StatusBadRequest)
		return
	}

	if err := s.EditSet(setIndex, req.Field, *req.Value); err != nil {
		handler.writeSessionError(w, s, err)
		return
	}

	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) HandleSetNotes(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.notes")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}

	var req NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "error, invalid notes", http.StatusBadRequest)
		return
	}
	if err := s.SetNotes(req.Notes); err != nil {
		handler.writeSessionError(w, s, err)
		return
	}

	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.advance")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}

	state, err := s.Advance(ctx)
	if err != nil {
		if _, finished := state.(Finished); !finished || errors.Is(err, ErrSessionEnded) {
			handler.writeSessionError(w, s, err)
			return
		}
		// finished, the log is kept in memory but could not be persisted
		pkg.SetPersistError(w, fmt.Errorf("session [%s] finished: %w", s.ID(), err))
	}

	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) HandleRetreat(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.retreat")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}

	if _, err := s.Retreat(); err != nil {
		handler.writeSessionError(w, s, err)
		return
	}

	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.session.cancel")
	defer span.End()

	s, ok := handler.session(w, r)
	if !ok {
		return
	}

	if err := s.Cancel(); err != nil {
		handler.writeSessionError(w, s, err)
		return
	}

	pkg.WriteJSON(w, s.View(), http.StatusOK)
}

func (handler *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, session id empty", http.StatusBadRequest)
		return nil, false
	}

	s, err := handler.manager.Get(id)
	if err != nil {
		http.Error(w, "error, session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (handler *Handler) writeSessionError(w http.ResponseWriter, s *Session, err error) {
	switch {
	case errors.Is(err, ErrSessionEnded):
		http.Error(w, "error, session already ended", http.StatusConflict)
	case errors.Is(err, ErrSetIndexOutOfRange), errors.Is(err, ErrInvalidSetField):
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("session [%s]: %s", s.ID(), err)
		http.Error(w, "error, session operation failed", http.StatusInternalServerError)
	}
}
