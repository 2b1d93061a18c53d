package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	ContentTypeJSON = "application/json"
	// PersistErrorHeader is set on successful responses whose change is applied
	// in memory but could not be written to storage.
	PersistErrorHeader = "X-Persist-Error"
)

// SetPersistError marks the response with PersistErrorHeader. Call it before writing the body.
func SetPersistError(w http.ResponseWriter, err error) {
	w.Header().Set(PersistErrorHeader, "change kept in memory, storage failed")
	log.Errorf("persist: %s", err)
}

// WriteJSON marshals v and writes it with the given status code.
// A marshal failure results in a 500 and an error log line.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Errorf("failed to write response [%s]: %s", body, err)
	}
}
