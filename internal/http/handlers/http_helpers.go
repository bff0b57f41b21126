package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	repo "github.com/nupl21/dieta-app/internal/repo"
	"go.uber.org/zap"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.Warn("failed to write JSON response", zap.Error(err))
	}
}

// storeError reports a repository failure. Failures of the backing store
// are answered with 502 so clients can tell them from server bugs.
func storeError(w http.ResponseWriter, err error, msg string) {
	logger.Error(msg, zap.Error(err))
	switch {
	case errors.Is(err, repo.ErrUnknownWorksheet):
		http.Error(w, "unknown worksheet", http.StatusNotFound)
	case errors.Is(err, repo.ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrStoreFailure):
		http.Error(w, msg, http.StatusBadGateway)
	default:
		http.Error(w, msg, http.StatusInternalServerError)
	}
}
