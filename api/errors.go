package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

// maxBodySize caps request bodies; the largest legitimate payload is a
// four-player lobby roster.
const maxBodySize = 64 << 10

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeInternalError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	writeError(w, http.StatusInternalServerError, msg)
}

// decodeLenientJSON decodes the request body into T, treating an empty or
// malformed body as the zero value. The game client does not always send
// well-formed JSON, and the original service accepted whatever arrived.
func decodeLenientJSON[T any](r *http.Request) T {
	var v T
	body := http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero
	}
	return v
}
