package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petrkoval/notes-api/internal/errs"
	"github.com/petrkoval/notes-api/internal/models"
)

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes the uniform error body.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, models.ErrorResponse{
		Message: msg,
		Status:  errs.StatusLabel(status),
		Instant: time.Now().UTC(),
	})
}

// writeClassified runs a service failure through the classifier and writes
// the resulting error body.
func writeClassified(w http.ResponseWriter, err error, family errs.Family) {
	msg, status := errs.Classify(err, family)
	writeError(w, msg, status)
}

// pathID parses the {id} URL parameter. Malformed values come back as 0 so
// the service rejects them as an invalid id before touching persistence.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// parsePageRequest reads page, size, sort and dir query parameters.
func parsePageRequest(r *http.Request) *models.PageRequest {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}

	return &models.PageRequest{
		Page: page,
		Size: size,
		Sort: q.Get("sort"),
		Dir:  q.Get("dir"),
	}
}
