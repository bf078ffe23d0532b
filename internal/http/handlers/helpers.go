package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"erp-monolith/internal/apperr"
	"erp-monolith/internal/logx"
)

const bodyLimit = 1 << 20

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, errResponse{Error: msg})
}

// readJSON decodes the request body into dst. Unknown fields are tolerated
// (echo endpoints accept arbitrary extra keys); a malformed or absent body
// maps to apperr.ErrInvalidInput. Response writing is the caller's concern.
func readJSON[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", apperr.ErrInvalidInput)
	}
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// newID generates a collision-free identifier with the original dataset's
// per-entity prefix convention ("emp-", "inv-", "ship-", ...).
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func newRefNumber(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%X", prefix, u[:4])
}

func utcNow() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
