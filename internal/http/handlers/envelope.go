package handlers

import (
	"net/http"
	"strconv"

	"erp-monolith/internal/logx"
	"erp-monolith/internal/pagination"
)

// The v2 surface wraps every response in a uniform envelope:
// {success, data|error, timestamp}, plus pagination metadata on lists.

func writeV2(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, body map[string]any) {
	body["success"] = true
	body["timestamp"] = utcNow()
	writeJSON(logger, w, r, status, body)
}

func writeV2Data(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, data any) {
	writeV2(logger, w, r, status, map[string]any{"data": data})
}

func writeV2Page[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, res pagination.Result[T]) {
	writeV2(logger, w, r, http.StatusOK, map[string]any{
		"data":       res.Items,
		"pagination": res.Meta,
		"total":      res.Meta.TotalItems,
	})
}

func writeV2Error(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("method", r.Method),
		logx.String("path", r.URL.Path),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, map[string]any{
		"success":   false,
		"error":     msg,
		"timestamp": utcNow(),
	})
}

// pageParams reads page/limit from the query string. Absent or unparsable
// values fall back to the defaults; range handling is the shaper's concern.
func pageParams(r *http.Request) (page, limit int) {
	page, limit = pagination.DefaultPage, pagination.DefaultLimit
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = v
	}
	return page, limit
}
