package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type errorResponse struct {
	Detail any `json:"detail"`
}

// validationIssue mirrors one entry of a 422 detail list.
type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Meta    *pageMeta `json:"meta,omitempty"`
}

type pageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeValidation(w http.ResponseWriter, field string, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: []validationIssue{{
		Loc:  []string{"body", field},
		Msg:  err.Error(),
		Type: "value_error",
	}}})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return dec.Decode(v)
}

// intParam reads a positive integer query parameter.
func intParam(r *http.Request, name string, def, maxValue int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return def
	}
	if maxValue > 0 && v > maxValue {
		return maxValue
	}
	return v
}
