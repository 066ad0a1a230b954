package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/juscode/lawsuit-api/config"
	"github.com/juscode/lawsuit-api/lawsuits"
	"github.com/juscode/lawsuit-api/models"
	"github.com/juscode/lawsuit-api/pagination"
)

// query parameter length limits enforced at the boundary
const (
	maxQueryLength    = 200
	maxTribunalLength = 20
	maxDegreeLength   = 10
)

// Lawsuit exported for testing purposes
type Lawsuit struct {
	Service *lawsuits.Service
}

// ListLawsuitsHandler returns a filtered, cursor-paginated list of lawsuit
// summaries
func (l Lawsuit) ListLawsuitsHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseListParams(r)
	if err != nil {
		config.ErrorStatus("BAD_REQUEST", err.Error(), http.StatusBadRequest, w, err)
		return
	}

	result, err := l.Service.List(params)
	if err != nil {
		config.ErrorStatus("INTERNAL_SERVER_ERROR", "failed to list lawsuits", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.LawsuitListResponse{
		Items:      result.Items,
		NextCursor: result.NextCursor,
	})
	if err != nil {
		config.ErrorStatus("INTERNAL_SERVER_ERROR", "failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LawsuitByCaseNumberHandler returns the detail view of a single lawsuit
func (l Lawsuit) LawsuitByCaseNumberHandler(w http.ResponseWriter, r *http.Request) {
	caseNumber := mux.Vars(r)["case_number"]

	zap.S().Debugf("case_number: %v", caseNumber)

	detail, err := l.Service.Detail(caseNumber)
	if err != nil {
		if errors.Is(err, lawsuits.ErrNotFound) {
			config.ErrorStatus("NOT_FOUND", fmt.Sprintf("lawsuit with number %s not found", caseNumber), http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("INTERNAL_SERVER_ERROR", "failed to get lawsuit", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(detail)
	if err != nil {
		config.ErrorStatus("INTERNAL_SERVER_ERROR", "failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// parseListParams validates the query string of the list endpoint. The core
// only ever sees validated primitives; anything malformed stops here.
func parseListParams(r *http.Request) (lawsuits.ListParams, error) {
	q := r.URL.Query()
	params := lawsuits.ListParams{
		Query:    q.Get("q"),
		Tribunal: q.Get("tribunal"),
		Grau:     q.Get("grau"),
		Cursor:   q.Get("cursor"),
		Limit:    pagination.DefaultLimit,
	}

	if len(params.Query) > maxQueryLength {
		return params, fmt.Errorf("q must be at most %d characters", maxQueryLength)
	}
	if len(params.Tribunal) > maxTribunalLength {
		return params, fmt.Errorf("tribunal must be at most %d characters", maxTribunalLength)
	}
	if len(params.Grau) > maxDegreeLength {
		return params, fmt.Errorf("grau must be at most %d characters", maxDegreeLength)
	}

	if rawLimit := q.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return params, fmt.Errorf("limit must be an integer")
		}
		if limit < 1 || limit > pagination.MaxLimit {
			return params, fmt.Errorf("limit must be between 1 and %d", pagination.MaxLimit)
		}
		params.Limit = limit
	}

	return params, nil
}
