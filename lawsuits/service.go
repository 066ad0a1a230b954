// Package lawsuits composes the store, normalizer, and pager into the two
// read operations exposed at the boundary.
package lawsuits

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/juscode/lawsuit-api/databases"
	"github.com/juscode/lawsuit-api/mapper"
	"github.com/juscode/lawsuit-api/models"
	"github.com/juscode/lawsuit-api/pagination"
)

// ErrNotFound is returned by Detail when no record matches the case number
var ErrNotFound = errors.New("lawsuit not found")

// degreeShorthand matches free-text queries like "g2" that are really degree
// filters in disguise
var degreeShorthand = regexp.MustCompile(`^[Gg]\d+$`)

// ListParams are the already-validated inputs of the list operation
type ListParams struct {
	Query    string
	Tribunal string
	Grau     string
	Cursor   string
	Limit    int
}

// ListResult is one page of summaries plus the resume token for the next
type ListResult struct {
	Items      []models.LawsuitSummary
	NextCursor *string
}

// Service answers queries over the immutable lawsuit dataset
type Service struct {
	store *databases.Store
}

// NewService creates a service over the given store
func NewService(store *databases.Store) *Service {
	return &Service{store: store}
}

// List runs the query pipeline: shorthand detection, raw search,
// normalization, derived-degree filter, pagination. The degree filter must
// run on normalized summaries — a case with stages in several degrees only
// matches the degree of its currently selected proceeding.
func (s *Service) List(params ListParams) (ListResult, error) {
	textQuery := strings.TrimSpace(params.Query)
	degree := strings.TrimSpace(params.Grau)

	// a pure degree query ("g2") is a filter, not a text search; an
	// explicit grau parameter still wins over it
	if degreeShorthand.MatchString(textQuery) {
		if degree == "" {
			degree = textQuery
		}
		textQuery = ""
	}

	matched := s.store.Search(textQuery, params.Tribunal)

	summaries := make([]models.LawsuitSummary, 0, len(matched))
	for _, l := range matched {
		summary, err := mapper.ToSummary(l)
		if err != nil {
			return ListResult{}, fmt.Errorf("failed to map lawsuit %s: %w", l.NumeroProcesso, err)
		}
		summaries = append(summaries, summary)
	}

	if degree != "" {
		filtered := make([]models.LawsuitSummary, 0, len(summaries))
		for _, summary := range summaries {
			if strings.EqualFold(summary.GrauAtual, degree) {
				filtered = append(filtered, summary)
			}
		}
		summaries = filtered
	}

	limit := params.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	page, next := pagination.Paginate(summaries, func(s models.LawsuitSummary) string {
		return s.NumeroProcesso
	}, params.Cursor, limit)

	return ListResult{Items: page, NextCursor: next}, nil
}

// Detail resolves a single case by exact case number
func (s *Service) Detail(numeroProcesso string) (*models.LawsuitDetail, error) {
	lawsuit := s.store.FindByCaseNumber(numeroProcesso)
	if lawsuit == nil {
		return nil, fmt.Errorf("lawsuit with number %s: %w", numeroProcesso, ErrNotFound)
	}

	detail, err := mapper.ToDetail(*lawsuit)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
