package databases

import (
	"strings"

	"github.com/juscode/lawsuit-api/models"
)

// Store holds the in-memory lawsuit dataset. It is built once at startup and
// read-only afterwards, so it is safe for concurrent use without locking.
type Store struct {
	lawsuits []models.Lawsuit
}

// NewStore wraps an already-validated dataset
func NewStore(lawsuits []models.Lawsuit) *Store {
	return &Store{lawsuits: lawsuits}
}

// All returns every record in original dataset order
func (s *Store) All() []models.Lawsuit {
	return s.lawsuits
}

// FindByCaseNumber returns the record with the exact case number, or nil.
// Case numbers are unique within the dataset.
func (s *Store) FindByCaseNumber(numeroProcesso string) *models.Lawsuit {
	for i := range s.lawsuits {
		if s.lawsuits[i].NumeroProcesso == numeroProcesso {
			return &s.lawsuits[i]
		}
	}
	return nil
}

// Search filters the dataset by free text and tribunal acronym, preserving
// original order. The degree filter is not applied here: it operates on the
// derived current degree and therefore belongs after normalization, in the
// service layer.
func (s *Store) Search(textQuery, tribunal string) []models.Lawsuit {
	matched := s.lawsuits

	if q := strings.ToLower(strings.TrimSpace(textQuery)); q != "" {
		filtered := make([]models.Lawsuit, 0, len(matched))
		for _, l := range matched {
			if matchesText(l, q) {
				filtered = append(filtered, l)
			}
		}
		matched = filtered
	}

	if t := strings.TrimSpace(tribunal); t != "" {
		filtered := make([]models.Lawsuit, 0, len(matched))
		for _, l := range matched {
			if strings.EqualFold(l.SiglaTribunal, t) {
				filtered = append(filtered, l)
			}
		}
		matched = filtered
	}

	return matched
}

// matchesText reports whether any searchable field of the record contains
// the lowercased query: case number, tribunal acronym, party names, class
// and subject descriptions across all proceedings.
func matchesText(l models.Lawsuit, query string) bool {
	if strings.Contains(strings.ToLower(l.NumeroProcesso), query) {
		return true
	}
	if strings.Contains(strings.ToLower(l.SiglaTribunal), query) {
		return true
	}
	for _, p := range l.Tramitacoes {
		for _, party := range p.Partes {
			if strings.Contains(strings.ToLower(party.Nome), query) {
				return true
			}
		}
		for _, c := range p.Classe {
			if strings.Contains(strings.ToLower(c.Descricao), query) {
				return true
			}
		}
		for _, a := range p.Assunto {
			if strings.Contains(strings.ToLower(a.Descricao), query) {
				return true
			}
		}
	}
	return false
}
