// Package selector implements the deterministic rule that picks which
// proceeding of a multi-stage case represents its current status.
package selector

import (
	"errors"
	"sort"
	"time"

	"github.com/juscode/lawsuit-api/models"
)

// ErrNoProceedings is returned when a case record arrives with no
// proceedings at all. That is a data-integrity violation, not a condition to
// be defaulted around.
var ErrNoProceedings = errors.New("lawsuit has no proceedings")

// Current picks the proceeding that represents the case's present status:
//
//  1. only active proceedings are ranked; if none are active the first
//     proceeding in original order is returned as-is
//  2. active proceedings are ranked by their own last-distribution timestamp
//     (dataHoraUltimaDistribuicao), most recent first; a proceeding with a
//     parseable timestamp always outranks one without
//  3. ties break by degree ordinal, descending (G2 over G1)
//  4. remaining ties keep original relative order
//
// The returned proceeding aliases the input slice; callers must not mutate it.
func Current(proceedings []models.Proceeding) (*models.Proceeding, error) {
	if len(proceedings) == 0 {
		return nil, ErrNoProceedings
	}

	active := make([]*models.Proceeding, 0, len(proceedings))
	for i := range proceedings {
		if proceedings[i].Ativo {
			active = append(active, &proceedings[i])
		}
	}
	if len(active) == 0 {
		return &proceedings[0], nil
	}

	sort.SliceStable(active, func(i, j int) bool {
		ti, okI := distributionTime(active[i])
		tj, okJ := distributionTime(active[j])

		switch {
		case okI && okJ:
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
		case okI:
			return true
		case okJ:
			return false
		}

		return active[i].Grau.Ordinal() > active[j].Grau.Ordinal()
	})

	return active[0], nil
}

// distributionTime parses the proceeding's recency signal. An unparsable
// timestamp counts as absent.
func distributionTime(p *models.Proceeding) (time.Time, bool) {
	if p.DataHoraUltimaDistribuicao == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, p.DataHoraUltimaDistribuicao)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
