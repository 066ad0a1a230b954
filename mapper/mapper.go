// Package mapper normalizes raw lawsuit records into the summary and detail
// views served by the API. Both operations are pure; missing optional
// structures degrade to null/empty, never to an error.
package mapper

import (
	"strings"

	"github.com/juscode/lawsuit-api/models"
	"github.com/juscode/lawsuit-api/selector"
)

// maxRepresentativesPerParty caps the representatives carried into a detail
// view; extras are silently dropped in original order.
const maxRepresentativesPerParty = 5

const (
	poloAtivo   = "ativo"
	poloPassivo = "passivo"
)

// ToSummary maps a raw lawsuit to its list-view shape. The only possible
// error is a record with no proceedings, surfaced from the selector.
func ToSummary(lawsuit models.Lawsuit) (models.LawsuitSummary, error) {
	current, err := selector.Current(lawsuit.Tramitacoes)
	if err != nil {
		return models.LawsuitSummary{}, err
	}

	parties := collectParties(lawsuit.Tramitacoes, current)

	return models.LawsuitSummary{
		NumeroProcesso:   lawsuit.NumeroProcesso,
		SiglaTribunal:    lawsuit.SiglaTribunal,
		GrauAtual:        current.Grau.Sigla,
		ClassePrincipal:  firstDescription(classDescriptions(current)),
		AssuntoPrincipal: firstDescription(subjectDescriptions(current)),
		UltimoMovimento:  lastMovementSummary(current),
		PartesResumo:     splitPartiesByRole(parties),
	}, nil
}

// ToDetail maps a raw lawsuit to its single-case shape
func ToDetail(lawsuit models.Lawsuit) (models.LawsuitDetail, error) {
	current, err := selector.Current(lawsuit.Tramitacoes)
	if err != nil {
		return models.LawsuitDetail{}, err
	}

	parties := collectParties(lawsuit.Tramitacoes, current)

	movementCourt := lastMovementCourt(current)
	proceedingCourt := courtName(current.OrgaoJulgador)
	resolvedCourt := movementCourt
	if resolvedCourt == nil {
		resolvedCourt = proceedingCourt
	}

	return models.LawsuitDetail{
		NumeroProcesso: lawsuit.NumeroProcesso,
		SiglaTribunal:  lawsuit.SiglaTribunal,
		NivelSigilo:    lawsuit.NivelSigilo,
		TramitacaoAtual: models.CurrentProceeding{
			Grau:             current.Grau.Sigla,
			OrgaoJulgador:    resolvedCourt,
			Classes:          classDescriptions(current),
			Assuntos:         subjectDescriptions(current),
			DataDistribuicao: optionalString(current.DataHoraUltimaDistribuicao),
			DataAutuacao:     optionalString(current.DataHoraAjuizamento),
		},
		Partes:          mapParties(parties),
		UltimoMovimento: lastMovementDetail(current, resolvedCourt),
	}, nil
}

// collectParties gathers parties attached to any proceeding of the case,
// falling back to the current proceeding when no proceeding carries any.
func collectParties(proceedings []models.Proceeding, current *models.Proceeding) []models.Party {
	var all []models.Party
	for _, p := range proceedings {
		all = append(all, p.Partes...)
	}
	if len(all) == 0 {
		return current.Partes
	}
	return all
}

// splitPartiesByRole buckets trimmed party names by role. Roles other than
// ativo/passivo identify other participants and are left out of both lists.
func splitPartiesByRole(parties []models.Party) models.PartiesSummary {
	summary := models.PartiesSummary{
		Ativo:   []string{},
		Passivo: []string{},
	}
	for _, party := range parties {
		name := strings.TrimSpace(party.Nome)
		if name == "" {
			continue
		}
		switch strings.ToLower(party.Polo) {
		case poloAtivo:
			summary.Ativo = append(summary.Ativo, name)
		case poloPassivo:
			summary.Passivo = append(summary.Passivo, name)
		}
	}
	return summary
}

func mapParties(parties []models.Party) []models.PartyDetail {
	mapped := make([]models.PartyDetail, 0, len(parties))
	for _, party := range parties {
		mapped = append(mapped, models.PartyDetail{
			Nome:           strings.TrimSpace(party.Nome),
			Polo:           normalizeRole(party.Polo),
			TipoParte:      partyType(party),
			Representantes: mapRepresentatives(party.Representantes),
		})
	}
	return mapped
}

// normalizeRole lowercases the raw role; anything that is not ativo/passivo
// defaults to ativo. The default is a deliberate policy, not an accident.
func normalizeRole(polo string) string {
	normalized := strings.ToLower(strings.TrimSpace(polo))
	if normalized == poloAtivo || normalized == poloPassivo {
		return normalized
	}
	return poloAtivo
}

// partyType prefers tipoParte over the alternate tipoPessoa field
func partyType(party models.Party) *string {
	if t := optionalString(party.TipoParte); t != nil {
		return t
	}
	return optionalString(party.TipoPessoa)
}

func mapRepresentatives(reps []models.Representative) []models.RepresentativeDetail {
	if len(reps) > maxRepresentativesPerParty {
		reps = reps[:maxRepresentativesPerParty]
	}
	mapped := make([]models.RepresentativeDetail, 0, len(reps))
	for _, rep := range reps {
		mapped = append(mapped, models.RepresentativeDetail{
			Nome: strings.TrimSpace(rep.Nome),
			Tipo: optionalString(rep.TipoRepresentacao),
		})
	}
	return mapped
}

func classDescriptions(p *models.Proceeding) []string {
	descriptions := []string{}
	for _, c := range p.Classe {
		if d := strings.TrimSpace(c.Descricao); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	return descriptions
}

func subjectDescriptions(p *models.Proceeding) []string {
	descriptions := []string{}
	for _, s := range p.Assunto {
		if d := strings.TrimSpace(s.Descricao); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	return descriptions
}

func firstDescription(descriptions []string) *string {
	if len(descriptions) == 0 {
		return nil
	}
	return &descriptions[0]
}

func lastMovementSummary(p *models.Proceeding) *models.LastMovementSummary {
	if p.UltimoMovimento == nil {
		return nil
	}
	return &models.LastMovementSummary{
		DataHora:      p.UltimoMovimento.DataHora,
		Descricao:     strings.TrimSpace(p.UltimoMovimento.Descricao),
		OrgaoJulgador: lastMovementCourt(p),
	}
}

func lastMovementDetail(p *models.Proceeding, resolvedCourt *string) *models.LastMovementDetail {
	if p.UltimoMovimento == nil {
		return nil
	}
	var code *string
	if p.UltimoMovimento.Codigo != nil {
		c := p.UltimoMovimento.Codigo.String()
		code = &c
	}
	return &models.LastMovementDetail{
		Data:          p.UltimoMovimento.DataHora,
		Descricao:     strings.TrimSpace(p.UltimoMovimento.Descricao),
		OrgaoJulgador: resolvedCourt,
		Codigo:        code,
	}
}

// lastMovementCourt returns the trimmed name of the first court associated
// with the last movement, or nil
func lastMovementCourt(p *models.Proceeding) *string {
	if p.UltimoMovimento == nil || len(p.UltimoMovimento.OrgaoJulgador) == 0 {
		return nil
	}
	return courtName(&p.UltimoMovimento.OrgaoJulgador[0])
}

func courtName(court *models.Court) *string {
	if court == nil {
		return nil
	}
	return optionalString(court.Nome)
}

// optionalString trims s and treats an empty result as absent
func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
