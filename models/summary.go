package models

// LawsuitSummary is the list-view shape of a case. Field names follow the
// public wire contract of the upstream dataset.
type LawsuitSummary struct {
	NumeroProcesso   string               `json:"numeroProcesso"`
	SiglaTribunal    string               `json:"siglaTribunal"`
	GrauAtual        string               `json:"grauAtual"`
	ClassePrincipal  *string              `json:"classePrincipal"`
	AssuntoPrincipal *string              `json:"assuntoPrincipal"`
	UltimoMovimento  *LastMovementSummary `json:"ultimoMovimento"`
	PartesResumo     PartiesSummary       `json:"partesResumo"`
}

// LastMovementSummary is the condensed last-movement block of a summary view
type LastMovementSummary struct {
	DataHora      string  `json:"dataHora"`
	Descricao     string  `json:"descricao"`
	OrgaoJulgador *string `json:"orgaoJulgador"`
}

// PartiesSummary splits party display names by role. Both slices are always
// present on the wire, possibly empty.
type PartiesSummary struct {
	Ativo   []string `json:"ativo"`
	Passivo []string `json:"passivo"`
}

// LawsuitListResponse is the paginated list payload
type LawsuitListResponse struct {
	Items      []LawsuitSummary `json:"items"`
	NextCursor *string          `json:"nextCursor"`
}
