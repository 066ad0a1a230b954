package models

// LawsuitDetail is the single-case view returned by the detail endpoint
type LawsuitDetail struct {
	NumeroProcesso  string              `json:"numeroProcesso"`
	SiglaTribunal   string              `json:"siglaTribunal"`
	NivelSigilo     int                 `json:"nivelSigilo"`
	TramitacaoAtual CurrentProceeding   `json:"tramitacaoAtual"`
	Partes          []PartyDetail       `json:"partes"`
	UltimoMovimento *LastMovementDetail `json:"ultimoMovimento"`
}

// CurrentProceeding describes the proceeding selected as the case's present
// status
type CurrentProceeding struct {
	Grau             string   `json:"grau"`
	OrgaoJulgador    *string  `json:"orgaoJulgador"`
	Classes          []string `json:"classes"`
	Assuntos         []string `json:"assuntos"`
	DataDistribuicao *string  `json:"dataDistribuicao"`
	DataAutuacao     *string  `json:"dataAutuacao"`
}

// PartyDetail is a fully mapped party with its role normalized to
// "ativo"/"passivo"
type PartyDetail struct {
	Nome           string                 `json:"nome"`
	Polo           string                 `json:"polo"`
	TipoParte      *string                `json:"tipoParte"`
	Representantes []RepresentativeDetail `json:"representantes"`
}

// RepresentativeDetail is one legal representative of a party
type RepresentativeDetail struct {
	Nome string  `json:"nome"`
	Tipo *string `json:"tipo"`
}

// LastMovementDetail is the full last-movement block of a detail view
type LastMovementDetail struct {
	Data          string  `json:"data"`
	Descricao     string  `json:"descricao"`
	OrgaoJulgador *string `json:"orgaoJulgador"`
	Codigo        *string `json:"codigo"`
}
