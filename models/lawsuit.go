package models

// Lawsuit holds the raw structure of a single case record as it appears in
// the source dataset. The dataset is loaded once at startup and never
// mutated, so these values are safe to share across requests.
type Lawsuit struct {
	NumeroProcesso string       `json:"numeroProcesso" bson:"numeroProcesso"`
	NivelSigilo    int          `json:"nivelSigilo" bson:"nivelSigilo"`
	SiglaTribunal  string       `json:"siglaTribunal" bson:"siglaTribunal"`
	Tramitacoes    []Proceeding `json:"tramitacoes" bson:"tramitacoes"`
}

// LawsuitsFile is the wrapper shape of the source JSON document
type LawsuitsFile struct {
	Content []Lawsuit `json:"content" bson:"content"`
}

// Proceeding is one stage of a case's life cycle, tied to a court degree.
// Optional nested structures stay nil/empty when absent in the source; the
// mapper is responsible for defaulting them on the way out.
type Proceeding struct {
	Grau                       Degree        `json:"grau" bson:"grau"`
	Ativo                      bool          `json:"ativo" bson:"ativo"`
	Liminar                    bool          `json:"liminar,omitempty" bson:"liminar,omitempty"`
	NivelSigilo                int           `json:"nivelSigilo,omitempty" bson:"nivelSigilo,omitempty"`
	ValorAcao                  float64       `json:"valorAcao,omitempty" bson:"valorAcao,omitempty"`
	DataHoraAjuizamento        string        `json:"dataHoraAjuizamento,omitempty" bson:"dataHoraAjuizamento,omitempty"`
	DataHoraUltimaDistribuicao string        `json:"dataHoraUltimaDistribuicao,omitempty" bson:"dataHoraUltimaDistribuicao,omitempty"`
	Classe                     []CaseClass   `json:"classe,omitempty" bson:"classe,omitempty"`
	Assunto                    []Subject     `json:"assunto,omitempty" bson:"assunto,omitempty"`
	OrgaoJulgador              *Court        `json:"orgaoJulgador,omitempty" bson:"orgaoJulgador,omitempty"`
	UltimoMovimento            *LastMovement `json:"ultimoMovimento,omitempty" bson:"ultimoMovimento,omitempty"`
	Partes                     []Party       `json:"partes,omitempty" bson:"partes,omitempty"`
}

// CaseClass is a procedural class attached to a proceeding
type CaseClass struct {
	Codigo    int64  `json:"codigo,omitempty" bson:"codigo,omitempty"`
	Descricao string `json:"descricao" bson:"descricao"`
}

// Subject is a matter in dispute attached to a proceeding
type Subject struct {
	Codigo     int64  `json:"codigo,omitempty" bson:"codigo,omitempty"`
	Descricao  string `json:"descricao" bson:"descricao"`
	Hierarquia string `json:"hierarquia,omitempty" bson:"hierarquia,omitempty"`
}

// Court is a judging-court reference
type Court struct {
	ID   int64  `json:"id,omitempty" bson:"id,omitempty"`
	Nome string `json:"nome" bson:"nome"`
}

// LastMovement is the most recent recorded movement of a proceeding
type LastMovement struct {
	Sequencia     int64         `json:"sequencia,omitempty" bson:"sequencia,omitempty"`
	DataHora      string        `json:"dataHora" bson:"dataHora"`
	Codigo        *MovementCode `json:"codigo,omitempty" bson:"codigo,omitempty"`
	Descricao     string        `json:"descricao" bson:"descricao"`
	Classe        *CaseClass    `json:"classe,omitempty" bson:"classe,omitempty"`
	OrgaoJulgador []Court       `json:"orgaoJulgador,omitempty" bson:"orgaoJulgador,omitempty"`
}

// Party is a participant in a proceeding. The type classifier may arrive in
// either tipoParte or tipoPessoa depending on the source system.
type Party struct {
	Polo           string           `json:"polo" bson:"polo"`
	TipoParte      string           `json:"tipoParte,omitempty" bson:"tipoParte,omitempty"`
	TipoPessoa     string           `json:"tipoPessoa,omitempty" bson:"tipoPessoa,omitempty"`
	Nome           string           `json:"nome" bson:"nome"`
	Sigilosa       bool             `json:"sigilosa,omitempty" bson:"sigilosa,omitempty"`
	Representantes []Representative `json:"representantes,omitempty" bson:"representantes,omitempty"`
}

// Representative is a legal representative of a party
type Representative struct {
	TipoRepresentacao string `json:"tipoRepresentacao,omitempty" bson:"tipoRepresentacao,omitempty"`
	Nome              string `json:"nome" bson:"nome"`
	Situacao          string `json:"situacao,omitempty" bson:"situacao,omitempty"`
}
