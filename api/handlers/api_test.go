package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juscode/lawsuit-api/databases"
	"github.com/juscode/lawsuit-api/models"
)

// newTestApp wires a router over a small fixed dataset
func newTestApp() App {
	a := App{
		Store: databases.NewStore(fixtureLawsuits()),
	}
	a.initializeRoutes()
	return a
}

func fixtureLawsuits() []models.Lawsuit {
	return []models.Lawsuit{
		{
			NumeroProcesso: "0000001-23.2023.8.26.0100",
			SiglaTribunal:  "TJSP",
			Tramitacoes: []models.Proceeding{
				{Grau: models.Degree{Sigla: "G1"}, Ativo: false},
				{
					Grau:  models.Degree{Sigla: "G2"},
					Ativo: true,
					Classe: []models.CaseClass{
						{Descricao: "Apelação Cível"},
					},
					Partes: []models.Party{
						{Polo: "ATIVO", Nome: "Maria da Silva"},
						{Polo: "PASSIVO", Nome: "Banco Exemplo S.A."},
					},
				},
			},
		},
		{
			NumeroProcesso: "0000002-45.2022.8.26.0224",
			SiglaTribunal:  "TJSP",
			Tramitacoes: []models.Proceeding{
				{Grau: models.Degree{Sigla: "G1"}, Ativo: true},
			},
		},
		{
			NumeroProcesso: "0000003-67.2021.4.03.6100",
			SiglaTribunal:  "TRF3",
			Tramitacoes: []models.Proceeding{
				{Grau: models.Degree{Sigla: "G1"}, Ativo: true},
			},
		},
	}
}

func executeRequest(a App, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	assert.Equal(t, expected, actual, "unexpected response code")
}

func TestHealthCheckHandler(t *testing.T) {
	a := newTestApp()

	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Equal(t, `{"alive":true}`, response.Body.String())
}

func TestUnknownRouteReturns404(t *testing.T) {
	a := newTestApp()

	req, _ := http.NewRequest("GET", "/api/v1/nope", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp()

	req, _ := http.NewRequest("GET", "/metrics", nil)
	response := executeRequest(a, req)

	checkResponseCode(t, http.StatusOK, response.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	a := newTestApp()

	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(a, req)

	assert.NotEmpty(t, response.Header().Get("X-Request-Id"))
}

func TestInitialize_UnknownDataSource(t *testing.T) {
	a := App{}
	a.Config.DataSource = "carrier-pigeon"

	err := a.Initialize()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown data source")
}

func TestInitialize_MissingDataFile(t *testing.T) {
	a := App{}
	a.Config.DataSource = "file"
	a.Config.DataFile = "does/not/exist.json"

	err := a.Initialize()
	assert.Error(t, err)
}

func TestInitialize_FromFile(t *testing.T) {
	a := App{}
	a.Config.DataSource = "file"
	a.Config.DataFile = "../../data/lawsuits.json"

	err := a.Initialize()
	assert.NoError(t, err)
	assert.NotNil(t, a.Router)
	assert.Len(t, a.Store.All(), 3)
}
