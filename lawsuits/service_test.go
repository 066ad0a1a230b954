package lawsuits_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juscode/lawsuit-api/databases"
	"github.com/juscode/lawsuit-api/lawsuits"
	"github.com/juscode/lawsuit-api/models"
)

func singleProceeding(sigla string) []models.Proceeding {
	return []models.Proceeding{
		{Grau: models.Degree{Sigla: sigla}, Ativo: true},
	}
}

func serviceFixture() *lawsuits.Service {
	return lawsuits.NewService(databases.NewStore([]models.Lawsuit{
		{
			NumeroProcesso: "0000001-23.2023.8.26.0100",
			SiglaTribunal:  "TJSP",
			// the first-degree stage is over; only the appeal is active
			Tramitacoes: []models.Proceeding{
				{Grau: models.Degree{Sigla: "G1"}, Ativo: false},
				{
					Grau:  models.Degree{Sigla: "G2"},
					Ativo: true,
					Partes: []models.Party{
						{Polo: "ATIVO", Nome: "Maria da Silva"},
					},
				},
			},
		},
		{
			NumeroProcesso: "0000002-45.2022.8.26.0224",
			SiglaTribunal:  "TJSP",
			Tramitacoes:    singleProceeding("G1"),
		},
		{
			// case number contains the literal text "g3"
			NumeroProcesso: "000g3-00.2020.1.00.0000",
			SiglaTribunal:  "TRF3",
			Tramitacoes:    singleProceeding("G1"),
		},
	}))
}

func TestList_All(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.Nil(t, result.NextCursor)
}

func TestList_DegreeFilterUsesDerivedDegree(t *testing.T) {
	svc := serviceFixture()

	result, err := svc.List(lawsuits.ListParams{Grau: "G2"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "0000001-23.2023.8.26.0100", result.Items[0].NumeroProcesso)

	// the same case has a G1 stage, but its current degree is G2 so the G1
	// filter must not return it
	result, err = svc.List(lawsuits.ListParams{Grau: "G1"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, "G1", item.GrauAtual)
	}
}

func TestList_DegreeFilterIsCaseInsensitive(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{Grau: "g2"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestList_DegreeShorthandInQuery(t *testing.T) {
	// "g3" looks like free text but is reinterpreted as a degree filter, so
	// the case whose number contains the literal "g3" must NOT match
	result, err := serviceFixture().List(lawsuits.ListParams{Query: "g3"})
	assert.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestList_ExplicitDegreeWinsOverShorthand(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{Query: "g3", Grau: "G2"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "G2", result.Items[0].GrauAtual)
}

func TestList_NonShorthandTextStillSearches(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{Query: "maria"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "0000001-23.2023.8.26.0100", result.Items[0].NumeroProcesso)
}

func TestList_TribunalFilter(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{Tribunal: "TRF3"})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "TRF3", result.Items[0].SiglaTribunal)
}

func TestList_Pagination(t *testing.T) {
	var records []models.Lawsuit
	for i := 0; i < 5; i++ {
		records = append(records, models.Lawsuit{
			NumeroProcesso: fmt.Sprintf("000000%d-00.2023.8.26.0100", i),
			SiglaTribunal:  "TJSP",
			Tramitacoes:    singleProceeding("G1"),
		})
	}
	svc := lawsuits.NewService(databases.NewStore(records))

	var seen []string
	cursor := ""
	var sizes []int
	for {
		result, err := svc.List(lawsuits.ListParams{Limit: 2, Cursor: cursor})
		assert.NoError(t, err)
		sizes = append(sizes, len(result.Items))
		for _, item := range result.Items {
			seen = append(seen, item.NumeroProcesso)
		}
		if result.NextCursor == nil {
			break
		}
		cursor = *result.NextCursor
	}

	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Len(t, seen, 5)
	for i, record := range records {
		assert.Equal(t, record.NumeroProcesso, seen[i])
	}
}

func TestList_MalformedCursorRestarts(t *testing.T) {
	result, err := serviceFixture().List(lawsuits.ListParams{Cursor: "not-a-cursor", Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "0000001-23.2023.8.26.0100", result.Items[0].NumeroProcesso)
}

func TestDetail(t *testing.T) {
	detail, err := serviceFixture().Detail("0000001-23.2023.8.26.0100")
	assert.NoError(t, err)
	assert.Equal(t, "G2", detail.TramitacaoAtual.Grau)
}

func TestDetail_NotFound(t *testing.T) {
	_, err := serviceFixture().Detail("9999999-99.9999.9.99.9999")
	assert.ErrorIs(t, err, lawsuits.ErrNotFound)
}
