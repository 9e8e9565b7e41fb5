package analysis

import (
	"sort"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// CrossTabMatrix é a tabela de contingência entre duas perguntas.
// Linhas e colunas saem em ordem lexicográfica ascendente para apresentação
// estável. Invariante: soma dos totais de linha == soma dos totais de coluna
// == total geral.
type CrossTabMatrix struct {
	PerguntaLinha  string                    `json:"pergunta_linha"`
	PerguntaColuna string                    `json:"pergunta_coluna"`
	Linhas         []string                  `json:"linhas"`
	Colunas        []string                  `json:"colunas"`
	Celulas        map[string]map[string]int `json:"celulas"`
	TotaisLinha    map[string]int            `json:"totais_linha"`
	TotaisColuna   map[string]int            `json:"totais_coluna"`
	TotalGeral     int                       `json:"total_geral"`

	// Truncadas conta respostas multivaloradas em um dos eixos, das quais
	// apenas o primeiro valor participou do cruzamento
	Truncadas int `json:"respostas_truncadas,omitempty"`
}

// CrossTabulate monta a matriz de cruzamento entre duas perguntas. Só
// contribuem respostas em que ambas as perguntas têm valor extraível; em
// resposta multivalorada, vale o primeiro valor. Retorna nil quando nenhuma
// resposta contribui com um par válido — estado "sem dados", distinto de uma
// matriz com células zeradas.
func CrossTabulate(rowQuestionID, colQuestionID string, responses []entities.ResponseRecord) *CrossTabMatrix {
	celulas := make(map[string]map[string]int)
	truncadas := 0
	total := 0

	for i := range responses {
		rvs := ExtractValues(responses[i].Answer(rowQuestionID))
		cvs := ExtractValues(responses[i].Answer(colQuestionID))
		if len(rvs) == 0 || len(cvs) == 0 {
			continue
		}
		if len(rvs) > 1 || len(cvs) > 1 {
			truncadas++
		}
		rv, cv := rvs[0], cvs[0]

		if celulas[rv] == nil {
			celulas[rv] = make(map[string]int)
		}
		celulas[rv][cv]++
		total++
	}

	if total == 0 {
		return nil
	}

	totaisLinha := make(map[string]int, len(celulas))
	totaisColuna := make(map[string]int)
	for rv, row := range celulas {
		for cv, n := range row {
			totaisLinha[rv] += n
			totaisColuna[cv] += n
		}
	}

	linhas := make([]string, 0, len(totaisLinha))
	for rv := range totaisLinha {
		linhas = append(linhas, rv)
	}
	sort.Strings(linhas)

	colunas := make([]string, 0, len(totaisColuna))
	for cv := range totaisColuna {
		colunas = append(colunas, cv)
	}
	sort.Strings(colunas)

	return &CrossTabMatrix{
		PerguntaLinha:  rowQuestionID,
		PerguntaColuna: colQuestionID,
		Linhas:         linhas,
		Colunas:        colunas,
		Celulas:        celulas,
		TotaisLinha:    totaisLinha,
		TotaisColuna:   totaisColuna,
		TotalGeral:     total,
		Truncadas:      truncadas,
	}
}
