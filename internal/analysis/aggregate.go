package analysis

import (
	"math"
	"sort"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// FrequencyEntry é uma categoria de resposta com sua contagem e percentual
type FrequencyEntry struct {
	Valor      string  `json:"valor"`
	Quantidade int     `json:"quantidade"`
	Percentual float64 `json:"percentual"`
}

// FrequencyTable é a distribuição de frequência de uma pergunta.
// TotalRespondentes conta respostas que contribuíram com pelo menos um valor;
// uma resposta de múltipla escolha com dois valores conta uma vez no total,
// mas incrementa duas categorias.
type FrequencyTable struct {
	PerguntaID        string           `json:"pergunta_id"`
	TotalRespondentes int              `json:"total_respondentes"`
	Itens             []FrequencyEntry `json:"itens"`
}

// Aggregate monta a tabela de frequência de uma pergunta sobre o conjunto de
// respostas. Itens saem em ordem decrescente de contagem; empates mantêm a
// ordem de primeira ocorrência da categoria (ordenação estável).
func Aggregate(questionID string, responses []entities.ResponseRecord) FrequencyTable {
	counts := make(map[string]int)
	var order []string
	total := 0

	for i := range responses {
		values := ExtractValues(responses[i].Answer(questionID))
		if len(values) == 0 {
			continue
		}
		total++
		for _, v := range values {
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
	}

	itens := make([]FrequencyEntry, 0, len(order))
	for _, v := range order {
		itens = append(itens, FrequencyEntry{Valor: v, Quantidade: counts[v]})
	}

	sort.SliceStable(itens, func(i, j int) bool {
		return itens[i].Quantidade > itens[j].Quantidade
	})

	if total > 0 {
		for i := range itens {
			itens[i].Percentual = roundOneDecimal(float64(itens[i].Quantidade) / float64(total) * 100)
		}
	}

	return FrequencyTable{
		PerguntaID:        questionID,
		TotalRespondentes: total,
		Itens:             itens,
	}
}

// FilterByVersion retorna o subconjunto de respostas coletadas sob a versão
// indicada do questionário. Versão <= 0 significa todas as versões.
func FilterByVersion(responses []entities.ResponseRecord, versao int) []entities.ResponseRecord {
	if versao <= 0 {
		return responses
	}
	var out []entities.ResponseRecord
	for i := range responses {
		if responses[i].VersaoPesquisa == versao {
			out = append(out, responses[i])
		}
	}
	return out
}

func roundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}
