package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

func respostaCom(q string, av entities.AnswerValue) entities.ResponseRecord {
	return entities.ResponseRecord{Respostas: entities.AnswerMap{q: av}}
}

func TestAggregate(t *testing.T) {
	t.Run("normaliza espaços mas preserva caixa", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q1", entities.PlainText("Bom ")),
			respostaCom("q1", entities.PlainText("bom")),
			respostaCom("q1", entities.PlainText(" Ótimo")),
		}

		table := Aggregate("q1", responses)

		assert.Equal(t, 3, table.TotalRespondentes)
		require.Len(t, table.Itens, 3)
		valores := map[string]int{}
		for _, item := range table.Itens {
			valores[item.Valor] = item.Quantidade
		}
		assert.Equal(t, map[string]int{"Bom": 1, "bom": 1, "Ótimo": 1}, valores)
	})

	t.Run("múltipla escolha conta uma vez no total", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q3", entities.MultiChoice("Preço", "Qualidade")),
		}

		table := Aggregate("q3", responses)

		assert.Equal(t, 1, table.TotalRespondentes)
		require.Len(t, table.Itens, 2)
		assert.Equal(t, 1, table.Itens[0].Quantidade)
		assert.Equal(t, 1, table.Itens[1].Quantidade)
	})

	t.Run("duas opções iguais incrementam a mesma categoria duas vezes", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q3", entities.MultiChoice("Preço", "Preço ")),
		}

		table := Aggregate("q3", responses)

		assert.Equal(t, 1, table.TotalRespondentes)
		require.Len(t, table.Itens, 1)
		assert.Equal(t, 2, table.Itens[0].Quantidade)
	})

	t.Run("ordena por contagem decrescente com empate estável", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q1", entities.PlainText("Regular")),
			respostaCom("q1", entities.PlainText("Bom")),
			respostaCom("q1", entities.PlainText("Bom")),
			respostaCom("q1", entities.PlainText("Ruim")),
		}

		table := Aggregate("q1", responses)

		require.Len(t, table.Itens, 3)
		assert.Equal(t, "Bom", table.Itens[0].Valor)
		// Empate entre Regular e Ruim mantém a ordem de primeira ocorrência
		assert.Equal(t, "Regular", table.Itens[1].Valor)
		assert.Equal(t, "Ruim", table.Itens[2].Valor)
	})

	t.Run("percentual com uma casa decimal", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q1", entities.PlainText("Sim")),
			respostaCom("q1", entities.PlainText("Sim")),
			respostaCom("q1", entities.PlainText("Não")),
		}

		table := Aggregate("q1", responses)

		require.Len(t, table.Itens, 2)
		assert.InDelta(t, 66.7, table.Itens[0].Percentual, 0.001)
		assert.InDelta(t, 33.3, table.Itens[1].Percentual, 0.001)
	})

	t.Run("sem respostas", func(t *testing.T) {
		table := Aggregate("q1", nil)

		assert.Equal(t, 0, table.TotalRespondentes)
		assert.Empty(t, table.Itens)
	})

	t.Run("respostas sem valor extraível não contam no total", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q1", entities.PlainText("  ")),
			respostaCom("q2", entities.PlainText("outra pergunta")),
			respostaCom("q1", entities.PlainText("Sim")),
		}

		table := Aggregate("q1", responses)

		assert.Equal(t, 1, table.TotalRespondentes)
	})

	t.Run("invariante: soma das contagens >= total de respondentes", func(t *testing.T) {
		responses := []entities.ResponseRecord{
			respostaCom("q1", entities.MultiChoice("A", "B", "C")),
			respostaCom("q1", entities.PlainText("A")),
			respostaCom("q1", entities.ChoiceWithOther("B", "detalhe")),
		}

		table := Aggregate("q1", responses)

		soma := 0
		for _, item := range table.Itens {
			soma += item.Quantidade
		}
		assert.GreaterOrEqual(t, soma, table.TotalRespondentes)
	})
}

func TestFilterByVersion(t *testing.T) {
	responses := []entities.ResponseRecord{
		{ID: "a", VersaoPesquisa: 1},
		{ID: "b", VersaoPesquisa: 2},
		{ID: "c", VersaoPesquisa: 1},
	}

	t.Run("versão específica", func(t *testing.T) {
		out := FilterByVersion(responses, 1)
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].ID)
		assert.Equal(t, "c", out[1].ID)
	})

	t.Run("versão zero retorna todas", func(t *testing.T) {
		assert.Len(t, FilterByVersion(responses, 0), 3)
	})
}
