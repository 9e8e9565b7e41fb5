package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

func TestExtractValues(t *testing.T) {
	t.Run("resposta ausente", func(t *testing.T) {
		assert.Empty(t, ExtractValues(entities.AnswerValue{Kind: entities.AnswerAbsent}))
	})

	t.Run("texto simples normalizado", func(t *testing.T) {
		assert.Equal(t, []string{"Bom"}, ExtractValues(entities.PlainText("  Bom ")))
	})

	t.Run("texto simples vazio", func(t *testing.T) {
		assert.Empty(t, ExtractValues(entities.PlainText("   ")))
	})

	t.Run("múltipla escolha preserva ordem e duplicatas", func(t *testing.T) {
		av := entities.MultiChoice("Preço", "", "Qualidade", "Preço", "  ")
		assert.Equal(t, []string{"Preço", "Qualidade", "Preço"}, ExtractValues(av))
	})

	t.Run("escolha com outro", func(t *testing.T) {
		av := entities.ChoiceWithOther(" Sim ", "gostei  muito")
		assert.Equal(t, []string{"Sim", "gostei muito"}, ExtractValues(av))
	})

	t.Run("escolha em lista com outro", func(t *testing.T) {
		av := entities.ChoiceListWithOther([]string{"A", "", "B"}, "outro valor")
		assert.Equal(t, []string{"A", "B", "outro valor"}, ExtractValues(av))
	})

	t.Run("formato inválido produz lista vazia", func(t *testing.T) {
		assert.Empty(t, ExtractValues(entities.AnswerValue{Kind: entities.AnswerInvalid}))
	})
}

// Totalidade: qualquer payload vindo do campo, por mais malformado, tem de
// decodificar sem erro e extrair sem pânico
func TestExtractValues_Totality(t *testing.T) {
	payloads := []string{
		`null`,
		`42`,
		`true`,
		`[]`,
		`[1, 2, 3]`,
		`{}`,
		`{"escolha": 7}`,
		`{"escolha": {"nested": true}}`,
		`{"outro": ""}`,
		`["ok", null]`,
	}

	for _, payload := range payloads {
		var av entities.AnswerValue
		err := json.Unmarshal([]byte(payload), &av)
		require.NoError(t, err, "payload %s não pode gerar erro de decodificação", payload)

		assert.NotPanics(t, func() {
			values := ExtractValues(av)
			for _, v := range values {
				assert.NotEmpty(t, v)
			}
		}, "payload %s", payload)
	}
}

func TestExtractSingleValue(t *testing.T) {
	t.Run("primeiro valor de resposta multivalorada", func(t *testing.T) {
		v, ok := ExtractSingleValue(entities.MultiChoice("Sim", "Não"))
		assert.True(t, ok)
		assert.Equal(t, "Sim", v)
	})

	t.Run("sem valor extraível", func(t *testing.T) {
		_, ok := ExtractSingleValue(entities.PlainText("  "))
		assert.False(t, ok)
	})
}
