package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_UnmarshalJSON(t *testing.T) {
	t.Run("string vira texto simples", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`"Bom"`), &av))

		assert.Equal(t, AnswerPlainText, av.Kind)
		assert.Equal(t, "Bom", av.Text)
	})

	t.Run("lista vira múltipla escolha", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`["Preço", "Qualidade"]`), &av))

		assert.Equal(t, AnswerMultiChoice, av.Kind)
		assert.Equal(t, []string{"Preço", "Qualidade"}, av.Items)
	})

	t.Run("objeto vira escolha com outro", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`{"escolha": "Sim", "outro": "detalhe"}`), &av))

		assert.Equal(t, AnswerChoiceWithOther, av.Kind)
		assert.Equal(t, "Sim", av.Text)
		assert.Equal(t, "detalhe", av.Other)
		assert.True(t, av.HasOther)
	})

	t.Run("escolha em lista", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`{"escolha": ["A", "B"]}`), &av))

		assert.True(t, av.ChoiceIsList)
		assert.Equal(t, []string{"A", "B"}, av.Items)
		assert.False(t, av.HasOther)
	})

	t.Run("chaves antigas em inglês são aceitas", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`{"choice": "Sim", "other": "x"}`), &av))

		assert.Equal(t, AnswerChoiceWithOther, av.Kind)
		assert.Equal(t, "Sim", av.Text)
		assert.Equal(t, "x", av.Other)
	})

	t.Run("null vira ausente", func(t *testing.T) {
		var av AnswerValue
		require.NoError(t, json.Unmarshal([]byte(`null`), &av))
		assert.Equal(t, AnswerAbsent, av.Kind)
	})

	t.Run("formato não reconhecido vira inválido sem erro", func(t *testing.T) {
		for _, payload := range []string{`42`, `true`, `[1, 2]`} {
			var av AnswerValue
			require.NoError(t, json.Unmarshal([]byte(payload), &av), "payload %s", payload)
			assert.Equal(t, AnswerInvalid, av.Kind, "payload %s", payload)
		}
	})
}

// A mescla persiste o valor reescrito; o formato de fio precisa sobreviver ao
// ciclo de gravação e releitura
func TestAnswerValue_MarshalPreservaFormato(t *testing.T) {
	valores := []AnswerValue{
		PlainText("Bom"),
		MultiChoice("A", "B"),
		ChoiceWithOther("Sim", "detalhe"),
		ChoiceListWithOther([]string{"A", "B"}, ""),
	}

	for _, original := range valores {
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var relido AnswerValue
		require.NoError(t, json.Unmarshal(data, &relido))
		assert.Equal(t, original.Kind, relido.Kind)
	}
}

func TestAnswerMap_ScanValue(t *testing.T) {
	m := AnswerMap{
		"q1": PlainText("Bom"),
		"q2": MultiChoice("A", "B"),
	}

	raw, err := m.Value()
	require.NoError(t, err)

	var relido AnswerMap
	require.NoError(t, relido.Scan(raw))

	assert.Equal(t, AnswerPlainText, relido["q1"].Kind)
	assert.Equal(t, []string{"A", "B"}, relido["q2"].Items)
}

func TestAnswerMap_ScanNil(t *testing.T) {
	var m AnswerMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}
