package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

func TestRewriteAnswer(t *testing.T) {
	origem := NewValueSet("Raquel", "raquel Lyra")

	t.Run("texto simples substituído por inteiro", func(t *testing.T) {
		av, mudou := RewriteAnswer(entities.PlainText(" Raquel "), origem, "Raquel Lyra")

		assert.True(t, mudou)
		assert.Equal(t, entities.AnswerPlainText, av.Kind)
		assert.Equal(t, "Raquel Lyra", av.Text)
	})

	t.Run("texto simples fora do conjunto fica intacto", func(t *testing.T) {
		av, mudou := RewriteAnswer(entities.PlainText("Outra pessoa"), origem, "Raquel Lyra")

		assert.False(t, mudou)
		assert.Equal(t, "Outra pessoa", av.Text)
	})

	t.Run("caixa diferente não casa", func(t *testing.T) {
		_, mudou := RewriteAnswer(entities.PlainText("raquel"), origem, "Raquel Lyra")
		assert.False(t, mudou)
	})

	t.Run("múltipla escolha substitui elemento a elemento", func(t *testing.T) {
		av, mudou := RewriteAnswer(
			entities.MultiChoice("Raquel", "João", "raquel  Lyra"),
			origem, "Raquel Lyra")

		assert.True(t, mudou)
		require.Equal(t, entities.AnswerMultiChoice, av.Kind)
		// Duplicatas após a mescla não são removidas
		assert.Equal(t, []string{"Raquel Lyra", "João", "Raquel Lyra"}, av.Items)
	})

	t.Run("escolha e outro substituídos de forma independente", func(t *testing.T) {
		av, mudou := RewriteAnswer(
			entities.ChoiceWithOther("Raquel", "raquel Lyra"),
			origem, "Raquel Lyra")

		assert.True(t, mudou)
		require.Equal(t, entities.AnswerChoiceWithOther, av.Kind)
		assert.Equal(t, "Raquel Lyra", av.Text)
		assert.Equal(t, "Raquel Lyra", av.Other)
	})

	t.Run("escolha em lista com outro intacto", func(t *testing.T) {
		av, mudou := RewriteAnswer(
			entities.ChoiceListWithOther([]string{"Raquel", "João"}, "sem relação"),
			origem, "Raquel Lyra")

		assert.True(t, mudou)
		assert.Equal(t, []string{"Raquel Lyra", "João"}, av.Items)
		assert.Equal(t, "sem relação", av.Other)
	})

	t.Run("resposta ausente nunca muda", func(t *testing.T) {
		_, mudou := RewriteAnswer(entities.AnswerValue{Kind: entities.AnswerAbsent}, origem, "X")
		assert.False(t, mudou)
	})

	t.Run("reescrita é idempotente", func(t *testing.T) {
		av, mudou := RewriteAnswer(entities.PlainText("Raquel"), origem, "Raquel Lyra")
		require.True(t, mudou)

		_, mudouDeNovo := RewriteAnswer(av, origem, "Raquel Lyra")
		assert.False(t, mudouDeNovo)
	})
}
