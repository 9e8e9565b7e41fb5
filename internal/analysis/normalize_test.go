package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("remove espaços das pontas", func(t *testing.T) {
		assert.Equal(t, "Bom", Normalize("  Bom  "))
	})

	t.Run("colapsa espaços internos", func(t *testing.T) {
		assert.Equal(t, "Raquel Lyra", Normalize("Raquel   Lyra"))
		assert.Equal(t, "a b c", Normalize("a\tb\n c"))
	})

	t.Run("string vazia e só espaços", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \t\n"))
	})

	t.Run("não normaliza caixa", func(t *testing.T) {
		assert.Equal(t, "bom", Normalize("bom"))
		assert.NotEqual(t, Normalize("Bom"), Normalize("bom"))
	})

	t.Run("idempotência", func(t *testing.T) {
		inputs := []string{"", "  Bom  ", "Raquel   Lyra", "já normalizado", " \t ", "Ótimo"}
		for _, s := range inputs {
			once := Normalize(s)
			assert.Equal(t, once, Normalize(once), "Normalize deve ser idempotente para %q", s)
		}
	})
}

func TestNewValueSet(t *testing.T) {
	set := NewValueSet(" Raquel ", "raquel  Lyra", "", "  ")

	assert.Len(t, set, 2)
	assert.True(t, set.Contains("Raquel"))
	assert.True(t, set.Contains("raquel Lyra"))
	assert.False(t, set.Contains("raquel"))
	assert.False(t, set.Contains(""))
}
