package analysis

import (
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// ExtractValues converte qualquer formato de resposta em uma lista plana de
// valores normalizados e não vazios, preservando a ordem e sem deduplicar.
// Total: nunca falha; resposta ausente ou em formato não reconhecido produz
// lista vazia.
func ExtractValues(av entities.AnswerValue) []string {
	switch av.Kind {
	case entities.AnswerPlainText:
		if v := Normalize(av.Text); v != "" {
			return []string{v}
		}
		return nil

	case entities.AnswerMultiChoice:
		return normalizeAll(av.Items)

	case entities.AnswerChoiceWithOther:
		var out []string
		if av.ChoiceIsList {
			out = normalizeAll(av.Items)
		} else if v := Normalize(av.Text); v != "" {
			out = append(out, v)
		}
		if av.HasOther {
			if v := Normalize(av.Other); v != "" {
				out = append(out, v)
			}
		}
		return out

	default:
		// AnswerAbsent e AnswerInvalid não contribuem com valores
		return nil
	}
}

// ExtractSingleValue retorna o primeiro valor extraído da resposta.
// Contrato para eixos de cruzamento: perguntas multivaloradas têm apenas o
// primeiro valor considerado; os demais são descartados.
func ExtractSingleValue(av entities.AnswerValue) (string, bool) {
	values := ExtractValues(av)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func normalizeAll(items []string) []string {
	var out []string
	for _, item := range items {
		if v := Normalize(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
