package analysis

import (
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// RewriteAnswer substitui, preservando o formato da resposta, cada valor cuja
// forma normalizada pertence a oldValues pelo valor canônico newValue.
// Retorna o valor reescrito e se houve alteração.
//
// Regras por formato:
//   - texto simples: o valor inteiro é substituído quando sua forma
//     normalizada pertence ao conjunto;
//   - múltipla escolha: cada elemento é substituído individualmente, os
//     demais ficam intactos (duplicatas após a mescla não são removidas);
//   - escolha com "outro": escolha e campo "outro" são substituídos de forma
//     independente; ambos podem mudar no mesmo registro.
func RewriteAnswer(av entities.AnswerValue, oldValues ValueSet, newValue string) (entities.AnswerValue, bool) {
	changed := false

	switch av.Kind {
	case entities.AnswerPlainText:
		if oldValues.Contains(Normalize(av.Text)) {
			av.Text = newValue
			changed = true
		}

	case entities.AnswerMultiChoice:
		av.Items, changed = rewriteItems(av.Items, oldValues, newValue)

	case entities.AnswerChoiceWithOther:
		if av.ChoiceIsList {
			av.Items, changed = rewriteItems(av.Items, oldValues, newValue)
		} else if oldValues.Contains(Normalize(av.Text)) {
			av.Text = newValue
			changed = true
		}
		if av.HasOther && oldValues.Contains(Normalize(av.Other)) {
			av.Other = newValue
			changed = true
		}
	}

	return av, changed
}

func rewriteItems(items []string, oldValues ValueSet, newValue string) ([]string, bool) {
	changed := false
	out := make([]string, len(items))
	for i, item := range items {
		if oldValues.Contains(Normalize(item)) {
			out[i] = newValue
			changed = true
		} else {
			out[i] = item
		}
	}
	if !changed {
		return items, false
	}
	return out, true
}
