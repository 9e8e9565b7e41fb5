package entities

import (
	"encoding/json"
)

// AnswerKind identifica o formato de uma resposta individual
type AnswerKind int

const (
	// AnswerAbsent indica resposta ausente (pergunta não respondida)
	AnswerAbsent AnswerKind = iota
	// AnswerPlainText indica resposta de texto livre ou escolha única
	AnswerPlainText
	// AnswerMultiChoice indica resposta de múltipla escolha
	AnswerMultiChoice
	// AnswerChoiceWithOther indica escolha com campo "outro" opcional
	AnswerChoiceWithOther
	// AnswerInvalid indica um formato não reconhecido vindo do campo
	AnswerInvalid
)

// AnswerValue representa o valor polimórfico de uma resposta a uma pergunta.
// O dado coletado em campo chega em três formatos: string simples, lista de
// strings, ou objeto {escolha, outro}. Formatos não reconhecidos viram
// AnswerInvalid em vez de erro, para não derrubar as visões agregadas.
type AnswerValue struct {
	Kind AnswerKind

	// Text carrega o valor de AnswerPlainText e a escolha em formato string
	// de AnswerChoiceWithOther
	Text string

	// Items carrega os valores de AnswerMultiChoice e a escolha em formato
	// lista de AnswerChoiceWithOther
	Items []string

	// ChoiceIsList indica se a escolha de AnswerChoiceWithOther veio como lista
	ChoiceIsList bool

	// Other é o texto livre do campo "outro", quando presente
	Other    string
	HasOther bool
}

// PlainText cria um AnswerValue de texto simples
func PlainText(s string) AnswerValue {
	return AnswerValue{Kind: AnswerPlainText, Text: s}
}

// MultiChoice cria um AnswerValue de múltipla escolha
func MultiChoice(items ...string) AnswerValue {
	return AnswerValue{Kind: AnswerMultiChoice, Items: items}
}

// ChoiceWithOther cria um AnswerValue de escolha única com campo "outro"
func ChoiceWithOther(choice, other string) AnswerValue {
	return AnswerValue{Kind: AnswerChoiceWithOther, Text: choice, Other: other, HasOther: other != ""}
}

// ChoiceListWithOther cria um AnswerValue de escolha em lista com campo "outro"
func ChoiceListWithOther(choices []string, other string) AnswerValue {
	return AnswerValue{
		Kind:         AnswerChoiceWithOther,
		Items:        choices,
		ChoiceIsList: true,
		Other:        other,
		HasOther:     other != "",
	}
}

// choiceWithOtherJSON é o formato de fio do objeto escolha-com-outro.
// Aceita tanto as chaves em português quanto as antigas em inglês.
type choiceWithOtherJSON struct {
	Escolha json.RawMessage `json:"escolha,omitempty"`
	Choice  json.RawMessage `json:"choice,omitempty"`
	Outro   *string         `json:"outro,omitempty"`
	Other   *string         `json:"other,omitempty"`
}

// UnmarshalJSON decodifica qualquer um dos três formatos de resposta.
// Nunca retorna erro por formato inesperado: o valor vira AnswerInvalid.
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	*a = AnswerValue{}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		a.Kind = AnswerInvalid
		return nil
	}

	trimmed := string(raw)
	if trimmed == "null" || trimmed == "" {
		a.Kind = AnswerAbsent
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			a.Kind = AnswerInvalid
			return nil
		}
		a.Kind = AnswerPlainText
		a.Text = s
	case '[':
		var items []string
		if err := json.Unmarshal(raw, &items); err != nil {
			a.Kind = AnswerInvalid
			return nil
		}
		a.Kind = AnswerMultiChoice
		a.Items = items
	case '{':
		var obj choiceWithOtherJSON
		if err := json.Unmarshal(raw, &obj); err != nil {
			a.Kind = AnswerInvalid
			return nil
		}
		a.Kind = AnswerChoiceWithOther
		choice := obj.Escolha
		if choice == nil {
			choice = obj.Choice
		}
		if choice != nil {
			var s string
			if err := json.Unmarshal(choice, &s); err == nil {
				a.Text = s
			} else {
				var list []string
				if err := json.Unmarshal(choice, &list); err == nil {
					a.Items = list
					a.ChoiceIsList = true
				}
				// Escolha em formato não reconhecido é ignorada (fail-soft)
			}
		}
		other := obj.Outro
		if other == nil {
			other = obj.Other
		}
		if other != nil {
			a.Other = *other
			a.HasOther = true
		}
	default:
		a.Kind = AnswerInvalid
	}

	return nil
}

// MarshalJSON serializa de volta no formato de fio original de cada variante
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerPlainText:
		return json.Marshal(a.Text)
	case AnswerMultiChoice:
		return json.Marshal(a.Items)
	case AnswerChoiceWithOther:
		obj := make(map[string]interface{}, 2)
		if a.ChoiceIsList {
			obj["escolha"] = a.Items
		} else {
			obj["escolha"] = a.Text
		}
		if a.HasOther {
			obj["outro"] = a.Other
		}
		return json.Marshal(obj)
	default:
		return []byte("null"), nil
	}
}
