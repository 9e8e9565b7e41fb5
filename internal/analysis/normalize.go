package analysis

import "strings"

// Normalize canonicaliza um valor bruto de resposta: remove espaços das
// pontas e colapsa cada sequência interna de espaço em branco em um único
// espaço. Função pura, total e idempotente.
//
// A caixa NÃO é normalizada: "Bom" e "bom" permanecem categorias distintas.
// Comportamento herdado do produto, pendente de revisão.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// ValueSet é um conjunto de valores já normalizados
type ValueSet map[string]struct{}

// NewValueSet monta um conjunto normalizando cada valor e descartando vazios
func NewValueSet(values ...string) ValueSet {
	set := make(ValueSet, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Contains verifica se o valor normalizado pertence ao conjunto
func (s ValueSet) Contains(normalized string) bool {
	_, ok := s[normalized]
	return ok
}
