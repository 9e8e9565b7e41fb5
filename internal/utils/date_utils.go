package utils

import "time"

// GetBrasilLocation retorna a localização de São Paulo (UTC-3).
// Todo o recorte por período e a série de coleta usam este fuso, que é o
// fuso de referência das equipes de campo.
func GetBrasilLocation() *time.Location {
	brazilLocation, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback para UTC-3 se não conseguir carregar a localização
		brazilLocation = time.FixedZone("BRT", -3*60*60)
	}
	return brazilLocation
}

// GenerateDateRange gera um array de strings de datas no formato "YYYY-MM-DD"
// para todas as datas no intervalo from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	// Normalizar as datas para início do dia
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())

	result := []string{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		result = append(result, d.Format("2006-01-02"))
	}

	return result
}
