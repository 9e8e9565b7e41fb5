package analysis

import (
	"sort"
	"time"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// DailyCount é a quantidade de entrevistas coletadas em um dia
type DailyCount struct {
	Data       string `json:"data"`
	Quantidade int    `json:"quantidade"`
}

// CountByDay agrupa as respostas por dia de coleta no fuso informado,
// em ordem cronológica ascendente. Usado no acompanhamento de campo.
func CountByDay(responses []entities.ResponseRecord, loc *time.Location) []DailyCount {
	counts := make(map[string]int)
	for i := range responses {
		day := responses[i].CreatedAt.In(loc).Format("2006-01-02")
		counts[day]++
	}

	out := make([]DailyCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DailyCount{Data: day, Quantidade: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data < out[j].Data })
	return out
}
