package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/opinacampo/pesquisa-campo-api/internal/application/usecases"
)

// ExportHandler lida com o download de resultados agregados
type ExportHandler struct {
	resultsUseCase *usecases.ResultsUseCase
	exportUseCase  *usecases.ExportUseCase
}

// NewExportHandler cria uma nova instância de ExportHandler
func NewExportHandler(resultsUseCase *usecases.ResultsUseCase, exportUseCase *usecases.ExportUseCase) *ExportHandler {
	return &ExportHandler{
		resultsUseCase: resultsUseCase,
		exportUseCase:  exportUseCase,
	}
}

// ExportQuestionResults exporta a tabela de frequência de uma pergunta
// @Summary Exporta a distribuição de respostas de uma pergunta
// @Tags resultados
// @Produce octet-stream
// @Param id path string true "ID da pesquisa"
// @Param pergunta_id path string true "ID da pergunta"
// @Param formato query string false "csv ou xlsx" default(csv)
// @Router /pesquisas/{id}/resultados/{pergunta_id}/exportar [get]
func (h *ExportHandler) ExportQuestionResults(c *fiber.Ctx) error {
	surveyID := c.Params("id")
	questionID := c.Params("pergunta_id")
	formato := c.Query("formato", "csv")

	if formato != "csv" && formato != "xlsx" {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'formato' deve ser csv ou xlsx"})
	}

	question, err := h.resultsUseCase.GetQuestion(surveyID, questionID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pergunta não encontrada"})
	}

	// O recorte por versão e período vale também para a exportação
	resultsHandler := ResultsHandler{resultsUseCase: h.resultsUseCase}
	params, perr := resultsHandler.parseFilterParams(c)
	if perr != nil {
		return c.Status(400).JSON(fiber.Map{"error": perr.Error()})
	}

	table, err := h.resultsUseCase.GetQuestionResults(surveyID, questionID, params)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar resultados: " + err.Error()})
	}

	var payload []byte
	var contentType, extension string

	switch formato {
	case "xlsx":
		payload, err = h.exportUseCase.RenderFrequencyXLSX(question, table)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		extension = "xlsx"
	default:
		payload, err = h.exportUseCase.RenderFrequencyCSV(question, table)
		contentType = "text/csv; charset=utf-8"
		extension = "csv"
	}

	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao gerar arquivo: " + err.Error()})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="resultados-%s.%s"`, questionID, extension))

	return c.Send(payload)
}
