package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/opinacampo/pesquisa-campo-api/internal/application/usecases"
)

// ResultsHandler lida com requisições de análise de resultados
type ResultsHandler struct {
	resultsUseCase *usecases.ResultsUseCase
}

// NewResultsHandler cria uma nova instância de ResultsHandler
func NewResultsHandler(resultsUseCase *usecases.ResultsUseCase) *ResultsHandler {
	return &ResultsHandler{
		resultsUseCase: resultsUseCase,
	}
}

// parseFilterParams monta o mapa de filtros comum às rotas de análise:
// versao, data_inicio e data_fim
func (h *ResultsHandler) parseFilterParams(c *fiber.Ctx) (map[string]interface{}, error) {
	params := make(map[string]interface{})

	versao, err := strconv.Atoi(c.Query("versao", "0"))
	if err != nil || versao < 0 {
		return nil, fiber.NewError(400, "Parâmetro 'versao' inválido")
	}
	if versao > 0 {
		params["versao"] = versao
	}

	dataInicio, err := h.resultsUseCase.ParseDateParam(c.Query("data_inicio", ""))
	if err != nil {
		return nil, fiber.NewError(400, "Formato de data inválido para 'data_inicio'")
	}
	if !dataInicio.IsZero() {
		params["data_inicio"] = dataInicio
	}

	dataFim, err := h.resultsUseCase.ParseDateParam(c.Query("data_fim", ""))
	if err != nil {
		return nil, fiber.NewError(400, "Formato de data inválido para 'data_fim'")
	}
	if !dataFim.IsZero() {
		params["data_fim"] = dataFim
	}

	return params, nil
}

// GetQuestions retorna as perguntas de uma pesquisa
// @Summary Retorna as perguntas de uma pesquisa
// @Description Retorna as perguntas de uma pesquisa na ordem do formulário, com filtro opcional por versão do questionário
// @Tags resultados
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param versao query int false "Versão do questionário (0 = todas)"
// @Success 200 {object} map[string]interface{} "Lista de perguntas"
// @Router /pesquisas/{id}/perguntas [get]
func (h *ResultsHandler) GetQuestions(c *fiber.Ctx) error {
	surveyID := c.Params("id")

	versao, err := strconv.Atoi(c.Query("versao", "0"))
	if err != nil || versao < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'versao' inválido"})
	}

	questions, err := h.resultsUseCase.GetQuestions(surveyID, versao)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar perguntas: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":   questions,
		"total":  len(questions),
		"versao": versao,
	})
}

// GetQuestionResults retorna a tabela de frequência de uma pergunta
// @Summary Retorna a distribuição de respostas de uma pergunta
// @Description Retorna a tabela de frequência das categorias de resposta, com recorte por versão e período
// @Tags resultados
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param pergunta_id path string true "ID da pergunta"
// @Param versao query int false "Versão do questionário (0 = todas)"
// @Param data_inicio query string false "Início do período (ISO8601 ou YYYY-MM-DD)"
// @Param data_fim query string false "Fim do período (ISO8601 ou YYYY-MM-DD)"
// @Success 200 {object} analysis.FrequencyTable "Tabela de frequência"
// @Router /pesquisas/{id}/resultados/{pergunta_id} [get]
func (h *ResultsHandler) GetQuestionResults(c *fiber.Ctx) error {
	surveyID := c.Params("id")
	questionID := c.Params("pergunta_id")

	params, err := h.parseFilterParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	table, err := h.resultsUseCase.GetQuestionResults(surveyID, questionID, params)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar resultados: " + err.Error()})
	}

	return c.JSON(table)
}

// GetCrossTab retorna o cruzamento entre duas perguntas
// @Summary Retorna o cruzamento entre duas perguntas
// @Description Monta a tabela de contingência linha×coluna; respostas sem valor em um dos eixos são ignoradas
// @Tags resultados
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param linha query string true "ID da pergunta do eixo de linhas"
// @Param coluna query string true "ID da pergunta do eixo de colunas"
// @Success 200 {object} map[string]interface{} "Matriz de cruzamento ou estado sem dados"
// @Router /pesquisas/{id}/cruzamento [get]
func (h *ResultsHandler) GetCrossTab(c *fiber.Ctx) error {
	surveyID := c.Params("id")

	rowQID := c.Query("linha", "")
	colQID := c.Query("coluna", "")
	if rowQID == "" || colQID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetros 'linha' e 'coluna' são obrigatórios"})
	}

	params, err := h.parseFilterParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	matrix, err := h.resultsUseCase.GetCrossTab(surveyID, rowQID, colQID, params)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar cruzamento: " + err.Error()})
	}

	// Sem dados não é erro: nenhuma resposta tinha as duas perguntas
	// respondidas no recorte pedido
	if matrix == nil {
		return c.JSON(fiber.Map{
			"sem_dados":       true,
			"pergunta_linha":  rowQID,
			"pergunta_coluna": colQID,
		})
	}

	return c.JSON(matrix)
}

// GetCollectionTimeline retorna a série diária de coleta
// @Summary Retorna a série diária de entrevistas coletadas
// @Tags resultados
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Router /pesquisas/{id}/coleta [get]
func (h *ResultsHandler) GetCollectionTimeline(c *fiber.Ctx) error {
	surveyID := c.Params("id")

	params, err := h.parseFilterParams(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	serie, err := h.resultsUseCase.GetCollectionTimeline(surveyID, params)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao montar série de coleta: " + err.Error()})
	}

	return c.JSON(fiber.Map{"data": serie})
}
