package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/repositories"
)

// SurveyHandler lida com requisições de listagem de pesquisas
type SurveyHandler struct {
	surveyRepo *repositories.SurveyRepository
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyRepo *repositories.SurveyRepository) *SurveyHandler {
	return &SurveyHandler{
		surveyRepo: surveyRepo,
	}
}

// GetSurveys retorna todas as pesquisas com paginação
// @Summary Retorna todas as pesquisas
// @Description Retorna todas as pesquisas cadastradas, com paginação e ordenação
// @Tags pesquisas
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Param sort_by query string false "Campo de ordenação" default(created_at)
// @Param sort_direction query string false "asc ou desc" default(desc)
// @Success 200 {object} map[string]interface{} "Lista de pesquisas"
// @Router /pesquisas [get]
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'page' inválido"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Parâmetro 'limit' inválido"})
	}

	params := map[string]interface{}{
		"page":           page,
		"limit":          limit,
		"sort_by":        c.Query("sort_by", ""),
		"sort_direction": c.Query("sort_direction", ""),
	}

	surveys, total, err := h.surveyRepo.GetSurveys(params)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar pesquisas: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  surveys,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetSurvey retorna uma pesquisa pelo id
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.surveyRepo.GetSurvey(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Pesquisa não encontrada"})
	}

	return c.JSON(survey)
}
