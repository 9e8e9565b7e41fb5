package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opinacampo/pesquisa-campo-api/internal/application/usecases"
)

// MergeHandler lida com a mescla de variantes de resposta livre
type MergeHandler struct {
	mergeUseCase *usecases.MergeUseCase
}

// NewMergeHandler cria uma nova instância de MergeHandler
func NewMergeHandler(mergeUseCase *usecases.MergeUseCase) *MergeHandler {
	return &MergeHandler{
		mergeUseCase: mergeUseCase,
	}
}

// mergeRequest é o corpo da requisição de mescla
type mergeRequest struct {
	PerguntaID     string   `json:"pergunta_id"`
	ValoresAntigos []string `json:"valores_antigos"`
	ValorNovo      string   `json:"valor_novo"`
	Versao         int      `json:"versao"`
}

// Merge aplica a mescla de valores em todas as respostas afetadas
// @Summary Mescla variantes de resposta em um valor canônico
// @Description Reescreve, em toda resposta que contenha um dos valores de origem na pergunta indicada, esse valor pelo valor canônico. Operação não atômica: em falha parcial, a contagem de registros já gravados acompanha o erro e reexecutar é seguro.
// @Tags resultados
// @Accept json
// @Produce json
// @Param id path string true "ID da pesquisa"
// @Param body body mergeRequest true "Parâmetros da mescla"
// @Success 200 {object} map[string]interface{} "Quantidade de registros atualizados"
// @Failure 400 {object} map[string]interface{} "Erro de uso"
// @Failure 500 {object} map[string]interface{} "Falha de persistência (possivelmente parcial)"
// @Router /pesquisas/{id}/mesclar [post]
func (h *MergeHandler) Merge(c *fiber.Ctx) error {
	surveyID := c.Params("id")

	var req mergeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	if req.PerguntaID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Campo 'pergunta_id' é obrigatório"})
	}

	atualizadas, err := h.mergeUseCase.Merge(c.Context(), surveyID, req.PerguntaID, req.ValoresAntigos, req.ValorNovo, req.Versao)
	if err != nil {
		if errors.Is(err, usecases.ErrMergeMinValores) || errors.Is(err, usecases.ErrMergeValorNovoVazio) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}

		// Falha parcial: informar quantos registros já foram gravados para
		// que o usuário saiba que reexecutar a mescla é seguro
		return c.Status(500).JSON(fiber.Map{
			"error":       err.Error(),
			"atualizadas": atualizadas,
		})
	}

	return c.JSON(fiber.Map{"atualizadas": atualizadas})
}
