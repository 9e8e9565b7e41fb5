package repositories

import (
	"fmt"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
	"github.com/opinacampo/pesquisa-campo-api/internal/utils"
	"gorm.io/gorm"
)

// SurveyRepository implementa métodos para acesso a dados de pesquisas
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// GetSurveys retorna todas as pesquisas com paginação e ordenação
func (r *SurveyRepository) GetSurveys(params map[string]interface{}) ([]entities.Survey, int64, error) {
	var surveys []entities.Survey
	var total int64

	// Obtendo localização para conversão para Brasília
	brazilLocation := utils.GetBrasilLocation()

	query := r.db.Model(&entities.Survey{})

	// Contar total de registros antes da paginação
	query.Count(&total)

	// Aplicar ordenação (apenas colunas conhecidas)
	sortBy, _ := params["sort_by"].(string)
	sortDirection, _ := params["sort_direction"].(string)

	switch sortBy {
	case "nome", "versao_atual", "created_at", "updated_at":
	default:
		sortBy = "created_at"
	}

	if sortDirection != "asc" {
		sortDirection = "desc"
	}

	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortDirection))

	// Aplicar paginação
	page, _ := params["page"].(int)
	limit, _ := params["limit"].(int)

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 10
	}

	offset := (page - 1) * limit
	query = query.Offset(offset).Limit(limit)

	if err := query.Find(&surveys).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar pesquisas: %w", err)
	}

	// Converter timestamps para horário de Brasília
	for i := range surveys {
		surveys[i].CreatedAt = surveys[i].CreatedAt.In(brazilLocation)
		surveys[i].UpdatedAt = surveys[i].UpdatedAt.In(brazilLocation)
	}

	return surveys, total, nil
}

// GetSurvey retorna uma pesquisa pelo id
func (r *SurveyRepository) GetSurvey(surveyID string) (*entities.Survey, error) {
	var survey entities.Survey
	if err := r.db.Where("id = ?", surveyID).First(&survey).Error; err != nil {
		return nil, fmt.Errorf("pesquisa não encontrada: %w", err)
	}
	return &survey, nil
}
