package repositories

import (
	"fmt"
	"time"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// ResponseRepository implementa métodos para acesso às respostas coletadas.
// A listagem completa de respostas de uma pesquisa é cacheada por um período
// curto, já que as telas de análise disparam várias agregações sobre o mesmo
// snapshot.
type ResponseRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewResponseRepository cria uma nova instância de ResponseRepository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db:    db,
		cache: cache.New(2*time.Minute, 5*time.Minute),
	}
}

// GetResponses retorna as respostas de uma pesquisa em ordem determinística
// de coleta. Filtros opcionais em params: versao (int), data_inicio e
// data_fim (time.Time), include_entrevistador (bool).
func (r *ResponseRepository) GetResponses(surveyID string, params map[string]interface{}) ([]entities.ResponseRecord, error) {
	versao, _ := params["versao"].(int)
	dataInicio, _ := params["data_inicio"].(time.Time)
	dataFim, _ := params["data_fim"].(time.Time)
	includeEntrevistador, _ := params["include_entrevistador"].(bool)

	cacheKey := fmt.Sprintf("respostas:%s:v%d:%d:%d:%t",
		surveyID, versao, dataInicio.Unix(), dataFim.Unix(), includeEntrevistador)

	if cached, found := r.cache.Get(cacheKey); found {
		if responses, ok := cached.([]entities.ResponseRecord); ok {
			return responses, nil
		}
	}

	query := r.db.Model(&entities.ResponseRecord{}).Where("pesquisa_id = ?", surveyID)

	if versao > 0 {
		query = query.Where("versao_pesquisa = ?", versao)
	}

	if !dataInicio.IsZero() {
		query = query.Where("created_at >= ?", dataInicio)
	}

	if !dataFim.IsZero() {
		query = query.Where("created_at <= ?", dataFim)
	}

	if includeEntrevistador {
		query = query.Preload("Entrevistador")
	}

	// Ordem estável de iteração: a mescla aplica as reescritas nesta ordem
	query = query.Order("created_at ASC, id ASC")

	var responses []entities.ResponseRecord
	if err := query.Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}

	r.cache.Set(cacheKey, responses, cache.DefaultExpiration)

	return responses, nil
}

// UpdateAnswers persiste o mapa de respostas reescrito de um único registro.
// É a operação update-by-id usada pela mescla; cada registro é gravado de
// forma independente, sem transação englobando a operação inteira.
func (r *ResponseRepository) UpdateAnswers(responseID string, respostas entities.AnswerMap) error {
	result := r.db.Model(&entities.ResponseRecord{}).
		Where("id = ?", responseID).
		Update("respostas", respostas)

	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar respostas do registro %s: %w", responseID, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("registro de resposta %s não encontrado", responseID)
	}

	// O snapshot cacheado ficou obsoleto
	r.cache.Flush()

	return nil
}
