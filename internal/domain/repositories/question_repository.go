package repositories

import (
	"fmt"

	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
	"gorm.io/gorm"
)

// QuestionRepository implementa métodos para acesso a dados de perguntas
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository cria uma nova instância de QuestionRepository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// GetQuestions retorna as perguntas de uma pesquisa ordenadas pelo campo
// ordem. Versão > 0 restringe à edição correspondente do questionário.
func (r *QuestionRepository) GetQuestions(surveyID string, versao int) ([]entities.Question, error) {
	var questions []entities.Question

	query := r.db.Where("pesquisa_id = ?", surveyID)
	if versao > 0 {
		query = query.Where("versao = ?", versao)
	}

	if err := query.Order("ordem ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar perguntas: %w", err)
	}

	return questions, nil
}

// GetQuestion retorna uma pergunta específica de uma pesquisa
func (r *QuestionRepository) GetQuestion(surveyID, questionID string) (*entities.Question, error) {
	var question entities.Question
	if err := r.db.Where("pesquisa_id = ? AND id = ?", surveyID, questionID).First(&question).Error; err != nil {
		return nil, fmt.Errorf("pergunta não encontrada: %w", err)
	}
	return &question, nil
}
