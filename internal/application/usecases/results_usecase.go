package usecases

import (
	"fmt"
	"time"

	"github.com/opinacampo/pesquisa-campo-api/internal/analysis"
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
	"github.com/opinacampo/pesquisa-campo-api/internal/utils"
)

// ResponseStore é o contrato de persistência de respostas consumido pelos
// casos de uso de análise e mescla
type ResponseStore interface {
	GetResponses(surveyID string, params map[string]interface{}) ([]entities.ResponseRecord, error)
	UpdateAnswers(responseID string, respostas entities.AnswerMap) error
}

// QuestionStore é o contrato de persistência de perguntas
type QuestionStore interface {
	GetQuestions(surveyID string, versao int) ([]entities.Question, error)
	GetQuestion(surveyID, questionID string) (*entities.Question, error)
}

// ResultsUseCase implementa os casos de uso de análise de resultados:
// distribuição de frequência, cruzamento e acompanhamento de coleta.
// As agregações são funções puras sobre um snapshot já buscado; este caso de
// uso apenas encadeia busca e cálculo.
type ResultsUseCase struct {
	responseStore ResponseStore
	questionStore QuestionStore
}

// NewResultsUseCase cria uma nova instância de ResultsUseCase
func NewResultsUseCase(responseStore ResponseStore, questionStore QuestionStore) *ResultsUseCase {
	return &ResultsUseCase{
		responseStore: responseStore,
		questionStore: questionStore,
	}
}

// GetQuestions retorna as perguntas de uma versão do questionário, na ordem
// do formulário
func (u *ResultsUseCase) GetQuestions(surveyID string, versao int) ([]entities.Question, error) {
	return u.questionStore.GetQuestions(surveyID, versao)
}

// GetQuestion retorna uma pergunta específica da pesquisa
func (u *ResultsUseCase) GetQuestion(surveyID, questionID string) (*entities.Question, error) {
	return u.questionStore.GetQuestion(surveyID, questionID)
}

// GetQuestionResults monta a tabela de frequência de uma pergunta sobre o
// subconjunto de respostas recortado por versão e período
func (u *ResultsUseCase) GetQuestionResults(surveyID, questionID string, params map[string]interface{}) (analysis.FrequencyTable, error) {
	responses, err := u.responseStore.GetResponses(surveyID, params)
	if err != nil {
		return analysis.FrequencyTable{}, fmt.Errorf("erro ao montar resultados da pergunta: %w", err)
	}

	return analysis.Aggregate(questionID, responses), nil
}

// GetCrossTab monta o cruzamento entre duas perguntas. Retorno nil sem erro
// significa "sem dados": nenhuma resposta tinha as duas perguntas
// respondidas no recorte pedido.
func (u *ResultsUseCase) GetCrossTab(surveyID, rowQuestionID, colQuestionID string, params map[string]interface{}) (*analysis.CrossTabMatrix, error) {
	responses, err := u.responseStore.GetResponses(surveyID, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar cruzamento: %w", err)
	}

	return analysis.CrossTabulate(rowQuestionID, colQuestionID, responses), nil
}

// GetCollectionTimeline retorna a série diária de entrevistas coletadas.
// Quando o período é informado, dias sem coleta aparecem zerados.
func (u *ResultsUseCase) GetCollectionTimeline(surveyID string, params map[string]interface{}) ([]analysis.DailyCount, error) {
	responses, err := u.responseStore.GetResponses(surveyID, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar série de coleta: %w", err)
	}

	loc := utils.GetBrasilLocation()
	serie := analysis.CountByDay(responses, loc)

	dataInicio, _ := params["data_inicio"].(time.Time)
	dataFim, _ := params["data_fim"].(time.Time)
	if dataInicio.IsZero() || dataFim.IsZero() {
		return serie, nil
	}

	// Preencher dias sem coleta dentro do período pedido
	porDia := make(map[string]int, len(serie))
	for _, d := range serie {
		porDia[d.Data] = d.Quantidade
	}

	dias := utils.GenerateDateRange(dataInicio.In(loc), dataFim.In(loc))
	completa := make([]analysis.DailyCount, 0, len(dias))
	for _, dia := range dias {
		completa = append(completa, analysis.DailyCount{Data: dia, Quantidade: porDia[dia]})
	}

	return completa, nil
}

// ParseDateParam converte uma string de data para time.Time
func (u *ResultsUseCase) ParseDateParam(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	// Tentar formato ISO8601 com timezone
	t, err := time.Parse(time.RFC3339, dateStr)
	if err == nil {
		return t, nil
	}

	// Tentar formato de data simples
	t, err = time.Parse("2006-01-02", dateStr)
	if err == nil {
		// Definir hora para início do dia (00:00:00)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, utils.GetBrasilLocation()), nil
	}

	// Tentar formato de data e hora sem timezone
	t, err = time.Parse("2006-01-02T15:04:05", dateStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, err
}
