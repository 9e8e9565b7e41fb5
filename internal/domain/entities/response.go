package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AnswerMap mapeia o id da pergunta para o valor respondido.
// É persistido como jsonb na coluna "respostas".
type AnswerMap map[string]AnswerValue

// Value implementa driver.Valuer para gravação do jsonb
func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar respostas: %w", err)
	}
	return b, nil
}

// Scan implementa sql.Scanner para leitura do jsonb
func (m *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*m = AnswerMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("tipo inesperado para coluna respostas: %T", value)
	}

	if len(data) == 0 {
		*m = AnswerMap{}
		return nil
	}

	return json.Unmarshal(data, m)
}

// ResponseRecord representa uma submissão completa de entrevista em campo
type ResponseRecord struct {
	ID              string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SurveyID        string    `json:"pesquisa_id" gorm:"column:pesquisa_id;type:uuid;index"`
	VersaoPesquisa  int       `json:"versao_pesquisa" gorm:"column:versao_pesquisa;index"`
	Respostas       AnswerMap `json:"respostas" gorm:"column:respostas;type:jsonb"`
	EntrevistadorID string    `json:"entrevistador_id" gorm:"column:entrevistador_id;type:uuid"`
	Latitude        *float64  `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude       *float64  `json:"longitude,omitempty" gorm:"column:longitude"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`

	// Relações
	Entrevistador *Entrevistador `json:"entrevistador,omitempty" gorm:"foreignKey:EntrevistadorID"`
}

// TableName define o nome da tabela no banco
func (ResponseRecord) TableName() string {
	return "respostas_pesquisa"
}

// Answer retorna o valor respondido para uma pergunta.
// Pergunta sem resposta retorna AnswerAbsent.
func (r *ResponseRecord) Answer(questionID string) AnswerValue {
	if r.Respostas == nil {
		return AnswerValue{Kind: AnswerAbsent}
	}
	av, ok := r.Respostas[questionID]
	if !ok {
		return AnswerValue{Kind: AnswerAbsent}
	}
	return av
}
