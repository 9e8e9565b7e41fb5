package entities

import (
	"time"
)

// Survey representa uma pesquisa de campo no sistema
type Survey struct {
	ID          string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nome        string    `json:"nome" gorm:"column:nome"`
	Descricao   string    `json:"descricao" gorm:"column:descricao"`
	VersaoAtual int       `json:"versao_atual" gorm:"column:versao_atual"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Perguntas []Question       `json:"perguntas,omitempty" gorm:"foreignKey:SurveyID"`
	Respostas []ResponseRecord `json:"respostas,omitempty" gorm:"foreignKey:SurveyID"`
}

// TableName define o nome da tabela no banco
func (Survey) TableName() string {
	return "pesquisas"
}
