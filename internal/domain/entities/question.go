package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Tipos de pergunta suportados pelo formulário
const (
	QuestionTextoLivre      = "texto_livre"
	QuestionEscolhaUnica    = "escolha_unica"
	QuestionMultiplaEscolha = "multipla_escolha"
	QuestionSelect          = "select"
)

// Tipos de estímulo da pergunta
const (
	PromptEspontanea = "espontanea"
	PromptEstimulada = "estimulada"
	PromptMista      = "mista"
)

// Question representa uma pergunta de uma edição do questionário.
// Perguntas são imutáveis: uma edição do questionário gera uma nova versão
// em vez de alterar a pergunta existente.
type Question struct {
	ID           string                      `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	SurveyID     string                      `json:"pesquisa_id" gorm:"column:pesquisa_id;type:uuid;index"`
	Texto        string                      `json:"texto" gorm:"column:texto"`
	Tipo         string                      `json:"tipo" gorm:"column:tipo"`
	TipoPergunta string                      `json:"tipo_pergunta" gorm:"column:tipo_pergunta"`
	Ordem        int                         `json:"ordem" gorm:"column:ordem"`
	Opcoes       datatypes.JSONSlice[string] `json:"opcoes,omitempty" gorm:"column:opcoes;type:jsonb"`
	Versao       int                         `json:"versao" gorm:"column:versao;index"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"column:created_at"`
}

// TableName define o nome da tabela no banco
func (Question) TableName() string {
	return "perguntas"
}
