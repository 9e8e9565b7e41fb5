package entities

import "time"

// Entrevistador representa quem conduziu entrevistas em campo
type Entrevistador struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Nome      string    `json:"nome" gorm:"column:nome"`
	Email     string    `json:"email" gorm:"column:email"`
	Ativo     bool      `json:"ativo" gorm:"column:ativo"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName define o nome da tabela no banco
func (Entrevistador) TableName() string {
	return "entrevistadores"
}
