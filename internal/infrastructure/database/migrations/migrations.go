package migrations

import (
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate cria/atualiza o schema das tabelas do domínio
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Survey{},
		&entities.Question{},
		&entities.Entrevistador{},
		&entities.ResponseRecord{},
	)
}
