package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adiciona índices para as consultas de análise.
// A listagem de respostas de uma pesquisa é a consulta mais frequente e
// sempre recorta por pesquisa, versão e período.
func AddIndexes(db *gorm.DB) error {
	// Índices para tabela respostas_pesquisa
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_pesquisa_versao ON respostas_pesquisa (pesquisa_id, versao_pesquisa)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_created_at ON respostas_pesquisa (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_entrevistador ON respostas_pesquisa (entrevistador_id)").Error; err != nil {
		return err
	}

	// Índice BRIN para recorte por período (datas de coleta são sequenciais)
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_created_at_brin ON respostas_pesquisa USING BRIN (created_at)").Error; err != nil {
		return err
	}

	// Índice GIN no jsonb de respostas para inspeção ad hoc
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_respostas_respostas_gin ON respostas_pesquisa USING GIN (respostas)").Error; err != nil {
		return err
	}

	// Índices para tabela perguntas
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_perguntas_pesquisa_versao ON perguntas (pesquisa_id, versao, ordem)").Error; err != nil {
		return err
	}

	return nil
}
