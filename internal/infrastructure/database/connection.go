package database

import (
	"context"

	"gorm.io/gorm"
)

// Marca no contexto que a sessão já recebeu o SET timezone
type sessionTZKey struct{}

// sessionTimezoneCallback define o fuso da sessão antes de cada consulta.
// O recorte por período (data_inicio/data_fim) e a série diária de coleta
// comparam timestamps no fuso das equipes de campo, não em UTC.
func sessionTimezoneCallback(db *gorm.DB) {
	if done, _ := db.Statement.Context.Value(sessionTZKey{}).(bool); done {
		// O próprio SET dispara o callback de novo; não recursar
		return
	}

	ctx := context.WithValue(db.Statement.Context, sessionTZKey{}, true)
	db.WithContext(ctx).Exec("SET timezone = 'America/Sao_Paulo'")
}

// RegisterMiddlewares registra os callbacks de sessão no GORM
func RegisterMiddlewares(db *gorm.DB) {
	db.Callback().Query().Before("gorm:query").Register("session_timezone_query", sessionTimezoneCallback)
	db.Callback().Row().Before("gorm:row").Register("session_timezone_row", sessionTimezoneCallback)
}
