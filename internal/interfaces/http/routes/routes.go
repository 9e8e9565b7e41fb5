package routes

import (
	"github.com/opinacampo/pesquisa-campo-api/internal/application/usecases"
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/repositories"
	"github.com/opinacampo/pesquisa-campo-api/internal/infrastructure/logger"
	"github.com/opinacampo/pesquisa-campo-api/internal/interfaces/http/handlers"
	"github.com/opinacampo/pesquisa-campo-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func authMiddleware(c *fiber.Ctx) error {
	// TODO: Implementar autenticação
	return c.Next()
}

func SetupRoutes(app *fiber.App, db *gorm.DB, log *logger.Logger) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag para cache eficiente das visões agregadas
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	surveyRepo := repositories.NewSurveyRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	responseRepo := repositories.NewResponseRepository(db)

	// Use Cases
	resultsUseCase := usecases.NewResultsUseCase(responseRepo, questionRepo)
	mergeUseCase := usecases.NewMergeUseCase(responseRepo, log)
	exportUseCase := usecases.NewExportUseCase()

	// Handlers
	surveyHandler := handlers.NewSurveyHandler(surveyRepo)
	resultsHandler := handlers.NewResultsHandler(resultsUseCase)
	mergeHandler := handlers.NewMergeHandler(mergeUseCase)
	exportHandler := handlers.NewExportHandler(resultsUseCase, exportUseCase)

	// Routes
	groups := middleware.SetupRouteGroups(app, authMiddleware)

	// Listagem de pesquisas
	groups.Public.Get("/pesquisas", surveyHandler.GetSurveys)
	groups.Public.Get("/pesquisas/:id", surveyHandler.GetSurvey)

	// Rotas de análise de resultados
	groups.Resultados.Get("/:id/perguntas", resultsHandler.GetQuestions)
	groups.Resultados.Get("/:id/resultados/:pergunta_id", resultsHandler.GetQuestionResults)
	groups.Resultados.Get("/:id/resultados/:pergunta_id/exportar", exportHandler.ExportQuestionResults)
	groups.Resultados.Get("/:id/cruzamento", resultsHandler.GetCrossTab)
	groups.Resultados.Get("/:id/coleta", resultsHandler.GetCollectionTimeline)

	// A mescla é a única operação com efeito colateral da API de análise
	groups.Resultados.Post("/:id/mesclar", mergeHandler.Merge)
}
