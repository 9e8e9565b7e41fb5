package main

import (
	"os"
	"time"

	"github.com/opinacampo/pesquisa-campo-api/internal/infrastructure/database"
	"github.com/opinacampo/pesquisa-campo-api/internal/infrastructure/logger"
	"github.com/opinacampo/pesquisa-campo-api/internal/interfaces/http/middleware"
	"github.com/opinacampo/pesquisa-campo-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	loadErr := godotenv.Load()

	log := logger.New()
	if loadErr != nil {
		log.Warn("arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.WithError(err).Fatal("erro ao configurar o banco de dados")
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Corpo pequeno: a API só recebe parâmetros de mescla
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)
	app.Use(middleware.PerformanceLogger(log))

	// Setup routes
	routes.SetupRoutes(app, db, log)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("servidor iniciado")
	log.Fatal(app.Listen(":" + port))
}
