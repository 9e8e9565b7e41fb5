package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func SetupMiddlewares(app *fiber.App) {
	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://painel.opinacampo.com.br, http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public     fiber.Router
	Resultados fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware func(c *fiber.Ctx) error) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	// Grupo de análise de resultados (com autenticação)
	resultados := app.Group("/pesquisas")
	resultados.Use(authMiddleware)

	return RouteGroups{
		Public:     public,
		Resultados: resultados,
	}
}
