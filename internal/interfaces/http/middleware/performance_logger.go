package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/opinacampo/pesquisa-campo-api/internal/infrastructure/logger"
)

// PerformanceLogger é um middleware que mede o tempo de resposta das rotas
// de análise, que varrem o conjunto completo de respostas da pesquisa
func PerformanceLogger(log *logger.Logger) fiber.Handler {
	// Prefixos de rota monitorados
	monitoredRoutes := []string{
		"/pesquisas",
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     path,
			"status":   c.Response().StatusCode(),
			"duration": duration.String(),
			"query":    c.Request().URI().QueryArgs().String(),
		}).Debug("requisição de análise atendida")

		return err
	}
}
