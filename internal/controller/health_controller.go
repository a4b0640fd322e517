package controller

import (
	"ai-recipe-be/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	CheckDatabase(ctx *fiber.Ctx) error
}

type healthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) IHealthController {
	return &healthController{db: db}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health")
	h.Get("/db", c.CheckDatabase)
}

// CheckDatabase round-trips one row to prove connectivity, not just
// that a TCP dial succeeds.
func (c *healthController) CheckDatabase(ctx *fiber.Ctx) error {
	ping := model.Ping{Message: "Hello from Postgres!"}
	if err := c.db.WithContext(ctx.Context()).
		Where(model.Ping{Message: ping.Message}).
		FirstOrCreate(&ping).Error; err != nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"code":    503,
			"message": "Database unreachable",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": ping.Message,
		"data":    fiber.Map{"id": ping.Id},
	})
}
