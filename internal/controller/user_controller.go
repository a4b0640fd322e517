package controller

import (
	"errors"

	"ai-recipe-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	GetProfile(ctx *fiber.Ctx) error
	ListAccounts(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/users")
	h.Get("/me", authMiddleware, c.GetProfile)
	h.Get("/", c.ListAccounts)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": "User not found",
			})
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Profile retrieved",
		"data":    res,
	})
}

// ListAccounts is a diagnostic endpoint. Summaries only, never the
// credential material.
func (c *userController) ListAccounts(ctx *fiber.Ctx) error {
	res, err := c.service.ListAccounts(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Accounts retrieved",
		"data":    res,
	})
}
