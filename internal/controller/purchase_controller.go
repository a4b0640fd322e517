package controller

import (
	"errors"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/pkg/serverutils"
	"ai-recipe-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	CreatePurchase(ctx *fiber.Ctx) error
	ListPurchases(ctx *fiber.Ctx) error
}

type purchaseController struct {
	service service.IPurchaseService
}

func NewPurchaseController(service service.IPurchaseService) IPurchaseController {
	return &purchaseController{service: service}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/purchases", authMiddleware)
	h.Post("/", c.CreatePurchase)
	h.Get("/", c.ListPurchases)
}

func (c *purchaseController) CreatePurchase(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.CreatePurchaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.CreatePurchase(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": "Recipe not found",
			})
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Purchase created",
		"data":    res,
	})
}

func (c *purchaseController) ListPurchases(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.ListPurchases(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Purchases retrieved",
		"data":    res,
	})
}
