package controller

import (
	"errors"

	"ai-recipe-be/internal/dto"
	"ai-recipe-be/internal/pkg/serverutils"
	"ai-recipe-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecipeController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	Suggest(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ListRecipes(ctx *fiber.Ctx) error
	GetRecipe(ctx *fiber.Ctx) error
	ListIngredients(ctx *fiber.Ctx) error
}

type recipeController struct {
	service service.IRecipeService
}

func NewRecipeController(service service.IRecipeService) IRecipeController {
	return &recipeController{service: service}
}

func (c *recipeController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	h := r.Group("/recipes")
	h.Post("/suggest", authMiddleware, c.Suggest)
	h.Get("/history", authMiddleware, c.History)
	h.Get("/", c.ListRecipes)
	h.Get("/:id", c.GetRecipe)

	r.Get("/ingredients", c.ListIngredients)
}

func (c *recipeController) Suggest(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.SuggestRequest
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

	res, err := c.service.Suggest(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Recipe suggestion generated",
		"data":    res,
	})
}

func (c *recipeController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.service.History(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Query history retrieved",
		"data":    res,
	})
}

func (c *recipeController) ListRecipes(ctx *fiber.Ctx) error {
	res, err := c.service.ListRecipes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Recipes retrieved",
		"data":    res,
	})
}

func (c *recipeController) GetRecipe(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid recipe id")
	}

	res, err := c.service.GetRecipe(ctx.Context(), id)
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
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Recipe retrieved",
		"data":    res,
	})
}

func (c *recipeController) ListIngredients(ctx *fiber.Ctx) error {
	res, err := c.service.ListIngredients(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Ingredients retrieved",
		"data":    res,
	})
}
