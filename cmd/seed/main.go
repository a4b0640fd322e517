package main

import (
	"log"
	"os"
	"strings"

	"ai-recipe-be/internal/model"
	"ai-recipe-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type starterRecipe struct {
	Title       string
	Description string
	FullText    string
	Ingredients []string
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Starter Recipe Catalog...")

	recipes := []starterRecipe{
		{
			Title:       "Classic Tomato Pasta",
			Description: "Weeknight pasta with a simple garlic and tomato sauce.",
			FullText:    "Classic Tomato Pasta\n\nIngredients: pasta, tomato, garlic, olive oil\n\n1. Boil the pasta until al dente.\n2. Soften the garlic in olive oil, then add chopped tomato.\n3. Simmer for ten minutes, toss with the pasta and serve.",
			Ingredients: []string{"pasta", "tomato", "garlic", "olive oil"},
		},
		{
			Title:       "Vegetable Fried Rice",
			Description: "Day-old rice stir-fried with egg and mixed vegetables.",
			FullText:    "Vegetable Fried Rice\n\nIngredients: rice, egg, carrot, onion, soy sauce\n\n1. Scramble the egg and set aside.\n2. Stir-fry the carrot and onion until tender.\n3. Add the rice and soy sauce, fold in the egg and serve hot.",
			Ingredients: []string{"rice", "egg", "carrot", "onion", "soy sauce"},
		},
		{
			Title:       "Chicken Vegetable Soup",
			Description: "Gentle broth-based soup for using up vegetables.",
			FullText:    "Chicken Vegetable Soup\n\nIngredients: chicken, carrot, celery, onion\n\n1. Brown the chicken pieces in a pot.\n2. Add the chopped vegetables and cover with water.\n3. Simmer for forty minutes, season and serve.",
			Ingredients: []string{"chicken", "carrot", "celery", "onion"},
		},
		{
			Title:       "Spinach Omelette",
			Description: "Two-egg omelette with wilted spinach and cheese.",
			FullText:    "Spinach Omelette\n\nIngredients: egg, spinach, cheese, butter\n\n1. Wilt the spinach in butter and set aside.\n2. Beat the eggs and pour into the hot pan.\n3. Add the spinach and cheese, fold and serve.",
			Ingredients: []string{"egg", "spinach", "cheese", "butter"},
		},
	}

	for _, r := range recipes {
		var existing model.Recipe
		if err := db.Where("title = ?", r.Title).First(&existing).Error; err == nil {
			color.Yellow("Recipe '%s' already exists, skipping...", r.Title)
			continue
		}

		recipe := model.Recipe{
			Id:          uuid.New(),
			Title:       r.Title,
			Description: r.Description,
			FullText:    r.FullText,
			AiGenerated: false,
		}
		if err := db.Create(&recipe).Error; err != nil {
			color.Red("Error creating recipe '%s': %v", r.Title, err)
			continue
		}

		for _, name := range r.Ingredients {
			ingredient := model.Ingredient{Name: strings.ToLower(name)}
			if err := db.Where("name = ?", ingredient.Name).
				Attrs(model.Ingredient{Id: uuid.New()}).
				FirstOrCreate(&ingredient).Error; err != nil {
				color.Red("Error creating ingredient '%s': %v", name, err)
				continue
			}
			link := model.RecipeIngredient{RecipeId: recipe.Id, IngredientId: ingredient.Id}
			if err := db.Create(&link).Error; err != nil {
				color.Red("Error linking ingredient '%s': %v", name, err)
			}
		}

		color.Green("Created recipe: %s (%d ingredients)", r.Title, len(r.Ingredients))
	}

	color.Cyan("Catalog seeding completed!")
}
