package model

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	FullText    string    `gorm:"type:text;not null"`
	AiGenerated bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients;joinForeignKey:RecipeId;joinReferences:IngredientId"`
}

func (Recipe) TableName() string {
	return "recipes"
}

type Ingredient struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(255);uniqueIndex;not null"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

type RecipeIngredient struct {
	RecipeId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	IngredientId uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}
