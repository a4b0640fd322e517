package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipeId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider  string    `gorm:"type:varchar(50);not null"`
	Reference string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Amount    int64     `gorm:"not null"`
	Currency  string    `gorm:"type:varchar(10);not null;default:'NGN'"`
	Status    string    `gorm:"type:varchar(50);not null;default:'initiated'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}
