package entity

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseStatus string

const (
	PurchaseStatusInitiated PurchaseStatus = "initiated"
)

type Purchase struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	RecipeId  uuid.UUID
	Provider  string
	Reference string
	Amount    int64
	Currency  string
	Status    PurchaseStatus
	CreatedAt time.Time
}
