package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueryHistory is one append-only ledger row: the ingredients a user
// submitted and the text that came back. Rows are never updated.
type QueryHistory struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	QueryText    string
	Ingredients  []string
	ResponseText *string
	Fallback     bool
	CreatedAt    time.Time
}
