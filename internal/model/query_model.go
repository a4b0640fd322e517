package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QueryHistory struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	QueryText    string         `gorm:"type:text;not null"`
	Ingredients  datatypes.JSON `gorm:"type:jsonb"`
	ResponseText *string        `gorm:"type:text"`
	Fallback     bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}

func (QueryHistory) TableName() string {
	return "query_histories"
}
