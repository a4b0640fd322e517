package model

// Ping is the connectivity smoke-test row behind /api/health/db.
type Ping struct {
	Id      uint   `gorm:"primaryKey;autoIncrement"`
	Message string `gorm:"type:varchar(50);not null"`
}

func (Ping) TableName() string {
	return "pings"
}
