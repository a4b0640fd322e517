package specification

import "gorm.io/gorm"

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reference = ?", s.Reference)
}

type AiGeneratedOnly struct{}

func (s AiGeneratedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ai_generated = ?", true)
}
