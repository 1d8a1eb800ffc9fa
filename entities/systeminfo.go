package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemInfo is a singleton row, read-only from the API surface.
type SystemInfo struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CompanyOwner string `json:"company_owner" gorm:"not null"`
	Version      string `json:"version" gorm:"not null"`
	BuildNumber  string `json:"build_number" gorm:"not null"`
}

func (s *SystemInfo) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
