package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is reference data only. Authorization reads the static tables in the
// auth package; this table exists so the dashboard can list role descriptions.
type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RoleName    string    `json:"role_name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
