package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginRecord is an append-only entry written on every successful login.
type LoginRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36);not null"`
	User      *User     `json:"-" gorm:"foreignKey:UserID"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

func (l *LoginRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	return nil
}
