package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is a labeled subject area, optionally linked to a default prompt used
// to seed AI system-message context. TopicName is a slug and must not contain
// whitespace; TopicLabel is the display name.
type Topic struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	TopicName   string         `json:"topic_name" gorm:"index;not null"`
	TopicLabel  string         `json:"topic_label" gorm:"not null"`
	Description string         `json:"description"`
	Active      bool           `json:"active" gorm:"index;default:true"`
	CreatedBy   string         `json:"created_by" gorm:"index;not null"`
	PromptID    *string        `json:"prompt_id" gorm:"index;type:varchar(36)"`
	Prompt      *Prompt        `json:"prompt,omitempty" gorm:"foreignKey:PromptID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *Topic) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
