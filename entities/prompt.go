package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prompt is reusable system-instruction text, optionally bound to a chat
// engine. The reference is loose: deleting the engine leaves ChatEngineID
// pointing at a missing row and ChatEngine preloads as nil.
type Prompt struct {
	ID           string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PromptName   string         `json:"prompt_name" gorm:"index;not null"`
	Prompt       string         `json:"prompt" gorm:"type:text;not null"`
	Description  string         `json:"description"`
	CreatedBy    string         `json:"created_by" gorm:"index;not null"`
	ChatEngineID *string        `json:"chat_engine_id" gorm:"index;type:varchar(36)"`
	ChatEngine   *ChatEngine    `json:"chat_engine,omitempty" gorm:"foreignKey:ChatEngineID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (p *Prompt) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
