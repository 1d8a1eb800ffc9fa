package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Provider identifies which upstream AI API an engine talks to.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// providerKeywords maps engine-name keywords to providers. The slice order is
// the tie-break for names matching more than one keyword.
var providerKeywords = []struct {
	keyword  string
	provider Provider
}{
	{"openai", ProviderOpenAI},
	{"anthropic", ProviderAnthropic},
	{"claude", ProviderAnthropic},
	{"gemini", ProviderGemini},
	{"google", ProviderGemini},
}

// ResolveProvider infers a provider from a free-text engine name by
// case-insensitive substring match, first keyword wins.
func ResolveProvider(engineName string) (Provider, bool) {
	name := strings.ToLower(engineName)
	for _, entry := range providerKeywords {
		if strings.Contains(name, entry.keyword) {
			return entry.provider, true
		}
	}
	return "", false
}

type ChatEngine struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	EngineName  string         `json:"engine_name" gorm:"index;not null"`
	Description string         `json:"description"`
	Provider    Provider       `json:"provider" gorm:"type:varchar(32)"`
	APIKey      string         `json:"api_key" gorm:"not null"`
	ChatAPIURL  string         `json:"chat_apiUrl,omitempty"`
	Active      bool           `json:"active" gorm:"index;default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *ChatEngine) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
