// Command seed populates the database with reference data and a set of
// starter accounts and content for local development.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"admin-server/auth"
	"admin-server/confs"
	"admin-server/db"
	"admin-server/entities"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if _, err := confs.LoadConfig(); err != nil {
		logger.Fatal().Err(err).Msg("error loading config")
	}

	database, err := db.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to DB")
	}
	gdb := database.GetDB()

	seedRoles(gdb, logger)
	admin := seedUsers(gdb, logger)
	engineID := seedChatEngines(gdb, logger)
	promptID := seedPrompts(gdb, logger, admin.Name, engineID)
	seedTopics(gdb, logger, admin.Name, promptID)
	seedSystemInfo(gdb, logger)

	logger.Info().Msg("seeding complete")
}

// seedRoles mirrors the static permission tables into the roles table so the
// dashboard can list them.
func seedRoles(gdb *gorm.DB, logger zerolog.Logger) {
	for _, role := range auth.AllRoles() {
		record := entities.Role{
			RoleName:    string(role),
			Description: auth.Describe(role),
		}
		if err := gdb.Where("role_name = ?", record.RoleName).FirstOrCreate(&record).Error; err != nil {
			logger.Fatal().Err(err).Str("role", record.RoleName).Msg("failed to seed role")
		}
	}
	logger.Info().Int("count", len(auth.AllRoles())).Msg("roles seeded")
}

func seedUsers(gdb *gorm.DB, logger zerolog.Logger) *entities.User {
	accounts := []struct {
		name     string
		email    string
		password string
		role     auth.Role
	}{
		{"Admin User", "admin@example.com", "admin1234", auth.RoleAppAdmin},
		{"Owner User", "owner@example.com", "owner1234", auth.RoleOwner},
		{"Editor User", "editor@example.com", "editor1234", auth.RoleEditor},
		{"Viewer User", "viewer@example.com", "viewer1234", auth.RoleViewer},
	}

	var admin *entities.User
	for _, a := range accounts {
		var existing entities.User
		err := gdb.Where("email = ?", a.email).First(&existing).Error
		if err == nil {
			if a.role == auth.RoleAppAdmin {
				admin = &existing
			}
			continue
		}

		user := entities.User{
			Name:     a.name,
			Email:    a.email,
			Role:     a.role,
			IsActive: true,
		}
		if err := user.SetPassword(a.password); err != nil {
			logger.Fatal().Err(err).Msg("failed to hash password")
		}
		if err := gdb.Create(&user).Error; err != nil {
			logger.Fatal().Err(err).Str("email", a.email).Msg("failed to seed user")
		}
		logger.Info().Str("email", a.email).Str("role", string(a.role)).Msg("user seeded")
		if a.role == auth.RoleAppAdmin {
			admin = &user
		}
	}
	return admin
}

func seedChatEngines(gdb *gorm.DB, logger zerolog.Logger) string {
	engines := []entities.ChatEngine{
		{
			EngineName:  "OpenAI GPT-4o mini",
			Description: "General purpose engine backed by OpenAI",
			Provider:    entities.ProviderOpenAI,
			APIKey:      "replace-me",
			Active:      true,
		},
		{
			EngineName:  "Claude Sonnet",
			Description: "Anthropic engine for longer form answers",
			Provider:    entities.ProviderAnthropic,
			APIKey:      "replace-me",
			Active:      false,
		},
	}

	var firstID string
	for i := range engines {
		var existing entities.ChatEngine
		if err := gdb.Where("engine_name = ?", engines[i].EngineName).First(&existing).Error; err == nil {
			if firstID == "" {
				firstID = existing.ID
			}
			continue
		}
		if err := gdb.Create(&engines[i]).Error; err != nil {
			logger.Fatal().Err(err).Str("engine", engines[i].EngineName).Msg("failed to seed chat engine")
		}
		logger.Info().Str("engine", engines[i].EngineName).Msg("chat engine seeded")
		if firstID == "" {
			firstID = engines[i].ID
		}
	}
	return firstID
}

func seedPrompts(gdb *gorm.DB, logger zerolog.Logger, createdBy, engineID string) string {
	prompt := entities.Prompt{
		PromptName:  "General Assistant",
		Prompt:      "You are a knowledgeable assistant. Answer clearly and concisely, and say when you are unsure.",
		Description: "Default system prompt for general questions",
		CreatedBy:   createdBy,
	}
	if engineID != "" {
		prompt.ChatEngineID = &engineID
	}

	var existing entities.Prompt
	if err := gdb.Where("prompt_name = ?", prompt.PromptName).First(&existing).Error; err == nil {
		return existing.ID
	}
	if err := gdb.Create(&prompt).Error; err != nil {
		logger.Fatal().Err(err).Msg("failed to seed prompt")
	}
	logger.Info().Str("prompt", prompt.PromptName).Msg("prompt seeded")
	return prompt.ID
}

func seedTopics(gdb *gorm.DB, logger zerolog.Logger, createdBy, promptID string) {
	topics := []entities.Topic{
		{
			TopicName:   "general",
			TopicLabel:  "General",
			Description: "Everyday questions with no particular subject",
			Active:      true,
			CreatedBy:   createdBy,
		},
		{
			TopicName:   "getting-started",
			TopicLabel:  "Getting Started",
			Description: "Questions about setting up and using the platform",
			Active:      true,
			CreatedBy:   createdBy,
		},
	}
	if promptID != "" {
		topics[0].PromptID = &promptID
	}

	for i := range topics {
		var existing entities.Topic
		if err := gdb.Where("topic_name = ?", topics[i].TopicName).First(&existing).Error; err == nil {
			continue
		}
		if err := gdb.Create(&topics[i]).Error; err != nil {
			logger.Fatal().Err(err).Str("topic", topics[i].TopicName).Msg("failed to seed topic")
		}
		logger.Info().Str("topic", topics[i].TopicName).Msg("topic seeded")
	}
}

func seedSystemInfo(gdb *gorm.DB, logger zerolog.Logger) {
	var count int64
	gdb.Model(&entities.SystemInfo{}).Count(&count)
	if count > 0 {
		return
	}

	info := entities.SystemInfo{
		CompanyOwner: "Example Corp",
		Version:      "1.0.0",
		BuildNumber:  "1",
	}
	if err := gdb.Create(&info).Error; err != nil {
		logger.Fatal().Err(err).Msg("failed to seed system info")
	}
	logger.Info().Msg("system info seeded")
}
