package repositories

import (
	"admin-server/db"
	"admin-server/entities"
)

type promptPgRepository struct {
	db db.Database
}

func NewPromptPgRepository(database db.Database) PromptRepository {
	return &promptPgRepository{db: database}
}

func (r *promptPgRepository) Create(prompt *entities.Prompt) error {
	return r.db.GetDB().Create(prompt).Error
}

func (r *promptPgRepository) GetByID(id string) (*entities.Prompt, error) {
	var prompt entities.Prompt
	err := r.db.GetDB().
		Preload("ChatEngine").
		Where("id = ?", id).First(&prompt).Error
	if err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptPgRepository) List(q PromptQuery) ([]entities.Prompt, int64, error) {
	tx := r.db.GetDB().Model(&entities.Prompt{})

	if q.CreatedBy != "" {
		tx = tx.Where("created_by = ?", q.CreatedBy)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("prompt_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prompts []entities.Prompt
	err := tx.Preload("ChatEngine").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&prompts).Error
	return prompts, total, err
}

func (r *promptPgRepository) ListAll() ([]entities.Prompt, error) {
	var prompts []entities.Prompt
	err := r.db.GetDB().Order("prompt_name ASC").Find(&prompts).Error
	return prompts, err
}

func (r *promptPgRepository) Update(prompt *entities.Prompt) error {
	return r.db.GetDB().Save(prompt).Error
}

func (r *promptPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Prompt{}).Error
}
