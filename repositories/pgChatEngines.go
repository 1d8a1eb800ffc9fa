package repositories

import (
	"admin-server/db"
	"admin-server/entities"
)

type chatEnginePgRepository struct {
	db db.Database
}

func NewChatEnginePgRepository(database db.Database) ChatEngineRepository {
	return &chatEnginePgRepository{db: database}
}

func (r *chatEnginePgRepository) Create(engine *entities.ChatEngine) error {
	return r.db.GetDB().Create(engine).Error
}

func (r *chatEnginePgRepository) GetByID(id string) (*entities.ChatEngine, error) {
	var engine entities.ChatEngine
	err := r.db.GetDB().Where("id = ?", id).First(&engine).Error
	if err != nil {
		return nil, err
	}
	return &engine, nil
}

func (r *chatEnginePgRepository) List(q ChatEngineQuery) ([]entities.ChatEngine, int64, error) {
	tx := r.db.GetDB().Model(&entities.ChatEngine{})

	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("engine_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var engines []entities.ChatEngine
	err := tx.Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&engines).Error
	return engines, total, err
}

func (r *chatEnginePgRepository) ListActive() ([]entities.ChatEngine, error) {
	var engines []entities.ChatEngine
	err := r.db.GetDB().
		Where("active = ?", true).
		Order("engine_name ASC").
		Find(&engines).Error
	return engines, err
}

func (r *chatEnginePgRepository) Update(engine *entities.ChatEngine) error {
	return r.db.GetDB().Save(engine).Error
}

func (r *chatEnginePgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.ChatEngine{}).Error
}
