package repositories

import (
	"admin-server/db"
	"admin-server/entities"
)

type topicPgRepository struct {
	db db.Database
}

func NewTopicPgRepository(database db.Database) TopicRepository {
	return &topicPgRepository{db: database}
}

func (r *topicPgRepository) Create(topic *entities.Topic) error {
	return r.db.GetDB().Create(topic).Error
}

func (r *topicPgRepository) GetByID(id string) (*entities.Topic, error) {
	var topic entities.Topic
	err := r.db.GetDB().
		Preload("Prompt").
		Preload("Prompt.ChatEngine").
		Where("id = ?", id).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicPgRepository) List(q TopicQuery) ([]entities.Topic, int64, error) {
	tx := r.db.GetDB().Model(&entities.Topic{})

	if q.CreatedBy != "" {
		tx = tx.Where("created_by = ?", q.CreatedBy)
	}
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("topic_name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var topics []entities.Topic
	err := tx.Preload("Prompt").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&topics).Error
	return topics, total, err
}

func (r *topicPgRepository) ListActive() ([]entities.Topic, error) {
	var topics []entities.Topic
	err := r.db.GetDB().
		Where("active = ?", true).
		Order("topic_label ASC").
		Find(&topics).Error
	return topics, err
}

func (r *topicPgRepository) Update(topic *entities.Topic) error {
	return r.db.GetDB().Save(topic).Error
}

func (r *topicPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Topic{}).Error
}
