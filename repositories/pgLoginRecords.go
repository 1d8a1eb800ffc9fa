package repositories

import (
	"admin-server/db"
	"admin-server/entities"
)

type loginRecordPgRepository struct {
	db db.Database
}

func NewLoginRecordPgRepository(database db.Database) LoginRecordRepository {
	return &loginRecordPgRepository{db: database}
}

func (r *loginRecordPgRepository) Create(record *entities.LoginRecord) error {
	return r.db.GetDB().Create(record).Error
}

func (r *loginRecordPgRepository) ListAll() ([]entities.LoginRecord, error) {
	var records []entities.LoginRecord
	err := r.db.GetDB().
		Preload("User").
		Order("timestamp DESC").
		Find(&records).Error
	return records, err
}
