package repositories

import (
	"admin-server/db"
	"admin-server/entities"
)

type systemInfoPgRepository struct {
	db db.Database
}

func NewSystemInfoPgRepository(database db.Database) SystemInfoRepository {
	return &systemInfoPgRepository{db: database}
}

func (r *systemInfoPgRepository) Get() (*entities.SystemInfo, error) {
	var info entities.SystemInfo
	err := r.db.GetDB().First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}
