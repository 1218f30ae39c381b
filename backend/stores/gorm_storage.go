package stores

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord — строка таблицы состояния: одна сериализованная коллекция
// на пару (сессия, ключ).
type StateRecord struct {
	SessionID string         `gorm:"primaryKey;size:64"`
	Key       string         `gorm:"primaryKey;size:64"`
	Blob      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

// GormStorage хранит блобы состояния в базе данных.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (s *GormStorage) Get(sessionID, key string) ([]byte, error) {
	var record StateRecord
	err := s.DB.Where("session_id = ? AND key = ?", sessionID, key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Blob, nil
}

func (s *GormStorage) Put(sessionID, key string, blob []byte) error {
	record := StateRecord{
		SessionID: sessionID,
		Key:       key,
		Blob:      datatypes.JSON(blob),
		UpdatedAt: time.Now(),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		UpdateAll: true,
	}).Create(&record).Error
}

func (s *GormStorage) Delete(sessionID, key string) error {
	return s.DB.Where("session_id = ? AND key = ?", sessionID, key).Delete(&StateRecord{}).Error
}
