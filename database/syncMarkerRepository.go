package database

import (
	"market-adapter/model"

	"github.com/jinzhu/gorm"
)

// ISyncMarkerRepository ... Interface definition for the sync marker store
type ISyncMarkerRepository interface {
	GetMarker(key string) (string, error)
	SaveMarker(key, value string) error
}

// SyncMarkerRepository ... Repository definition for catalog freshness markers
type SyncMarkerRepository struct {
	BaseRepository
}

// GetMarker ... returns the empty string without error when no marker exists yet
func (repo *SyncMarkerRepository) GetMarker(key string) (string, error) {
	marker := model.SyncMarker{}
	if err := repo.DB.Where(&model.SyncMarker{Key: key}).First(&marker).Error; err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", repoError(err)
	}
	return marker.Value, nil
}

// SaveMarker ...
func (repo *SyncMarkerRepository) SaveMarker(key, value string) error {
	marker := model.SyncMarker{Key: key}
	if err := repo.DB.Where(&model.SyncMarker{Key: key}).Assign(model.SyncMarker{Value: value}).FirstOrCreate(&marker).Error; err != nil {
		return repoError(err)
	}
	return nil
}

func isNotFound(err error) bool {
	return gorm.IsRecordNotFoundError(err)
}
