package database

import (
	"net/http"

	"market-adapter/utility/appError"
	"market-adapter/utility/logger"

	"github.com/jinzhu/gorm"
)

// IRepository ... Interface definition for IRepository
type IRepository interface {
	Get(id interface{}, model interface{}) error
	GetByFieldName(field interface{}, model interface{}) error
	FetchByFieldName(field interface{}, model interface{}) error
	Fetch(model interface{}) error
	Create(model interface{}) error
	Update(id interface{}, model interface{}) error
	UpdateOrCreate(checkExistOrUpdate interface{}, model interface{}, update interface{}) error
	Db() *gorm.DB
}

// BaseRepository ... Model definition for database base repository
type BaseRepository struct {
	Database
}

// Get ... Retrieves a specified record from the database by primary key
func (repo *BaseRepository) Get(id interface{}, model interface{}) error {
	if err := repo.DB.First(model, id).Error; err != nil {
		logger.Error("Error with repository Get %s", err)
		return repoError(err)
	}
	return nil
}

// GetByFieldName ... Retrieves a record for the specified model from the database for a given field name
func (repo *BaseRepository) GetByFieldName(field interface{}, model interface{}) error {
	if err := repo.DB.Where(field).First(model).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			logger.Error("Error with repository GetByFieldName %s", err)
		}
		return repoError(err)
	}
	return nil
}

// FetchByFieldName ... Retrieves all records for the specified model from the database for a given field name
func (repo *BaseRepository) FetchByFieldName(field interface{}, model interface{}) error {
	if err := repo.DB.Where(field).Find(model).Error; err != nil {
		logger.Error("Error with repository FetchByFieldName %s", err)
		return repoError(err)
	}
	return nil
}

// Fetch ... Retrieves all records from the database for a given model
func (repo *BaseRepository) Fetch(model interface{}) error {
	if err := repo.DB.Find(model).Error; err != nil {
		logger.Error("Error with repository Fetch %s", err)
		return repoError(err)
	}
	return nil
}

// Create ... Create a record on the database for the specified model
func (repo *BaseRepository) Create(model interface{}) error {
	if err := repo.DB.Create(model).Error; err != nil {
		logger.Error("Error with repository Create %s", err)
		return repoError(err)
	}
	return nil
}

// Update ... Update a specified record from the database for a given model
func (repo *BaseRepository) Update(id interface{}, model interface{}) error {
	if err := repo.DB.Model(id).Update(model).Error; err != nil {
		logger.Error("Error with repository Update %s", err)
		return repoError(err)
	}
	return nil
}

// UpdateOrCreate ... Updates a record if it exists, creates it otherwise
func (repo *BaseRepository) UpdateOrCreate(checkExistOrUpdate interface{}, model interface{}, update interface{}) error {
	if err := repo.DB.Where(checkExistOrUpdate).Assign(update).FirstOrCreate(model).Error; err != nil {
		logger.Error("Error with repository UpdateOrCreate %s", err)
		return repoError(err)
	}
	return nil
}

// Db ... returns the underlying connection for queries the helpers cannot express
func (repo *BaseRepository) Db() *gorm.DB {
	return repo.DB
}

func repoError(err error) error {
	errCode := http.StatusInternalServerError
	if gorm.IsRecordNotFoundError(err) {
		errCode = http.StatusNotFound
	}
	return appError.Err{ErrCode: errCode, ErrType: "DB_ERR", Err: err}
}
