package repository

import (
	"github.com/AnanduApillAi/kendo-forms/internal/models"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *models.FormCollection) error
	Update(collection *models.FormCollection) error
	Delete(id uint) error
	GetByID(id uint) (*models.FormCollection, error)
	GetAll() ([]models.FormCollection, error)
	ExistsByName(name string) (bool, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(collection *models.FormCollection) error {
	return r.db.Create(collection).Error
}

func (r *collectionRepository) Update(collection *models.FormCollection) error {
	return r.db.Save(collection).Error
}

func (r *collectionRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.FormCollection{}, id).Error
}

func (r *collectionRepository) GetByID(id uint) (*models.FormCollection, error) {
	var collection models.FormCollection
	if err := r.db.First(&collection, id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) GetAll() ([]models.FormCollection, error) {
	var collections []models.FormCollection
	if err := r.db.Order("form_collections.created_at DESC").Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepository) ExistsByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.FormCollection{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
