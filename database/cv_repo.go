package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sanjulagihan/portfolio-backend/models"
	"gorm.io/gorm"
)

type CVRepo struct {
	db *gorm.DB
}

func NewCVRepo(db *gorm.DB) *CVRepo {
	return &CVRepo{db}
}

// FindAll returns every CV file, newest first
func (r *CVRepo) FindAll() ([]*models.CVFile, error) {
	var files []*models.CVFile
	err := r.db.Order("created_at desc").Find(&files).Error
	return files, err
}

// FindByID returns a CV file by its ID, or (nil, nil) when no row matches
func (r *CVRepo) FindByID(id uuid.UUID) (*models.CVFile, error) {
	var file models.CVFile
	err := r.db.First(&file, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// FindActive returns the newest active CV file, or (nil, nil) when none
// is marked active.
func (r *CVRepo) FindActive() (*models.CVFile, error) {
	var file models.CVFile
	err := r.db.Where("is_active = ?", true).
		Order("created_at desc").
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// Add inserts a new CV file record into the database
func (r *CVRepo) Add(file *models.CVFile) error {
	return r.db.Create(file).Error
}

// Update patches only the named fields and returns the stored row
func (r *CVRepo) Update(id uuid.UUID, patch map[string]any) (*models.CVFile, error) {
	if len(patch) > 0 {
		err := r.db.Model(&models.CVFile{}).Where("id = ?", id).Updates(patch).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a CV file record by id. The stored object in the cv-files
// bucket is deleted separately by the admin flow.
func (r *CVRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CVFile{}, "id = ?", id).Error
}

// SetActive marks exactly one CV file active. Both steps run inside one
// transaction so a failure cannot leave the table with zero active rows.
func (r *CVRepo) SetActive(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CVFile{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CVFile{}).
			Where("id = ?", id).
			Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
