package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sanjulagihan/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindPublished returns published projects only, newest first. Used by the
// public endpoint; drafts and archived projects never appear here.
func (r *ProjectRepo) FindPublished() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

// FindAll returns every project regardless of status, newest first
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at desc").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or (nil, nil) when no row matches
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update patches only the named fields and returns the stored row
func (r *ProjectRepo) Update(id uuid.UUID, patch map[string]any) (*models.Project, error) {
	if len(patch) > 0 {
		err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(patch).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a project from the database by id. The referenced image
// object is not cleaned up here; the admin flow deletes it separately.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
