package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sanjulagihan/portfolio-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindPublished returns published posts only, newest first
func (r *BlogRepo) FindPublished() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Where("status = ?", models.StatusPublished).
		Order("created_at desc").
		Find(&blogs).Error
	return blogs, err
}

// FindAll returns every post regardless of status, newest first
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Order("created_at desc").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a post by its ID, or (nil, nil) when no row matches
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a published post by its slug, or (nil, nil) when no
// row matches. Drafts are not reachable by slug.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog post into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update patches only the named fields and returns the stored row
func (r *BlogRepo) Update(id uuid.UUID, patch map[string]any) (*models.Blog, error) {
	if len(patch) > 0 {
		err := r.db.Model(&models.Blog{}).Where("id = ?", id).Updates(patch).Error
		if err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}

// Delete removes a blog post from the database by id
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
