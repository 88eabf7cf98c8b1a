package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sanjulagihan/portfolio-backend/models"
	"gorm.io/gorm"
)

// MessageRepo is the only repo written to by an unauthenticated flow: the
// public contact endpoint inserts rows, the admin panel mutates them.
type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// Add inserts a new contact message into the database
func (r *MessageRepo) Add(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindAll returns every message, newest first
func (r *MessageRepo) FindAll() ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

// FindByID returns a message by its ID, or (nil, nil) when no row matches
func (r *MessageRepo) FindByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead flags a message as read and returns the stored row
func (r *MessageRepo) MarkRead(id uuid.UUID) (*models.Message, error) {
	return r.setFlag(id, "read")
}

// MarkReplied flags a message as replied and returns the stored row
func (r *MessageRepo) MarkReplied(id uuid.UUID) (*models.Message, error) {
	return r.setFlag(id, "replied")
}

func (r *MessageRepo) setFlag(id uuid.UUID, column string) (*models.Message, error) {
	err := r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Update(column, true).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a message from the database by id
func (r *MessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Message{}, "id = ?", id).Error
}
