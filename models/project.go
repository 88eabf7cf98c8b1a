package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string                     `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	DemoURL     *string                     `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL   *string                     `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"type:jsonb"`
	Category    string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Featured    bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	Status      Status                      `json:"status" db:"status" gorm:"type:text;not null;default:'draft'"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
