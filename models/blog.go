package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog post. Slug and ReadTime are derived from the
// title and content on create and whenever either changes; see derive.go.
type Blog struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null"`
	Status    Status    `json:"status" db:"status" gorm:"type:text;not null;default:'draft'"`
	ReadTime  int       `json:"read_time" db:"read_time" gorm:"not null;default:1"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
