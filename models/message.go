package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact-form submission. Rows are created only by
// the public contact endpoint; the admin panel flips Read/Replied.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   *string   `json:"subject,omitempty" db:"subject" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Read      bool      `json:"read" db:"read" gorm:"not null;default:false"`
	Replied   bool      `json:"replied" db:"replied" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
