package models

import (
	"time"

	"github.com/google/uuid"
)

// CVFile references an uploaded CV document in the cv-files bucket.
// At most one CV file is active at a time; the invariant is enforced by
// CVRepo.SetActive, which flips all flags in a single transaction.
type CVFile struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	FileName    string    `json:"file_name" db:"file_name" gorm:"type:text;not null"`
	FileURL     string    `json:"file_url" db:"file_url" gorm:"type:text;not null"`
	FileSize    *int64    `json:"file_size,omitempty" db:"file_size" gorm:"type:bigint"`
	FileType    *string   `json:"file_type,omitempty" db:"file_type" gorm:"type:text"`
	Version     string    `json:"version" db:"version" gorm:"type:text;not null"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null;default:false"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
