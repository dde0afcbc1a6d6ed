package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loft represents an owner-defined group or location that birds may be
// assigned to. Visible only to its owner.
type Loft struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"owner_id"`
	Name      string         `gorm:"not null" json:"name" validate:"required"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
