package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bird represents an individually ringed animal. The ring code is unique
// across the whole system, not per owner. LoftID is nullable: unassigned is
// a normal state, and the owner of a referenced loft must match OwnerID
// (enforced by the services, not the schema).
type Bird struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;index;not null" json:"owner_id"`
	Ring      string         `gorm:"uniqueIndex;not null" json:"ring" validate:"required"`
	Name      string         `json:"name,omitempty"`
	LoftID    *uuid.UUID     `gorm:"type:uuid;index" json:"loft_id"`
	Loft      *Loft          `gorm:"foreignKey:LoftID" json:"loft,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
