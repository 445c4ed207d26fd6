package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is a supplier or subcontractor referenced by owner-scope items.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	ContactName string    `gorm:"type:text" json:"contact_name"`
	Phone       string    `gorm:"type:text" json:"phone"`
	Email       string    `gorm:"type:text" json:"email"`
	Notes       string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Company <-> ProjectItem
	Items []ProjectItem `gorm:"foreignKey:CompanyID;" json:"items,omitempty"`
}

func (Company) TableName() string { return "companies" }
