package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinator"
	RoleContractor  = "contractor"
)

func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCoordinator || r == RoleContractor
}

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"type:text;not null;uniqueIndex" json:"username"`

	// Email is the synthetic credential identity derived from the
	// username ({username}@{domain}) used by the password auth flow.
	Email        string `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	Role         string `gorm:"type:text;not null;default:'contractor';check:role IN ('admin','coordinator','contractor')" json:"role"`
	FullName     string `gorm:"type:text" json:"full_name"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
