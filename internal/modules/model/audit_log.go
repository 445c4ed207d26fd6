package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is append-only: rows are created by mutating service paths and
// never updated or deleted through the API.
type AuditLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Username string     `gorm:"type:text;not null" json:"username"`

	Action     string            `gorm:"type:text;not null" json:"action"`
	EntityType string            `gorm:"type:text;not null;index" json:"entity_type"`
	EntityID   *uuid.UUID        `gorm:"type:uuid;index" json:"entity_id"`
	Details    datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"details"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
