package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item scopes. Owner items are procured by the project owner and tracked
// through the order status enum; contractor items represent contractor
// work and carry a continuous completion percentage instead.
const (
	ScopeOwner      = "owner"
	ScopeContractor = "contractor"
)

// Owner-scope order statuses.
const (
	ItemNotOrdered       = "not_ordered"
	ItemOrdered          = "ordered"
	ItemPartiallyOrdered = "partially_ordered"
	ItemDelivered        = "delivered"
	ItemInstalled        = "installed"
)

// LPO (Local Purchase Order) statuses, owner scope only.
const (
	LPOReceived = "lpo_received"
	LPOPending  = "lpo_pending"
	LPONA       = "na"
)

func IsValidItemScope(s string) bool {
	return s == ScopeOwner || s == ScopeContractor
}

func IsValidItemStatus(s string) bool {
	switch s {
	case ItemNotOrdered, ItemOrdered, ItemPartiallyOrdered, ItemDelivered, ItemInstalled:
		return true
	}
	return false
}

func IsValidLPOStatus(s string) bool {
	return s == LPOReceived || s == LPOPending || s == LPONA
}

type ProjectItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	Name     string `gorm:"type:text;not null" json:"name"`
	Category string `gorm:"type:text" json:"category"`
	Scope    string `gorm:"type:text;not null;check:scope IN ('owner','contractor')" json:"scope"`

	// Status drives progress for owner items; CompletionPercentage drives
	// it for contractor items. Which one is authoritative is selected by
	// Scope, never both.
	Status               string `gorm:"type:text;not null;default:'not_ordered';check:status IN ('not_ordered','ordered','partially_ordered','delivered','installed')" json:"status"`
	CompletionPercentage int    `gorm:"not null;default:0;check:completion_percentage >= 0 AND completion_percentage <= 100" json:"completion_percentage"`

	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"company_id"`
	Notes     string     `gorm:"type:text" json:"notes"`
	LPOStatus string     `gorm:"column:lpo_status;type:text;not null;default:'na';check:lpo_status IN ('lpo_received','lpo_pending','na')" json:"lpo_status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// ProjectItem <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// ProjectItem <-> Company
	Company *Company `gorm:"foreignKey:CompanyID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"company,omitempty"`
}

func (ProjectItem) TableName() string { return "project_items" }

// Validate checks the enum fields against their vocabularies.
func (i *ProjectItem) Validate() error {
	if !IsValidItemScope(i.Scope) {
		return fmt.Errorf("invalid item scope: %s", i.Scope)
	}
	if !IsValidItemStatus(i.Status) {
		return fmt.Errorf("invalid item status: %s", i.Status)
	}
	if !IsValidLPOStatus(i.LPOStatus) {
		return fmt.Errorf("invalid lpo status: %s", i.LPOStatus)
	}
	if i.CompletionPercentage < 0 || i.CompletionPercentage > 100 {
		return fmt.Errorf("completion percentage out of range: %d", i.CompletionPercentage)
	}
	return nil
}
