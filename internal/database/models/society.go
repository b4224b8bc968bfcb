package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClientType classifies societies (residential, commercial, industrial...)
type ClientType struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex:idx_client_types_name" validate:"required,max=100"`
	Description string `json:"description" gorm:"type:text"`
}

// TableName returns the table name for ClientType
func (ClientType) TableName() string {
	return "client_types"
}

// Society is a client site that guards are rostered to
type Society struct {
	BaseModel
	Name            string          `json:"name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Address         string          `json:"address" gorm:"type:text"`
	City            string          `json:"city" gorm:"size:100;index"`
	ClientTypeID    uuid.UUID       `json:"client_type_id" gorm:"type:uuid;not null;index"`
	ContactPerson   string          `json:"contact_person" gorm:"size:200"`
	ContactPhone    string          `json:"contact_phone" gorm:"size:20"`
	GuardCount      int             `json:"guard_count" gorm:"not null;default:0"`
	SupervisorCount int             `json:"supervisor_count" gorm:"not null;default:0"`
	BouncerCount    int             `json:"bouncer_count" gorm:"not null;default:0"`
	GuardRate       decimal.Decimal `json:"guard_rate" gorm:"type:decimal(15,2);not null;default:0"`
	SupervisorRate  decimal.Decimal `json:"supervisor_rate" gorm:"type:decimal(15,2);not null;default:0"`
	BouncerRate     decimal.Decimal `json:"bouncer_rate" gorm:"type:decimal(15,2);not null;default:0"`
	IsActive        bool            `json:"is_active" gorm:"not null"`

	// Relationships
	ClientType *ClientType `json:"client_type,omitempty" gorm:"foreignKey:ClientTypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Society
func (Society) TableName() string {
	return "societies"
}

// Shift is a named daily time window, times formatted HH:MM
type Shift struct {
	BaseModel
	Name      string `json:"name" gorm:"not null;size:50;uniqueIndex:idx_shifts_name" validate:"required,max=50"`
	StartTime string `json:"start_time" gorm:"not null;size:5"`
	EndTime   string `json:"end_time" gorm:"not null;size:5"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
