package models

import (
	"time"

	"github.com/google/uuid"
)

// Ticket is a complaint or service request raised for a society
type Ticket struct {
	BaseModel
	SocietyID   *uuid.UUID     `json:"society_id,omitempty" gorm:"type:uuid;index"`
	RaisedBy    uuid.UUID      `json:"raised_by" gorm:"type:uuid;not null;index"`
	Subject     string         `json:"subject" gorm:"not null;size:200" validate:"required,max=200"`
	Description string         `json:"description" gorm:"type:text"`
	Priority    TicketPriority `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	Status      TicketStatus   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	ResolvedAt  *time.Time     `json:"resolved_at"`

	// Relationships
	Society *Society `json:"society,omitempty" gorm:"foreignKey:SocietyID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// Activity is an audit entry written after each mutation
type Activity struct {
	BaseModel
	ActorID     *uuid.UUID `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	ActorName   string     `json:"actor_name" gorm:"size:200"`
	ActorRole   string     `json:"actor_role" gorm:"size:20"`
	Action      string     `json:"action" gorm:"size:50;not null;index"`
	EntityType  string     `json:"entity_type" gorm:"size:50;not null;index"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty" gorm:"type:uuid"`
	Description string     `json:"description" gorm:"type:text"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}
