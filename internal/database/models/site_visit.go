package models

import (
	"time"

	"github.com/google/uuid"
)

// SupervisorSiteVisit is one check-in/check-out of a supervisor at a society.
// CheckoutAt and DurationMinutes stay nil while the visit is open; a partial
// unique index allows a single open visit per supervisor.
type SupervisorSiteVisit struct {
	BaseModel
	SupervisorID    uuid.UUID  `json:"supervisor_id" gorm:"type:uuid;not null;index:idx_site_visits_supervisor_checkin,priority:1;uniqueIndex:idx_site_visits_one_open,where:checkout_at IS NULL"`
	LocationID      uuid.UUID  `json:"location_id" gorm:"type:uuid;not null;index"`
	CheckinAt       time.Time  `json:"checkin_at" gorm:"type:timestamptz;not null;index:idx_site_visits_supervisor_checkin,priority:2"`
	CheckoutAt      *time.Time `json:"checkout_at" gorm:"type:timestamptz"`
	DurationMinutes *int       `json:"duration_minutes"`
	Notes           string     `json:"notes" gorm:"type:text"`

	// Relationships
	Supervisor *Employee `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnDelete:CASCADE"`
	Location   *Society  `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SupervisorSiteVisit
func (SupervisorSiteVisit) TableName() string {
	return "supervisor_site_visits"
}

// IsOpen reports whether the supervisor has not checked out yet
func (v *SupervisorSiteVisit) IsOpen() bool {
	return v.CheckoutAt == nil
}
