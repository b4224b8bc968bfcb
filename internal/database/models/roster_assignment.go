package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterAssignment places a guard at a society for a shift over an inclusive date range
type RosterAssignment struct {
	BaseModel
	GuardID   uuid.UUID  `json:"guard_id" gorm:"type:uuid;not null;index:idx_roster_guard_range,priority:1"`
	SocietyID uuid.UUID  `json:"society_id" gorm:"type:uuid;not null;index"`
	ShiftID   uuid.UUID  `json:"shift_id" gorm:"type:uuid;not null;index"`
	TeamID    *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	StartDate time.Time  `json:"start_date" gorm:"type:date;not null;index:idx_roster_guard_range,priority:2"`
	EndDate   time.Time  `json:"end_date" gorm:"type:date;not null;index:idx_roster_guard_range,priority:3"`
	Notes     string     `json:"notes" gorm:"type:text"`

	// Relationships
	Guard   *Employee `json:"guard,omitempty" gorm:"foreignKey:GuardID;constraint:OnDelete:CASCADE"`
	Society *Society  `json:"society,omitempty" gorm:"foreignKey:SocietyID;constraint:OnDelete:CASCADE"`
	Shift   *Shift    `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:RESTRICT"`
	Team    *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for RosterAssignment
func (RosterAssignment) TableName() string {
	return "roster_assignments"
}

// Overlaps reports whether the assignment shares a day with the inclusive range start..end
func (r *RosterAssignment) Overlaps(start, end time.Time) bool {
	return !r.StartDate.After(end) && !r.EndDate.Before(start)
}
