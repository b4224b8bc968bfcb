package models

import (
	"github.com/google/uuid"
)

// Team is a supervisor and the guards reporting to them
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex:idx_teams_name" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Memberships []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Supervisor returns the supervisor membership, if loaded
func (t *Team) Supervisor() *TeamMembership {
	for i := range t.Memberships {
		if t.Memberships[i].Role == MembershipRoleSupervisor {
			return &t.Memberships[i]
		}
	}
	return nil
}

// Members returns the non-supervisor memberships, if loaded
func (t *Team) Members() []TeamMembership {
	var members []TeamMembership
	for _, m := range t.Memberships {
		if m.Role != MembershipRoleSupervisor {
			members = append(members, m)
		}
	}
	return members
}

// TeamMembership links an employee to a team.
// Partial unique indexes allow one supervisor per team, one supervised team
// per employee and one non-supervisor membership per employee.
type TeamMembership struct {
	BaseModel
	TeamID     uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_memberships_one_supervisor,where:role = 'supervisor'"`
	EmployeeID uuid.UUID      `json:"employee_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_memberships_supervises_one,where:role = 'supervisor';uniqueIndex:idx_team_memberships_member_of_one,where:role = 'member'"`
	Role       MembershipRole `json:"role" gorm:"type:varchar(20);not null"`

	// Relationships
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
