package testutils

import (
	"fmt"
	"time"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date parses YYYY-MM-DD as a UTC midnight, panicking on malformed input
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newBase() models.BaseModel {
	now := time.Now().UTC()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates an active guard with a unique phone number
func (f *EmployeeFactory) Create() *models.Employee {
	base := newBase()
	return &models.Employee{
		BaseModel: base,
		FullName:  "Ramesh Yadav",
		Phone:     "9" + fmt.Sprintf("%09d", base.ID.ID()%1000000000),
		Role:      models.EmployeeRoleGuard,
		IsActive:  true,
	}
}

// WithRole creates an active employee with the given role
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	e := f.Create()
	e.Role = role
	return e
}

// Supervisor creates an active supervisor
func (f *EmployeeFactory) Supervisor(name string) *models.Employee {
	e := f.WithRole(models.EmployeeRoleSupervisor)
	e.FullName = name
	return e
}

// Guard creates an active guard
func (f *EmployeeFactory) Guard(name string) *models.Employee {
	e := f.Create()
	e.FullName = name
	return e
}

// ClientTypeFactory provides methods to create test ClientType data
type ClientTypeFactory struct{}

// NewClientTypeFactory creates a new ClientTypeFactory
func NewClientTypeFactory() *ClientTypeFactory {
	return &ClientTypeFactory{}
}

// Create creates a client type with a unique name
func (f *ClientTypeFactory) Create() *models.ClientType {
	base := newBase()
	return &models.ClientType{
		BaseModel:   base,
		Name:        "Residential " + base.ID.String()[:6],
		Description: "Housing societies and apartment complexes",
	}
}

// SocietyFactory provides methods to create test Society data
type SocietyFactory struct{}

// NewSocietyFactory creates a new SocietyFactory
func NewSocietyFactory() *SocietyFactory {
	return &SocietyFactory{}
}

// Create creates an active society for the client type
func (f *SocietyFactory) Create(clientTypeID uuid.UUID) *models.Society {
	return &models.Society{
		BaseModel:       newBase(),
		Name:            "Green Meadows",
		Address:         "Sector 21",
		City:            "Pune",
		ClientTypeID:    clientTypeID,
		ContactPerson:   "Mr. Kulkarni",
		ContactPhone:    "9822000000",
		GuardCount:      4,
		SupervisorCount: 1,
		GuardRate:       decimal.NewFromInt(18000),
		SupervisorRate:  decimal.NewFromInt(24000),
		BouncerRate:     decimal.Zero,
		IsActive:        true,
	}
}

// WithName creates a society with the given name
func (f *SocietyFactory) WithName(clientTypeID uuid.UUID, name string) *models.Society {
	s := f.Create(clientTypeID)
	s.Name = name
	return s
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a day shift with a unique name
func (f *ShiftFactory) Create() *models.Shift {
	base := newBase()
	return &models.Shift{
		BaseModel: base,
		Name:      "Day " + base.ID.String()[:6],
		StartTime: "08:00",
		EndTime:   "20:00",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a team with a unique name and no memberships
func (f *TeamFactory) Create() *models.Team {
	base := newBase()
	return &models.Team{
		BaseModel:   base,
		Name:        "Team " + base.ID.String()[:8],
		Description: "Night patrol",
	}
}

// WithName creates a team with the given name
func (f *TeamFactory) WithName(name string) *models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// Membership creates a membership row
func (f *TeamFactory) Membership(teamID, employeeID uuid.UUID, role models.MembershipRole) models.TeamMembership {
	return models.TeamMembership{BaseModel: newBase(), TeamID: teamID, EmployeeID: employeeID, Role: role}
}

// RosterFactory provides methods to create test RosterAssignment data
type RosterFactory struct{}

// NewRosterFactory creates a new RosterFactory
func NewRosterFactory() *RosterFactory {
	return &RosterFactory{}
}

// Create creates an assignment for the inclusive range start..end
func (f *RosterFactory) Create(guardID, societyID, shiftID uuid.UUID, start, end string) *models.RosterAssignment {
	return &models.RosterAssignment{
		BaseModel: newBase(),
		GuardID:   guardID,
		SocietyID: societyID,
		ShiftID:   shiftID,
		StartDate: Date(start),
		EndDate:   Date(end),
	}
}

// VisitFactory provides methods to create test SupervisorSiteVisit data
type VisitFactory struct{}

// NewVisitFactory creates a new VisitFactory
func NewVisitFactory() *VisitFactory {
	return &VisitFactory{}
}

// Open creates a visit checked in at the given time and not yet closed
func (f *VisitFactory) Open(supervisorID, locationID uuid.UUID, checkin time.Time) *models.SupervisorSiteVisit {
	return &models.SupervisorSiteVisit{
		BaseModel:    newBase(),
		SupervisorID: supervisorID,
		LocationID:   locationID,
		CheckinAt:    checkin.UTC(),
	}
}

// Closed creates a visit lasting d
func (f *VisitFactory) Closed(supervisorID, locationID uuid.UUID, checkin time.Time, d time.Duration) *models.SupervisorSiteVisit {
	v := f.Open(supervisorID, locationID, checkin)
	out := v.CheckinAt.Add(d)
	minutes := int(d / time.Minute)
	v.CheckoutAt = &out
	v.DurationMinutes = &minutes
	return v
}

// SalaryFactory provides methods to create test payroll data
type SalaryFactory struct{}

// NewSalaryFactory creates a new SalaryFactory
func NewSalaryFactory() *SalaryFactory {
	return &SalaryFactory{}
}

// Record creates a salary record with the recorded advance deduction
func (f *SalaryFactory) Record(employeeID uuid.UUID, period string, deducted string) *models.SalaryRecord {
	return &models.SalaryRecord{
		BaseModel:             newBase(),
		EmployeeID:            employeeID,
		Period:                period,
		GrossSalary:           decimal.NewFromInt(18000),
		AdvanceSalaryDeducted: decimal.RequireFromString(deducted),
	}
}

// Transaction creates a ledger entry
func (f *SalaryFactory) Transaction(employeeID uuid.UUID, recordID *uuid.UUID, typ models.TransactionType, amount string) *models.AdvanceTransaction {
	return &models.AdvanceTransaction{
		BaseModel:      newBase(),
		EmployeeID:     employeeID,
		SalaryRecordID: recordID,
		Type:           typ,
		Amount:         decimal.RequireFromString(amount),
	}
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates an open ticket
func (f *TicketFactory) Create(raisedBy uuid.UUID) *models.Ticket {
	return &models.Ticket{
		BaseModel:   newBase(),
		RaisedBy:    raisedBy,
		Subject:     "Guard absent at main gate",
		Description: "No guard at gate 2 since 06:00",
		Priority:    models.TicketPriorityHigh,
		Status:      models.TicketStatusOpen,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee   *EmployeeFactory
	ClientType *ClientTypeFactory
	Society    *SocietyFactory
	Shift      *ShiftFactory
	Team       *TeamFactory
	Roster     *RosterFactory
	Visit      *VisitFactory
	Salary     *SalaryFactory
	Ticket     *TicketFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:   NewEmployeeFactory(),
		ClientType: NewClientTypeFactory(),
		Society:    NewSocietyFactory(),
		Shift:      NewShiftFactory(),
		Team:       NewTeamFactory(),
		Roster:     NewRosterFactory(),
		Visit:      NewVisitFactory(),
		Salary:     NewSalaryFactory(),
		Ticket:     NewTicketFactory(),
	}
}
