package service

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ActivityRecorder writes audit entries for mutations
type ActivityRecorder interface {
	Record(ctx context.Context, action, entityType string, entityID uuid.UUID, description string)
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	ActivityRecorder
	List(ctx context.Context, req *ListActivitiesRequest) (*Page[models.Activity], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	List(ctx context.Context, req *ListEmployeesRequest) (*Page[models.Employee], error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientTypeServiceInterface defines the interface for client type service
type ClientTypeServiceInterface interface {
	Manage(ctx context.Context, req *ManageClientTypeRequest) (*models.ClientType, error)
	Create(ctx context.Context, req *ClientTypeRequest) (*models.ClientType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClientType, error)
	List(ctx context.Context, req *PageRequest) (*Page[models.ClientType], error)
	Update(ctx context.Context, id uuid.UUID, req *ClientTypeRequest) (*models.ClientType, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SocietyServiceInterface defines the interface for society service
type SocietyServiceInterface interface {
	Create(ctx context.Context, req *SocietyRequest) (*models.Society, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error)
	List(ctx context.Context, req *ListSocietiesRequest) (*Page[models.Society], error)
	Update(ctx context.Context, id uuid.UUID, req *SocietyRequest) (*models.Society, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Create(ctx context.Context, req *ShiftRequest) (*models.Shift, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	GetAll(ctx context.Context) ([]models.Shift, error)
	Update(ctx context.Context, id uuid.UUID, req *ShiftRequest) (*models.Shift, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *TeamRequest) (*TeamResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	List(ctx context.Context, req *ListTeamsRequest) (*Page[TeamResponse], error)
}

// RosterServiceInterface defines the interface for roster service
type RosterServiceInterface interface {
	Assign(ctx context.Context, req *AssignRosterRequest) (*RosterResponse, error)
	BulkAssign(ctx context.Context, req *BulkAssignRequest) (*BulkAssignResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRosterRequest) (*RosterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*RosterResponse, error)
	List(ctx context.Context, req *ListRostersRequest) (*Page[RosterResponse], error)
	Export(ctx context.Context, req *ListRostersRequest) ([]byte, error)
}

// VisitServiceInterface defines the interface for supervisor visit service
type VisitServiceInterface interface {
	CheckIn(ctx context.Context, req *CheckInRequest) (*VisitResponse, error)
	CheckOut(ctx context.Context, req *CheckOutRequest) (*VisitResponse, error)
	Performance(ctx context.Context, req *PerformanceRequest) (*PerformanceResponse, error)
	ListVisits(ctx context.Context, req *ListVisitsRequest) (*Page[VisitResponse], error)
	ExportPerformance(ctx context.Context, req *PerformanceRequest) ([]byte, error)
}

// AdvanceServiceInterface defines the interface for advance reconciliation service
type AdvanceServiceInterface interface {
	Check(ctx context.Context, salaryRecordID uuid.UUID) (*BalanceResponse, error)
	List(ctx context.Context, req *ListBalancesRequest) (*Page[BalanceResponse], error)
	Fix(ctx context.Context, salaryRecordID uuid.UUID) (*FixResponse, error)
	CreateSalaryRecord(ctx context.Context, req *SalaryRecordRequest) (*models.SalaryRecord, error)
	RecordAdvance(ctx context.Context, req *LedgerEntryRequest) (*models.AdvanceTransaction, error)
	RecordDeduction(ctx context.Context, req *LedgerEntryRequest) (*models.AdvanceTransaction, error)
	Outstanding(ctx context.Context, employeeID uuid.UUID) (*OutstandingResponse, error)
	Ledger(ctx context.Context, req *ListLedgerRequest) (*Page[models.AdvanceTransaction], error)
}

// TicketServiceInterface defines the interface for ticket service
type TicketServiceInterface interface {
	Create(ctx context.Context, req *CreateTicketRequest) (*models.Ticket, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	List(ctx context.Context, req *ListTicketsRequest) (*Page[models.Ticket], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *UpdateTicketStatusRequest) (*models.Ticket, error)
}

var (
	_ ActivityServiceInterface   = (*ActivityService)(nil)
	_ EmployeeServiceInterface   = (*EmployeeService)(nil)
	_ ClientTypeServiceInterface = (*ClientTypeService)(nil)
	_ SocietyServiceInterface    = (*SocietyService)(nil)
	_ ShiftServiceInterface      = (*ShiftService)(nil)
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ RosterServiceInterface     = (*RosterService)(nil)
	_ VisitServiceInterface      = (*VisitService)(nil)
	_ AdvanceServiceInterface    = (*AdvanceService)(nil)
	_ TicketServiceInterface     = (*TicketService)(nil)
)
