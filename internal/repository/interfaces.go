package repository

import (
	"context"
	"time"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactorInterface runs fn inside a database transaction carried by ctx
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Employee, error)
	List(ctx context.Context, filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientTypeRepositoryInterface defines the interface for client type repository operations
type ClientTypeRepositoryInterface interface {
	Create(ctx context.Context, clientType *models.ClientType) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ClientType, error)
	GetByName(ctx context.Context, name string) (*models.ClientType, error)
	List(ctx context.Context, limit, offset int) ([]models.ClientType, int64, error)
	Update(ctx context.Context, clientType *models.ClientType) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountSocieties(ctx context.Context, id uuid.UUID) (int64, error)
}

// SocietyRepositoryInterface defines the interface for society repository operations
type SocietyRepositoryInterface interface {
	Create(ctx context.Context, society *models.Society) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Society, error)
	List(ctx context.Context, filter SocietyFilter, limit, offset int) ([]models.Society, int64, error)
	Update(ctx context.Context, society *models.Society) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(ctx context.Context, shift *models.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	GetByName(ctx context.Context, name string) (*models.Shift, error)
	GetAll(ctx context.Context) ([]models.Shift, error)
	Update(ctx context.Context, shift *models.Shift) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	List(ctx context.Context, filter TeamFilter, limit, offset int) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceMemberships(ctx context.Context, teamID uuid.UUID, memberships []models.TeamMembership) error
	GetSupervisedTeam(ctx context.Context, employeeID uuid.UUID) (*models.TeamMembership, error)
	GetMemberships(ctx context.Context, employeeIDs []uuid.UUID, role models.MembershipRole) ([]models.TeamMembership, error)
}

// RosterRepositoryInterface defines the interface for roster assignment repository operations
type RosterRepositoryInterface interface {
	Create(ctx context.Context, assignment *models.RosterAssignment) error
	CreateBatch(ctx context.Context, assignments []models.RosterAssignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.RosterAssignment, error)
	List(ctx context.Context, filter RosterFilter, limit, offset int) ([]models.RosterAssignment, int64, error)
	ListAll(ctx context.Context, filter RosterFilter) ([]models.RosterAssignment, error)
	Update(ctx context.Context, assignment *models.RosterAssignment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOverlapping(ctx context.Context, guardIDs []uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]models.RosterAssignment, error)
	DetachTeam(ctx context.Context, teamID uuid.UUID) error
}

// SiteVisitRepositoryInterface defines the interface for supervisor site visit repository operations
type SiteVisitRepositoryInterface interface {
	Create(ctx context.Context, visit *models.SupervisorSiteVisit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SupervisorSiteVisit, error)
	GetOpenBySupervisor(ctx context.Context, supervisorID uuid.UUID) (*models.SupervisorSiteVisit, error)
	Close(ctx context.Context, visit *models.SupervisorSiteVisit) error
	ListInRange(ctx context.Context, supervisorID uuid.UUID, start, end time.Time) ([]models.SupervisorSiteVisit, error)
	ListInRangePaged(ctx context.Context, supervisorID uuid.UUID, start, end time.Time, limit, offset int) ([]models.SupervisorSiteVisit, int64, error)
	List(ctx context.Context, filter VisitFilter, limit, offset int) ([]models.SupervisorSiteVisit, int64, error)
}

// SalaryRecordRepositoryInterface defines the interface for salary record repository operations
type SalaryRecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.SalaryRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SalaryRecord, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.SalaryRecord, error)
	UpdateDeducted(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	ListBalances(ctx context.Context, unbalancedOnly bool, limit, offset int) ([]SalaryBalanceRow, int64, error)
}

// AdvanceTransactionRepositoryInterface defines the interface for advance ledger repository operations
type AdvanceTransactionRepositoryInterface interface {
	Create(ctx context.Context, txn *models.AdvanceTransaction) error
	SumDeductionsForRecord(ctx context.Context, salaryRecordID uuid.UUID) (decimal.Decimal, error)
	SumByType(ctx context.Context, employeeID uuid.UUID) (advances, deductions decimal.Decimal, err error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]models.AdvanceTransaction, int64, error)
}

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	List(ctx context.Context, filter TicketFilter, limit, offset int) ([]models.Ticket, int64, error)
	Update(ctx context.Context, ticket *models.Ticket) error
}

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	List(ctx context.Context, filter ActivityFilter, limit, offset int) ([]models.Activity, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
