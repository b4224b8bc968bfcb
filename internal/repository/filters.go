package repository

import (
	"strings"
	"time"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally in a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsPattern matches s anywhere in the column
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// TeamSize buckets teams by their non-supervisor member count
type TeamSize string

const (
	TeamSizeSmall  TeamSize = "small"
	TeamSizeMedium TeamSize = "medium"
	TeamSizeLarge  TeamSize = "large"
)

// Range returns the inclusive member count bounds; hi is 0 when unbounded
func (s TeamSize) Range() (lo, hi int, ok bool) {
	switch s {
	case TeamSizeSmall:
		return 1, 3, true
	case TeamSizeMedium:
		return 4, 10, true
	case TeamSizeLarge:
		return 11, 0, true
	}
	return 0, 0, false
}

// EmployeeFilter narrows employee listings
type EmployeeFilter struct {
	Role       models.EmployeeRole
	Search     string
	ActiveOnly bool
}

// SocietyFilter narrows society listings
type SocietyFilter struct {
	Search       string
	City         string
	ClientTypeID *uuid.UUID
	ActiveOnly   bool
}

// TeamFilter narrows team listings
type TeamFilter struct {
	Search string
	Size   TeamSize
}

// RosterFilter narrows roster listings; ActiveOn selects assignments covering that date
type RosterFilter struct {
	SocietyID *uuid.UUID
	ShiftID   *uuid.UUID
	GuardID   *uuid.UUID
	TeamID    *uuid.UUID
	ActiveOn  *time.Time
	Search    string
}

// VisitFilter narrows site visit listings
type VisitFilter struct {
	SupervisorID *uuid.UUID
	LocationID   *uuid.UUID
	OpenOnly     bool
}

// TicketFilter narrows ticket listings
type TicketFilter struct {
	Status    models.TicketStatus
	Priority  models.TicketPriority
	SocietyID *uuid.UUID
}

// ActivityFilter narrows activity listings
type ActivityFilter struct {
	EntityType string
	ActorID    *uuid.UUID
}

// SalaryBalanceRow pairs a salary record's recorded deduction with its ledger total
type SalaryBalanceRow struct {
	SalaryRecordID uuid.UUID
	EmployeeID     uuid.UUID
	EmployeeName   string
	Period         string
	Recorded       decimal.Decimal
	Ledger         decimal.Decimal
}
