package models

// EmployeeRole is the job an employee is hired for
type EmployeeRole string

const (
	EmployeeRoleSupervisor EmployeeRole = "supervisor"
	EmployeeRoleGuard      EmployeeRole = "guard"
	EmployeeRoleLadyGuard  EmployeeRole = "lady_guard"
	EmployeeRoleBouncer    EmployeeRole = "bouncer"
	EmployeeRoleGunman     EmployeeRole = "gunman"
)

// IsValid checks if the EmployeeRole is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleSupervisor, EmployeeRoleGuard, EmployeeRoleLadyGuard, EmployeeRoleBouncer, EmployeeRoleGunman:
		return true
	}
	return false
}

// MembershipRole is the role an employee holds within a team
type MembershipRole string

const (
	MembershipRoleSupervisor MembershipRole = "supervisor"
	MembershipRoleMember     MembershipRole = "member"
)

// TransactionType distinguishes advances paid out from deductions recovered
type TransactionType string

const (
	TransactionTypeAdvance   TransactionType = "advance"
	TransactionTypeDeduction TransactionType = "deduction"
)

// IsValid checks if the TransactionType is valid
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeAdvance || t == TransactionTypeDeduction
}

// TicketPriority represents the urgency of a ticket
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// IsValid checks if the TicketPriority is valid
func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// TicketStatus represents the lifecycle state of a ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsValid checks if the TicketStatus is valid
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}
