package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Context == t.Context
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// RuleViolationError is returned when a request is well-formed but breaks a business rule
type RuleViolationError struct {
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound         = &NotFoundError{Entity: "employee"}
	ErrSupervisorNotFound       = &NotFoundError{Entity: "supervisor"}
	ErrGuardNotFound            = &NotFoundError{Entity: "guard"}
	ErrClientTypeNotFound       = &NotFoundError{Entity: "client type"}
	ErrSocietyNotFound          = &NotFoundError{Entity: "society"}
	ErrShiftNotFound            = &NotFoundError{Entity: "shift"}
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrRosterAssignmentNotFound = &NotFoundError{Entity: "roster assignment"}
	ErrSiteVisitNotFound        = &NotFoundError{Entity: "site visit"}
	ErrSalaryRecordNotFound     = &NotFoundError{Entity: "salary record"}
	ErrTicketNotFound           = &NotFoundError{Entity: "ticket"}
	ErrActivityNotFound         = &NotFoundError{Entity: "activity"}
)

// Already Exists Errors
var (
	ErrTeamExists                = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrSupervisorAlreadyAssigned = &AlreadyExistsError{Entity: "supervisor assignment", Context: "on another team"}
	ErrMemberOnAnotherTeam       = &AlreadyExistsError{Entity: "team membership", Context: "on another team"}
	ErrClientTypeExists          = &AlreadyExistsError{Entity: "client type", Context: "with this name"}
	ErrShiftExists               = &AlreadyExistsError{Entity: "shift", Context: "with this name"}
	ErrSalaryRecordExists        = &AlreadyExistsError{Entity: "salary record", Context: "for this employee and period"}
	ErrEmployeeExists            = &AlreadyExistsError{Entity: "employee", Context: "with this phone number"}
)

// Validation Errors
var (
	ErrClientTypeRequired    = &ValidationError{Field: "client_type_id", Message: "client type is required"}
	ErrNotASupervisor        = &ValidationError{Field: "supervisor_id", Message: "employee is not a supervisor"}
	ErrSupervisorListedTwice = &ValidationError{Field: "member_ids", Message: "supervisor cannot also be a member"}
	ErrMemberIsSupervisor    = &ValidationError{Field: "member_ids", Message: "supervisors cannot be team members"}
	ErrInvalidDateRange      = &ValidationError{Field: "end_date", Message: "end date must not be before start date"}
	ErrInvalidPeriodFormat   = &ValidationError{Field: "period", Message: "period must be formatted as YYYY-MM"}
	ErrInvalidShiftTime      = &ValidationError{Field: "start_time", Message: "shift times must be formatted as HH:MM"}
	ErrInvalidStatus         = &ValidationError{Field: "status", Message: "invalid status"}
	ErrEmptyBatch            = &ValidationError{Field: "guard_ids", Message: "at least one guard is required"}
)

// Business Rule Errors
var (
	ErrScheduleConflict      = &RuleViolationError{Message: "schedule conflict detected"}
	ErrGuardInactive         = &RuleViolationError{Message: "guard is not active"}
	ErrGuardIsSupervisor     = &RuleViolationError{Message: "supervisors cannot be rostered as guards"}
	ErrGuardNotOnTeam        = &RuleViolationError{Message: "guard is not a member of this team"}
	ErrVisitAlreadyOpen      = &RuleViolationError{Message: "supervisor already has an open visit"}
	ErrNoOpenVisit           = &RuleViolationError{Message: "supervisor has no open visit"}
	ErrCheckoutBeforeCheckin = &RuleViolationError{Message: "checkout time is before checkin time"}
	ErrReportRangeTooLong    = &RuleViolationError{Message: "report range is too long"}
	ErrUnknownAction         = &RuleViolationError{Message: "unknown action"}
	ErrClientTypeInUse       = &RuleViolationError{Message: "client type is still used by societies"}
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "authentication required"}
	ErrForbidden        = &AuthorizationError{Message: "you do not have permission to perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRuleViolation checks if an error is a RuleViolationError
func IsRuleViolation(err error) bool {
	var ruleErr *RuleViolationError
	return errors.As(err, &ruleErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsBusiness reports whether err is an expected outcome of a well-authenticated
// request (not found, conflict, validation, rule violation)
func IsBusiness(err error) bool {
	return IsNotFound(err) || IsAlreadyExists(err) || IsValidation(err) || IsRuleViolation(err)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewRuleViolationError creates a new RuleViolationError
func NewRuleViolationError(message string) error {
	return &RuleViolationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
