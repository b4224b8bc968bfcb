package service

import (
	"context"
	"fmt"
	"time"

	"staffing-backoffice/internal/database/models"
	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// balanceTolerance is the largest difference still reported as balanced
var balanceTolerance = decimal.New(1, -2)

// periodLayout is the YYYY-MM format of salary periods
const periodLayout = "2006-01"

// Outcomes of a reconciliation fix
const (
	FixActionNone           = "none"
	FixActionDeductionAdded = "deduction_added"
	FixActionRecordRaised   = "record_raised"
)

// AdvanceService reconciles salary records with the advance ledger
type AdvanceService struct {
	salaryRepo   repository.SalaryRecordRepositoryInterface
	ledgerRepo   repository.AdvanceTransactionRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	tx           repository.TransactorInterface
	activity     ActivityRecorder
	validator    *validator.Validate
}

// AdvanceDeps groups the collaborators of AdvanceService
type AdvanceDeps struct {
	Salaries   repository.SalaryRecordRepositoryInterface
	Ledger     repository.AdvanceTransactionRepositoryInterface
	Employees  repository.EmployeeRepositoryInterface
	Transactor repository.TransactorInterface
	Activity   ActivityRecorder
}

// NewAdvanceService creates a new advance service
func NewAdvanceService(deps AdvanceDeps, validator *validator.Validate) *AdvanceService {
	return &AdvanceService{
		salaryRepo:   deps.Salaries,
		ledgerRepo:   deps.Ledger,
		employeeRepo: deps.Employees,
		tx:           deps.Transactor,
		activity:     deps.Activity,
		validator:    validator,
	}
}

// BalanceResponse compares a salary record's recorded deduction (X) with the
// deduction transactions linked to it (Y)
type BalanceResponse struct {
	SalaryRecordID uuid.UUID       `json:"salary_record_id"`
	EmployeeID     uuid.UUID       `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	Period         string          `json:"period"`
	Recorded       decimal.Decimal `json:"recorded"`
	Ledger         decimal.Decimal `json:"ledger"`
	Difference     decimal.Decimal `json:"difference"`
	Balanced       bool            `json:"balanced"`
}

// FixResponse reports what a reconciliation fix changed
type FixResponse struct {
	Action        string          `json:"action"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID *uuid.UUID      `json:"transaction_id,omitempty"`
	Before        BalanceResponse `json:"before"`
	After         BalanceResponse `json:"after"`
}

// ListBalancesRequest filters the balance listing
type ListBalancesRequest struct {
	PageRequest
	UnbalancedOnly bool `json:"unbalanced_only" form:"unbalanced_only"`
}

// SalaryRecordRequest represents the request to record a month's salary
type SalaryRecordRequest struct {
	EmployeeID            uuid.UUID       `json:"employee_id" form:"employee_id" validate:"required"`
	Period                string          `json:"period" form:"period" validate:"required"`
	GrossSalary           decimal.Decimal `json:"gross_salary" form:"gross_salary"`
	AdvanceSalaryDeducted decimal.Decimal `json:"advance_salary_deducted" form:"advance_salary_deducted"`
}

// LedgerEntryRequest represents an advance paid out or a deduction recovered
type LedgerEntryRequest struct {
	EmployeeID     uuid.UUID       `json:"employee_id" form:"employee_id" validate:"required"`
	SalaryRecordID *uuid.UUID      `json:"salary_record_id" form:"salary_record_id"`
	Amount         decimal.Decimal `json:"amount" form:"amount"`
	Note           string          `json:"note" form:"note"`
}

// OutstandingResponse is an employee's advance balance
type OutstandingResponse struct {
	EmployeeID  uuid.UUID       `json:"employee_id"`
	Advances    decimal.Decimal `json:"advances"`
	Deductions  decimal.Decimal `json:"deductions"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// ListLedgerRequest selects an employee's ledger
type ListLedgerRequest struct {
	PageRequest
	EmployeeID uuid.UUID `json:"employee_id" form:"employee_id" validate:"required"`
}

// NewBalance applies the balance rule: balanced iff |recorded - ledger| < 0.01
func NewBalance(recorded, ledger decimal.Decimal) BalanceResponse {
	diff := recorded.Sub(ledger)
	return BalanceResponse{
		Recorded:   recorded,
		Ledger:     ledger,
		Difference: diff,
		Balanced:   diff.Abs().LessThan(balanceTolerance),
	}
}

func balanceOf(record *models.SalaryRecord, ledger decimal.Decimal) BalanceResponse {
	b := NewBalance(record.AdvanceSalaryDeducted, ledger)
	b.SalaryRecordID = record.ID
	b.EmployeeID = record.EmployeeID
	b.Period = record.Period
	if record.Employee != nil {
		b.EmployeeName = record.Employee.FullName
	}
	return b
}

// Check compares one salary record with its ledger deductions
func (s *AdvanceService) Check(ctx context.Context, salaryRecordID uuid.UUID) (*BalanceResponse, error) {
	record, err := s.salaryRepo.GetByID(ctx, salaryRecordID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrSalaryRecordNotFound, "get salary record")
	}
	ledger, err := s.ledgerRepo.SumDeductionsForRecord(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum deductions: %w", err)
	}
	b := balanceOf(record, ledger)
	return &b, nil
}

// List runs the check over many salary records
func (s *AdvanceService) List(ctx context.Context, req *ListBalancesRequest) (*Page[BalanceResponse], error) {
	rows, total, err := s.salaryRepo.ListBalances(ctx, req.UnbalancedOnly, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	items := make([]BalanceResponse, 0, len(rows))
	for _, r := range rows {
		b := NewBalance(r.Recorded, r.Ledger)
		b.SalaryRecordID = r.SalaryRecordID
		b.EmployeeID = r.EmployeeID
		b.EmployeeName = r.EmployeeName
		b.Period = r.Period
		items = append(items, b)
	}
	return newPage(items, req.PageRequest, total), nil
}

// Fix makes the recorded deduction and the ledger agree. A recorded amount
// above the ledger gets one compensating deduction transaction; a ledger above
// the recorded amount raises the record. Existing transactions are never
// edited or deleted.
func (s *AdvanceService) Fix(ctx context.Context, salaryRecordID uuid.UUID) (*FixResponse, error) {
	resp := &FixResponse{Action: FixActionNone, Amount: decimal.Zero}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.salaryRepo.GetByIDForUpdate(ctx, salaryRecordID)
		if err != nil {
			return notFound(err, apperrors.ErrSalaryRecordNotFound, "get salary record")
		}
		ledger, err := s.ledgerRepo.SumDeductionsForRecord(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to sum deductions: %w", err)
		}

		resp.Before = balanceOf(record, ledger)
		resp.After = resp.Before
		if resp.Before.Balanced {
			return nil
		}

		diff := resp.Before.Difference
		if diff.IsPositive() {
			id := record.ID
			txn := &models.AdvanceTransaction{
				EmployeeID:     record.EmployeeID,
				SalaryRecordID: &id,
				Type:           models.TransactionTypeDeduction,
				Amount:         diff,
				Note:           fmt.Sprintf("Reconciliation adjustment for %s", record.Period),
			}
			if err := s.ledgerRepo.Create(ctx, txn); err != nil {
				return fmt.Errorf("failed to add deduction: %w", err)
			}
			resp.Action = FixActionDeductionAdded
			resp.Amount = diff
			resp.TransactionID = &txn.ID
			resp.After = balanceOf(record, ledger.Add(diff))
			return nil
		}

		if err := s.salaryRepo.UpdateDeducted(ctx, record.ID, ledger); err != nil {
			return notFound(err, apperrors.ErrSalaryRecordNotFound, "update salary record")
		}
		resp.Action = FixActionRecordRaised
		resp.Amount = diff.Neg()
		record.AdvanceSalaryDeducted = ledger
		resp.After = balanceOf(record, ledger)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Action != FixActionNone {
		s.activity.Record(ctx, "fix_balance", "salary_record", salaryRecordID,
			fmt.Sprintf("Reconciled %s: %s %s", resp.Before.Period, resp.Action, resp.Amount.StringFixed(2)))
	}
	return resp, nil
}

func (s *AdvanceService) checkEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return notFound(err, apperrors.ErrEmployeeNotFound, "verify employee")
	}
	return nil
}

// CreateSalaryRecord stores a month's salary. A non-zero advance deduction is
// written to the ledger in the same transaction.
func (s *AdvanceService) CreateSalaryRecord(ctx context.Context, req *SalaryRecordRequest) (*models.SalaryRecord, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := time.Parse(periodLayout, req.Period); err != nil || len(req.Period) != len(periodLayout) {
		return nil, apperrors.ErrInvalidPeriodFormat
	}
	if req.GrossSalary.IsNegative() {
		return nil, apperrors.NewValidationError("gross_salary", "gross salary must not be negative")
	}
	if req.AdvanceSalaryDeducted.IsNegative() {
		return nil, apperrors.NewValidationError("advance_salary_deducted", "advance deduction must not be negative")
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	record := &models.SalaryRecord{
		EmployeeID:            req.EmployeeID,
		Period:                req.Period,
		GrossSalary:           req.GrossSalary,
		AdvanceSalaryDeducted: req.AdvanceSalaryDeducted,
	}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.salaryRepo.Create(ctx, record); err != nil {
			return err
		}
		if !record.AdvanceSalaryDeducted.IsPositive() {
			return nil
		}
		id := record.ID
		return s.ledgerRepo.Create(ctx, &models.AdvanceTransaction{
			EmployeeID:     record.EmployeeID,
			SalaryRecordID: &id,
			Type:           models.TransactionTypeDeduction,
			Amount:         record.AdvanceSalaryDeducted,
			Note:           "Deducted from salary for " + record.Period,
		})
	})
	if err != nil {
		return nil, uniqueOr(err, apperrors.ErrSalaryRecordExists, "create salary record")
	}

	s.activity.Record(ctx, "create", "salary_record", record.ID, "Recorded salary for "+record.Period)
	return record, nil
}

func positiveAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("amount", "amount must be greater than 0")
	}
	return nil
}

// RecordAdvance adds an advance paid out to the employee
func (s *AdvanceService) RecordAdvance(ctx context.Context, req *LedgerEntryRequest) (*models.AdvanceTransaction, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := positiveAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	txn := &models.AdvanceTransaction{
		EmployeeID: req.EmployeeID,
		Type:       models.TransactionTypeAdvance,
		Amount:     req.Amount,
		Note:       req.Note,
	}
	if err := s.ledgerRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record advance: %w", err)
	}

	s.activity.Record(ctx, "advance", "employee", req.EmployeeID, "Paid advance of "+req.Amount.StringFixed(2))
	return txn, nil
}

// RecordDeduction adds a deduction recovered from the employee. When linked to
// a salary record the record's deducted amount grows by the same amount.
func (s *AdvanceService) RecordDeduction(ctx context.Context, req *LedgerEntryRequest) (*models.AdvanceTransaction, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := positiveAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	txn := &models.AdvanceTransaction{
		EmployeeID:     req.EmployeeID,
		SalaryRecordID: req.SalaryRecordID,
		Type:           models.TransactionTypeDeduction,
		Amount:         req.Amount,
		Note:           req.Note,
	}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if req.SalaryRecordID != nil {
			record, err := s.salaryRepo.GetByIDForUpdate(ctx, *req.SalaryRecordID)
			if err != nil {
				return notFound(err, apperrors.ErrSalaryRecordNotFound, "get salary record")
			}
			if record.EmployeeID != req.EmployeeID {
				return apperrors.NewValidationError("salary_record_id", "salary record belongs to another employee")
			}
			if err := s.salaryRepo.UpdateDeducted(ctx, record.ID, record.AdvanceSalaryDeducted.Add(req.Amount)); err != nil {
				return fmt.Errorf("failed to update salary record: %w", err)
			}
		}
		if err := s.ledgerRepo.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to record deduction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, "deduction", "employee", req.EmployeeID, "Recovered advance of "+req.Amount.StringFixed(2))
	return txn, nil
}

// Outstanding returns the employee's advances minus deductions
func (s *AdvanceService) Outstanding(ctx context.Context, employeeID uuid.UUID) (*OutstandingResponse, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	advances, deductions, err := s.ledgerRepo.SumByType(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum ledger: %w", err)
	}
	return &OutstandingResponse{
		EmployeeID:  employeeID,
		Advances:    advances,
		Deductions:  deductions,
		Outstanding: advances.Sub(deductions),
	}, nil
}

// Ledger returns a page of the employee's advance transactions, newest first
func (s *AdvanceService) Ledger(ctx context.Context, req *ListLedgerRequest) (*Page[models.AdvanceTransaction], error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	items, total, err := s.ledgerRepo.ListByEmployee(ctx, req.EmployeeID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}
	return newPage(items, req.PageRequest, total), nil
}
