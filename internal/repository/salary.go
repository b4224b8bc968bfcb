package repository

import (
	"context"

	"staffing-backoffice/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const deductionTotalsSubquery = `LEFT JOIN (
	SELECT salary_record_id, SUM(amount) AS total
	FROM advance_transactions
	WHERE type = 'deduction' AND salary_record_id IS NOT NULL
	GROUP BY salary_record_id
) d ON d.salary_record_id = sr.id`

// SalaryRecordRepository handles database operations for salary records
type SalaryRecordRepository struct {
	db *gorm.DB
}

// NewSalaryRecordRepository creates a new salary record repository
func NewSalaryRecordRepository(db *gorm.DB) *SalaryRecordRepository {
	return &SalaryRecordRepository{db: db}
}

// Create creates a new salary record
func (r *SalaryRecordRepository) Create(ctx context.Context, record *models.SalaryRecord) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(record).Error
}

// GetByID retrieves a salary record with its employee
func (r *SalaryRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SalaryRecord, error) {
	var record models.SalaryRecord
	err := conn(ctx, r.db).Preload("Employee").First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByIDForUpdate retrieves a salary record and locks it for the rest of the transaction
func (r *SalaryRecordRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.SalaryRecord, error) {
	var record models.SalaryRecord
	err := conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateDeducted sets the recorded advance deduction of a salary record
func (r *SalaryRecordRepository) UpdateDeducted(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	result := conn(ctx, r.db).Model(&models.SalaryRecord{}).Where("id = ?", id).
		Update("advance_salary_deducted", amount)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListBalances pairs each salary record with the sum of its deduction
// transactions. With unbalancedOnly only records differing by at least 0.01
// are returned.
func (r *SalaryRecordRepository) ListBalances(ctx context.Context, unbalancedOnly bool, limit, offset int) ([]SalaryBalanceRow, int64, error) {
	var rows []SalaryBalanceRow
	var total int64

	query := conn(ctx, r.db).Table("salary_records sr").
		Joins(deductionTotalsSubquery).
		Joins("JOIN employees e ON e.id = sr.employee_id")
	if unbalancedOnly {
		query = query.Where("ABS(sr.advance_salary_deducted - COALESCE(d.total, 0)) >= 0.01")
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Select(`sr.id AS salary_record_id, sr.employee_id, e.full_name AS employee_name,
		sr.period, sr.advance_salary_deducted AS recorded, COALESCE(d.total, 0) AS ledger`).
		Order("sr.period DESC, e.full_name ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// AdvanceTransactionRepository handles database operations for the advance ledger
type AdvanceTransactionRepository struct {
	db *gorm.DB
}

// NewAdvanceTransactionRepository creates a new advance transaction repository
func NewAdvanceTransactionRepository(db *gorm.DB) *AdvanceTransactionRepository {
	return &AdvanceTransactionRepository{db: db}
}

// Create appends a ledger entry
func (r *AdvanceTransactionRepository) Create(ctx context.Context, txn *models.AdvanceTransaction) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(txn).Error
}

// SumDeductionsForRecord sums the deduction transactions linked to a salary record
func (r *AdvanceTransactionRepository) SumDeductionsForRecord(ctx context.Context, salaryRecordID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := conn(ctx, r.db).Model(&models.AdvanceTransaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("salary_record_id = ? AND type = ?", salaryRecordID, models.TransactionTypeDeduction).
		Row().Scan(&total)
	return total, err
}

// SumByType returns an employee's total advances and total deductions
func (r *AdvanceTransactionRepository) SumByType(ctx context.Context, employeeID uuid.UUID) (advances, deductions decimal.Decimal, err error) {
	var sums struct {
		Advances   decimal.Decimal
		Deductions decimal.Decimal
	}
	err = conn(ctx, r.db).Model(&models.AdvanceTransaction{}).
		Select(`COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0) AS advances,
			COALESCE(SUM(CASE WHEN type = ? THEN amount END), 0) AS deductions`,
			models.TransactionTypeAdvance, models.TransactionTypeDeduction).
		Where("employee_id = ?", employeeID).
		Scan(&sums).Error
	return sums.Advances, sums.Deductions, err
}

// ListByEmployee retrieves an employee's ledger, newest first
func (r *AdvanceTransactionRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, limit, offset int) ([]models.AdvanceTransaction, int64, error) {
	var txns []models.AdvanceTransaction
	var total int64

	query := conn(ctx, r.db).Model(&models.AdvanceTransaction{}).Where("employee_id = ?", employeeID).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txns).Error
	if err != nil {
		return nil, 0, err
	}

	return txns, total, nil
}
