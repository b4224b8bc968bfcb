package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryRecord is an employee's payroll entry for one month
type SalaryRecord struct {
	BaseModel
	EmployeeID            uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_salary_records_employee_period,priority:1"`
	Period                string          `json:"period" gorm:"size:7;not null;uniqueIndex:idx_salary_records_employee_period,priority:2"` // YYYY-MM
	GrossSalary           decimal.Decimal `json:"gross_salary" gorm:"type:decimal(15,2);not null;default:0"`
	AdvanceSalaryDeducted decimal.Decimal `json:"advance_salary_deducted" gorm:"type:decimal(15,2);not null;default:0"`

	// Relationships
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SalaryRecord
func (SalaryRecord) TableName() string {
	return "salary_records"
}

// AdvanceTransaction is an entry in an employee's advance ledger
type AdvanceTransaction struct {
	BaseModel
	EmployeeID     uuid.UUID       `json:"employee_id" gorm:"type:uuid;not null;index"`
	SalaryRecordID *uuid.UUID      `json:"salary_record_id,omitempty" gorm:"type:uuid;index"`
	Type           TransactionType `json:"type" gorm:"type:varchar(20);not null"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(15,2);not null"`
	Note           string          `json:"note" gorm:"type:text"`

	// Relationships
	Employee     *Employee     `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	SalaryRecord *SalaryRecord `json:"salary_record,omitempty" gorm:"foreignKey:SalaryRecordID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for AdvanceTransaction
func (AdvanceTransaction) TableName() string {
	return "advance_transactions"
}
