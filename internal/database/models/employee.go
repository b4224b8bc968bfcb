package models

// Employee is anyone on the staffing payroll
type Employee struct {
	BaseModel
	FullName string       `json:"full_name" gorm:"not null;size:200;index" validate:"required,max=200"`
	Phone    string       `json:"phone" gorm:"size:20;uniqueIndex:idx_employees_phone,where:phone <> ''"`
	Role     EmployeeRole `json:"role" gorm:"type:varchar(30);not null;index" validate:"required"`
	IsActive bool         `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// IsSupervisor reports whether the employee was hired as a supervisor
func (e *Employee) IsSupervisor() bool {
	return e.Role == EmployeeRoleSupervisor
}
