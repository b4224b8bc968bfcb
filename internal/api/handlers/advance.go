package handlers

import (
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdvanceHandler handles HTTP requests for salary records and the advance ledger
type AdvanceHandler struct {
	advanceService service.AdvanceServiceInterface
}

// NewAdvanceHandler creates a new advance handler
func NewAdvanceHandler(advanceService service.AdvanceServiceInterface) *AdvanceHandler {
	return &AdvanceHandler{advanceService: advanceService}
}

type salaryRecordRef struct {
	SalaryRecordID uuid.UUID `json:"salary_record_id"`
}

// salaryRecordID reads the salary record from the path, falling back to a
// salary_record_id parameter for action requests
func salaryRecordID(c *gin.Context) (uuid.UUID, error) {
	if c.Param("id") != "" {
		return pathID(c)
	}
	var ref salaryRecordRef
	if err := bindRequest(c, &ref); err != nil {
		return uuid.Nil, err
	}
	return ref.SalaryRecordID, nil
}

// CheckBalance handles GET /salary-records/:id/balance
// @Summary Check a salary record's advance balance
// @Description Compare the recorded deduction with the deductions linked in the ledger
// @Tags advances
// @Produce json
// @Param id path string true "Salary record ID (UUID)"
// @Success 200 {object} Response{data=service.BalanceResponse}
// @Security BearerAuth
// @Router /salary-records/{id}/balance [get]
func (h *AdvanceHandler) CheckBalance(c *gin.Context) {
	id, err := salaryRecordID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.advanceService.Check(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", balance)
}

// ListBalances handles GET /salary-records/balances
// @Summary List advance balances
// @Tags advances
// @Produce json
// @Param unbalanced_only query bool false "Only records that do not balance"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]service.BalanceResponse}
// @Security BearerAuth
// @Router /salary-records/balances [get]
func (h *AdvanceHandler) ListBalances(c *gin.Context) {
	var req service.ListBalancesRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	page, err := h.advanceService.List(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}

// FixBalance handles POST /salary-records/:id/fix
// @Summary Reconcile a salary record
// @Description Add the missing deduction transaction, or raise the recorded deduction to match the ledger
// @Tags advances
// @Produce json
// @Param id path string true "Salary record ID (UUID)"
// @Success 200 {object} Response{data=service.FixResponse}
// @Security BearerAuth
// @Router /salary-records/{id}/fix [post]
func (h *AdvanceHandler) FixBalance(c *gin.Context) {
	id, err := salaryRecordID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	fix, err := h.advanceService.Fix(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Balance reconciled", fix)
}

// CreateSalaryRecord handles POST /salary-records
// @Summary Record a month's salary
// @Description A recorded advance deduction is also written to the ledger
// @Tags advances
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param record body service.SalaryRecordRequest true "Salary record"
// @Success 200 {object} Response{data=models.SalaryRecord}
// @Security BearerAuth
// @Router /salary-records [post]
func (h *AdvanceHandler) CreateSalaryRecord(c *gin.Context) {
	var req service.SalaryRecordRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	record, err := h.advanceService.CreateSalaryRecord(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Salary record created", record)
}

// RecordAdvance handles POST /advances
// @Summary Pay an advance
// @Tags advances
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param entry body service.LedgerEntryRequest true "Advance"
// @Success 200 {object} Response{data=models.AdvanceTransaction}
// @Security BearerAuth
// @Router /advances [post]
func (h *AdvanceHandler) RecordAdvance(c *gin.Context) {
	var req service.LedgerEntryRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.advanceService.RecordAdvance(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Advance recorded", entry)
}

// RecordDeduction handles POST /advances/deductions
// @Summary Recover part of an advance
// @Tags advances
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param entry body service.LedgerEntryRequest true "Deduction"
// @Success 200 {object} Response{data=models.AdvanceTransaction}
// @Security BearerAuth
// @Router /advances/deductions [post]
func (h *AdvanceHandler) RecordDeduction(c *gin.Context) {
	var req service.LedgerEntryRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.advanceService.RecordDeduction(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Deduction recorded", entry)
}

// Outstanding handles GET /employees/:id/advances/outstanding
// @Summary Outstanding advance of an employee
// @Tags advances
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} Response{data=service.OutstandingResponse}
// @Security BearerAuth
// @Router /employees/{id}/advances/outstanding [get]
func (h *AdvanceHandler) Outstanding(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	outstanding, err := h.advanceService.Outstanding(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", outstanding)
}

// Ledger handles GET /employees/:id/advances
// @Summary Advance ledger of an employee
// @Tags advances
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} Response{data=[]models.AdvanceTransaction}
// @Security BearerAuth
// @Router /employees/{id}/advances [get]
func (h *AdvanceHandler) Ledger(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.ListLedgerRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err)
		return
	}
	req.EmployeeID = id

	page, err := h.advanceService.Ledger(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, page)
}
