package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "staffing-backoffice/internal/errors"
	"staffing-backoffice/internal/export"
	"staffing-backoffice/internal/logger"
	"staffing-backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API response
type Response struct {
	Success    bool                `json:"success" example:"true"`
	Message    string              `json:"message,omitempty" example:"Team created"`
	Data       interface{}         `json:"data,omitempty"`
	Pagination *service.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope of a failed request
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"team not found"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func respondPage[T any](c *gin.Context, page *service.Page[T]) {
	c.JSON(http.StatusOK, Response{Success: true, Data: page.Items, Pagination: &page.Pagination})
}

// respondError maps err onto the envelope. Business failures answer 200 with
// success false; authentication 401, authorization 403, everything else 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusOK
	message := err.Error()
	switch {
	case apperrors.IsAuthentication(err):
		status = http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		status = http.StatusForbidden
	case apperrors.IsBusiness(err):
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

func respondWorkbook(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, data)
}
