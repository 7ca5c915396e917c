package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/responses"
)

// writeError renders any service or repository error through the shared
// status mapping.
func writeError(c *gin.Context, err error) {
	status, msg := apperrors.HTTPStatus(err)
	c.JSON(status, responses.ErrorResponse{Error: msg, Status: status})
}

// bindingError turns a gin binding failure into one aggregated 400.
func bindingError(c *gin.Context, err error) {
	writeError(c, apperrors.Validation(requests.FormatValidationErrors(err)))
}

// ok renders a success envelope with 200.
func ok(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// created renders a success envelope with 201.
func created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// pathID parses the :id path parameter. Reports false after rendering a
// 400 when the parameter is not a positive integer.
func pathID(c *gin.Context) (int, bool) {
	return pathInt(c, "id")
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		writeError(c, apperrors.Validation([]string{name + ": must be a positive integer"}))
		return 0, false
	}
	return v, true
}

// listQuery binds pagination parameters. Normalization happens in the
// service layer.
func listQuery(c *gin.Context) (requests.ListQuery, bool) {
	var q requests.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return q, false
	}
	return q, true
}

// yearQuery binds the required year stats parameter.
func yearQuery(c *gin.Context) (int, bool) {
	var q requests.YearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return 0, false
	}
	return q.Year, true
}

// monthYearQuery binds the required year and month stats parameters.
func monthYearQuery(c *gin.Context) (int, int, bool) {
	var q requests.MonthYearQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return 0, 0, false
	}
	return q.Year, q.Month, true
}

// merchantIDQuery reads the optional merchant_id filter. Zero spans all
// merchants.
func merchantIDQuery(c *gin.Context) (int, bool) {
	raw := c.Query("merchant_id")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(c, apperrors.Validation([]string{"merchant_id: must be a positive integer"}))
		return 0, false
	}
	return id, true
}
