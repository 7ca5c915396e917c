package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/transaction"
	"payment-gateway/internal/interfaces/httpserver/middlewares"
)

// TransactionHandler serves the payment CRUD, trash lifecycle and stats.
// Create and Update sit behind the api-key middleware because they act on
// behalf of a merchant.
type TransactionHandler struct {
	svc *transaction.Service
}

func NewTransactionHandler(svc *transaction.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) FindAll(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindAll(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) FindActive(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindActive(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) FindTrashed(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindTrashed(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) FindByID(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	res, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) FindByCardNumber(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindByCardNumber(c.Request.Context(), c.Param("card_number"), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) FindByMerchantID(c *gin.Context) {
	merchantID, okID := pathInt(c, "merchant_id")
	if !okID {
		return
	}
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindByMerchantID(c.Request.Context(), merchantID, q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req requests.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Create(c.Request.Context(), c.GetString(middlewares.ContextAPIKey), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, res)
}

func (h *TransactionHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Update(c.Request.Context(), c.GetString(middlewares.ContextAPIKey), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) Trash(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	res, err := h.svc.Trash(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) Restore(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	res, err := h.svc.Restore(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) DeletePermanent(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	res, err := h.svc.DeletePermanent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) MonthlyAmounts(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyAmounts(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) YearlyAmounts(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyAmounts(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) MonthlyMethods(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyMethods(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) YearlyMethods(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyMethods(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) MonthStatusSuccess(c *gin.Context) {
	year, month, okQ := monthYearQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.MonthStatusSuccess(c.Request.Context(), year, month, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) MonthStatusFailed(c *gin.Context) {
	year, month, okQ := monthYearQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.MonthStatusFailed(c.Request.Context(), year, month, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) YearStatusSuccess(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearStatusSuccess(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransactionHandler) YearStatusFailed(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearStatusFailed(c.Request.Context(), year, c.Query("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
