package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/transfer"
)

// TransferHandler serves the transfer CRUD, trash lifecycle and stats.
type TransferHandler struct {
	svc *transfer.Service
}

func NewTransferHandler(svc *transfer.Service) *TransferHandler {
	return &TransferHandler{svc: svc}
}

func (h *TransferHandler) FindAll(c *gin.Context) {
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

func (h *TransferHandler) FindActive(c *gin.Context) {
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

func (h *TransferHandler) FindTrashed(c *gin.Context) {
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

func (h *TransferHandler) FindByID(c *gin.Context) {
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

func (h *TransferHandler) FindByTransferFrom(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindByTransferFrom(c.Request.Context(), c.Param("card_number"), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransferHandler) FindByTransferTo(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.FindByTransferTo(c.Request.Context(), c.Param("card_number"), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransferHandler) Create(c *gin.Context) {
	var req requests.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, res)
}

func (h *TransferHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransferHandler) Trash(c *gin.Context) {
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

func (h *TransferHandler) Restore(c *gin.Context) {
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

func (h *TransferHandler) DeletePermanent(c *gin.Context) {
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

func (h *TransferHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransferHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TransferHandler) MonthlyAmounts(c *gin.Context) {
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

func (h *TransferHandler) YearlyAmounts(c *gin.Context) {
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

func (h *TransferHandler) MonthStatusSuccess(c *gin.Context) {
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

func (h *TransferHandler) MonthStatusFailed(c *gin.Context) {
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

func (h *TransferHandler) YearStatusSuccess(c *gin.Context) {
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

func (h *TransferHandler) YearStatusFailed(c *gin.Context) {
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
