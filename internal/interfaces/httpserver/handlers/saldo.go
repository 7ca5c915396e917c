package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/saldo"
)

// SaldoHandler serves the balance CRUD, trash lifecycle and totals.
type SaldoHandler struct {
	svc *saldo.Service
}

func NewSaldoHandler(svc *saldo.Service) *SaldoHandler {
	return &SaldoHandler{svc: svc}
}

func (h *SaldoHandler) FindAll(c *gin.Context) {
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

func (h *SaldoHandler) FindActive(c *gin.Context) {
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

func (h *SaldoHandler) FindTrashed(c *gin.Context) {
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

func (h *SaldoHandler) FindByID(c *gin.Context) {
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

func (h *SaldoHandler) FindByCardNumber(c *gin.Context) {
	res, err := h.svc.FindByCardNumber(c.Request.Context(), c.Param("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *SaldoHandler) Create(c *gin.Context) {
	var req requests.CreateSaldoRequest
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

func (h *SaldoHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateSaldoRequest
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

func (h *SaldoHandler) Trash(c *gin.Context) {
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

func (h *SaldoHandler) Restore(c *gin.Context) {
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

func (h *SaldoHandler) DeletePermanent(c *gin.Context) {
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

func (h *SaldoHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *SaldoHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *SaldoHandler) MonthlyTotalBalance(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyTotalBalance(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *SaldoHandler) YearlyTotalBalance(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyTotalBalance(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
