package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/card"
	"payment-gateway/internal/domain/requests"
)

// CardHandler serves the card CRUD, trash lifecycle and dashboards.
type CardHandler struct {
	svc *card.Service
}

func NewCardHandler(svc *card.Service) *CardHandler {
	return &CardHandler{svc: svc}
}

func (h *CardHandler) FindAll(c *gin.Context) {
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

func (h *CardHandler) FindActive(c *gin.Context) {
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

func (h *CardHandler) FindTrashed(c *gin.Context) {
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

func (h *CardHandler) FindByID(c *gin.Context) {
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

func (h *CardHandler) FindByUserID(c *gin.Context) {
	userID, okID := pathInt(c, "user_id")
	if !okID {
		return
	}
	res, err := h.svc.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) FindByCardNumber(c *gin.Context) {
	res, err := h.svc.FindByCardNumber(c.Request.Context(), c.Param("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) Create(c *gin.Context) {
	var req requests.CreateCardRequest
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

func (h *CardHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateCardRequest
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

func (h *CardHandler) Trash(c *gin.Context) {
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

func (h *CardHandler) Restore(c *gin.Context) {
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

func (h *CardHandler) DeletePermanent(c *gin.Context) {
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

func (h *CardHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) Dashboard(c *gin.Context) {
	res, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) DashboardByCardNumber(c *gin.Context) {
	res, err := h.svc.DashboardByCardNumber(c.Request.Context(), c.Param("card_number"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) MonthlyBalance(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyBalance(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *CardHandler) YearlyBalance(c *gin.Context) {
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyBalance(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
