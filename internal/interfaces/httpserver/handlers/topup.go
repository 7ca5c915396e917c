package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/topup"
)

// TopupHandler serves the top-up CRUD, trash lifecycle and stats.
type TopupHandler struct {
	svc *topup.Service
}

func NewTopupHandler(svc *topup.Service) *TopupHandler {
	return &TopupHandler{svc: svc}
}

func (h *TopupHandler) FindAll(c *gin.Context) {
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

func (h *TopupHandler) FindActive(c *gin.Context) {
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

func (h *TopupHandler) FindTrashed(c *gin.Context) {
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

func (h *TopupHandler) FindByID(c *gin.Context) {
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

func (h *TopupHandler) FindByCardNumber(c *gin.Context) {
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

func (h *TopupHandler) Create(c *gin.Context) {
	var req requests.CreateTopupRequest
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

func (h *TopupHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateTopupRequest
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

func (h *TopupHandler) Trash(c *gin.Context) {
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

func (h *TopupHandler) Restore(c *gin.Context) {
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

func (h *TopupHandler) DeletePermanent(c *gin.Context) {
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

func (h *TopupHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TopupHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *TopupHandler) MonthlyAmounts(c *gin.Context) {
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

func (h *TopupHandler) YearlyAmounts(c *gin.Context) {
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

func (h *TopupHandler) MonthlyMethods(c *gin.Context) {
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

func (h *TopupHandler) YearlyMethods(c *gin.Context) {
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

func (h *TopupHandler) MonthStatusSuccess(c *gin.Context) {
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

func (h *TopupHandler) MonthStatusFailed(c *gin.Context) {
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

func (h *TopupHandler) YearStatusSuccess(c *gin.Context) {
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

func (h *TopupHandler) YearStatusFailed(c *gin.Context) {
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
