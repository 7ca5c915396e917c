package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/merchant"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/interfaces/httpserver/middlewares"
)

// MerchantHandler serves the merchant CRUD, api-key lookups, the joined
// transaction listing and the volume stats.
type MerchantHandler struct {
	svc *merchant.Service
}

func NewMerchantHandler(svc *merchant.Service) *MerchantHandler {
	return &MerchantHandler{svc: svc}
}

func (h *MerchantHandler) FindAll(c *gin.Context) {
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

func (h *MerchantHandler) FindActive(c *gin.Context) {
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

func (h *MerchantHandler) FindTrashed(c *gin.Context) {
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

func (h *MerchantHandler) FindByID(c *gin.Context) {
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

// FindByAPIKey resolves the caller's own merchant record from the
// x-api-key header the middleware validated.
func (h *MerchantHandler) FindByAPIKey(c *gin.Context) {
	res, err := h.svc.FindByAPIKey(c.Request.Context(), c.GetString(middlewares.ContextAPIKey))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) FindByUserID(c *gin.Context) {
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

func (h *MerchantHandler) Create(c *gin.Context) {
	var req requests.CreateMerchantRequest
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

func (h *MerchantHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateMerchantRequest
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

func (h *MerchantHandler) UpdateStatus(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateMerchantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	res, err := h.svc.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) Trash(c *gin.Context) {
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

func (h *MerchantHandler) Restore(c *gin.Context) {
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

func (h *MerchantHandler) DeletePermanent(c *gin.Context) {
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

func (h *MerchantHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

// Transactions lists transactions across all merchants, optionally
// filtered with ?merchant_id=.
func (h *MerchantHandler) Transactions(c *gin.Context) {
	merchantID, okM := merchantIDQuery(c)
	if !okM {
		return
	}
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.Transactions(c.Request.Context(), merchantID, q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) TransactionsByID(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.Transactions(c.Request.Context(), id, q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

// TransactionsByAPIKey lists the calling merchant's own transactions.
func (h *MerchantHandler) TransactionsByAPIKey(c *gin.Context) {
	q, okQ := listQuery(c)
	if !okQ {
		return
	}
	res, err := h.svc.TransactionsByAPIKey(c.Request.Context(), c.GetString(middlewares.ContextAPIKey), q)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) MonthlyPaymentMethods(c *gin.Context) {
	merchantID, okM := merchantIDQuery(c)
	if !okM {
		return
	}
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyPaymentMethods(c.Request.Context(), merchantID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) YearlyPaymentMethods(c *gin.Context) {
	merchantID, okM := merchantIDQuery(c)
	if !okM {
		return
	}
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyPaymentMethods(c.Request.Context(), merchantID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) MonthlyAmounts(c *gin.Context) {
	merchantID, okM := merchantIDQuery(c)
	if !okM {
		return
	}
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.MonthlyAmounts(c.Request.Context(), merchantID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *MerchantHandler) YearlyAmounts(c *gin.Context) {
	merchantID, okM := merchantIDQuery(c)
	if !okM {
		return
	}
	year, okY := yearQuery(c)
	if !okY {
		return
	}
	res, err := h.svc.YearlyAmounts(c.Request.Context(), merchantID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
