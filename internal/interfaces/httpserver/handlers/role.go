package handlers

import (
	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/domain/role"
)

// RoleHandler serves the role CRUD and trash lifecycle.
type RoleHandler struct {
	svc *role.Service
}

func NewRoleHandler(svc *role.Service) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) FindAll(c *gin.Context) {
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

func (h *RoleHandler) FindActive(c *gin.Context) {
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

func (h *RoleHandler) FindTrashed(c *gin.Context) {
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

func (h *RoleHandler) FindByID(c *gin.Context) {
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

func (h *RoleHandler) FindByUserID(c *gin.Context) {
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

func (h *RoleHandler) Create(c *gin.Context) {
	var req requests.CreateRoleRequest
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

func (h *RoleHandler) Update(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var req requests.UpdateRoleRequest
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

func (h *RoleHandler) Trash(c *gin.Context) {
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

func (h *RoleHandler) Restore(c *gin.Context) {
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

func (h *RoleHandler) DeletePermanent(c *gin.Context) {
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

func (h *RoleHandler) RestoreAll(c *gin.Context) {
	res, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}

func (h *RoleHandler) DeleteAllPermanent(c *gin.Context) {
	res, err := h.svc.DeleteAllPermanent(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, res)
}
