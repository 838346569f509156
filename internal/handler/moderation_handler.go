package handler

import (
	"errors"
	"net/http"
	"strconv"

	"NovaCom/internal/service"
	"NovaCom/internal/store"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	svc *service.ModerationService
}

type ModerationReq struct {
	TargetID uint64 `json:"target_id" binding:"required"`
}

func NewModerationHandler(svc *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

// respondModeration 权限不足统一回 403
func respondModeration(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"msg": "ok"})
	case errors.Is(err, store.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"msg": "permission denied"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}

func (h *ModerationHandler) bindTarget(c *gin.Context) (commID, actorID, targetID uint64, ok bool) {
	actorID, ok = userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ = strconv.ParseUint(c.Param("id"), 10, 64)

	var req ModerationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return 0, 0, 0, false
	}
	return commID, actorID, req.TargetID, true
}

func (h *ModerationHandler) Promote(c *gin.Context) {
	commID, actorID, targetID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	respondModeration(c, h.svc.Promote(commID, actorID, targetID))
}

func (h *ModerationHandler) Demote(c *gin.Context) {
	commID, actorID, targetID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	respondModeration(c, h.svc.Demote(commID, actorID, targetID))
}

// Transfer 所有权移交
func (h *ModerationHandler) Transfer(c *gin.Context) {
	commID, actorID, targetID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	respondModeration(c, h.svc.Transfer(commID, actorID, targetID))
}

func (h *ModerationHandler) Ban(c *gin.Context) {
	commID, actorID, targetID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	respondModeration(c, h.svc.Ban(commID, actorID, targetID))
}

func (h *ModerationHandler) Unban(c *gin.Context) {
	commID, actorID, targetID, ok := h.bindTarget(c)
	if !ok {
		return
	}
	respondModeration(c, h.svc.Unban(commID, actorID, targetID))
}

// DeleteMessage 管理删帖
func (h *ModerationHandler) DeleteMessage(c *gin.Context) {
	actorID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	msgID, _ := strconv.ParseUint(c.Param("msg_id"), 10, 64)
	respondModeration(c, h.svc.DeleteMessage(commID, actorID, msgID))
}

// PinMessage 置顶开关
func (h *ModerationHandler) PinMessage(c *gin.Context) {
	actorID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	msgID, _ := strconv.ParseUint(c.Param("msg_id"), 10, 64)
	respondModeration(c, h.svc.PinMessage(commID, actorID, msgID))
}
