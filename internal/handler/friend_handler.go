package handler

import (
	"net/http"
	"strconv"

	"NovaCom/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	svc *service.FriendService
}

func NewFriendHandler(svc *service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// SendRequest 发起好友申请
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	status, err := h.svc.SendRequest(userID, targetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Accept 接受好友申请，建立好友关系
func (h *FriendHandler) Accept(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	requesterID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if !h.svc.AcceptRequest(userID, requesterID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "no such request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *FriendHandler) Decline(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	requesterID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if !h.svc.DeclineRequest(userID, requesterID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "no such request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Pending 收到的好友申请列表
func (h *FriendHandler) Pending(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.PendingRequests(userID)})
}

// Relation 与目标用户的关系状态
func (h *FriendHandler) Relation(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	c.JSON(http.StatusOK, gin.H{"status": h.svc.RelationshipStatus(userID, targetID)})
}

// Unfriend 解除好友关系
func (h *FriendHandler) Unfriend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if !h.svc.Unfriend(userID, targetID) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "not friends"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// List 好友列表
func (h *FriendHandler) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.Friends(userID)})
}
