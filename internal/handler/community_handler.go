package handler

import (
	"net/http"
	"strconv"

	"NovaCom/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CoverURL    string   `json:"cover_url"`
	Tags        []string `json:"tags"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}

	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community := h.svc.Create(req.Name, req.Description, req.CoverURL, req.Tags, userID)
	c.JSON(http.StatusOK, gin.H{
		"id":          community.ID,
		"name":        community.Name,
		"description": community.Description,
	})
}

func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	joined, err := h.svc.Join(userID, commID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"joined": joined})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	left, err := h.svc.Leave(userID, commID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"left": left})
}

func (h *CommunityHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"list": h.svc.List()})
}

// Popular 按成员数排序的热门社区
func (h *CommunityHandler) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 5
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.Popular(limit)})
}

// Joined 当前用户加入的社区
func (h *CommunityHandler) Joined(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.Joined(userID)})
}

func (h *CommunityHandler) Details(c *gin.Context) {
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	community, ok := h.svc.Details(commID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "community not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"community": community})
}

// Members 成员列表，附带社区内角色
func (h *CommunityHandler) Members(c *gin.Context) {
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	members, ok := h.svc.Members(commID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "community not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": members})
}
