package handler

import (
	"net/http"
	"strconv"

	"NovaCom/internal/service"

	"github.com/gin-gonic/gin"
)

type GraphHandler struct {
	svc *service.GraphService
}

func NewGraphHandler(svc *service.GraphService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// Degree 当前用户到目标的关系度，-1 表示超 3 跳或不可达
func (h *GraphHandler) Degree(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	targetID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	c.JSON(http.StatusOK, gin.H{"degree": h.svc.Degree(userID, targetID)})
}

// AtDegree 恰好相距 d 跳的用户
func (h *GraphHandler) AtDegree(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	degree, err := strconv.Atoi(c.Param("d"))
	if err != nil || degree < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid degree"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.ConnectionsAtDegree(userID, degree)})
}

// RecommendMutual 共同好友推荐
func (h *GraphHandler) RecommendMutual(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.RecommendMutual(userID)})
}

// RecommendWeighted 多度加权推荐
func (h *GraphHandler) RecommendWeighted(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.RecommendWeighted(userID)})
}

// RecommendCommunities 社区推荐
func (h *GraphHandler) RecommendCommunities(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": h.svc.RecommendCommunities(userID)})
}

// View 全图可视化数据
func (h *GraphHandler) View(c *gin.Context) {
	if _, ok := userIDFromCtx(c); !ok {
		return
	}
	nodes, edges := h.svc.GraphView()
	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "edges": edges})
}
