package handler

import (
	"errors"
	"net/http"
	"strconv"

	"NovaCom/internal/service"
	"NovaCom/internal/store"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	svc *service.ChatService
}

type PostMessageReq struct {
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"`
	MediaURL string `json:"media_url"`
	ReplyTo  uint64 `json:"reply_to"`
}

type CreatePollReq struct {
	Question      string   `json:"question" binding:"required"`
	AllowMultiple bool     `json:"allow_multiple"`
	Options       []string `json:"options" binding:"required,min=2"`
}

type VoteReq struct {
	OptionID int `json:"option_id" binding:"required"`
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

func respondChatErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"msg": "not a member"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}

// PostMessage 社区内发消息
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req PostMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.PostMessage(commID, userID, req.Content, req.Type, req.MediaURL, req.ReplyTo)
	if err != nil {
		respondChatErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// CreatePoll 发起投票
func (h *ChatHandler) CreatePoll(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req CreatePollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	msg, err := h.svc.CreatePoll(commID, userID, req.Question, req.AllowMultiple, req.Options)
	if err != nil {
		respondChatErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// Vote 投票开关
func (h *ChatHandler) Vote(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	msgID, _ := strconv.ParseUint(c.Param("msg_id"), 10, 64)

	var req VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Vote(commID, userID, msgID, req.OptionID); err != nil {
		respondChatErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Upvote 点赞开关
func (h *ChatHandler) Upvote(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	msgID, _ := strconv.ParseUint(c.Param("msg_id"), 10, 64)

	added, err := h.svc.Upvote(commID, userID, msgID)
	if err != nil {
		respondChatErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upvoted": added})
}

// Feed 最近一页消息
func (h *ChatHandler) Feed(c *gin.Context) {
	if _, ok := userIDFromCtx(c); !ok {
		return
	}
	commID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	offset, _ := strconv.Atoi(c.Query("offset"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, total, err := h.svc.Feed(commID, offset, limit)
	if err != nil {
		respondChatErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "total": total})
}
