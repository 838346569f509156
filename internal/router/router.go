package router

import (
	"NovaCom/internal/handler"
	"NovaCom/internal/middleware"
	"NovaCom/internal/pkg"
	"NovaCom/internal/service"
	"NovaCom/internal/store"

	"github.com/gin-gonic/gin"
)

func InitRouter(st *store.Store, persist service.Persister, emailCfg pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(emailCfg)

	user := handler.NewUserHandler(service.NewUserService(st, persist, emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	friend := handler.NewFriendHandler(service.NewFriendService(st, persist))
	graph := handler.NewGraphHandler(service.NewGraphService(st))
	community := handler.NewCommunityHandler(service.NewCommunityService(st, persist))
	moderation := handler.NewModerationHandler(service.NewModerationService(st, persist))
	chat := handler.NewChatHandler(service.NewChatService(st, persist))

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/logout", user.Logout)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态账号接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.GET("/profile", user.Profile)
		authGroup.PUT("/profile", user.UpdateProfile)
		authGroup.DELETE("/account", user.DeleteAccount)
		authGroup.GET("/search", user.Search)
	}

	// 好友相关接口
	friendGroup := r.Group("/api/friend")
	friendGroup.Use(middleware.AuthMiddleware())
	{
		friendGroup.POST("/request/:id", friend.SendRequest)
		friendGroup.POST("/accept/:id", friend.Accept)
		friendGroup.POST("/decline/:id", friend.Decline)
		friendGroup.GET("/pending", friend.Pending)
		friendGroup.GET("/relation/:id", friend.Relation)
		friendGroup.DELETE("/:id", friend.Unfriend)
		friendGroup.GET("/list", friend.List)
	}

	// 关系图谱接口
	graphGroup := r.Group("/api/graph")
	graphGroup.Use(middleware.AuthMiddleware())
	{
		graphGroup.GET("/degree/:id", graph.Degree)
		graphGroup.GET("/connections/:d", graph.AtDegree)
		graphGroup.GET("/recommend/mutual", graph.RecommendMutual)
		graphGroup.GET("/recommend/weighted", graph.RecommendWeighted)
		graphGroup.GET("/recommend/communities", graph.RecommendCommunities)
		graphGroup.GET("/view", graph.View)
	}

	// 社区相关接口
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.POST("/:id/join", community.Join)
		communityGroup.POST("/:id/leave", community.Leave)
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/popular", community.Popular)
		communityGroup.GET("/joined", community.Joined)
		communityGroup.GET("/:id", community.Details)
		communityGroup.GET("/:id/members", community.Members)

		// 管理操作
		communityGroup.POST("/:id/promote", moderation.Promote)
		communityGroup.POST("/:id/demote", moderation.Demote)
		communityGroup.POST("/:id/transfer", moderation.Transfer)
		communityGroup.POST("/:id/ban", moderation.Ban)
		communityGroup.POST("/:id/unban", moderation.Unban)

		// 聊天流
		communityGroup.GET("/:id/feed", chat.Feed)
		communityGroup.POST("/:id/message", chat.PostMessage)
		communityGroup.POST("/:id/poll", chat.CreatePoll)
		communityGroup.POST("/:id/message/:msg_id/vote", chat.Vote)
		communityGroup.POST("/:id/message/:msg_id/upvote", chat.Upvote)
		communityGroup.POST("/:id/message/:msg_id/pin", moderation.PinMessage)
		communityGroup.DELETE("/:id/message/:msg_id", moderation.DeleteMessage)
	}

	return r
}
