package api

import (
	"Fable/internal/api/middleware"
	"Fable/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS & 全局限流
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(limiter))
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.GET("/me", group.AuthHandler.Me)
				loggedGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		storyGroup := apiGroup.Group("/stories")
		{
			// 分享链接对未登录访客开放
			storyGroup.GET("/shared/:shareId", group.StoryHandler.GetSharedStory)

			loggedGroup := storyGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/generate", group.StoryHandler.Generate)
				loggedGroup.GET("", group.StoryHandler.ListStories)
				loggedGroup.POST("/:id/share", group.StoryHandler.ShareStory)

				loggedGroup.POST("/:id/favorite", group.FavoriteHandler.Favorite)
				loggedGroup.DELETE("/:id/favorite", group.FavoriteHandler.Unfavorite)
				loggedGroup.GET("/:id/favorite/status", group.FavoriteHandler.GetFavoriteStatus)
				loggedGroup.GET("/favorites/list", group.FavoriteHandler.ListFavorites)

				loggedGroup.POST("/users/:userId/follow", group.FollowHandler.Follow)
				loggedGroup.DELETE("/users/:userId/follow", group.FollowHandler.Unfollow)
				loggedGroup.GET("/users/:userId/followers", group.FollowHandler.GetFollowers)
				loggedGroup.GET("/users/:userId/following", group.FollowHandler.GetFollowing)
				loggedGroup.GET("/users/:userId/stats", group.FollowHandler.GetFollowStats)
				loggedGroup.GET("/users/:userId/follow-status", group.FollowHandler.GetFollowStatus)
			}
		}

		gamificationGroup := apiGroup.Group("/gamification")
		gamificationGroup.Use(middleware.AuthMiddleware())
		{
			gamificationGroup.GET("/stats", group.GamificationHandler.GetStats)
			gamificationGroup.GET("/achievements", group.GamificationHandler.GetAchievements)
		}

		feedGroup := apiGroup.Group("/feed")
		{
			feedGroup.GET("/feed", group.FeedHandler.GetFeed)
			feedGroup.GET("/feed/:id", group.FeedHandler.GetFeedStory)

			loggedGroup := feedGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/feed/share", group.FeedHandler.ShareToFeed)
				loggedGroup.POST("/feed/:id/like", group.FeedHandler.Like)
				loggedGroup.DELETE("/feed/:id/like", group.FeedHandler.Unlike)
				loggedGroup.GET("/feed/:id/liked", group.FeedHandler.GetLikeState)
				loggedGroup.POST("/feed/:id/comment", group.FeedHandler.AddComment)
				loggedGroup.GET("/feed/:id/comments", group.FeedHandler.GetComments)
				loggedGroup.GET("/themes/unlocks", group.FeedHandler.GetThemeUnlocks)
			}
		}

		billingGroup := apiGroup.Group("/billing")
		billingGroup.Use(middleware.AuthMiddleware())
		{
			billingGroup.POST("/checkout", group.BillingHandler.CreateCheckout)
			billingGroup.POST("/webhook/mock-upgrade", group.BillingHandler.MockUpgrade)
		}
	}

	return r
}
