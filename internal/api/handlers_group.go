package api

import "Fable/internal/api/handler"

// HandlersGroup 封装所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler         *handler.AuthHandler
	StoryHandler        *handler.StoryHandler
	FavoriteHandler     *handler.FavoriteHandler
	FollowHandler       *handler.FollowHandler
	GamificationHandler *handler.GamificationHandler
	FeedHandler         *handler.FeedHandler
	BillingHandler      *handler.BillingHandler
}
