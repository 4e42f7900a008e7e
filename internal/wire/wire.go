package wire

import (
	"Fable/internal/api"
	"Fable/internal/api/config"
	"Fable/internal/api/handler"
	"Fable/internal/api/middleware"
	"Fable/internal/job"
	"Fable/internal/model"
	"Fable/internal/pkg/billing"
	"Fable/internal/pkg/cron"
	"Fable/internal/pkg/llm"
	"Fable/internal/repository"
	"Fable/internal/service"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// defaultThemes 启动时种子化的主题解锁门槛
var defaultThemes = []*model.ThemeUnlock{
	{ThemeID: "classic", ThemeName: "Classic Parchment", XPThreshold: 0},
	{ThemeID: "midnight", ThemeName: "Midnight Ink", XPThreshold: 100},
	{ThemeID: "forest", ThemeName: "Whispering Forest", XPThreshold: 250},
	{ThemeID: "ocean", ThemeName: "Deep Ocean", XPThreshold: 500},
	{ThemeID: "galaxy", ThemeName: "Starlit Galaxy", XPThreshold: 1000},
	{ThemeID: "gilded", ThemeName: "Gilded Archive", XPThreshold: 2500},
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	storyRepo := repository.NewStoryRepo(db)
	storyUsageRepo := repository.NewStoryUsageRepo(db)
	userStatsRepo := repository.NewUserStatsRepo(db)
	achievementRepo := repository.NewAchievementRepo(db)
	followRepo := repository.NewFollowRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	feedRepo := repository.NewFeedRepo(db)
	shareLimitRepo := repository.NewShareLimitRepo(db)
	themeRepo := repository.NewThemeRepo(db)
	loginStreakRepo := repository.NewLoginStreakRepo(db)

	if err := themeRepo.SeedThemes(context.Background(), defaultThemes); err != nil {
		return nil, err
	}

	llmClient := llm.NewClient(cfg.LLM)
	billingClient := billing.NewClient(cfg.Billing)

	gamificationService := service.NewGamificationService(userStatsRepo, achievementRepo, loginStreakRepo)
	usageService := service.NewUsageService(storyUsageRepo, cfg.Limits.FreeDailyStories)
	storyService := service.NewStoryService(storyRepo, userRepo, usageService, gamificationService, llmClient, cfg.Server.ShareURL)
	favoriteService := service.NewFavoriteService(favoriteRepo, storyRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(feedRepo, storyRepo, shareLimitRepo, themeRepo, userStatsRepo, gamificationService, cfg.Limits.DailyFeedShares)
	authService := service.NewAuthService(userRepo, gamificationService)
	billingService := service.NewBillingService(userRepo, billingClient)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(authService),
		StoryHandler:        handler.NewStoryHandler(storyService),
		FavoriteHandler:     handler.NewFavoriteHandler(favoriteService),
		FollowHandler:       handler.NewFollowHandler(followService),
		GamificationHandler: handler.NewGamificationHandler(gamificationService),
		FeedHandler:         handler.NewFeedHandler(feedService),
		BillingHandler:      handler.NewBillingHandler(billingService),
	}

	limiter := middleware.NewRateLimiter(time.Duration(cfg.Limits.RequestWindowMs) * time.Millisecond)
	router := api.SetupRouter(handlers, limiter)

	cronMgr := cron.NewCronManager(job.NewPremiumExpiryJob(userRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
