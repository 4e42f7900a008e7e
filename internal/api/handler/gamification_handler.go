package handler

import (
	"Fable/internal/pkg/response"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	gamificationSvc service.GamificationService
}

func NewGamificationHandler(gamificationSvc service.GamificationService) *GamificationHandler {
	return &GamificationHandler{gamificationSvc: gamificationSvc}
}

func (s *GamificationHandler) GetStats(c *gin.Context) {
	userId := c.GetUint64("user_id")
	stats, err := s.gamificationSvc.GetStats(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *GamificationHandler) GetAchievements(c *gin.Context) {
	userId := c.GetUint64("user_id")
	achievements, err := s.gamificationSvc.GetAchievements(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"achievements": achievements})
}
