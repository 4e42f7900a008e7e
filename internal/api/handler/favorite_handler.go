package handler

import (
	"Fable/internal/pkg/response"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteSvc service.FavoriteService
}

func NewFavoriteHandler(favoriteSvc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteSvc: favoriteSvc}
}

func (s *FavoriteHandler) Favorite(c *gin.Context) {
	storyId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.favoriteSvc.Favorite(c.Request.Context(), userId, storyId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FavoriteHandler) Unfavorite(c *gin.Context) {
	storyId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.favoriteSvc.Unfavorite(c.Request.Context(), userId, storyId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FavoriteHandler) GetFavoriteStatus(c *gin.Context) {
	storyId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.favoriteSvc.GetFavoriteStatus(c.Request.Context(), userId, storyId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FavoriteHandler) ListFavorites(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)
	stories, err := s.favoriteSvc.ListFavorites(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"stories": stories})
}
