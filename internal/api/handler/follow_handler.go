package handler

import (
	"Fable/internal/pkg/response"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Follow(c *gin.Context) {
	followingId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.followSvc.Follow(c.Request.Context(), userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FollowHandler) Unfollow(c *gin.Context) {
	followingId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.followSvc.Unfollow(c.Request.Context(), userId, followingId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FollowHandler) GetFollowers(c *gin.Context) {
	targetId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit, offset := getPagination(c)
	users, err := s.followSvc.GetFollowers(c.Request.Context(), targetId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"users": users})
}

func (s *FollowHandler) GetFollowing(c *gin.Context) {
	targetId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit, offset := getPagination(c)
	users, err := s.followSvc.GetFollowing(c.Request.Context(), targetId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"users": users})
}

func (s *FollowHandler) GetFollowStats(c *gin.Context) {
	targetId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.followSvc.GetFollowStats(c.Request.Context(), targetId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FollowHandler) GetFollowStatus(c *gin.Context) {
	targetId, ok := pathID(c, "userId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.followSvc.GetFollowStatus(c.Request.Context(), userId, targetId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
