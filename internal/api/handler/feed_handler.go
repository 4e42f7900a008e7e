package handler

import (
	"Fable/internal/api/dto"
	"Fable/internal/pkg/response"
	"Fable/internal/pkg/util"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) GetFeed(c *gin.Context) {
	limit, offset := getPagination(c)
	posts, err := s.feedSvc.GetFeed(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

func (s *FeedHandler) GetFeedStory(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.feedSvc.GetFeedStory(c.Request.Context(), postId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FeedHandler) ShareToFeed(c *gin.Context) {
	var shareDTO dto.ShareToFeedDTO
	err := c.ShouldBind(&shareDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&shareDTO); err != nil {
		response.Error(c, err)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.feedSvc.ShareToFeed(c.Request.Context(), userId, shareDTO.StoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *FeedHandler) Like(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.feedSvc.Like(c.Request.Context(), userId, postId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FeedHandler) Unlike(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.feedSvc.Unlike(c.Request.Context(), userId, postId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FeedHandler) GetLikeState(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.feedSvc.IsLiked(c.Request.Context(), userId, postId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *FeedHandler) AddComment(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var commentDTO dto.CommentCreateDTO
	err := c.ShouldBind(&commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}

	userId := c.GetUint64("user_id")
	comment, err := s.feedSvc.AddComment(c.Request.Context(), userId, postId, commentDTO.Content)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *FeedHandler) GetComments(c *gin.Context) {
	postId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	limit, offset := getPagination(c)
	comments, err := s.feedSvc.GetComments(c.Request.Context(), postId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

func (s *FeedHandler) GetThemeUnlocks(c *gin.Context) {
	userId := c.GetUint64("user_id")
	themes, err := s.feedSvc.GetThemeUnlocks(c.Request.Context(), userId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"themes": themes})
}
