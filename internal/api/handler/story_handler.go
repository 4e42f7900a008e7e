package handler

import (
	"Fable/internal/api/dto"
	"Fable/internal/pkg/response"
	"Fable/internal/pkg/util"
	"Fable/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storySvc service.StoryService
}

func NewStoryHandler(storySvc service.StoryService) *StoryHandler {
	return &StoryHandler{storySvc: storySvc}
}

func (s *StoryHandler) Generate(c *gin.Context) {
	var generateDTO dto.GenerateStoryDTO
	err := c.ShouldBind(&generateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&generateDTO); err != nil {
		response.Error(c, err)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.storySvc.Generate(c.Request.Context(), userId, &generateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *StoryHandler) ListStories(c *gin.Context) {
	userId := c.GetUint64("user_id")
	limit, offset := getPagination(c)

	result, err := s.storySvc.ListStories(c.Request.Context(), userId, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *StoryHandler) ShareStory(c *gin.Context) {
	storyId, ok := pathID(c, "id")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userId := c.GetUint64("user_id")
	result, err := s.storySvc.ShareStory(c.Request.Context(), userId, storyId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *StoryHandler) GetSharedStory(c *gin.Context) {
	shareId := c.Param("shareId")
	if shareId == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	story, err := s.storySvc.GetSharedStory(c.Request.Context(), shareId)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"story": story})
}
