package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type FavoriteService interface {
	Favorite(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error)
	Unfavorite(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error)
	GetFavoriteStatus(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error)
	ListFavorites(ctx context.Context, userID uint64, limit, offset int) ([]*dto.StoryDTO, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repository.FavoriteRepo
	storyRepo    repository.StoryRepo
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepo, storyRepo repository.StoryRepo) FavoriteService {
	return &FavoriteServiceImpl{favoriteRepo: favoriteRepo, storyRepo: storyRepo}
}

func (s *FavoriteServiceImpl) Favorite(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error) {
	story, err := s.storyRepo.GetStoryByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	created, err := s.favoriteRepo.CreateFavorite(ctx, &model.StoryFavorite{UserID: userID, StoryID: storyID})
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyFavorited
	}

	return &dto.FavoriteStatusDTO{IsFavorited: true}, nil
}

func (s *FavoriteServiceImpl) Unfavorite(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error) {
	rows, err := s.favoriteRepo.DeleteFavorite(ctx, userID, storyID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFavorited
	}

	return &dto.FavoriteStatusDTO{IsFavorited: false}, nil
}

func (s *FavoriteServiceImpl) GetFavoriteStatus(ctx context.Context, userID, storyID uint64) (*dto.FavoriteStatusDTO, error) {
	favorited, err := s.favoriteRepo.CheckFavoriteExists(ctx, userID, storyID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatusDTO{IsFavorited: favorited}, nil
}

// ListFavorites 按收藏先后保序返回故事
func (s *FavoriteServiceImpl) ListFavorites(ctx context.Context, userID uint64, limit, offset int) ([]*dto.StoryDTO, error) {
	storyIDs, err := s.favoriteRepo.GetFavoriteStoryIDs(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(storyIDs) == 0 {
		return []*dto.StoryDTO{}, nil
	}

	stories, err := s.storyRepo.GetStoriesByIDs(ctx, storyIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*dto.StoryDTO, len(stories))
	for _, story := range stories {
		storyDTO := &dto.StoryDTO{}
		if err = copier.Copy(storyDTO, story); err != nil {
			return nil, err
		}
		byID[story.ID] = storyDTO
	}

	list := make([]*dto.StoryDTO, 0, len(storyIDs))
	for _, id := range storyIDs {
		if storyDTO, ok := byID[id]; ok {
			list = append(list, storyDTO)
		}
	}
	return list, nil
}
