package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/consts"
	"Fable/internal/pkg/redis"
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error)
	Unfollow(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error)
	GetFollowStats(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error)
	GetFollowStatus(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.UserDTO, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.UserDTO, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowServiceImpl) Follow(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error) {
	if followerID == followingID {
		return nil, ErrFollowSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.followRepo.GetFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFollowing
	}

	if err = s.followRepo.CreateFollow(ctx, &model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}); err != nil {
		return nil, err
	}

	s.evictCountCache(ctx, followerID, followingID)
	return &dto.FollowStatusDTO{IsFollowing: true}, nil
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error) {
	rows, err := s.followRepo.DeleteFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFollowing
	}

	s.evictCountCache(ctx, followerID, followingID)
	return &dto.FollowStatusDTO{IsFollowing: false}, nil
}

// GetFollowStats 计数走 Redis 缓存，未命中回源并写回
func (s *FollowServiceImpl) GetFollowStats(ctx context.Context, userID uint64) (*dto.FollowStatsDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followers, err := s.cachedCount(ctx, consts.UserFollowerCountKey+strconv.FormatUint(userID, 10), func() (int64, error) {
		return s.followRepo.GetFollowerCount(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	following, err := s.cachedCount(ctx, consts.UserFollowingCountKey+strconv.FormatUint(userID, 10), func() (int64, error) {
		return s.followRepo.GetFollowingCount(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	return &dto.FollowStatsDTO{Followers: followers, Following: following}, nil
}

func (s *FollowServiceImpl) GetFollowStatus(ctx context.Context, followerID, followingID uint64) (*dto.FollowStatusDTO, error) {
	follow, err := s.followRepo.GetFollow(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	return &dto.FollowStatusDTO{IsFollowing: follow != nil}, nil
}

func (s *FollowServiceImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.UserDTO, error) {
	follows, err := s.followRepo.GetFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowerID)
	}
	return s.usersInOrder(ctx, ids)
}

func (s *FollowServiceImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.UserDTO, error) {
	follows, err := s.followRepo.GetFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.FollowingID)
	}
	return s.usersInOrder(ctx, ids)
}

// usersInOrder 批量取用户并按关注边的先后保序
func (s *FollowServiceImpl) usersInOrder(ctx context.Context, ids []uint64) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*dto.UserDTO, len(users))
	for _, user := range users {
		userDTO := &dto.UserDTO{}
		if err = copier.Copy(userDTO, user); err != nil {
			return nil, err
		}
		userDTO.UserID = user.ID
		byID[user.ID] = userDTO
	}

	list := make([]*dto.UserDTO, 0, len(ids))
	for _, id := range ids {
		if userDTO, ok := byID[id]; ok {
			list = append(list, userDTO)
		}
	}
	return list, nil
}

func (s *FollowServiceImpl) cachedCount(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	if cached, err := redis.GetInt64(ctx, key); err == nil {
		return cached, nil
	}

	count, err := load()
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, key, count, time.Minute*10); err != nil {
		log.WarnContext(ctx, "cache follow count failed", "err", err, "key", key)
	}
	return count, nil
}

func (s *FollowServiceImpl) evictCountCache(ctx context.Context, followerID, followingID uint64) {
	keys := []string{
		consts.UserFollowingCountKey + strconv.FormatUint(followerID, 10),
		consts.UserFollowerCountKey + strconv.FormatUint(followingID, 10),
	}
	for _, key := range keys {
		if err := redis.DeleteKey(ctx, key); err != nil {
			log.WarnContext(ctx, "evict follow count failed", "err", err, "key", key)
		}
	}
}
