package service

import (
	"Fable/internal/model"
	"Fable/internal/pkg/util"
	"Fable/internal/repository"
	"context"
	"time"
)

// UsageService 免费档每日生成额度评估；Remaining 返回 nil 表示不限量
type UsageService interface {
	Remaining(ctx context.Context, user *model.User) (*int, error)
	EnsureUnderLimit(ctx context.Context, user *model.User) (*int, error)
	ConsumeAndRemaining(ctx context.Context, user *model.User) (*int, error)
}

type UsageServiceImpl struct {
	usageRepo  repository.StoryUsageRepo
	dailyLimit int
	now        func() time.Time
}

func NewUsageService(usageRepo repository.StoryUsageRepo, dailyLimit int) UsageService {
	return &UsageServiceImpl{
		usageRepo:  usageRepo,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

func (s *UsageServiceImpl) Remaining(ctx context.Context, user *model.User) (*int, error) {
	now := s.now()
	if user.IsPremiumActive(now) {
		return nil, nil
	}

	count, err := s.usageRepo.GetCount(ctx, user.ID, util.DateOf(now))
	if err != nil {
		return nil, err
	}

	remaining := s.dailyLimit - count
	if remaining < 0 {
		remaining = 0
	}
	return &remaining, nil
}

// EnsureUnderLimit 额度耗尽时拒绝；返回生成前的剩余值，调用方在实际扣减后须重新评估
func (s *UsageServiceImpl) EnsureUnderLimit(ctx context.Context, user *model.User) (*int, error) {
	remaining, err := s.Remaining(ctx, user)
	if err != nil {
		return nil, err
	}
	if remaining != nil && *remaining == 0 {
		return nil, ErrGenerationLimit
	}
	return remaining, nil
}

// ConsumeAndRemaining 扣减当日计数后重新评估，返回反映扣减后状态的剩余值
func (s *UsageServiceImpl) ConsumeAndRemaining(ctx context.Context, user *model.User) (*int, error) {
	now := s.now()
	if user.IsPremiumActive(now) {
		return nil, nil
	}

	if err := s.usageRepo.Increment(ctx, user.ID, util.DateOf(now)); err != nil {
		return nil, err
	}
	return s.Remaining(ctx, user)
}
