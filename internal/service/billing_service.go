package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/billing"
	"Fable/internal/pkg/consts"
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type BillingService interface {
	CreateCheckout(ctx context.Context, userID uint64) (*dto.CheckoutResultDTO, error)
	MockUpgrade(ctx context.Context, userID uint64) (*dto.UpgradeResultDTO, error)
}

type BillingServiceImpl struct {
	userRepo repository.UserRepo
	client   *billing.Client
	now      func() time.Time
}

func NewBillingService(userRepo repository.UserRepo, client *billing.Client) BillingService {
	return &BillingServiceImpl{userRepo: userRepo, client: client, now: time.Now}
}

// CreateCheckout 结账会话透传给支付提供方，上游失败只回通用错误
func (s *BillingServiceImpl) CreateCheckout(ctx context.Context, userID uint64) (*dto.CheckoutResultDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	checkoutURL, err := s.client.CreateCheckoutSession(ctx, userID, user.Email)
	if err != nil {
		log.ErrorContext(ctx, "checkout session failed", "err", err, "user_id", userID)
		return nil, ErrBillingProvider
	}

	return &dto.CheckoutResultDTO{CheckoutURL: checkoutURL}, nil
}

// MockUpgrade 开发期直升会员，生产路径由支付回调驱动
func (s *BillingServiceImpl) MockUpgrade(ctx context.Context, userID uint64) (*dto.UpgradeResultDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	premiumUntil := s.now().UTC().Add(consts.PremiumDuration)
	if err = s.userRepo.UpdateTier(ctx, userID, model.TierPremium, &premiumUntil); err != nil {
		return nil, err
	}

	return &dto.UpgradeResultDTO{Tier: model.TierPremium, PremiumUntil: &premiumUntil}, nil
}
