package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestEnv struct {
	svc             *AuthServiceImpl
	userRepo        *fakeUserRepo
	statsRepo       *fakeUserStatsRepo
	loginStreakRepo *fakeLoginStreakRepo
	now             time.Time
}

func newAuthTestEnv(t *testing.T) *authTestEnv {
	t.Helper()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	userRepo := newFakeUserRepo()
	statsRepo := newFakeUserStatsRepo()
	loginStreakRepo := newFakeLoginStreakRepo()

	gamificationSvc := NewGamificationService(statsRepo, newFakeAchievementRepo(), loginStreakRepo).(*GamificationServiceImpl)
	gamificationSvc.now = func() time.Time { return now }

	svc := NewAuthService(userRepo, gamificationSvc).(*AuthServiceImpl)
	return &authTestEnv{svc: svc, userRepo: userRepo, statsRepo: statsRepo, loginStreakRepo: loginStreakRepo, now: now}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newAuthTestEnv(t)

	registered, err := env.svc.Register(ctx, &dto.RegisterDTO{Email: "  Reader@Example.COM ", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	// 邮箱大小写折叠
	assert.Equal(t, "reader@example.com", registered.User.Email)
	assert.Equal(t, model.TierFree, registered.User.Tier)

	logged, err := env.svc.Login(ctx, &dto.CredentialDTO{Email: "reader@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.Equal(t, registered.User.UserID, logged.User.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	env := newAuthTestEnv(t)

	_, err := env.svc.Register(ctx, &dto.RegisterDTO{Email: "dup@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, &dto.RegisterDTO{Email: "DUP@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	env := newAuthTestEnv(t)

	_, err := env.svc.Register(ctx, &dto.RegisterDTO{Email: "who@example.com", Password: "secret123"})
	require.NoError(t, err)

	// 未注册与错误口令返回同一错误
	_, err = env.svc.Login(ctx, &dto.CredentialDTO{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.svc.Login(ctx, &dto.CredentialDTO{Email: "who@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAwardsStreakBonus(t *testing.T) {
	ctx := context.Background()
	env := newAuthTestEnv(t)

	result, err := env.svc.Register(ctx, &dto.RegisterDTO{Email: "streak@example.com", Password: "secret123"})
	require.NoError(t, err)
	userID := result.User.UserID

	_, err = env.svc.Login(ctx, &dto.CredentialDTO{Email: "streak@example.com", Password: "secret123"})
	require.NoError(t, err)

	// 首日登录 streak=1，奖励 5 XP
	stats, err := env.statsRepo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalXP)

	// 同日重复登录不重复发奖
	_, err = env.svc.Login(ctx, &dto.CredentialDTO{Email: "streak@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalXP)
}

func TestLoginBonusCapped(t *testing.T) {
	ctx := context.Background()
	env := newAuthTestEnv(t)

	result, err := env.svc.Register(ctx, &dto.RegisterDTO{Email: "veteran@example.com", Password: "secret123"})
	require.NoError(t, err)
	userID := result.User.UserID

	// 已连续登录 11 天，今日登录为第 12 天：12*5=60 超过 50 上限
	yesterday := env.now.AddDate(0, 0, -1)
	require.NoError(t, env.loginStreakRepo.Upsert(ctx, &model.LoginStreak{
		UserID: userID, CurrentStreak: 11, LongestStreak: 11, LastLogin: yesterday,
	}))

	_, err = env.svc.Login(ctx, &dto.CredentialDTO{Email: "veteran@example.com", Password: "secret123"})
	require.NoError(t, err)

	stats, err := env.statsRepo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 50, stats.TotalXP)
}
