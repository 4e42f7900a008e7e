package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/consts"
	"Fable/internal/pkg/redis"
	"Fable/internal/pkg/security"
	"Fable/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/copier"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error)
	Me(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
}

type AuthServiceImpl struct {
	userRepo        repository.UserRepo
	gamificationSvc GamificationService
}

func NewAuthService(userRepo repository.UserRepo, gamificationSvc GamificationService) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, gamificationSvc: gamificationSvc}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.AuthResultDTO, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Tier:         model.TierFree,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 并发注册撞唯一索引时同样按邮箱已存在处理
		if isDuplicateError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.authResult(user)
}

// Login 口令错误与用户不存在统一回 ErrInvalidCredentials，不泄露账号是否注册
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.AuthResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 登录连击推进与 XP 奖励失败不阻断登录
	if streak, advanced, err := s.gamificationSvc.RecordLogin(ctx, user.ID); err != nil {
		log.ErrorContext(ctx, "record login failed", "err", err, "user_id", user.ID)
	} else if advanced {
		bonus := streak * consts.LoginBonusPerDay
		if bonus > consts.LoginBonusCap {
			bonus = consts.LoginBonusCap
		}
		if err = s.gamificationSvc.AwardXP(ctx, user.ID, bonus); err != nil {
			log.ErrorContext(ctx, "login bonus failed", "err", err, "user_id", user.ID)
		}
	}

	return s.authResult(user)
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = user.ID
	return userDTO, nil
}

// Logout 按签名拉黑令牌，TTL 与令牌有效期对齐
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenylistKey+signature, "1", security.JWTExpirationTime)
}

func (s *AuthServiceImpl) authResult(user *model.User) (*dto.AuthResultDTO, error) {
	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = user.ID

	return &dto.AuthResultDTO{User: userDTO, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
