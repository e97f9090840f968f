/*
 * @Description: 注册、登录与令牌校验
 */
package auth

import (
	"context"
	"fmt"

	"github.com/dsp2b/dsp2b/internal/pkg/auth"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"

	"golang.org/x/crypto/bcrypt"
)

// Service 封装了用户认证相关的业务逻辑。
type Service struct {
	users  repository.UserRepository
	secret []byte
}

// NewService 是 Auth Service 的构造函数。
func NewService(users repository.UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Register 注册新用户，用户名与邮箱均要求唯一。
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if exists, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, fmt.Errorf("检查用户名失败: %w", err)
	} else if exists {
		return nil, fmt.Errorf("用户名已被占用: %w", constant.ErrConflict)
	}
	if exists, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	} else if exists {
		return nil, fmt.Errorf("邮箱已被占用: %w", constant.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	return s.users.Create(ctx, &model.CreateUserParams{
		Username:     req.Username,
		Nickname:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
}

// Login 校验用户名密码并签发访问令牌。
// 用户不存在与密码错误返回同一个错误，不泄露账号是否存在。
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, constant.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, constant.ErrUnauthorized
	}

	dbID, entityType, err := idgen.DecodePublicID(user.ID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, fmt.Errorf("解码用户ID失败: %w", constant.ErrInternalServer)
	}

	token, err := auth.GenerateToken(dbID, s.secret)
	if err != nil {
		return nil, fmt.Errorf("签发令牌失败: %w", err)
	}

	return &model.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(auth.AccessTokenTTL.Seconds()),
		User:        user,
	}, nil
}

// ParseAccessToken 解析访问令牌。
func (s *Service) ParseAccessToken(_ context.Context, tokenStr string) (*auth.CustomClaims, error) {
	return auth.ParseToken(tokenStr, s.secret)
}

// UserIDFromClaims 把 Claims 中的公共用户 ID 还原为数据库 ID。
func UserIDFromClaims(claims *auth.CustomClaims) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(claims.UserID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return 0, constant.ErrInvalidToken
	}
	return dbID, nil
}
