package user

import (
	"context"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"
)

// Service 封装了用户资料的查询逻辑。
type Service struct {
	repo repository.UserRepository
}

// NewService 是 User Service 的构造函数。
func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

// Get 按数据库 ID 返回用户。
func (s *Service) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByPublicID 按公共 ID 返回用户。
func (s *Service) GetByPublicID(ctx context.Context, publicID string) (*model.User, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeUser {
		return nil, constant.ErrInvalidPublicID
	}
	return s.repo.FindByID(ctx, dbID)
}
