package repository

import (
	"context"

	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

// UserRepository 定义了用户的数据仓库接口。
type UserRepository interface {
	Create(ctx context.Context, params *model.CreateUserParams) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}
