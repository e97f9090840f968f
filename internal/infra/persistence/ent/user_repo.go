package ent

import (
	"context"
	"fmt"

	"github.com/dsp2b/dsp2b/ent"
	"github.com/dsp2b/dsp2b/ent/user"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo 是 userRepo 的构造函数。
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

// toModel 负责将 ent.User 实体转换为 model.User 领域模型。
func (r *userRepo) toModel(u *ent.User) (*model.User, error) {
	if u == nil {
		return nil, nil
	}
	publicID, err := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	if err != nil {
		return nil, fmt.Errorf("生成用户公共ID失败: dbID=%d: %w", u.ID, err)
	}
	return &model.User{
		ID:           publicID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Username:     u.Username,
		Nickname:     u.Nickname,
		Email:        u.Email,
		Avatar:       u.Avatar,
		PasswordHash: u.PasswordHash,
	}, nil
}

func (r *userRepo) Create(ctx context.Context, params *model.CreateUserParams) (*model.User, error) {
	entity, err := r.db.User.Create().
		SetUsername(params.Username).
		SetNickname(params.Nickname).
		SetEmail(params.Email).
		SetPasswordHash(params.PasswordHash).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.UsernameEQ(username)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.db.User.Query().Where(user.UsernameEQ(username)).Exist(ctx)
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.db.User.Query().Where(user.EmailEQ(email)).Exist(ctx)
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.db.User.Query().Count(ctx)
}
