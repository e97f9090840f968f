package repository

import (
	"context"

	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

// CollectionRepository 定义了收藏夹的数据仓库接口。
// 方法接收的 ID 均为数据库 ID；返回的领域模型携带公共 ID。
type CollectionRepository interface {
	Create(ctx context.Context, params *model.CreateCollectionParams) (*model.Collection, error)
	Update(ctx context.Context, id uint, params *model.UpdateCollectionParams) (*model.Collection, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Collection, error)
	OwnerOf(ctx context.Context, id uint) (uint, error)

	// ListByOwner 返回某用户的全部收藏夹（扁平列表，按创建顺序），
	// 供树构建器消费。
	ListByOwner(ctx context.Context, ownerID uint) ([]*model.Collection, error)

	// List 执行列表查询，计数查询与分页查询共享同一套过滤谓词。
	List(ctx context.Context, options *model.ListCollectionsOptions) ([]*model.Collection, int, error)

	// CountBlueprints / CountLikes 对一页收藏夹做成组聚合计数，
	// 返回以公共 ID 为键的映射。
	CountBlueprints(ctx context.Context, publicIDs []string) (map[string]int, error)
	CountLikes(ctx context.Context, publicIDs []string) (map[string]int, error)

	// ParentChainOf 自下而上返回某收藏夹到根的父链（含自身，根在末位），
	// 供根捷径字段维护使用。父链长超过 maxDepth 视为数据异常。
	ParentChainOf(ctx context.Context, id uint, maxDepth int) ([]uint, error)

	Like(ctx context.Context, collectionID, userID uint) error
	Unlike(ctx context.Context, collectionID, userID uint) error
}
