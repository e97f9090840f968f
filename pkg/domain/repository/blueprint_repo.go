package repository

import (
	"context"

	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

// BlueprintRepository 定义了蓝图的数据仓库接口。
type BlueprintRepository interface {
	Create(ctx context.Context, params *model.CreateBlueprintParams) (*model.Blueprint, error)
	Update(ctx context.Context, id uint, params *model.UpdateBlueprintParams) (*model.Blueprint, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Blueprint, error)
	OwnerOf(ctx context.Context, id uint) (uint, error)
	IncrementCopyCount(ctx context.Context, id uint) error

	// List 执行列表查询，计数查询与分页查询共享同一套过滤谓词。
	// 排序附带 id 作为次级排序键，保证分页稳定。
	List(ctx context.Context, options *model.ListBlueprintsOptions) ([]*model.Blueprint, int, error)

	// CountLikes / CountCollections 对一页蓝图做成组聚合计数（GROUP BY），
	// 返回以公共 ID 为键的映射。代替逐行计数查询。
	CountLikes(ctx context.Context, publicIDs []string) (map[string]int, error)
	CountCollections(ctx context.Context, publicIDs []string) (map[string]int, error)

	// TopProducts 返回每个蓝图按产量倒序的前 limit 条产物行。
	TopProducts(ctx context.Context, publicIDs []string, limit int) (map[string][]*model.BlueprintProduct, error)

	Like(ctx context.Context, blueprintID, userID uint) error
	Unlike(ctx context.Context, blueprintID, userID uint) error

	// AddToCollection 建立蓝图与收藏夹的成员关系，并写入根捷径字段。
	AddToCollection(ctx context.Context, blueprintID, collectionID, rootCollectionID uint) error
	RemoveFromCollection(ctx context.Context, blueprintID, collectionID uint) error

	// ResetRootShortcut 将直属于 collectionID 的成员关系的根捷径
	// 批量改写为 newRoot，收藏夹换父后由服务层调用。
	ResetRootShortcut(ctx context.Context, collectionID, newRoot uint) error

	// RefreshCounters 从点赞与成员关系表重算蓝图上的冗余计数列，
	// 由定时任务调用。
	RefreshCounters(ctx context.Context) error
}
