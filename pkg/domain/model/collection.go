package model

import "time"

// CollectionSort 是收藏夹列表支持的排序方式。
type CollectionSort string

const (
	CollectionSortLatest CollectionSort = "latest" // 创建时间倒序（默认）
	CollectionSortLike   CollectionSort = "like"   // 点赞数倒序
)

// ParseCollectionSort 校验排序参数，未识别的值回退到默认的 latest。
func ParseCollectionSort(s string) CollectionSort {
	switch CollectionSort(s) {
	case CollectionSortLike:
		return CollectionSortLike
	default:
		return CollectionSortLatest
	}
}

// Collection 是收藏夹的领域模型。ID / ParentID 均为对外公开的短 ID。
type Collection struct {
	ID          string    `json:"id"`
	OwnerID     uint      `json:"-"`
	ParentID    *string   `json:"parent_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Public      bool      `json:"public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CollectionTreeNode 是收藏夹树的节点：收藏夹本体加上有序的子节点列表。
// 子节点顺序与扁平输入中的出现顺序一致，每次请求重建，不做持久化。
type CollectionTreeNode struct {
	*Collection
	Children []*CollectionTreeNode `json:"children"`
}

// CollectionForest 是收藏夹树的根节点集合。
type CollectionForest []*CollectionTreeNode

// CollectionOption 是树形选择器控件消费的选项节点。
type CollectionOption struct {
	Key      string              `json:"key"`
	Label    string              `json:"label"`
	Value    string              `json:"value"`
	Children []*CollectionOption `json:"children"`
}

// CollectionListItem 是收藏夹列表页的视图模型，带派生计数。
type CollectionListItem struct {
	*Collection
	DescriptionBrief string `json:"description_brief"`
	BlueprintCount   int    `json:"blueprint_count"`
	LikeCount        int    `json:"like_count"`
}

// ListCollectionsOptions 是收藏夹列表查询的全部输入。
// OwnerID / BlueprintID 为数据库 ID，由调用方在进入服务前完成解码与存在性校验。
type ListCollectionsOptions struct {
	Page    int
	Sort    CollectionSort
	Keyword string
	View    string

	// RootOnly 只返回顶层收藏夹（parent 为空）
	RootOnly bool

	// OwnerID 限定归属用户；0 表示不限定
	OwnerID uint

	// BlueprintID 限定为包含该蓝图的收藏夹；0 表示不限定
	BlueprintID uint

	// IncludePrivate 是否包含私有收藏夹。访问者即所有者时为 true，
	// 必须在构建过滤谓词之前完成判定。
	IncludePrivate bool
}

// ListCollectionsResult 是收藏夹列表查询的输出。
type ListCollectionsResult struct {
	List        []*CollectionListItem `json:"list"`
	Total       int                   `json:"total"`
	CurrentPage int                   `json:"currentPage"`
	Sort        string                `json:"sort"`
	Keyword     string                `json:"keyword"`
	View        string                `json:"view"`
}

// CreateCollectionRequest 是创建收藏夹的请求体。
type CreateCollectionRequest struct {
	Title       string  `json:"title" binding:"required,max=64"`
	Description string  `json:"description" binding:"max=1024"`
	ParentID    *string `json:"parent_id"`
	Public      *bool   `json:"public"`
}

// UpdateCollectionRequest 是更新收藏夹的请求体，nil 字段表示不修改。
type UpdateCollectionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	Public      *bool   `json:"public"`
}

// CreateCollectionParams 是仓库层创建收藏夹的参数（均为数据库 ID）。
type CreateCollectionParams struct {
	OwnerID     uint
	ParentID    *uint
	Title       string
	Description string
	Public      bool
}

// UpdateCollectionParams 是仓库层更新收藏夹的参数。
// SetParent 为 true 时按 ParentID 重设父节点（nil 表示移动到顶层）。
type UpdateCollectionParams struct {
	Title       *string
	Description *string
	Public      *bool
	SetParent   bool
	ParentID    *uint
}
