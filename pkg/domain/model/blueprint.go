package model

import "time"

// BlueprintSort 是蓝图列表支持的排序方式（封闭枚举）。
type BlueprintSort string

const (
	BlueprintSortLatest       BlueprintSort = "latest"        // 创建时间倒序（默认）
	BlueprintSortLatestUpdate BlueprintSort = "latest_update" // 更新时间倒序
	BlueprintSortTitle        BlueprintSort = "title"         // 标题字典序
	BlueprintSortCopy         BlueprintSort = "copy"          // 复制次数倒序
	BlueprintSortLike         BlueprintSort = "like"          // 点赞数倒序（聚合）
	BlueprintSortCollection   BlueprintSort = "collection"    // 收藏次数倒序（聚合）
	BlueprintSortProduct      BlueprintSort = "product_sort"  // 锚定标签产量倒序
)

// ParseBlueprintSort 校验排序参数，未识别的值回退到默认的 latest。
func ParseBlueprintSort(s string) BlueprintSort {
	switch BlueprintSort(s) {
	case BlueprintSortLatestUpdate, BlueprintSortTitle, BlueprintSortCopy,
		BlueprintSortLike, BlueprintSortCollection, BlueprintSortProduct:
		return BlueprintSort(s)
	default:
		return BlueprintSortLatest
	}
}

// Blueprint 是蓝图的领域模型。Payload 是外部解析服务产出的不透明序列化串。
type Blueprint struct {
	ID              string    `json:"id"`
	OwnerID         uint      `json:"-"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	Payload         string    `json:"payload"`
	Pictures        []string  `json:"pictures"`
	TagsID          []int     `json:"tags_id"`
	CopyCount       int       `json:"copy_count"`
	IconLayout      int       `json:"icon_layout"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BlueprintTag 是由静态物品目录解析出的标签元数据。
type BlueprintTag struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	IconPath string `json:"icon_path"`
}

// BlueprintProduct 是蓝图的一条产物记录（每分钟产量）。
type BlueprintProduct struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	IconPath string `json:"icon_path"`
	Count    int    `json:"count"`
}

// BlueprintListItem 是蓝图列表页的视图模型。
type BlueprintListItem struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	DescriptionBrief string              `json:"description_brief"`
	Thumbnail        string              `json:"thumbnail"`
	Tags             []*BlueprintTag     `json:"tags"`
	Products         []*BlueprintProduct `json:"products,omitempty"`
	CopyCount        int                 `json:"copy_count"`
	LikeCount        int                 `json:"like_count"`
	CollectionCount  int                 `json:"collection_count"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ListBlueprintsOptions 是蓝图列表查询的全部输入。
// 所有 ID 均为数据库 ID，由调用方在进入服务前完成解码与存在性校验。
type ListBlueprintsOptions struct {
	Page    int
	Sort    BlueprintSort
	Keyword string
	TagIDs  []int
	View    string

	// OwnerID 限定归属用户；0 表示不限定
	OwnerID uint

	// CollectionID 限定为某收藏夹的成员；0 表示不限定。
	// IncludeDescendants 为 true 时，额外匹配 root_collection_id
	// 命中该收藏夹的成员（根捷径模式，避免递归联接）。
	CollectionID       uint
	IncludeDescendants bool
}

// ListBlueprintsResult 是蓝图列表查询的输出。
// Tags 回显请求中标签筛选对应的目录元数据。
type ListBlueprintsResult struct {
	List        []*BlueprintListItem `json:"list"`
	Total       int                  `json:"total"`
	CurrentPage int                  `json:"currentPage"`
	Sort        string               `json:"sort"`
	Keyword     string               `json:"keyword"`
	View        string               `json:"view"`
	Tags        []*BlueprintTag      `json:"tags"`
}

// CreateBlueprintRequest 是创建蓝图的请求体。
// Products 来自外部解析服务对 Payload 的解码结果，本服务不解析蓝图串。
type CreateBlueprintRequest struct {
	Title       string                `json:"title" binding:"required,max=128"`
	Description string                `json:"description" binding:"max=8192"`
	Payload     string                `json:"payload" binding:"required"`
	Pictures    []string              `json:"pictures"`
	TagsID      []int                 `json:"tags_id"`
	IconLayout  int                   `json:"icon_layout"`
	Products    []*BlueprintProductIn `json:"products"`
}

// UpdateBlueprintRequest 是更新蓝图的请求体，nil 字段表示不修改。
type UpdateBlueprintRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Payload     *string               `json:"payload"`
	Pictures    []string              `json:"pictures"`
	TagsID      []int                 `json:"tags_id"`
	IconLayout  *int                  `json:"icon_layout"`
	Products    []*BlueprintProductIn `json:"products"`
}

// BlueprintProductIn 是写入侧的产物行。
type BlueprintProductIn struct {
	ItemID int `json:"item_id"`
	Count  int `json:"count"`
}

// CreateBlueprintParams 是仓库层创建蓝图的参数。
type CreateBlueprintParams struct {
	OwnerID         uint
	Title           string
	Description     string
	DescriptionHTML string
	Payload         string
	Pictures        []string
	TagsID          []int
	IconLayout      int
	Products        []*BlueprintProductIn
}

// UpdateBlueprintParams 是仓库层更新蓝图的参数。
type UpdateBlueprintParams struct {
	Title           *string
	Description     *string
	DescriptionHTML *string
	Payload         *string
	Pictures        []string
	TagsID          []int
	IconLayout      *int

	// ReplaceProducts 为 true 时整体替换产物行
	ReplaceProducts bool
	Products        []*BlueprintProductIn
}
