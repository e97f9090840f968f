/*
 * @Description: 游戏物品静态目录（id → 名称/图标）
 */
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

//go:embed items.json
var itemsJSON []byte

// Item 是目录中的一条物品元数据。
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IconPath string `json:"icon_path"`
}

// Catalog 是进程级只读的物品目录。构建完成后不再写入，
// 可被并发请求无锁共享。通过依赖注入传入各服务，测试可注入固定目录。
type Catalog struct {
	items map[int]*Item
}

// New 从给定的物品列表构建目录，重复的 id 视为数据错误。
func New(items []*Item) (*Catalog, error) {
	m := make(map[int]*Item, len(items))
	for _, it := range items {
		if _, ok := m[it.ID]; ok {
			return nil, fmt.Errorf("物品目录中存在重复ID: %d", it.ID)
		}
		m[it.ID] = it
	}
	return &Catalog{items: m}, nil
}

// Load 解析内嵌的物品数据并构建目录，进程启动时调用一次。
func Load() (*Catalog, error) {
	var items []*Item
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("解析内嵌物品数据失败: %w", err)
	}
	return New(items)
}

// Lookup 返回单个物品元数据，不存在时返回 false。
func (c *Catalog) Lookup(id int) (*Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Resolve 将标签 ID 列表解析为标签元数据。
// 目录中不存在的 ID 降级为空名称/空图标，绝不 panic。
func (c *Catalog) Resolve(ids []int) []*model.BlueprintTag {
	tags := make([]*model.BlueprintTag, len(ids))
	for i, id := range ids {
		tag := &model.BlueprintTag{ItemID: id}
		if it, ok := c.items[id]; ok {
			tag.Name = it.Name
			tag.IconPath = it.IconPath
		}
		tags[i] = tag
	}
	return tags
}

// Items 返回按物品 ID 升序排列的全部条目。
func (c *Catalog) Items() []*Item {
	items := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Size 返回目录中的物品条目数。
func (c *Catalog) Size() int {
	return len(c.items)
}
