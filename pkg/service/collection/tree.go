/*
 * @Description: 收藏夹树构建与树形选择器展开
 */
package collection

import (
	"fmt"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

// BuildCollectionTree 把同一用户的扁平收藏夹列表物化为一片有根森林。
//
// 扁平列表按输入顺序分成两组：parent 为空的作为根，其余按 parent 聚合成
// "父ID → 直接子节点列表"的映射（保留输入顺序），再从每个根出发递归挂接。
// parent 指向不在输入集内的节点不会被访问到，整个节点从结果森林中消失
// （不会被提升为额外的根）——这是既有的对外行为，调用方依赖它过滤掉
// 跨用户引用或父节点已被软删除的脏数据。
//
// 挂接过程带访问集守卫：畸形数据中出现环时立即返回
// constant.ErrCollectionCycle，而不是无限递归。
func BuildCollectionTree(flat []*model.Collection) (model.CollectionForest, error) {
	var roots []*model.Collection
	childrenByParent := make(map[string][]*model.Collection)
	for _, c := range flat {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], c)
		}
	}

	visited := make(map[string]bool, len(flat))
	forest := make(model.CollectionForest, 0, len(roots))
	for _, root := range roots {
		node, err := attach(root, childrenByParent, visited)
		if err != nil {
			return nil, err
		}
		forest = append(forest, node)
	}
	return forest, nil
}

// attach 以 c 为根递归构建子树。
func attach(c *model.Collection, childrenByParent map[string][]*model.Collection, visited map[string]bool) (*model.CollectionTreeNode, error) {
	if visited[c.ID] {
		return nil, fmt.Errorf("收藏夹 %s 被重复访问: %w", c.ID, constant.ErrCollectionCycle)
	}
	visited[c.ID] = true

	node := &model.CollectionTreeNode{
		Collection: c,
		Children:   make([]*model.CollectionTreeNode, 0, len(childrenByParent[c.ID])),
	}
	for _, child := range childrenByParent[c.ID] {
		childNode, err := attach(child, childrenByParent, visited)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// FlattenForSelect 把收藏夹森林展开为树形选择器的选项节点。
// 稳定的前序遍历，纯函数，对同一输入可重复调用。
func FlattenForSelect(forest model.CollectionForest) []*model.CollectionOption {
	options := make([]*model.CollectionOption, 0, len(forest))
	for _, node := range forest {
		options = append(options, toOption(node))
	}
	return options
}

func toOption(node *model.CollectionTreeNode) *model.CollectionOption {
	option := &model.CollectionOption{
		Key:      node.ID,
		Label:    node.Title,
		Value:    node.ID,
		Children: make([]*model.CollectionOption, 0, len(node.Children)),
	}
	for _, child := range node.Children {
		option.Children = append(option.Children, toOption(child))
	}
	return option
}

// CountNodes 返回森林中的节点总数，供调用方对比输入量识别被丢弃的孤儿节点。
func CountNodes(forest model.CollectionForest) int {
	total := 0
	for _, node := range forest {
		total += 1 + CountNodes(node.Children)
	}
	return total
}
