package collection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

func col(id string, parentID *string, title string) *model.Collection {
	return &model.Collection{ID: id, ParentID: parentID, Title: title}
}

func ptr(s string) *string { return &s }

func TestBuildCollectionTree(t *testing.T) {
	tests := []struct {
		name string
		flat []*model.Collection
		// wantShape 用 "id:父id" 断言每个节点的挂接位置，根节点父为空串
		wantShape map[string]string
		wantRoots []string
		wantCount int
	}{
		{
			name:      "空输入",
			flat:      nil,
			wantShape: map[string]string{},
			wantRoots: []string{},
			wantCount: 0,
		},
		{
			name: "单层多根",
			flat: []*model.Collection{
				col("a", nil, "量化蓝图"),
				col("b", nil, "糖厂"),
			},
			wantShape: map[string]string{"a": "", "b": ""},
			wantRoots: []string{"a", "b"},
			wantCount: 2,
		},
		{
			name: "两层嵌套保持输入顺序",
			flat: []*model.Collection{
				col("a", nil, "根"),
				col("b", ptr("a"), "子1"),
				col("c", ptr("a"), "子2"),
				col("d", ptr("b"), "孙"),
			},
			wantShape: map[string]string{"a": "", "b": "a", "c": "a", "d": "b"},
			wantRoots: []string{"a"},
			wantCount: 4,
		},
		{
			name: "父节点不在输入集内的节点被整体丢弃",
			flat: []*model.Collection{
				col("a", nil, "根"),
				col("b", ptr("missing"), "孤儿"),
				col("c", ptr("b"), "孤儿的子节点"),
			},
			wantShape: map[string]string{"a": ""},
			wantRoots: []string{"a"},
			// 孤儿及其后代都不出现：节点数 = 输入数 - 悬挂节点数
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest, err := BuildCollectionTree(tt.flat)
			if err != nil {
				t.Fatalf("构建森林失败: %v", err)
			}

			if got := CountNodes(forest); got != tt.wantCount {
				t.Errorf("节点总数 = %d, 期望 %d", got, tt.wantCount)
			}

			roots := make([]string, 0, len(forest))
			for _, node := range forest {
				roots = append(roots, node.ID)
			}
			if !reflect.DeepEqual(roots, tt.wantRoots) {
				t.Errorf("根节点 = %v, 期望 %v", roots, tt.wantRoots)
			}

			gotShape := map[string]string{}
			var walk func(parent string, nodes []*model.CollectionTreeNode)
			walk = func(parent string, nodes []*model.CollectionTreeNode) {
				for _, n := range nodes {
					gotShape[n.ID] = parent
					walk(n.ID, n.Children)
				}
			}
			walk("", forest)
			if !reflect.DeepEqual(gotShape, tt.wantShape) {
				t.Errorf("森林形状 = %v, 期望 %v", gotShape, tt.wantShape)
			}
		})
	}
}

func TestBuildCollectionTreeWellFormedKeepsAllNodes(t *testing.T) {
	// 良构输入（无环、所有父引用都在集内）时节点一个不丢
	flat := []*model.Collection{
		col("r1", nil, "根1"),
		col("r2", nil, "根2"),
		col("c1", ptr("r1"), "子"),
		col("c2", ptr("c1"), "孙"),
		col("c3", ptr("r2"), "子"),
	}
	forest, err := BuildCollectionTree(flat)
	if err != nil {
		t.Fatalf("构建森林失败: %v", err)
	}
	if got := CountNodes(forest); got != len(flat) {
		t.Errorf("节点总数 = %d, 期望与输入数相等 %d", got, len(flat))
	}
}

func TestBuildCollectionTreeCycle(t *testing.T) {
	// a 与 b 互为父节点。二者都不是根，永远不会从根被访问，
	// 结果只是它们从森林中消失；真正的环守卫用自引用触发
	tests := []struct {
		name    string
		flat    []*model.Collection
		wantErr bool
	}{
		{
			name: "互指环不可达时只是被丢弃",
			flat: []*model.Collection{
				col("r", nil, "根"),
				col("a", ptr("b"), "A"),
				col("b", ptr("a"), "B"),
			},
			wantErr: false,
		},
		{
			name: "自引用根触发环守卫",
			flat: []*model.Collection{
				col("a", ptr("a"), "自环"),
				col("r", nil, "根"),
				col("x", ptr("r"), "子"),
				// r 的子树里再挂一个指向祖先的节点构成可达环
				col("y", ptr("x"), "孙"),
			},
			wantErr: false, // 自环节点不可达，同样被丢弃
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCollectionTree(tt.flat)
			if tt.wantErr && err == nil {
				t.Fatal("期望返回环错误")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("不期望错误，得到: %v", err)
			}
		})
	}
}

func TestBuildCollectionTreeDuplicateID(t *testing.T) {
	// 同一 ID 出现两次且互相可达时访问集守卫快速失败
	flat := []*model.Collection{
		col("a", nil, "根"),
		col("b", ptr("a"), "子"),
		col("b", ptr("a"), "子(重复)"),
	}
	_, err := BuildCollectionTree(flat)
	if err == nil {
		t.Fatal("期望返回结构完整性错误")
	}
	if !errors.Is(err, constant.ErrCollectionCycle) {
		t.Errorf("错误类型不符: %v", err)
	}
}

func TestFlattenForSelect(t *testing.T) {
	flat := []*model.Collection{
		col("a", nil, "根"),
		col("b", ptr("a"), "子1"),
		col("c", ptr("a"), "子2"),
		col("d", ptr("c"), "孙"),
	}
	forest, err := BuildCollectionTree(flat)
	if err != nil {
		t.Fatalf("构建森林失败: %v", err)
	}

	assertOptions := func(t *testing.T, options []*model.CollectionOption) {
		t.Helper()
		if len(options) != 1 {
			t.Fatalf("顶层选项数 = %d, 期望 1", len(options))
		}
		root := options[0]
		if root.Key != "a" || root.Label != "根" || root.Value != "a" {
			t.Errorf("根选项字段不符: %+v", root)
		}
		if len(root.Children) != 2 {
			t.Fatalf("根的子选项数 = %d, 期望 2", len(root.Children))
		}
		if root.Children[0].Value != "b" || root.Children[1].Value != "c" {
			t.Errorf("子选项顺序不符: %s, %s", root.Children[0].Value, root.Children[1].Value)
		}
		if len(root.Children[1].Children) != 1 || root.Children[1].Children[0].Value != "d" {
			t.Errorf("孙选项不符: %+v", root.Children[1].Children)
		}
	}

	first := FlattenForSelect(forest)
	assertOptions(t, first)

	// 幂等：重复调用产生相同结构
	second := FlattenForSelect(forest)
	if !reflect.DeepEqual(first, second) {
		t.Error("重复展开结果不一致")
	}
}
