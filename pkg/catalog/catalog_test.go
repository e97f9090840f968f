package catalog

import "testing"

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New([]*Item{
		{ID: 1101, Name: "铁块", IconPath: "icons/item_recipe/iron-ingot.png"},
		{ID: 1104, Name: "铜块", IconPath: "icons/item_recipe/copper-ingot.png"},
	})
	if err != nil {
		t.Fatalf("构建固定目录失败: %v", err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("加载内嵌目录失败: %v", err)
	}
	if c.Size() == 0 {
		t.Fatal("内嵌目录不应为空")
	}
	it, ok := c.Lookup(1101)
	if !ok {
		t.Fatal("内嵌目录应包含物品 1101")
	}
	if it.Name == "" || it.IconPath == "" {
		t.Errorf("物品 1101 元数据不完整: %+v", it)
	}
}

func TestNewDuplicateID(t *testing.T) {
	_, err := New([]*Item{
		{ID: 1101, Name: "铁块"},
		{ID: 1101, Name: "铁块(重复)"},
	})
	if err == nil {
		t.Fatal("重复ID应返回错误")
	}
}

func TestResolve(t *testing.T) {
	c := fixtureCatalog(t)

	tests := []struct {
		name     string
		ids      []int
		wantName []string
		wantIcon []string
	}{
		{
			name:     "全部命中",
			ids:      []int{1101, 1104},
			wantName: []string{"铁块", "铜块"},
			wantIcon: []string{"icons/item_recipe/iron-ingot.png", "icons/item_recipe/copper-ingot.png"},
		},
		{
			name:     "目录缺失的ID降级为空元数据",
			ids:      []int{1101, 999999},
			wantName: []string{"铁块", ""},
			wantIcon: []string{"icons/item_recipe/iron-ingot.png", ""},
		},
		{
			name:     "空输入",
			ids:      nil,
			wantName: []string{},
			wantIcon: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := c.Resolve(tt.ids)
			if len(tags) != len(tt.ids) {
				t.Fatalf("期望 %d 个标签，得到 %d 个", len(tt.ids), len(tags))
			}
			for i, tag := range tags {
				if tag.ItemID != tt.ids[i] {
					t.Errorf("标签[%d] ItemID = %d, 期望 %d", i, tag.ItemID, tt.ids[i])
				}
				if tag.Name != tt.wantName[i] {
					t.Errorf("标签[%d] Name = %q, 期望 %q", i, tag.Name, tt.wantName[i])
				}
				if tag.IconPath != tt.wantIcon[i] {
					t.Errorf("标签[%d] IconPath = %q, 期望 %q", i, tag.IconPath, tt.wantIcon[i])
				}
			}
		})
	}
}
