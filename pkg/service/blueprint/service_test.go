package blueprint

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dsp2b/dsp2b/pkg/catalog"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/idgen"
	"github.com/dsp2b/dsp2b/pkg/service/utility"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*catalog.Item{
		{ID: 1101, Name: "铁块", IconPath: "icons/item/1101.png"},
		{ID: 1104, Name: "铜块", IconPath: "icons/item/1104.png"},
	})
	if err != nil {
		t.Fatalf("构建测试目录失败: %v", err)
	}
	return cat
}

// fakeBlueprintRepo 是内存版的蓝图仓库。
type fakeBlueprintRepo struct {
	blueprints map[uint]*model.Blueprint
	owners     map[uint]uint

	listResult       []*model.Blueprint
	listTotal        int
	likeCounts       map[string]int
	collectionCounts map[string]int
	topProducts      map[string][]*model.BlueprintProduct

	listCalled       bool
	topProductsAsked bool
	copyIncrements   int
	created          *model.CreateBlueprintParams
	updated          *model.UpdateBlueprintParams
	memberships      [][3]uint // blueprint, collection, root
}

func (f *fakeBlueprintRepo) Create(_ context.Context, params *model.CreateBlueprintParams) (*model.Blueprint, error) {
	f.created = params
	publicID, _ := idgen.GeneratePublicID(1, idgen.EntityTypeBlueprint)
	return &model.Blueprint{ID: publicID, Title: params.Title, DescriptionHTML: params.DescriptionHTML}, nil
}

func (f *fakeBlueprintRepo) Update(_ context.Context, id uint, params *model.UpdateBlueprintParams) (*model.Blueprint, error) {
	f.updated = params
	if b, ok := f.blueprints[id]; ok {
		return b, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeBlueprintRepo) Delete(context.Context, uint) error { return nil }

func (f *fakeBlueprintRepo) FindByID(_ context.Context, id uint) (*model.Blueprint, error) {
	if b, ok := f.blueprints[id]; ok {
		return b, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeBlueprintRepo) OwnerOf(_ context.Context, id uint) (uint, error) {
	if owner, ok := f.owners[id]; ok {
		return owner, nil
	}
	return 0, constant.ErrNotFound
}

func (f *fakeBlueprintRepo) IncrementCopyCount(context.Context, uint) error {
	f.copyIncrements++
	return nil
}

func (f *fakeBlueprintRepo) List(context.Context, *model.ListBlueprintsOptions) ([]*model.Blueprint, int, error) {
	f.listCalled = true
	return f.listResult, f.listTotal, nil
}

func (f *fakeBlueprintRepo) CountLikes(context.Context, []string) (map[string]int, error) {
	return f.likeCounts, nil
}

func (f *fakeBlueprintRepo) CountCollections(context.Context, []string) (map[string]int, error) {
	return f.collectionCounts, nil
}

func (f *fakeBlueprintRepo) TopProducts(context.Context, []string, int) (map[string][]*model.BlueprintProduct, error) {
	f.topProductsAsked = true
	return f.topProducts, nil
}

func (f *fakeBlueprintRepo) Like(context.Context, uint, uint) error   { return nil }
func (f *fakeBlueprintRepo) Unlike(context.Context, uint, uint) error { return nil }

func (f *fakeBlueprintRepo) AddToCollection(_ context.Context, blueprintID, collectionID, rootCollectionID uint) error {
	f.memberships = append(f.memberships, [3]uint{blueprintID, collectionID, rootCollectionID})
	return nil
}

func (f *fakeBlueprintRepo) RemoveFromCollection(context.Context, uint, uint) error { return nil }
func (f *fakeBlueprintRepo) ResetRootShortcut(context.Context, uint, uint) error    { return nil }
func (f *fakeBlueprintRepo) RefreshCounters(context.Context) error                  { return nil }

// fakeCollectionResolver 用静态父子关系回答父链查询。
type fakeCollectionResolver struct {
	owners  map[uint]uint
	parents map[uint]uint
}

func (f *fakeCollectionResolver) OwnerOf(_ context.Context, id uint) (uint, error) {
	if owner, ok := f.owners[id]; ok {
		return owner, nil
	}
	return 0, constant.ErrNotFound
}

func (f *fakeCollectionResolver) ParentChainOf(_ context.Context, id uint, maxDepth int) ([]uint, error) {
	chain := []uint{id}
	for cur := id; ; {
		parent, ok := f.parents[cur]
		if !ok {
			return chain, nil
		}
		chain = append(chain, parent)
		cur = parent
		if len(chain) > maxDepth {
			return nil, constant.ErrCollectionCycle
		}
	}
}

// memoryCache 是测试用的内存缓存，忽略 TTL。
type memoryCache struct {
	data map[string]string
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func blueprintPublicID(t *testing.T, dbID uint) string {
	t.Helper()
	id, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeBlueprint)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	return id
}

func TestListRejectsProductSortWithoutTags(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	svc := NewService(repo, nil, testCatalog(t), utility.NewCacheService(nil))

	_, err := svc.List(context.Background(), &model.ListBlueprintsOptions{
		Sort: model.BlueprintSortProduct,
	})
	if !errors.Is(err, constant.ErrProductSortNoTag) {
		t.Fatalf("期望 ErrProductSortNoTag，得到 %v", err)
	}
	if repo.listCalled {
		t.Error("快速失败时不应触达仓库")
	}
}

func TestListAssemblesItems(t *testing.T) {
	longDesc := strings.Repeat("电", model.DescriptionBriefLimit+10)
	b1 := &model.Blueprint{
		ID:          "bp1",
		Title:       "铁块量产",
		Description: longDesc,
		Pictures:    []string{"p1.webp", "p2.webp"},
		TagsID:      []int{1101, 9999},
		CopyCount:   12,
	}
	b2 := &model.Blueprint{ID: "bp2", Title: "空图蓝图"}
	repo := &fakeBlueprintRepo{
		listResult:       []*model.Blueprint{b1, b2},
		listTotal:        55,
		likeCounts:       map[string]int{"bp1": 9},
		collectionCounts: map[string]int{"bp1": 4, "bp2": 2},
	}
	svc := NewService(repo, nil, testCatalog(t), utility.NewCacheService(nil))

	result, err := svc.List(context.Background(), &model.ListBlueprintsOptions{
		Page: 3,
		Sort: model.BlueprintSortLike,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}

	if result.Total != 55 || result.CurrentPage != 3 || result.Sort != "like" {
		t.Errorf("分页元数据错误: total=%d page=%d sort=%s", result.Total, result.CurrentPage, result.Sort)
	}

	first := result.List[0]
	if first.Thumbnail != "p1.webp" {
		t.Errorf("缩略图应为首张图片，得到 %q", first.Thumbnail)
	}
	if got := len([]rune(first.DescriptionBrief)); got != model.DescriptionBriefLimit {
		t.Errorf("简介截断长度错误: %d", got)
	}
	if first.LikeCount != 9 || first.CollectionCount != 4 {
		t.Errorf("计数合并错误: like=%d collection=%d", first.LikeCount, first.CollectionCount)
	}
	if len(first.Tags) != 2 || first.Tags[0].Name != "铁块" {
		t.Fatalf("标签解析错误: %+v", first.Tags)
	}
	if first.Tags[1].Name != "" {
		t.Errorf("目录外标签应降级为空名称，得到 %q", first.Tags[1].Name)
	}
	if first.Products != nil {
		t.Error("未启用标签筛选时不应附带产物预览")
	}
	if repo.topProductsAsked {
		t.Error("未启用标签筛选时不应查询产物预览")
	}

	second := result.List[1]
	if second.Thumbnail != "" || second.LikeCount != 0 {
		t.Errorf("无图无赞的蓝图应为零值: thumbnail=%q like=%d", second.Thumbnail, second.LikeCount)
	}
}

func TestListAttachesProductsWhenTagFilterActive(t *testing.T) {
	repo := &fakeBlueprintRepo{
		listResult: []*model.Blueprint{{ID: "bp1", TagsID: []int{1101}}},
		listTotal:  1,
		topProducts: map[string][]*model.BlueprintProduct{
			"bp1": {{ItemID: 1101, Name: "铁块", Count: 360}},
		},
	}
	svc := NewService(repo, nil, testCatalog(t), utility.NewCacheService(nil))

	result, err := svc.List(context.Background(), &model.ListBlueprintsOptions{
		Sort:   model.BlueprintSortProduct,
		TagIDs: []int{1101},
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if !repo.topProductsAsked {
		t.Fatal("标签筛选激活时应查询产物预览")
	}
	if len(result.List[0].Products) != 1 || result.List[0].Products[0].Count != 360 {
		t.Errorf("产物预览装配错误: %+v", result.List[0].Products)
	}
	if len(result.Tags) != 1 || result.Tags[0].Name != "铁块" {
		t.Errorf("回显标签元数据错误: %+v", result.Tags)
	}
}

func TestCreateRendersAndSanitizesDescription(t *testing.T) {
	repo := &fakeBlueprintRepo{}
	svc := NewService(repo, nil, testCatalog(t), utility.NewCacheService(nil))

	_, err := svc.Create(context.Background(), 1, &model.CreateBlueprintRequest{
		Title:       "量产线",
		Description: "# 标题\n\n<script>alert(1)</script>正文",
		Payload:     "BLUEPRINT:0,1",
		TagsID:      []int{1101},
	})
	if err != nil {
		t.Fatalf("Create 返回错误: %v", err)
	}
	if repo.created == nil {
		t.Fatal("仓库未收到创建参数")
	}
	html := repo.created.DescriptionHTML
	if !strings.Contains(html, "<h1") {
		t.Errorf("Markdown 标题未渲染: %q", html)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("HTML 未清洗: %q", html)
	}
}

func TestCreateRejectsUnknownTag(t *testing.T) {
	svc := NewService(&fakeBlueprintRepo{}, nil, testCatalog(t), utility.NewCacheService(nil))

	_, err := svc.Create(context.Background(), 1, &model.CreateBlueprintRequest{
		Title:   "量产线",
		Payload: "BLUEPRINT:0,1",
		TagsID:  []int{9999},
	})
	if !errors.Is(err, constant.ErrInvalidTagID) {
		t.Errorf("目录外标签期望 ErrInvalidTagID，得到 %v", err)
	}
}

func TestCopyDeduplicatesIncrements(t *testing.T) {
	repo := &fakeBlueprintRepo{
		blueprints: map[uint]*model.Blueprint{7: {ID: blueprintPublicID(t, 7), Payload: "BLUEPRINT:0,1"}},
	}
	svc := NewService(repo, nil, testCatalog(t), newMemoryCache())

	publicID := blueprintPublicID(t, 7)
	for i := 0; i < 3; i++ {
		payload, err := svc.Copy(context.Background(), "visitor-a", publicID)
		if err != nil {
			t.Fatalf("Copy 返回错误: %v", err)
		}
		if payload != "BLUEPRINT:0,1" {
			t.Fatalf("返回的蓝图串错误: %q", payload)
		}
	}
	if repo.copyIncrements != 1 {
		t.Errorf("同一访问者重复复制应只计数一次，得到 %d", repo.copyIncrements)
	}

	if _, err := svc.Copy(context.Background(), "visitor-b", publicID); err != nil {
		t.Fatalf("Copy 返回错误: %v", err)
	}
	if repo.copyIncrements != 2 {
		t.Errorf("不同访问者应各自计数，得到 %d", repo.copyIncrements)
	}
}

func TestAddToCollectionWritesRootShortcut(t *testing.T) {
	// 层级: 10(根) -> 20 -> 30，加入 30 时根捷径应为 10
	repo := &fakeBlueprintRepo{}
	resolver := &fakeCollectionResolver{
		owners:  map[uint]uint{30: 1},
		parents: map[uint]uint{30: 20, 20: 10},
	}
	svc := NewService(repo, resolver, testCatalog(t), utility.NewCacheService(nil))

	bpID := blueprintPublicID(t, 7)
	collID, _ := idgen.GeneratePublicID(30, idgen.EntityTypeCollection)
	if err := svc.AddToCollection(context.Background(), 1, bpID, collID); err != nil {
		t.Fatalf("AddToCollection 返回错误: %v", err)
	}

	if len(repo.memberships) != 1 {
		t.Fatalf("期望 1 条成员关系，得到 %d", len(repo.memberships))
	}
	got := repo.memberships[0]
	if got != [3]uint{7, 30, 10} {
		t.Errorf("成员关系参数错误: %v", got)
	}
}

func TestAddToCollectionRejectsForeignCollection(t *testing.T) {
	resolver := &fakeCollectionResolver{owners: map[uint]uint{30: 2}}
	svc := NewService(&fakeBlueprintRepo{}, resolver, testCatalog(t), utility.NewCacheService(nil))

	bpID := blueprintPublicID(t, 7)
	collID, _ := idgen.GeneratePublicID(30, idgen.EntityTypeCollection)
	err := svc.AddToCollection(context.Background(), 1, bpID, collID)
	if !errors.Is(err, constant.ErrForbidden) {
		t.Errorf("加入他人收藏夹期望 ErrForbidden，得到 %v", err)
	}
}

func TestAddToCollectionRejectsSwappedIDs(t *testing.T) {
	svc := NewService(&fakeBlueprintRepo{}, &fakeCollectionResolver{}, testCatalog(t), utility.NewCacheService(nil))

	bpID := blueprintPublicID(t, 7)
	collID, _ := idgen.GeneratePublicID(30, idgen.EntityTypeCollection)
	if err := svc.AddToCollection(context.Background(), 1, collID, bpID); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("实体类型错位期望 ErrInvalidPublicID，得到 %v", err)
	}
}

func TestParseTagIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{"空串", "", nil, false},
		{"纯空白", "   ", nil, false},
		{"单个", "1101", []int{1101}, false},
		{"多个", "1101,1104", []int{1101, 1104}, false},
		{"带空格", " 1101 , 1104 ", []int{1101, 1104}, false},
		{"连续逗号跳过空段", "1101,,1104", []int{1101, 1104}, false},
		{"非数字整体拒绝", "1101,abc", nil, true},
		{"负数拒绝", "-5", nil, true},
		{"零拒绝", "0", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTagIDs(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, constant.ErrInvalidTagID) {
					t.Fatalf("期望 ErrInvalidTagID，得到 %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("意外错误: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("长度不符: 得到 %v 期望 %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("第 %d 项不符: 得到 %d 期望 %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
