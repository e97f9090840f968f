package collection

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeCollectionRepo 是内存版的收藏夹仓库，只实现测试用到的路径。
type fakeCollectionRepo struct {
	collections map[uint]*model.Collection
	owners      map[uint]uint
	parents     map[uint]uint // child -> parent，顶层收藏夹不出现

	listResult      []*model.Collection
	listTotal       int
	blueprintCounts map[string]int
	likeCounts      map[string]int

	updatedParams *model.UpdateCollectionParams
}

func (f *fakeCollectionRepo) Create(_ context.Context, params *model.CreateCollectionParams) (*model.Collection, error) {
	publicID, _ := idgen.GeneratePublicID(uint(len(f.collections)+1), idgen.EntityTypeCollection)
	c := &model.Collection{ID: publicID, OwnerID: params.OwnerID, Title: params.Title, Public: params.Public}
	return c, nil
}

func (f *fakeCollectionRepo) Update(_ context.Context, id uint, params *model.UpdateCollectionParams) (*model.Collection, error) {
	f.updatedParams = params
	if c, ok := f.collections[id]; ok {
		return c, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeCollectionRepo) Delete(context.Context, uint) error { return nil }

func (f *fakeCollectionRepo) FindByID(_ context.Context, id uint) (*model.Collection, error) {
	if c, ok := f.collections[id]; ok {
		return c, nil
	}
	return nil, constant.ErrNotFound
}

func (f *fakeCollectionRepo) OwnerOf(_ context.Context, id uint) (uint, error) {
	if owner, ok := f.owners[id]; ok {
		return owner, nil
	}
	return 0, constant.ErrNotFound
}

func (f *fakeCollectionRepo) ListByOwner(context.Context, uint) ([]*model.Collection, error) {
	return f.listResult, nil
}

func (f *fakeCollectionRepo) List(context.Context, *model.ListCollectionsOptions) ([]*model.Collection, int, error) {
	return f.listResult, f.listTotal, nil
}

func (f *fakeCollectionRepo) CountBlueprints(context.Context, []string) (map[string]int, error) {
	return f.blueprintCounts, nil
}

func (f *fakeCollectionRepo) CountLikes(context.Context, []string) (map[string]int, error) {
	return f.likeCounts, nil
}

func (f *fakeCollectionRepo) ParentChainOf(_ context.Context, id uint, maxDepth int) ([]uint, error) {
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

func (f *fakeCollectionRepo) Like(context.Context, uint, uint) error   { return nil }
func (f *fakeCollectionRepo) Unlike(context.Context, uint, uint) error { return nil }

// fakeBlueprintRepoForCollection 只记录根捷径重写调用。
type fakeBlueprintRepoForCollection struct {
	resetCollectionID uint
	resetRootID       uint
	resetCalled       bool
}

func (f *fakeBlueprintRepoForCollection) ResetRootShortcut(_ context.Context, collectionID, rootID uint) error {
	f.resetCalled = true
	f.resetCollectionID = collectionID
	f.resetRootID = rootID
	return nil
}

func collectionPublicID(t *testing.T, dbID uint) string {
	t.Helper()
	id, err := idgen.GeneratePublicID(dbID, idgen.EntityTypeCollection)
	if err != nil {
		t.Fatalf("生成公共ID失败: %v", err)
	}
	return id
}

func TestListMergesCountsAndTruncatesDescription(t *testing.T) {
	longDesc := strings.Repeat("矩", model.DescriptionBriefLimit+20)
	c1 := &model.Collection{ID: "aaaa", Title: "量产线", Description: longDesc}
	c2 := &model.Collection{ID: "bbbb", Title: "原料场", Description: "短描述"}
	repo := &fakeCollectionRepo{
		listResult:      []*model.Collection{c1, c2},
		listTotal:       42,
		blueprintCounts: map[string]int{"aaaa": 7},
		likeCounts:      map[string]int{"aaaa": 3, "bbbb": 1},
	}
	svc := NewService(repo, nil)

	result, err := svc.List(context.Background(), &model.ListCollectionsOptions{
		Page: 2,
		Sort: model.CollectionSortLatest,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}

	if result.Total != 42 || result.CurrentPage != 2 {
		t.Errorf("分页元数据错误: total=%d page=%d", result.Total, result.CurrentPage)
	}
	if len(result.List) != 2 {
		t.Fatalf("期望 2 条记录，得到 %d", len(result.List))
	}

	first := result.List[0]
	if first.BlueprintCount != 7 || first.LikeCount != 3 {
		t.Errorf("计数合并错误: blueprint=%d like=%d", first.BlueprintCount, first.LikeCount)
	}
	if got := len([]rune(first.DescriptionBrief)); got != model.DescriptionBriefLimit {
		t.Errorf("描述截断长度错误: 期望 %d 得到 %d", model.DescriptionBriefLimit, got)
	}

	second := result.List[1]
	if second.BlueprintCount != 0 {
		t.Errorf("缺失计数应为零值，得到 %d", second.BlueprintCount)
	}
	if second.DescriptionBrief != "短描述" {
		t.Errorf("短描述不应截断: %q", second.DescriptionBrief)
	}
}

func TestListNormalizesPage(t *testing.T) {
	repo := &fakeCollectionRepo{}
	svc := NewService(repo, nil)

	result, err := svc.List(context.Background(), &model.ListCollectionsOptions{Page: 0})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if result.CurrentPage != 1 {
		t.Errorf("页码应规整为 1，得到 %d", result.CurrentPage)
	}
}

func TestTreeFiltersPrivateForVisitors(t *testing.T) {
	repo := &fakeCollectionRepo{
		listResult: []*model.Collection{
			{ID: "pub1", Title: "公开", Public: true},
			{ID: "pri1", Title: "私有", Public: false},
		},
	}
	svc := NewService(repo, nil)

	forest, options, err := svc.Tree(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("Tree 返回错误: %v", err)
	}
	if len(forest) != 1 || forest[0].ID != "pub1" {
		t.Fatalf("访客视图应只含公开收藏夹，得到 %d 个根", len(forest))
	}
	if len(options) != 1 {
		t.Errorf("选择器选项数量错误: %d", len(options))
	}

	forest, _, err = svc.Tree(context.Background(), 1, true)
	if err != nil {
		t.Fatalf("Tree 返回错误: %v", err)
	}
	if len(forest) != 2 {
		t.Errorf("本人视图应含全部收藏夹，得到 %d 个根", len(forest))
	}
}

func TestUpdateReparentRewritesRootShortcut(t *testing.T) {
	// 层级: 10(根) -> 20 -> 30，把 30 挂到 20 下（原本就在，触发重算即可）
	repo := &fakeCollectionRepo{
		collections: map[uint]*model.Collection{30: {ID: collectionPublicID(t, 30), OwnerID: 1}},
		owners:      map[uint]uint{10: 1, 20: 1, 30: 1},
		parents:     map[uint]uint{20: 10, 30: 20},
	}
	blueprintRepo := &fakeBlueprintRepoForCollection{}
	svc := NewService(repo, blueprintRepo)

	newParent := collectionPublicID(t, 20)
	_, err := svc.Update(context.Background(), 1, collectionPublicID(t, 30), &model.UpdateCollectionRequest{
		ParentID: &newParent,
	})
	if err != nil {
		t.Fatalf("Update 返回错误: %v", err)
	}

	if !blueprintRepo.resetCalled {
		t.Fatal("换父后应重写根捷径")
	}
	if blueprintRepo.resetCollectionID != 30 || blueprintRepo.resetRootID != 10 {
		t.Errorf("根捷径重写参数错误: collection=%d root=%d",
			blueprintRepo.resetCollectionID, blueprintRepo.resetRootID)
	}
	if repo.updatedParams == nil || !repo.updatedParams.SetParent {
		t.Error("更新参数应携带 SetParent 标记")
	}
}

func TestUpdateRejectsSelfParent(t *testing.T) {
	repo := &fakeCollectionRepo{
		collections: map[uint]*model.Collection{30: {ID: collectionPublicID(t, 30), OwnerID: 1}},
		owners:      map[uint]uint{30: 1},
	}
	svc := NewService(repo, &fakeBlueprintRepoForCollection{})

	self := collectionPublicID(t, 30)
	_, err := svc.Update(context.Background(), 1, self, &model.UpdateCollectionRequest{ParentID: &self})
	if !errors.Is(err, constant.ErrBadRequest) {
		t.Errorf("父收藏夹为自身时期望 ErrBadRequest，得到 %v", err)
	}
}

func TestUpdateRejectsForeignCollection(t *testing.T) {
	repo := &fakeCollectionRepo{
		owners: map[uint]uint{30: 2},
	}
	svc := NewService(repo, &fakeBlueprintRepoForCollection{})

	title := "改名"
	_, err := svc.Update(context.Background(), 1, collectionPublicID(t, 30), &model.UpdateCollectionRequest{Title: &title})
	if !errors.Is(err, constant.ErrForbidden) {
		t.Errorf("更新他人收藏夹期望 ErrForbidden，得到 %v", err)
	}
}

func TestGetHidesPrivateFromVisitors(t *testing.T) {
	repo := &fakeCollectionRepo{
		collections: map[uint]*model.Collection{
			30: {ID: collectionPublicID(t, 30), OwnerID: 2, Public: false},
		},
	}
	svc := NewService(repo, nil)

	if _, err := svc.Get(context.Background(), 1, collectionPublicID(t, 30)); !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("访客读取私有收藏夹期望 ErrNotFound，得到 %v", err)
	}
	if _, err := svc.Get(context.Background(), 2, collectionPublicID(t, 30)); err != nil {
		t.Errorf("所有者读取私有收藏夹不应报错: %v", err)
	}
}

func TestGetRejectsWrongEntityType(t *testing.T) {
	svc := NewService(&fakeCollectionRepo{}, nil)

	blueprintID, _ := idgen.GeneratePublicID(30, idgen.EntityTypeBlueprint)
	if _, err := svc.Get(context.Background(), 1, blueprintID); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("蓝图 ID 当收藏夹 ID 用时期望 ErrInvalidPublicID，得到 %v", err)
	}
}

