package ent

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"entgo.io/ent/dialect"

	"github.com/dsp2b/dsp2b/ent"
	"github.com/dsp2b/dsp2b/ent/enttest"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/idgen"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	_ "github.com/ncruces/go-sqlite3/vfs/memdb"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestClient 基于共享内存 SQLite 建库并完成迁移，每个测试独立一库。
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:/%s.db?vfs=memdb", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, dialect.SQLite, dsn)
	t.Cleanup(func() { client.Close() })
	return client
}

func mustDBID(t *testing.T, publicID string) uint {
	t.Helper()
	id, _, err := idgen.DecodePublicID(publicID)
	if err != nil {
		t.Fatalf("解码公共ID %q 失败: %v", publicID, err)
	}
	return id
}

func seedBlueprint(t *testing.T, repo *blueprintRepo, ownerID uint, title string) *model.Blueprint {
	t.Helper()
	b, err := repo.Create(context.Background(), &model.CreateBlueprintParams{
		OwnerID: ownerID,
		Title:   title,
		Payload: "BLUEPRINT:" + title,
	})
	if err != nil {
		t.Fatalf("创建蓝图 %q 失败: %v", title, err)
	}
	return b
}

func TestListTitleSortIsLexicographic(t *testing.T) {
	client := newTestClient(t)
	repo := &blueprintRepo{db: client}
	ctx := context.Background()

	for _, title := range []string{"charlie", "alpha", "bravo"} {
		seedBlueprint(t, repo, 1, title)
	}

	list, total, err := repo.List(ctx, &model.ListBlueprintsOptions{
		Page: 1,
		Sort: model.BlueprintSortTitle,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if total != 3 || len(list) != 3 {
		t.Fatalf("期望 3 条，got total=%d len=%d", total, len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Title > list[i].Title {
			t.Errorf("标题排序非递增: %q 在 %q 之前", list[i-1].Title, list[i].Title)
		}
	}
}

func TestListCopySortIsNonIncreasing(t *testing.T) {
	client := newTestClient(t)
	repo := &blueprintRepo{db: client}
	ctx := context.Background()

	copies := map[string]int{"冷门蓝图": 0, "热门蓝图": 5, "普通蓝图": 2}
	for title, n := range copies {
		b := seedBlueprint(t, repo, 1, title)
		dbID := mustDBID(t, b.ID)
		for i := 0; i < n; i++ {
			if err := repo.IncrementCopyCount(ctx, dbID); err != nil {
				t.Fatalf("累加复制计数失败: %v", err)
			}
		}
	}

	list, _, err := repo.List(ctx, &model.ListBlueprintsOptions{
		Page: 1,
		Sort: model.BlueprintSortCopy,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("期望 3 条，got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].CopyCount < list[i].CopyCount {
			t.Errorf("复制计数排序非递减: %d 在 %d 之前", list[i-1].CopyCount, list[i].CopyCount)
		}
	}
	if list[0].Title != "热门蓝图" {
		t.Errorf("复制最多的蓝图应排在首位, got %q", list[0].Title)
	}
}

func TestListPaginationOffsetLaw(t *testing.T) {
	client := newTestClient(t)
	repo := &blueprintRepo{db: client}
	ctx := context.Background()

	seeded := model.PageSizeBlueprints + 5
	for i := 0; i < seeded; i++ {
		seedBlueprint(t, repo, 1, fmt.Sprintf("蓝图 %03d", i))
	}

	page1, total1, err := repo.List(ctx, &model.ListBlueprintsOptions{Page: 1, Sort: model.BlueprintSortLatest})
	if err != nil {
		t.Fatalf("第 1 页查询失败: %v", err)
	}
	page2, total2, err := repo.List(ctx, &model.ListBlueprintsOptions{Page: 2, Sort: model.BlueprintSortLatest})
	if err != nil {
		t.Fatalf("第 2 页查询失败: %v", err)
	}

	if total1 != seeded || total2 != seeded {
		t.Errorf("total 应与页码无关: page1=%d page2=%d want=%d", total1, total2, seeded)
	}
	if len(page1) != model.PageSizeBlueprints || len(page2) != 5 {
		t.Fatalf("分页大小错误: page1=%d page2=%d", len(page1), len(page2))
	}

	seen := make(map[string]bool, seeded)
	for _, b := range append(append([]*model.Blueprint{}, page1...), page2...) {
		if seen[b.ID] {
			t.Errorf("蓝图 %s 出现在多页", b.ID)
		}
		seen[b.ID] = true
	}

	// latest 排序按创建倒序,第 1 页的数据库 ID 应整体大于第 2 页
	minPage1 := mustDBID(t, page1[len(page1)-1].ID)
	maxPage2 := mustDBID(t, page2[0].ID)
	if minPage1 <= maxPage2 {
		t.Errorf("页间顺序断裂: 第1页末尾 id=%d, 第2页开头 id=%d", minPage1, maxPage2)
	}
}

func TestListTotalStableAcrossSorts(t *testing.T) {
	client := newTestClient(t)
	repo := &blueprintRepo{db: client}
	ctx := context.Background()

	for _, title := range []string{"戴森球壳", "戴森云", "物流塔"} {
		seedBlueprint(t, repo, 1, title)
	}

	sorts := []model.BlueprintSort{
		model.BlueprintSortLatest,
		model.BlueprintSortLatestUpdate,
		model.BlueprintSortTitle,
		model.BlueprintSortCopy,
		model.BlueprintSortLike,
		model.BlueprintSortCollection,
	}
	for _, sort := range sorts {
		list, total, err := repo.List(ctx, &model.ListBlueprintsOptions{
			Page:    1,
			Sort:    sort,
			Keyword: "戴森",
		})
		if err != nil {
			t.Fatalf("sort=%s 查询失败: %v", sort, err)
		}
		if total != 2 || len(list) != 2 {
			t.Errorf("sort=%s: 计数与页内容不一致 total=%d len=%d want=2", sort, total, len(list))
		}
	}
}
