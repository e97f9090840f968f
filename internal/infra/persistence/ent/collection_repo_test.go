package ent

import (
	"context"
	"errors"
	"testing"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
)

func seedCollection(t *testing.T, repo *collectionRepo, ownerID uint, title string, parentID *uint) *model.Collection {
	t.Helper()
	c, err := repo.Create(context.Background(), &model.CreateCollectionParams{
		OwnerID:  ownerID,
		Title:    title,
		ParentID: parentID,
		Public:   true,
	})
	if err != nil {
		t.Fatalf("创建收藏夹 %q 失败: %v", title, err)
	}
	return c
}

func TestCollectionListLikeSortRanksLikedFirst(t *testing.T) {
	client := newTestClient(t)
	repo := &collectionRepo{db: client}
	ctx := context.Background()

	hot := seedCollection(t, repo, 1, "两赞收藏夹", nil)
	warm := seedCollection(t, repo, 1, "一赞收藏夹", nil)
	cold := seedCollection(t, repo, 1, "零赞收藏夹", nil)

	hotID := mustDBID(t, hot.ID)
	warmID := mustDBID(t, warm.ID)
	for _, userID := range []uint{10, 11} {
		if err := repo.Like(ctx, hotID, userID); err != nil {
			t.Fatalf("点赞失败: %v", err)
		}
	}
	if err := repo.Like(ctx, warmID, 10); err != nil {
		t.Fatalf("点赞失败: %v", err)
	}

	list, total, err := repo.List(ctx, &model.ListCollectionsOptions{
		Page: 1,
		Sort: model.CollectionSortLike,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if total != 3 || len(list) != 3 {
		t.Fatalf("期望 3 条，got total=%d len=%d", total, len(list))
	}
	want := []string{hot.ID, warm.ID, cold.ID}
	for i, c := range list {
		if c.ID != want[i] {
			t.Errorf("点赞排序第 %d 位错误: got %q (%s), want %q", i, c.ID, c.Title, want[i])
		}
	}
}

func TestCountBlueprintsExcludesDeletedBlueprints(t *testing.T) {
	client := newTestClient(t)
	collections := &collectionRepo{db: client}
	blueprints := &blueprintRepo{db: client}
	ctx := context.Background()

	c := seedCollection(t, collections, 1, "收藏夹", nil)
	collectionID := mustDBID(t, c.ID)

	kept := seedBlueprint(t, blueprints, 1, "保留的蓝图")
	removed := seedBlueprint(t, blueprints, 1, "删除的蓝图")
	for _, b := range []*model.Blueprint{kept, removed} {
		if err := blueprints.AddToCollection(ctx, mustDBID(t, b.ID), collectionID, collectionID); err != nil {
			t.Fatalf("加入收藏夹失败: %v", err)
		}
	}

	if err := blueprints.Delete(ctx, mustDBID(t, removed.ID)); err != nil {
		t.Fatalf("删除蓝图失败: %v", err)
	}

	counts, err := collections.CountBlueprints(ctx, []string{c.ID})
	if err != nil {
		t.Fatalf("CountBlueprints 返回错误: %v", err)
	}
	if counts[c.ID] != 1 {
		t.Errorf("软删除蓝图不应计入: got %d, want 1", counts[c.ID])
	}
}

func TestParentChainOf(t *testing.T) {
	client := newTestClient(t)
	repo := &collectionRepo{db: client}
	ctx := context.Background()

	root := seedCollection(t, repo, 1, "根", nil)
	rootID := mustDBID(t, root.ID)
	mid := seedCollection(t, repo, 1, "中间", &rootID)
	midID := mustDBID(t, mid.ID)
	leaf := seedCollection(t, repo, 1, "叶子", &midID)
	leafID := mustDBID(t, leaf.ID)

	chain, err := repo.ParentChainOf(ctx, leafID, 32)
	if err != nil {
		t.Fatalf("ParentChainOf 返回错误: %v", err)
	}
	want := []uint{leafID, midID, rootID}
	if len(chain) != len(want) {
		t.Fatalf("父链长度错误: got %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Fatalf("父链错误: got %v, want %v", chain, want)
		}
	}

	if _, err := repo.ParentChainOf(ctx, leafID, 2); !errors.Is(err, constant.ErrCollectionCycle) {
		t.Errorf("超过深度上限应返回结构异常错误, got %v", err)
	}
}

func TestCollectionListRootOnly(t *testing.T) {
	client := newTestClient(t)
	repo := &collectionRepo{db: client}
	ctx := context.Background()

	root := seedCollection(t, repo, 1, "顶层", nil)
	rootID := mustDBID(t, root.ID)
	seedCollection(t, repo, 1, "子收藏夹", &rootID)

	list, total, err := repo.List(ctx, &model.ListCollectionsOptions{
		Page:     1,
		RootOnly: true,
	})
	if err != nil {
		t.Fatalf("List 返回错误: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].ID != root.ID {
		t.Errorf("root 过滤应只返回顶层收藏夹: total=%d list=%+v", total, list)
	}
}
