package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"
)

// maxTreeDepth 是父链遍历的硬上限，超过视为数据异常。
const maxTreeDepth = 32

// RootShortcutWriter 是收藏夹换父时需要的蓝图仓库能力子集。
type RootShortcutWriter interface {
	ResetRootShortcut(ctx context.Context, collectionID, rootID uint) error
}

// Service 封装了收藏夹的业务逻辑。
type Service struct {
	repo         repository.CollectionRepository
	shortcutRepo RootShortcutWriter
}

// NewService 是 Collection Service 的构造函数。
func NewService(repo repository.CollectionRepository, shortcutRepo RootShortcutWriter) *Service {
	return &Service{repo: repo, shortcutRepo: shortcutRepo}
}

// Tree 返回某用户收藏夹的嵌套森林及树形选择器选项。
// 可见性过滤由调用方完成：本人请求时传入全部收藏夹，他人只传公开部分。
func (s *Service) Tree(ctx context.Context, ownerID uint, includePrivate bool) (model.CollectionForest, []*model.CollectionOption, error) {
	flat, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("查询用户收藏夹失败: %w", err)
	}
	if !includePrivate {
		visible := flat[:0:0]
		for _, c := range flat {
			if c.Public {
				visible = append(visible, c)
			}
		}
		flat = visible
	}

	forest, err := BuildCollectionTree(flat)
	if err != nil {
		return nil, nil, err
	}
	return forest, FlattenForSelect(forest), nil
}

// List 执行收藏夹列表查询并装配视图模型。
// 访问控制分支（本人可见私有收藏夹）必须在构建过滤谓词之前完成，
// 由调用方通过 options.IncludePrivate 传入判定结果。
func (s *Service) List(ctx context.Context, options *model.ListCollectionsOptions) (*model.ListCollectionsResult, error) {
	if options.Page < 1 {
		options.Page = 1
	}

	collections, total, err := s.repo.List(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("查询收藏夹列表失败: %w", err)
	}

	publicIDs := make([]string, len(collections))
	for i, c := range collections {
		publicIDs[i] = c.ID
	}

	// 两个成组聚合计数相互独立，可并发执行
	var (
		wg              sync.WaitGroup
		blueprintCounts map[string]int
		likeCounts      map[string]int
		countErrs       [2]error
	)
	if len(publicIDs) > 0 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			blueprintCounts, countErrs[0] = s.repo.CountBlueprints(ctx, publicIDs)
		}()
		go func() {
			defer wg.Done()
			likeCounts, countErrs[1] = s.repo.CountLikes(ctx, publicIDs)
		}()
		wg.Wait()
		for _, err := range countErrs {
			if err != nil {
				return nil, fmt.Errorf("聚合收藏夹计数失败: %w", err)
			}
		}
	}

	items := make([]*model.CollectionListItem, len(collections))
	for i, c := range collections {
		items[i] = &model.CollectionListItem{
			Collection:       c,
			DescriptionBrief: truncateRunes(c.Description, model.DescriptionBriefLimit),
			BlueprintCount:   blueprintCounts[c.ID],
			LikeCount:        likeCounts[c.ID],
		}
	}

	return &model.ListCollectionsResult{
		List:        items,
		Total:       total,
		CurrentPage: options.Page,
		Sort:        string(options.Sort),
		Keyword:     options.Keyword,
		View:        options.View,
	}, nil
}

// Create 创建收藏夹。父收藏夹要求存在并属于同一用户。
func (s *Service) Create(ctx context.Context, ownerID uint, req *model.CreateCollectionRequest) (*model.Collection, error) {
	params := &model.CreateCollectionParams{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Public:      true,
	}
	if req.Public != nil {
		params.Public = *req.Public
	}
	if req.ParentID != nil && *req.ParentID != "" {
		parentDBID, err := s.resolveParent(ctx, ownerID, *req.ParentID, 0)
		if err != nil {
			return nil, err
		}
		params.ParentID = &parentDBID
	}
	return s.repo.Create(ctx, params)
}

// Update 更新收藏夹，换父时重算其下成员关系的根捷径字段。
func (s *Service) Update(ctx context.Context, userID uint, publicID string, req *model.UpdateCollectionRequest) (*model.Collection, error) {
	dbID, err := s.authorize(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}

	params := &model.UpdateCollectionParams{
		Title:       req.Title,
		Description: req.Description,
		Public:      req.Public,
	}
	if req.ParentID != nil {
		params.SetParent = true
		if *req.ParentID != "" {
			parentDBID, err := s.resolveParent(ctx, userID, *req.ParentID, dbID)
			if err != nil {
				return nil, err
			}
			params.ParentID = &parentDBID
		}
	}

	updated, err := s.repo.Update(ctx, dbID, params)
	if err != nil {
		return nil, err
	}

	if params.SetParent {
		newRoot, err := s.RootOf(ctx, dbID)
		if err != nil {
			return nil, err
		}
		if err := s.shortcutRepo.ResetRootShortcut(ctx, dbID, newRoot); err != nil {
			return nil, fmt.Errorf("重写根捷径失败: %w", err)
		}
	}
	return updated, nil
}

// Delete 删除收藏夹（软删除），不级联处理子收藏夹与成员关系。
func (s *Service) Delete(ctx context.Context, userID uint, publicID string) error {
	dbID, err := s.authorize(ctx, userID, publicID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, dbID)
}

// Get 按公共 ID 返回收藏夹，私有收藏夹仅所有者可见。
func (s *Service) Get(ctx context.Context, viewerID uint, publicID string) (*model.Collection, error) {
	dbID, err := decodeCollectionID(publicID)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, err
	}
	if !c.Public && c.OwnerID != viewerID {
		return nil, constant.ErrNotFound
	}
	return c, nil
}

// Like / Unlike 切换收藏夹点赞。
func (s *Service) Like(ctx context.Context, userID uint, publicID string) error {
	dbID, err := decodeCollectionID(publicID)
	if err != nil {
		return err
	}
	return s.repo.Like(ctx, dbID, userID)
}

func (s *Service) Unlike(ctx context.Context, userID uint, publicID string) error {
	dbID, err := decodeCollectionID(publicID)
	if err != nil {
		return err
	}
	return s.repo.Unlike(ctx, dbID, userID)
}

// RootOf 返回收藏夹所在树的根收藏夹 ID（顶层收藏夹即其自身）。
func (s *Service) RootOf(ctx context.Context, dbID uint) (uint, error) {
	chain, err := s.repo.ParentChainOf(ctx, dbID, maxTreeDepth)
	if err != nil {
		return 0, err
	}
	return chain[len(chain)-1], nil
}

// authorize 解码公共 ID 并校验归属，返回数据库 ID。
func (s *Service) authorize(ctx context.Context, userID uint, publicID string) (uint, error) {
	dbID, err := decodeCollectionID(publicID)
	if err != nil {
		return 0, err
	}
	owner, err := s.repo.OwnerOf(ctx, dbID)
	if err != nil {
		return 0, err
	}
	if owner != userID {
		return 0, constant.ErrForbidden
	}
	return dbID, nil
}

// resolveParent 解码并校验父收藏夹：必须存在、属于同一用户、不等于自身。
// 只做 parent != self 校验，不做深层环检测（树构建时的访问集守卫兜底）。
func (s *Service) resolveParent(ctx context.Context, ownerID uint, parentPublicID string, selfDBID uint) (uint, error) {
	parentDBID, err := decodeCollectionID(parentPublicID)
	if err != nil {
		return 0, err
	}
	if selfDBID != 0 && parentDBID == selfDBID {
		return 0, fmt.Errorf("父收藏夹不能是自身: %w", constant.ErrBadRequest)
	}
	owner, err := s.repo.OwnerOf(ctx, parentDBID)
	if err != nil {
		return 0, err
	}
	if owner != ownerID {
		return 0, constant.ErrForbidden
	}
	return parentDBID, nil
}

func decodeCollectionID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCollection {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

// truncateRunes 按 rune 截断字符串，避免把多字节字符截成半个。
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
