/*
 * @Description: 蓝图业务逻辑（列表装配、读写、点赞与收藏夹成员关系）
 */
package blueprint

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dsp2b/dsp2b/pkg/catalog"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"
	"github.com/dsp2b/dsp2b/pkg/service/utility"
)

const (
	// writeTimeout 限定写事务（含产物行批量写）的最长耗时。
	writeTimeout = 60 * time.Second

	// maxCollectionDepth 是收藏夹父链遍历的硬上限。
	maxCollectionDepth = 32

	// copyDedupTTL 是同一访问者对同一蓝图复制计数的去重窗口。
	copyDedupTTL = time.Hour
)

// CollectionResolver 是蓝图服务需要的收藏夹仓库能力子集。
type CollectionResolver interface {
	OwnerOf(ctx context.Context, id uint) (uint, error)
	ParentChainOf(ctx context.Context, id uint, maxDepth int) ([]uint, error)
}

// Service 封装了蓝图的业务逻辑。
type Service struct {
	repo        repository.BlueprintRepository
	collections CollectionResolver
	catalog     *catalog.Catalog
	cache       utility.CacheService
}

// NewService 是 Blueprint Service 的构造函数。
func NewService(repo repository.BlueprintRepository, collections CollectionResolver, cat *catalog.Catalog, cache utility.CacheService) *Service {
	return &Service{repo: repo, collections: collections, catalog: cat, cache: cache}
}

// List 执行蓝图列表查询并装配视图模型。
// product 排序必须携带至少一个标签，在触达仓库前快速失败。
func (s *Service) List(ctx context.Context, options *model.ListBlueprintsOptions) (*model.ListBlueprintsResult, error) {
	if options.Page < 1 {
		options.Page = 1
	}
	if options.Sort == model.BlueprintSortProduct && len(options.TagIDs) == 0 {
		return nil, constant.ErrProductSortNoTag
	}

	blueprints, total, err := s.repo.List(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("查询蓝图列表失败: %w", err)
	}

	publicIDs := make([]string, len(blueprints))
	for i, b := range blueprints {
		publicIDs[i] = b.ID
	}

	// 点赞、收藏计数和产物预览互不依赖，可并发执行
	var (
		wg               sync.WaitGroup
		likeCounts       map[string]int
		collectionCounts map[string]int
		topProducts      map[string][]*model.BlueprintProduct
		loadErrs         [3]error
	)
	tagFilterActive := len(options.TagIDs) > 0
	if len(publicIDs) > 0 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			likeCounts, loadErrs[0] = s.repo.CountLikes(ctx, publicIDs)
		}()
		go func() {
			defer wg.Done()
			collectionCounts, loadErrs[1] = s.repo.CountCollections(ctx, publicIDs)
		}()
		if tagFilterActive {
			wg.Add(1)
			go func() {
				defer wg.Done()
				topProducts, loadErrs[2] = s.repo.TopProducts(ctx, publicIDs, model.ProductPreviewLimit)
			}()
		}
		wg.Wait()
		for _, err := range loadErrs {
			if err != nil {
				return nil, fmt.Errorf("装配蓝图列表失败: %w", err)
			}
		}
	}

	items := make([]*model.BlueprintListItem, len(blueprints))
	for i, b := range blueprints {
		item := &model.BlueprintListItem{
			ID:               b.ID,
			Title:            b.Title,
			DescriptionBrief: truncateRunes(b.Description, model.DescriptionBriefLimit),
			Tags:             s.catalog.Resolve(b.TagsID),
			CopyCount:        b.CopyCount,
			LikeCount:        likeCounts[b.ID],
			CollectionCount:  collectionCounts[b.ID],
			CreatedAt:        b.CreatedAt,
			UpdatedAt:        b.UpdatedAt,
		}
		if len(b.Pictures) > 0 {
			item.Thumbnail = b.Pictures[0]
		}
		if tagFilterActive {
			item.Products = topProducts[b.ID]
			for _, p := range item.Products {
				if it, ok := s.catalog.Lookup(p.ItemID); ok {
					p.Name = it.Name
					p.IconPath = it.IconPath
				}
			}
		}
		items[i] = item
	}

	return &model.ListBlueprintsResult{
		List:        items,
		Total:       total,
		CurrentPage: options.Page,
		Sort:        string(options.Sort),
		Keyword:     options.Keyword,
		View:        options.View,
		Tags:        s.catalog.Resolve(options.TagIDs),
	}, nil
}

// Get 返回蓝图详情及其标签元数据。
func (s *Service) Get(ctx context.Context, publicID string) (*model.Blueprint, []*model.BlueprintTag, error) {
	dbID, err := decodeBlueprintID(publicID)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return nil, nil, err
	}
	return b, s.catalog.Resolve(b.TagsID), nil
}

// Create 创建蓝图：校验标签、渲染描述后在限时事务内落库。
func (s *Service) Create(ctx context.Context, ownerID uint, req *model.CreateBlueprintRequest) (*model.Blueprint, error) {
	if err := s.validateTags(req.TagsID); err != nil {
		return nil, err
	}
	html, err := renderMarkdown(req.Description)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return s.repo.Create(ctx, &model.CreateBlueprintParams{
		OwnerID:         ownerID,
		Title:           req.Title,
		Description:     req.Description,
		DescriptionHTML: html,
		Payload:         req.Payload,
		Pictures:        req.Pictures,
		TagsID:          req.TagsID,
		IconLayout:      req.IconLayout,
		Products:        req.Products,
	})
}

// Update 更新蓝图，nil 字段不修改。Products 非 nil 时整体替换产物行。
func (s *Service) Update(ctx context.Context, userID uint, publicID string, req *model.UpdateBlueprintRequest) (*model.Blueprint, error) {
	dbID, err := s.authorize(ctx, userID, publicID)
	if err != nil {
		return nil, err
	}
	if req.TagsID != nil {
		if err := s.validateTags(req.TagsID); err != nil {
			return nil, err
		}
	}

	params := &model.UpdateBlueprintParams{
		Title:      req.Title,
		Payload:    req.Payload,
		Pictures:   req.Pictures,
		TagsID:     req.TagsID,
		IconLayout: req.IconLayout,
	}
	if req.Description != nil {
		html, err := renderMarkdown(*req.Description)
		if err != nil {
			return nil, err
		}
		params.Description = req.Description
		params.DescriptionHTML = &html
	}
	if req.Products != nil {
		params.ReplaceProducts = true
		params.Products = req.Products
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return s.repo.Update(ctx, dbID, params)
}

// Delete 删除蓝图（软删除）。
func (s *Service) Delete(ctx context.Context, userID uint, publicID string) error {
	dbID, err := s.authorize(ctx, userID, publicID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, dbID)
}

// Copy 返回蓝图串并累加复制计数。
// 同一访问者在去重窗口内的重复复制不再计数；缓存不可用时
// 降级为每次都计数，复制本身不受影响。
func (s *Service) Copy(ctx context.Context, visitorKey, publicID string) (string, error) {
	dbID, err := decodeBlueprintID(publicID)
	if err != nil {
		return "", err
	}
	b, err := s.repo.FindByID(ctx, dbID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("blueprint:copy:%d:%s", dbID, visitorKey)
	_, hit, cacheErr := s.cache.Get(ctx, key)
	if cacheErr != nil {
		log.Printf("[蓝图] ⚠️ 复制去重缓存读取失败，按未命中处理: %v", cacheErr)
	}
	if !hit {
		if err := s.repo.IncrementCopyCount(ctx, dbID); err != nil {
			log.Printf("[蓝图] ⚠️ 累加复制计数失败: %v", err)
		} else if err := s.cache.Set(ctx, key, "1", copyDedupTTL); err != nil {
			log.Printf("[蓝图] ⚠️ 写入复制去重缓存失败: %v", err)
		}
	}
	return b.Payload, nil
}

// Like / Unlike 切换蓝图点赞，重复操作幂等。
func (s *Service) Like(ctx context.Context, userID uint, publicID string) error {
	dbID, err := decodeBlueprintID(publicID)
	if err != nil {
		return err
	}
	return s.repo.Like(ctx, dbID, userID)
}

func (s *Service) Unlike(ctx context.Context, userID uint, publicID string) error {
	dbID, err := decodeBlueprintID(publicID)
	if err != nil {
		return err
	}
	return s.repo.Unlike(ctx, dbID, userID)
}

// AddToCollection 把蓝图加入用户自己的收藏夹，
// 并沿父链求根收藏夹写入捷径字段。
func (s *Service) AddToCollection(ctx context.Context, userID uint, blueprintPublicID, collectionPublicID string) error {
	blueprintID, err := decodeBlueprintID(blueprintPublicID)
	if err != nil {
		return err
	}
	collectionID, err := decodeCollectionID(collectionPublicID)
	if err != nil {
		return err
	}

	owner, err := s.collections.OwnerOf(ctx, collectionID)
	if err != nil {
		return err
	}
	if owner != userID {
		return constant.ErrForbidden
	}

	chain, err := s.collections.ParentChainOf(ctx, collectionID, maxCollectionDepth)
	if err != nil {
		return fmt.Errorf("求解根收藏夹失败: %w", err)
	}
	root := chain[len(chain)-1]

	return s.repo.AddToCollection(ctx, blueprintID, collectionID, root)
}

// RemoveFromCollection 解除蓝图与收藏夹的成员关系。
func (s *Service) RemoveFromCollection(ctx context.Context, userID uint, blueprintPublicID, collectionPublicID string) error {
	blueprintID, err := decodeBlueprintID(blueprintPublicID)
	if err != nil {
		return err
	}
	collectionID, err := decodeCollectionID(collectionPublicID)
	if err != nil {
		return err
	}

	owner, err := s.collections.OwnerOf(ctx, collectionID)
	if err != nil {
		return err
	}
	if owner != userID {
		return constant.ErrForbidden
	}

	return s.repo.RemoveFromCollection(ctx, blueprintID, collectionID)
}

// validateTags 要求每个标签都能在物品目录中命中。
func (s *Service) validateTags(tagIDs []int) error {
	for _, id := range tagIDs {
		if _, ok := s.catalog.Lookup(id); !ok {
			return fmt.Errorf("标签 %d 不在物品目录中: %w", id, constant.ErrInvalidTagID)
		}
	}
	return nil
}

func (s *Service) authorize(ctx context.Context, userID uint, publicID string) (uint, error) {
	dbID, err := decodeBlueprintID(publicID)
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

func decodeBlueprintID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeBlueprint {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

func decodeCollectionID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeCollection {
		return 0, constant.ErrInvalidPublicID
	}
	return dbID, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
