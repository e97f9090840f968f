package ent

import (
	"context"
	"fmt"

	"github.com/dsp2b/dsp2b/ent"
	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/collection"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"

	"entgo.io/ent/dialect/sql"
)

type collectionRepo struct {
	db *ent.Client
}

// NewCollectionRepo 是 collectionRepo 的构造函数。
func NewCollectionRepo(db *ent.Client) repository.CollectionRepository {
	return &collectionRepo{db: db}
}

// toModel 负责将 ent.Collection 实体转换为 model.Collection 领域模型。
func (r *collectionRepo) toModel(c *ent.Collection) (*model.Collection, error) {
	if c == nil {
		return nil, nil
	}
	publicID, err := idgen.GeneratePublicID(c.ID, idgen.EntityTypeCollection)
	if err != nil {
		return nil, fmt.Errorf("生成收藏夹公共ID失败: dbID=%d: %w", c.ID, err)
	}
	var parentID *string
	if c.ParentID != nil {
		pid, err := idgen.GeneratePublicID(*c.ParentID, idgen.EntityTypeCollection)
		if err != nil {
			return nil, fmt.Errorf("生成父收藏夹公共ID失败: dbID=%d: %w", *c.ParentID, err)
		}
		parentID = &pid
	}
	return &model.Collection{
		ID:          publicID,
		OwnerID:     c.OwnerID,
		ParentID:    parentID,
		Title:       c.Title,
		Description: c.Description,
		Public:      c.Public,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

func (r *collectionRepo) toModelSlice(entities []*ent.Collection) ([]*model.Collection, error) {
	models := make([]*model.Collection, len(entities))
	for i, entity := range entities {
		m, err := r.toModel(entity)
		if err != nil {
			return nil, err
		}
		models[i] = m
	}
	return models, nil
}

func (r *collectionRepo) Create(ctx context.Context, params *model.CreateCollectionParams) (*model.Collection, error) {
	builder := r.db.Collection.Create().
		SetOwnerID(params.OwnerID).
		SetTitle(params.Title).
		SetDescription(params.Description).
		SetPublic(params.Public)
	if params.ParentID != nil {
		builder = builder.SetParentID(*params.ParentID)
	}
	entity, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *collectionRepo) Update(ctx context.Context, id uint, params *model.UpdateCollectionParams) (*model.Collection, error) {
	builder := r.db.Collection.UpdateOneID(id)
	if params.Title != nil {
		builder = builder.SetTitle(*params.Title)
	}
	if params.Description != nil {
		builder = builder.SetDescription(*params.Description)
	}
	if params.Public != nil {
		builder = builder.SetPublic(*params.Public)
	}
	if params.SetParent {
		if params.ParentID != nil {
			builder = builder.SetParentID(*params.ParentID)
		} else {
			builder = builder.ClearParentID()
		}
	}
	entity, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *collectionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.Collection.DeleteOneID(id).Exec(ctx)
}

func (r *collectionRepo) FindByID(ctx context.Context, id uint) (*model.Collection, error) {
	entity, err := r.db.Collection.Query().
		Where(collection.ID(id), collection.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity)
}

func (r *collectionRepo) OwnerOf(ctx context.Context, id uint) (uint, error) {
	entity, err := r.db.Collection.Query().
		Where(collection.ID(id), collection.DeletedAtIsNil()).
		Select(collection.FieldOwnerID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, constant.ErrNotFound
		}
		return 0, err
	}
	return entity.OwnerID, nil
}

// ListByOwner 返回某用户的全部收藏夹（按创建顺序），供树构建器消费。
func (r *collectionRepo) ListByOwner(ctx context.Context, ownerID uint) ([]*model.Collection, error) {
	entities, err := r.db.Collection.Query().
		Where(
			collection.OwnerIDEQ(ownerID),
			collection.DeletedAtIsNil(),
		).
		Order(ent.Asc(collection.FieldID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return r.toModelSlice(entities)
}

// buildPredicates 构造列表查询的过滤谓词。
// 计数查询与分页查询共用同一结果，保证 total 与页内容一致。
func (r *collectionRepo) buildPredicates(ctx context.Context, options *model.ListCollectionsOptions) ([]predicate.Collection, error) {
	predicates := []predicate.Collection{collection.DeletedAtIsNil()}

	// 可见性判定已由服务层在构建谓词前完成
	if !options.IncludePrivate {
		predicates = append(predicates, collection.PublicEQ(true))
	}
	if options.OwnerID > 0 {
		predicates = append(predicates, collection.OwnerIDEQ(options.OwnerID))
	}
	if options.RootOnly {
		predicates = append(predicates, collection.ParentIDIsNil())
	}
	if options.Keyword != "" {
		predicates = append(predicates, collection.TitleContains(options.Keyword))
	}
	if options.BlueprintID > 0 {
		// 包含指定蓝图的收藏夹
		members, err := r.db.BlueprintCollection.Query().
			Where(blueprintcollection.BlueprintIDEQ(options.BlueprintID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("查询蓝图所属收藏夹失败: %w", err)
		}
		collectionIDs := make([]uint, len(members))
		for i, m := range members {
			collectionIDs[i] = m.CollectionID
		}
		predicates = append(predicates, collection.IDIn(collectionIDs...))
	}
	return predicates, nil
}

// List 执行收藏夹列表查询，计数查询与分页查询共享同一套过滤谓词。
func (r *collectionRepo) List(ctx context.Context, options *model.ListCollectionsOptions) ([]*model.Collection, int, error) {
	predicates, err := r.buildPredicates(ctx, options)
	if err != nil {
		return nil, 0, err
	}

	baseQuery := r.db.Collection.Query().Where(predicates...)

	total, err := baseQuery.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	pageQuery := baseQuery.Clone()
	switch options.Sort {
	case model.CollectionSortLike:
		// 点赞数倒序需要对点赞表做左联接聚合，没有点赞记录视为 0
		pageQuery.Modify(func(s *sql.Selector) {
			t := sql.Select(
				sql.As(sql.Count("*"), "cnt"),
				collectionlike.FieldCollectionID,
			).
				From(sql.Table(collectionlike.Table)).
				GroupBy(collectionlike.FieldCollectionID).
				As("likes")
			s.LeftJoin(t).On(s.C(collection.FieldID), t.C(collectionlike.FieldCollectionID))
			// COALESCE 保证无点赞记录的行按 0 参与排序，
			// PostgreSQL 在 DESC 下会把 NULL 排在最前
			s.OrderBy(
				sql.Desc(fmt.Sprintf("COALESCE(%s, 0)", t.C("cnt"))),
				sql.Desc(s.C(collection.FieldID)),
			)
		})
	default:
		pageQuery = pageQuery.Order(
			ent.Desc(collection.FieldCreatedAt),
			ent.Desc(collection.FieldID),
		)
	}

	if options.Page > 0 {
		pageQuery = pageQuery.
			Offset((options.Page - 1) * model.PageSizeCollections).
			Limit(model.PageSizeCollections)
	}

	entities, err := pageQuery.All(ctx)
	if err != nil {
		return nil, 0, err
	}
	models, err := r.toModelSlice(entities)
	if err != nil {
		return nil, 0, err
	}
	return models, total, nil
}

// groupCount 对给定公共 ID 集做一次 GROUP BY 聚合计数，返回以公共 ID 为键的映射。
func (r *collectionRepo) groupCount(ctx context.Context, publicIDs []string, scan func(ctx context.Context, ids []uint) (map[uint]int, error)) (map[string]int, error) {
	dbIDs, err := idgen.DecodePublicIDBatch(publicIDs)
	if err != nil {
		return nil, err
	}
	byDBID, err := scan(ctx, dbIDs)
	if err != nil {
		return nil, err
	}
	result := make(map[string]int, len(publicIDs))
	for i, publicID := range publicIDs {
		result[publicID] = byDBID[dbIDs[i]]
	}
	return result, nil
}

func (r *collectionRepo) CountBlueprints(ctx context.Context, publicIDs []string) (map[string]int, error) {
	return r.groupCount(ctx, publicIDs, func(ctx context.Context, ids []uint) (map[uint]int, error) {
		var rows []struct {
			CollectionID uint `json:"collection_id"`
			Count        int  `json:"count"`
		}
		// 成员关系不随蓝图软删除级联清理，计数时排除已删除蓝图，
		// 保证 blueprint_count 与列表可见的蓝图一致
		err := r.db.BlueprintCollection.Query().
			Where(
				blueprintcollection.CollectionIDIn(ids...),
				predicate.BlueprintCollection(func(s *sql.Selector) {
					bt := sql.Table(blueprint.Table)
					s.Where(sql.In(
						s.C(blueprintcollection.FieldBlueprintID),
						sql.Select(bt.C(blueprint.FieldID)).
							From(bt).
							Where(sql.IsNull(bt.C(blueprint.FieldDeletedAt))),
					))
				}),
			).
			GroupBy(blueprintcollection.FieldCollectionID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("聚合收藏夹蓝图计数失败: %w", err)
		}
		result := make(map[uint]int, len(rows))
		for _, row := range rows {
			result[row.CollectionID] = row.Count
		}
		return result, nil
	})
}

func (r *collectionRepo) CountLikes(ctx context.Context, publicIDs []string) (map[string]int, error) {
	return r.groupCount(ctx, publicIDs, func(ctx context.Context, ids []uint) (map[uint]int, error) {
		var rows []struct {
			CollectionID uint `json:"collection_id"`
			Count        int  `json:"count"`
		}
		err := r.db.CollectionLike.Query().
			Where(collectionlike.CollectionIDIn(ids...)).
			GroupBy(collectionlike.FieldCollectionID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("聚合收藏夹点赞计数失败: %w", err)
		}
		result := make(map[uint]int, len(rows))
		for _, row := range rows {
			result[row.CollectionID] = row.Count
		}
		return result, nil
	})
}

// ParentChainOf 自下而上返回某收藏夹到根的父链（含自身，根在末位）。
// 父链长超过 maxDepth 视为数据异常（可能存在环），返回错误。
func (r *collectionRepo) ParentChainOf(ctx context.Context, id uint, maxDepth int) ([]uint, error) {
	chain := make([]uint, 0, 4)
	current := id
	for depth := 0; ; depth++ {
		if depth >= maxDepth {
			return nil, fmt.Errorf("收藏夹 %d 的父链超过 %d 层: %w", id, maxDepth, constant.ErrCollectionCycle)
		}
		entity, err := r.db.Collection.Query().
			Where(collection.ID(current), collection.DeletedAtIsNil()).
			Select(collection.FieldParentID).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, constant.ErrNotFound
			}
			return nil, err
		}
		chain = append(chain, current)
		if entity.ParentID == nil {
			return chain, nil
		}
		current = *entity.ParentID
	}
}

func (r *collectionRepo) Like(ctx context.Context, collectionID, userID uint) error {
	err := r.db.CollectionLike.Create().
		SetCollectionID(collectionID).
		SetUserID(userID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return err
	}
	// 重复点赞因唯一索引冲突而被忽略，保持幂等
	return nil
}

func (r *collectionRepo) Unlike(ctx context.Context, collectionID, userID uint) error {
	_, err := r.db.CollectionLike.Delete().
		Where(
			collectionlike.CollectionIDEQ(collectionID),
			collectionlike.UserIDEQ(userID),
		).
		Exec(ctx)
	return err
}
