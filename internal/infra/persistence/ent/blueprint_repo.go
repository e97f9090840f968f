package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/dsp2b/dsp2b/ent"
	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/predicate"
	"github.com/dsp2b/dsp2b/pkg/constant"
	"github.com/dsp2b/dsp2b/pkg/domain/model"
	"github.com/dsp2b/dsp2b/pkg/domain/repository"
	"github.com/dsp2b/dsp2b/pkg/idgen"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
)

type blueprintRepo struct {
	db *ent.Client
}

// NewBlueprintRepo 是 blueprintRepo 的构造函数。
func NewBlueprintRepo(db *ent.Client) repository.BlueprintRepository {
	return &blueprintRepo{db: db}
}

// toModel 负责将 ent.Blueprint 实体转换为 model.Blueprint 领域模型。
func (r *blueprintRepo) toModel(b *ent.Blueprint) (*model.Blueprint, error) {
	if b == nil {
		return nil, nil
	}
	publicID, err := idgen.GeneratePublicID(b.ID, idgen.EntityTypeBlueprint)
	if err != nil {
		return nil, fmt.Errorf("生成蓝图公共ID失败: dbID=%d: %w", b.ID, err)
	}
	return &model.Blueprint{
		ID:              publicID,
		OwnerID:         b.OwnerID,
		Title:           b.Title,
		Description:     b.Description,
		DescriptionHTML: b.DescriptionHTML,
		Payload:         b.Payload,
		Pictures:        b.Pictures,
		TagsID:          b.TagsID,
		CopyCount:       b.CopyCount,
		IconLayout:      b.IconLayout,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}, nil
}

func (r *blueprintRepo) toModelSlice(entities []*ent.Blueprint) ([]*model.Blueprint, error) {
	models := make([]*model.Blueprint, len(entities))
	for i, entity := range entities {
		m, err := r.toModel(entity)
		if err != nil {
			return nil, err
		}
		models[i] = m
	}
	return models, nil
}

func (r *blueprintRepo) Create(ctx context.Context, params *model.CreateBlueprintParams) (*model.Blueprint, error) {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}

	entity, err := tx.Blueprint.Create().
		SetOwnerID(params.OwnerID).
		SetTitle(params.Title).
		SetDescription(params.Description).
		SetDescriptionHTML(params.DescriptionHTML).
		SetPayload(params.Payload).
		SetPictures(params.Pictures).
		SetTagsID(params.TagsID).
		SetIconLayout(params.IconLayout).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(params.Products) > 0 {
		builders := make([]*ent.BlueprintProductCreate, len(params.Products))
		for i, p := range params.Products {
			builders[i] = tx.BlueprintProduct.Create().
				SetBlueprintID(entity.ID).
				SetItemID(p.ItemID).
				SetCount(p.Count)
		}
		if err := tx.BlueprintProduct.CreateBulk(builders...).Exec(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("写入蓝图产物失败: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *blueprintRepo) Update(ctx context.Context, id uint, params *model.UpdateBlueprintParams) (*model.Blueprint, error) {
	tx, err := r.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("开启事务失败: %w", err)
	}

	builder := tx.Blueprint.UpdateOneID(id)
	if params.Title != nil {
		builder = builder.SetTitle(*params.Title)
	}
	if params.Description != nil {
		builder = builder.SetDescription(*params.Description)
	}
	if params.DescriptionHTML != nil {
		builder = builder.SetDescriptionHTML(*params.DescriptionHTML)
	}
	if params.Payload != nil {
		builder = builder.SetPayload(*params.Payload)
	}
	if params.Pictures != nil {
		builder = builder.SetPictures(params.Pictures)
	}
	if params.TagsID != nil {
		builder = builder.SetTagsID(params.TagsID)
	}
	if params.IconLayout != nil {
		builder = builder.SetIconLayout(*params.IconLayout)
	}
	entity, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if params.ReplaceProducts {
		if _, err := tx.BlueprintProduct.Delete().
			Where(blueprintproduct.BlueprintIDEQ(id)).
			Exec(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("清除旧产物失败: %w", err)
		}
		if len(params.Products) > 0 {
			builders := make([]*ent.BlueprintProductCreate, len(params.Products))
			for i, p := range params.Products {
				builders[i] = tx.BlueprintProduct.Create().
					SetBlueprintID(id).
					SetItemID(p.ItemID).
					SetCount(p.Count)
			}
			if err := tx.BlueprintProduct.CreateBulk(builders...).Exec(ctx); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("写入蓝图产物失败: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.toModel(entity)
}

func (r *blueprintRepo) Delete(ctx context.Context, id uint) error {
	return r.db.Blueprint.DeleteOneID(id).Exec(ctx)
}

func (r *blueprintRepo) FindByID(ctx context.Context, id uint) (*model.Blueprint, error) {
	entity, err := r.db.Blueprint.Query().
		Where(blueprint.ID(id), blueprint.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, err
	}
	return r.toModel(entity)
}

func (r *blueprintRepo) OwnerOf(ctx context.Context, id uint) (uint, error) {
	entity, err := r.db.Blueprint.Query().
		Where(blueprint.ID(id), blueprint.DeletedAtIsNil()).
		Select(blueprint.FieldOwnerID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, constant.ErrNotFound
		}
		return 0, err
	}
	return entity.OwnerID, nil
}

func (r *blueprintRepo) IncrementCopyCount(ctx context.Context, id uint) error {
	return r.db.Blueprint.UpdateOneID(id).AddCopyCount(1).Exec(ctx)
}

// buildPredicates 构造列表查询的过滤谓词。
// 计数查询与分页查询共用同一结果，避免 total 与页内容漂移。
func (r *blueprintRepo) buildPredicates(ctx context.Context, options *model.ListBlueprintsOptions) ([]predicate.Blueprint, error) {
	predicates := []predicate.Blueprint{blueprint.DeletedAtIsNil()}

	if options.Keyword != "" {
		predicates = append(predicates, blueprint.TitleContains(options.Keyword))
	}
	if options.OwnerID > 0 {
		predicates = append(predicates, blueprint.OwnerIDEQ(options.OwnerID))
	}
	for _, tagID := range options.TagIDs {
		id := tagID
		predicates = append(predicates, predicate.Blueprint(func(s *sql.Selector) {
			s.Where(sqljson.ValueContains(blueprint.FieldTagsID, id))
		}))
	}
	if options.CollectionID > 0 {
		// 成员关系：直属模式只匹配 collection_id；
		// 根捷径模式额外匹配 root_collection_id，覆盖嵌套收藏夹的后代成员
		memberQuery := r.db.BlueprintCollection.Query()
		if options.IncludeDescendants {
			memberQuery = memberQuery.Where(
				blueprintcollection.Or(
					blueprintcollection.CollectionIDEQ(options.CollectionID),
					blueprintcollection.RootCollectionIDEQ(options.CollectionID),
				),
			)
		} else {
			memberQuery = memberQuery.Where(
				blueprintcollection.CollectionIDEQ(options.CollectionID),
			)
		}
		members, err := memberQuery.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("查询收藏夹成员失败: %w", err)
		}
		blueprintIDs := make([]uint, len(members))
		for i, m := range members {
			blueprintIDs[i] = m.BlueprintID
		}
		predicates = append(predicates, blueprint.IDIn(blueprintIDs...))
	}
	return predicates, nil
}

// List 执行蓝图列表查询，计数查询与分页查询共享同一套过滤谓词。
// 所有排序均附带 id 作为次级排序键，保证分页稳定。
func (r *blueprintRepo) List(ctx context.Context, options *model.ListBlueprintsOptions) ([]*model.Blueprint, int, error) {
	if options.Sort == model.BlueprintSortProduct && len(options.TagIDs) == 0 {
		return nil, 0, constant.ErrProductSortNoTag
	}

	predicates, err := r.buildPredicates(ctx, options)
	if err != nil {
		return nil, 0, err
	}

	baseQuery := r.db.Blueprint.Query().Where(predicates...)

	total, err := baseQuery.Clone().Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	pageQuery := baseQuery.Clone()
	switch options.Sort {
	case model.BlueprintSortLatestUpdate:
		pageQuery = pageQuery.Order(
			ent.Desc(blueprint.FieldUpdatedAt),
			ent.Desc(blueprint.FieldID),
		)
	case model.BlueprintSortTitle:
		pageQuery = pageQuery.Order(
			ent.Asc(blueprint.FieldTitle),
			ent.Asc(blueprint.FieldID),
		)
	case model.BlueprintSortCopy:
		pageQuery = pageQuery.Order(
			ent.Desc(blueprint.FieldCopyCount),
			ent.Desc(blueprint.FieldID),
		)
	case model.BlueprintSortLike:
		pageQuery.Modify(aggregateOrder(blueprintlike.Table, blueprintlike.FieldBlueprintID))
	case model.BlueprintSortCollection:
		pageQuery.Modify(aggregateOrder(blueprintcollection.Table, blueprintcollection.FieldBlueprintID))
	case model.BlueprintSortProduct:
		// 锚定标签取标签列表首元素，按该物品产量倒序。
		// 左联接保证行集与过滤谓词一致，无该产物的蓝图按 0 参与排序
		anchor := options.TagIDs[0]
		pageQuery.Modify(func(s *sql.Selector) {
			t := sql.Select(
				blueprintproduct.FieldBlueprintID,
				sql.As(blueprintproduct.FieldCount, "cnt"),
			).
				From(sql.Table(blueprintproduct.Table)).
				Where(sql.EQ(blueprintproduct.FieldItemID, anchor)).
				As("anchor_product")
			s.LeftJoin(t).On(s.C(blueprint.FieldID), t.C(blueprintproduct.FieldBlueprintID))
			s.OrderBy(
				sql.Desc(fmt.Sprintf("COALESCE(%s, 0)", t.C("cnt"))),
				sql.Desc(s.C(blueprint.FieldID)),
			)
		})
	default:
		pageQuery = pageQuery.Order(
			ent.Desc(blueprint.FieldCreatedAt),
			ent.Desc(blueprint.FieldID),
		)
	}

	if options.Page > 0 {
		pageSize := model.PageSizeBlueprints
		pageQuery = pageQuery.
			Offset((options.Page - 1) * pageSize).
			Limit(pageSize)
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

// aggregateOrder 构造"关联行数倒序"的排序修饰器：对关联表做分组计数后左联接，
// 无关联记录的行按 0 参与排序。
func aggregateOrder(table, fkColumn string) func(s *sql.Selector) {
	return func(s *sql.Selector) {
		t := sql.Select(
			sql.As(sql.Count("*"), "cnt"),
			fkColumn,
		).
			From(sql.Table(table)).
			GroupBy(fkColumn).
			As("agg")
		s.LeftJoin(t).On(s.C(blueprint.FieldID), t.C(fkColumn))
		s.OrderBy(
			sql.Desc(fmt.Sprintf("COALESCE(%s, 0)", t.C("cnt"))),
			sql.Desc(s.C(blueprint.FieldID)),
		)
	}
}

// groupCount 对给定公共 ID 集做一次 GROUP BY 聚合计数，返回以公共 ID 为键的映射。
func (r *blueprintRepo) groupCount(ctx context.Context, publicIDs []string, scan func(ctx context.Context, ids []uint) (map[uint]int, error)) (map[string]int, error) {
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

func (r *blueprintRepo) CountLikes(ctx context.Context, publicIDs []string) (map[string]int, error) {
	return r.groupCount(ctx, publicIDs, func(ctx context.Context, ids []uint) (map[uint]int, error) {
		var rows []struct {
			BlueprintID uint `json:"blueprint_id"`
			Count       int  `json:"count"`
		}
		err := r.db.BlueprintLike.Query().
			Where(blueprintlike.BlueprintIDIn(ids...)).
			GroupBy(blueprintlike.FieldBlueprintID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("聚合蓝图点赞计数失败: %w", err)
		}
		result := make(map[uint]int, len(rows))
		for _, row := range rows {
			result[row.BlueprintID] = row.Count
		}
		return result, nil
	})
}

func (r *blueprintRepo) CountCollections(ctx context.Context, publicIDs []string) (map[string]int, error) {
	return r.groupCount(ctx, publicIDs, func(ctx context.Context, ids []uint) (map[uint]int, error) {
		var rows []struct {
			BlueprintID uint `json:"blueprint_id"`
			Count       int  `json:"count"`
		}
		err := r.db.BlueprintCollection.Query().
			Where(blueprintcollection.BlueprintIDIn(ids...)).
			GroupBy(blueprintcollection.FieldBlueprintID).
			Aggregate(ent.Count()).
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("聚合蓝图收藏计数失败: %w", err)
		}
		result := make(map[uint]int, len(rows))
		for _, row := range rows {
			result[row.BlueprintID] = row.Count
		}
		return result, nil
	})
}

// TopProducts 返回每个蓝图按产量倒序的前 limit 条产物行。
// 一页最多几十个蓝图，在内存中截断比窗口函数更简单且可移植。
func (r *blueprintRepo) TopProducts(ctx context.Context, publicIDs []string, limit int) (map[string][]*model.BlueprintProduct, error) {
	dbIDs, err := idgen.DecodePublicIDBatch(publicIDs)
	if err != nil {
		return nil, err
	}
	publicByDBID := make(map[uint]string, len(publicIDs))
	for i, publicID := range publicIDs {
		publicByDBID[dbIDs[i]] = publicID
	}

	rows, err := r.db.BlueprintProduct.Query().
		Where(blueprintproduct.BlueprintIDIn(dbIDs...)).
		Order(ent.Desc(blueprintproduct.FieldCount)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询蓝图产物失败: %w", err)
	}

	result := make(map[string][]*model.BlueprintProduct, len(publicIDs))
	for _, row := range rows {
		publicID, ok := publicByDBID[row.BlueprintID]
		if !ok {
			continue
		}
		if len(result[publicID]) >= limit {
			continue
		}
		result[publicID] = append(result[publicID], &model.BlueprintProduct{
			ItemID: row.ItemID,
			Count:  row.Count,
		})
	}
	return result, nil
}

func (r *blueprintRepo) Like(ctx context.Context, blueprintID, userID uint) error {
	err := r.db.BlueprintLike.Create().
		SetBlueprintID(blueprintID).
		SetUserID(userID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return err
	}
	// 重复点赞因唯一索引冲突而被忽略，保持幂等
	return nil
}

func (r *blueprintRepo) Unlike(ctx context.Context, blueprintID, userID uint) error {
	_, err := r.db.BlueprintLike.Delete().
		Where(
			blueprintlike.BlueprintIDEQ(blueprintID),
			blueprintlike.UserIDEQ(userID),
		).
		Exec(ctx)
	return err
}

func (r *blueprintRepo) AddToCollection(ctx context.Context, blueprintID, collectionID, rootCollectionID uint) error {
	err := r.db.BlueprintCollection.Create().
		SetBlueprintID(blueprintID).
		SetCollectionID(collectionID).
		SetRootCollectionID(rootCollectionID).
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return err
	}
	return nil
}

func (r *blueprintRepo) RemoveFromCollection(ctx context.Context, blueprintID, collectionID uint) error {
	_, err := r.db.BlueprintCollection.Delete().
		Where(
			blueprintcollection.BlueprintIDEQ(blueprintID),
			blueprintcollection.CollectionIDEQ(collectionID),
		).
		Exec(ctx)
	return err
}

func (r *blueprintRepo) ResetRootShortcut(ctx context.Context, collectionID, newRoot uint) error {
	_, err := r.db.BlueprintCollection.Update().
		Where(blueprintcollection.CollectionIDEQ(collectionID)).
		SetRootCollectionID(newRoot).
		Save(ctx)
	return err
}

// RefreshCounters 从点赞表与成员关系表重算蓝图上的冗余计数列。
// 由定时任务调用；逐行更新对几千量级的蓝图表足够。
func (r *blueprintRepo) RefreshCounters(ctx context.Context) error {
	var likeRows []struct {
		BlueprintID uint `json:"blueprint_id"`
		Count       int  `json:"count"`
	}
	if err := r.db.BlueprintLike.Query().
		GroupBy(blueprintlike.FieldBlueprintID).
		Aggregate(ent.Count()).
		Scan(ctx, &likeRows); err != nil {
		return fmt.Errorf("聚合点赞计数失败: %w", err)
	}

	var collectionRows []struct {
		BlueprintID uint `json:"blueprint_id"`
		Count       int  `json:"count"`
	}
	if err := r.db.BlueprintCollection.Query().
		GroupBy(blueprintcollection.FieldBlueprintID).
		Aggregate(ent.Count()).
		Scan(ctx, &collectionRows); err != nil {
		return fmt.Errorf("聚合收藏计数失败: %w", err)
	}

	likeCounts := make(map[uint]int, len(likeRows))
	for _, row := range likeRows {
		likeCounts[row.BlueprintID] = row.Count
	}
	collectionCounts := make(map[uint]int, len(collectionRows))
	for _, row := range collectionRows {
		collectionCounts[row.BlueprintID] = row.Count
	}

	ids, err := r.db.Blueprint.Query().
		Where(blueprint.DeletedAtIsNil()).
		IDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		err := r.db.Blueprint.UpdateOneID(id).
			SetLikeCount(likeCounts[id]).
			SetCollectionCount(collectionCounts[id]).
			Exec(ctx)
		if err != nil {
			log.Printf("[计数刷新] 更新蓝图 %d 计数失败: %v", id, err)
		}
	}
	return nil
}
