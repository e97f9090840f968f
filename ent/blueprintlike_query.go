// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintLikeQuery is the builder for querying BlueprintLike entities.
type BlueprintLikeQuery struct {
	config
	ctx        *QueryContext
	order      []blueprintlike.OrderOption
	inters     []Interceptor
	predicates []predicate.BlueprintLike
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlueprintLikeQuery builder.
func (blq *BlueprintLikeQuery) Where(ps ...predicate.BlueprintLike) *BlueprintLikeQuery {
	blq.predicates = append(blq.predicates, ps...)
	return blq
}

// Limit the number of records to be returned by this query.
func (blq *BlueprintLikeQuery) Limit(limit int) *BlueprintLikeQuery {
	blq.ctx.Limit = &limit
	return blq
}

// Offset to start from.
func (blq *BlueprintLikeQuery) Offset(offset int) *BlueprintLikeQuery {
	blq.ctx.Offset = &offset
	return blq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (blq *BlueprintLikeQuery) Unique(unique bool) *BlueprintLikeQuery {
	blq.ctx.Unique = &unique
	return blq
}

// Order specifies how the records should be ordered.
func (blq *BlueprintLikeQuery) Order(o ...blueprintlike.OrderOption) *BlueprintLikeQuery {
	blq.order = append(blq.order, o...)
	return blq
}

// First returns the first BlueprintLike entity from the query.
// Returns a *NotFoundError when no BlueprintLike was found.
func (blq *BlueprintLikeQuery) First(ctx context.Context) (*BlueprintLike, error) {
	nodes, err := blq.Limit(1).All(setContextOp(ctx, blq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blueprintlike.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (blq *BlueprintLikeQuery) FirstX(ctx context.Context) *BlueprintLike {
	node, err := blq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlueprintLike ID from the query.
// Returns a *NotFoundError when no BlueprintLike ID was found.
func (blq *BlueprintLikeQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = blq.Limit(1).IDs(setContextOp(ctx, blq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blueprintlike.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (blq *BlueprintLikeQuery) FirstIDX(ctx context.Context) uint {
	id, err := blq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlueprintLike entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlueprintLike entity is found.
// Returns a *NotFoundError when no BlueprintLike entities are found.
func (blq *BlueprintLikeQuery) Only(ctx context.Context) (*BlueprintLike, error) {
	nodes, err := blq.Limit(2).All(setContextOp(ctx, blq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blueprintlike.Label}
	default:
		return nil, &NotSingularError{blueprintlike.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (blq *BlueprintLikeQuery) OnlyX(ctx context.Context) *BlueprintLike {
	node, err := blq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlueprintLike ID in the query.
// Returns a *NotSingularError when more than one BlueprintLike ID is found.
// Returns a *NotFoundError when no entities are found.
func (blq *BlueprintLikeQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = blq.Limit(2).IDs(setContextOp(ctx, blq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blueprintlike.Label}
	default:
		err = &NotSingularError{blueprintlike.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (blq *BlueprintLikeQuery) OnlyIDX(ctx context.Context) uint {
	id, err := blq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlueprintLikes.
func (blq *BlueprintLikeQuery) All(ctx context.Context) ([]*BlueprintLike, error) {
	ctx = setContextOp(ctx, blq.ctx, ent.OpQueryAll)
	if err := blq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlueprintLike, *BlueprintLikeQuery]()
	return withInterceptors[[]*BlueprintLike](ctx, blq, qr, blq.inters)
}

// AllX is like All, but panics if an error occurs.
func (blq *BlueprintLikeQuery) AllX(ctx context.Context) []*BlueprintLike {
	nodes, err := blq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlueprintLike IDs.
func (blq *BlueprintLikeQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if blq.ctx.Unique == nil && blq.path != nil {
		blq.Unique(true)
	}
	ctx = setContextOp(ctx, blq.ctx, ent.OpQueryIDs)
	if err = blq.Select(blueprintlike.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (blq *BlueprintLikeQuery) IDsX(ctx context.Context) []uint {
	ids, err := blq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (blq *BlueprintLikeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, blq.ctx, ent.OpQueryCount)
	if err := blq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, blq, querierCount[*BlueprintLikeQuery](), blq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (blq *BlueprintLikeQuery) CountX(ctx context.Context) int {
	count, err := blq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (blq *BlueprintLikeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, blq.ctx, ent.OpQueryExist)
	switch _, err := blq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (blq *BlueprintLikeQuery) ExistX(ctx context.Context) bool {
	exist, err := blq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlueprintLikeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (blq *BlueprintLikeQuery) Clone() *BlueprintLikeQuery {
	if blq == nil {
		return nil
	}
	return &BlueprintLikeQuery{
		config:     blq.config,
		ctx:        blq.ctx.Clone(),
		order:      append([]blueprintlike.OrderOption{}, blq.order...),
		inters:     append([]Interceptor{}, blq.inters...),
		predicates: append([]predicate.BlueprintLike{}, blq.predicates...),
		// clone intermediate query.
		sql:       blq.sql.Clone(),
		path:      blq.path,
		modifiers: append([]func(*sql.Selector){}, blq.modifiers...),
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BlueprintID uint `json:"blueprint_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.BlueprintLike.Query().
//		GroupBy(blueprintlike.FieldBlueprintID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (blq *BlueprintLikeQuery) GroupBy(field string, fields ...string) *BlueprintLikeGroupBy {
	blq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlueprintLikeGroupBy{build: blq}
	grbuild.flds = &blq.ctx.Fields
	grbuild.label = blueprintlike.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BlueprintID uint `json:"blueprint_id,omitempty"`
//	}
//
//	client.BlueprintLike.Query().
//		Select(blueprintlike.FieldBlueprintID).
//		Scan(ctx, &v)
func (blq *BlueprintLikeQuery) Select(fields ...string) *BlueprintLikeSelect {
	blq.ctx.Fields = append(blq.ctx.Fields, fields...)
	sbuild := &BlueprintLikeSelect{BlueprintLikeQuery: blq}
	sbuild.label = blueprintlike.Label
	sbuild.flds, sbuild.scan = &blq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlueprintLikeSelect configured with the given aggregations.
func (blq *BlueprintLikeQuery) Aggregate(fns ...AggregateFunc) *BlueprintLikeSelect {
	return blq.Select().Aggregate(fns...)
}

func (blq *BlueprintLikeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range blq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, blq); err != nil {
				return err
			}
		}
	}
	for _, f := range blq.ctx.Fields {
		if !blueprintlike.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if blq.path != nil {
		prev, err := blq.path(ctx)
		if err != nil {
			return err
		}
		blq.sql = prev
	}
	return nil
}

func (blq *BlueprintLikeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlueprintLike, error) {
	var (
		nodes = []*BlueprintLike{}
		_spec = blq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlueprintLike).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlueprintLike{config: blq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(blq.modifiers) > 0 {
		_spec.Modifiers = blq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, blq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (blq *BlueprintLikeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := blq.querySpec()
	if len(blq.modifiers) > 0 {
		_spec.Modifiers = blq.modifiers
	}
	_spec.Node.Columns = blq.ctx.Fields
	if len(blq.ctx.Fields) > 0 {
		_spec.Unique = blq.ctx.Unique != nil && *blq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, blq.driver, _spec)
}

func (blq *BlueprintLikeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blueprintlike.Table, blueprintlike.Columns, sqlgraph.NewFieldSpec(blueprintlike.FieldID, field.TypeUint))
	_spec.From = blq.sql
	if unique := blq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if blq.path != nil {
		_spec.Unique = true
	}
	if fields := blq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintlike.FieldID)
		for i := range fields {
			if fields[i] != blueprintlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := blq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := blq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := blq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := blq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (blq *BlueprintLikeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(blq.driver.Dialect())
	t1 := builder.Table(blueprintlike.Table)
	columns := blq.ctx.Fields
	if len(columns) == 0 {
		columns = blueprintlike.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if blq.sql != nil {
		selector = blq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if blq.ctx.Unique != nil && *blq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range blq.modifiers {
		m(selector)
	}
	for _, p := range blq.predicates {
		p(selector)
	}
	for _, p := range blq.order {
		p(selector)
	}
	if offset := blq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := blq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (blq *BlueprintLikeQuery) Modify(modifiers ...func(s *sql.Selector)) *BlueprintLikeSelect {
	blq.modifiers = append(blq.modifiers, modifiers...)
	return blq.Select()
}

// BlueprintLikeGroupBy is the group-by builder for BlueprintLike entities.
type BlueprintLikeGroupBy struct {
	selector
	build *BlueprintLikeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (blgb *BlueprintLikeGroupBy) Aggregate(fns ...AggregateFunc) *BlueprintLikeGroupBy {
	blgb.fns = append(blgb.fns, fns...)
	return blgb
}

// Scan applies the selector query and scans the result into the given value.
func (blgb *BlueprintLikeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, blgb.build.ctx, ent.OpQueryGroupBy)
	if err := blgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintLikeQuery, *BlueprintLikeGroupBy](ctx, blgb.build, blgb, blgb.build.inters, v)
}

func (blgb *BlueprintLikeGroupBy) sqlScan(ctx context.Context, root *BlueprintLikeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(blgb.fns))
	for _, fn := range blgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*blgb.flds)+len(blgb.fns))
		for _, f := range *blgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*blgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := blgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BlueprintLikeSelect is the builder for selecting fields of BlueprintLike entities.
type BlueprintLikeSelect struct {
	*BlueprintLikeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bls *BlueprintLikeSelect) Aggregate(fns ...AggregateFunc) *BlueprintLikeSelect {
	bls.fns = append(bls.fns, fns...)
	return bls
}

// Scan applies the selector query and scans the result into the given value.
func (bls *BlueprintLikeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bls.ctx, ent.OpQuerySelect)
	if err := bls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintLikeQuery, *BlueprintLikeSelect](ctx, bls.BlueprintLikeQuery, bls, bls.inters, v)
}

func (bls *BlueprintLikeSelect) sqlScan(ctx context.Context, root *BlueprintLikeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bls.fns))
	for _, fn := range bls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (bls *BlueprintLikeSelect) Modify(modifiers ...func(s *sql.Selector)) *BlueprintLikeSelect {
	bls.modifiers = append(bls.modifiers, modifiers...)
	return bls
}
