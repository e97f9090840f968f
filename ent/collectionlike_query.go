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
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// CollectionLikeQuery is the builder for querying CollectionLike entities.
type CollectionLikeQuery struct {
	config
	ctx        *QueryContext
	order      []collectionlike.OrderOption
	inters     []Interceptor
	predicates []predicate.CollectionLike
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CollectionLikeQuery builder.
func (clq *CollectionLikeQuery) Where(ps ...predicate.CollectionLike) *CollectionLikeQuery {
	clq.predicates = append(clq.predicates, ps...)
	return clq
}

// Limit the number of records to be returned by this query.
func (clq *CollectionLikeQuery) Limit(limit int) *CollectionLikeQuery {
	clq.ctx.Limit = &limit
	return clq
}

// Offset to start from.
func (clq *CollectionLikeQuery) Offset(offset int) *CollectionLikeQuery {
	clq.ctx.Offset = &offset
	return clq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (clq *CollectionLikeQuery) Unique(unique bool) *CollectionLikeQuery {
	clq.ctx.Unique = &unique
	return clq
}

// Order specifies how the records should be ordered.
func (clq *CollectionLikeQuery) Order(o ...collectionlike.OrderOption) *CollectionLikeQuery {
	clq.order = append(clq.order, o...)
	return clq
}

// First returns the first CollectionLike entity from the query.
// Returns a *NotFoundError when no CollectionLike was found.
func (clq *CollectionLikeQuery) First(ctx context.Context) (*CollectionLike, error) {
	nodes, err := clq.Limit(1).All(setContextOp(ctx, clq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{collectionlike.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (clq *CollectionLikeQuery) FirstX(ctx context.Context) *CollectionLike {
	node, err := clq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CollectionLike ID from the query.
// Returns a *NotFoundError when no CollectionLike ID was found.
func (clq *CollectionLikeQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = clq.Limit(1).IDs(setContextOp(ctx, clq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{collectionlike.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (clq *CollectionLikeQuery) FirstIDX(ctx context.Context) uint {
	id, err := clq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CollectionLike entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CollectionLike entity is found.
// Returns a *NotFoundError when no CollectionLike entities are found.
func (clq *CollectionLikeQuery) Only(ctx context.Context) (*CollectionLike, error) {
	nodes, err := clq.Limit(2).All(setContextOp(ctx, clq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{collectionlike.Label}
	default:
		return nil, &NotSingularError{collectionlike.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (clq *CollectionLikeQuery) OnlyX(ctx context.Context) *CollectionLike {
	node, err := clq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CollectionLike ID in the query.
// Returns a *NotSingularError when more than one CollectionLike ID is found.
// Returns a *NotFoundError when no entities are found.
func (clq *CollectionLikeQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = clq.Limit(2).IDs(setContextOp(ctx, clq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{collectionlike.Label}
	default:
		err = &NotSingularError{collectionlike.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (clq *CollectionLikeQuery) OnlyIDX(ctx context.Context) uint {
	id, err := clq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CollectionLikes.
func (clq *CollectionLikeQuery) All(ctx context.Context) ([]*CollectionLike, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryAll)
	if err := clq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CollectionLike, *CollectionLikeQuery]()
	return withInterceptors[[]*CollectionLike](ctx, clq, qr, clq.inters)
}

// AllX is like All, but panics if an error occurs.
func (clq *CollectionLikeQuery) AllX(ctx context.Context) []*CollectionLike {
	nodes, err := clq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CollectionLike IDs.
func (clq *CollectionLikeQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if clq.ctx.Unique == nil && clq.path != nil {
		clq.Unique(true)
	}
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryIDs)
	if err = clq.Select(collectionlike.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (clq *CollectionLikeQuery) IDsX(ctx context.Context) []uint {
	ids, err := clq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (clq *CollectionLikeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryCount)
	if err := clq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, clq, querierCount[*CollectionLikeQuery](), clq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (clq *CollectionLikeQuery) CountX(ctx context.Context) int {
	count, err := clq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (clq *CollectionLikeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, clq.ctx, ent.OpQueryExist)
	switch _, err := clq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (clq *CollectionLikeQuery) ExistX(ctx context.Context) bool {
	exist, err := clq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CollectionLikeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (clq *CollectionLikeQuery) Clone() *CollectionLikeQuery {
	if clq == nil {
		return nil
	}
	return &CollectionLikeQuery{
		config:     clq.config,
		ctx:        clq.ctx.Clone(),
		order:      append([]collectionlike.OrderOption{}, clq.order...),
		inters:     append([]Interceptor{}, clq.inters...),
		predicates: append([]predicate.CollectionLike{}, clq.predicates...),
		// clone intermediate query.
		sql:       clq.sql.Clone(),
		path:      clq.path,
		modifiers: append([]func(*sql.Selector){}, clq.modifiers...),
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CollectionID uint `json:"collection_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CollectionLike.Query().
//		GroupBy(collectionlike.FieldCollectionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (clq *CollectionLikeQuery) GroupBy(field string, fields ...string) *CollectionLikeGroupBy {
	clq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CollectionLikeGroupBy{build: clq}
	grbuild.flds = &clq.ctx.Fields
	grbuild.label = collectionlike.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CollectionID uint `json:"collection_id,omitempty"`
//	}
//
//	client.CollectionLike.Query().
//		Select(collectionlike.FieldCollectionID).
//		Scan(ctx, &v)
func (clq *CollectionLikeQuery) Select(fields ...string) *CollectionLikeSelect {
	clq.ctx.Fields = append(clq.ctx.Fields, fields...)
	sbuild := &CollectionLikeSelect{CollectionLikeQuery: clq}
	sbuild.label = collectionlike.Label
	sbuild.flds, sbuild.scan = &clq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CollectionLikeSelect configured with the given aggregations.
func (clq *CollectionLikeQuery) Aggregate(fns ...AggregateFunc) *CollectionLikeSelect {
	return clq.Select().Aggregate(fns...)
}

func (clq *CollectionLikeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range clq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, clq); err != nil {
				return err
			}
		}
	}
	for _, f := range clq.ctx.Fields {
		if !collectionlike.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if clq.path != nil {
		prev, err := clq.path(ctx)
		if err != nil {
			return err
		}
		clq.sql = prev
	}
	return nil
}

func (clq *CollectionLikeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CollectionLike, error) {
	var (
		nodes = []*CollectionLike{}
		_spec = clq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CollectionLike).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CollectionLike{config: clq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(clq.modifiers) > 0 {
		_spec.Modifiers = clq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, clq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (clq *CollectionLikeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := clq.querySpec()
	if len(clq.modifiers) > 0 {
		_spec.Modifiers = clq.modifiers
	}
	_spec.Node.Columns = clq.ctx.Fields
	if len(clq.ctx.Fields) > 0 {
		_spec.Unique = clq.ctx.Unique != nil && *clq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, clq.driver, _spec)
}

func (clq *CollectionLikeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(collectionlike.Table, collectionlike.Columns, sqlgraph.NewFieldSpec(collectionlike.FieldID, field.TypeUint))
	_spec.From = clq.sql
	if unique := clq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if clq.path != nil {
		_spec.Unique = true
	}
	if fields := clq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionlike.FieldID)
		for i := range fields {
			if fields[i] != collectionlike.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := clq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := clq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := clq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := clq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (clq *CollectionLikeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(clq.driver.Dialect())
	t1 := builder.Table(collectionlike.Table)
	columns := clq.ctx.Fields
	if len(columns) == 0 {
		columns = collectionlike.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if clq.sql != nil {
		selector = clq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if clq.ctx.Unique != nil && *clq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range clq.modifiers {
		m(selector)
	}
	for _, p := range clq.predicates {
		p(selector)
	}
	for _, p := range clq.order {
		p(selector)
	}
	if offset := clq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := clq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (clq *CollectionLikeQuery) Modify(modifiers ...func(s *sql.Selector)) *CollectionLikeSelect {
	clq.modifiers = append(clq.modifiers, modifiers...)
	return clq.Select()
}

// CollectionLikeGroupBy is the group-by builder for CollectionLike entities.
type CollectionLikeGroupBy struct {
	selector
	build *CollectionLikeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (clgb *CollectionLikeGroupBy) Aggregate(fns ...AggregateFunc) *CollectionLikeGroupBy {
	clgb.fns = append(clgb.fns, fns...)
	return clgb
}

// Scan applies the selector query and scans the result into the given value.
func (clgb *CollectionLikeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, clgb.build.ctx, ent.OpQueryGroupBy)
	if err := clgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionLikeQuery, *CollectionLikeGroupBy](ctx, clgb.build, clgb, clgb.build.inters, v)
}

func (clgb *CollectionLikeGroupBy) sqlScan(ctx context.Context, root *CollectionLikeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(clgb.fns))
	for _, fn := range clgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*clgb.flds)+len(clgb.fns))
		for _, f := range *clgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*clgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := clgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CollectionLikeSelect is the builder for selecting fields of CollectionLike entities.
type CollectionLikeSelect struct {
	*CollectionLikeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cls *CollectionLikeSelect) Aggregate(fns ...AggregateFunc) *CollectionLikeSelect {
	cls.fns = append(cls.fns, fns...)
	return cls
}

// Scan applies the selector query and scans the result into the given value.
func (cls *CollectionLikeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cls.ctx, ent.OpQuerySelect)
	if err := cls.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CollectionLikeQuery, *CollectionLikeSelect](ctx, cls.CollectionLikeQuery, cls, cls.inters, v)
}

func (cls *CollectionLikeSelect) sqlScan(ctx context.Context, root *CollectionLikeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cls.fns))
	for _, fn := range cls.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cls.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cls.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (cls *CollectionLikeSelect) Modify(modifiers ...func(s *sql.Selector)) *CollectionLikeSelect {
	cls.modifiers = append(cls.modifiers, modifiers...)
	return cls
}
