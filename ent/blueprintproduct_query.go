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
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintProductQuery is the builder for querying BlueprintProduct entities.
type BlueprintProductQuery struct {
	config
	ctx        *QueryContext
	order      []blueprintproduct.OrderOption
	inters     []Interceptor
	predicates []predicate.BlueprintProduct
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlueprintProductQuery builder.
func (bpq *BlueprintProductQuery) Where(ps ...predicate.BlueprintProduct) *BlueprintProductQuery {
	bpq.predicates = append(bpq.predicates, ps...)
	return bpq
}

// Limit the number of records to be returned by this query.
func (bpq *BlueprintProductQuery) Limit(limit int) *BlueprintProductQuery {
	bpq.ctx.Limit = &limit
	return bpq
}

// Offset to start from.
func (bpq *BlueprintProductQuery) Offset(offset int) *BlueprintProductQuery {
	bpq.ctx.Offset = &offset
	return bpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (bpq *BlueprintProductQuery) Unique(unique bool) *BlueprintProductQuery {
	bpq.ctx.Unique = &unique
	return bpq
}

// Order specifies how the records should be ordered.
func (bpq *BlueprintProductQuery) Order(o ...blueprintproduct.OrderOption) *BlueprintProductQuery {
	bpq.order = append(bpq.order, o...)
	return bpq
}

// First returns the first BlueprintProduct entity from the query.
// Returns a *NotFoundError when no BlueprintProduct was found.
func (bpq *BlueprintProductQuery) First(ctx context.Context) (*BlueprintProduct, error) {
	nodes, err := bpq.Limit(1).All(setContextOp(ctx, bpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blueprintproduct.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (bpq *BlueprintProductQuery) FirstX(ctx context.Context) *BlueprintProduct {
	node, err := bpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlueprintProduct ID from the query.
// Returns a *NotFoundError when no BlueprintProduct ID was found.
func (bpq *BlueprintProductQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = bpq.Limit(1).IDs(setContextOp(ctx, bpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blueprintproduct.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (bpq *BlueprintProductQuery) FirstIDX(ctx context.Context) uint {
	id, err := bpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlueprintProduct entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlueprintProduct entity is found.
// Returns a *NotFoundError when no BlueprintProduct entities are found.
func (bpq *BlueprintProductQuery) Only(ctx context.Context) (*BlueprintProduct, error) {
	nodes, err := bpq.Limit(2).All(setContextOp(ctx, bpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blueprintproduct.Label}
	default:
		return nil, &NotSingularError{blueprintproduct.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (bpq *BlueprintProductQuery) OnlyX(ctx context.Context) *BlueprintProduct {
	node, err := bpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlueprintProduct ID in the query.
// Returns a *NotSingularError when more than one BlueprintProduct ID is found.
// Returns a *NotFoundError when no entities are found.
func (bpq *BlueprintProductQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = bpq.Limit(2).IDs(setContextOp(ctx, bpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blueprintproduct.Label}
	default:
		err = &NotSingularError{blueprintproduct.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (bpq *BlueprintProductQuery) OnlyIDX(ctx context.Context) uint {
	id, err := bpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlueprintProducts.
func (bpq *BlueprintProductQuery) All(ctx context.Context) ([]*BlueprintProduct, error) {
	ctx = setContextOp(ctx, bpq.ctx, ent.OpQueryAll)
	if err := bpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlueprintProduct, *BlueprintProductQuery]()
	return withInterceptors[[]*BlueprintProduct](ctx, bpq, qr, bpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (bpq *BlueprintProductQuery) AllX(ctx context.Context) []*BlueprintProduct {
	nodes, err := bpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlueprintProduct IDs.
func (bpq *BlueprintProductQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if bpq.ctx.Unique == nil && bpq.path != nil {
		bpq.Unique(true)
	}
	ctx = setContextOp(ctx, bpq.ctx, ent.OpQueryIDs)
	if err = bpq.Select(blueprintproduct.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (bpq *BlueprintProductQuery) IDsX(ctx context.Context) []uint {
	ids, err := bpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (bpq *BlueprintProductQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, bpq.ctx, ent.OpQueryCount)
	if err := bpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, bpq, querierCount[*BlueprintProductQuery](), bpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (bpq *BlueprintProductQuery) CountX(ctx context.Context) int {
	count, err := bpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (bpq *BlueprintProductQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, bpq.ctx, ent.OpQueryExist)
	switch _, err := bpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (bpq *BlueprintProductQuery) ExistX(ctx context.Context) bool {
	exist, err := bpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlueprintProductQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (bpq *BlueprintProductQuery) Clone() *BlueprintProductQuery {
	if bpq == nil {
		return nil
	}
	return &BlueprintProductQuery{
		config:     bpq.config,
		ctx:        bpq.ctx.Clone(),
		order:      append([]blueprintproduct.OrderOption{}, bpq.order...),
		inters:     append([]Interceptor{}, bpq.inters...),
		predicates: append([]predicate.BlueprintProduct{}, bpq.predicates...),
		// clone intermediate query.
		sql:       bpq.sql.Clone(),
		path:      bpq.path,
		modifiers: append([]func(*sql.Selector){}, bpq.modifiers...),
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
//	client.BlueprintProduct.Query().
//		GroupBy(blueprintproduct.FieldBlueprintID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (bpq *BlueprintProductQuery) GroupBy(field string, fields ...string) *BlueprintProductGroupBy {
	bpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlueprintProductGroupBy{build: bpq}
	grbuild.flds = &bpq.ctx.Fields
	grbuild.label = blueprintproduct.Label
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
//	client.BlueprintProduct.Query().
//		Select(blueprintproduct.FieldBlueprintID).
//		Scan(ctx, &v)
func (bpq *BlueprintProductQuery) Select(fields ...string) *BlueprintProductSelect {
	bpq.ctx.Fields = append(bpq.ctx.Fields, fields...)
	sbuild := &BlueprintProductSelect{BlueprintProductQuery: bpq}
	sbuild.label = blueprintproduct.Label
	sbuild.flds, sbuild.scan = &bpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlueprintProductSelect configured with the given aggregations.
func (bpq *BlueprintProductQuery) Aggregate(fns ...AggregateFunc) *BlueprintProductSelect {
	return bpq.Select().Aggregate(fns...)
}

func (bpq *BlueprintProductQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range bpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, bpq); err != nil {
				return err
			}
		}
	}
	for _, f := range bpq.ctx.Fields {
		if !blueprintproduct.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if bpq.path != nil {
		prev, err := bpq.path(ctx)
		if err != nil {
			return err
		}
		bpq.sql = prev
	}
	return nil
}

func (bpq *BlueprintProductQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlueprintProduct, error) {
	var (
		nodes = []*BlueprintProduct{}
		_spec = bpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlueprintProduct).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlueprintProduct{config: bpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(bpq.modifiers) > 0 {
		_spec.Modifiers = bpq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, bpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (bpq *BlueprintProductQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := bpq.querySpec()
	if len(bpq.modifiers) > 0 {
		_spec.Modifiers = bpq.modifiers
	}
	_spec.Node.Columns = bpq.ctx.Fields
	if len(bpq.ctx.Fields) > 0 {
		_spec.Unique = bpq.ctx.Unique != nil && *bpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, bpq.driver, _spec)
}

func (bpq *BlueprintProductQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blueprintproduct.Table, blueprintproduct.Columns, sqlgraph.NewFieldSpec(blueprintproduct.FieldID, field.TypeUint))
	_spec.From = bpq.sql
	if unique := bpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if bpq.path != nil {
		_spec.Unique = true
	}
	if fields := bpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintproduct.FieldID)
		for i := range fields {
			if fields[i] != blueprintproduct.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := bpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := bpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := bpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := bpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (bpq *BlueprintProductQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(bpq.driver.Dialect())
	t1 := builder.Table(blueprintproduct.Table)
	columns := bpq.ctx.Fields
	if len(columns) == 0 {
		columns = blueprintproduct.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if bpq.sql != nil {
		selector = bpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if bpq.ctx.Unique != nil && *bpq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range bpq.modifiers {
		m(selector)
	}
	for _, p := range bpq.predicates {
		p(selector)
	}
	for _, p := range bpq.order {
		p(selector)
	}
	if offset := bpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := bpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (bpq *BlueprintProductQuery) Modify(modifiers ...func(s *sql.Selector)) *BlueprintProductSelect {
	bpq.modifiers = append(bpq.modifiers, modifiers...)
	return bpq.Select()
}

// BlueprintProductGroupBy is the group-by builder for BlueprintProduct entities.
type BlueprintProductGroupBy struct {
	selector
	build *BlueprintProductQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bpgb *BlueprintProductGroupBy) Aggregate(fns ...AggregateFunc) *BlueprintProductGroupBy {
	bpgb.fns = append(bpgb.fns, fns...)
	return bpgb
}

// Scan applies the selector query and scans the result into the given value.
func (bpgb *BlueprintProductGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bpgb.build.ctx, ent.OpQueryGroupBy)
	if err := bpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintProductQuery, *BlueprintProductGroupBy](ctx, bpgb.build, bpgb, bpgb.build.inters, v)
}

func (bpgb *BlueprintProductGroupBy) sqlScan(ctx context.Context, root *BlueprintProductQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bpgb.fns))
	for _, fn := range bpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bpgb.flds)+len(bpgb.fns))
		for _, f := range *bpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BlueprintProductSelect is the builder for selecting fields of BlueprintProduct entities.
type BlueprintProductSelect struct {
	*BlueprintProductQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bps *BlueprintProductSelect) Aggregate(fns ...AggregateFunc) *BlueprintProductSelect {
	bps.fns = append(bps.fns, fns...)
	return bps
}

// Scan applies the selector query and scans the result into the given value.
func (bps *BlueprintProductSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bps.ctx, ent.OpQuerySelect)
	if err := bps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintProductQuery, *BlueprintProductSelect](ctx, bps.BlueprintProductQuery, bps, bps.inters, v)
}

func (bps *BlueprintProductSelect) sqlScan(ctx context.Context, root *BlueprintProductQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bps.fns))
	for _, fn := range bps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (bps *BlueprintProductSelect) Modify(modifiers ...func(s *sql.Selector)) *BlueprintProductSelect {
	bps.modifiers = append(bps.modifiers, modifiers...)
	return bps
}
