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
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintCollectionQuery is the builder for querying BlueprintCollection entities.
type BlueprintCollectionQuery struct {
	config
	ctx        *QueryContext
	order      []blueprintcollection.OrderOption
	inters     []Interceptor
	predicates []predicate.BlueprintCollection
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BlueprintCollectionQuery builder.
func (bcq *BlueprintCollectionQuery) Where(ps ...predicate.BlueprintCollection) *BlueprintCollectionQuery {
	bcq.predicates = append(bcq.predicates, ps...)
	return bcq
}

// Limit the number of records to be returned by this query.
func (bcq *BlueprintCollectionQuery) Limit(limit int) *BlueprintCollectionQuery {
	bcq.ctx.Limit = &limit
	return bcq
}

// Offset to start from.
func (bcq *BlueprintCollectionQuery) Offset(offset int) *BlueprintCollectionQuery {
	bcq.ctx.Offset = &offset
	return bcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (bcq *BlueprintCollectionQuery) Unique(unique bool) *BlueprintCollectionQuery {
	bcq.ctx.Unique = &unique
	return bcq
}

// Order specifies how the records should be ordered.
func (bcq *BlueprintCollectionQuery) Order(o ...blueprintcollection.OrderOption) *BlueprintCollectionQuery {
	bcq.order = append(bcq.order, o...)
	return bcq
}

// First returns the first BlueprintCollection entity from the query.
// Returns a *NotFoundError when no BlueprintCollection was found.
func (bcq *BlueprintCollectionQuery) First(ctx context.Context) (*BlueprintCollection, error) {
	nodes, err := bcq.Limit(1).All(setContextOp(ctx, bcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{blueprintcollection.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) FirstX(ctx context.Context) *BlueprintCollection {
	node, err := bcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first BlueprintCollection ID from the query.
// Returns a *NotFoundError when no BlueprintCollection ID was found.
func (bcq *BlueprintCollectionQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = bcq.Limit(1).IDs(setContextOp(ctx, bcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{blueprintcollection.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) FirstIDX(ctx context.Context) uint {
	id, err := bcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single BlueprintCollection entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one BlueprintCollection entity is found.
// Returns a *NotFoundError when no BlueprintCollection entities are found.
func (bcq *BlueprintCollectionQuery) Only(ctx context.Context) (*BlueprintCollection, error) {
	nodes, err := bcq.Limit(2).All(setContextOp(ctx, bcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{blueprintcollection.Label}
	default:
		return nil, &NotSingularError{blueprintcollection.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) OnlyX(ctx context.Context) *BlueprintCollection {
	node, err := bcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only BlueprintCollection ID in the query.
// Returns a *NotSingularError when more than one BlueprintCollection ID is found.
// Returns a *NotFoundError when no entities are found.
func (bcq *BlueprintCollectionQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = bcq.Limit(2).IDs(setContextOp(ctx, bcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{blueprintcollection.Label}
	default:
		err = &NotSingularError{blueprintcollection.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) OnlyIDX(ctx context.Context) uint {
	id, err := bcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of BlueprintCollections.
func (bcq *BlueprintCollectionQuery) All(ctx context.Context) ([]*BlueprintCollection, error) {
	ctx = setContextOp(ctx, bcq.ctx, ent.OpQueryAll)
	if err := bcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*BlueprintCollection, *BlueprintCollectionQuery]()
	return withInterceptors[[]*BlueprintCollection](ctx, bcq, qr, bcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) AllX(ctx context.Context) []*BlueprintCollection {
	nodes, err := bcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of BlueprintCollection IDs.
func (bcq *BlueprintCollectionQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if bcq.ctx.Unique == nil && bcq.path != nil {
		bcq.Unique(true)
	}
	ctx = setContextOp(ctx, bcq.ctx, ent.OpQueryIDs)
	if err = bcq.Select(blueprintcollection.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) IDsX(ctx context.Context) []uint {
	ids, err := bcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (bcq *BlueprintCollectionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, bcq.ctx, ent.OpQueryCount)
	if err := bcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, bcq, querierCount[*BlueprintCollectionQuery](), bcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) CountX(ctx context.Context) int {
	count, err := bcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (bcq *BlueprintCollectionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, bcq.ctx, ent.OpQueryExist)
	switch _, err := bcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (bcq *BlueprintCollectionQuery) ExistX(ctx context.Context) bool {
	exist, err := bcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BlueprintCollectionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (bcq *BlueprintCollectionQuery) Clone() *BlueprintCollectionQuery {
	if bcq == nil {
		return nil
	}
	return &BlueprintCollectionQuery{
		config:     bcq.config,
		ctx:        bcq.ctx.Clone(),
		order:      append([]blueprintcollection.OrderOption{}, bcq.order...),
		inters:     append([]Interceptor{}, bcq.inters...),
		predicates: append([]predicate.BlueprintCollection{}, bcq.predicates...),
		// clone intermediate query.
		sql:       bcq.sql.Clone(),
		path:      bcq.path,
		modifiers: append([]func(*sql.Selector){}, bcq.modifiers...),
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
//	client.BlueprintCollection.Query().
//		GroupBy(blueprintcollection.FieldBlueprintID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (bcq *BlueprintCollectionQuery) GroupBy(field string, fields ...string) *BlueprintCollectionGroupBy {
	bcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BlueprintCollectionGroupBy{build: bcq}
	grbuild.flds = &bcq.ctx.Fields
	grbuild.label = blueprintcollection.Label
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
//	client.BlueprintCollection.Query().
//		Select(blueprintcollection.FieldBlueprintID).
//		Scan(ctx, &v)
func (bcq *BlueprintCollectionQuery) Select(fields ...string) *BlueprintCollectionSelect {
	bcq.ctx.Fields = append(bcq.ctx.Fields, fields...)
	sbuild := &BlueprintCollectionSelect{BlueprintCollectionQuery: bcq}
	sbuild.label = blueprintcollection.Label
	sbuild.flds, sbuild.scan = &bcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BlueprintCollectionSelect configured with the given aggregations.
func (bcq *BlueprintCollectionQuery) Aggregate(fns ...AggregateFunc) *BlueprintCollectionSelect {
	return bcq.Select().Aggregate(fns...)
}

func (bcq *BlueprintCollectionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range bcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, bcq); err != nil {
				return err
			}
		}
	}
	for _, f := range bcq.ctx.Fields {
		if !blueprintcollection.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if bcq.path != nil {
		prev, err := bcq.path(ctx)
		if err != nil {
			return err
		}
		bcq.sql = prev
	}
	return nil
}

func (bcq *BlueprintCollectionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*BlueprintCollection, error) {
	var (
		nodes = []*BlueprintCollection{}
		_spec = bcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*BlueprintCollection).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &BlueprintCollection{config: bcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(bcq.modifiers) > 0 {
		_spec.Modifiers = bcq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, bcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (bcq *BlueprintCollectionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := bcq.querySpec()
	if len(bcq.modifiers) > 0 {
		_spec.Modifiers = bcq.modifiers
	}
	_spec.Node.Columns = bcq.ctx.Fields
	if len(bcq.ctx.Fields) > 0 {
		_spec.Unique = bcq.ctx.Unique != nil && *bcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, bcq.driver, _spec)
}

func (bcq *BlueprintCollectionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(blueprintcollection.Table, blueprintcollection.Columns, sqlgraph.NewFieldSpec(blueprintcollection.FieldID, field.TypeUint))
	_spec.From = bcq.sql
	if unique := bcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if bcq.path != nil {
		_spec.Unique = true
	}
	if fields := bcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintcollection.FieldID)
		for i := range fields {
			if fields[i] != blueprintcollection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := bcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := bcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := bcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := bcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (bcq *BlueprintCollectionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(bcq.driver.Dialect())
	t1 := builder.Table(blueprintcollection.Table)
	columns := bcq.ctx.Fields
	if len(columns) == 0 {
		columns = blueprintcollection.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if bcq.sql != nil {
		selector = bcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if bcq.ctx.Unique != nil && *bcq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range bcq.modifiers {
		m(selector)
	}
	for _, p := range bcq.predicates {
		p(selector)
	}
	for _, p := range bcq.order {
		p(selector)
	}
	if offset := bcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := bcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// Modify adds a query modifier for attaching custom logic to queries.
func (bcq *BlueprintCollectionQuery) Modify(modifiers ...func(s *sql.Selector)) *BlueprintCollectionSelect {
	bcq.modifiers = append(bcq.modifiers, modifiers...)
	return bcq.Select()
}

// BlueprintCollectionGroupBy is the group-by builder for BlueprintCollection entities.
type BlueprintCollectionGroupBy struct {
	selector
	build *BlueprintCollectionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (bcgb *BlueprintCollectionGroupBy) Aggregate(fns ...AggregateFunc) *BlueprintCollectionGroupBy {
	bcgb.fns = append(bcgb.fns, fns...)
	return bcgb
}

// Scan applies the selector query and scans the result into the given value.
func (bcgb *BlueprintCollectionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bcgb.build.ctx, ent.OpQueryGroupBy)
	if err := bcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintCollectionQuery, *BlueprintCollectionGroupBy](ctx, bcgb.build, bcgb, bcgb.build.inters, v)
}

func (bcgb *BlueprintCollectionGroupBy) sqlScan(ctx context.Context, root *BlueprintCollectionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(bcgb.fns))
	for _, fn := range bcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*bcgb.flds)+len(bcgb.fns))
		for _, f := range *bcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*bcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BlueprintCollectionSelect is the builder for selecting fields of BlueprintCollection entities.
type BlueprintCollectionSelect struct {
	*BlueprintCollectionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (bcs *BlueprintCollectionSelect) Aggregate(fns ...AggregateFunc) *BlueprintCollectionSelect {
	bcs.fns = append(bcs.fns, fns...)
	return bcs
}

// Scan applies the selector query and scans the result into the given value.
func (bcs *BlueprintCollectionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, bcs.ctx, ent.OpQuerySelect)
	if err := bcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BlueprintCollectionQuery, *BlueprintCollectionSelect](ctx, bcs.BlueprintCollectionQuery, bcs, bcs.inters, v)
}

func (bcs *BlueprintCollectionSelect) sqlScan(ctx context.Context, root *BlueprintCollectionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(bcs.fns))
	for _, fn := range bcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*bcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := bcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Modify adds a query modifier for attaching custom logic to queries.
func (bcs *BlueprintCollectionSelect) Modify(modifiers ...func(s *sql.Selector)) *BlueprintCollectionSelect {
	bcs.modifiers = append(bcs.modifiers, modifiers...)
	return bcs
}
