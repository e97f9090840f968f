// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintProductDelete is the builder for deleting a BlueprintProduct entity.
type BlueprintProductDelete struct {
	config
	hooks    []Hook
	mutation *BlueprintProductMutation
}

// Where appends a list predicates to the BlueprintProductDelete builder.
func (bpd *BlueprintProductDelete) Where(ps ...predicate.BlueprintProduct) *BlueprintProductDelete {
	bpd.mutation.Where(ps...)
	return bpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bpd *BlueprintProductDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bpd.sqlExec, bpd.mutation, bpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bpd *BlueprintProductDelete) ExecX(ctx context.Context) int {
	n, err := bpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bpd *BlueprintProductDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blueprintproduct.Table, sqlgraph.NewFieldSpec(blueprintproduct.FieldID, field.TypeUint))
	if ps := bpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bpd.mutation.done = true
	return affected, err
}

// BlueprintProductDeleteOne is the builder for deleting a single BlueprintProduct entity.
type BlueprintProductDeleteOne struct {
	bpd *BlueprintProductDelete
}

// Where appends a list predicates to the BlueprintProductDelete builder.
func (bpdo *BlueprintProductDeleteOne) Where(ps ...predicate.BlueprintProduct) *BlueprintProductDeleteOne {
	bpdo.bpd.mutation.Where(ps...)
	return bpdo
}

// Exec executes the deletion query.
func (bpdo *BlueprintProductDeleteOne) Exec(ctx context.Context) error {
	n, err := bpdo.bpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blueprintproduct.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bpdo *BlueprintProductDeleteOne) ExecX(ctx context.Context) {
	if err := bpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
