// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintCollectionDelete is the builder for deleting a BlueprintCollection entity.
type BlueprintCollectionDelete struct {
	config
	hooks    []Hook
	mutation *BlueprintCollectionMutation
}

// Where appends a list predicates to the BlueprintCollectionDelete builder.
func (bcd *BlueprintCollectionDelete) Where(ps ...predicate.BlueprintCollection) *BlueprintCollectionDelete {
	bcd.mutation.Where(ps...)
	return bcd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bcd *BlueprintCollectionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bcd.sqlExec, bcd.mutation, bcd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bcd *BlueprintCollectionDelete) ExecX(ctx context.Context) int {
	n, err := bcd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bcd *BlueprintCollectionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blueprintcollection.Table, sqlgraph.NewFieldSpec(blueprintcollection.FieldID, field.TypeUint))
	if ps := bcd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bcd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bcd.mutation.done = true
	return affected, err
}

// BlueprintCollectionDeleteOne is the builder for deleting a single BlueprintCollection entity.
type BlueprintCollectionDeleteOne struct {
	bcd *BlueprintCollectionDelete
}

// Where appends a list predicates to the BlueprintCollectionDelete builder.
func (bcdo *BlueprintCollectionDeleteOne) Where(ps ...predicate.BlueprintCollection) *BlueprintCollectionDeleteOne {
	bcdo.bcd.mutation.Where(ps...)
	return bcdo
}

// Exec executes the deletion query.
func (bcdo *BlueprintCollectionDeleteOne) Exec(ctx context.Context) error {
	n, err := bcdo.bcd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blueprintcollection.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bcdo *BlueprintCollectionDeleteOne) ExecX(ctx context.Context) {
	if err := bcdo.Exec(ctx); err != nil {
		panic(err)
	}
}
