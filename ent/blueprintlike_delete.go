// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintLikeDelete is the builder for deleting a BlueprintLike entity.
type BlueprintLikeDelete struct {
	config
	hooks    []Hook
	mutation *BlueprintLikeMutation
}

// Where appends a list predicates to the BlueprintLikeDelete builder.
func (bld *BlueprintLikeDelete) Where(ps ...predicate.BlueprintLike) *BlueprintLikeDelete {
	bld.mutation.Where(ps...)
	return bld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (bld *BlueprintLikeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, bld.sqlExec, bld.mutation, bld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (bld *BlueprintLikeDelete) ExecX(ctx context.Context) int {
	n, err := bld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (bld *BlueprintLikeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(blueprintlike.Table, sqlgraph.NewFieldSpec(blueprintlike.FieldID, field.TypeUint))
	if ps := bld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, bld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	bld.mutation.done = true
	return affected, err
}

// BlueprintLikeDeleteOne is the builder for deleting a single BlueprintLike entity.
type BlueprintLikeDeleteOne struct {
	bld *BlueprintLikeDelete
}

// Where appends a list predicates to the BlueprintLikeDelete builder.
func (bldo *BlueprintLikeDeleteOne) Where(ps ...predicate.BlueprintLike) *BlueprintLikeDeleteOne {
	bldo.bld.mutation.Where(ps...)
	return bldo
}

// Exec executes the deletion query.
func (bldo *BlueprintLikeDeleteOne) Exec(ctx context.Context) error {
	n, err := bldo.bld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{blueprintlike.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (bldo *BlueprintLikeDeleteOne) ExecX(ctx context.Context) {
	if err := bldo.Exec(ctx); err != nil {
		panic(err)
	}
}
