// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// CollectionLikeDelete is the builder for deleting a CollectionLike entity.
type CollectionLikeDelete struct {
	config
	hooks    []Hook
	mutation *CollectionLikeMutation
}

// Where appends a list predicates to the CollectionLikeDelete builder.
func (cld *CollectionLikeDelete) Where(ps ...predicate.CollectionLike) *CollectionLikeDelete {
	cld.mutation.Where(ps...)
	return cld
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cld *CollectionLikeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cld.sqlExec, cld.mutation, cld.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cld *CollectionLikeDelete) ExecX(ctx context.Context) int {
	n, err := cld.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cld *CollectionLikeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collectionlike.Table, sqlgraph.NewFieldSpec(collectionlike.FieldID, field.TypeUint))
	if ps := cld.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cld.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cld.mutation.done = true
	return affected, err
}

// CollectionLikeDeleteOne is the builder for deleting a single CollectionLike entity.
type CollectionLikeDeleteOne struct {
	cld *CollectionLikeDelete
}

// Where appends a list predicates to the CollectionLikeDelete builder.
func (cldo *CollectionLikeDeleteOne) Where(ps ...predicate.CollectionLike) *CollectionLikeDeleteOne {
	cldo.cld.mutation.Where(ps...)
	return cldo
}

// Exec executes the deletion query.
func (cldo *CollectionLikeDeleteOne) Exec(ctx context.Context) error {
	n, err := cldo.cld.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collectionlike.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cldo *CollectionLikeDeleteOne) ExecX(ctx context.Context) {
	if err := cldo.Exec(ctx); err != nil {
		panic(err)
	}
}
