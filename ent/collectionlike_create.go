// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
)

// CollectionLikeCreate is the builder for creating a CollectionLike entity.
type CollectionLikeCreate struct {
	config
	mutation *CollectionLikeMutation
	hooks    []Hook
}

// SetCollectionID sets the "collection_id" field.
func (clc *CollectionLikeCreate) SetCollectionID(u uint) *CollectionLikeCreate {
	clc.mutation.SetCollectionID(u)
	return clc
}

// SetUserID sets the "user_id" field.
func (clc *CollectionLikeCreate) SetUserID(u uint) *CollectionLikeCreate {
	clc.mutation.SetUserID(u)
	return clc
}

// SetCreatedAt sets the "created_at" field.
func (clc *CollectionLikeCreate) SetCreatedAt(t time.Time) *CollectionLikeCreate {
	clc.mutation.SetCreatedAt(t)
	return clc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (clc *CollectionLikeCreate) SetNillableCreatedAt(t *time.Time) *CollectionLikeCreate {
	if t != nil {
		clc.SetCreatedAt(*t)
	}
	return clc
}

// SetID sets the "id" field.
func (clc *CollectionLikeCreate) SetID(u uint) *CollectionLikeCreate {
	clc.mutation.SetID(u)
	return clc
}

// Mutation returns the CollectionLikeMutation object of the builder.
func (clc *CollectionLikeCreate) Mutation() *CollectionLikeMutation {
	return clc.mutation
}

// Save creates the CollectionLike in the database.
func (clc *CollectionLikeCreate) Save(ctx context.Context) (*CollectionLike, error) {
	clc.defaults()
	return withHooks(ctx, clc.sqlSave, clc.mutation, clc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (clc *CollectionLikeCreate) SaveX(ctx context.Context) *CollectionLike {
	v, err := clc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (clc *CollectionLikeCreate) Exec(ctx context.Context) error {
	_, err := clc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clc *CollectionLikeCreate) ExecX(ctx context.Context) {
	if err := clc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (clc *CollectionLikeCreate) defaults() {
	if _, ok := clc.mutation.CreatedAt(); !ok {
		v := collectionlike.DefaultCreatedAt()
		clc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (clc *CollectionLikeCreate) check() error {
	if _, ok := clc.mutation.CollectionID(); !ok {
		return &ValidationError{Name: "collection_id", err: errors.New(`ent: missing required field "CollectionLike.collection_id"`)}
	}
	if _, ok := clc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CollectionLike.user_id"`)}
	}
	if _, ok := clc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CollectionLike.created_at"`)}
	}
	return nil
}

func (clc *CollectionLikeCreate) sqlSave(ctx context.Context) (*CollectionLike, error) {
	if err := clc.check(); err != nil {
		return nil, err
	}
	_node, _spec := clc.createSpec()
	if err := sqlgraph.CreateNode(ctx, clc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	clc.mutation.id = &_node.ID
	clc.mutation.done = true
	return _node, nil
}

func (clc *CollectionLikeCreate) createSpec() (*CollectionLike, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectionLike{config: clc.config}
		_spec = sqlgraph.NewCreateSpec(collectionlike.Table, sqlgraph.NewFieldSpec(collectionlike.FieldID, field.TypeUint))
	)
	if id, ok := clc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := clc.mutation.CollectionID(); ok {
		_spec.SetField(collectionlike.FieldCollectionID, field.TypeUint, value)
		_node.CollectionID = value
	}
	if value, ok := clc.mutation.UserID(); ok {
		_spec.SetField(collectionlike.FieldUserID, field.TypeUint, value)
		_node.UserID = value
	}
	if value, ok := clc.mutation.CreatedAt(); ok {
		_spec.SetField(collectionlike.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CollectionLikeCreateBulk is the builder for creating many CollectionLike entities in bulk.
type CollectionLikeCreateBulk struct {
	config
	err      error
	builders []*CollectionLikeCreate
}

// Save creates the CollectionLike entities in the database.
func (clcb *CollectionLikeCreateBulk) Save(ctx context.Context) ([]*CollectionLike, error) {
	if clcb.err != nil {
		return nil, clcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(clcb.builders))
	nodes := make([]*CollectionLike, len(clcb.builders))
	mutators := make([]Mutator, len(clcb.builders))
	for i := range clcb.builders {
		func(i int, root context.Context) {
			builder := clcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectionLikeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, clcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, clcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, clcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (clcb *CollectionLikeCreateBulk) SaveX(ctx context.Context) []*CollectionLike {
	v, err := clcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (clcb *CollectionLikeCreateBulk) Exec(ctx context.Context) error {
	_, err := clcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (clcb *CollectionLikeCreateBulk) ExecX(ctx context.Context) {
	if err := clcb.Exec(ctx); err != nil {
		panic(err)
	}
}
