// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
)

// BlueprintLikeCreate is the builder for creating a BlueprintLike entity.
type BlueprintLikeCreate struct {
	config
	mutation *BlueprintLikeMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (blc *BlueprintLikeCreate) SetBlueprintID(u uint) *BlueprintLikeCreate {
	blc.mutation.SetBlueprintID(u)
	return blc
}

// SetUserID sets the "user_id" field.
func (blc *BlueprintLikeCreate) SetUserID(u uint) *BlueprintLikeCreate {
	blc.mutation.SetUserID(u)
	return blc
}

// SetCreatedAt sets the "created_at" field.
func (blc *BlueprintLikeCreate) SetCreatedAt(t time.Time) *BlueprintLikeCreate {
	blc.mutation.SetCreatedAt(t)
	return blc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (blc *BlueprintLikeCreate) SetNillableCreatedAt(t *time.Time) *BlueprintLikeCreate {
	if t != nil {
		blc.SetCreatedAt(*t)
	}
	return blc
}

// SetID sets the "id" field.
func (blc *BlueprintLikeCreate) SetID(u uint) *BlueprintLikeCreate {
	blc.mutation.SetID(u)
	return blc
}

// Mutation returns the BlueprintLikeMutation object of the builder.
func (blc *BlueprintLikeCreate) Mutation() *BlueprintLikeMutation {
	return blc.mutation
}

// Save creates the BlueprintLike in the database.
func (blc *BlueprintLikeCreate) Save(ctx context.Context) (*BlueprintLike, error) {
	blc.defaults()
	return withHooks(ctx, blc.sqlSave, blc.mutation, blc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (blc *BlueprintLikeCreate) SaveX(ctx context.Context) *BlueprintLike {
	v, err := blc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (blc *BlueprintLikeCreate) Exec(ctx context.Context) error {
	_, err := blc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (blc *BlueprintLikeCreate) ExecX(ctx context.Context) {
	if err := blc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (blc *BlueprintLikeCreate) defaults() {
	if _, ok := blc.mutation.CreatedAt(); !ok {
		v := blueprintlike.DefaultCreatedAt()
		blc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (blc *BlueprintLikeCreate) check() error {
	if _, ok := blc.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "BlueprintLike.blueprint_id"`)}
	}
	if _, ok := blc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BlueprintLike.user_id"`)}
	}
	if _, ok := blc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlueprintLike.created_at"`)}
	}
	return nil
}

func (blc *BlueprintLikeCreate) sqlSave(ctx context.Context) (*BlueprintLike, error) {
	if err := blc.check(); err != nil {
		return nil, err
	}
	_node, _spec := blc.createSpec()
	if err := sqlgraph.CreateNode(ctx, blc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	blc.mutation.id = &_node.ID
	blc.mutation.done = true
	return _node, nil
}

func (blc *BlueprintLikeCreate) createSpec() (*BlueprintLike, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintLike{config: blc.config}
		_spec = sqlgraph.NewCreateSpec(blueprintlike.Table, sqlgraph.NewFieldSpec(blueprintlike.FieldID, field.TypeUint))
	)
	if id, ok := blc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := blc.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintlike.FieldBlueprintID, field.TypeUint, value)
		_node.BlueprintID = value
	}
	if value, ok := blc.mutation.UserID(); ok {
		_spec.SetField(blueprintlike.FieldUserID, field.TypeUint, value)
		_node.UserID = value
	}
	if value, ok := blc.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintlike.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BlueprintLikeCreateBulk is the builder for creating many BlueprintLike entities in bulk.
type BlueprintLikeCreateBulk struct {
	config
	err      error
	builders []*BlueprintLikeCreate
}

// Save creates the BlueprintLike entities in the database.
func (blcb *BlueprintLikeCreateBulk) Save(ctx context.Context) ([]*BlueprintLike, error) {
	if blcb.err != nil {
		return nil, blcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(blcb.builders))
	nodes := make([]*BlueprintLike, len(blcb.builders))
	mutators := make([]Mutator, len(blcb.builders))
	for i := range blcb.builders {
		func(i int, root context.Context) {
			builder := blcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintLikeMutation)
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
					_, err = mutators[i+1].Mutate(root, blcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, blcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, blcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (blcb *BlueprintLikeCreateBulk) SaveX(ctx context.Context) []*BlueprintLike {
	v, err := blcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (blcb *BlueprintLikeCreateBulk) Exec(ctx context.Context) error {
	_, err := blcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (blcb *BlueprintLikeCreateBulk) ExecX(ctx context.Context) {
	if err := blcb.Exec(ctx); err != nil {
		panic(err)
	}
}
