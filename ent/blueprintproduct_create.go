// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
)

// BlueprintProductCreate is the builder for creating a BlueprintProduct entity.
type BlueprintProductCreate struct {
	config
	mutation *BlueprintProductMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (bpc *BlueprintProductCreate) SetBlueprintID(u uint) *BlueprintProductCreate {
	bpc.mutation.SetBlueprintID(u)
	return bpc
}

// SetItemID sets the "item_id" field.
func (bpc *BlueprintProductCreate) SetItemID(i int) *BlueprintProductCreate {
	bpc.mutation.SetItemID(i)
	return bpc
}

// SetCount sets the "count" field.
func (bpc *BlueprintProductCreate) SetCount(i int) *BlueprintProductCreate {
	bpc.mutation.SetCount(i)
	return bpc
}

// SetID sets the "id" field.
func (bpc *BlueprintProductCreate) SetID(u uint) *BlueprintProductCreate {
	bpc.mutation.SetID(u)
	return bpc
}

// Mutation returns the BlueprintProductMutation object of the builder.
func (bpc *BlueprintProductCreate) Mutation() *BlueprintProductMutation {
	return bpc.mutation
}

// Save creates the BlueprintProduct in the database.
func (bpc *BlueprintProductCreate) Save(ctx context.Context) (*BlueprintProduct, error) {
	return withHooks(ctx, bpc.sqlSave, bpc.mutation, bpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bpc *BlueprintProductCreate) SaveX(ctx context.Context) *BlueprintProduct {
	v, err := bpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bpc *BlueprintProductCreate) Exec(ctx context.Context) error {
	_, err := bpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpc *BlueprintProductCreate) ExecX(ctx context.Context) {
	if err := bpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bpc *BlueprintProductCreate) check() error {
	if _, ok := bpc.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "BlueprintProduct.blueprint_id"`)}
	}
	if _, ok := bpc.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "BlueprintProduct.item_id"`)}
	}
	if _, ok := bpc.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "BlueprintProduct.count"`)}
	}
	return nil
}

func (bpc *BlueprintProductCreate) sqlSave(ctx context.Context) (*BlueprintProduct, error) {
	if err := bpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	bpc.mutation.id = &_node.ID
	bpc.mutation.done = true
	return _node, nil
}

func (bpc *BlueprintProductCreate) createSpec() (*BlueprintProduct, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintProduct{config: bpc.config}
		_spec = sqlgraph.NewCreateSpec(blueprintproduct.Table, sqlgraph.NewFieldSpec(blueprintproduct.FieldID, field.TypeUint))
	)
	if id, ok := bpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bpc.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintproduct.FieldBlueprintID, field.TypeUint, value)
		_node.BlueprintID = value
	}
	if value, ok := bpc.mutation.ItemID(); ok {
		_spec.SetField(blueprintproduct.FieldItemID, field.TypeInt, value)
		_node.ItemID = value
	}
	if value, ok := bpc.mutation.Count(); ok {
		_spec.SetField(blueprintproduct.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// BlueprintProductCreateBulk is the builder for creating many BlueprintProduct entities in bulk.
type BlueprintProductCreateBulk struct {
	config
	err      error
	builders []*BlueprintProductCreate
}

// Save creates the BlueprintProduct entities in the database.
func (bpcb *BlueprintProductCreateBulk) Save(ctx context.Context) ([]*BlueprintProduct, error) {
	if bpcb.err != nil {
		return nil, bpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bpcb.builders))
	nodes := make([]*BlueprintProduct, len(bpcb.builders))
	mutators := make([]Mutator, len(bpcb.builders))
	for i := range bpcb.builders {
		func(i int, root context.Context) {
			builder := bpcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintProductMutation)
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
					_, err = mutators[i+1].Mutate(root, bpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bpcb *BlueprintProductCreateBulk) SaveX(ctx context.Context) []*BlueprintProduct {
	v, err := bpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bpcb *BlueprintProductCreateBulk) Exec(ctx context.Context) error {
	_, err := bpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bpcb *BlueprintProductCreateBulk) ExecX(ctx context.Context) {
	if err := bpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
