// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
)

// BlueprintCollectionCreate is the builder for creating a BlueprintCollection entity.
type BlueprintCollectionCreate struct {
	config
	mutation *BlueprintCollectionMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (bcc *BlueprintCollectionCreate) SetBlueprintID(u uint) *BlueprintCollectionCreate {
	bcc.mutation.SetBlueprintID(u)
	return bcc
}

// SetCollectionID sets the "collection_id" field.
func (bcc *BlueprintCollectionCreate) SetCollectionID(u uint) *BlueprintCollectionCreate {
	bcc.mutation.SetCollectionID(u)
	return bcc
}

// SetRootCollectionID sets the "root_collection_id" field.
func (bcc *BlueprintCollectionCreate) SetRootCollectionID(u uint) *BlueprintCollectionCreate {
	bcc.mutation.SetRootCollectionID(u)
	return bcc
}

// SetCreatedAt sets the "created_at" field.
func (bcc *BlueprintCollectionCreate) SetCreatedAt(t time.Time) *BlueprintCollectionCreate {
	bcc.mutation.SetCreatedAt(t)
	return bcc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bcc *BlueprintCollectionCreate) SetNillableCreatedAt(t *time.Time) *BlueprintCollectionCreate {
	if t != nil {
		bcc.SetCreatedAt(*t)
	}
	return bcc
}

// SetID sets the "id" field.
func (bcc *BlueprintCollectionCreate) SetID(u uint) *BlueprintCollectionCreate {
	bcc.mutation.SetID(u)
	return bcc
}

// Mutation returns the BlueprintCollectionMutation object of the builder.
func (bcc *BlueprintCollectionCreate) Mutation() *BlueprintCollectionMutation {
	return bcc.mutation
}

// Save creates the BlueprintCollection in the database.
func (bcc *BlueprintCollectionCreate) Save(ctx context.Context) (*BlueprintCollection, error) {
	bcc.defaults()
	return withHooks(ctx, bcc.sqlSave, bcc.mutation, bcc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bcc *BlueprintCollectionCreate) SaveX(ctx context.Context) *BlueprintCollection {
	v, err := bcc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcc *BlueprintCollectionCreate) Exec(ctx context.Context) error {
	_, err := bcc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcc *BlueprintCollectionCreate) ExecX(ctx context.Context) {
	if err := bcc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bcc *BlueprintCollectionCreate) defaults() {
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		v := blueprintcollection.DefaultCreatedAt()
		bcc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bcc *BlueprintCollectionCreate) check() error {
	if _, ok := bcc.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "BlueprintCollection.blueprint_id"`)}
	}
	if _, ok := bcc.mutation.CollectionID(); !ok {
		return &ValidationError{Name: "collection_id", err: errors.New(`ent: missing required field "BlueprintCollection.collection_id"`)}
	}
	if _, ok := bcc.mutation.RootCollectionID(); !ok {
		return &ValidationError{Name: "root_collection_id", err: errors.New(`ent: missing required field "BlueprintCollection.root_collection_id"`)}
	}
	if _, ok := bcc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlueprintCollection.created_at"`)}
	}
	return nil
}

func (bcc *BlueprintCollectionCreate) sqlSave(ctx context.Context) (*BlueprintCollection, error) {
	if err := bcc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bcc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bcc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	bcc.mutation.id = &_node.ID
	bcc.mutation.done = true
	return _node, nil
}

func (bcc *BlueprintCollectionCreate) createSpec() (*BlueprintCollection, *sqlgraph.CreateSpec) {
	var (
		_node = &BlueprintCollection{config: bcc.config}
		_spec = sqlgraph.NewCreateSpec(blueprintcollection.Table, sqlgraph.NewFieldSpec(blueprintcollection.FieldID, field.TypeUint))
	)
	if id, ok := bcc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bcc.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintcollection.FieldBlueprintID, field.TypeUint, value)
		_node.BlueprintID = value
	}
	if value, ok := bcc.mutation.CollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldCollectionID, field.TypeUint, value)
		_node.CollectionID = value
	}
	if value, ok := bcc.mutation.RootCollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldRootCollectionID, field.TypeUint, value)
		_node.RootCollectionID = value
	}
	if value, ok := bcc.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintcollection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BlueprintCollectionCreateBulk is the builder for creating many BlueprintCollection entities in bulk.
type BlueprintCollectionCreateBulk struct {
	config
	err      error
	builders []*BlueprintCollectionCreate
}

// Save creates the BlueprintCollection entities in the database.
func (bccb *BlueprintCollectionCreateBulk) Save(ctx context.Context) ([]*BlueprintCollection, error) {
	if bccb.err != nil {
		return nil, bccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bccb.builders))
	nodes := make([]*BlueprintCollection, len(bccb.builders))
	mutators := make([]Mutator, len(bccb.builders))
	for i := range bccb.builders {
		func(i int, root context.Context) {
			builder := bccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintCollectionMutation)
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
					_, err = mutators[i+1].Mutate(root, bccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bccb *BlueprintCollectionCreateBulk) SaveX(ctx context.Context) []*BlueprintCollection {
	v, err := bccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bccb *BlueprintCollectionCreateBulk) Exec(ctx context.Context) error {
	_, err := bccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bccb *BlueprintCollectionCreateBulk) ExecX(ctx context.Context) {
	if err := bccb.Exec(ctx); err != nil {
		panic(err)
	}
}
