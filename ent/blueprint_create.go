// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprint"
)

// BlueprintCreate is the builder for creating a Blueprint entity.
type BlueprintCreate struct {
	config
	mutation *BlueprintMutation
	hooks    []Hook
}

// SetDeletedAt sets the "deleted_at" field.
func (bc *BlueprintCreate) SetDeletedAt(t time.Time) *BlueprintCreate {
	bc.mutation.SetDeletedAt(t)
	return bc
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableDeletedAt(t *time.Time) *BlueprintCreate {
	if t != nil {
		bc.SetDeletedAt(*t)
	}
	return bc
}

// SetOwnerID sets the "owner_id" field.
func (bc *BlueprintCreate) SetOwnerID(u uint) *BlueprintCreate {
	bc.mutation.SetOwnerID(u)
	return bc
}

// SetCreatedAt sets the "created_at" field.
func (bc *BlueprintCreate) SetCreatedAt(t time.Time) *BlueprintCreate {
	bc.mutation.SetCreatedAt(t)
	return bc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableCreatedAt(t *time.Time) *BlueprintCreate {
	if t != nil {
		bc.SetCreatedAt(*t)
	}
	return bc
}

// SetUpdatedAt sets the "updated_at" field.
func (bc *BlueprintCreate) SetUpdatedAt(t time.Time) *BlueprintCreate {
	bc.mutation.SetUpdatedAt(t)
	return bc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableUpdatedAt(t *time.Time) *BlueprintCreate {
	if t != nil {
		bc.SetUpdatedAt(*t)
	}
	return bc
}

// SetTitle sets the "title" field.
func (bc *BlueprintCreate) SetTitle(s string) *BlueprintCreate {
	bc.mutation.SetTitle(s)
	return bc
}

// SetDescription sets the "description" field.
func (bc *BlueprintCreate) SetDescription(s string) *BlueprintCreate {
	bc.mutation.SetDescription(s)
	return bc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableDescription(s *string) *BlueprintCreate {
	if s != nil {
		bc.SetDescription(*s)
	}
	return bc
}

// SetDescriptionHTML sets the "description_html" field.
func (bc *BlueprintCreate) SetDescriptionHTML(s string) *BlueprintCreate {
	bc.mutation.SetDescriptionHTML(s)
	return bc
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableDescriptionHTML(s *string) *BlueprintCreate {
	if s != nil {
		bc.SetDescriptionHTML(*s)
	}
	return bc
}

// SetPayload sets the "payload" field.
func (bc *BlueprintCreate) SetPayload(s string) *BlueprintCreate {
	bc.mutation.SetPayload(s)
	return bc
}

// SetPictures sets the "pictures" field.
func (bc *BlueprintCreate) SetPictures(s []string) *BlueprintCreate {
	bc.mutation.SetPictures(s)
	return bc
}

// SetTagsID sets the "tags_id" field.
func (bc *BlueprintCreate) SetTagsID(i []int) *BlueprintCreate {
	bc.mutation.SetTagsID(i)
	return bc
}

// SetCopyCount sets the "copy_count" field.
func (bc *BlueprintCreate) SetCopyCount(i int) *BlueprintCreate {
	bc.mutation.SetCopyCount(i)
	return bc
}

// SetNillableCopyCount sets the "copy_count" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableCopyCount(i *int) *BlueprintCreate {
	if i != nil {
		bc.SetCopyCount(*i)
	}
	return bc
}

// SetIconLayout sets the "icon_layout" field.
func (bc *BlueprintCreate) SetIconLayout(i int) *BlueprintCreate {
	bc.mutation.SetIconLayout(i)
	return bc
}

// SetNillableIconLayout sets the "icon_layout" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableIconLayout(i *int) *BlueprintCreate {
	if i != nil {
		bc.SetIconLayout(*i)
	}
	return bc
}

// SetLikeCount sets the "like_count" field.
func (bc *BlueprintCreate) SetLikeCount(i int) *BlueprintCreate {
	bc.mutation.SetLikeCount(i)
	return bc
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableLikeCount(i *int) *BlueprintCreate {
	if i != nil {
		bc.SetLikeCount(*i)
	}
	return bc
}

// SetCollectionCount sets the "collection_count" field.
func (bc *BlueprintCreate) SetCollectionCount(i int) *BlueprintCreate {
	bc.mutation.SetCollectionCount(i)
	return bc
}

// SetNillableCollectionCount sets the "collection_count" field if the given value is not nil.
func (bc *BlueprintCreate) SetNillableCollectionCount(i *int) *BlueprintCreate {
	if i != nil {
		bc.SetCollectionCount(*i)
	}
	return bc
}

// SetID sets the "id" field.
func (bc *BlueprintCreate) SetID(u uint) *BlueprintCreate {
	bc.mutation.SetID(u)
	return bc
}

// Mutation returns the BlueprintMutation object of the builder.
func (bc *BlueprintCreate) Mutation() *BlueprintMutation {
	return bc.mutation
}

// Save creates the Blueprint in the database.
func (bc *BlueprintCreate) Save(ctx context.Context) (*Blueprint, error) {
	if err := bc.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, bc.sqlSave, bc.mutation, bc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (bc *BlueprintCreate) SaveX(ctx context.Context) *Blueprint {
	v, err := bc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bc *BlueprintCreate) Exec(ctx context.Context) error {
	_, err := bc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bc *BlueprintCreate) ExecX(ctx context.Context) {
	if err := bc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (bc *BlueprintCreate) defaults() error {
	if _, ok := bc.mutation.CreatedAt(); !ok {
		if blueprint.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized blueprint.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := blueprint.DefaultCreatedAt()
		bc.mutation.SetCreatedAt(v)
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		if blueprint.DefaultUpdatedAt == nil {
			return fmt.Errorf("ent: uninitialized blueprint.DefaultUpdatedAt (forgotten import ent/runtime?)")
		}
		v := blueprint.DefaultUpdatedAt()
		bc.mutation.SetUpdatedAt(v)
	}
	if _, ok := bc.mutation.CopyCount(); !ok {
		v := blueprint.DefaultCopyCount
		bc.mutation.SetCopyCount(v)
	}
	if _, ok := bc.mutation.IconLayout(); !ok {
		v := blueprint.DefaultIconLayout
		bc.mutation.SetIconLayout(v)
	}
	if _, ok := bc.mutation.LikeCount(); !ok {
		v := blueprint.DefaultLikeCount
		bc.mutation.SetLikeCount(v)
	}
	if _, ok := bc.mutation.CollectionCount(); !ok {
		v := blueprint.DefaultCollectionCount
		bc.mutation.SetCollectionCount(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (bc *BlueprintCreate) check() error {
	if _, ok := bc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Blueprint.owner_id"`)}
	}
	if _, ok := bc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blueprint.created_at"`)}
	}
	if _, ok := bc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Blueprint.updated_at"`)}
	}
	if _, ok := bc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Blueprint.title"`)}
	}
	if v, ok := bc.mutation.Title(); ok {
		if err := blueprint.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Blueprint.title": %w`, err)}
		}
	}
	if _, ok := bc.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Blueprint.payload"`)}
	}
	if v, ok := bc.mutation.Payload(); ok {
		if err := blueprint.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "Blueprint.payload": %w`, err)}
		}
	}
	if _, ok := bc.mutation.CopyCount(); !ok {
		return &ValidationError{Name: "copy_count", err: errors.New(`ent: missing required field "Blueprint.copy_count"`)}
	}
	if v, ok := bc.mutation.CopyCount(); ok {
		if err := blueprint.CopyCountValidator(v); err != nil {
			return &ValidationError{Name: "copy_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.copy_count": %w`, err)}
		}
	}
	if _, ok := bc.mutation.IconLayout(); !ok {
		return &ValidationError{Name: "icon_layout", err: errors.New(`ent: missing required field "Blueprint.icon_layout"`)}
	}
	if _, ok := bc.mutation.LikeCount(); !ok {
		return &ValidationError{Name: "like_count", err: errors.New(`ent: missing required field "Blueprint.like_count"`)}
	}
	if v, ok := bc.mutation.LikeCount(); ok {
		if err := blueprint.LikeCountValidator(v); err != nil {
			return &ValidationError{Name: "like_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.like_count": %w`, err)}
		}
	}
	if _, ok := bc.mutation.CollectionCount(); !ok {
		return &ValidationError{Name: "collection_count", err: errors.New(`ent: missing required field "Blueprint.collection_count"`)}
	}
	if v, ok := bc.mutation.CollectionCount(); ok {
		if err := blueprint.CollectionCountValidator(v); err != nil {
			return &ValidationError{Name: "collection_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.collection_count": %w`, err)}
		}
	}
	return nil
}

func (bc *BlueprintCreate) sqlSave(ctx context.Context) (*Blueprint, error) {
	if err := bc.check(); err != nil {
		return nil, err
	}
	_node, _spec := bc.createSpec()
	if err := sqlgraph.CreateNode(ctx, bc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	bc.mutation.id = &_node.ID
	bc.mutation.done = true
	return _node, nil
}

func (bc *BlueprintCreate) createSpec() (*Blueprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Blueprint{config: bc.config}
		_spec = sqlgraph.NewCreateSpec(blueprint.Table, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUint))
	)
	if id, ok := bc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := bc.mutation.DeletedAt(); ok {
		_spec.SetField(blueprint.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := bc.mutation.OwnerID(); ok {
		_spec.SetField(blueprint.FieldOwnerID, field.TypeUint, value)
		_node.OwnerID = value
	}
	if value, ok := bc.mutation.CreatedAt(); ok {
		_spec.SetField(blueprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := bc.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := bc.mutation.Title(); ok {
		_spec.SetField(blueprint.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := bc.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := bc.mutation.DescriptionHTML(); ok {
		_spec.SetField(blueprint.FieldDescriptionHTML, field.TypeString, value)
		_node.DescriptionHTML = value
	}
	if value, ok := bc.mutation.Payload(); ok {
		_spec.SetField(blueprint.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := bc.mutation.Pictures(); ok {
		_spec.SetField(blueprint.FieldPictures, field.TypeJSON, value)
		_node.Pictures = value
	}
	if value, ok := bc.mutation.TagsID(); ok {
		_spec.SetField(blueprint.FieldTagsID, field.TypeJSON, value)
		_node.TagsID = value
	}
	if value, ok := bc.mutation.CopyCount(); ok {
		_spec.SetField(blueprint.FieldCopyCount, field.TypeInt, value)
		_node.CopyCount = value
	}
	if value, ok := bc.mutation.IconLayout(); ok {
		_spec.SetField(blueprint.FieldIconLayout, field.TypeInt, value)
		_node.IconLayout = value
	}
	if value, ok := bc.mutation.LikeCount(); ok {
		_spec.SetField(blueprint.FieldLikeCount, field.TypeInt, value)
		_node.LikeCount = value
	}
	if value, ok := bc.mutation.CollectionCount(); ok {
		_spec.SetField(blueprint.FieldCollectionCount, field.TypeInt, value)
		_node.CollectionCount = value
	}
	return _node, _spec
}

// BlueprintCreateBulk is the builder for creating many Blueprint entities in bulk.
type BlueprintCreateBulk struct {
	config
	err      error
	builders []*BlueprintCreate
}

// Save creates the Blueprint entities in the database.
func (bcb *BlueprintCreateBulk) Save(ctx context.Context) ([]*Blueprint, error) {
	if bcb.err != nil {
		return nil, bcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(bcb.builders))
	nodes := make([]*Blueprint, len(bcb.builders))
	mutators := make([]Mutator, len(bcb.builders))
	for i := range bcb.builders {
		func(i int, root context.Context) {
			builder := bcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintMutation)
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
					_, err = mutators[i+1].Mutate(root, bcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, bcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, bcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (bcb *BlueprintCreateBulk) SaveX(ctx context.Context) []*Blueprint {
	v, err := bcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (bcb *BlueprintCreateBulk) Exec(ctx context.Context) error {
	_, err := bcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcb *BlueprintCreateBulk) ExecX(ctx context.Context) {
	if err := bcb.Exec(ctx); err != nil {
		panic(err)
	}
}
