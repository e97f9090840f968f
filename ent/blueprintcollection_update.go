// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintCollectionUpdate is the builder for updating BlueprintCollection entities.
type BlueprintCollectionUpdate struct {
	config
	hooks     []Hook
	mutation  *BlueprintCollectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BlueprintCollectionUpdate builder.
func (bcu *BlueprintCollectionUpdate) Where(ps ...predicate.BlueprintCollection) *BlueprintCollectionUpdate {
	bcu.mutation.Where(ps...)
	return bcu
}

// SetBlueprintID sets the "blueprint_id" field.
func (bcu *BlueprintCollectionUpdate) SetBlueprintID(u uint) *BlueprintCollectionUpdate {
	bcu.mutation.ResetBlueprintID()
	bcu.mutation.SetBlueprintID(u)
	return bcu
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (bcu *BlueprintCollectionUpdate) SetNillableBlueprintID(u *uint) *BlueprintCollectionUpdate {
	if u != nil {
		bcu.SetBlueprintID(*u)
	}
	return bcu
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (bcu *BlueprintCollectionUpdate) AddBlueprintID(u int) *BlueprintCollectionUpdate {
	bcu.mutation.AddBlueprintID(u)
	return bcu
}

// SetCollectionID sets the "collection_id" field.
func (bcu *BlueprintCollectionUpdate) SetCollectionID(u uint) *BlueprintCollectionUpdate {
	bcu.mutation.ResetCollectionID()
	bcu.mutation.SetCollectionID(u)
	return bcu
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (bcu *BlueprintCollectionUpdate) SetNillableCollectionID(u *uint) *BlueprintCollectionUpdate {
	if u != nil {
		bcu.SetCollectionID(*u)
	}
	return bcu
}

// AddCollectionID adds u to the "collection_id" field.
func (bcu *BlueprintCollectionUpdate) AddCollectionID(u int) *BlueprintCollectionUpdate {
	bcu.mutation.AddCollectionID(u)
	return bcu
}

// SetRootCollectionID sets the "root_collection_id" field.
func (bcu *BlueprintCollectionUpdate) SetRootCollectionID(u uint) *BlueprintCollectionUpdate {
	bcu.mutation.ResetRootCollectionID()
	bcu.mutation.SetRootCollectionID(u)
	return bcu
}

// SetNillableRootCollectionID sets the "root_collection_id" field if the given value is not nil.
func (bcu *BlueprintCollectionUpdate) SetNillableRootCollectionID(u *uint) *BlueprintCollectionUpdate {
	if u != nil {
		bcu.SetRootCollectionID(*u)
	}
	return bcu
}

// AddRootCollectionID adds u to the "root_collection_id" field.
func (bcu *BlueprintCollectionUpdate) AddRootCollectionID(u int) *BlueprintCollectionUpdate {
	bcu.mutation.AddRootCollectionID(u)
	return bcu
}

// SetCreatedAt sets the "created_at" field.
func (bcu *BlueprintCollectionUpdate) SetCreatedAt(t time.Time) *BlueprintCollectionUpdate {
	bcu.mutation.SetCreatedAt(t)
	return bcu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bcu *BlueprintCollectionUpdate) SetNillableCreatedAt(t *time.Time) *BlueprintCollectionUpdate {
	if t != nil {
		bcu.SetCreatedAt(*t)
	}
	return bcu
}

// Mutation returns the BlueprintCollectionMutation object of the builder.
func (bcu *BlueprintCollectionUpdate) Mutation() *BlueprintCollectionMutation {
	return bcu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bcu *BlueprintCollectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, bcu.sqlSave, bcu.mutation, bcu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcu *BlueprintCollectionUpdate) SaveX(ctx context.Context) int {
	affected, err := bcu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bcu *BlueprintCollectionUpdate) Exec(ctx context.Context) error {
	_, err := bcu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcu *BlueprintCollectionUpdate) ExecX(ctx context.Context) {
	if err := bcu.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bcu *BlueprintCollectionUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintCollectionUpdate {
	bcu.modifiers = append(bcu.modifiers, modifiers...)
	return bcu
}

func (bcu *BlueprintCollectionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintcollection.Table, blueprintcollection.Columns, sqlgraph.NewFieldSpec(blueprintcollection.FieldID, field.TypeUint))
	if ps := bcu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bcu.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintcollection.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintcollection.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.CollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.AddedCollectionID(); ok {
		_spec.AddField(blueprintcollection.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.RootCollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldRootCollectionID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.AddedRootCollectionID(); ok {
		_spec.AddField(blueprintcollection.FieldRootCollectionID, field.TypeUint, value)
	}
	if value, ok := bcu.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintcollection.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(bcu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, bcu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintcollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bcu.mutation.done = true
	return n, nil
}

// BlueprintCollectionUpdateOne is the builder for updating a single BlueprintCollection entity.
type BlueprintCollectionUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BlueprintCollectionMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetBlueprintID sets the "blueprint_id" field.
func (bcuo *BlueprintCollectionUpdateOne) SetBlueprintID(u uint) *BlueprintCollectionUpdateOne {
	bcuo.mutation.ResetBlueprintID()
	bcuo.mutation.SetBlueprintID(u)
	return bcuo
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (bcuo *BlueprintCollectionUpdateOne) SetNillableBlueprintID(u *uint) *BlueprintCollectionUpdateOne {
	if u != nil {
		bcuo.SetBlueprintID(*u)
	}
	return bcuo
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (bcuo *BlueprintCollectionUpdateOne) AddBlueprintID(u int) *BlueprintCollectionUpdateOne {
	bcuo.mutation.AddBlueprintID(u)
	return bcuo
}

// SetCollectionID sets the "collection_id" field.
func (bcuo *BlueprintCollectionUpdateOne) SetCollectionID(u uint) *BlueprintCollectionUpdateOne {
	bcuo.mutation.ResetCollectionID()
	bcuo.mutation.SetCollectionID(u)
	return bcuo
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (bcuo *BlueprintCollectionUpdateOne) SetNillableCollectionID(u *uint) *BlueprintCollectionUpdateOne {
	if u != nil {
		bcuo.SetCollectionID(*u)
	}
	return bcuo
}

// AddCollectionID adds u to the "collection_id" field.
func (bcuo *BlueprintCollectionUpdateOne) AddCollectionID(u int) *BlueprintCollectionUpdateOne {
	bcuo.mutation.AddCollectionID(u)
	return bcuo
}

// SetRootCollectionID sets the "root_collection_id" field.
func (bcuo *BlueprintCollectionUpdateOne) SetRootCollectionID(u uint) *BlueprintCollectionUpdateOne {
	bcuo.mutation.ResetRootCollectionID()
	bcuo.mutation.SetRootCollectionID(u)
	return bcuo
}

// SetNillableRootCollectionID sets the "root_collection_id" field if the given value is not nil.
func (bcuo *BlueprintCollectionUpdateOne) SetNillableRootCollectionID(u *uint) *BlueprintCollectionUpdateOne {
	if u != nil {
		bcuo.SetRootCollectionID(*u)
	}
	return bcuo
}

// AddRootCollectionID adds u to the "root_collection_id" field.
func (bcuo *BlueprintCollectionUpdateOne) AddRootCollectionID(u int) *BlueprintCollectionUpdateOne {
	bcuo.mutation.AddRootCollectionID(u)
	return bcuo
}

// SetCreatedAt sets the "created_at" field.
func (bcuo *BlueprintCollectionUpdateOne) SetCreatedAt(t time.Time) *BlueprintCollectionUpdateOne {
	bcuo.mutation.SetCreatedAt(t)
	return bcuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bcuo *BlueprintCollectionUpdateOne) SetNillableCreatedAt(t *time.Time) *BlueprintCollectionUpdateOne {
	if t != nil {
		bcuo.SetCreatedAt(*t)
	}
	return bcuo
}

// Mutation returns the BlueprintCollectionMutation object of the builder.
func (bcuo *BlueprintCollectionUpdateOne) Mutation() *BlueprintCollectionMutation {
	return bcuo.mutation
}

// Where appends a list predicates to the BlueprintCollectionUpdate builder.
func (bcuo *BlueprintCollectionUpdateOne) Where(ps ...predicate.BlueprintCollection) *BlueprintCollectionUpdateOne {
	bcuo.mutation.Where(ps...)
	return bcuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (bcuo *BlueprintCollectionUpdateOne) Select(field string, fields ...string) *BlueprintCollectionUpdateOne {
	bcuo.fields = append([]string{field}, fields...)
	return bcuo
}

// Save executes the query and returns the updated BlueprintCollection entity.
func (bcuo *BlueprintCollectionUpdateOne) Save(ctx context.Context) (*BlueprintCollection, error) {
	return withHooks(ctx, bcuo.sqlSave, bcuo.mutation, bcuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bcuo *BlueprintCollectionUpdateOne) SaveX(ctx context.Context) *BlueprintCollection {
	node, err := bcuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (bcuo *BlueprintCollectionUpdateOne) Exec(ctx context.Context) error {
	_, err := bcuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bcuo *BlueprintCollectionUpdateOne) ExecX(ctx context.Context) {
	if err := bcuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bcuo *BlueprintCollectionUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintCollectionUpdateOne {
	bcuo.modifiers = append(bcuo.modifiers, modifiers...)
	return bcuo
}

func (bcuo *BlueprintCollectionUpdateOne) sqlSave(ctx context.Context) (_node *BlueprintCollection, err error) {
	_spec := sqlgraph.NewUpdateSpec(blueprintcollection.Table, blueprintcollection.Columns, sqlgraph.NewFieldSpec(blueprintcollection.FieldID, field.TypeUint))
	id, ok := bcuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BlueprintCollection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := bcuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprintcollection.FieldID)
		for _, f := range fields {
			if !blueprintcollection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprintcollection.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := bcuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bcuo.mutation.BlueprintID(); ok {
		_spec.SetField(blueprintcollection.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.AddedBlueprintID(); ok {
		_spec.AddField(blueprintcollection.FieldBlueprintID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.CollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.AddedCollectionID(); ok {
		_spec.AddField(blueprintcollection.FieldCollectionID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.RootCollectionID(); ok {
		_spec.SetField(blueprintcollection.FieldRootCollectionID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.AddedRootCollectionID(); ok {
		_spec.AddField(blueprintcollection.FieldRootCollectionID, field.TypeUint, value)
	}
	if value, ok := bcuo.mutation.CreatedAt(); ok {
		_spec.SetField(blueprintcollection.FieldCreatedAt, field.TypeTime, value)
	}
	_spec.AddModifiers(bcuo.modifiers...)
	_node = &BlueprintCollection{config: bcuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, bcuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprintcollection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	bcuo.mutation.done = true
	return _node, nil
}
