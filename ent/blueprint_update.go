// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/predicate"
)

// BlueprintUpdate is the builder for updating Blueprint entities.
type BlueprintUpdate struct {
	config
	hooks     []Hook
	mutation  *BlueprintMutation
	modifiers []func(*sql.UpdateBuilder)
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (bu *BlueprintUpdate) Where(ps ...predicate.Blueprint) *BlueprintUpdate {
	bu.mutation.Where(ps...)
	return bu
}

// SetDeletedAt sets the "deleted_at" field.
func (bu *BlueprintUpdate) SetDeletedAt(t time.Time) *BlueprintUpdate {
	bu.mutation.SetDeletedAt(t)
	return bu
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableDeletedAt(t *time.Time) *BlueprintUpdate {
	if t != nil {
		bu.SetDeletedAt(*t)
	}
	return bu
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (bu *BlueprintUpdate) ClearDeletedAt() *BlueprintUpdate {
	bu.mutation.ClearDeletedAt()
	return bu
}

// SetOwnerID sets the "owner_id" field.
func (bu *BlueprintUpdate) SetOwnerID(u uint) *BlueprintUpdate {
	bu.mutation.ResetOwnerID()
	bu.mutation.SetOwnerID(u)
	return bu
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableOwnerID(u *uint) *BlueprintUpdate {
	if u != nil {
		bu.SetOwnerID(*u)
	}
	return bu
}

// AddOwnerID adds u to the "owner_id" field.
func (bu *BlueprintUpdate) AddOwnerID(u int) *BlueprintUpdate {
	bu.mutation.AddOwnerID(u)
	return bu
}

// SetCreatedAt sets the "created_at" field.
func (bu *BlueprintUpdate) SetCreatedAt(t time.Time) *BlueprintUpdate {
	bu.mutation.SetCreatedAt(t)
	return bu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableCreatedAt(t *time.Time) *BlueprintUpdate {
	if t != nil {
		bu.SetCreatedAt(*t)
	}
	return bu
}

// SetUpdatedAt sets the "updated_at" field.
func (bu *BlueprintUpdate) SetUpdatedAt(t time.Time) *BlueprintUpdate {
	bu.mutation.SetUpdatedAt(t)
	return bu
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableUpdatedAt(t *time.Time) *BlueprintUpdate {
	if t != nil {
		bu.SetUpdatedAt(*t)
	}
	return bu
}

// SetTitle sets the "title" field.
func (bu *BlueprintUpdate) SetTitle(s string) *BlueprintUpdate {
	bu.mutation.SetTitle(s)
	return bu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableTitle(s *string) *BlueprintUpdate {
	if s != nil {
		bu.SetTitle(*s)
	}
	return bu
}

// SetDescription sets the "description" field.
func (bu *BlueprintUpdate) SetDescription(s string) *BlueprintUpdate {
	bu.mutation.SetDescription(s)
	return bu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableDescription(s *string) *BlueprintUpdate {
	if s != nil {
		bu.SetDescription(*s)
	}
	return bu
}

// ClearDescription clears the value of the "description" field.
func (bu *BlueprintUpdate) ClearDescription() *BlueprintUpdate {
	bu.mutation.ClearDescription()
	return bu
}

// SetDescriptionHTML sets the "description_html" field.
func (bu *BlueprintUpdate) SetDescriptionHTML(s string) *BlueprintUpdate {
	bu.mutation.SetDescriptionHTML(s)
	return bu
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableDescriptionHTML(s *string) *BlueprintUpdate {
	if s != nil {
		bu.SetDescriptionHTML(*s)
	}
	return bu
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (bu *BlueprintUpdate) ClearDescriptionHTML() *BlueprintUpdate {
	bu.mutation.ClearDescriptionHTML()
	return bu
}

// SetPayload sets the "payload" field.
func (bu *BlueprintUpdate) SetPayload(s string) *BlueprintUpdate {
	bu.mutation.SetPayload(s)
	return bu
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillablePayload(s *string) *BlueprintUpdate {
	if s != nil {
		bu.SetPayload(*s)
	}
	return bu
}

// SetPictures sets the "pictures" field.
func (bu *BlueprintUpdate) SetPictures(s []string) *BlueprintUpdate {
	bu.mutation.SetPictures(s)
	return bu
}

// AppendPictures appends s to the "pictures" field.
func (bu *BlueprintUpdate) AppendPictures(s []string) *BlueprintUpdate {
	bu.mutation.AppendPictures(s)
	return bu
}

// ClearPictures clears the value of the "pictures" field.
func (bu *BlueprintUpdate) ClearPictures() *BlueprintUpdate {
	bu.mutation.ClearPictures()
	return bu
}

// SetTagsID sets the "tags_id" field.
func (bu *BlueprintUpdate) SetTagsID(i []int) *BlueprintUpdate {
	bu.mutation.SetTagsID(i)
	return bu
}

// AppendTagsID appends i to the "tags_id" field.
func (bu *BlueprintUpdate) AppendTagsID(i []int) *BlueprintUpdate {
	bu.mutation.AppendTagsID(i)
	return bu
}

// ClearTagsID clears the value of the "tags_id" field.
func (bu *BlueprintUpdate) ClearTagsID() *BlueprintUpdate {
	bu.mutation.ClearTagsID()
	return bu
}

// SetCopyCount sets the "copy_count" field.
func (bu *BlueprintUpdate) SetCopyCount(i int) *BlueprintUpdate {
	bu.mutation.ResetCopyCount()
	bu.mutation.SetCopyCount(i)
	return bu
}

// SetNillableCopyCount sets the "copy_count" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableCopyCount(i *int) *BlueprintUpdate {
	if i != nil {
		bu.SetCopyCount(*i)
	}
	return bu
}

// AddCopyCount adds i to the "copy_count" field.
func (bu *BlueprintUpdate) AddCopyCount(i int) *BlueprintUpdate {
	bu.mutation.AddCopyCount(i)
	return bu
}

// SetIconLayout sets the "icon_layout" field.
func (bu *BlueprintUpdate) SetIconLayout(i int) *BlueprintUpdate {
	bu.mutation.ResetIconLayout()
	bu.mutation.SetIconLayout(i)
	return bu
}

// SetNillableIconLayout sets the "icon_layout" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableIconLayout(i *int) *BlueprintUpdate {
	if i != nil {
		bu.SetIconLayout(*i)
	}
	return bu
}

// AddIconLayout adds i to the "icon_layout" field.
func (bu *BlueprintUpdate) AddIconLayout(i int) *BlueprintUpdate {
	bu.mutation.AddIconLayout(i)
	return bu
}

// SetLikeCount sets the "like_count" field.
func (bu *BlueprintUpdate) SetLikeCount(i int) *BlueprintUpdate {
	bu.mutation.ResetLikeCount()
	bu.mutation.SetLikeCount(i)
	return bu
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableLikeCount(i *int) *BlueprintUpdate {
	if i != nil {
		bu.SetLikeCount(*i)
	}
	return bu
}

// AddLikeCount adds i to the "like_count" field.
func (bu *BlueprintUpdate) AddLikeCount(i int) *BlueprintUpdate {
	bu.mutation.AddLikeCount(i)
	return bu
}

// SetCollectionCount sets the "collection_count" field.
func (bu *BlueprintUpdate) SetCollectionCount(i int) *BlueprintUpdate {
	bu.mutation.ResetCollectionCount()
	bu.mutation.SetCollectionCount(i)
	return bu
}

// SetNillableCollectionCount sets the "collection_count" field if the given value is not nil.
func (bu *BlueprintUpdate) SetNillableCollectionCount(i *int) *BlueprintUpdate {
	if i != nil {
		bu.SetCollectionCount(*i)
	}
	return bu
}

// AddCollectionCount adds i to the "collection_count" field.
func (bu *BlueprintUpdate) AddCollectionCount(i int) *BlueprintUpdate {
	bu.mutation.AddCollectionCount(i)
	return bu
}

// Mutation returns the BlueprintMutation object of the builder.
func (bu *BlueprintUpdate) Mutation() *BlueprintMutation {
	return bu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (bu *BlueprintUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, bu.sqlSave, bu.mutation, bu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (bu *BlueprintUpdate) SaveX(ctx context.Context) int {
	affected, err := bu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (bu *BlueprintUpdate) Exec(ctx context.Context) error {
	_, err := bu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (bu *BlueprintUpdate) ExecX(ctx context.Context) {
	if err := bu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (bu *BlueprintUpdate) check() error {
	if v, ok := bu.mutation.Title(); ok {
		if err := blueprint.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Blueprint.title": %w`, err)}
		}
	}
	if v, ok := bu.mutation.Payload(); ok {
		if err := blueprint.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "Blueprint.payload": %w`, err)}
		}
	}
	if v, ok := bu.mutation.CopyCount(); ok {
		if err := blueprint.CopyCountValidator(v); err != nil {
			return &ValidationError{Name: "copy_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.copy_count": %w`, err)}
		}
	}
	if v, ok := bu.mutation.LikeCount(); ok {
		if err := blueprint.LikeCountValidator(v); err != nil {
			return &ValidationError{Name: "like_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.like_count": %w`, err)}
		}
	}
	if v, ok := bu.mutation.CollectionCount(); ok {
		if err := blueprint.CollectionCountValidator(v); err != nil {
			return &ValidationError{Name: "collection_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.collection_count": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (bu *BlueprintUpdate) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintUpdate {
	bu.modifiers = append(bu.modifiers, modifiers...)
	return bu
}

func (bu *BlueprintUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := bu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUint))
	if ps := bu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := bu.mutation.DeletedAt(); ok {
		_spec.SetField(blueprint.FieldDeletedAt, field.TypeTime, value)
	}
	if bu.mutation.DeletedAtCleared() {
		_spec.ClearField(blueprint.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := bu.mutation.OwnerID(); ok {
		_spec.SetField(blueprint.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := bu.mutation.AddedOwnerID(); ok {
		_spec.AddField(blueprint.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := bu.mutation.CreatedAt(); ok {
		_spec.SetField(blueprint.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := bu.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := bu.mutation.Title(); ok {
		_spec.SetField(blueprint.FieldTitle, field.TypeString, value)
	}
	if value, ok := bu.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
	}
	if bu.mutation.DescriptionCleared() {
		_spec.ClearField(blueprint.FieldDescription, field.TypeString)
	}
	if value, ok := bu.mutation.DescriptionHTML(); ok {
		_spec.SetField(blueprint.FieldDescriptionHTML, field.TypeString, value)
	}
	if bu.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(blueprint.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := bu.mutation.Payload(); ok {
		_spec.SetField(blueprint.FieldPayload, field.TypeString, value)
	}
	if value, ok := bu.mutation.Pictures(); ok {
		_spec.SetField(blueprint.FieldPictures, field.TypeJSON, value)
	}
	if value, ok := bu.mutation.AppendedPictures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprint.FieldPictures, value)
		})
	}
	if bu.mutation.PicturesCleared() {
		_spec.ClearField(blueprint.FieldPictures, field.TypeJSON)
	}
	if value, ok := bu.mutation.TagsID(); ok {
		_spec.SetField(blueprint.FieldTagsID, field.TypeJSON, value)
	}
	if value, ok := bu.mutation.AppendedTagsID(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprint.FieldTagsID, value)
		})
	}
	if bu.mutation.TagsIDCleared() {
		_spec.ClearField(blueprint.FieldTagsID, field.TypeJSON)
	}
	if value, ok := bu.mutation.CopyCount(); ok {
		_spec.SetField(blueprint.FieldCopyCount, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedCopyCount(); ok {
		_spec.AddField(blueprint.FieldCopyCount, field.TypeInt, value)
	}
	if value, ok := bu.mutation.IconLayout(); ok {
		_spec.SetField(blueprint.FieldIconLayout, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedIconLayout(); ok {
		_spec.AddField(blueprint.FieldIconLayout, field.TypeInt, value)
	}
	if value, ok := bu.mutation.LikeCount(); ok {
		_spec.SetField(blueprint.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedLikeCount(); ok {
		_spec.AddField(blueprint.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := bu.mutation.CollectionCount(); ok {
		_spec.SetField(blueprint.FieldCollectionCount, field.TypeInt, value)
	}
	if value, ok := bu.mutation.AddedCollectionCount(); ok {
		_spec.AddField(blueprint.FieldCollectionCount, field.TypeInt, value)
	}
	_spec.AddModifiers(bu.modifiers...)
	if n, err = sqlgraph.UpdateNodes(ctx, bu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	bu.mutation.done = true
	return n, nil
}

// BlueprintUpdateOne is the builder for updating a single Blueprint entity.
type BlueprintUpdateOne struct {
	config
	fields    []string
	hooks     []Hook
	mutation  *BlueprintMutation
	modifiers []func(*sql.UpdateBuilder)
}

// SetDeletedAt sets the "deleted_at" field.
func (buo *BlueprintUpdateOne) SetDeletedAt(t time.Time) *BlueprintUpdateOne {
	buo.mutation.SetDeletedAt(t)
	return buo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableDeletedAt(t *time.Time) *BlueprintUpdateOne {
	if t != nil {
		buo.SetDeletedAt(*t)
	}
	return buo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (buo *BlueprintUpdateOne) ClearDeletedAt() *BlueprintUpdateOne {
	buo.mutation.ClearDeletedAt()
	return buo
}

// SetOwnerID sets the "owner_id" field.
func (buo *BlueprintUpdateOne) SetOwnerID(u uint) *BlueprintUpdateOne {
	buo.mutation.ResetOwnerID()
	buo.mutation.SetOwnerID(u)
	return buo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableOwnerID(u *uint) *BlueprintUpdateOne {
	if u != nil {
		buo.SetOwnerID(*u)
	}
	return buo
}

// AddOwnerID adds u to the "owner_id" field.
func (buo *BlueprintUpdateOne) AddOwnerID(u int) *BlueprintUpdateOne {
	buo.mutation.AddOwnerID(u)
	return buo
}

// SetCreatedAt sets the "created_at" field.
func (buo *BlueprintUpdateOne) SetCreatedAt(t time.Time) *BlueprintUpdateOne {
	buo.mutation.SetCreatedAt(t)
	return buo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableCreatedAt(t *time.Time) *BlueprintUpdateOne {
	if t != nil {
		buo.SetCreatedAt(*t)
	}
	return buo
}

// SetUpdatedAt sets the "updated_at" field.
func (buo *BlueprintUpdateOne) SetUpdatedAt(t time.Time) *BlueprintUpdateOne {
	buo.mutation.SetUpdatedAt(t)
	return buo
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableUpdatedAt(t *time.Time) *BlueprintUpdateOne {
	if t != nil {
		buo.SetUpdatedAt(*t)
	}
	return buo
}

// SetTitle sets the "title" field.
func (buo *BlueprintUpdateOne) SetTitle(s string) *BlueprintUpdateOne {
	buo.mutation.SetTitle(s)
	return buo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableTitle(s *string) *BlueprintUpdateOne {
	if s != nil {
		buo.SetTitle(*s)
	}
	return buo
}

// SetDescription sets the "description" field.
func (buo *BlueprintUpdateOne) SetDescription(s string) *BlueprintUpdateOne {
	buo.mutation.SetDescription(s)
	return buo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableDescription(s *string) *BlueprintUpdateOne {
	if s != nil {
		buo.SetDescription(*s)
	}
	return buo
}

// ClearDescription clears the value of the "description" field.
func (buo *BlueprintUpdateOne) ClearDescription() *BlueprintUpdateOne {
	buo.mutation.ClearDescription()
	return buo
}

// SetDescriptionHTML sets the "description_html" field.
func (buo *BlueprintUpdateOne) SetDescriptionHTML(s string) *BlueprintUpdateOne {
	buo.mutation.SetDescriptionHTML(s)
	return buo
}

// SetNillableDescriptionHTML sets the "description_html" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableDescriptionHTML(s *string) *BlueprintUpdateOne {
	if s != nil {
		buo.SetDescriptionHTML(*s)
	}
	return buo
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (buo *BlueprintUpdateOne) ClearDescriptionHTML() *BlueprintUpdateOne {
	buo.mutation.ClearDescriptionHTML()
	return buo
}

// SetPayload sets the "payload" field.
func (buo *BlueprintUpdateOne) SetPayload(s string) *BlueprintUpdateOne {
	buo.mutation.SetPayload(s)
	return buo
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillablePayload(s *string) *BlueprintUpdateOne {
	if s != nil {
		buo.SetPayload(*s)
	}
	return buo
}

// SetPictures sets the "pictures" field.
func (buo *BlueprintUpdateOne) SetPictures(s []string) *BlueprintUpdateOne {
	buo.mutation.SetPictures(s)
	return buo
}

// AppendPictures appends s to the "pictures" field.
func (buo *BlueprintUpdateOne) AppendPictures(s []string) *BlueprintUpdateOne {
	buo.mutation.AppendPictures(s)
	return buo
}

// ClearPictures clears the value of the "pictures" field.
func (buo *BlueprintUpdateOne) ClearPictures() *BlueprintUpdateOne {
	buo.mutation.ClearPictures()
	return buo
}

// SetTagsID sets the "tags_id" field.
func (buo *BlueprintUpdateOne) SetTagsID(i []int) *BlueprintUpdateOne {
	buo.mutation.SetTagsID(i)
	return buo
}

// AppendTagsID appends i to the "tags_id" field.
func (buo *BlueprintUpdateOne) AppendTagsID(i []int) *BlueprintUpdateOne {
	buo.mutation.AppendTagsID(i)
	return buo
}

// ClearTagsID clears the value of the "tags_id" field.
func (buo *BlueprintUpdateOne) ClearTagsID() *BlueprintUpdateOne {
	buo.mutation.ClearTagsID()
	return buo
}

// SetCopyCount sets the "copy_count" field.
func (buo *BlueprintUpdateOne) SetCopyCount(i int) *BlueprintUpdateOne {
	buo.mutation.ResetCopyCount()
	buo.mutation.SetCopyCount(i)
	return buo
}

// SetNillableCopyCount sets the "copy_count" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableCopyCount(i *int) *BlueprintUpdateOne {
	if i != nil {
		buo.SetCopyCount(*i)
	}
	return buo
}

// AddCopyCount adds i to the "copy_count" field.
func (buo *BlueprintUpdateOne) AddCopyCount(i int) *BlueprintUpdateOne {
	buo.mutation.AddCopyCount(i)
	return buo
}

// SetIconLayout sets the "icon_layout" field.
func (buo *BlueprintUpdateOne) SetIconLayout(i int) *BlueprintUpdateOne {
	buo.mutation.ResetIconLayout()
	buo.mutation.SetIconLayout(i)
	return buo
}

// SetNillableIconLayout sets the "icon_layout" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableIconLayout(i *int) *BlueprintUpdateOne {
	if i != nil {
		buo.SetIconLayout(*i)
	}
	return buo
}

// AddIconLayout adds i to the "icon_layout" field.
func (buo *BlueprintUpdateOne) AddIconLayout(i int) *BlueprintUpdateOne {
	buo.mutation.AddIconLayout(i)
	return buo
}

// SetLikeCount sets the "like_count" field.
func (buo *BlueprintUpdateOne) SetLikeCount(i int) *BlueprintUpdateOne {
	buo.mutation.ResetLikeCount()
	buo.mutation.SetLikeCount(i)
	return buo
}

// SetNillableLikeCount sets the "like_count" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableLikeCount(i *int) *BlueprintUpdateOne {
	if i != nil {
		buo.SetLikeCount(*i)
	}
	return buo
}

// AddLikeCount adds i to the "like_count" field.
func (buo *BlueprintUpdateOne) AddLikeCount(i int) *BlueprintUpdateOne {
	buo.mutation.AddLikeCount(i)
	return buo
}

// SetCollectionCount sets the "collection_count" field.
func (buo *BlueprintUpdateOne) SetCollectionCount(i int) *BlueprintUpdateOne {
	buo.mutation.ResetCollectionCount()
	buo.mutation.SetCollectionCount(i)
	return buo
}

// SetNillableCollectionCount sets the "collection_count" field if the given value is not nil.
func (buo *BlueprintUpdateOne) SetNillableCollectionCount(i *int) *BlueprintUpdateOne {
	if i != nil {
		buo.SetCollectionCount(*i)
	}
	return buo
}

// AddCollectionCount adds i to the "collection_count" field.
func (buo *BlueprintUpdateOne) AddCollectionCount(i int) *BlueprintUpdateOne {
	buo.mutation.AddCollectionCount(i)
	return buo
}

// Mutation returns the BlueprintMutation object of the builder.
func (buo *BlueprintUpdateOne) Mutation() *BlueprintMutation {
	return buo.mutation
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (buo *BlueprintUpdateOne) Where(ps ...predicate.Blueprint) *BlueprintUpdateOne {
	buo.mutation.Where(ps...)
	return buo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (buo *BlueprintUpdateOne) Select(field string, fields ...string) *BlueprintUpdateOne {
	buo.fields = append([]string{field}, fields...)
	return buo
}

// Save executes the query and returns the updated Blueprint entity.
func (buo *BlueprintUpdateOne) Save(ctx context.Context) (*Blueprint, error) {
	return withHooks(ctx, buo.sqlSave, buo.mutation, buo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (buo *BlueprintUpdateOne) SaveX(ctx context.Context) *Blueprint {
	node, err := buo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (buo *BlueprintUpdateOne) Exec(ctx context.Context) error {
	_, err := buo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (buo *BlueprintUpdateOne) ExecX(ctx context.Context) {
	if err := buo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (buo *BlueprintUpdateOne) check() error {
	if v, ok := buo.mutation.Title(); ok {
		if err := blueprint.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Blueprint.title": %w`, err)}
		}
	}
	if v, ok := buo.mutation.Payload(); ok {
		if err := blueprint.PayloadValidator(v); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "Blueprint.payload": %w`, err)}
		}
	}
	if v, ok := buo.mutation.CopyCount(); ok {
		if err := blueprint.CopyCountValidator(v); err != nil {
			return &ValidationError{Name: "copy_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.copy_count": %w`, err)}
		}
	}
	if v, ok := buo.mutation.LikeCount(); ok {
		if err := blueprint.LikeCountValidator(v); err != nil {
			return &ValidationError{Name: "like_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.like_count": %w`, err)}
		}
	}
	if v, ok := buo.mutation.CollectionCount(); ok {
		if err := blueprint.CollectionCountValidator(v); err != nil {
			return &ValidationError{Name: "collection_count", err: fmt.Errorf(`ent: validator failed for field "Blueprint.collection_count": %w`, err)}
		}
	}
	return nil
}

// Modify adds a statement modifier for attaching custom logic to the UPDATE statement.
func (buo *BlueprintUpdateOne) Modify(modifiers ...func(u *sql.UpdateBuilder)) *BlueprintUpdateOne {
	buo.modifiers = append(buo.modifiers, modifiers...)
	return buo
}

func (buo *BlueprintUpdateOne) sqlSave(ctx context.Context) (_node *Blueprint, err error) {
	if err := buo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUint))
	id, ok := buo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Blueprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := buo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprint.FieldID)
		for _, f := range fields {
			if !blueprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprint.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := buo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := buo.mutation.DeletedAt(); ok {
		_spec.SetField(blueprint.FieldDeletedAt, field.TypeTime, value)
	}
	if buo.mutation.DeletedAtCleared() {
		_spec.ClearField(blueprint.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := buo.mutation.OwnerID(); ok {
		_spec.SetField(blueprint.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := buo.mutation.AddedOwnerID(); ok {
		_spec.AddField(blueprint.FieldOwnerID, field.TypeUint, value)
	}
	if value, ok := buo.mutation.CreatedAt(); ok {
		_spec.SetField(blueprint.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := buo.mutation.UpdatedAt(); ok {
		_spec.SetField(blueprint.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := buo.mutation.Title(); ok {
		_spec.SetField(blueprint.FieldTitle, field.TypeString, value)
	}
	if value, ok := buo.mutation.Description(); ok {
		_spec.SetField(blueprint.FieldDescription, field.TypeString, value)
	}
	if buo.mutation.DescriptionCleared() {
		_spec.ClearField(blueprint.FieldDescription, field.TypeString)
	}
	if value, ok := buo.mutation.DescriptionHTML(); ok {
		_spec.SetField(blueprint.FieldDescriptionHTML, field.TypeString, value)
	}
	if buo.mutation.DescriptionHTMLCleared() {
		_spec.ClearField(blueprint.FieldDescriptionHTML, field.TypeString)
	}
	if value, ok := buo.mutation.Payload(); ok {
		_spec.SetField(blueprint.FieldPayload, field.TypeString, value)
	}
	if value, ok := buo.mutation.Pictures(); ok {
		_spec.SetField(blueprint.FieldPictures, field.TypeJSON, value)
	}
	if value, ok := buo.mutation.AppendedPictures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprint.FieldPictures, value)
		})
	}
	if buo.mutation.PicturesCleared() {
		_spec.ClearField(blueprint.FieldPictures, field.TypeJSON)
	}
	if value, ok := buo.mutation.TagsID(); ok {
		_spec.SetField(blueprint.FieldTagsID, field.TypeJSON, value)
	}
	if value, ok := buo.mutation.AppendedTagsID(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, blueprint.FieldTagsID, value)
		})
	}
	if buo.mutation.TagsIDCleared() {
		_spec.ClearField(blueprint.FieldTagsID, field.TypeJSON)
	}
	if value, ok := buo.mutation.CopyCount(); ok {
		_spec.SetField(blueprint.FieldCopyCount, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedCopyCount(); ok {
		_spec.AddField(blueprint.FieldCopyCount, field.TypeInt, value)
	}
	if value, ok := buo.mutation.IconLayout(); ok {
		_spec.SetField(blueprint.FieldIconLayout, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedIconLayout(); ok {
		_spec.AddField(blueprint.FieldIconLayout, field.TypeInt, value)
	}
	if value, ok := buo.mutation.LikeCount(); ok {
		_spec.SetField(blueprint.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedLikeCount(); ok {
		_spec.AddField(blueprint.FieldLikeCount, field.TypeInt, value)
	}
	if value, ok := buo.mutation.CollectionCount(); ok {
		_spec.SetField(blueprint.FieldCollectionCount, field.TypeInt, value)
	}
	if value, ok := buo.mutation.AddedCollectionCount(); ok {
		_spec.AddField(blueprint.FieldCollectionCount, field.TypeInt, value)
	}
	_spec.AddModifiers(buo.modifiers...)
	_node = &Blueprint{config: buo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, buo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	buo.mutation.done = true
	return _node, nil
}
