// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprint"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
	"github.com/dsp2b/dsp2b/ent/collection"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
	"github.com/dsp2b/dsp2b/ent/predicate"
	"github.com/dsp2b/dsp2b/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlueprint           = "Blueprint"
	TypeBlueprintCollection = "BlueprintCollection"
	TypeBlueprintLike       = "BlueprintLike"
	TypeBlueprintProduct    = "BlueprintProduct"
	TypeCollection          = "Collection"
	TypeCollectionLike      = "CollectionLike"
	TypeUser                = "User"
)

// BlueprintMutation represents an operation that mutates the Blueprint nodes in the graph.
type BlueprintMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uint
	deleted_at          *time.Time
	owner_id            *uint
	addowner_id         *int
	created_at          *time.Time
	updated_at          *time.Time
	title               *string
	description         *string
	description_html    *string
	payload             *string
	pictures            *[]string
	appendpictures      []string
	tags_id             *[]int
	appendtags_id       []int
	copy_count          *int
	addcopy_count       *int
	icon_layout         *int
	addicon_layout      *int
	like_count          *int
	addlike_count       *int
	collection_count    *int
	addcollection_count *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Blueprint, error)
	predicates          []predicate.Blueprint
}

var _ ent.Mutation = (*BlueprintMutation)(nil)

// blueprintOption allows management of the mutation configuration using functional options.
type blueprintOption func(*BlueprintMutation)

// newBlueprintMutation creates new mutation for the Blueprint entity.
func newBlueprintMutation(c config, op Op, opts ...blueprintOption) *BlueprintMutation {
	m := &BlueprintMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintID sets the ID field of the mutation.
func withBlueprintID(id uint) blueprintOption {
	return func(m *BlueprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Blueprint
		)
		m.oldValue = func(ctx context.Context) (*Blueprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blueprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprint sets the old Blueprint of the mutation.
func withBlueprint(node *Blueprint) blueprintOption {
	return func(m *BlueprintMutation) {
		m.oldValue = func(context.Context) (*Blueprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blueprint entities.
func (m *BlueprintMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blueprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BlueprintMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BlueprintMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BlueprintMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[blueprint.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BlueprintMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BlueprintMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, blueprint.FieldDeletedAt)
}

// SetOwnerID sets the "owner_id" field.
func (m *BlueprintMutation) SetOwnerID(u uint) {
	m.owner_id = &u
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BlueprintMutation) OwnerID() (r uint, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldOwnerID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds u to the "owner_id" field.
func (m *BlueprintMutation) AddOwnerID(u int) {
	if m.addowner_id != nil {
		*m.addowner_id += u
	} else {
		m.addowner_id = &u
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *BlueprintMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BlueprintMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlueprintMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlueprintMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlueprintMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *BlueprintMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BlueprintMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BlueprintMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *BlueprintMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BlueprintMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BlueprintMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[blueprint.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BlueprintMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BlueprintMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, blueprint.FieldDescription)
}

// SetDescriptionHTML sets the "description_html" field.
func (m *BlueprintMutation) SetDescriptionHTML(s string) {
	m.description_html = &s
}

// DescriptionHTML returns the value of the "description_html" field in the mutation.
func (m *BlueprintMutation) DescriptionHTML() (r string, exists bool) {
	v := m.description_html
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionHTML returns the old "description_html" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldDescriptionHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionHTML: %w", err)
	}
	return oldValue.DescriptionHTML, nil
}

// ClearDescriptionHTML clears the value of the "description_html" field.
func (m *BlueprintMutation) ClearDescriptionHTML() {
	m.description_html = nil
	m.clearedFields[blueprint.FieldDescriptionHTML] = struct{}{}
}

// DescriptionHTMLCleared returns if the "description_html" field was cleared in this mutation.
func (m *BlueprintMutation) DescriptionHTMLCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldDescriptionHTML]
	return ok
}

// ResetDescriptionHTML resets all changes to the "description_html" field.
func (m *BlueprintMutation) ResetDescriptionHTML() {
	m.description_html = nil
	delete(m.clearedFields, blueprint.FieldDescriptionHTML)
}

// SetPayload sets the "payload" field.
func (m *BlueprintMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *BlueprintMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *BlueprintMutation) ResetPayload() {
	m.payload = nil
}

// SetPictures sets the "pictures" field.
func (m *BlueprintMutation) SetPictures(s []string) {
	m.pictures = &s
	m.appendpictures = nil
}

// Pictures returns the value of the "pictures" field in the mutation.
func (m *BlueprintMutation) Pictures() (r []string, exists bool) {
	v := m.pictures
	if v == nil {
		return
	}
	return *v, true
}

// OldPictures returns the old "pictures" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldPictures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPictures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPictures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPictures: %w", err)
	}
	return oldValue.Pictures, nil
}

// AppendPictures adds s to the "pictures" field.
func (m *BlueprintMutation) AppendPictures(s []string) {
	m.appendpictures = append(m.appendpictures, s...)
}

// AppendedPictures returns the list of values that were appended to the "pictures" field in this mutation.
func (m *BlueprintMutation) AppendedPictures() ([]string, bool) {
	if len(m.appendpictures) == 0 {
		return nil, false
	}
	return m.appendpictures, true
}

// ClearPictures clears the value of the "pictures" field.
func (m *BlueprintMutation) ClearPictures() {
	m.pictures = nil
	m.appendpictures = nil
	m.clearedFields[blueprint.FieldPictures] = struct{}{}
}

// PicturesCleared returns if the "pictures" field was cleared in this mutation.
func (m *BlueprintMutation) PicturesCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldPictures]
	return ok
}

// ResetPictures resets all changes to the "pictures" field.
func (m *BlueprintMutation) ResetPictures() {
	m.pictures = nil
	m.appendpictures = nil
	delete(m.clearedFields, blueprint.FieldPictures)
}

// SetTagsID sets the "tags_id" field.
func (m *BlueprintMutation) SetTagsID(i []int) {
	m.tags_id = &i
	m.appendtags_id = nil
}

// TagsID returns the value of the "tags_id" field in the mutation.
func (m *BlueprintMutation) TagsID() (r []int, exists bool) {
	v := m.tags_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTagsID returns the old "tags_id" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldTagsID(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTagsID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTagsID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTagsID: %w", err)
	}
	return oldValue.TagsID, nil
}

// AppendTagsID adds i to the "tags_id" field.
func (m *BlueprintMutation) AppendTagsID(i []int) {
	m.appendtags_id = append(m.appendtags_id, i...)
}

// AppendedTagsID returns the list of values that were appended to the "tags_id" field in this mutation.
func (m *BlueprintMutation) AppendedTagsID() ([]int, bool) {
	if len(m.appendtags_id) == 0 {
		return nil, false
	}
	return m.appendtags_id, true
}

// ClearTagsID clears the value of the "tags_id" field.
func (m *BlueprintMutation) ClearTagsID() {
	m.tags_id = nil
	m.appendtags_id = nil
	m.clearedFields[blueprint.FieldTagsID] = struct{}{}
}

// TagsIDCleared returns if the "tags_id" field was cleared in this mutation.
func (m *BlueprintMutation) TagsIDCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldTagsID]
	return ok
}

// ResetTagsID resets all changes to the "tags_id" field.
func (m *BlueprintMutation) ResetTagsID() {
	m.tags_id = nil
	m.appendtags_id = nil
	delete(m.clearedFields, blueprint.FieldTagsID)
}

// SetCopyCount sets the "copy_count" field.
func (m *BlueprintMutation) SetCopyCount(i int) {
	m.copy_count = &i
	m.addcopy_count = nil
}

// CopyCount returns the value of the "copy_count" field in the mutation.
func (m *BlueprintMutation) CopyCount() (r int, exists bool) {
	v := m.copy_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCopyCount returns the old "copy_count" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCopyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCopyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCopyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCopyCount: %w", err)
	}
	return oldValue.CopyCount, nil
}

// AddCopyCount adds i to the "copy_count" field.
func (m *BlueprintMutation) AddCopyCount(i int) {
	if m.addcopy_count != nil {
		*m.addcopy_count += i
	} else {
		m.addcopy_count = &i
	}
}

// AddedCopyCount returns the value that was added to the "copy_count" field in this mutation.
func (m *BlueprintMutation) AddedCopyCount() (r int, exists bool) {
	v := m.addcopy_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCopyCount resets all changes to the "copy_count" field.
func (m *BlueprintMutation) ResetCopyCount() {
	m.copy_count = nil
	m.addcopy_count = nil
}

// SetIconLayout sets the "icon_layout" field.
func (m *BlueprintMutation) SetIconLayout(i int) {
	m.icon_layout = &i
	m.addicon_layout = nil
}

// IconLayout returns the value of the "icon_layout" field in the mutation.
func (m *BlueprintMutation) IconLayout() (r int, exists bool) {
	v := m.icon_layout
	if v == nil {
		return
	}
	return *v, true
}

// OldIconLayout returns the old "icon_layout" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldIconLayout(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIconLayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIconLayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIconLayout: %w", err)
	}
	return oldValue.IconLayout, nil
}

// AddIconLayout adds i to the "icon_layout" field.
func (m *BlueprintMutation) AddIconLayout(i int) {
	if m.addicon_layout != nil {
		*m.addicon_layout += i
	} else {
		m.addicon_layout = &i
	}
}

// AddedIconLayout returns the value that was added to the "icon_layout" field in this mutation.
func (m *BlueprintMutation) AddedIconLayout() (r int, exists bool) {
	v := m.addicon_layout
	if v == nil {
		return
	}
	return *v, true
}

// ResetIconLayout resets all changes to the "icon_layout" field.
func (m *BlueprintMutation) ResetIconLayout() {
	m.icon_layout = nil
	m.addicon_layout = nil
}

// SetLikeCount sets the "like_count" field.
func (m *BlueprintMutation) SetLikeCount(i int) {
	m.like_count = &i
	m.addlike_count = nil
}

// LikeCount returns the value of the "like_count" field in the mutation.
func (m *BlueprintMutation) LikeCount() (r int, exists bool) {
	v := m.like_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLikeCount returns the old "like_count" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldLikeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikeCount: %w", err)
	}
	return oldValue.LikeCount, nil
}

// AddLikeCount adds i to the "like_count" field.
func (m *BlueprintMutation) AddLikeCount(i int) {
	if m.addlike_count != nil {
		*m.addlike_count += i
	} else {
		m.addlike_count = &i
	}
}

// AddedLikeCount returns the value that was added to the "like_count" field in this mutation.
func (m *BlueprintMutation) AddedLikeCount() (r int, exists bool) {
	v := m.addlike_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikeCount resets all changes to the "like_count" field.
func (m *BlueprintMutation) ResetLikeCount() {
	m.like_count = nil
	m.addlike_count = nil
}

// SetCollectionCount sets the "collection_count" field.
func (m *BlueprintMutation) SetCollectionCount(i int) {
	m.collection_count = &i
	m.addcollection_count = nil
}

// CollectionCount returns the value of the "collection_count" field in the mutation.
func (m *BlueprintMutation) CollectionCount() (r int, exists bool) {
	v := m.collection_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionCount returns the old "collection_count" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCollectionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionCount: %w", err)
	}
	return oldValue.CollectionCount, nil
}

// AddCollectionCount adds i to the "collection_count" field.
func (m *BlueprintMutation) AddCollectionCount(i int) {
	if m.addcollection_count != nil {
		*m.addcollection_count += i
	} else {
		m.addcollection_count = &i
	}
}

// AddedCollectionCount returns the value that was added to the "collection_count" field in this mutation.
func (m *BlueprintMutation) AddedCollectionCount() (r int, exists bool) {
	v := m.addcollection_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCollectionCount resets all changes to the "collection_count" field.
func (m *BlueprintMutation) ResetCollectionCount() {
	m.collection_count = nil
	m.addcollection_count = nil
}

// Where appends a list predicates to the BlueprintMutation builder.
func (m *BlueprintMutation) Where(ps ...predicate.Blueprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blueprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blueprint).
func (m *BlueprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.deleted_at != nil {
		fields = append(fields, blueprint.FieldDeletedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, blueprint.FieldOwnerID)
	}
	if m.created_at != nil {
		fields = append(fields, blueprint.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, blueprint.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, blueprint.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, blueprint.FieldDescription)
	}
	if m.description_html != nil {
		fields = append(fields, blueprint.FieldDescriptionHTML)
	}
	if m.payload != nil {
		fields = append(fields, blueprint.FieldPayload)
	}
	if m.pictures != nil {
		fields = append(fields, blueprint.FieldPictures)
	}
	if m.tags_id != nil {
		fields = append(fields, blueprint.FieldTagsID)
	}
	if m.copy_count != nil {
		fields = append(fields, blueprint.FieldCopyCount)
	}
	if m.icon_layout != nil {
		fields = append(fields, blueprint.FieldIconLayout)
	}
	if m.like_count != nil {
		fields = append(fields, blueprint.FieldLikeCount)
	}
	if m.collection_count != nil {
		fields = append(fields, blueprint.FieldCollectionCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldDeletedAt:
		return m.DeletedAt()
	case blueprint.FieldOwnerID:
		return m.OwnerID()
	case blueprint.FieldCreatedAt:
		return m.CreatedAt()
	case blueprint.FieldUpdatedAt:
		return m.UpdatedAt()
	case blueprint.FieldTitle:
		return m.Title()
	case blueprint.FieldDescription:
		return m.Description()
	case blueprint.FieldDescriptionHTML:
		return m.DescriptionHTML()
	case blueprint.FieldPayload:
		return m.Payload()
	case blueprint.FieldPictures:
		return m.Pictures()
	case blueprint.FieldTagsID:
		return m.TagsID()
	case blueprint.FieldCopyCount:
		return m.CopyCount()
	case blueprint.FieldIconLayout:
		return m.IconLayout()
	case blueprint.FieldLikeCount:
		return m.LikeCount()
	case blueprint.FieldCollectionCount:
		return m.CollectionCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprint.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case blueprint.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case blueprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case blueprint.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case blueprint.FieldTitle:
		return m.OldTitle(ctx)
	case blueprint.FieldDescription:
		return m.OldDescription(ctx)
	case blueprint.FieldDescriptionHTML:
		return m.OldDescriptionHTML(ctx)
	case blueprint.FieldPayload:
		return m.OldPayload(ctx)
	case blueprint.FieldPictures:
		return m.OldPictures(ctx)
	case blueprint.FieldTagsID:
		return m.OldTagsID(ctx)
	case blueprint.FieldCopyCount:
		return m.OldCopyCount(ctx)
	case blueprint.FieldIconLayout:
		return m.OldIconLayout(ctx)
	case blueprint.FieldLikeCount:
		return m.OldLikeCount(ctx)
	case blueprint.FieldCollectionCount:
		return m.OldCollectionCount(ctx)
	}
	return nil, fmt.Errorf("unknown Blueprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case blueprint.FieldOwnerID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case blueprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case blueprint.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case blueprint.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case blueprint.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case blueprint.FieldDescriptionHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionHTML(v)
		return nil
	case blueprint.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case blueprint.FieldPictures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPictures(v)
		return nil
	case blueprint.FieldTagsID:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTagsID(v)
		return nil
	case blueprint.FieldCopyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCopyCount(v)
		return nil
	case blueprint.FieldIconLayout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIconLayout(v)
		return nil
	case blueprint.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikeCount(v)
		return nil
	case blueprint.FieldCollectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, blueprint.FieldOwnerID)
	}
	if m.addcopy_count != nil {
		fields = append(fields, blueprint.FieldCopyCount)
	}
	if m.addicon_layout != nil {
		fields = append(fields, blueprint.FieldIconLayout)
	}
	if m.addlike_count != nil {
		fields = append(fields, blueprint.FieldLikeCount)
	}
	if m.addcollection_count != nil {
		fields = append(fields, blueprint.FieldCollectionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldOwnerID:
		return m.AddedOwnerID()
	case blueprint.FieldCopyCount:
		return m.AddedCopyCount()
	case blueprint.FieldIconLayout:
		return m.AddedIconLayout()
	case blueprint.FieldLikeCount:
		return m.AddedLikeCount()
	case blueprint.FieldCollectionCount:
		return m.AddedCollectionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	case blueprint.FieldCopyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCopyCount(v)
		return nil
	case blueprint.FieldIconLayout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIconLayout(v)
		return nil
	case blueprint.FieldLikeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikeCount(v)
		return nil
	case blueprint.FieldCollectionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCollectionCount(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprint.FieldDeletedAt) {
		fields = append(fields, blueprint.FieldDeletedAt)
	}
	if m.FieldCleared(blueprint.FieldDescription) {
		fields = append(fields, blueprint.FieldDescription)
	}
	if m.FieldCleared(blueprint.FieldDescriptionHTML) {
		fields = append(fields, blueprint.FieldDescriptionHTML)
	}
	if m.FieldCleared(blueprint.FieldPictures) {
		fields = append(fields, blueprint.FieldPictures)
	}
	if m.FieldCleared(blueprint.FieldTagsID) {
		fields = append(fields, blueprint.FieldTagsID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintMutation) ClearField(name string) error {
	switch name {
	case blueprint.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case blueprint.FieldDescription:
		m.ClearDescription()
		return nil
	case blueprint.FieldDescriptionHTML:
		m.ClearDescriptionHTML()
		return nil
	case blueprint.FieldPictures:
		m.ClearPictures()
		return nil
	case blueprint.FieldTagsID:
		m.ClearTagsID()
		return nil
	}
	return fmt.Errorf("unknown Blueprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintMutation) ResetField(name string) error {
	switch name {
	case blueprint.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case blueprint.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case blueprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case blueprint.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case blueprint.FieldTitle:
		m.ResetTitle()
		return nil
	case blueprint.FieldDescription:
		m.ResetDescription()
		return nil
	case blueprint.FieldDescriptionHTML:
		m.ResetDescriptionHTML()
		return nil
	case blueprint.FieldPayload:
		m.ResetPayload()
		return nil
	case blueprint.FieldPictures:
		m.ResetPictures()
		return nil
	case blueprint.FieldTagsID:
		m.ResetTagsID()
		return nil
	case blueprint.FieldCopyCount:
		m.ResetCopyCount()
		return nil
	case blueprint.FieldIconLayout:
		m.ResetIconLayout()
		return nil
	case blueprint.FieldLikeCount:
		m.ResetLikeCount()
		return nil
	case blueprint.FieldCollectionCount:
		m.ResetCollectionCount()
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Blueprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Blueprint edge %s", name)
}

// BlueprintCollectionMutation represents an operation that mutates the BlueprintCollection nodes in the graph.
type BlueprintCollectionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uint
	blueprint_id          *uint
	addblueprint_id       *int
	collection_id         *uint
	addcollection_id      *int
	root_collection_id    *uint
	addroot_collection_id *int
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*BlueprintCollection, error)
	predicates            []predicate.BlueprintCollection
}

var _ ent.Mutation = (*BlueprintCollectionMutation)(nil)

// blueprintcollectionOption allows management of the mutation configuration using functional options.
type blueprintcollectionOption func(*BlueprintCollectionMutation)

// newBlueprintCollectionMutation creates new mutation for the BlueprintCollection entity.
func newBlueprintCollectionMutation(c config, op Op, opts ...blueprintcollectionOption) *BlueprintCollectionMutation {
	m := &BlueprintCollectionMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintCollection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintCollectionID sets the ID field of the mutation.
func withBlueprintCollectionID(id uint) blueprintcollectionOption {
	return func(m *BlueprintCollectionMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintCollection
		)
		m.oldValue = func(ctx context.Context) (*BlueprintCollection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintCollection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintCollection sets the old BlueprintCollection of the mutation.
func withBlueprintCollection(node *BlueprintCollection) blueprintcollectionOption {
	return func(m *BlueprintCollectionMutation) {
		m.oldValue = func(context.Context) (*BlueprintCollection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintCollectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintCollectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintCollection entities.
func (m *BlueprintCollectionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintCollectionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintCollectionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintCollection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *BlueprintCollectionMutation) SetBlueprintID(u uint) {
	m.blueprint_id = &u
	m.addblueprint_id = nil
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *BlueprintCollectionMutation) BlueprintID() (r uint, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the BlueprintCollection entity.
// If the BlueprintCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintCollectionMutation) OldBlueprintID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (m *BlueprintCollectionMutation) AddBlueprintID(u int) {
	if m.addblueprint_id != nil {
		*m.addblueprint_id += u
	} else {
		m.addblueprint_id = &u
	}
}

// AddedBlueprintID returns the value that was added to the "blueprint_id" field in this mutation.
func (m *BlueprintCollectionMutation) AddedBlueprintID() (r int, exists bool) {
	v := m.addblueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *BlueprintCollectionMutation) ResetBlueprintID() {
	m.blueprint_id = nil
	m.addblueprint_id = nil
}

// SetCollectionID sets the "collection_id" field.
func (m *BlueprintCollectionMutation) SetCollectionID(u uint) {
	m.collection_id = &u
	m.addcollection_id = nil
}

// CollectionID returns the value of the "collection_id" field in the mutation.
func (m *BlueprintCollectionMutation) CollectionID() (r uint, exists bool) {
	v := m.collection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionID returns the old "collection_id" field's value of the BlueprintCollection entity.
// If the BlueprintCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintCollectionMutation) OldCollectionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionID: %w", err)
	}
	return oldValue.CollectionID, nil
}

// AddCollectionID adds u to the "collection_id" field.
func (m *BlueprintCollectionMutation) AddCollectionID(u int) {
	if m.addcollection_id != nil {
		*m.addcollection_id += u
	} else {
		m.addcollection_id = &u
	}
}

// AddedCollectionID returns the value that was added to the "collection_id" field in this mutation.
func (m *BlueprintCollectionMutation) AddedCollectionID() (r int, exists bool) {
	v := m.addcollection_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCollectionID resets all changes to the "collection_id" field.
func (m *BlueprintCollectionMutation) ResetCollectionID() {
	m.collection_id = nil
	m.addcollection_id = nil
}

// SetRootCollectionID sets the "root_collection_id" field.
func (m *BlueprintCollectionMutation) SetRootCollectionID(u uint) {
	m.root_collection_id = &u
	m.addroot_collection_id = nil
}

// RootCollectionID returns the value of the "root_collection_id" field in the mutation.
func (m *BlueprintCollectionMutation) RootCollectionID() (r uint, exists bool) {
	v := m.root_collection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCollectionID returns the old "root_collection_id" field's value of the BlueprintCollection entity.
// If the BlueprintCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintCollectionMutation) OldRootCollectionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCollectionID: %w", err)
	}
	return oldValue.RootCollectionID, nil
}

// AddRootCollectionID adds u to the "root_collection_id" field.
func (m *BlueprintCollectionMutation) AddRootCollectionID(u int) {
	if m.addroot_collection_id != nil {
		*m.addroot_collection_id += u
	} else {
		m.addroot_collection_id = &u
	}
}

// AddedRootCollectionID returns the value that was added to the "root_collection_id" field in this mutation.
func (m *BlueprintCollectionMutation) AddedRootCollectionID() (r int, exists bool) {
	v := m.addroot_collection_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetRootCollectionID resets all changes to the "root_collection_id" field.
func (m *BlueprintCollectionMutation) ResetRootCollectionID() {
	m.root_collection_id = nil
	m.addroot_collection_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintCollectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintCollectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlueprintCollection entity.
// If the BlueprintCollection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintCollectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintCollectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlueprintCollectionMutation builder.
func (m *BlueprintCollectionMutation) Where(ps ...predicate.BlueprintCollection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintCollectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintCollectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintCollection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintCollectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintCollectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintCollection).
func (m *BlueprintCollectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintCollectionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.blueprint_id != nil {
		fields = append(fields, blueprintcollection.FieldBlueprintID)
	}
	if m.collection_id != nil {
		fields = append(fields, blueprintcollection.FieldCollectionID)
	}
	if m.root_collection_id != nil {
		fields = append(fields, blueprintcollection.FieldRootCollectionID)
	}
	if m.created_at != nil {
		fields = append(fields, blueprintcollection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintCollectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		return m.BlueprintID()
	case blueprintcollection.FieldCollectionID:
		return m.CollectionID()
	case blueprintcollection.FieldRootCollectionID:
		return m.RootCollectionID()
	case blueprintcollection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintCollectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case blueprintcollection.FieldCollectionID:
		return m.OldCollectionID(ctx)
	case blueprintcollection.FieldRootCollectionID:
		return m.OldRootCollectionID(ctx)
	case blueprintcollection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintCollection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintCollectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case blueprintcollection.FieldCollectionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionID(v)
		return nil
	case blueprintcollection.FieldRootCollectionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCollectionID(v)
		return nil
	case blueprintcollection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintCollection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintCollectionMutation) AddedFields() []string {
	var fields []string
	if m.addblueprint_id != nil {
		fields = append(fields, blueprintcollection.FieldBlueprintID)
	}
	if m.addcollection_id != nil {
		fields = append(fields, blueprintcollection.FieldCollectionID)
	}
	if m.addroot_collection_id != nil {
		fields = append(fields, blueprintcollection.FieldRootCollectionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintCollectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		return m.AddedBlueprintID()
	case blueprintcollection.FieldCollectionID:
		return m.AddedCollectionID()
	case blueprintcollection.FieldRootCollectionID:
		return m.AddedRootCollectionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintCollectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlueprintID(v)
		return nil
	case blueprintcollection.FieldCollectionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCollectionID(v)
		return nil
	case blueprintcollection.FieldRootCollectionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRootCollectionID(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintCollection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintCollectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintCollectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintCollectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlueprintCollection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintCollectionMutation) ResetField(name string) error {
	switch name {
	case blueprintcollection.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case blueprintcollection.FieldCollectionID:
		m.ResetCollectionID()
		return nil
	case blueprintcollection.FieldRootCollectionID:
		m.ResetRootCollectionID()
		return nil
	case blueprintcollection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlueprintCollection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintCollectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintCollectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintCollectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintCollectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintCollectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintCollectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintCollectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlueprintCollection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintCollectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlueprintCollection edge %s", name)
}

// BlueprintLikeMutation represents an operation that mutates the BlueprintLike nodes in the graph.
type BlueprintLikeMutation struct {
	config
	op              Op
	typ             string
	id              *uint
	blueprint_id    *uint
	addblueprint_id *int
	user_id         *uint
	adduser_id      *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*BlueprintLike, error)
	predicates      []predicate.BlueprintLike
}

var _ ent.Mutation = (*BlueprintLikeMutation)(nil)

// blueprintlikeOption allows management of the mutation configuration using functional options.
type blueprintlikeOption func(*BlueprintLikeMutation)

// newBlueprintLikeMutation creates new mutation for the BlueprintLike entity.
func newBlueprintLikeMutation(c config, op Op, opts ...blueprintlikeOption) *BlueprintLikeMutation {
	m := &BlueprintLikeMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintLike,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintLikeID sets the ID field of the mutation.
func withBlueprintLikeID(id uint) blueprintlikeOption {
	return func(m *BlueprintLikeMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintLike
		)
		m.oldValue = func(ctx context.Context) (*BlueprintLike, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintLike.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintLike sets the old BlueprintLike of the mutation.
func withBlueprintLike(node *BlueprintLike) blueprintlikeOption {
	return func(m *BlueprintLikeMutation) {
		m.oldValue = func(context.Context) (*BlueprintLike, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintLikeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintLikeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintLike entities.
func (m *BlueprintLikeMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintLikeMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintLikeMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintLike.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *BlueprintLikeMutation) SetBlueprintID(u uint) {
	m.blueprint_id = &u
	m.addblueprint_id = nil
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *BlueprintLikeMutation) BlueprintID() (r uint, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the BlueprintLike entity.
// If the BlueprintLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintLikeMutation) OldBlueprintID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (m *BlueprintLikeMutation) AddBlueprintID(u int) {
	if m.addblueprint_id != nil {
		*m.addblueprint_id += u
	} else {
		m.addblueprint_id = &u
	}
}

// AddedBlueprintID returns the value that was added to the "blueprint_id" field in this mutation.
func (m *BlueprintLikeMutation) AddedBlueprintID() (r int, exists bool) {
	v := m.addblueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *BlueprintLikeMutation) ResetBlueprintID() {
	m.blueprint_id = nil
	m.addblueprint_id = nil
}

// SetUserID sets the "user_id" field.
func (m *BlueprintLikeMutation) SetUserID(u uint) {
	m.user_id = &u
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BlueprintLikeMutation) UserID() (r uint, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BlueprintLike entity.
// If the BlueprintLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintLikeMutation) OldUserID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds u to the "user_id" field.
func (m *BlueprintLikeMutation) AddUserID(u int) {
	if m.adduser_id != nil {
		*m.adduser_id += u
	} else {
		m.adduser_id = &u
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *BlueprintLikeMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BlueprintLikeMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintLikeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintLikeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlueprintLike entity.
// If the BlueprintLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintLikeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlueprintLikeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlueprintLikeMutation builder.
func (m *BlueprintLikeMutation) Where(ps ...predicate.BlueprintLike) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintLikeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintLikeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintLike, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintLikeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintLikeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintLike).
func (m *BlueprintLikeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintLikeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.blueprint_id != nil {
		fields = append(fields, blueprintlike.FieldBlueprintID)
	}
	if m.user_id != nil {
		fields = append(fields, blueprintlike.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, blueprintlike.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintLikeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintlike.FieldBlueprintID:
		return m.BlueprintID()
	case blueprintlike.FieldUserID:
		return m.UserID()
	case blueprintlike.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintLikeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintlike.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case blueprintlike.FieldUserID:
		return m.OldUserID(ctx)
	case blueprintlike.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintLike field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintLikeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintlike.FieldBlueprintID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case blueprintlike.FieldUserID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case blueprintlike.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintLike field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintLikeMutation) AddedFields() []string {
	var fields []string
	if m.addblueprint_id != nil {
		fields = append(fields, blueprintlike.FieldBlueprintID)
	}
	if m.adduser_id != nil {
		fields = append(fields, blueprintlike.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintLikeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintlike.FieldBlueprintID:
		return m.AddedBlueprintID()
	case blueprintlike.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintLikeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintlike.FieldBlueprintID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlueprintID(v)
		return nil
	case blueprintlike.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintLike numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintLikeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintLikeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintLikeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlueprintLike nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintLikeMutation) ResetField(name string) error {
	switch name {
	case blueprintlike.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case blueprintlike.FieldUserID:
		m.ResetUserID()
		return nil
	case blueprintlike.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlueprintLike field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintLikeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintLikeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintLikeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintLikeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintLikeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintLikeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintLikeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlueprintLike unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintLikeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlueprintLike edge %s", name)
}

// BlueprintProductMutation represents an operation that mutates the BlueprintProduct nodes in the graph.
type BlueprintProductMutation struct {
	config
	op              Op
	typ             string
	id              *uint
	blueprint_id    *uint
	addblueprint_id *int
	item_id         *int
	additem_id      *int
	count           *int
	addcount        *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*BlueprintProduct, error)
	predicates      []predicate.BlueprintProduct
}

var _ ent.Mutation = (*BlueprintProductMutation)(nil)

// blueprintproductOption allows management of the mutation configuration using functional options.
type blueprintproductOption func(*BlueprintProductMutation)

// newBlueprintProductMutation creates new mutation for the BlueprintProduct entity.
func newBlueprintProductMutation(c config, op Op, opts ...blueprintproductOption) *BlueprintProductMutation {
	m := &BlueprintProductMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprintProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintProductID sets the ID field of the mutation.
func withBlueprintProductID(id uint) blueprintproductOption {
	return func(m *BlueprintProductMutation) {
		var (
			err   error
			once  sync.Once
			value *BlueprintProduct
		)
		m.oldValue = func(ctx context.Context) (*BlueprintProduct, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlueprintProduct.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprintProduct sets the old BlueprintProduct of the mutation.
func withBlueprintProduct(node *BlueprintProduct) blueprintproductOption {
	return func(m *BlueprintProductMutation) {
		m.oldValue = func(context.Context) (*BlueprintProduct, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlueprintProduct entities.
func (m *BlueprintProductMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintProductMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintProductMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlueprintProduct.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *BlueprintProductMutation) SetBlueprintID(u uint) {
	m.blueprint_id = &u
	m.addblueprint_id = nil
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *BlueprintProductMutation) BlueprintID() (r uint, exists bool) {
	v := m.blueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the BlueprintProduct entity.
// If the BlueprintProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintProductMutation) OldBlueprintID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// AddBlueprintID adds u to the "blueprint_id" field.
func (m *BlueprintProductMutation) AddBlueprintID(u int) {
	if m.addblueprint_id != nil {
		*m.addblueprint_id += u
	} else {
		m.addblueprint_id = &u
	}
}

// AddedBlueprintID returns the value that was added to the "blueprint_id" field in this mutation.
func (m *BlueprintProductMutation) AddedBlueprintID() (r int, exists bool) {
	v := m.addblueprint_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *BlueprintProductMutation) ResetBlueprintID() {
	m.blueprint_id = nil
	m.addblueprint_id = nil
}

// SetItemID sets the "item_id" field.
func (m *BlueprintProductMutation) SetItemID(i int) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *BlueprintProductMutation) ItemID() (r int, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the BlueprintProduct entity.
// If the BlueprintProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintProductMutation) OldItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *BlueprintProductMutation) AddItemID(i int) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *BlueprintProductMutation) AddedItemID() (r int, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemID resets all changes to the "item_id" field.
func (m *BlueprintProductMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
}

// SetCount sets the "count" field.
func (m *BlueprintProductMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *BlueprintProductMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the BlueprintProduct entity.
// If the BlueprintProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintProductMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *BlueprintProductMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *BlueprintProductMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *BlueprintProductMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// Where appends a list predicates to the BlueprintProductMutation builder.
func (m *BlueprintProductMutation) Where(ps ...predicate.BlueprintProduct) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlueprintProduct, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlueprintProduct).
func (m *BlueprintProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintProductMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.blueprint_id != nil {
		fields = append(fields, blueprintproduct.FieldBlueprintID)
	}
	if m.item_id != nil {
		fields = append(fields, blueprintproduct.FieldItemID)
	}
	if m.count != nil {
		fields = append(fields, blueprintproduct.FieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		return m.BlueprintID()
	case blueprintproduct.FieldItemID:
		return m.ItemID()
	case blueprintproduct.FieldCount:
		return m.Count()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case blueprintproduct.FieldItemID:
		return m.OldItemID(ctx)
	case blueprintproduct.FieldCount:
		return m.OldCount(ctx)
	}
	return nil, fmt.Errorf("unknown BlueprintProduct field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case blueprintproduct.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case blueprintproduct.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintProduct field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintProductMutation) AddedFields() []string {
	var fields []string
	if m.addblueprint_id != nil {
		fields = append(fields, blueprintproduct.FieldBlueprintID)
	}
	if m.additem_id != nil {
		fields = append(fields, blueprintproduct.FieldItemID)
	}
	if m.addcount != nil {
		fields = append(fields, blueprintproduct.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintProductMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		return m.AddedBlueprintID()
	case blueprintproduct.FieldItemID:
		return m.AddedItemID()
	case blueprintproduct.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBlueprintID(v)
		return nil
	case blueprintproduct.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	case blueprintproduct.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown BlueprintProduct numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintProductMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintProductMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlueprintProduct nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintProductMutation) ResetField(name string) error {
	switch name {
	case blueprintproduct.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case blueprintproduct.FieldItemID:
		m.ResetItemID()
		return nil
	case blueprintproduct.FieldCount:
		m.ResetCount()
		return nil
	}
	return fmt.Errorf("unknown BlueprintProduct field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintProductMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintProductMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintProductMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintProductMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlueprintProduct unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintProductMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlueprintProduct edge %s", name)
}

// CollectionMutation represents an operation that mutates the Collection nodes in the graph.
type CollectionMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	deleted_at    *time.Time
	owner_id      *uint
	addowner_id   *int
	parent_id     *uint
	addparent_id  *int
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	description   *string
	public        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Collection, error)
	predicates    []predicate.Collection
}

var _ ent.Mutation = (*CollectionMutation)(nil)

// collectionOption allows management of the mutation configuration using functional options.
type collectionOption func(*CollectionMutation)

// newCollectionMutation creates new mutation for the Collection entity.
func newCollectionMutation(c config, op Op, opts ...collectionOption) *CollectionMutation {
	m := &CollectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCollection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionID sets the ID field of the mutation.
func withCollectionID(id uint) collectionOption {
	return func(m *CollectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Collection
		)
		m.oldValue = func(ctx context.Context) (*Collection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Collection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollection sets the old Collection of the mutation.
func withCollection(node *Collection) collectionOption {
	return func(m *CollectionMutation) {
		m.oldValue = func(context.Context) (*Collection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Collection entities.
func (m *CollectionMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Collection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CollectionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CollectionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CollectionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[collection.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CollectionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[collection.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CollectionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, collection.FieldDeletedAt)
}

// SetOwnerID sets the "owner_id" field.
func (m *CollectionMutation) SetOwnerID(u uint) {
	m.owner_id = &u
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CollectionMutation) OwnerID() (r uint, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldOwnerID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds u to the "owner_id" field.
func (m *CollectionMutation) AddOwnerID(u int) {
	if m.addowner_id != nil {
		*m.addowner_id += u
	} else {
		m.addowner_id = &u
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *CollectionMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CollectionMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *CollectionMutation) SetParentID(u uint) {
	m.parent_id = &u
	m.addparent_id = nil
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *CollectionMutation) ParentID() (r uint, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldParentID(ctx context.Context) (v *uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// AddParentID adds u to the "parent_id" field.
func (m *CollectionMutation) AddParentID(u int) {
	if m.addparent_id != nil {
		*m.addparent_id += u
	} else {
		m.addparent_id = &u
	}
}

// AddedParentID returns the value that was added to the "parent_id" field in this mutation.
func (m *CollectionMutation) AddedParentID() (r int, exists bool) {
	v := m.addparent_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearParentID clears the value of the "parent_id" field.
func (m *CollectionMutation) ClearParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	m.clearedFields[collection.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *CollectionMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[collection.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *CollectionMutation) ResetParentID() {
	m.parent_id = nil
	m.addparent_id = nil
	delete(m.clearedFields, collection.FieldParentID)
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CollectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CollectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CollectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *CollectionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CollectionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CollectionMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *CollectionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CollectionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CollectionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[collection.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CollectionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[collection.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CollectionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, collection.FieldDescription)
}

// SetPublic sets the "public" field.
func (m *CollectionMutation) SetPublic(b bool) {
	m.public = &b
}

// Public returns the value of the "public" field in the mutation.
func (m *CollectionMutation) Public() (r bool, exists bool) {
	v := m.public
	if v == nil {
		return
	}
	return *v, true
}

// OldPublic returns the old "public" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldPublic(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublic: %w", err)
	}
	return oldValue.Public, nil
}

// ResetPublic resets all changes to the "public" field.
func (m *CollectionMutation) ResetPublic() {
	m.public = nil
}

// Where appends a list predicates to the CollectionMutation builder.
func (m *CollectionMutation) Where(ps ...predicate.Collection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Collection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Collection).
func (m *CollectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.deleted_at != nil {
		fields = append(fields, collection.FieldDeletedAt)
	}
	if m.owner_id != nil {
		fields = append(fields, collection.FieldOwnerID)
	}
	if m.parent_id != nil {
		fields = append(fields, collection.FieldParentID)
	}
	if m.created_at != nil {
		fields = append(fields, collection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, collection.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, collection.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, collection.FieldDescription)
	}
	if m.public != nil {
		fields = append(fields, collection.FieldPublic)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collection.FieldDeletedAt:
		return m.DeletedAt()
	case collection.FieldOwnerID:
		return m.OwnerID()
	case collection.FieldParentID:
		return m.ParentID()
	case collection.FieldCreatedAt:
		return m.CreatedAt()
	case collection.FieldUpdatedAt:
		return m.UpdatedAt()
	case collection.FieldTitle:
		return m.Title()
	case collection.FieldDescription:
		return m.Description()
	case collection.FieldPublic:
		return m.Public()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collection.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case collection.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case collection.FieldParentID:
		return m.OldParentID(ctx)
	case collection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case collection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case collection.FieldTitle:
		return m.OldTitle(ctx)
	case collection.FieldDescription:
		return m.OldDescription(ctx)
	case collection.FieldPublic:
		return m.OldPublic(ctx)
	}
	return nil, fmt.Errorf("unknown Collection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collection.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case collection.FieldOwnerID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case collection.FieldParentID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case collection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case collection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case collection.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case collection.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case collection.FieldPublic:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublic(v)
		return nil
	}
	return fmt.Errorf("unknown Collection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, collection.FieldOwnerID)
	}
	if m.addparent_id != nil {
		fields = append(fields, collection.FieldParentID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collection.FieldOwnerID:
		return m.AddedOwnerID()
	case collection.FieldParentID:
		return m.AddedParentID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collection.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	case collection.FieldParentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParentID(v)
		return nil
	}
	return fmt.Errorf("unknown Collection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collection.FieldDeletedAt) {
		fields = append(fields, collection.FieldDeletedAt)
	}
	if m.FieldCleared(collection.FieldParentID) {
		fields = append(fields, collection.FieldParentID)
	}
	if m.FieldCleared(collection.FieldDescription) {
		fields = append(fields, collection.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionMutation) ClearField(name string) error {
	switch name {
	case collection.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case collection.FieldParentID:
		m.ClearParentID()
		return nil
	case collection.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Collection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionMutation) ResetField(name string) error {
	switch name {
	case collection.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case collection.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case collection.FieldParentID:
		m.ResetParentID()
		return nil
	case collection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case collection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case collection.FieldTitle:
		m.ResetTitle()
		return nil
	case collection.FieldDescription:
		m.ResetDescription()
		return nil
	case collection.FieldPublic:
		m.ResetPublic()
		return nil
	}
	return fmt.Errorf("unknown Collection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Collection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Collection edge %s", name)
}

// CollectionLikeMutation represents an operation that mutates the CollectionLike nodes in the graph.
type CollectionLikeMutation struct {
	config
	op               Op
	typ              string
	id               *uint
	collection_id    *uint
	addcollection_id *int
	user_id          *uint
	adduser_id       *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CollectionLike, error)
	predicates       []predicate.CollectionLike
}

var _ ent.Mutation = (*CollectionLikeMutation)(nil)

// collectionlikeOption allows management of the mutation configuration using functional options.
type collectionlikeOption func(*CollectionLikeMutation)

// newCollectionLikeMutation creates new mutation for the CollectionLike entity.
func newCollectionLikeMutation(c config, op Op, opts ...collectionlikeOption) *CollectionLikeMutation {
	m := &CollectionLikeMutation{
		config:        c,
		op:            op,
		typ:           TypeCollectionLike,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionLikeID sets the ID field of the mutation.
func withCollectionLikeID(id uint) collectionlikeOption {
	return func(m *CollectionLikeMutation) {
		var (
			err   error
			once  sync.Once
			value *CollectionLike
		)
		m.oldValue = func(ctx context.Context) (*CollectionLike, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollectionLike.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollectionLike sets the old CollectionLike of the mutation.
func withCollectionLike(node *CollectionLike) collectionlikeOption {
	return func(m *CollectionLikeMutation) {
		m.oldValue = func(context.Context) (*CollectionLike, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionLikeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionLikeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollectionLike entities.
func (m *CollectionLikeMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionLikeMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionLikeMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollectionLike.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCollectionID sets the "collection_id" field.
func (m *CollectionLikeMutation) SetCollectionID(u uint) {
	m.collection_id = &u
	m.addcollection_id = nil
}

// CollectionID returns the value of the "collection_id" field in the mutation.
func (m *CollectionLikeMutation) CollectionID() (r uint, exists bool) {
	v := m.collection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionID returns the old "collection_id" field's value of the CollectionLike entity.
// If the CollectionLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLikeMutation) OldCollectionID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionID: %w", err)
	}
	return oldValue.CollectionID, nil
}

// AddCollectionID adds u to the "collection_id" field.
func (m *CollectionLikeMutation) AddCollectionID(u int) {
	if m.addcollection_id != nil {
		*m.addcollection_id += u
	} else {
		m.addcollection_id = &u
	}
}

// AddedCollectionID returns the value that was added to the "collection_id" field in this mutation.
func (m *CollectionLikeMutation) AddedCollectionID() (r int, exists bool) {
	v := m.addcollection_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCollectionID resets all changes to the "collection_id" field.
func (m *CollectionLikeMutation) ResetCollectionID() {
	m.collection_id = nil
	m.addcollection_id = nil
}

// SetUserID sets the "user_id" field.
func (m *CollectionLikeMutation) SetUserID(u uint) {
	m.user_id = &u
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CollectionLikeMutation) UserID() (r uint, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CollectionLike entity.
// If the CollectionLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLikeMutation) OldUserID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds u to the "user_id" field.
func (m *CollectionLikeMutation) AddUserID(u int) {
	if m.adduser_id != nil {
		*m.adduser_id += u
	} else {
		m.adduser_id = &u
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *CollectionLikeMutation) AddedUserID() (r int, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CollectionLikeMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectionLikeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectionLikeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CollectionLike entity.
// If the CollectionLike object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionLikeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CollectionLikeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CollectionLikeMutation builder.
func (m *CollectionLikeMutation) Where(ps ...predicate.CollectionLike) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionLikeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionLikeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollectionLike, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionLikeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionLikeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollectionLike).
func (m *CollectionLikeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionLikeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.collection_id != nil {
		fields = append(fields, collectionlike.FieldCollectionID)
	}
	if m.user_id != nil {
		fields = append(fields, collectionlike.FieldUserID)
	}
	if m.created_at != nil {
		fields = append(fields, collectionlike.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionLikeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collectionlike.FieldCollectionID:
		return m.CollectionID()
	case collectionlike.FieldUserID:
		return m.UserID()
	case collectionlike.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionLikeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collectionlike.FieldCollectionID:
		return m.OldCollectionID(ctx)
	case collectionlike.FieldUserID:
		return m.OldUserID(ctx)
	case collectionlike.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CollectionLike field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionLikeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collectionlike.FieldCollectionID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionID(v)
		return nil
	case collectionlike.FieldUserID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case collectionlike.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionLike field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionLikeMutation) AddedFields() []string {
	var fields []string
	if m.addcollection_id != nil {
		fields = append(fields, collectionlike.FieldCollectionID)
	}
	if m.adduser_id != nil {
		fields = append(fields, collectionlike.FieldUserID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionLikeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collectionlike.FieldCollectionID:
		return m.AddedCollectionID()
	case collectionlike.FieldUserID:
		return m.AddedUserID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionLikeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collectionlike.FieldCollectionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCollectionID(v)
		return nil
	case collectionlike.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionLike numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionLikeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionLikeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionLikeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CollectionLike nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionLikeMutation) ResetField(name string) error {
	switch name {
	case collectionlike.FieldCollectionID:
		m.ResetCollectionID()
		return nil
	case collectionlike.FieldUserID:
		m.ResetUserID()
		return nil
	case collectionlike.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CollectionLike field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionLikeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionLikeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionLikeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionLikeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionLikeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionLikeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionLikeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CollectionLike unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionLikeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CollectionLike edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	nickname      *string
	email         *string
	avatar        *string
	password_hash *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uint) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetNickname sets the "nickname" field.
func (m *UserMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *UserMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ClearNickname clears the value of the "nickname" field.
func (m *UserMutation) ClearNickname() {
	m.nickname = nil
	m.clearedFields[user.FieldNickname] = struct{}{}
}

// NicknameCleared returns if the "nickname" field was cleared in this mutation.
func (m *UserMutation) NicknameCleared() bool {
	_, ok := m.clearedFields[user.FieldNickname]
	return ok
}

// ResetNickname resets all changes to the "nickname" field.
func (m *UserMutation) ResetNickname() {
	m.nickname = nil
	delete(m.clearedFields, user.FieldNickname)
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetAvatar sets the "avatar" field.
func (m *UserMutation) SetAvatar(s string) {
	m.avatar = &s
}

// Avatar returns the value of the "avatar" field in the mutation.
func (m *UserMutation) Avatar() (r string, exists bool) {
	v := m.avatar
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatar returns the old "avatar" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAvatar(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatar: %w", err)
	}
	return oldValue.Avatar, nil
}

// ClearAvatar clears the value of the "avatar" field.
func (m *UserMutation) ClearAvatar() {
	m.avatar = nil
	m.clearedFields[user.FieldAvatar] = struct{}{}
}

// AvatarCleared returns if the "avatar" field was cleared in this mutation.
func (m *UserMutation) AvatarCleared() bool {
	_, ok := m.clearedFields[user.FieldAvatar]
	return ok
}

// ResetAvatar resets all changes to the "avatar" field.
func (m *UserMutation) ResetAvatar() {
	m.avatar = nil
	delete(m.clearedFields, user.FieldAvatar)
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.nickname != nil {
		fields = append(fields, user.FieldNickname)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.avatar != nil {
		fields = append(fields, user.FieldAvatar)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldNickname:
		return m.Nickname()
	case user.FieldEmail:
		return m.Email()
	case user.FieldAvatar:
		return m.Avatar()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldNickname:
		return m.OldNickname(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldAvatar:
		return m.OldAvatar(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldAvatar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatar(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldNickname) {
		fields = append(fields, user.FieldNickname)
	}
	if m.FieldCleared(user.FieldAvatar) {
		fields = append(fields, user.FieldAvatar)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldNickname:
		m.ClearNickname()
		return nil
	case user.FieldAvatar:
		m.ClearAvatar()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldNickname:
		m.ResetNickname()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldAvatar:
		m.ResetAvatar()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
