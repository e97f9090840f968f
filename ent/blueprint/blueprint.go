// Code generated by ent, DO NOT EDIT.

package blueprint

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the blueprint type in the database.
	Label = "blueprint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDescriptionHTML holds the string denoting the description_html field in the database.
	FieldDescriptionHTML = "description_html"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldPictures holds the string denoting the pictures field in the database.
	FieldPictures = "pictures"
	// FieldTagsID holds the string denoting the tags_id field in the database.
	FieldTagsID = "tags_id"
	// FieldCopyCount holds the string denoting the copy_count field in the database.
	FieldCopyCount = "copy_count"
	// FieldIconLayout holds the string denoting the icon_layout field in the database.
	FieldIconLayout = "icon_layout"
	// FieldLikeCount holds the string denoting the like_count field in the database.
	FieldLikeCount = "like_count"
	// FieldCollectionCount holds the string denoting the collection_count field in the database.
	FieldCollectionCount = "collection_count"
	// Table holds the table name of the blueprint in the database.
	Table = "blueprints"
)

// Columns holds all SQL columns for blueprint fields.
var Columns = []string{
	FieldID,
	FieldDeletedAt,
	FieldOwnerID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldDescription,
	FieldDescriptionHTML,
	FieldPayload,
	FieldPictures,
	FieldTagsID,
	FieldCopyCount,
	FieldIconLayout,
	FieldLikeCount,
	FieldCollectionCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Note that the variables below are initialized by the runtime
// package on the initialization of the application. Therefore,
// it should be imported in the main as follows:
//
//	import _ "github.com/dsp2b/dsp2b/ent/runtime"
var (
	Hooks [1]ent.Hook
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	PayloadValidator func(string) error
	// DefaultCopyCount holds the default value on creation for the "copy_count" field.
	DefaultCopyCount int
	// CopyCountValidator is a validator for the "copy_count" field. It is called by the builders before save.
	CopyCountValidator func(int) error
	// DefaultIconLayout holds the default value on creation for the "icon_layout" field.
	DefaultIconLayout int
	// DefaultLikeCount holds the default value on creation for the "like_count" field.
	DefaultLikeCount int
	// LikeCountValidator is a validator for the "like_count" field. It is called by the builders before save.
	LikeCountValidator func(int) error
	// DefaultCollectionCount holds the default value on creation for the "collection_count" field.
	DefaultCollectionCount int
	// CollectionCountValidator is a validator for the "collection_count" field. It is called by the builders before save.
	CollectionCountValidator func(int) error
)

// OrderOption defines the ordering options for the Blueprint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDescriptionHTML orders the results by the description_html field.
func ByDescriptionHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionHTML, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByCopyCount orders the results by the copy_count field.
func ByCopyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCopyCount, opts...).ToFunc()
}

// ByIconLayout orders the results by the icon_layout field.
func ByIconLayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIconLayout, opts...).ToFunc()
}

// ByLikeCount orders the results by the like_count field.
func ByLikeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLikeCount, opts...).ToFunc()
}

// ByCollectionCount orders the results by the collection_count field.
func ByCollectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectionCount, opts...).ToFunc()
}
