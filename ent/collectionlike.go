// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/collectionlike"
)

// 收藏夹点赞记录表
type CollectionLike struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 收藏夹ID
	CollectionID uint `json:"collection_id,omitempty"`
	// 点赞用户ID
	UserID uint `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CollectionLike) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case collectionlike.FieldID, collectionlike.FieldCollectionID, collectionlike.FieldUserID:
			values[i] = new(sql.NullInt64)
		case collectionlike.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CollectionLike fields.
func (cl *CollectionLike) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case collectionlike.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cl.ID = uint(value.Int64)
		case collectionlike.FieldCollectionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field collection_id", values[i])
			} else if value.Valid {
				cl.CollectionID = uint(value.Int64)
			}
		case collectionlike.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				cl.UserID = uint(value.Int64)
			}
		case collectionlike.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cl.CreatedAt = value.Time
			}
		default:
			cl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CollectionLike.
// This includes values selected through modifiers, order, etc.
func (cl *CollectionLike) Value(name string) (ent.Value, error) {
	return cl.selectValues.Get(name)
}

// Update returns a builder for updating this CollectionLike.
// Note that you need to call CollectionLike.Unwrap() before calling this method if this CollectionLike
// was returned from a transaction, and the transaction was committed or rolled back.
func (cl *CollectionLike) Update() *CollectionLikeUpdateOne {
	return NewCollectionLikeClient(cl.config).UpdateOne(cl)
}

// Unwrap unwraps the CollectionLike entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cl *CollectionLike) Unwrap() *CollectionLike {
	_tx, ok := cl.config.driver.(*txDriver)
	if !ok {
		panic("ent: CollectionLike is not a transactional entity")
	}
	cl.config.driver = _tx.drv
	return cl
}

// String implements the fmt.Stringer.
func (cl *CollectionLike) String() string {
	var builder strings.Builder
	builder.WriteString("CollectionLike(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cl.ID))
	builder.WriteString("collection_id=")
	builder.WriteString(fmt.Sprintf("%v", cl.CollectionID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", cl.UserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cl.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CollectionLikes is a parsable slice of CollectionLike.
type CollectionLikes []*CollectionLike
