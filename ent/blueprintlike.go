// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprintlike"
)

// 蓝图点赞记录表
type BlueprintLike struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 蓝图ID
	BlueprintID uint `json:"blueprint_id,omitempty"`
	// 点赞用户ID
	UserID uint `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintLike) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintlike.FieldID, blueprintlike.FieldBlueprintID, blueprintlike.FieldUserID:
			values[i] = new(sql.NullInt64)
		case blueprintlike.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintLike fields.
func (bl *BlueprintLike) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintlike.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			bl.ID = uint(value.Int64)
		case blueprintlike.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				bl.BlueprintID = uint(value.Int64)
			}
		case blueprintlike.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				bl.UserID = uint(value.Int64)
			}
		case blueprintlike.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				bl.CreatedAt = value.Time
			}
		default:
			bl.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintLike.
// This includes values selected through modifiers, order, etc.
func (bl *BlueprintLike) Value(name string) (ent.Value, error) {
	return bl.selectValues.Get(name)
}

// Update returns a builder for updating this BlueprintLike.
// Note that you need to call BlueprintLike.Unwrap() before calling this method if this BlueprintLike
// was returned from a transaction, and the transaction was committed or rolled back.
func (bl *BlueprintLike) Update() *BlueprintLikeUpdateOne {
	return NewBlueprintLikeClient(bl.config).UpdateOne(bl)
}

// Unwrap unwraps the BlueprintLike entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bl *BlueprintLike) Unwrap() *BlueprintLike {
	_tx, ok := bl.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintLike is not a transactional entity")
	}
	bl.config.driver = _tx.drv
	return bl
}

// String implements the fmt.Stringer.
func (bl *BlueprintLike) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintLike(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bl.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(fmt.Sprintf("%v", bl.BlueprintID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", bl.UserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(bl.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintLikes is a parsable slice of BlueprintLike.
type BlueprintLikes []*BlueprintLike
