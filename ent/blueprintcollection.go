// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprintcollection"
)

// 蓝图-收藏夹成员关系表。root_collection_id 是根捷径冗余字段：蓝图加入深层收藏夹时同时记录其根收藏夹，使按祖先收藏夹的查询无需递归联接
type BlueprintCollection struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 蓝图ID
	BlueprintID uint `json:"blueprint_id,omitempty"`
	// 直接所属收藏夹ID
	CollectionID uint `json:"collection_id,omitempty"`
	// 该收藏夹所在树的根收藏夹ID（根捷径）
	RootCollectionID uint `json:"root_collection_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintCollection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintcollection.FieldID, blueprintcollection.FieldBlueprintID, blueprintcollection.FieldCollectionID, blueprintcollection.FieldRootCollectionID:
			values[i] = new(sql.NullInt64)
		case blueprintcollection.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintCollection fields.
func (bc *BlueprintCollection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintcollection.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			bc.ID = uint(value.Int64)
		case blueprintcollection.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				bc.BlueprintID = uint(value.Int64)
			}
		case blueprintcollection.FieldCollectionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field collection_id", values[i])
			} else if value.Valid {
				bc.CollectionID = uint(value.Int64)
			}
		case blueprintcollection.FieldRootCollectionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field root_collection_id", values[i])
			} else if value.Valid {
				bc.RootCollectionID = uint(value.Int64)
			}
		case blueprintcollection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				bc.CreatedAt = value.Time
			}
		default:
			bc.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintCollection.
// This includes values selected through modifiers, order, etc.
func (bc *BlueprintCollection) Value(name string) (ent.Value, error) {
	return bc.selectValues.Get(name)
}

// Update returns a builder for updating this BlueprintCollection.
// Note that you need to call BlueprintCollection.Unwrap() before calling this method if this BlueprintCollection
// was returned from a transaction, and the transaction was committed or rolled back.
func (bc *BlueprintCollection) Update() *BlueprintCollectionUpdateOne {
	return NewBlueprintCollectionClient(bc.config).UpdateOne(bc)
}

// Unwrap unwraps the BlueprintCollection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bc *BlueprintCollection) Unwrap() *BlueprintCollection {
	_tx, ok := bc.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintCollection is not a transactional entity")
	}
	bc.config.driver = _tx.drv
	return bc
}

// String implements the fmt.Stringer.
func (bc *BlueprintCollection) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintCollection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bc.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(fmt.Sprintf("%v", bc.BlueprintID))
	builder.WriteString(", ")
	builder.WriteString("collection_id=")
	builder.WriteString(fmt.Sprintf("%v", bc.CollectionID))
	builder.WriteString(", ")
	builder.WriteString("root_collection_id=")
	builder.WriteString(fmt.Sprintf("%v", bc.RootCollectionID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(bc.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintCollections is a parsable slice of BlueprintCollection.
type BlueprintCollections []*BlueprintCollection
