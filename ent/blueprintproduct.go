// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprintproduct"
)

// 蓝图产物表，每行记录蓝图对某物品的每分钟产量。数据来自外部解析服务的解码结果，product 排序与标签筛选预览都由此表驱动
type BlueprintProduct struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 蓝图ID
	BlueprintID uint `json:"blueprint_id,omitempty"`
	// 物品ID，引用静态物品目录
	ItemID int `json:"item_id,omitempty"`
	// 每分钟产量
	Count        int `json:"count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlueprintProduct) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprintproduct.FieldID, blueprintproduct.FieldBlueprintID, blueprintproduct.FieldItemID, blueprintproduct.FieldCount:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlueprintProduct fields.
func (bp *BlueprintProduct) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprintproduct.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			bp.ID = uint(value.Int64)
		case blueprintproduct.FieldBlueprintID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value.Valid {
				bp.BlueprintID = uint(value.Int64)
			}
		case blueprintproduct.FieldItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				bp.ItemID = int(value.Int64)
			}
		case blueprintproduct.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				bp.Count = int(value.Int64)
			}
		default:
			bp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlueprintProduct.
// This includes values selected through modifiers, order, etc.
func (bp *BlueprintProduct) Value(name string) (ent.Value, error) {
	return bp.selectValues.Get(name)
}

// Update returns a builder for updating this BlueprintProduct.
// Note that you need to call BlueprintProduct.Unwrap() before calling this method if this BlueprintProduct
// was returned from a transaction, and the transaction was committed or rolled back.
func (bp *BlueprintProduct) Update() *BlueprintProductUpdateOne {
	return NewBlueprintProductClient(bp.config).UpdateOne(bp)
}

// Unwrap unwraps the BlueprintProduct entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (bp *BlueprintProduct) Unwrap() *BlueprintProduct {
	_tx, ok := bp.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlueprintProduct is not a transactional entity")
	}
	bp.config.driver = _tx.drv
	return bp
}

// String implements the fmt.Stringer.
func (bp *BlueprintProduct) String() string {
	var builder strings.Builder
	builder.WriteString("BlueprintProduct(")
	builder.WriteString(fmt.Sprintf("id=%v, ", bp.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(fmt.Sprintf("%v", bp.BlueprintID))
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", bp.ItemID))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", bp.Count))
	builder.WriteByte(')')
	return builder.String()
}

// BlueprintProducts is a parsable slice of BlueprintProduct.
type BlueprintProducts []*BlueprintProduct
