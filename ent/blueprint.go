// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dsp2b/dsp2b/ent/blueprint"
)

// 蓝图表
type Blueprint struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// 蓝图作者ID，关联到users表
	OwnerID uint `json:"owner_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 蓝图标题
	Title string `json:"title,omitempty"`
	// 蓝图描述 Markdown 原文
	Description string `json:"description,omitempty"`
	// 由 description 解析和净化后的 HTML
	DescriptionHTML string `json:"description_html,omitempty"`
	// 序列化蓝图串，由外部解析服务产出/消费，本服务视为不透明
	Payload string `json:"payload,omitempty"`
	// 图片引用列表，首张作为缩略图
	Pictures []string `json:"pictures,omitempty"`
	// 标签物品ID列表，引用静态物品目录
	TagsID []int `json:"tags_id,omitempty"`
	// 复制次数
	CopyCount int `json:"copy_count,omitempty"`
	// 图标布局描述符
	IconLayout int `json:"icon_layout,omitempty"`
	// 冗余点赞计数，由定时任务从点赞表重算
	LikeCount int `json:"like_count,omitempty"`
	// 冗余收藏计数，由定时任务从成员关系表重算
	CollectionCount int `json:"collection_count,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Blueprint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blueprint.FieldPictures, blueprint.FieldTagsID:
			values[i] = new([]byte)
		case blueprint.FieldID, blueprint.FieldOwnerID, blueprint.FieldCopyCount, blueprint.FieldIconLayout, blueprint.FieldLikeCount, blueprint.FieldCollectionCount:
			values[i] = new(sql.NullInt64)
		case blueprint.FieldTitle, blueprint.FieldDescription, blueprint.FieldDescriptionHTML, blueprint.FieldPayload:
			values[i] = new(sql.NullString)
		case blueprint.FieldDeletedAt, blueprint.FieldCreatedAt, blueprint.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Blueprint fields.
func (b *Blueprint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blueprint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			b.ID = uint(value.Int64)
		case blueprint.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				b.DeletedAt = new(time.Time)
				*b.DeletedAt = value.Time
			}
		case blueprint.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				b.OwnerID = uint(value.Int64)
			}
		case blueprint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				b.CreatedAt = value.Time
			}
		case blueprint.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				b.UpdatedAt = value.Time
			}
		case blueprint.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				b.Title = value.String
			}
		case blueprint.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				b.Description = value.String
			}
		case blueprint.FieldDescriptionHTML:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_html", values[i])
			} else if value.Valid {
				b.DescriptionHTML = value.String
			}
		case blueprint.FieldPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value.Valid {
				b.Payload = value.String
			}
		case blueprint.FieldPictures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pictures", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &b.Pictures); err != nil {
					return fmt.Errorf("unmarshal field pictures: %w", err)
				}
			}
		case blueprint.FieldTagsID:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags_id", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &b.TagsID); err != nil {
					return fmt.Errorf("unmarshal field tags_id: %w", err)
				}
			}
		case blueprint.FieldCopyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field copy_count", values[i])
			} else if value.Valid {
				b.CopyCount = int(value.Int64)
			}
		case blueprint.FieldIconLayout:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field icon_layout", values[i])
			} else if value.Valid {
				b.IconLayout = int(value.Int64)
			}
		case blueprint.FieldLikeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field like_count", values[i])
			} else if value.Valid {
				b.LikeCount = int(value.Int64)
			}
		case blueprint.FieldCollectionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field collection_count", values[i])
			} else if value.Valid {
				b.CollectionCount = int(value.Int64)
			}
		default:
			b.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Blueprint.
// This includes values selected through modifiers, order, etc.
func (b *Blueprint) Value(name string) (ent.Value, error) {
	return b.selectValues.Get(name)
}

// Update returns a builder for updating this Blueprint.
// Note that you need to call Blueprint.Unwrap() before calling this method if this Blueprint
// was returned from a transaction, and the transaction was committed or rolled back.
func (b *Blueprint) Update() *BlueprintUpdateOne {
	return NewBlueprintClient(b.config).UpdateOne(b)
}

// Unwrap unwraps the Blueprint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (b *Blueprint) Unwrap() *Blueprint {
	_tx, ok := b.config.driver.(*txDriver)
	if !ok {
		panic("ent: Blueprint is not a transactional entity")
	}
	b.config.driver = _tx.drv
	return b
}

// String implements the fmt.Stringer.
func (b *Blueprint) String() string {
	var builder strings.Builder
	builder.WriteString("Blueprint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", b.ID))
	if v := b.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", b.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(b.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(b.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(b.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(b.Description)
	builder.WriteString(", ")
	builder.WriteString("description_html=")
	builder.WriteString(b.DescriptionHTML)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(b.Payload)
	builder.WriteString(", ")
	builder.WriteString("pictures=")
	builder.WriteString(fmt.Sprintf("%v", b.Pictures))
	builder.WriteString(", ")
	builder.WriteString("tags_id=")
	builder.WriteString(fmt.Sprintf("%v", b.TagsID))
	builder.WriteString(", ")
	builder.WriteString("copy_count=")
	builder.WriteString(fmt.Sprintf("%v", b.CopyCount))
	builder.WriteString(", ")
	builder.WriteString("icon_layout=")
	builder.WriteString(fmt.Sprintf("%v", b.IconLayout))
	builder.WriteString(", ")
	builder.WriteString("like_count=")
	builder.WriteString(fmt.Sprintf("%v", b.LikeCount))
	builder.WriteString(", ")
	builder.WriteString("collection_count=")
	builder.WriteString(fmt.Sprintf("%v", b.CollectionCount))
	builder.WriteByte(')')
	return builder.String()
}

// Blueprints is a parsable slice of Blueprint.
type Blueprints []*Blueprint
