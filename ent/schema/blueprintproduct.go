// ent/schema/blueprintproduct.go
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintProduct holds the schema definition for the BlueprintProduct entity.
type BlueprintProduct struct {
	ent.Schema
}

// Annotations of the BlueprintProduct.
func (BlueprintProduct) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("蓝图产物表，每行记录蓝图对某物品的每分钟产量。" +
			"数据来自外部解析服务的解码结果，product 排序与标签筛选预览都由此表驱动"),
	}
}

// Fields of the BlueprintProduct.
func (BlueprintProduct) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("blueprint_id").Comment("蓝图ID"),
		field.Int("item_id").Comment("物品ID，引用静态物品目录"),
		field.Int("count").Comment("每分钟产量"),
	}
}

// Indexes of the BlueprintProduct.
func (BlueprintProduct) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "item_id").Unique(),
		index.Fields("item_id", "count"),
	}
}
