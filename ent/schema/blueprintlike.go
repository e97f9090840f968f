// ent/schema/blueprintlike.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintLike holds the schema definition for the BlueprintLike entity.
type BlueprintLike struct {
	ent.Schema
}

// Annotations of the BlueprintLike.
func (BlueprintLike) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("蓝图点赞记录表"),
	}
}

// Fields of the BlueprintLike.
func (BlueprintLike) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("blueprint_id").Comment("蓝图ID"),
		field.Uint("user_id").Comment("点赞用户ID"),
		field.Time("created_at").Default(time.Now),
	}
}

// Indexes of the BlueprintLike.
func (BlueprintLike) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "user_id").Unique(),
		index.Fields("blueprint_id"),
	}
}
