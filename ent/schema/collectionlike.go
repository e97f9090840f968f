// ent/schema/collectionlike.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollectionLike holds the schema definition for the CollectionLike entity.
type CollectionLike struct {
	ent.Schema
}

// Annotations of the CollectionLike.
func (CollectionLike) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("收藏夹点赞记录表"),
	}
}

// Fields of the CollectionLike.
func (CollectionLike) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("collection_id").Comment("收藏夹ID"),
		field.Uint("user_id").Comment("点赞用户ID"),
		field.Time("created_at").Default(time.Now),
	}
}

// Indexes of the CollectionLike.
func (CollectionLike) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collection_id", "user_id").Unique(),
		index.Fields("collection_id"),
	}
}
