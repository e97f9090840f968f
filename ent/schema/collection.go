// ent/schema/collection.go
package schema

import (
	"time"

	"github.com/dsp2b/dsp2b/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Collection holds the schema definition for the Collection entity.
type Collection struct {
	ent.Schema
}

// Annotations of the Collection.
func (Collection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("收藏夹表，parent_id 自引用构成层级"),
	}
}

// Mixin of the Collection.
func (Collection) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the Collection.
func (Collection) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("owner_id").Comment("收藏夹所有者ID，关联到users表"),
		field.Uint("parent_id").
			Comment("父收藏夹ID，空表示顶层。只校验 parent != self，不做深层环检测").
			Optional().
			Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now),
		field.String("title").Comment("收藏夹标题").NotEmpty(),
		field.Text("description").Comment("收藏夹描述").Optional(),
		field.Bool("public").Comment("是否公开，私有收藏夹仅所有者可见").Default(true),
	}
}

// Indexes of the Collection.
func (Collection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("parent_id"),
	}
}
