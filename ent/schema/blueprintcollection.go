// ent/schema/blueprintcollection.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlueprintCollection holds the schema definition for the blueprint
// membership entity.
type BlueprintCollection struct {
	ent.Schema
}

// Annotations of the BlueprintCollection.
func (BlueprintCollection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("蓝图-收藏夹成员关系表。root_collection_id 是根捷径冗余字段：" +
			"蓝图加入深层收藏夹时同时记录其根收藏夹，使按祖先收藏夹的查询无需递归联接"),
	}
}

// Fields of the BlueprintCollection.
func (BlueprintCollection) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("blueprint_id").Comment("蓝图ID"),
		field.Uint("collection_id").Comment("直接所属收藏夹ID"),
		field.Uint("root_collection_id").Comment("该收藏夹所在树的根收藏夹ID（根捷径）"),
		field.Time("created_at").Default(time.Now),
	}
}

// Indexes of the BlueprintCollection.
func (BlueprintCollection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("blueprint_id", "collection_id").Unique(),
		index.Fields("collection_id"),
		index.Fields("root_collection_id"),
	}
}
