// ent/schema/blueprint.go
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

// Blueprint holds the schema definition for the Blueprint entity.
type Blueprint struct {
	ent.Schema
}

// Annotations of the Blueprint.
func (Blueprint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("蓝图表"),
	}
}

// Mixin of the Blueprint.
func (Blueprint) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
	}
}

// Fields of the Blueprint.
func (Blueprint) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Uint("owner_id").Comment("蓝图作者ID，关联到users表"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now),
		field.String("title").Comment("蓝图标题").NotEmpty(),
		field.Text("description").Comment("蓝图描述 Markdown 原文").Optional(),
		field.Text("description_html").Comment("由 description 解析和净化后的 HTML").Optional(),
		field.Text("payload").Comment("序列化蓝图串，由外部解析服务产出/消费，本服务视为不透明").NotEmpty(),
		field.JSON("pictures", []string{}).Comment("图片引用列表，首张作为缩略图").Optional(),
		field.JSON("tags_id", []int{}).Comment("标签物品ID列表，引用静态物品目录").Optional(),
		field.Int("copy_count").Comment("复制次数").Default(0).NonNegative(),
		field.Int("icon_layout").Comment("图标布局描述符").Default(0),
		field.Int("like_count").Comment("冗余点赞计数，由定时任务从点赞表重算").Default(0).NonNegative(),
		field.Int("collection_count").Comment("冗余收藏计数，由定时任务从成员关系表重算").Default(0).NonNegative(),
	}
}

// Indexes of the Blueprint.
func (Blueprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("created_at"),
		index.Fields("updated_at"),
		index.Fields("copy_count"),
	}
}
