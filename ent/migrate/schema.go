// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlueprintsColumns holds the columns for the "blueprints" table.
	BlueprintsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeUint, Comment: "蓝图作者ID，关联到users表"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Comment: "蓝图标题"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "蓝图描述 Markdown 原文"},
		{Name: "description_html", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "由 description 解析和净化后的 HTML"},
		{Name: "payload", Type: field.TypeString, Size: 2147483647, Comment: "序列化蓝图串，由外部解析服务产出/消费，本服务视为不透明"},
		{Name: "pictures", Type: field.TypeJSON, Nullable: true, Comment: "图片引用列表，首张作为缩略图"},
		{Name: "tags_id", Type: field.TypeJSON, Nullable: true, Comment: "标签物品ID列表，引用静态物品目录"},
		{Name: "copy_count", Type: field.TypeInt, Comment: "复制次数", Default: 0},
		{Name: "icon_layout", Type: field.TypeInt, Comment: "图标布局描述符", Default: 0},
		{Name: "like_count", Type: field.TypeInt, Comment: "冗余点赞计数，由定时任务从点赞表重算", Default: 0},
		{Name: "collection_count", Type: field.TypeInt, Comment: "冗余收藏计数，由定时任务从成员关系表重算", Default: 0},
	}
	// BlueprintsTable holds the schema information for the "blueprints" table.
	BlueprintsTable = &schema.Table{
		Name:       "blueprints",
		Comment:    "蓝图表",
		Columns:    BlueprintsColumns,
		PrimaryKey: []*schema.Column{BlueprintsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprint_owner_id",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[2]},
			},
			{
				Name:    "blueprint_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[3]},
			},
			{
				Name:    "blueprint_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[4]},
			},
			{
				Name:    "blueprint_copy_count",
				Unique:  false,
				Columns: []*schema.Column{BlueprintsColumns[11]},
			},
		},
	}
	// BlueprintCollectionsColumns holds the columns for the "blueprint_collections" table.
	BlueprintCollectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "blueprint_id", Type: field.TypeUint, Comment: "蓝图ID"},
		{Name: "collection_id", Type: field.TypeUint, Comment: "直接所属收藏夹ID"},
		{Name: "root_collection_id", Type: field.TypeUint, Comment: "该收藏夹所在树的根收藏夹ID（根捷径）"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlueprintCollectionsTable holds the schema information for the "blueprint_collections" table.
	BlueprintCollectionsTable = &schema.Table{
		Name:       "blueprint_collections",
		Comment:    "蓝图-收藏夹成员关系表。root_collection_id 是根捷径冗余字段：蓝图加入深层收藏夹时同时记录其根收藏夹，使按祖先收藏夹的查询无需递归联接",
		Columns:    BlueprintCollectionsColumns,
		PrimaryKey: []*schema.Column{BlueprintCollectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintcollection_blueprint_id_collection_id",
				Unique:  true,
				Columns: []*schema.Column{BlueprintCollectionsColumns[1], BlueprintCollectionsColumns[2]},
			},
			{
				Name:    "blueprintcollection_collection_id",
				Unique:  false,
				Columns: []*schema.Column{BlueprintCollectionsColumns[2]},
			},
			{
				Name:    "blueprintcollection_root_collection_id",
				Unique:  false,
				Columns: []*schema.Column{BlueprintCollectionsColumns[3]},
			},
		},
	}
	// BlueprintLikesColumns holds the columns for the "blueprint_likes" table.
	BlueprintLikesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "blueprint_id", Type: field.TypeUint, Comment: "蓝图ID"},
		{Name: "user_id", Type: field.TypeUint, Comment: "点赞用户ID"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlueprintLikesTable holds the schema information for the "blueprint_likes" table.
	BlueprintLikesTable = &schema.Table{
		Name:       "blueprint_likes",
		Comment:    "蓝图点赞记录表",
		Columns:    BlueprintLikesColumns,
		PrimaryKey: []*schema.Column{BlueprintLikesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintlike_blueprint_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{BlueprintLikesColumns[1], BlueprintLikesColumns[2]},
			},
			{
				Name:    "blueprintlike_blueprint_id",
				Unique:  false,
				Columns: []*schema.Column{BlueprintLikesColumns[1]},
			},
		},
	}
	// BlueprintProductsColumns holds the columns for the "blueprint_products" table.
	BlueprintProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "blueprint_id", Type: field.TypeUint, Comment: "蓝图ID"},
		{Name: "item_id", Type: field.TypeInt, Comment: "物品ID，引用静态物品目录"},
		{Name: "count", Type: field.TypeInt, Comment: "每分钟产量"},
	}
	// BlueprintProductsTable holds the schema information for the "blueprint_products" table.
	BlueprintProductsTable = &schema.Table{
		Name:       "blueprint_products",
		Comment:    "蓝图产物表，每行记录蓝图对某物品的每分钟产量。数据来自外部解析服务的解码结果，product 排序与标签筛选预览都由此表驱动",
		Columns:    BlueprintProductsColumns,
		PrimaryKey: []*schema.Column{BlueprintProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprintproduct_blueprint_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{BlueprintProductsColumns[1], BlueprintProductsColumns[2]},
			},
			{
				Name:    "blueprintproduct_item_id_count",
				Unique:  false,
				Columns: []*schema.Column{BlueprintProductsColumns[2], BlueprintProductsColumns[3]},
			},
		},
	}
	// CollectionsColumns holds the columns for the "collections" table.
	CollectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "owner_id", Type: field.TypeUint, Comment: "收藏夹所有者ID，关联到users表"},
		{Name: "parent_id", Type: field.TypeUint, Nullable: true, Comment: "父收藏夹ID，空表示顶层。只校验 parent != self，不做深层环检测"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Comment: "收藏夹标题"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "收藏夹描述"},
		{Name: "public", Type: field.TypeBool, Comment: "是否公开，私有收藏夹仅所有者可见", Default: true},
	}
	// CollectionsTable holds the schema information for the "collections" table.
	CollectionsTable = &schema.Table{
		Name:       "collections",
		Comment:    "收藏夹表，parent_id 自引用构成层级",
		Columns:    CollectionsColumns,
		PrimaryKey: []*schema.Column{CollectionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collection_owner_id",
				Unique:  false,
				Columns: []*schema.Column{CollectionsColumns[2]},
			},
			{
				Name:    "collection_parent_id",
				Unique:  false,
				Columns: []*schema.Column{CollectionsColumns[3]},
			},
		},
	}
	// CollectionLikesColumns holds the columns for the "collection_likes" table.
	CollectionLikesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "collection_id", Type: field.TypeUint, Comment: "收藏夹ID"},
		{Name: "user_id", Type: field.TypeUint, Comment: "点赞用户ID"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CollectionLikesTable holds the schema information for the "collection_likes" table.
	CollectionLikesTable = &schema.Table{
		Name:       "collection_likes",
		Comment:    "收藏夹点赞记录表",
		Columns:    CollectionLikesColumns,
		PrimaryKey: []*schema.Column{CollectionLikesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "collectionlike_collection_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{CollectionLikesColumns[1], CollectionLikesColumns[2]},
			},
			{
				Name:    "collectionlike_collection_id",
				Unique:  false,
				Columns: []*schema.Column{CollectionLikesColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Comment: "登录名，唯一"},
		{Name: "nickname", Type: field.TypeString, Nullable: true, Comment: "显示昵称"},
		{Name: "email", Type: field.TypeString, Unique: true, Comment: "邮箱，唯一"},
		{Name: "avatar", Type: field.TypeString, Nullable: true, Comment: "头像URL"},
		{Name: "password_hash", Type: field.TypeString, Comment: "bcrypt 密码哈希"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Comment:    "用户表",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlueprintsTable,
		BlueprintCollectionsTable,
		BlueprintLikesTable,
		BlueprintProductsTable,
		CollectionsTable,
		CollectionLikesTable,
		UsersTable,
	}
)

func init() {
}
