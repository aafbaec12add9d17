package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Article holds the schema definition for the Article entity.
type Article struct {
	ent.Schema
}

func (Article) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Article.
func (Article) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_date").Comment("所属日报日期，格式 2006-01-02"),
		field.String("title").Comment("资讯标题"),
		field.String("url").Comment("规范化后的资讯链接"),
		field.String("source").Comment("来源名称"),
		field.Text("summary").Optional().Comment("资讯摘要"),
		field.Time("published_at").Optional().Nillable().Comment("发布时间，无法解析时为空"),
		field.Strings("topics").Optional().Comment("命中的关键词列表"),
	}
}

// Indexes of the Article.
func (Article) Indexes() []ent.Index {
	return []ent.Index{
		// 唯一索引：同一天同一链接只存一条
		index.Fields("run_date", "url").Unique(),
		index.Fields("run_date"),
	}
}
