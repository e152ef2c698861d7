package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Post is a community feed entry.
type Post struct {
	ent.Schema
}

func (Post) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("author_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Text("content").
			NotEmpty(),

		field.String("media_key").
			Optional().
			Nillable().
			Comment("Object storage key for an attached image"),

		field.Int("like_count").
			Default(0).
			NonNegative().
			Comment("Denormalized counter kept in step with post_reactions"),
	}
}

func (Post) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("author_id"),
	}
}
