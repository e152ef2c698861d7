package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PostReaction is one user's like on one post. Unliking deletes the row.
type PostReaction struct {
	ent.Schema
}

func (PostReaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PostReaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("post_id", uuid.UUID{}).
			Comment("FK → posts.id"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (PostReaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "user_id").Unique(),
	}
}
