package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a patient or the nutritionist (admin).
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("patient", "nutritionist").
			Default("patient"),

		field.Enum("onboarding_step").
			Values("anamnesis", "scheduling", "completed").
			Default("anamnesis").
			Comment("Where the patient is in the onboarding flow; nutritionist accounts start at completed"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		field.String("avatar_key").
			Optional().
			Nillable().
			Comment("Object storage key for the profile picture"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}
