package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Psychologist is the psychologist-side profile, owned 1:1 by a User.
// is_profile_visible gates directory inclusion and eligibility to receive
// new session requests.
type Psychologist struct {
	ent.Schema
}

func (Psychologist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Psychologist) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Bool("is_profile_visible").
			Default(true),

		field.String("professional_license").
			NotEmpty(),

		field.String("university").
			Optional().
			Nillable(),

		field.Int("graduation_year").
			Optional().
			Nillable(),

		field.Text("bio").
			Optional().
			Nillable(),
	}
}

func (Psychologist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("is_profile_visible"),
	}
}
