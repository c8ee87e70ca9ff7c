package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is the shared identity record. Role-specific data lives in the
// Patient and Psychologist profile rows keyed by user_id.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			NotEmpty(),

		field.String("email").
			NotEmpty(),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("patient", "psychologist"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
