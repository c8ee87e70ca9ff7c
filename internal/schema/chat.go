package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Chat is the realized conversation channel, created exactly once per
// accepted SessionRequest. Closing is soft; chats are never hard-deleted.
type Chat struct {
	ent.Schema
}

func (Chat) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_request_id", uuid.UUID{}).
			Immutable().
			Comment("FK → session_requests.id"),

		field.Bool("is_closed").
			Default(false),

		field.Time("last_message_at").
			Optional().
			Nillable(),
	}
}

func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_request_id").Unique(),
	}
}
