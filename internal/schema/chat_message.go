package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ChatMessage is a single message within a Chat. sent_at is assigned at
// persistence time; history is ordered by it with id as the tiebreak.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("chat_id", uuid.UUID{}).
			Immutable().
			Comment("FK → chats.id"),

		field.UUID("sender_user_id", uuid.UUID{}).
			Immutable().
			Comment("FK → users.id"),

		field.Text("body").
			Immutable(),

		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id", "sent_at"),
		index.Fields("sender_user_id"),
	}
}
