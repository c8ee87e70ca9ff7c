package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SessionRequest is a patient's ask to start a therapy chat with a specific
// psychologist. Status moves pending → accepted|rejected; cancelled and
// derived are reserved for patient cancellation and referral, which have no
// transitions yet.
type SessionRequest struct {
	ent.Schema
}

func (SessionRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (SessionRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("FK → patients.id"),

		field.UUID("psychologist_id", uuid.UUID{}).
			Immutable().
			Comment("FK → psychologists.id (assignee)"),

		field.Enum("status").
			Values("pending", "accepted", "rejected", "cancelled", "derived").
			Default("pending"),

		field.Text("initial_message").
			Immutable(),
	}
}

func (SessionRequest) Indexes() []ent.Index {
	return []ent.Index{
		// At most one pending request per (patient, psychologist) pair.
		// Enforced in the database so concurrent creates cannot both land.
		index.Fields("patient_id", "psychologist_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'pending'")),

		index.Fields("psychologist_id", "status"),
		index.Fields("patient_id", "status"),
	}
}
