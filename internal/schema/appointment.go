package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a session booked by a psychologist from an active chat.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("psychologist_id", uuid.UUID{}).
			Immutable().
			Comment("FK → psychologists.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("FK → patients.id"),

		field.Time("scheduled_at"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("is_cancelled").
			Default(false),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// No two live appointments for the same psychologist at the same time.
		index.Fields("psychologist_id", "scheduled_at").
			Unique().
			Annotations(entsql.IndexWhere("NOT is_cancelled")),

		index.Fields("patient_id", "scheduled_at"),
	}
}
