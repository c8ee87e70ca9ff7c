package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Tag is a psychology specialty label shown in the directory.
type Tag struct {
	ent.Schema
}

func (Tag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (Tag) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
	}
}

func (Tag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}

// PsychologistTag is the join row between psychologists and tags.
type PsychologistTag struct {
	ent.Schema
}

func (PsychologistTag) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (PsychologistTag) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("psychologist_id", uuid.UUID{}).
			Comment("FK → psychologists.id"),

		field.UUID("tag_id", uuid.UUID{}).
			Comment("FK → tags.id"),
	}
}

func (PsychologistTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("psychologist_id", "tag_id").Unique(),
		index.Fields("tag_id"),
	}
}
