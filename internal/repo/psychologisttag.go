// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologisttag"
)

// PsychologistTag is the model entity for the PsychologistTag schema.
type PsychologistTag struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → psychologists.id
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// FK → tags.id
	TagID        uuid.UUID `json:"tag_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PsychologistTag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologisttag.FieldID, psychologisttag.FieldPsychologistID, psychologisttag.FieldTagID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PsychologistTag fields.
func (_m *PsychologistTag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologisttag.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologisttag.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case psychologisttag.FieldTagID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tag_id", values[i])
			} else if value != nil {
				_m.TagID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PsychologistTag.
// This includes values selected through modifiers, order, etc.
func (_m *PsychologistTag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PsychologistTag.
// Note that you need to call PsychologistTag.Unwrap() before calling this method if this PsychologistTag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PsychologistTag) Update() *PsychologistTagUpdateOne {
	return NewPsychologistTagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PsychologistTag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PsychologistTag) Unwrap() *PsychologistTag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PsychologistTag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PsychologistTag) String() string {
	var builder strings.Builder
	builder.WriteString("PsychologistTag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("tag_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TagID))
	builder.WriteByte(')')
	return builder.String()
}

// PsychologistTags is a parsable slice of PsychologistTag.
type PsychologistTags []*PsychologistTag
