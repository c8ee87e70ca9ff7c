// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologist"
)

// Psychologist is the model entity for the Psychologist schema.
type Psychologist struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// IsProfileVisible holds the value of the "is_profile_visible" field.
	IsProfileVisible bool `json:"is_profile_visible,omitempty"`
	// ProfessionalLicense holds the value of the "professional_license" field.
	ProfessionalLicense string `json:"professional_license,omitempty"`
	// University holds the value of the "university" field.
	University *string `json:"university,omitempty"`
	// GraduationYear holds the value of the "graduation_year" field.
	GraduationYear *int `json:"graduation_year,omitempty"`
	// Bio holds the value of the "bio" field.
	Bio          *string `json:"bio,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Psychologist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldIsProfileVisible:
			values[i] = new(sql.NullBool)
		case psychologist.FieldGraduationYear:
			values[i] = new(sql.NullInt64)
		case psychologist.FieldProfessionalLicense, psychologist.FieldUniversity, psychologist.FieldBio:
			values[i] = new(sql.NullString)
		case psychologist.FieldCreatedAt, psychologist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case psychologist.FieldID, psychologist.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Psychologist fields.
func (_m *Psychologist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case psychologist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case psychologist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case psychologist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case psychologist.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case psychologist.FieldIsProfileVisible:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_profile_visible", values[i])
			} else if value.Valid {
				_m.IsProfileVisible = value.Bool
			}
		case psychologist.FieldProfessionalLicense:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field professional_license", values[i])
			} else if value.Valid {
				_m.ProfessionalLicense = value.String
			}
		case psychologist.FieldUniversity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field university", values[i])
			} else if value.Valid {
				_m.University = new(string)
				*_m.University = value.String
			}
		case psychologist.FieldGraduationYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field graduation_year", values[i])
			} else if value.Valid {
				_m.GraduationYear = new(int)
				*_m.GraduationYear = int(value.Int64)
			}
		case psychologist.FieldBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bio", values[i])
			} else if value.Valid {
				_m.Bio = new(string)
				*_m.Bio = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Psychologist.
// This includes values selected through modifiers, order, etc.
func (_m *Psychologist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Psychologist.
// Note that you need to call Psychologist.Unwrap() before calling this method if this Psychologist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Psychologist) Update() *PsychologistUpdateOne {
	return NewPsychologistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Psychologist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Psychologist) Unwrap() *Psychologist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Psychologist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Psychologist) String() string {
	var builder strings.Builder
	builder.WriteString("Psychologist(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("is_profile_visible=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsProfileVisible))
	builder.WriteString(", ")
	builder.WriteString("professional_license=")
	builder.WriteString(_m.ProfessionalLicense)
	builder.WriteString(", ")
	if v := _m.University; v != nil {
		builder.WriteString("university=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GraduationYear; v != nil {
		builder.WriteString("graduation_year=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Bio; v != nil {
		builder.WriteString("bio=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Psychologists is a parsable slice of Psychologist.
type Psychologists []*Psychologist
