// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
)

// SessionRequest is the model entity for the SessionRequest schema.
type SessionRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → psychologists.id (assignee)
	PsychologistID uuid.UUID `json:"psychologist_id,omitempty"`
	// Status holds the value of the "status" field.
	Status sessionrequest.Status `json:"status,omitempty"`
	// InitialMessage holds the value of the "initial_message" field.
	InitialMessage string `json:"initial_message,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrequest.FieldStatus, sessionrequest.FieldInitialMessage:
			values[i] = new(sql.NullString)
		case sessionrequest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case sessionrequest.FieldID, sessionrequest.FieldPatientID, sessionrequest.FieldPsychologistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRequest fields.
func (_m *SessionRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessionrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionrequest.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case sessionrequest.FieldPsychologistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field psychologist_id", values[i])
			} else if value != nil {
				_m.PsychologistID = *value
			}
		case sessionrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sessionrequest.Status(value.String)
			}
		case sessionrequest.FieldInitialMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_message", values[i])
			} else if value.Valid {
				_m.InitialMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRequest.
// This includes values selected through modifiers, order, etc.
func (_m *SessionRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRequest.
// Note that you need to call SessionRequest.Unwrap() before calling this method if this SessionRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionRequest) Update() *SessionRequestUpdateOne {
	return NewSessionRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionRequest) Unwrap() *SessionRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SessionRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionRequest) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("psychologist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PsychologistID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("initial_message=")
	builder.WriteString(_m.InitialMessage)
	builder.WriteByte(')')
	return builder.String()
}

// SessionRequests is a parsable slice of SessionRequest.
type SessionRequests []*SessionRequest
