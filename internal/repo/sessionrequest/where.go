// Code generated by ent, DO NOT EDIT.

package sessionrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldPatientID, v))
}

// PsychologistID applies equality check predicate on the "psychologist_id" field. It's identical to PsychologistIDEQ.
func PsychologistID(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldPsychologistID, v))
}

// InitialMessage applies equality check predicate on the "initial_message" field. It's identical to InitialMessageEQ.
func InitialMessage(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldInitialMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldPatientID, v))
}

// PsychologistIDEQ applies the EQ predicate on the "psychologist_id" field.
func PsychologistIDEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldPsychologistID, v))
}

// PsychologistIDNEQ applies the NEQ predicate on the "psychologist_id" field.
func PsychologistIDNEQ(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldPsychologistID, v))
}

// PsychologistIDIn applies the In predicate on the "psychologist_id" field.
func PsychologistIDIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldPsychologistID, vs...))
}

// PsychologistIDNotIn applies the NotIn predicate on the "psychologist_id" field.
func PsychologistIDNotIn(vs ...uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldPsychologistID, vs...))
}

// PsychologistIDGT applies the GT predicate on the "psychologist_id" field.
func PsychologistIDGT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldPsychologistID, v))
}

// PsychologistIDGTE applies the GTE predicate on the "psychologist_id" field.
func PsychologistIDGTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldPsychologistID, v))
}

// PsychologistIDLT applies the LT predicate on the "psychologist_id" field.
func PsychologistIDLT(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldPsychologistID, v))
}

// PsychologistIDLTE applies the LTE predicate on the "psychologist_id" field.
func PsychologistIDLTE(v uuid.UUID) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldPsychologistID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// InitialMessageEQ applies the EQ predicate on the "initial_message" field.
func InitialMessageEQ(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEQ(FieldInitialMessage, v))
}

// InitialMessageNEQ applies the NEQ predicate on the "initial_message" field.
func InitialMessageNEQ(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNEQ(FieldInitialMessage, v))
}

// InitialMessageIn applies the In predicate on the "initial_message" field.
func InitialMessageIn(vs ...string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldIn(FieldInitialMessage, vs...))
}

// InitialMessageNotIn applies the NotIn predicate on the "initial_message" field.
func InitialMessageNotIn(vs ...string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldNotIn(FieldInitialMessage, vs...))
}

// InitialMessageGT applies the GT predicate on the "initial_message" field.
func InitialMessageGT(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGT(FieldInitialMessage, v))
}

// InitialMessageGTE applies the GTE predicate on the "initial_message" field.
func InitialMessageGTE(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldGTE(FieldInitialMessage, v))
}

// InitialMessageLT applies the LT predicate on the "initial_message" field.
func InitialMessageLT(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLT(FieldInitialMessage, v))
}

// InitialMessageLTE applies the LTE predicate on the "initial_message" field.
func InitialMessageLTE(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldLTE(FieldInitialMessage, v))
}

// InitialMessageContains applies the Contains predicate on the "initial_message" field.
func InitialMessageContains(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldContains(FieldInitialMessage, v))
}

// InitialMessageHasPrefix applies the HasPrefix predicate on the "initial_message" field.
func InitialMessageHasPrefix(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldHasPrefix(FieldInitialMessage, v))
}

// InitialMessageHasSuffix applies the HasSuffix predicate on the "initial_message" field.
func InitialMessageHasSuffix(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldHasSuffix(FieldInitialMessage, v))
}

// InitialMessageEqualFold applies the EqualFold predicate on the "initial_message" field.
func InitialMessageEqualFold(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldEqualFold(FieldInitialMessage, v))
}

// InitialMessageContainsFold applies the ContainsFold predicate on the "initial_message" field.
func InitialMessageContainsFold(v string) predicate.SessionRequest {
	return predicate.SessionRequest(sql.FieldContainsFold(FieldInitialMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionRequest) predicate.SessionRequest {
	return predicate.SessionRequest(sql.NotPredicates(p))
}
