// Code generated by ent, DO NOT EDIT.

package psychologist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUserID, v))
}

// IsProfileVisible applies equality check predicate on the "is_profile_visible" field. It's identical to IsProfileVisibleEQ.
func IsProfileVisible(v bool) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldIsProfileVisible, v))
}

// ProfessionalLicense applies equality check predicate on the "professional_license" field. It's identical to ProfessionalLicenseEQ.
func ProfessionalLicense(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldProfessionalLicense, v))
}

// University applies equality check predicate on the "university" field. It's identical to UniversityEQ.
func University(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUniversity, v))
}

// GraduationYear applies equality check predicate on the "graduation_year" field. It's identical to GraduationYearEQ.
func GraduationYear(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldGraduationYear, v))
}

// Bio applies equality check predicate on the "bio" field. It's identical to BioEQ.
func Bio(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldBio, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldUserID, v))
}

// IsProfileVisibleEQ applies the EQ predicate on the "is_profile_visible" field.
func IsProfileVisibleEQ(v bool) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldIsProfileVisible, v))
}

// IsProfileVisibleNEQ applies the NEQ predicate on the "is_profile_visible" field.
func IsProfileVisibleNEQ(v bool) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldIsProfileVisible, v))
}

// ProfessionalLicenseEQ applies the EQ predicate on the "professional_license" field.
func ProfessionalLicenseEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldProfessionalLicense, v))
}

// ProfessionalLicenseNEQ applies the NEQ predicate on the "professional_license" field.
func ProfessionalLicenseNEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldProfessionalLicense, v))
}

// ProfessionalLicenseIn applies the In predicate on the "professional_license" field.
func ProfessionalLicenseIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldProfessionalLicense, vs...))
}

// ProfessionalLicenseNotIn applies the NotIn predicate on the "professional_license" field.
func ProfessionalLicenseNotIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldProfessionalLicense, vs...))
}

// ProfessionalLicenseGT applies the GT predicate on the "professional_license" field.
func ProfessionalLicenseGT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldProfessionalLicense, v))
}

// ProfessionalLicenseGTE applies the GTE predicate on the "professional_license" field.
func ProfessionalLicenseGTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldProfessionalLicense, v))
}

// ProfessionalLicenseLT applies the LT predicate on the "professional_license" field.
func ProfessionalLicenseLT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldProfessionalLicense, v))
}

// ProfessionalLicenseLTE applies the LTE predicate on the "professional_license" field.
func ProfessionalLicenseLTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldProfessionalLicense, v))
}

// ProfessionalLicenseContains applies the Contains predicate on the "professional_license" field.
func ProfessionalLicenseContains(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContains(FieldProfessionalLicense, v))
}

// ProfessionalLicenseHasPrefix applies the HasPrefix predicate on the "professional_license" field.
func ProfessionalLicenseHasPrefix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasPrefix(FieldProfessionalLicense, v))
}

// ProfessionalLicenseHasSuffix applies the HasSuffix predicate on the "professional_license" field.
func ProfessionalLicenseHasSuffix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasSuffix(FieldProfessionalLicense, v))
}

// ProfessionalLicenseEqualFold applies the EqualFold predicate on the "professional_license" field.
func ProfessionalLicenseEqualFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEqualFold(FieldProfessionalLicense, v))
}

// ProfessionalLicenseContainsFold applies the ContainsFold predicate on the "professional_license" field.
func ProfessionalLicenseContainsFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContainsFold(FieldProfessionalLicense, v))
}

// UniversityEQ applies the EQ predicate on the "university" field.
func UniversityEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldUniversity, v))
}

// UniversityNEQ applies the NEQ predicate on the "university" field.
func UniversityNEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldUniversity, v))
}

// UniversityIn applies the In predicate on the "university" field.
func UniversityIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldUniversity, vs...))
}

// UniversityNotIn applies the NotIn predicate on the "university" field.
func UniversityNotIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldUniversity, vs...))
}

// UniversityGT applies the GT predicate on the "university" field.
func UniversityGT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldUniversity, v))
}

// UniversityGTE applies the GTE predicate on the "university" field.
func UniversityGTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldUniversity, v))
}

// UniversityLT applies the LT predicate on the "university" field.
func UniversityLT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldUniversity, v))
}

// UniversityLTE applies the LTE predicate on the "university" field.
func UniversityLTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldUniversity, v))
}

// UniversityContains applies the Contains predicate on the "university" field.
func UniversityContains(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContains(FieldUniversity, v))
}

// UniversityHasPrefix applies the HasPrefix predicate on the "university" field.
func UniversityHasPrefix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasPrefix(FieldUniversity, v))
}

// UniversityHasSuffix applies the HasSuffix predicate on the "university" field.
func UniversityHasSuffix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasSuffix(FieldUniversity, v))
}

// UniversityIsNil applies the IsNil predicate on the "university" field.
func UniversityIsNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIsNull(FieldUniversity))
}

// UniversityNotNil applies the NotNil predicate on the "university" field.
func UniversityNotNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotNull(FieldUniversity))
}

// UniversityEqualFold applies the EqualFold predicate on the "university" field.
func UniversityEqualFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEqualFold(FieldUniversity, v))
}

// UniversityContainsFold applies the ContainsFold predicate on the "university" field.
func UniversityContainsFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContainsFold(FieldUniversity, v))
}

// GraduationYearEQ applies the EQ predicate on the "graduation_year" field.
func GraduationYearEQ(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldGraduationYear, v))
}

// GraduationYearNEQ applies the NEQ predicate on the "graduation_year" field.
func GraduationYearNEQ(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldGraduationYear, v))
}

// GraduationYearIn applies the In predicate on the "graduation_year" field.
func GraduationYearIn(vs ...int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldGraduationYear, vs...))
}

// GraduationYearNotIn applies the NotIn predicate on the "graduation_year" field.
func GraduationYearNotIn(vs ...int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldGraduationYear, vs...))
}

// GraduationYearGT applies the GT predicate on the "graduation_year" field.
func GraduationYearGT(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldGraduationYear, v))
}

// GraduationYearGTE applies the GTE predicate on the "graduation_year" field.
func GraduationYearGTE(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldGraduationYear, v))
}

// GraduationYearLT applies the LT predicate on the "graduation_year" field.
func GraduationYearLT(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldGraduationYear, v))
}

// GraduationYearLTE applies the LTE predicate on the "graduation_year" field.
func GraduationYearLTE(v int) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldGraduationYear, v))
}

// GraduationYearIsNil applies the IsNil predicate on the "graduation_year" field.
func GraduationYearIsNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIsNull(FieldGraduationYear))
}

// GraduationYearNotNil applies the NotNil predicate on the "graduation_year" field.
func GraduationYearNotNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotNull(FieldGraduationYear))
}

// BioEQ applies the EQ predicate on the "bio" field.
func BioEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEQ(FieldBio, v))
}

// BioNEQ applies the NEQ predicate on the "bio" field.
func BioNEQ(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNEQ(FieldBio, v))
}

// BioIn applies the In predicate on the "bio" field.
func BioIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIn(FieldBio, vs...))
}

// BioNotIn applies the NotIn predicate on the "bio" field.
func BioNotIn(vs ...string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotIn(FieldBio, vs...))
}

// BioGT applies the GT predicate on the "bio" field.
func BioGT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGT(FieldBio, v))
}

// BioGTE applies the GTE predicate on the "bio" field.
func BioGTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldGTE(FieldBio, v))
}

// BioLT applies the LT predicate on the "bio" field.
func BioLT(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLT(FieldBio, v))
}

// BioLTE applies the LTE predicate on the "bio" field.
func BioLTE(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldLTE(FieldBio, v))
}

// BioContains applies the Contains predicate on the "bio" field.
func BioContains(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContains(FieldBio, v))
}

// BioHasPrefix applies the HasPrefix predicate on the "bio" field.
func BioHasPrefix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasPrefix(FieldBio, v))
}

// BioHasSuffix applies the HasSuffix predicate on the "bio" field.
func BioHasSuffix(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldHasSuffix(FieldBio, v))
}

// BioIsNil applies the IsNil predicate on the "bio" field.
func BioIsNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldIsNull(FieldBio))
}

// BioNotNil applies the NotNil predicate on the "bio" field.
func BioNotNil() predicate.Psychologist {
	return predicate.Psychologist(sql.FieldNotNull(FieldBio))
}

// BioEqualFold applies the EqualFold predicate on the "bio" field.
func BioEqualFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldEqualFold(FieldBio, v))
}

// BioContainsFold applies the ContainsFold predicate on the "bio" field.
func BioContainsFold(v string) predicate.Psychologist {
	return predicate.Psychologist(sql.FieldContainsFold(FieldBio, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Psychologist) predicate.Psychologist {
	return predicate.Psychologist(sql.NotPredicates(p))
}
