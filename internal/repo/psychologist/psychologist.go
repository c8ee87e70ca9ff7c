// Code generated by ent, DO NOT EDIT.

package psychologist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the psychologist type in the database.
	Label = "psychologist"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldIsProfileVisible holds the string denoting the is_profile_visible field in the database.
	FieldIsProfileVisible = "is_profile_visible"
	// FieldProfessionalLicense holds the string denoting the professional_license field in the database.
	FieldProfessionalLicense = "professional_license"
	// FieldUniversity holds the string denoting the university field in the database.
	FieldUniversity = "university"
	// FieldGraduationYear holds the string denoting the graduation_year field in the database.
	FieldGraduationYear = "graduation_year"
	// FieldBio holds the string denoting the bio field in the database.
	FieldBio = "bio"
	// Table holds the table name of the psychologist in the database.
	Table = "psychologists"
)

// Columns holds all SQL columns for psychologist fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldIsProfileVisible,
	FieldProfessionalLicense,
	FieldUniversity,
	FieldGraduationYear,
	FieldBio,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultIsProfileVisible holds the default value on creation for the "is_profile_visible" field.
	DefaultIsProfileVisible bool
	// ProfessionalLicenseValidator is a validator for the "professional_license" field. It is called by the builders before save.
	ProfessionalLicenseValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Psychologist queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByIsProfileVisible orders the results by the is_profile_visible field.
func ByIsProfileVisible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsProfileVisible, opts...).ToFunc()
}

// ByProfessionalLicense orders the results by the professional_license field.
func ByProfessionalLicense(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfessionalLicense, opts...).ToFunc()
}

// ByUniversity orders the results by the university field.
func ByUniversity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniversity, opts...).ToFunc()
}

// ByGraduationYear orders the results by the graduation_year field.
func ByGraduationYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraduationYear, opts...).ToFunc()
}

// ByBio orders the results by the bio field.
func ByBio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBio, opts...).ToFunc()
}
