// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/predicate"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologist"
)

// PsychologistUpdate is the builder for updating Psychologist entities.
type PsychologistUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistMutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdate) Where(ps ...predicate.Psychologist) *PsychologistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdate) SetUpdatedAt(v time.Time) *PsychologistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologistUpdate) SetUserID(v uuid.UUID) *PsychologistUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableUserID(v *uuid.UUID) *PsychologistUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (_u *PsychologistUpdate) SetIsProfileVisible(v bool) *PsychologistUpdate {
	_u.mutation.SetIsProfileVisible(v)
	return _u
}

// SetNillableIsProfileVisible sets the "is_profile_visible" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableIsProfileVisible(v *bool) *PsychologistUpdate {
	if v != nil {
		_u.SetIsProfileVisible(*v)
	}
	return _u
}

// SetProfessionalLicense sets the "professional_license" field.
func (_u *PsychologistUpdate) SetProfessionalLicense(v string) *PsychologistUpdate {
	_u.mutation.SetProfessionalLicense(v)
	return _u
}

// SetNillableProfessionalLicense sets the "professional_license" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableProfessionalLicense(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetProfessionalLicense(*v)
	}
	return _u
}

// SetUniversity sets the "university" field.
func (_u *PsychologistUpdate) SetUniversity(v string) *PsychologistUpdate {
	_u.mutation.SetUniversity(v)
	return _u
}

// SetNillableUniversity sets the "university" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableUniversity(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetUniversity(*v)
	}
	return _u
}

// ClearUniversity clears the value of the "university" field.
func (_u *PsychologistUpdate) ClearUniversity() *PsychologistUpdate {
	_u.mutation.ClearUniversity()
	return _u
}

// SetGraduationYear sets the "graduation_year" field.
func (_u *PsychologistUpdate) SetGraduationYear(v int) *PsychologistUpdate {
	_u.mutation.ResetGraduationYear()
	_u.mutation.SetGraduationYear(v)
	return _u
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableGraduationYear(v *int) *PsychologistUpdate {
	if v != nil {
		_u.SetGraduationYear(*v)
	}
	return _u
}

// AddGraduationYear adds value to the "graduation_year" field.
func (_u *PsychologistUpdate) AddGraduationYear(v int) *PsychologistUpdate {
	_u.mutation.AddGraduationYear(v)
	return _u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (_u *PsychologistUpdate) ClearGraduationYear() *PsychologistUpdate {
	_u.mutation.ClearGraduationYear()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistUpdate) SetBio(v string) *PsychologistUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableBio(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PsychologistUpdate) ClearBio() *PsychologistUpdate {
	_u.mutation.ClearBio()
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdate) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdate) check() error {
	if v, ok := _u.mutation.ProfessionalLicense(); ok {
		if err := psychologist.ProfessionalLicenseValidator(v); err != nil {
			return &ValidationError{Name: "professional_license", err: fmt.Errorf(`repo: validator failed for field "Psychologist.professional_license": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(psychologist.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsProfileVisible(); ok {
		_spec.SetField(psychologist.FieldIsProfileVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfessionalLicense(); ok {
		_spec.SetField(psychologist.FieldProfessionalLicense, field.TypeString, value)
	}
	if value, ok := _u.mutation.University(); ok {
		_spec.SetField(psychologist.FieldUniversity, field.TypeString, value)
	}
	if _u.mutation.UniversityCleared() {
		_spec.ClearField(psychologist.FieldUniversity, field.TypeString)
	}
	if value, ok := _u.mutation.GraduationYear(); ok {
		_spec.SetField(psychologist.FieldGraduationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraduationYear(); ok {
		_spec.AddField(psychologist.FieldGraduationYear, field.TypeInt, value)
	}
	if _u.mutation.GraduationYearCleared() {
		_spec.ClearField(psychologist.FieldGraduationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(psychologist.FieldBio, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistUpdateOne is the builder for updating a single Psychologist entity.
type PsychologistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdateOne) SetUpdatedAt(v time.Time) *PsychologistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PsychologistUpdateOne) SetUserID(v uuid.UUID) *PsychologistUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableUserID(v *uuid.UUID) *PsychologistUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (_u *PsychologistUpdateOne) SetIsProfileVisible(v bool) *PsychologistUpdateOne {
	_u.mutation.SetIsProfileVisible(v)
	return _u
}

// SetNillableIsProfileVisible sets the "is_profile_visible" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableIsProfileVisible(v *bool) *PsychologistUpdateOne {
	if v != nil {
		_u.SetIsProfileVisible(*v)
	}
	return _u
}

// SetProfessionalLicense sets the "professional_license" field.
func (_u *PsychologistUpdateOne) SetProfessionalLicense(v string) *PsychologistUpdateOne {
	_u.mutation.SetProfessionalLicense(v)
	return _u
}

// SetNillableProfessionalLicense sets the "professional_license" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableProfessionalLicense(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetProfessionalLicense(*v)
	}
	return _u
}

// SetUniversity sets the "university" field.
func (_u *PsychologistUpdateOne) SetUniversity(v string) *PsychologistUpdateOne {
	_u.mutation.SetUniversity(v)
	return _u
}

// SetNillableUniversity sets the "university" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableUniversity(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetUniversity(*v)
	}
	return _u
}

// ClearUniversity clears the value of the "university" field.
func (_u *PsychologistUpdateOne) ClearUniversity() *PsychologistUpdateOne {
	_u.mutation.ClearUniversity()
	return _u
}

// SetGraduationYear sets the "graduation_year" field.
func (_u *PsychologistUpdateOne) SetGraduationYear(v int) *PsychologistUpdateOne {
	_u.mutation.ResetGraduationYear()
	_u.mutation.SetGraduationYear(v)
	return _u
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableGraduationYear(v *int) *PsychologistUpdateOne {
	if v != nil {
		_u.SetGraduationYear(*v)
	}
	return _u
}

// AddGraduationYear adds value to the "graduation_year" field.
func (_u *PsychologistUpdateOne) AddGraduationYear(v int) *PsychologistUpdateOne {
	_u.mutation.AddGraduationYear(v)
	return _u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (_u *PsychologistUpdateOne) ClearGraduationYear() *PsychologistUpdateOne {
	_u.mutation.ClearGraduationYear()
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistUpdateOne) SetBio(v string) *PsychologistUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableBio(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *PsychologistUpdateOne) ClearBio() *PsychologistUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdateOne) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdateOne) Where(ps ...predicate.Psychologist) *PsychologistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistUpdateOne) Select(field string, fields ...string) *PsychologistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Psychologist entity.
func (_u *PsychologistUpdateOne) Save(ctx context.Context) (*Psychologist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdateOne) SaveX(ctx context.Context) *Psychologist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PsychologistUpdateOne) check() error {
	if v, ok := _u.mutation.ProfessionalLicense(); ok {
		if err := psychologist.ProfessionalLicenseValidator(v); err != nil {
			return &ValidationError{Name: "professional_license", err: fmt.Errorf(`repo: validator failed for field "Psychologist.professional_license": %w`, err)}
		}
	}
	return nil
}

func (_u *PsychologistUpdateOne) sqlSave(ctx context.Context) (_node *Psychologist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Psychologist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologist.FieldID)
		for _, f := range fields {
			if !psychologist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologist.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(psychologist.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.IsProfileVisible(); ok {
		_spec.SetField(psychologist.FieldIsProfileVisible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfessionalLicense(); ok {
		_spec.SetField(psychologist.FieldProfessionalLicense, field.TypeString, value)
	}
	if value, ok := _u.mutation.University(); ok {
		_spec.SetField(psychologist.FieldUniversity, field.TypeString, value)
	}
	if _u.mutation.UniversityCleared() {
		_spec.ClearField(psychologist.FieldUniversity, field.TypeString)
	}
	if value, ok := _u.mutation.GraduationYear(); ok {
		_spec.SetField(psychologist.FieldGraduationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraduationYear(); ok {
		_spec.AddField(psychologist.FieldGraduationYear, field.TypeInt, value)
	}
	if _u.mutation.GraduationYearCleared() {
		_spec.ClearField(psychologist.FieldGraduationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(psychologist.FieldBio, field.TypeString)
	}
	_node = &Psychologist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
