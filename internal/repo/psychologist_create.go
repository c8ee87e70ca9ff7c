// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologist"
)

// PsychologistCreate is the builder for creating a Psychologist entity.
type PsychologistCreate struct {
	config
	mutation *PsychologistMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistCreate) SetCreatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableCreatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistCreate) SetUpdatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PsychologistCreate) SetUserID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (_c *PsychologistCreate) SetIsProfileVisible(v bool) *PsychologistCreate {
	_c.mutation.SetIsProfileVisible(v)
	return _c
}

// SetNillableIsProfileVisible sets the "is_profile_visible" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableIsProfileVisible(v *bool) *PsychologistCreate {
	if v != nil {
		_c.SetIsProfileVisible(*v)
	}
	return _c
}

// SetProfessionalLicense sets the "professional_license" field.
func (_c *PsychologistCreate) SetProfessionalLicense(v string) *PsychologistCreate {
	_c.mutation.SetProfessionalLicense(v)
	return _c
}

// SetUniversity sets the "university" field.
func (_c *PsychologistCreate) SetUniversity(v string) *PsychologistCreate {
	_c.mutation.SetUniversity(v)
	return _c
}

// SetNillableUniversity sets the "university" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableUniversity(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetUniversity(*v)
	}
	return _c
}

// SetGraduationYear sets the "graduation_year" field.
func (_c *PsychologistCreate) SetGraduationYear(v int) *PsychologistCreate {
	_c.mutation.SetGraduationYear(v)
	return _c
}

// SetNillableGraduationYear sets the "graduation_year" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableGraduationYear(v *int) *PsychologistCreate {
	if v != nil {
		_c.SetGraduationYear(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *PsychologistCreate) SetBio(v string) *PsychologistCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableBio(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistCreate) SetID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableID(v *uuid.UUID) *PsychologistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PsychologistMutation object of the builder.
func (_c *PsychologistCreate) Mutation() *PsychologistMutation {
	return _c.mutation
}

// Save creates the Psychologist in the database.
func (_c *PsychologistCreate) Save(ctx context.Context) (*Psychologist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistCreate) SaveX(ctx context.Context) *Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsProfileVisible(); !ok {
		v := psychologist.DefaultIsProfileVisible
		_c.mutation.SetIsProfileVisible(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Psychologist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Psychologist.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Psychologist.user_id"`)}
	}
	if _, ok := _c.mutation.IsProfileVisible(); !ok {
		return &ValidationError{Name: "is_profile_visible", err: errors.New(`repo: missing required field "Psychologist.is_profile_visible"`)}
	}
	if _, ok := _c.mutation.ProfessionalLicense(); !ok {
		return &ValidationError{Name: "professional_license", err: errors.New(`repo: missing required field "Psychologist.professional_license"`)}
	}
	if v, ok := _c.mutation.ProfessionalLicense(); ok {
		if err := psychologist.ProfessionalLicenseValidator(v); err != nil {
			return &ValidationError{Name: "professional_license", err: fmt.Errorf(`repo: validator failed for field "Psychologist.professional_license": %w`, err)}
		}
	}
	return nil
}

func (_c *PsychologistCreate) sqlSave(ctx context.Context) (*Psychologist, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PsychologistCreate) createSpec() (*Psychologist, *sqlgraph.CreateSpec) {
	var (
		_node = &Psychologist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologist.Table, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(psychologist.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.IsProfileVisible(); ok {
		_spec.SetField(psychologist.FieldIsProfileVisible, field.TypeBool, value)
		_node.IsProfileVisible = value
	}
	if value, ok := _c.mutation.ProfessionalLicense(); ok {
		_spec.SetField(psychologist.FieldProfessionalLicense, field.TypeString, value)
		_node.ProfessionalLicense = value
	}
	if value, ok := _c.mutation.University(); ok {
		_spec.SetField(psychologist.FieldUniversity, field.TypeString, value)
		_node.University = &value
	}
	if value, ok := _c.mutation.GraduationYear(); ok {
		_spec.SetField(psychologist.FieldGraduationYear, field.TypeInt, value)
		_node.GraduationYear = &value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
		_node.Bio = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertOne {
	_c.conflict = opts
	return &PsychologistUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreate) OnConflictColumns(columns ...string) *PsychologistUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistUpsertOne is the builder for "upsert"-ing
	//  one Psychologist node.
	PsychologistUpsertOne struct {
		create *PsychologistCreate
	}

	// PsychologistUpsert is the "OnConflict" setter.
	PsychologistUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsert) SetUpdatedAt(v time.Time) *PsychologistUpsert {
	u.Set(psychologist.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUpdatedAt() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsert) SetUserID(v uuid.UUID) *PsychologistUpsert {
	u.Set(psychologist.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUserID() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUserID)
	return u
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (u *PsychologistUpsert) SetIsProfileVisible(v bool) *PsychologistUpsert {
	u.Set(psychologist.FieldIsProfileVisible, v)
	return u
}

// UpdateIsProfileVisible sets the "is_profile_visible" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateIsProfileVisible() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldIsProfileVisible)
	return u
}

// SetProfessionalLicense sets the "professional_license" field.
func (u *PsychologistUpsert) SetProfessionalLicense(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldProfessionalLicense, v)
	return u
}

// UpdateProfessionalLicense sets the "professional_license" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateProfessionalLicense() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldProfessionalLicense)
	return u
}

// SetUniversity sets the "university" field.
func (u *PsychologistUpsert) SetUniversity(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldUniversity, v)
	return u
}

// UpdateUniversity sets the "university" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateUniversity() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldUniversity)
	return u
}

// ClearUniversity clears the value of the "university" field.
func (u *PsychologistUpsert) ClearUniversity() *PsychologistUpsert {
	u.SetNull(psychologist.FieldUniversity)
	return u
}

// SetGraduationYear sets the "graduation_year" field.
func (u *PsychologistUpsert) SetGraduationYear(v int) *PsychologistUpsert {
	u.Set(psychologist.FieldGraduationYear, v)
	return u
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateGraduationYear() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldGraduationYear)
	return u
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *PsychologistUpsert) AddGraduationYear(v int) *PsychologistUpsert {
	u.Add(psychologist.FieldGraduationYear, v)
	return u
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *PsychologistUpsert) ClearGraduationYear() *PsychologistUpsert {
	u.SetNull(psychologist.FieldGraduationYear)
	return u
}

// SetBio sets the "bio" field.
func (u *PsychologistUpsert) SetBio(v string) *PsychologistUpsert {
	u.Set(psychologist.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistUpsert) UpdateBio() *PsychologistUpsert {
	u.SetExcluded(psychologist.FieldBio)
	return u
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistUpsert) ClearBio() *PsychologistUpsert {
	u.SetNull(psychologist.FieldBio)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertOne) UpdateNewValues() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologist.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(psychologist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistUpsertOne) Ignore() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertOne) DoNothing() *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreate.OnConflict
// documentation for more info.
func (u *PsychologistUpsertOne) Update(set func(*PsychologistUpsert)) *PsychologistUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertOne) SetUpdatedAt(v time.Time) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUpdatedAt() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsertOne) SetUserID(v uuid.UUID) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUserID() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUserID()
	})
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (u *PsychologistUpsertOne) SetIsProfileVisible(v bool) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetIsProfileVisible(v)
	})
}

// UpdateIsProfileVisible sets the "is_profile_visible" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateIsProfileVisible() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateIsProfileVisible()
	})
}

// SetProfessionalLicense sets the "professional_license" field.
func (u *PsychologistUpsertOne) SetProfessionalLicense(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetProfessionalLicense(v)
	})
}

// UpdateProfessionalLicense sets the "professional_license" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateProfessionalLicense() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateProfessionalLicense()
	})
}

// SetUniversity sets the "university" field.
func (u *PsychologistUpsertOne) SetUniversity(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUniversity(v)
	})
}

// UpdateUniversity sets the "university" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateUniversity() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUniversity()
	})
}

// ClearUniversity clears the value of the "university" field.
func (u *PsychologistUpsertOne) ClearUniversity() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearUniversity()
	})
}

// SetGraduationYear sets the "graduation_year" field.
func (u *PsychologistUpsertOne) SetGraduationYear(v int) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetGraduationYear(v)
	})
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *PsychologistUpsertOne) AddGraduationYear(v int) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.AddGraduationYear(v)
	})
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateGraduationYear() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateGraduationYear()
	})
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *PsychologistUpsertOne) ClearGraduationYear() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearGraduationYear()
	})
}

// SetBio sets the "bio" field.
func (u *PsychologistUpsertOne) SetBio(v string) *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistUpsertOne) UpdateBio() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistUpsertOne) ClearBio() *PsychologistUpsertOne {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearBio()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistUpsertOne.ID is not supported by MySQL driver. Use PsychologistUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistCreateBulk is the builder for creating many Psychologist entities in bulk.
type PsychologistCreateBulk struct {
	config
	err      error
	builders []*PsychologistCreate
	conflict []sql.ConflictOption
}

// Save creates the Psychologist entities in the database.
func (_c *PsychologistCreateBulk) Save(ctx context.Context) ([]*Psychologist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Psychologist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PsychologistCreateBulk) SaveX(ctx context.Context) []*Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Psychologist.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistUpsertBulk {
	_c.conflict = opts
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistCreateBulk) OnConflictColumns(columns ...string) *PsychologistUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistUpsertBulk{
		create: _c,
	}
}

// PsychologistUpsertBulk is the builder for "upsert"-ing
// a bulk of Psychologist nodes.
type PsychologistUpsertBulk struct {
	create *PsychologistCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologist.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) UpdateNewValues() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologist.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(psychologist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Psychologist.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistUpsertBulk) Ignore() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistUpsertBulk) DoNothing() *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistUpsertBulk) Update(set func(*PsychologistUpsert)) *PsychologistUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PsychologistUpsertBulk) SetUpdatedAt(v time.Time) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUpdatedAt() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PsychologistUpsertBulk) SetUserID(v uuid.UUID) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUserID() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUserID()
	})
}

// SetIsProfileVisible sets the "is_profile_visible" field.
func (u *PsychologistUpsertBulk) SetIsProfileVisible(v bool) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetIsProfileVisible(v)
	})
}

// UpdateIsProfileVisible sets the "is_profile_visible" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateIsProfileVisible() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateIsProfileVisible()
	})
}

// SetProfessionalLicense sets the "professional_license" field.
func (u *PsychologistUpsertBulk) SetProfessionalLicense(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetProfessionalLicense(v)
	})
}

// UpdateProfessionalLicense sets the "professional_license" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateProfessionalLicense() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateProfessionalLicense()
	})
}

// SetUniversity sets the "university" field.
func (u *PsychologistUpsertBulk) SetUniversity(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetUniversity(v)
	})
}

// UpdateUniversity sets the "university" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateUniversity() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateUniversity()
	})
}

// ClearUniversity clears the value of the "university" field.
func (u *PsychologistUpsertBulk) ClearUniversity() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearUniversity()
	})
}

// SetGraduationYear sets the "graduation_year" field.
func (u *PsychologistUpsertBulk) SetGraduationYear(v int) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetGraduationYear(v)
	})
}

// AddGraduationYear adds v to the "graduation_year" field.
func (u *PsychologistUpsertBulk) AddGraduationYear(v int) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.AddGraduationYear(v)
	})
}

// UpdateGraduationYear sets the "graduation_year" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateGraduationYear() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateGraduationYear()
	})
}

// ClearGraduationYear clears the value of the "graduation_year" field.
func (u *PsychologistUpsertBulk) ClearGraduationYear() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearGraduationYear()
	})
}

// SetBio sets the "bio" field.
func (u *PsychologistUpsertBulk) SetBio(v string) *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *PsychologistUpsertBulk) UpdateBio() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.UpdateBio()
	})
}

// ClearBio clears the value of the "bio" field.
func (u *PsychologistUpsertBulk) ClearBio() *PsychologistUpsertBulk {
	return u.Update(func(s *PsychologistUpsert) {
		s.ClearBio()
	})
}

// Exec executes the query.
func (u *PsychologistUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
