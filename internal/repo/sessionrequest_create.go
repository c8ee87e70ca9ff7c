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
	"github.com/mindchat/mindchat_backend/internal/repo/sessionrequest"
)

// SessionRequestCreate is the builder for creating a SessionRequest entity.
type SessionRequestCreate struct {
	config
	mutation *SessionRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRequestCreate) SetCreatedAt(v time.Time) *SessionRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableCreatedAt(v *time.Time) *SessionRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *SessionRequestCreate) SetPatientID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *SessionRequestCreate) SetPsychologistID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionRequestCreate) SetStatus(v sessionrequest.Status) *SessionRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableStatus(v *sessionrequest.Status) *SessionRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetInitialMessage sets the "initial_message" field.
func (_c *SessionRequestCreate) SetInitialMessage(v string) *SessionRequestCreate {
	_c.mutation.SetInitialMessage(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SessionRequestCreate) SetID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableID(v *uuid.UUID) *SessionRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionRequestMutation object of the builder.
func (_c *SessionRequestCreate) Mutation() *SessionRequestMutation {
	return _c.mutation
}

// Save creates the SessionRequest in the database.
func (_c *SessionRequestCreate) Save(ctx context.Context) (*SessionRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRequestCreate) SaveX(ctx context.Context) *SessionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sessionrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessionrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SessionRequest.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "SessionRequest.patient_id"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "SessionRequest.psychologist_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "SessionRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitialMessage(); !ok {
		return &ValidationError{Name: "initial_message", err: errors.New(`repo: missing required field "SessionRequest.initial_message"`)}
	}
	return nil
}

func (_c *SessionRequestCreate) sqlSave(ctx context.Context) (*SessionRequest, error) {
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

func (_c *SessionRequestCreate) createSpec() (*SessionRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrequest.Table, sqlgraph.NewFieldSpec(sessionrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(sessionrequest.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(sessionrequest.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InitialMessage(); ok {
		_spec.SetField(sessionrequest.FieldInitialMessage, field.TypeString, value)
		_node.InitialMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRequestCreate) OnConflict(opts ...sql.ConflictOption) *SessionRequestUpsertOne {
	_c.conflict = opts
	return &SessionRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRequestCreate) OnConflictColumns(columns ...string) *SessionRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRequestUpsertOne{
		create: _c,
	}
}

type (
	// SessionRequestUpsertOne is the builder for "upsert"-ing
	//  one SessionRequest node.
	SessionRequestUpsertOne struct {
		create *SessionRequestCreate
	}

	// SessionRequestUpsert is the "OnConflict" setter.
	SessionRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SessionRequestUpsert) SetStatus(v sessionrequest.Status) *SessionRequestUpsert {
	u.Set(sessionrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRequestUpsert) UpdateStatus() *SessionRequestUpsert {
	u.SetExcluded(sessionrequest.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRequestUpsertOne) UpdateNewValues() *SessionRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionrequest.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.PatientID(); exists {
			s.SetIgnore(sessionrequest.FieldPatientID)
		}
		if _, exists := u.create.mutation.PsychologistID(); exists {
			s.SetIgnore(sessionrequest.FieldPsychologistID)
		}
		if _, exists := u.create.mutation.InitialMessage(); exists {
			s.SetIgnore(sessionrequest.FieldInitialMessage)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionRequestUpsertOne) Ignore() *SessionRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRequestUpsertOne) DoNothing() *SessionRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRequestCreate.OnConflict
// documentation for more info.
func (u *SessionRequestUpsertOne) Update(set func(*SessionRequestUpsert)) *SessionRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionRequestUpsertOne) SetStatus(v sessionrequest.Status) *SessionRequestUpsertOne {
	return u.Update(func(s *SessionRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRequestUpsertOne) UpdateStatus() *SessionRequestUpsertOne {
	return u.Update(func(s *SessionRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *SessionRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SessionRequestUpsertOne.ID is not supported by MySQL driver. Use SessionRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionRequestCreateBulk is the builder for creating many SessionRequest entities in bulk.
type SessionRequestCreateBulk struct {
	config
	err      error
	builders []*SessionRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionRequest entities in the database.
func (_c *SessionRequestCreateBulk) Save(ctx context.Context) ([]*SessionRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRequestMutation)
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
func (_c *SessionRequestCreateBulk) SaveX(ctx context.Context) []*SessionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionRequestUpsertBulk {
	_c.conflict = opts
	return &SessionRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRequestCreateBulk) OnConflictColumns(columns ...string) *SessionRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRequestUpsertBulk{
		create: _c,
	}
}

// SessionRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionRequest nodes.
type SessionRequestUpsertBulk struct {
	create *SessionRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRequestUpsertBulk) UpdateNewValues() *SessionRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionrequest.FieldCreatedAt)
			}
			if _, exists := b.mutation.PatientID(); exists {
				s.SetIgnore(sessionrequest.FieldPatientID)
			}
			if _, exists := b.mutation.PsychologistID(); exists {
				s.SetIgnore(sessionrequest.FieldPsychologistID)
			}
			if _, exists := b.mutation.InitialMessage(); exists {
				s.SetIgnore(sessionrequest.FieldInitialMessage)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionRequestUpsertBulk) Ignore() *SessionRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRequestUpsertBulk) DoNothing() *SessionRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRequestCreateBulk.OnConflict
// documentation for more info.
func (u *SessionRequestUpsertBulk) Update(set func(*SessionRequestUpsert)) *SessionRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionRequestUpsertBulk) SetStatus(v sessionrequest.Status) *SessionRequestUpsertBulk {
	return u.Update(func(s *SessionRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRequestUpsertBulk) UpdateStatus() *SessionRequestUpsertBulk {
	return u.Update(func(s *SessionRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *SessionRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SessionRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SessionRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
