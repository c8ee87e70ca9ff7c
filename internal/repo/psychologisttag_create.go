// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologisttag"
)

// PsychologistTagCreate is the builder for creating a PsychologistTag entity.
type PsychologistTagCreate struct {
	config
	mutation *PsychologistTagMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *PsychologistTagCreate) SetPsychologistID(v uuid.UUID) *PsychologistTagCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetTagID sets the "tag_id" field.
func (_c *PsychologistTagCreate) SetTagID(v uuid.UUID) *PsychologistTagCreate {
	_c.mutation.SetTagID(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistTagCreate) SetID(v uuid.UUID) *PsychologistTagCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistTagCreate) SetNillableID(v *uuid.UUID) *PsychologistTagCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PsychologistTagMutation object of the builder.
func (_c *PsychologistTagCreate) Mutation() *PsychologistTagMutation {
	return _c.mutation
}

// Save creates the PsychologistTag in the database.
func (_c *PsychologistTagCreate) Save(ctx context.Context) (*PsychologistTag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistTagCreate) SaveX(ctx context.Context) *PsychologistTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistTagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistTagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistTagCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologisttag.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistTagCreate) check() error {
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "PsychologistTag.psychologist_id"`)}
	}
	if _, ok := _c.mutation.TagID(); !ok {
		return &ValidationError{Name: "tag_id", err: errors.New(`repo: missing required field "PsychologistTag.tag_id"`)}
	}
	return nil
}

func (_c *PsychologistTagCreate) sqlSave(ctx context.Context) (*PsychologistTag, error) {
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

func (_c *PsychologistTagCreate) createSpec() (*PsychologistTag, *sqlgraph.CreateSpec) {
	var (
		_node = &PsychologistTag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologisttag.Table, sqlgraph.NewFieldSpec(psychologisttag.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(psychologisttag.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.TagID(); ok {
		_spec.SetField(psychologisttag.FieldTagID, field.TypeUUID, value)
		_node.TagID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistTag.Create().
//		SetPsychologistID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistTagUpsert) {
//			SetPsychologistID(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistTagCreate) OnConflict(opts ...sql.ConflictOption) *PsychologistTagUpsertOne {
	_c.conflict = opts
	return &PsychologistTagUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistTagCreate) OnConflictColumns(columns ...string) *PsychologistTagUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistTagUpsertOne{
		create: _c,
	}
}

type (
	// PsychologistTagUpsertOne is the builder for "upsert"-ing
	//  one PsychologistTag node.
	PsychologistTagUpsertOne struct {
		create *PsychologistTagCreate
	}

	// PsychologistTagUpsert is the "OnConflict" setter.
	PsychologistTagUpsert struct {
		*sql.UpdateSet
	}
)

// SetPsychologistID sets the "psychologist_id" field.
func (u *PsychologistTagUpsert) SetPsychologistID(v uuid.UUID) *PsychologistTagUpsert {
	u.Set(psychologisttag.FieldPsychologistID, v)
	return u
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PsychologistTagUpsert) UpdatePsychologistID() *PsychologistTagUpsert {
	u.SetExcluded(psychologisttag.FieldPsychologistID)
	return u
}

// SetTagID sets the "tag_id" field.
func (u *PsychologistTagUpsert) SetTagID(v uuid.UUID) *PsychologistTagUpsert {
	u.Set(psychologisttag.FieldTagID, v)
	return u
}

// UpdateTagID sets the "tag_id" field to the value that was provided on create.
func (u *PsychologistTagUpsert) UpdateTagID() *PsychologistTagUpsert {
	u.SetExcluded(psychologisttag.FieldTagID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologisttag.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistTagUpsertOne) UpdateNewValues() *PsychologistTagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(psychologisttag.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PsychologistTagUpsertOne) Ignore() *PsychologistTagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistTagUpsertOne) DoNothing() *PsychologistTagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistTagCreate.OnConflict
// documentation for more info.
func (u *PsychologistTagUpsertOne) Update(set func(*PsychologistTagUpsert)) *PsychologistTagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistTagUpsert{UpdateSet: update})
	}))
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *PsychologistTagUpsertOne) SetPsychologistID(v uuid.UUID) *PsychologistTagUpsertOne {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PsychologistTagUpsertOne) UpdatePsychologistID() *PsychologistTagUpsertOne {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetTagID sets the "tag_id" field.
func (u *PsychologistTagUpsertOne) SetTagID(v uuid.UUID) *PsychologistTagUpsertOne {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.SetTagID(v)
	})
}

// UpdateTagID sets the "tag_id" field to the value that was provided on create.
func (u *PsychologistTagUpsertOne) UpdateTagID() *PsychologistTagUpsertOne {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.UpdateTagID()
	})
}

// Exec executes the query.
func (u *PsychologistTagUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistTagCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistTagUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PsychologistTagUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PsychologistTagUpsertOne.ID is not supported by MySQL driver. Use PsychologistTagUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PsychologistTagUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PsychologistTagCreateBulk is the builder for creating many PsychologistTag entities in bulk.
type PsychologistTagCreateBulk struct {
	config
	err      error
	builders []*PsychologistTagCreate
	conflict []sql.ConflictOption
}

// Save creates the PsychologistTag entities in the database.
func (_c *PsychologistTagCreateBulk) Save(ctx context.Context) ([]*PsychologistTag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PsychologistTag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistTagMutation)
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
func (_c *PsychologistTagCreateBulk) SaveX(ctx context.Context) []*PsychologistTag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistTagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistTagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PsychologistTag.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PsychologistTagUpsert) {
//			SetPsychologistID(v+v).
//		}).
//		Exec(ctx)
func (_c *PsychologistTagCreateBulk) OnConflict(opts ...sql.ConflictOption) *PsychologistTagUpsertBulk {
	_c.conflict = opts
	return &PsychologistTagUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PsychologistTagCreateBulk) OnConflictColumns(columns ...string) *PsychologistTagUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PsychologistTagUpsertBulk{
		create: _c,
	}
}

// PsychologistTagUpsertBulk is the builder for "upsert"-ing
// a bulk of PsychologistTag nodes.
type PsychologistTagUpsertBulk struct {
	create *PsychologistTagCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(psychologisttag.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PsychologistTagUpsertBulk) UpdateNewValues() *PsychologistTagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(psychologisttag.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PsychologistTag.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PsychologistTagUpsertBulk) Ignore() *PsychologistTagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PsychologistTagUpsertBulk) DoNothing() *PsychologistTagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PsychologistTagCreateBulk.OnConflict
// documentation for more info.
func (u *PsychologistTagUpsertBulk) Update(set func(*PsychologistTagUpsert)) *PsychologistTagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PsychologistTagUpsert{UpdateSet: update})
	}))
	return u
}

// SetPsychologistID sets the "psychologist_id" field.
func (u *PsychologistTagUpsertBulk) SetPsychologistID(v uuid.UUID) *PsychologistTagUpsertBulk {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.SetPsychologistID(v)
	})
}

// UpdatePsychologistID sets the "psychologist_id" field to the value that was provided on create.
func (u *PsychologistTagUpsertBulk) UpdatePsychologistID() *PsychologistTagUpsertBulk {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.UpdatePsychologistID()
	})
}

// SetTagID sets the "tag_id" field.
func (u *PsychologistTagUpsertBulk) SetTagID(v uuid.UUID) *PsychologistTagUpsertBulk {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.SetTagID(v)
	})
}

// UpdateTagID sets the "tag_id" field to the value that was provided on create.
func (u *PsychologistTagUpsertBulk) UpdateTagID() *PsychologistTagUpsertBulk {
	return u.Update(func(s *PsychologistTagUpsert) {
		s.UpdateTagID()
	})
}

// Exec executes the query.
func (u *PsychologistTagUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PsychologistTagCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PsychologistTagCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PsychologistTagUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
