// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mindchat/mindchat_backend/internal/repo/predicate"
	"github.com/mindchat/mindchat_backend/internal/repo/psychologisttag"
)

// PsychologistTagUpdate is the builder for updating PsychologistTag entities.
type PsychologistTagUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistTagMutation
}

// Where appends a list predicates to the PsychologistTagUpdate builder.
func (_u *PsychologistTagUpdate) Where(ps ...predicate.PsychologistTag) *PsychologistTagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *PsychologistTagUpdate) SetPsychologistID(v uuid.UUID) *PsychologistTagUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *PsychologistTagUpdate) SetNillablePsychologistID(v *uuid.UUID) *PsychologistTagUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *PsychologistTagUpdate) SetTagID(v uuid.UUID) *PsychologistTagUpdate {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *PsychologistTagUpdate) SetNillableTagID(v *uuid.UUID) *PsychologistTagUpdate {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// Mutation returns the PsychologistTagMutation object of the builder.
func (_u *PsychologistTagUpdate) Mutation() *PsychologistTagMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistTagUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistTagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistTagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistTagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PsychologistTagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(psychologisttag.Table, psychologisttag.Columns, sqlgraph.NewFieldSpec(psychologisttag.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(psychologisttag.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TagID(); ok {
		_spec.SetField(psychologisttag.FieldTagID, field.TypeUUID, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologisttag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistTagUpdateOne is the builder for updating a single PsychologistTag entity.
type PsychologistTagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistTagMutation
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *PsychologistTagUpdateOne) SetPsychologistID(v uuid.UUID) *PsychologistTagUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *PsychologistTagUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *PsychologistTagUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetTagID sets the "tag_id" field.
func (_u *PsychologistTagUpdateOne) SetTagID(v uuid.UUID) *PsychologistTagUpdateOne {
	_u.mutation.SetTagID(v)
	return _u
}

// SetNillableTagID sets the "tag_id" field if the given value is not nil.
func (_u *PsychologistTagUpdateOne) SetNillableTagID(v *uuid.UUID) *PsychologistTagUpdateOne {
	if v != nil {
		_u.SetTagID(*v)
	}
	return _u
}

// Mutation returns the PsychologistTagMutation object of the builder.
func (_u *PsychologistTagUpdateOne) Mutation() *PsychologistTagMutation {
	return _u.mutation
}

// Where appends a list predicates to the PsychologistTagUpdate builder.
func (_u *PsychologistTagUpdateOne) Where(ps ...predicate.PsychologistTag) *PsychologistTagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistTagUpdateOne) Select(field string, fields ...string) *PsychologistTagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PsychologistTag entity.
func (_u *PsychologistTagUpdateOne) Save(ctx context.Context) (*PsychologistTag, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistTagUpdateOne) SaveX(ctx context.Context) *PsychologistTag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistTagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistTagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PsychologistTagUpdateOne) sqlSave(ctx context.Context) (_node *PsychologistTag, err error) {
	_spec := sqlgraph.NewUpdateSpec(psychologisttag.Table, psychologisttag.Columns, sqlgraph.NewFieldSpec(psychologisttag.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PsychologistTag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologisttag.FieldID)
		for _, f := range fields {
			if !psychologisttag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologisttag.FieldID {
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
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(psychologisttag.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TagID(); ok {
		_spec.SetField(psychologisttag.FieldTagID, field.TypeUUID, value)
	}
	_node = &PsychologistTag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologisttag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
