// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/predicate"
	"github.com/walkinmyshoes/wims/ent/profilesnapshot"
)

// ProfileSnapshotUpdate is the builder for updating ProfileSnapshot entities.
type ProfileSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileSnapshotMutation
}

// Where appends a list predicates to the ProfileSnapshotUpdate builder.
func (_u *ProfileSnapshotUpdate) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ProfileSnapshotUpdate) SetSequence(v int64) *ProfileSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ProfileSnapshotUpdate) SetNillableSequence(v *int64) *ProfileSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ProfileSnapshotUpdate) AddSequence(v int64) *ProfileSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ProfileSnapshotUpdate) SetTimestamp(v time.Time) *ProfileSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ProfileSnapshotUpdate) SetNillableTimestamp(v *time.Time) *ProfileSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileSnapshotUpdate) SetData(v map[string]interface{}) *ProfileSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (_u *ProfileSnapshotUpdate) Mutation() *ProfileSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profilesnapshot.Table, profilesnapshot.Columns, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(profilesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileSnapshotUpdateOne is the builder for updating a single ProfileSnapshot entity.
type ProfileSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *ProfileSnapshotUpdateOne) SetSequence(v int64) *ProfileSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ProfileSnapshotUpdateOne) SetNillableSequence(v *int64) *ProfileSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ProfileSnapshotUpdateOne) AddSequence(v int64) *ProfileSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ProfileSnapshotUpdateOne) SetTimestamp(v time.Time) *ProfileSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ProfileSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *ProfileSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ProfileSnapshotUpdateOne) SetData(v map[string]interface{}) *ProfileSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ProfileSnapshotMutation object of the builder.
func (_u *ProfileSnapshotUpdateOne) Mutation() *ProfileSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileSnapshotUpdate builder.
func (_u *ProfileSnapshotUpdateOne) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileSnapshotUpdateOne) Select(field string, fields ...string) *ProfileSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileSnapshot entity.
func (_u *ProfileSnapshotUpdateOne) Save(ctx context.Context) (*ProfileSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileSnapshotUpdateOne) SaveX(ctx context.Context) *ProfileSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ProfileSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(profilesnapshot.Table, profilesnapshot.Columns, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profilesnapshot.FieldID)
		for _, f := range fields {
			if !profilesnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profilesnapshot.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(profilesnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(profilesnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(profilesnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &ProfileSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
