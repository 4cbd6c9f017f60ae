// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/assessmentevent"
	"github.com/walkinmyshoes/wims/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdate) SetUserID(v string) *AssessmentEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableUserID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdate) SetPhase(v string) *AssessmentEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePhase(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentEventUpdate) SetAnswers(v []string) *AssessmentEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AssessmentEventUpdate) AppendAnswers(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AssessmentEventUpdate) ClearAnswers() *AssessmentEventUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(assessmentevent.FieldAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssessmentEventUpdateOne) SetUserID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableUserID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *AssessmentEventUpdateOne) SetPhase(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePhase(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentEventUpdateOne) SetAnswers(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *AssessmentEventUpdateOne) AppendAnswers(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *AssessmentEventUpdateOne) ClearAnswers() *AssessmentEventUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := assessmentevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := assessmentevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assessmentevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(assessmentevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(assessmentevent.FieldAnswers, field.TypeJSON)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
