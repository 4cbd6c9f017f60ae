// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/predicate"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdate) SetUserID(v string) *SessionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableUserID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *SessionEventUpdate) SetScenario(v string) *SessionEventUpdate {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableScenario(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// ClearScenario clears the value of the "scenario" field.
func (_u *SessionEventUpdate) ClearScenario() *SessionEventUpdate {
	_u.mutation.ClearScenario()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionEventUpdate) SetDurationMs(v int64) *SessionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationMs(v *int64) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionEventUpdate) AddDurationMs(v int64) *SessionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *SessionEventUpdate) SetRetries(v int) *SessionEventUpdate {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRetries(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *SessionEventUpdate) AddRetries(v int) *SessionEventUpdate {
	_u.mutation.AddRetries(v)
	return _u
}

// SetHelpRequests sets the "help_requests" field.
func (_u *SessionEventUpdate) SetHelpRequests(v int) *SessionEventUpdate {
	_u.mutation.ResetHelpRequests()
	_u.mutation.SetHelpRequests(v)
	return _u
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableHelpRequests(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetHelpRequests(*v)
	}
	return _u
}

// AddHelpRequests adds value to the "help_requests" field.
func (_u *SessionEventUpdate) AddHelpRequests(v int) *SessionEventUpdate {
	_u.mutation.AddHelpRequests(v)
	return _u
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_u *SessionEventUpdate) SetFrustrationEvents(v int) *SessionEventUpdate {
	_u.mutation.ResetFrustrationEvents()
	_u.mutation.SetFrustrationEvents(v)
	return _u
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableFrustrationEvents(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetFrustrationEvents(*v)
	}
	return _u
}

// AddFrustrationEvents adds value to the "frustration_events" field.
func (_u *SessionEventUpdate) AddFrustrationEvents(v int) *SessionEventUpdate {
	_u.mutation.AddFrustrationEvents(v)
	return _u
}

// SetErrorsPerTask sets the "errors_per_task" field.
func (_u *SessionEventUpdate) SetErrorsPerTask(v map[string]int) *SessionEventUpdate {
	_u.mutation.SetErrorsPerTask(v)
	return _u
}

// ClearErrorsPerTask clears the value of the "errors_per_task" field.
func (_u *SessionEventUpdate) ClearErrorsPerTask() *SessionEventUpdate {
	_u.mutation.ClearErrorsPerTask()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(sessionevent.FieldScenario, field.TypeString, value)
	}
	if _u.mutation.ScenarioCleared() {
		_spec.ClearField(sessionevent.FieldScenario, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(sessionevent.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(sessionevent.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpRequests(); ok {
		_spec.SetField(sessionevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpRequests(); ok {
		_spec.AddField(sessionevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrustrationEvents(); ok {
		_spec.SetField(sessionevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrustrationEvents(); ok {
		_spec.AddField(sessionevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPerTask(); ok {
		_spec.SetField(sessionevent.FieldErrorsPerTask, field.TypeJSON, value)
	}
	if _u.mutation.ErrorsPerTaskCleared() {
		_spec.ClearField(sessionevent.FieldErrorsPerTask, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionEventUpdateOne) SetUserID(v string) *SessionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableUserID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *SessionEventUpdateOne) SetScenario(v string) *SessionEventUpdateOne {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableScenario(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// ClearScenario clears the value of the "scenario" field.
func (_u *SessionEventUpdateOne) ClearScenario() *SessionEventUpdateOne {
	_u.mutation.ClearScenario()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *SessionEventUpdateOne) SetDurationMs(v int64) *SessionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationMs(v *int64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *SessionEventUpdateOne) AddDurationMs(v int64) *SessionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetRetries sets the "retries" field.
func (_u *SessionEventUpdateOne) SetRetries(v int) *SessionEventUpdateOne {
	_u.mutation.ResetRetries()
	_u.mutation.SetRetries(v)
	return _u
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRetries(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRetries(*v)
	}
	return _u
}

// AddRetries adds value to the "retries" field.
func (_u *SessionEventUpdateOne) AddRetries(v int) *SessionEventUpdateOne {
	_u.mutation.AddRetries(v)
	return _u
}

// SetHelpRequests sets the "help_requests" field.
func (_u *SessionEventUpdateOne) SetHelpRequests(v int) *SessionEventUpdateOne {
	_u.mutation.ResetHelpRequests()
	_u.mutation.SetHelpRequests(v)
	return _u
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableHelpRequests(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetHelpRequests(*v)
	}
	return _u
}

// AddHelpRequests adds value to the "help_requests" field.
func (_u *SessionEventUpdateOne) AddHelpRequests(v int) *SessionEventUpdateOne {
	_u.mutation.AddHelpRequests(v)
	return _u
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_u *SessionEventUpdateOne) SetFrustrationEvents(v int) *SessionEventUpdateOne {
	_u.mutation.ResetFrustrationEvents()
	_u.mutation.SetFrustrationEvents(v)
	return _u
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableFrustrationEvents(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetFrustrationEvents(*v)
	}
	return _u
}

// AddFrustrationEvents adds value to the "frustration_events" field.
func (_u *SessionEventUpdateOne) AddFrustrationEvents(v int) *SessionEventUpdateOne {
	_u.mutation.AddFrustrationEvents(v)
	return _u
}

// SetErrorsPerTask sets the "errors_per_task" field.
func (_u *SessionEventUpdateOne) SetErrorsPerTask(v map[string]int) *SessionEventUpdateOne {
	_u.mutation.SetErrorsPerTask(v)
	return _u
}

// ClearErrorsPerTask clears the value of the "errors_per_task" field.
func (_u *SessionEventUpdateOne) ClearErrorsPerTask() *SessionEventUpdateOne {
	_u.mutation.ClearErrorsPerTask()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(sessionevent.FieldScenario, field.TypeString, value)
	}
	if _u.mutation.ScenarioCleared() {
		_spec.ClearField(sessionevent.FieldScenario, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(sessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Retries(); ok {
		_spec.SetField(sessionevent.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetries(); ok {
		_spec.AddField(sessionevent.FieldRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpRequests(); ok {
		_spec.SetField(sessionevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpRequests(); ok {
		_spec.AddField(sessionevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrustrationEvents(); ok {
		_spec.SetField(sessionevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrustrationEvents(); ok {
		_spec.AddField(sessionevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorsPerTask(); ok {
		_spec.SetField(sessionevent.FieldErrorsPerTask, field.TypeJSON, value)
	}
	if _u.mutation.ErrorsPerTaskCleared() {
		_spec.ClearField(sessionevent.FieldErrorsPerTask, field.TypeJSON)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
