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
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
)

// ScenarioEventUpdate is the builder for updating ScenarioEvent entities.
type ScenarioEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdate) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScenarioEventUpdate) SetSessionID(v string) *ScenarioEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableSessionID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScenarioEventUpdate) SetUserID(v string) *ScenarioEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableUserID(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *ScenarioEventUpdate) SetScenario(v string) *ScenarioEventUpdate {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableScenario(v *string) *ScenarioEventUpdate {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *ScenarioEventUpdate) SetTasksCompleted(v int) *ScenarioEventUpdate {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTasksCompleted(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *ScenarioEventUpdate) AddTasksCompleted(v int) *ScenarioEventUpdate {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *ScenarioEventUpdate) SetTotalTasks(v int) *ScenarioEventUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTotalTasks(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *ScenarioEventUpdate) AddTotalTasks(v int) *ScenarioEventUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletionTimeMs sets the "completion_time_ms" field.
func (_u *ScenarioEventUpdate) SetCompletionTimeMs(v int64) *ScenarioEventUpdate {
	_u.mutation.ResetCompletionTimeMs()
	_u.mutation.SetCompletionTimeMs(v)
	return _u
}

// SetNillableCompletionTimeMs sets the "completion_time_ms" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableCompletionTimeMs(v *int64) *ScenarioEventUpdate {
	if v != nil {
		_u.SetCompletionTimeMs(*v)
	}
	return _u
}

// AddCompletionTimeMs adds value to the "completion_time_ms" field.
func (_u *ScenarioEventUpdate) AddCompletionTimeMs(v int64) *ScenarioEventUpdate {
	_u.mutation.AddCompletionTimeMs(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ScenarioEventUpdate) SetErrors(v int) *ScenarioEventUpdate {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableErrors(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *ScenarioEventUpdate) AddErrors(v int) *ScenarioEventUpdate {
	_u.mutation.AddErrors(v)
	return _u
}

// SetHelpRequests sets the "help_requests" field.
func (_u *ScenarioEventUpdate) SetHelpRequests(v int) *ScenarioEventUpdate {
	_u.mutation.ResetHelpRequests()
	_u.mutation.SetHelpRequests(v)
	return _u
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableHelpRequests(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetHelpRequests(*v)
	}
	return _u
}

// AddHelpRequests adds value to the "help_requests" field.
func (_u *ScenarioEventUpdate) AddHelpRequests(v int) *ScenarioEventUpdate {
	_u.mutation.AddHelpRequests(v)
	return _u
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_u *ScenarioEventUpdate) SetFrustrationEvents(v int) *ScenarioEventUpdate {
	_u.mutation.ResetFrustrationEvents()
	_u.mutation.SetFrustrationEvents(v)
	return _u
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableFrustrationEvents(v *int) *ScenarioEventUpdate {
	if v != nil {
		_u.SetFrustrationEvents(*v)
	}
	return _u
}

// AddFrustrationEvents adds value to the "frustration_events" field.
func (_u *ScenarioEventUpdate) AddFrustrationEvents(v int) *ScenarioEventUpdate {
	_u.mutation.AddFrustrationEvents(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ScenarioEventUpdate) SetTotal(v float64) *ScenarioEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ScenarioEventUpdate) SetNillableTotal(v *float64) *ScenarioEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ScenarioEventUpdate) AddTotal(v float64) *ScenarioEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ScenarioEventUpdate) SetBreakdown(v map[string]float64) *ScenarioEventUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ScenarioEventUpdate) ClearBreakdown() *ScenarioEventUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdate) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScenarioEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScenarioEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scenario(); ok {
		if err := scenarioevent.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(scenarioevent.FieldScenario, field.TypeString, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(scenarioevent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(scenarioevent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(scenarioevent.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(scenarioevent.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTimeMs(); ok {
		_spec.SetField(scenarioevent.FieldCompletionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeMs(); ok {
		_spec.AddField(scenarioevent.FieldCompletionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(scenarioevent.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(scenarioevent.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpRequests(); ok {
		_spec.SetField(scenarioevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpRequests(); ok {
		_spec.AddField(scenarioevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrustrationEvents(); ok {
		_spec.SetField(scenarioevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrustrationEvents(); ok {
		_spec.AddField(scenarioevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(scenarioevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(scenarioevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(scenarioevent.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(scenarioevent.FieldBreakdown, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScenarioEventUpdateOne is the builder for updating a single ScenarioEvent entity.
type ScenarioEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScenarioEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScenarioEventUpdateOne) SetSessionID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableSessionID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScenarioEventUpdateOne) SetUserID(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableUserID(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *ScenarioEventUpdateOne) SetScenario(v string) *ScenarioEventUpdateOne {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableScenario(v *string) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_u *ScenarioEventUpdateOne) SetTasksCompleted(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetTasksCompleted()
	_u.mutation.SetTasksCompleted(v)
	return _u
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTasksCompleted(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTasksCompleted(*v)
	}
	return _u
}

// AddTasksCompleted adds value to the "tasks_completed" field.
func (_u *ScenarioEventUpdateOne) AddTasksCompleted(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddTasksCompleted(v)
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *ScenarioEventUpdateOne) SetTotalTasks(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTotalTasks(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *ScenarioEventUpdateOne) AddTotalTasks(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletionTimeMs sets the "completion_time_ms" field.
func (_u *ScenarioEventUpdateOne) SetCompletionTimeMs(v int64) *ScenarioEventUpdateOne {
	_u.mutation.ResetCompletionTimeMs()
	_u.mutation.SetCompletionTimeMs(v)
	return _u
}

// SetNillableCompletionTimeMs sets the "completion_time_ms" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableCompletionTimeMs(v *int64) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetCompletionTimeMs(*v)
	}
	return _u
}

// AddCompletionTimeMs adds value to the "completion_time_ms" field.
func (_u *ScenarioEventUpdateOne) AddCompletionTimeMs(v int64) *ScenarioEventUpdateOne {
	_u.mutation.AddCompletionTimeMs(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *ScenarioEventUpdateOne) SetErrors(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableErrors(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *ScenarioEventUpdateOne) AddErrors(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddErrors(v)
	return _u
}

// SetHelpRequests sets the "help_requests" field.
func (_u *ScenarioEventUpdateOne) SetHelpRequests(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetHelpRequests()
	_u.mutation.SetHelpRequests(v)
	return _u
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableHelpRequests(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetHelpRequests(*v)
	}
	return _u
}

// AddHelpRequests adds value to the "help_requests" field.
func (_u *ScenarioEventUpdateOne) AddHelpRequests(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddHelpRequests(v)
	return _u
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_u *ScenarioEventUpdateOne) SetFrustrationEvents(v int) *ScenarioEventUpdateOne {
	_u.mutation.ResetFrustrationEvents()
	_u.mutation.SetFrustrationEvents(v)
	return _u
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableFrustrationEvents(v *int) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetFrustrationEvents(*v)
	}
	return _u
}

// AddFrustrationEvents adds value to the "frustration_events" field.
func (_u *ScenarioEventUpdateOne) AddFrustrationEvents(v int) *ScenarioEventUpdateOne {
	_u.mutation.AddFrustrationEvents(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ScenarioEventUpdateOne) SetTotal(v float64) *ScenarioEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ScenarioEventUpdateOne) SetNillableTotal(v *float64) *ScenarioEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ScenarioEventUpdateOne) AddTotal(v float64) *ScenarioEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ScenarioEventUpdateOne) SetBreakdown(v map[string]float64) *ScenarioEventUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ScenarioEventUpdateOne) ClearBreakdown() *ScenarioEventUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_u *ScenarioEventUpdateOne) Mutation() *ScenarioEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScenarioEventUpdate builder.
func (_u *ScenarioEventUpdateOne) Where(ps ...predicate.ScenarioEvent) *ScenarioEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScenarioEventUpdateOne) Select(field string, fields ...string) *ScenarioEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScenarioEvent entity.
func (_u *ScenarioEventUpdateOne) Save(ctx context.Context) (*ScenarioEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) SaveX(ctx context.Context) *ScenarioEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScenarioEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScenarioEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScenarioEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Scenario(); ok {
		if err := scenarioevent.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario": %w`, err)}
		}
	}
	return nil
}

func (_u *ScenarioEventUpdateOne) sqlSave(ctx context.Context) (_node *ScenarioEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scenarioevent.Table, scenarioevent.Columns, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScenarioEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scenarioevent.FieldID)
		for _, f := range fields {
			if !scenarioevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scenarioevent.FieldID {
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
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(scenarioevent.FieldScenario, field.TypeString, value)
	}
	if value, ok := _u.mutation.TasksCompleted(); ok {
		_spec.SetField(scenarioevent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCompleted(); ok {
		_spec.AddField(scenarioevent.FieldTasksCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(scenarioevent.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(scenarioevent.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTimeMs(); ok {
		_spec.SetField(scenarioevent.FieldCompletionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTimeMs(); ok {
		_spec.AddField(scenarioevent.FieldCompletionTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(scenarioevent.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(scenarioevent.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HelpRequests(); ok {
		_spec.SetField(scenarioevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpRequests(); ok {
		_spec.AddField(scenarioevent.FieldHelpRequests, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FrustrationEvents(); ok {
		_spec.SetField(scenarioevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrustrationEvents(); ok {
		_spec.AddField(scenarioevent.FieldFrustrationEvents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(scenarioevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(scenarioevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(scenarioevent.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(scenarioevent.FieldBreakdown, field.TypeJSON)
	}
	_node = &ScenarioEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scenarioevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
