// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
)

// ScenarioEventCreate is the builder for creating a ScenarioEvent entity.
type ScenarioEventCreate struct {
	config
	mutation *ScenarioEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScenarioEventCreate) SetSequence(v int64) *ScenarioEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScenarioEventCreate) SetTimestamp(v time.Time) *ScenarioEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTimestamp(v *time.Time) *ScenarioEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScenarioEventCreate) SetSessionID(v string) *ScenarioEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ScenarioEventCreate) SetUserID(v string) *ScenarioEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScenario sets the "scenario" field.
func (_c *ScenarioEventCreate) SetScenario(v string) *ScenarioEventCreate {
	_c.mutation.SetScenario(v)
	return _c
}

// SetTasksCompleted sets the "tasks_completed" field.
func (_c *ScenarioEventCreate) SetTasksCompleted(v int) *ScenarioEventCreate {
	_c.mutation.SetTasksCompleted(v)
	return _c
}

// SetNillableTasksCompleted sets the "tasks_completed" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTasksCompleted(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetTasksCompleted(*v)
	}
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *ScenarioEventCreate) SetTotalTasks(v int) *ScenarioEventCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableTotalTasks(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCompletionTimeMs sets the "completion_time_ms" field.
func (_c *ScenarioEventCreate) SetCompletionTimeMs(v int64) *ScenarioEventCreate {
	_c.mutation.SetCompletionTimeMs(v)
	return _c
}

// SetNillableCompletionTimeMs sets the "completion_time_ms" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableCompletionTimeMs(v *int64) *ScenarioEventCreate {
	if v != nil {
		_c.SetCompletionTimeMs(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *ScenarioEventCreate) SetErrors(v int) *ScenarioEventCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableErrors(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetHelpRequests sets the "help_requests" field.
func (_c *ScenarioEventCreate) SetHelpRequests(v int) *ScenarioEventCreate {
	_c.mutation.SetHelpRequests(v)
	return _c
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableHelpRequests(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetHelpRequests(*v)
	}
	return _c
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_c *ScenarioEventCreate) SetFrustrationEvents(v int) *ScenarioEventCreate {
	_c.mutation.SetFrustrationEvents(v)
	return _c
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_c *ScenarioEventCreate) SetNillableFrustrationEvents(v *int) *ScenarioEventCreate {
	if v != nil {
		_c.SetFrustrationEvents(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ScenarioEventCreate) SetTotal(v float64) *ScenarioEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *ScenarioEventCreate) SetBreakdown(v map[string]float64) *ScenarioEventCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// Mutation returns the ScenarioEventMutation object of the builder.
func (_c *ScenarioEventCreate) Mutation() *ScenarioEventMutation {
	return _c.mutation
}

// Save creates the ScenarioEvent in the database.
func (_c *ScenarioEventCreate) Save(ctx context.Context) (*ScenarioEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScenarioEventCreate) SaveX(ctx context.Context) *ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScenarioEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scenarioevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		v := scenarioevent.DefaultTasksCompleted
		_c.mutation.SetTasksCompleted(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := scenarioevent.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CompletionTimeMs(); !ok {
		v := scenarioevent.DefaultCompletionTimeMs
		_c.mutation.SetCompletionTimeMs(v)
	}
	if _, ok := _c.mutation.Errors(); !ok {
		v := scenarioevent.DefaultErrors
		_c.mutation.SetErrors(v)
	}
	if _, ok := _c.mutation.HelpRequests(); !ok {
		v := scenarioevent.DefaultHelpRequests
		_c.mutation.SetHelpRequests(v)
	}
	if _, ok := _c.mutation.FrustrationEvents(); !ok {
		v := scenarioevent.DefaultFrustrationEvents
		_c.mutation.SetFrustrationEvents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScenarioEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScenarioEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScenarioEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ScenarioEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := scenarioevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScenarioEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := scenarioevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scenario(); !ok {
		return &ValidationError{Name: "scenario", err: errors.New(`ent: missing required field "ScenarioEvent.scenario"`)}
	}
	if v, ok := _c.mutation.Scenario(); ok {
		if err := scenarioevent.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "ScenarioEvent.scenario": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TasksCompleted(); !ok {
		return &ValidationError{Name: "tasks_completed", err: errors.New(`ent: missing required field "ScenarioEvent.tasks_completed"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "ScenarioEvent.total_tasks"`)}
	}
	if _, ok := _c.mutation.CompletionTimeMs(); !ok {
		return &ValidationError{Name: "completion_time_ms", err: errors.New(`ent: missing required field "ScenarioEvent.completion_time_ms"`)}
	}
	if _, ok := _c.mutation.Errors(); !ok {
		return &ValidationError{Name: "errors", err: errors.New(`ent: missing required field "ScenarioEvent.errors"`)}
	}
	if _, ok := _c.mutation.HelpRequests(); !ok {
		return &ValidationError{Name: "help_requests", err: errors.New(`ent: missing required field "ScenarioEvent.help_requests"`)}
	}
	if _, ok := _c.mutation.FrustrationEvents(); !ok {
		return &ValidationError{Name: "frustration_events", err: errors.New(`ent: missing required field "ScenarioEvent.frustration_events"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ScenarioEvent.total"`)}
	}
	return nil
}

func (_c *ScenarioEventCreate) sqlSave(ctx context.Context) (*ScenarioEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScenarioEventCreate) createSpec() (*ScenarioEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScenarioEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scenarioevent.Table, sqlgraph.NewFieldSpec(scenarioevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scenarioevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scenarioevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scenarioevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scenarioevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Scenario(); ok {
		_spec.SetField(scenarioevent.FieldScenario, field.TypeString, value)
		_node.Scenario = value
	}
	if value, ok := _c.mutation.TasksCompleted(); ok {
		_spec.SetField(scenarioevent.FieldTasksCompleted, field.TypeInt, value)
		_node.TasksCompleted = value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(scenarioevent.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CompletionTimeMs(); ok {
		_spec.SetField(scenarioevent.FieldCompletionTimeMs, field.TypeInt64, value)
		_node.CompletionTimeMs = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(scenarioevent.FieldErrors, field.TypeInt, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.HelpRequests(); ok {
		_spec.SetField(scenarioevent.FieldHelpRequests, field.TypeInt, value)
		_node.HelpRequests = value
	}
	if value, ok := _c.mutation.FrustrationEvents(); ok {
		_spec.SetField(scenarioevent.FieldFrustrationEvents, field.TypeInt, value)
		_node.FrustrationEvents = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(scenarioevent.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(scenarioevent.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	return _node, _spec
}

// ScenarioEventCreateBulk is the builder for creating many ScenarioEvent entities in bulk.
type ScenarioEventCreateBulk struct {
	config
	err      error
	builders []*ScenarioEventCreate
}

// Save creates the ScenarioEvent entities in the database.
func (_c *ScenarioEventCreateBulk) Save(ctx context.Context) ([]*ScenarioEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScenarioEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScenarioEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ScenarioEventCreateBulk) SaveX(ctx context.Context) []*ScenarioEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScenarioEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScenarioEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
