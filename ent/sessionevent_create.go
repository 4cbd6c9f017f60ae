// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionEventCreate) SetSequence(v int64) *SessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionEventCreate) SetUserID(v string) *SessionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetScenario sets the "scenario" field.
func (_c *SessionEventCreate) SetScenario(v string) *SessionEventCreate {
	_c.mutation.SetScenario(v)
	return _c
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableScenario(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetScenario(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *SessionEventCreate) SetDurationMs(v int64) *SessionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDurationMs(v *int64) *SessionEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetRetries sets the "retries" field.
func (_c *SessionEventCreate) SetRetries(v int) *SessionEventCreate {
	_c.mutation.SetRetries(v)
	return _c
}

// SetNillableRetries sets the "retries" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableRetries(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetRetries(*v)
	}
	return _c
}

// SetHelpRequests sets the "help_requests" field.
func (_c *SessionEventCreate) SetHelpRequests(v int) *SessionEventCreate {
	_c.mutation.SetHelpRequests(v)
	return _c
}

// SetNillableHelpRequests sets the "help_requests" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableHelpRequests(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetHelpRequests(*v)
	}
	return _c
}

// SetFrustrationEvents sets the "frustration_events" field.
func (_c *SessionEventCreate) SetFrustrationEvents(v int) *SessionEventCreate {
	_c.mutation.SetFrustrationEvents(v)
	return _c
}

// SetNillableFrustrationEvents sets the "frustration_events" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableFrustrationEvents(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetFrustrationEvents(*v)
	}
	return _c
}

// SetErrorsPerTask sets the "errors_per_task" field.
func (_c *SessionEventCreate) SetErrorsPerTask(v map[string]int) *SessionEventCreate {
	_c.mutation.SetErrorsPerTask(v)
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := sessionevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Retries(); !ok {
		v := sessionevent.DefaultRetries
		_c.mutation.SetRetries(v)
	}
	if _, ok := _c.mutation.HelpRequests(); !ok {
		v := sessionevent.DefaultHelpRequests
		_c.mutation.SetHelpRequests(v)
	}
	if _, ok := _c.mutation.FrustrationEvents(); !ok {
		v := sessionevent.DefaultFrustrationEvents
		_c.mutation.SetFrustrationEvents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "SessionEvent.duration_ms"`)}
	}
	if _, ok := _c.mutation.Retries(); !ok {
		return &ValidationError{Name: "retries", err: errors.New(`ent: missing required field "SessionEvent.retries"`)}
	}
	if _, ok := _c.mutation.HelpRequests(); !ok {
		return &ValidationError{Name: "help_requests", err: errors.New(`ent: missing required field "SessionEvent.help_requests"`)}
	}
	if _, ok := _c.mutation.FrustrationEvents(); !ok {
		return &ValidationError{Name: "frustration_events", err: errors.New(`ent: missing required field "SessionEvent.frustration_events"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Scenario(); ok {
		_spec.SetField(sessionevent.FieldScenario, field.TypeString, value)
		_node.Scenario = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(sessionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Retries(); ok {
		_spec.SetField(sessionevent.FieldRetries, field.TypeInt, value)
		_node.Retries = value
	}
	if value, ok := _c.mutation.HelpRequests(); ok {
		_spec.SetField(sessionevent.FieldHelpRequests, field.TypeInt, value)
		_node.HelpRequests = value
	}
	if value, ok := _c.mutation.FrustrationEvents(); ok {
		_spec.SetField(sessionevent.FieldFrustrationEvents, field.TypeInt, value)
		_node.FrustrationEvents = value
	}
	if value, ok := _c.mutation.ErrorsPerTask(); ok {
		_spec.SetField(sessionevent.FieldErrorsPerTask, field.TypeJSON, value)
		_node.ErrorsPerTask = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
