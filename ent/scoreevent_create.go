// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/scoreevent"
)

// ScoreEventCreate is the builder for creating a ScoreEvent entity.
type ScoreEventCreate struct {
	config
	mutation *ScoreEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ScoreEventCreate) SetSequence(v int64) *ScoreEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ScoreEventCreate) SetTimestamp(v time.Time) *ScoreEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableTimestamp(v *time.Time) *ScoreEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ScoreEventCreate) SetSessionID(v string) *ScoreEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ScoreEventCreate) SetUserID(v string) *ScoreEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *ScoreEventCreate) SetUserName(v string) *ScoreEventCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_c *ScoreEventCreate) SetNillableUserName(v *string) *ScoreEventCreate {
	if v != nil {
		_c.SetUserName(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ScoreEventCreate) SetTotal(v float64) *ScoreEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetBadge sets the "badge" field.
func (_c *ScoreEventCreate) SetBadge(v string) *ScoreEventCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *ScoreEventCreate) SetBreakdown(v map[string]float64) *ScoreEventCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_c *ScoreEventCreate) Mutation() *ScoreEventMutation {
	return _c.mutation
}

// Save creates the ScoreEvent in the database.
func (_c *ScoreEventCreate) Save(ctx context.Context) (*ScoreEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreEventCreate) SaveX(ctx context.Context) *ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := scoreevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ScoreEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ScoreEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ScoreEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ScoreEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := scoreevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ScoreEvent.total"`)}
	}
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "ScoreEvent.badge"`)}
	}
	if v, ok := _c.mutation.Badge(); ok {
		if err := scoreevent.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.badge": %w`, err)}
		}
	}
	return nil
}

func (_c *ScoreEventCreate) sqlSave(ctx context.Context) (*ScoreEvent, error) {
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

func (_c *ScoreEventCreate) createSpec() (*ScoreEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreevent.Table, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(scoreevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(scoreevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(scoreevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(scoreevent.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(scoreevent.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(scoreevent.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(scoreevent.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	return _node, _spec
}

// ScoreEventCreateBulk is the builder for creating many ScoreEvent entities in bulk.
type ScoreEventCreateBulk struct {
	config
	err      error
	builders []*ScoreEventCreate
}

// Save creates the ScoreEvent entities in the database.
func (_c *ScoreEventCreateBulk) Save(ctx context.Context) ([]*ScoreEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreEventMutation)
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
func (_c *ScoreEventCreateBulk) SaveX(ctx context.Context) []*ScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
