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
	"github.com/walkinmyshoes/wims/ent/scoreevent"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdate) SetSessionID(v string) *ScoreEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSessionID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScoreEventUpdate) SetUserID(v string) *ScoreEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableUserID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ScoreEventUpdate) SetUserName(v string) *ScoreEventUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableUserName(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *ScoreEventUpdate) ClearUserName() *ScoreEventUpdate {
	_u.mutation.ClearUserName()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ScoreEventUpdate) SetTotal(v float64) *ScoreEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableTotal(v *float64) *ScoreEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ScoreEventUpdate) AddTotal(v float64) *ScoreEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *ScoreEventUpdate) SetBadge(v string) *ScoreEventUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableBadge(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ScoreEventUpdate) SetBreakdown(v map[string]float64) *ScoreEventUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ScoreEventUpdate) ClearBreakdown() *ScoreEventUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scoreevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Badge(); ok {
		if err := scoreevent.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.badge": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scoreevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(scoreevent.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(scoreevent.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(scoreevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(scoreevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(scoreevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(scoreevent.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(scoreevent.FieldBreakdown, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdateOne) SetSessionID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSessionID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ScoreEventUpdateOne) SetUserID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableUserID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ScoreEventUpdateOne) SetUserName(v string) *ScoreEventUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableUserName(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// ClearUserName clears the value of the "user_name" field.
func (_u *ScoreEventUpdateOne) ClearUserName() *ScoreEventUpdateOne {
	_u.mutation.ClearUserName()
	return _u
}

// SetTotal sets the "total" field.
func (_u *ScoreEventUpdateOne) SetTotal(v float64) *ScoreEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableTotal(v *float64) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ScoreEventUpdateOne) AddTotal(v float64) *ScoreEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *ScoreEventUpdateOne) SetBadge(v string) *ScoreEventUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableBadge(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *ScoreEventUpdateOne) SetBreakdown(v map[string]float64) *ScoreEventUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *ScoreEventUpdateOne) ClearBreakdown() *ScoreEventUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := scoreevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Badge(); ok {
		if err := scoreevent.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.badge": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(scoreevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(scoreevent.FieldUserName, field.TypeString, value)
	}
	if _u.mutation.UserNameCleared() {
		_spec.ClearField(scoreevent.FieldUserName, field.TypeString)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(scoreevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(scoreevent.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(scoreevent.FieldBadge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(scoreevent.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(scoreevent.FieldBreakdown, field.TypeJSON)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
