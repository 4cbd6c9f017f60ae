// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/walkinmyshoes/wims/ent/certificate"
)

// CertificateCreate is the builder for creating a Certificate entity.
type CertificateCreate struct {
	config
	mutation *CertificateMutation
	hooks    []Hook
}

// SetCertID sets the "cert_id" field.
func (_c *CertificateCreate) SetCertID(v string) *CertificateCreate {
	_c.mutation.SetCertID(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *CertificateCreate) SetUserName(v string) *CertificateCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CertificateCreate) SetScore(v int) *CertificateCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *CertificateCreate) SetDate(v string) *CertificateCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetScenariosCompleted sets the "scenarios_completed" field.
func (_c *CertificateCreate) SetScenariosCompleted(v int) *CertificateCreate {
	_c.mutation.SetScenariosCompleted(v)
	return _c
}

// SetBadge sets the "badge" field.
func (_c *CertificateCreate) SetBadge(v string) *CertificateCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CertificateCreate) SetCreatedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableCreatedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CertificateMutation object of the builder.
func (_c *CertificateCreate) Mutation() *CertificateMutation {
	return _c.mutation
}

// Save creates the Certificate in the database.
func (_c *CertificateCreate) Save(ctx context.Context) (*Certificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificateCreate) SaveX(ctx context.Context) *Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := certificate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificateCreate) check() error {
	if _, ok := _c.mutation.CertID(); !ok {
		return &ValidationError{Name: "cert_id", err: errors.New(`ent: missing required field "Certificate.cert_id"`)}
	}
	if v, ok := _c.mutation.CertID(); ok {
		if err := certificate.CertIDValidator(v); err != nil {
			return &ValidationError{Name: "cert_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.cert_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "Certificate.user_name"`)}
	}
	if v, ok := _c.mutation.UserName(); ok {
		if err := certificate.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "Certificate.user_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Certificate.score"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Certificate.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := certificate.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "Certificate.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenariosCompleted(); !ok {
		return &ValidationError{Name: "scenarios_completed", err: errors.New(`ent: missing required field "Certificate.scenarios_completed"`)}
	}
	if _, ok := _c.mutation.Badge(); !ok {
		return &ValidationError{Name: "badge", err: errors.New(`ent: missing required field "Certificate.badge"`)}
	}
	if v, ok := _c.mutation.Badge(); ok {
		if err := certificate.BadgeValidator(v); err != nil {
			return &ValidationError{Name: "badge", err: fmt.Errorf(`ent: validator failed for field "Certificate.badge": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Certificate.created_at"`)}
	}
	return nil
}

func (_c *CertificateCreate) sqlSave(ctx context.Context) (*Certificate, error) {
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

func (_c *CertificateCreate) createSpec() (*Certificate, *sqlgraph.CreateSpec) {
	var (
		_node = &Certificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificate.Table, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CertID(); ok {
		_spec.SetField(certificate.FieldCertID, field.TypeString, value)
		_node.CertID = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(certificate.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(certificate.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(certificate.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.ScenariosCompleted(); ok {
		_spec.SetField(certificate.FieldScenariosCompleted, field.TypeInt, value)
		_node.ScenariosCompleted = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(certificate.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(certificate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CertificateCreateBulk is the builder for creating many Certificate entities in bulk.
type CertificateCreateBulk struct {
	config
	err      error
	builders []*CertificateCreate
}

// Save creates the Certificate entities in the database.
func (_c *CertificateCreateBulk) Save(ctx context.Context) ([]*Certificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificateMutation)
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
func (_c *CertificateCreateBulk) SaveX(ctx context.Context) []*Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
