// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/apirequestevent"
)

// APIRequestEventCreate is the builder for creating a APIRequestEvent entity.
type APIRequestEventCreate struct {
	config
	mutation *APIRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *APIRequestEventCreate) SetSequence(v int64) *APIRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *APIRequestEventCreate) SetTimestamp(v time.Time) *APIRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *APIRequestEventCreate) SetNillableTimestamp(v *time.Time) *APIRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOperation sets the "operation" field.
func (_c *APIRequestEventCreate) SetOperation(v string) *APIRequestEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *APIRequestEventCreate) SetSessionID(v string) *APIRequestEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *APIRequestEventCreate) SetNillableSessionID(v *string) *APIRequestEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *APIRequestEventCreate) SetLatencyMs(v int64) *APIRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *APIRequestEventCreate) SetNillableLatencyMs(v *int64) *APIRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *APIRequestEventCreate) SetSuccess(v bool) *APIRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *APIRequestEventCreate) SetErrorMessage(v string) *APIRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *APIRequestEventCreate) SetNillableErrorMessage(v *string) *APIRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the APIRequestEventMutation object of the builder.
func (_c *APIRequestEventCreate) Mutation() *APIRequestEventMutation {
	return _c.mutation
}

// Save creates the APIRequestEvent in the database.
func (_c *APIRequestEventCreate) Save(ctx context.Context) (*APIRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *APIRequestEventCreate) SaveX(ctx context.Context) *APIRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *APIRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := apirequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := apirequestevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := apirequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := apirequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *APIRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "APIRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "APIRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "APIRequestEvent.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := apirequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "APIRequestEvent.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "APIRequestEvent.session_id"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "APIRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "APIRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "APIRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *APIRequestEventCreate) sqlSave(ctx context.Context) (*APIRequestEvent, error) {
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

func (_c *APIRequestEventCreate) createSpec() (*APIRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &APIRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(apirequestevent.Table, sqlgraph.NewFieldSpec(apirequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(apirequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(apirequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(apirequestevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(apirequestevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(apirequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(apirequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(apirequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// APIRequestEventCreateBulk is the builder for creating many APIRequestEvent entities in bulk.
type APIRequestEventCreateBulk struct {
	config
	err      error
	builders []*APIRequestEventCreate
}

// Save creates the APIRequestEvent entities in the database.
func (_c *APIRequestEventCreateBulk) Save(ctx context.Context) ([]*APIRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*APIRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*APIRequestEventMutation)
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
func (_c *APIRequestEventCreateBulk) SaveX(ctx context.Context) []*APIRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *APIRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *APIRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
