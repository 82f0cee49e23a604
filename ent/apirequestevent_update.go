// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/apirequestevent"
	"github.com/classpulse/classpulse/ent/predicate"
)

// APIRequestEventUpdate is the builder for updating APIRequestEvent entities.
type APIRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *APIRequestEventMutation
}

// Where appends a list predicates to the APIRequestEventUpdate builder.
func (_u *APIRequestEventUpdate) Where(ps ...predicate.APIRequestEvent) *APIRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *APIRequestEventUpdate) SetOperation(v string) *APIRequestEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *APIRequestEventUpdate) SetNillableOperation(v *string) *APIRequestEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *APIRequestEventUpdate) SetSessionID(v string) *APIRequestEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *APIRequestEventUpdate) SetNillableSessionID(v *string) *APIRequestEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *APIRequestEventUpdate) SetLatencyMs(v int64) *APIRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *APIRequestEventUpdate) SetNillableLatencyMs(v *int64) *APIRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *APIRequestEventUpdate) AddLatencyMs(v int64) *APIRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *APIRequestEventUpdate) SetSuccess(v bool) *APIRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *APIRequestEventUpdate) SetNillableSuccess(v *bool) *APIRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *APIRequestEventUpdate) SetErrorMessage(v string) *APIRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *APIRequestEventUpdate) SetNillableErrorMessage(v *string) *APIRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the APIRequestEventMutation object of the builder.
func (_u *APIRequestEventUpdate) Mutation() *APIRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *APIRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *APIRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIRequestEventUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := apirequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "APIRequestEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *APIRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apirequestevent.Table, apirequestevent.Columns, sqlgraph.NewFieldSpec(apirequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(apirequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(apirequestevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(apirequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(apirequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(apirequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(apirequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apirequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// APIRequestEventUpdateOne is the builder for updating a single APIRequestEvent entity.
type APIRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *APIRequestEventMutation
}

// SetOperation sets the "operation" field.
func (_u *APIRequestEventUpdateOne) SetOperation(v string) *APIRequestEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *APIRequestEventUpdateOne) SetNillableOperation(v *string) *APIRequestEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *APIRequestEventUpdateOne) SetSessionID(v string) *APIRequestEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *APIRequestEventUpdateOne) SetNillableSessionID(v *string) *APIRequestEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *APIRequestEventUpdateOne) SetLatencyMs(v int64) *APIRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *APIRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *APIRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *APIRequestEventUpdateOne) AddLatencyMs(v int64) *APIRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *APIRequestEventUpdateOne) SetSuccess(v bool) *APIRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *APIRequestEventUpdateOne) SetNillableSuccess(v *bool) *APIRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *APIRequestEventUpdateOne) SetErrorMessage(v string) *APIRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *APIRequestEventUpdateOne) SetNillableErrorMessage(v *string) *APIRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the APIRequestEventMutation object of the builder.
func (_u *APIRequestEventUpdateOne) Mutation() *APIRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the APIRequestEventUpdate builder.
func (_u *APIRequestEventUpdateOne) Where(ps ...predicate.APIRequestEvent) *APIRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *APIRequestEventUpdateOne) Select(field string, fields ...string) *APIRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated APIRequestEvent entity.
func (_u *APIRequestEventUpdateOne) Save(ctx context.Context) (*APIRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *APIRequestEventUpdateOne) SaveX(ctx context.Context) *APIRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *APIRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *APIRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *APIRequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := apirequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "APIRequestEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *APIRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *APIRequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(apirequestevent.Table, apirequestevent.Columns, sqlgraph.NewFieldSpec(apirequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "APIRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, apirequestevent.FieldID)
		for _, f := range fields {
			if !apirequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != apirequestevent.FieldID {
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
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(apirequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(apirequestevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(apirequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(apirequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(apirequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(apirequestevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &APIRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{apirequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
