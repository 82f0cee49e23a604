// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/predicate"
	"github.com/classpulse/classpulse/ent/snapshot"
)

// SnapshotUpdate is the builder for updating Snapshot entities.
type SnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SnapshotMutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdate) Where(ps ...predicate.Snapshot) *SnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *SnapshotUpdate) SetSequence(v int64) *SnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableSequence(v *int64) *SnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *SnapshotUpdate) AddSequence(v int64) *SnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SnapshotUpdate) SetTimestamp(v time.Time) *SnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableTimestamp(v *time.Time) *SnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SnapshotUpdate) SetData(v map[string]interface{}) *SnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdate) Mutation() *SnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(snapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(snapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SnapshotUpdateOne is the builder for updating a single Snapshot entity.
type SnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *SnapshotUpdateOne) SetSequence(v int64) *SnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableSequence(v *int64) *SnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *SnapshotUpdateOne) AddSequence(v int64) *SnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *SnapshotUpdateOne) SetTimestamp(v time.Time) *SnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *SnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SnapshotUpdateOne) SetData(v map[string]interface{}) *SnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdateOne) Mutation() *SnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdateOne) Where(ps ...predicate.Snapshot) *SnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SnapshotUpdateOne) Select(field string, fields ...string) *SnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Snapshot entity.
func (_u *SnapshotUpdateOne) Save(ctx context.Context) (*Snapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdateOne) SaveX(ctx context.Context) *Snapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SnapshotUpdateOne) sqlSave(ctx context.Context) (_node *Snapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snapshot.FieldID)
		for _, f := range fields {
			if !snapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snapshot.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(snapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(snapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(snapshot.FieldData, field.TypeJSON, value)
	}
	_node = &Snapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
