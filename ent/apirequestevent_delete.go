// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/apirequestevent"
	"github.com/classpulse/classpulse/ent/predicate"
)

// APIRequestEventDelete is the builder for deleting a APIRequestEvent entity.
type APIRequestEventDelete struct {
	config
	hooks    []Hook
	mutation *APIRequestEventMutation
}

// Where appends a list predicates to the APIRequestEventDelete builder.
func (_d *APIRequestEventDelete) Where(ps ...predicate.APIRequestEvent) *APIRequestEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *APIRequestEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *APIRequestEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *APIRequestEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(apirequestevent.Table, sqlgraph.NewFieldSpec(apirequestevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// APIRequestEventDeleteOne is the builder for deleting a single APIRequestEvent entity.
type APIRequestEventDeleteOne struct {
	_d *APIRequestEventDelete
}

// Where appends a list predicates to the APIRequestEventDelete builder.
func (_d *APIRequestEventDeleteOne) Where(ps ...predicate.APIRequestEvent) *APIRequestEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *APIRequestEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{apirequestevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *APIRequestEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
