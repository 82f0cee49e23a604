// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/sessionevent"
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

// SetAction sets the "action" field.
func (_c *SessionEventCreate) SetAction(v string) *SessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *SessionEventCreate) SetSubject(v string) *SessionEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableSubject(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *SessionEventCreate) SetChapter(v string) *SessionEventCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableChapter(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetChapter(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SessionEventCreate) SetTopic(v string) *SessionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTopic(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetClassName sets the "class_name" field.
func (_c *SessionEventCreate) SetClassName(v string) *SessionEventCreate {
	_c.mutation.SetClassName(v)
	return _c
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableClassName(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetClassName(*v)
	}
	return _c
}

// SetClassLevel sets the "class_level" field.
func (_c *SessionEventCreate) SetClassLevel(v int) *SessionEventCreate {
	_c.mutation.SetClassLevel(v)
	return _c
}

// SetNillableClassLevel sets the "class_level" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableClassLevel(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetClassLevel(*v)
	}
	return _c
}

// SetSubtopics sets the "subtopics" field.
func (_c *SessionEventCreate) SetSubtopics(v []string) *SessionEventCreate {
	_c.mutation.SetSubtopics(v)
	return _c
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_c *SessionEventCreate) SetMasteryPercentage(v float64) *SessionEventCreate {
	_c.mutation.SetMasteryPercentage(v)
	return _c
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMasteryPercentage(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetMasteryPercentage(*v)
	}
	return _c
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_c *SessionEventCreate) SetQuestionsAsked(v int) *SessionEventCreate {
	_c.mutation.SetQuestionsAsked(v)
	return _c
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableQuestionsAsked(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetQuestionsAsked(*v)
	}
	return _c
}

// SetInterventionCount sets the "intervention_count" field.
func (_c *SessionEventCreate) SetInterventionCount(v int) *SessionEventCreate {
	_c.mutation.SetInterventionCount(v)
	return _c
}

// SetNillableInterventionCount sets the "intervention_count" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableInterventionCount(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetInterventionCount(*v)
	}
	return _c
}

// SetStopReason sets the "stop_reason" field.
func (_c *SessionEventCreate) SetStopReason(v string) *SessionEventCreate {
	_c.mutation.SetStopReason(v)
	return _c
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableStopReason(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetStopReason(*v)
	}
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
	if _, ok := _c.mutation.Subject(); !ok {
		v := sessionevent.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		v := sessionevent.DefaultChapter
		_c.mutation.SetChapter(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := sessionevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.ClassName(); !ok {
		v := sessionevent.DefaultClassName
		_c.mutation.SetClassName(v)
	}
	if _, ok := _c.mutation.ClassLevel(); !ok {
		v := sessionevent.DefaultClassLevel
		_c.mutation.SetClassLevel(v)
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		v := sessionevent.DefaultMasteryPercentage
		_c.mutation.SetMasteryPercentage(v)
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		v := sessionevent.DefaultQuestionsAsked
		_c.mutation.SetQuestionsAsked(v)
	}
	if _, ok := _c.mutation.InterventionCount(); !ok {
		v := sessionevent.DefaultInterventionCount
		_c.mutation.SetInterventionCount(v)
	}
	if _, ok := _c.mutation.StopReason(); !ok {
		v := sessionevent.DefaultStopReason
		_c.mutation.SetStopReason(v)
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
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "SessionEvent.subject"`)}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "SessionEvent.chapter"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SessionEvent.topic"`)}
	}
	if _, ok := _c.mutation.ClassName(); !ok {
		return &ValidationError{Name: "class_name", err: errors.New(`ent: missing required field "SessionEvent.class_name"`)}
	}
	if _, ok := _c.mutation.ClassLevel(); !ok {
		return &ValidationError{Name: "class_level", err: errors.New(`ent: missing required field "SessionEvent.class_level"`)}
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		return &ValidationError{Name: "mastery_percentage", err: errors.New(`ent: missing required field "SessionEvent.mastery_percentage"`)}
	}
	if _, ok := _c.mutation.QuestionsAsked(); !ok {
		return &ValidationError{Name: "questions_asked", err: errors.New(`ent: missing required field "SessionEvent.questions_asked"`)}
	}
	if _, ok := _c.mutation.InterventionCount(); !ok {
		return &ValidationError{Name: "intervention_count", err: errors.New(`ent: missing required field "SessionEvent.intervention_count"`)}
	}
	if _, ok := _c.mutation.StopReason(); !ok {
		return &ValidationError{Name: "stop_reason", err: errors.New(`ent: missing required field "SessionEvent.stop_reason"`)}
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
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(sessionevent.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ClassName(); ok {
		_spec.SetField(sessionevent.FieldClassName, field.TypeString, value)
		_node.ClassName = value
	}
	if value, ok := _c.mutation.ClassLevel(); ok {
		_spec.SetField(sessionevent.FieldClassLevel, field.TypeInt, value)
		_node.ClassLevel = value
	}
	if value, ok := _c.mutation.Subtopics(); ok {
		_spec.SetField(sessionevent.FieldSubtopics, field.TypeJSON, value)
		_node.Subtopics = value
	}
	if value, ok := _c.mutation.MasteryPercentage(); ok {
		_spec.SetField(sessionevent.FieldMasteryPercentage, field.TypeFloat64, value)
		_node.MasteryPercentage = value
	}
	if value, ok := _c.mutation.QuestionsAsked(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
		_node.QuestionsAsked = value
	}
	if value, ok := _c.mutation.InterventionCount(); ok {
		_spec.SetField(sessionevent.FieldInterventionCount, field.TypeInt, value)
		_node.InterventionCount = value
	}
	if value, ok := _c.mutation.StopReason(); ok {
		_spec.SetField(sessionevent.FieldStopReason, field.TypeString, value)
		_node.StopReason = value
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
