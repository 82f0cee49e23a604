// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SubmissionEventCreate) SetSessionID(v string) *SubmissionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SubmissionEventCreate) SetQuestionID(v string) *SubmissionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSubtopic sets the "subtopic" field.
func (_c *SubmissionEventCreate) SetSubtopic(v string) *SubmissionEventCreate {
	_c.mutation.SetSubtopic(v)
	return _c
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableSubtopic(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetSubtopic(*v)
	}
	return _c
}

// SetPreset sets the "preset" field.
func (_c *SubmissionEventCreate) SetPreset(v string) *SubmissionEventCreate {
	_c.mutation.SetPreset(v)
	return _c
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillablePreset(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetPreset(*v)
	}
	return _c
}

// SetResponseCount sets the "response_count" field.
func (_c *SubmissionEventCreate) SetResponseCount(v int) *SubmissionEventCreate {
	_c.mutation.SetResponseCount(v)
	return _c
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableResponseCount(v *int) *SubmissionEventCreate {
	if v != nil {
		_c.SetResponseCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *SubmissionEventCreate) SetCorrectCount(v int) *SubmissionEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableCorrectCount(v *int) *SubmissionEventCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetQuestionConsistency sets the "question_consistency" field.
func (_c *SubmissionEventCreate) SetQuestionConsistency(v float64) *SubmissionEventCreate {
	_c.mutation.SetQuestionConsistency(v)
	return _c
}

// SetNillableQuestionConsistency sets the "question_consistency" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableQuestionConsistency(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetQuestionConsistency(*v)
	}
	return _c
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_c *SubmissionEventCreate) SetMasteryPercentage(v float64) *SubmissionEventCreate {
	_c.mutation.SetMasteryPercentage(v)
	return _c
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableMasteryPercentage(v *float64) *SubmissionEventCreate {
	if v != nil {
		_c.SetMasteryPercentage(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *SubmissionEventCreate) SetOutcome(v string) *SubmissionEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableOutcome(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetNextAction sets the "next_action" field.
func (_c *SubmissionEventCreate) SetNextAction(v string) *SubmissionEventCreate {
	_c.mutation.SetNextAction(v)
	return _c
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableNextAction(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetNextAction(*v)
	}
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		v := submissionevent.DefaultSubtopic
		_c.mutation.SetSubtopic(v)
	}
	if _, ok := _c.mutation.Preset(); !ok {
		v := submissionevent.DefaultPreset
		_c.mutation.SetPreset(v)
	}
	if _, ok := _c.mutation.ResponseCount(); !ok {
		v := submissionevent.DefaultResponseCount
		_c.mutation.SetResponseCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := submissionevent.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.QuestionConsistency(); !ok {
		v := submissionevent.DefaultQuestionConsistency
		_c.mutation.SetQuestionConsistency(v)
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		v := submissionevent.DefaultMasteryPercentage
		_c.mutation.SetMasteryPercentage(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := submissionevent.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.NextAction(); !ok {
		v := submissionevent.DefaultNextAction
		_c.mutation.SetNextAction(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SubmissionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SubmissionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subtopic(); !ok {
		return &ValidationError{Name: "subtopic", err: errors.New(`ent: missing required field "SubmissionEvent.subtopic"`)}
	}
	if _, ok := _c.mutation.Preset(); !ok {
		return &ValidationError{Name: "preset", err: errors.New(`ent: missing required field "SubmissionEvent.preset"`)}
	}
	if _, ok := _c.mutation.ResponseCount(); !ok {
		return &ValidationError{Name: "response_count", err: errors.New(`ent: missing required field "SubmissionEvent.response_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "SubmissionEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.QuestionConsistency(); !ok {
		return &ValidationError{Name: "question_consistency", err: errors.New(`ent: missing required field "SubmissionEvent.question_consistency"`)}
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		return &ValidationError{Name: "mastery_percentage", err: errors.New(`ent: missing required field "SubmissionEvent.mastery_percentage"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "SubmissionEvent.outcome"`)}
	}
	if _, ok := _c.mutation.NextAction(); !ok {
		return &ValidationError{Name: "next_action", err: errors.New(`ent: missing required field "SubmissionEvent.next_action"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Subtopic(); ok {
		_spec.SetField(submissionevent.FieldSubtopic, field.TypeString, value)
		_node.Subtopic = value
	}
	if value, ok := _c.mutation.Preset(); ok {
		_spec.SetField(submissionevent.FieldPreset, field.TypeString, value)
		_node.Preset = value
	}
	if value, ok := _c.mutation.ResponseCount(); ok {
		_spec.SetField(submissionevent.FieldResponseCount, field.TypeInt, value)
		_node.ResponseCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.QuestionConsistency(); ok {
		_spec.SetField(submissionevent.FieldQuestionConsistency, field.TypeFloat64, value)
		_node.QuestionConsistency = value
	}
	if value, ok := _c.mutation.MasteryPercentage(); ok {
		_spec.SetField(submissionevent.FieldMasteryPercentage, field.TypeFloat64, value)
		_node.MasteryPercentage = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(submissionevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.NextAction(); ok {
		_spec.SetField(submissionevent.FieldNextAction, field.TypeString, value)
		_node.NextAction = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
