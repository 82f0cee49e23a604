// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/predicate"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdate) SetSessionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSessionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdate) SetQuestionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableQuestionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *SubmissionEventUpdate) SetSubtopic(v string) *SubmissionEventUpdate {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSubtopic(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// SetPreset sets the "preset" field.
func (_u *SubmissionEventUpdate) SetPreset(v string) *SubmissionEventUpdate {
	_u.mutation.SetPreset(v)
	return _u
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillablePreset(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetPreset(*v)
	}
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *SubmissionEventUpdate) SetResponseCount(v int) *SubmissionEventUpdate {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableResponseCount(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *SubmissionEventUpdate) AddResponseCount(v int) *SubmissionEventUpdate {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SubmissionEventUpdate) SetCorrectCount(v int) *SubmissionEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCorrectCount(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SubmissionEventUpdate) AddCorrectCount(v int) *SubmissionEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetQuestionConsistency sets the "question_consistency" field.
func (_u *SubmissionEventUpdate) SetQuestionConsistency(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetQuestionConsistency()
	_u.mutation.SetQuestionConsistency(v)
	return _u
}

// SetNillableQuestionConsistency sets the "question_consistency" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableQuestionConsistency(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetQuestionConsistency(*v)
	}
	return _u
}

// AddQuestionConsistency adds value to the "question_consistency" field.
func (_u *SubmissionEventUpdate) AddQuestionConsistency(v float64) *SubmissionEventUpdate {
	_u.mutation.AddQuestionConsistency(v)
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *SubmissionEventUpdate) SetMasteryPercentage(v float64) *SubmissionEventUpdate {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableMasteryPercentage(v *float64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *SubmissionEventUpdate) AddMasteryPercentage(v float64) *SubmissionEventUpdate {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SubmissionEventUpdate) SetOutcome(v string) *SubmissionEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableOutcome(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetNextAction sets the "next_action" field.
func (_u *SubmissionEventUpdate) SetNextAction(v string) *SubmissionEventUpdate {
	_u.mutation.SetNextAction(v)
	return _u
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableNextAction(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetNextAction(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(submissionevent.FieldSubtopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preset(); ok {
		_spec.SetField(submissionevent.FieldPreset, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(submissionevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(submissionevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionConsistency(); ok {
		_spec.SetField(submissionevent.FieldQuestionConsistency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionConsistency(); ok {
		_spec.AddField(submissionevent.FieldQuestionConsistency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(submissionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(submissionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(submissionevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextAction(); ok {
		_spec.SetField(submissionevent.FieldNextAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdateOne) SetSessionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSessionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdateOne) SetQuestionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableQuestionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *SubmissionEventUpdateOne) SetSubtopic(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSubtopic(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// SetPreset sets the "preset" field.
func (_u *SubmissionEventUpdateOne) SetPreset(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetPreset(v)
	return _u
}

// SetNillablePreset sets the "preset" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillablePreset(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetPreset(*v)
	}
	return _u
}

// SetResponseCount sets the "response_count" field.
func (_u *SubmissionEventUpdateOne) SetResponseCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetResponseCount()
	_u.mutation.SetResponseCount(v)
	return _u
}

// SetNillableResponseCount sets the "response_count" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableResponseCount(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetResponseCount(*v)
	}
	return _u
}

// AddResponseCount adds value to the "response_count" field.
func (_u *SubmissionEventUpdateOne) AddResponseCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddResponseCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SubmissionEventUpdateOne) SetCorrectCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCorrectCount(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SubmissionEventUpdateOne) AddCorrectCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetQuestionConsistency sets the "question_consistency" field.
func (_u *SubmissionEventUpdateOne) SetQuestionConsistency(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetQuestionConsistency()
	_u.mutation.SetQuestionConsistency(v)
	return _u
}

// SetNillableQuestionConsistency sets the "question_consistency" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableQuestionConsistency(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetQuestionConsistency(*v)
	}
	return _u
}

// AddQuestionConsistency adds value to the "question_consistency" field.
func (_u *SubmissionEventUpdateOne) AddQuestionConsistency(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddQuestionConsistency(v)
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *SubmissionEventUpdateOne) SetMasteryPercentage(v float64) *SubmissionEventUpdateOne {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableMasteryPercentage(v *float64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *SubmissionEventUpdateOne) AddMasteryPercentage(v float64) *SubmissionEventUpdateOne {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *SubmissionEventUpdateOne) SetOutcome(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableOutcome(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetNextAction sets the "next_action" field.
func (_u *SubmissionEventUpdateOne) SetNextAction(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetNextAction(v)
	return _u
}

// SetNillableNextAction sets the "next_action" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableNextAction(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetNextAction(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(submissionevent.FieldSubtopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Preset(); ok {
		_spec.SetField(submissionevent.FieldPreset, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseCount(); ok {
		_spec.SetField(submissionevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseCount(); ok {
		_spec.AddField(submissionevent.FieldResponseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionConsistency(); ok {
		_spec.SetField(submissionevent.FieldQuestionConsistency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuestionConsistency(); ok {
		_spec.AddField(submissionevent.FieldQuestionConsistency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(submissionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(submissionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(submissionevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextAction(); ok {
		_spec.SetField(submissionevent.FieldNextAction, field.TypeString, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
