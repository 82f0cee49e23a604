// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/classpulse/classpulse/ent/predicate"
	"github.com/classpulse/classpulse/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdate) SetSubject(v string) *SessionEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSubject(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *SessionEventUpdate) SetChapter(v string) *SessionEventUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableChapter(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdate) SetTopic(v string) *SessionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTopic(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *SessionEventUpdate) SetClassName(v string) *SessionEventUpdate {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableClassName(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// SetClassLevel sets the "class_level" field.
func (_u *SessionEventUpdate) SetClassLevel(v int) *SessionEventUpdate {
	_u.mutation.ResetClassLevel()
	_u.mutation.SetClassLevel(v)
	return _u
}

// SetNillableClassLevel sets the "class_level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableClassLevel(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetClassLevel(*v)
	}
	return _u
}

// AddClassLevel adds value to the "class_level" field.
func (_u *SessionEventUpdate) AddClassLevel(v int) *SessionEventUpdate {
	_u.mutation.AddClassLevel(v)
	return _u
}

// SetSubtopics sets the "subtopics" field.
func (_u *SessionEventUpdate) SetSubtopics(v []string) *SessionEventUpdate {
	_u.mutation.SetSubtopics(v)
	return _u
}

// AppendSubtopics appends value to the "subtopics" field.
func (_u *SessionEventUpdate) AppendSubtopics(v []string) *SessionEventUpdate {
	_u.mutation.AppendSubtopics(v)
	return _u
}

// ClearSubtopics clears the value of the "subtopics" field.
func (_u *SessionEventUpdate) ClearSubtopics() *SessionEventUpdate {
	_u.mutation.ClearSubtopics()
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *SessionEventUpdate) SetMasteryPercentage(v float64) *SessionEventUpdate {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMasteryPercentage(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *SessionEventUpdate) AddMasteryPercentage(v float64) *SessionEventUpdate {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *SessionEventUpdate) SetQuestionsAsked(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestionsAsked(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *SessionEventUpdate) AddQuestionsAsked(v int) *SessionEventUpdate {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetInterventionCount sets the "intervention_count" field.
func (_u *SessionEventUpdate) SetInterventionCount(v int) *SessionEventUpdate {
	_u.mutation.ResetInterventionCount()
	_u.mutation.SetInterventionCount(v)
	return _u
}

// SetNillableInterventionCount sets the "intervention_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableInterventionCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetInterventionCount(*v)
	}
	return _u
}

// AddInterventionCount adds value to the "intervention_count" field.
func (_u *SessionEventUpdate) AddInterventionCount(v int) *SessionEventUpdate {
	_u.mutation.AddInterventionCount(v)
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *SessionEventUpdate) SetStopReason(v string) *SessionEventUpdate {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStopReason(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(sessionevent.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(sessionevent.FieldClassName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassLevel(); ok {
		_spec.SetField(sessionevent.FieldClassLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassLevel(); ok {
		_spec.AddField(sessionevent.FieldClassLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtopics(); ok {
		_spec.SetField(sessionevent.FieldSubtopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubtopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSubtopics, value)
		})
	}
	if _u.mutation.SubtopicsCleared() {
		_spec.ClearField(sessionevent.FieldSubtopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(sessionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(sessionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InterventionCount(); ok {
		_spec.SetField(sessionevent.FieldInterventionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterventionCount(); ok {
		_spec.AddField(sessionevent.FieldInterventionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(sessionevent.FieldStopReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *SessionEventUpdateOne) SetSubject(v string) *SessionEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSubject(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *SessionEventUpdateOne) SetChapter(v string) *SessionEventUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableChapter(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionEventUpdateOne) SetTopic(v string) *SessionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTopic(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetClassName sets the "class_name" field.
func (_u *SessionEventUpdateOne) SetClassName(v string) *SessionEventUpdateOne {
	_u.mutation.SetClassName(v)
	return _u
}

// SetNillableClassName sets the "class_name" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableClassName(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetClassName(*v)
	}
	return _u
}

// SetClassLevel sets the "class_level" field.
func (_u *SessionEventUpdateOne) SetClassLevel(v int) *SessionEventUpdateOne {
	_u.mutation.ResetClassLevel()
	_u.mutation.SetClassLevel(v)
	return _u
}

// SetNillableClassLevel sets the "class_level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableClassLevel(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetClassLevel(*v)
	}
	return _u
}

// AddClassLevel adds value to the "class_level" field.
func (_u *SessionEventUpdateOne) AddClassLevel(v int) *SessionEventUpdateOne {
	_u.mutation.AddClassLevel(v)
	return _u
}

// SetSubtopics sets the "subtopics" field.
func (_u *SessionEventUpdateOne) SetSubtopics(v []string) *SessionEventUpdateOne {
	_u.mutation.SetSubtopics(v)
	return _u
}

// AppendSubtopics appends value to the "subtopics" field.
func (_u *SessionEventUpdateOne) AppendSubtopics(v []string) *SessionEventUpdateOne {
	_u.mutation.AppendSubtopics(v)
	return _u
}

// ClearSubtopics clears the value of the "subtopics" field.
func (_u *SessionEventUpdateOne) ClearSubtopics() *SessionEventUpdateOne {
	_u.mutation.ClearSubtopics()
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *SessionEventUpdateOne) SetMasteryPercentage(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMasteryPercentage(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *SessionEventUpdateOne) AddMasteryPercentage(v float64) *SessionEventUpdateOne {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// SetQuestionsAsked sets the "questions_asked" field.
func (_u *SessionEventUpdateOne) SetQuestionsAsked(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestionsAsked()
	_u.mutation.SetQuestionsAsked(v)
	return _u
}

// SetNillableQuestionsAsked sets the "questions_asked" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestionsAsked(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAsked(*v)
	}
	return _u
}

// AddQuestionsAsked adds value to the "questions_asked" field.
func (_u *SessionEventUpdateOne) AddQuestionsAsked(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestionsAsked(v)
	return _u
}

// SetInterventionCount sets the "intervention_count" field.
func (_u *SessionEventUpdateOne) SetInterventionCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetInterventionCount()
	_u.mutation.SetInterventionCount(v)
	return _u
}

// SetNillableInterventionCount sets the "intervention_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableInterventionCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetInterventionCount(*v)
	}
	return _u
}

// AddInterventionCount adds value to the "intervention_count" field.
func (_u *SessionEventUpdateOne) AddInterventionCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddInterventionCount(v)
	return _u
}

// SetStopReason sets the "stop_reason" field.
func (_u *SessionEventUpdateOne) SetStopReason(v string) *SessionEventUpdateOne {
	_u.mutation.SetStopReason(v)
	return _u
}

// SetNillableStopReason sets the "stop_reason" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStopReason(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStopReason(*v)
	}
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(sessionevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(sessionevent.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassName(); ok {
		_spec.SetField(sessionevent.FieldClassName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClassLevel(); ok {
		_spec.SetField(sessionevent.FieldClassLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClassLevel(); ok {
		_spec.AddField(sessionevent.FieldClassLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Subtopics(); ok {
		_spec.SetField(sessionevent.FieldSubtopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubtopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldSubtopics, value)
		})
	}
	if _u.mutation.SubtopicsCleared() {
		_spec.ClearField(sessionevent.FieldSubtopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(sessionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(sessionevent.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAsked(); ok {
		_spec.SetField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAsked(); ok {
		_spec.AddField(sessionevent.FieldQuestionsAsked, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InterventionCount(); ok {
		_spec.SetField(sessionevent.FieldInterventionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterventionCount(); ok {
		_spec.AddField(sessionevent.FieldInterventionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StopReason(); ok {
		_spec.SetField(sessionevent.FieldStopReason, field.TypeString, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
