// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/classpulse/classpulse/ent/apirequestevent"
	"github.com/classpulse/classpulse/ent/predicate"
	"github.com/classpulse/classpulse/ent/sessionevent"
	"github.com/classpulse/classpulse/ent/snapshot"
	"github.com/classpulse/classpulse/ent/submissionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIRequestEvent = "APIRequestEvent"
	TypeSessionEvent    = "SessionEvent"
	TypeSnapshot        = "Snapshot"
	TypeSubmissionEvent = "SubmissionEvent"
)

// APIRequestEventMutation represents an operation that mutates the APIRequestEvent nodes in the graph.
type APIRequestEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	operation     *string
	session_id    *string
	latency_ms    *int64
	addlatency_ms *int64
	success       *bool
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*APIRequestEvent, error)
	predicates    []predicate.APIRequestEvent
}

var _ ent.Mutation = (*APIRequestEventMutation)(nil)

// apirequesteventOption allows management of the mutation configuration using functional options.
type apirequesteventOption func(*APIRequestEventMutation)

// newAPIRequestEventMutation creates new mutation for the APIRequestEvent entity.
func newAPIRequestEventMutation(c config, op Op, opts ...apirequesteventOption) *APIRequestEventMutation {
	m := &APIRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIRequestEventID sets the ID field of the mutation.
func withAPIRequestEventID(id int) apirequesteventOption {
	return func(m *APIRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *APIRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*APIRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIRequestEvent sets the old APIRequestEvent of the mutation.
func withAPIRequestEvent(node *APIRequestEvent) apirequesteventOption {
	return func(m *APIRequestEventMutation) {
		m.oldValue = func(context.Context) (*APIRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *APIRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *APIRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *APIRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *APIRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *APIRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *APIRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *APIRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *APIRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOperation sets the "operation" field.
func (m *APIRequestEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *APIRequestEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *APIRequestEventMutation) ResetOperation() {
	m.operation = nil
}

// SetSessionID sets the "session_id" field.
func (m *APIRequestEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *APIRequestEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *APIRequestEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *APIRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *APIRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *APIRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *APIRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *APIRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *APIRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *APIRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *APIRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *APIRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *APIRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the APIRequestEvent entity.
// If the APIRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *APIRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the APIRequestEventMutation builder.
func (m *APIRequestEventMutation) Where(ps ...predicate.APIRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIRequestEvent).
func (m *APIRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, apirequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, apirequestevent.FieldTimestamp)
	}
	if m.operation != nil {
		fields = append(fields, apirequestevent.FieldOperation)
	}
	if m.session_id != nil {
		fields = append(fields, apirequestevent.FieldSessionID)
	}
	if m.latency_ms != nil {
		fields = append(fields, apirequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, apirequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, apirequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apirequestevent.FieldSequence:
		return m.Sequence()
	case apirequestevent.FieldTimestamp:
		return m.Timestamp()
	case apirequestevent.FieldOperation:
		return m.Operation()
	case apirequestevent.FieldSessionID:
		return m.SessionID()
	case apirequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case apirequestevent.FieldSuccess:
		return m.Success()
	case apirequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apirequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case apirequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case apirequestevent.FieldOperation:
		return m.OldOperation(ctx)
	case apirequestevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case apirequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case apirequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case apirequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown APIRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apirequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case apirequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case apirequestevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case apirequestevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case apirequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case apirequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case apirequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown APIRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, apirequestevent.FieldSequence)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, apirequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case apirequestevent.FieldSequence:
		return m.AddedSequence()
	case apirequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case apirequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case apirequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown APIRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown APIRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIRequestEventMutation) ResetField(name string) error {
	switch name {
	case apirequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case apirequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case apirequestevent.FieldOperation:
		m.ResetOperation()
		return nil
	case apirequestevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case apirequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case apirequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case apirequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown APIRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APIRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APIRequestEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	action                *string
	subject               *string
	chapter               *string
	topic                 *string
	class_name            *string
	class_level           *int
	addclass_level        *int
	subtopics             *[]string
	appendsubtopics       []string
	mastery_percentage    *float64
	addmastery_percentage *float64
	questions_asked       *int
	addquestions_asked    *int
	intervention_count    *int
	addintervention_count *int
	stop_reason           *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionEvent, error)
	predicates            []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetSubject sets the "subject" field.
func (m *SessionEventMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *SessionEventMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *SessionEventMutation) ResetSubject() {
	m.subject = nil
}

// SetChapter sets the "chapter" field.
func (m *SessionEventMutation) SetChapter(s string) {
	m.chapter = &s
}

// Chapter returns the value of the "chapter" field in the mutation.
func (m *SessionEventMutation) Chapter() (r string, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapter returns the old "chapter" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldChapter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapter: %w", err)
	}
	return oldValue.Chapter, nil
}

// ResetChapter resets all changes to the "chapter" field.
func (m *SessionEventMutation) ResetChapter() {
	m.chapter = nil
}

// SetTopic sets the "topic" field.
func (m *SessionEventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *SessionEventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *SessionEventMutation) ResetTopic() {
	m.topic = nil
}

// SetClassName sets the "class_name" field.
func (m *SessionEventMutation) SetClassName(s string) {
	m.class_name = &s
}

// ClassName returns the value of the "class_name" field in the mutation.
func (m *SessionEventMutation) ClassName() (r string, exists bool) {
	v := m.class_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClassName returns the old "class_name" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldClassName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassName: %w", err)
	}
	return oldValue.ClassName, nil
}

// ResetClassName resets all changes to the "class_name" field.
func (m *SessionEventMutation) ResetClassName() {
	m.class_name = nil
}

// SetClassLevel sets the "class_level" field.
func (m *SessionEventMutation) SetClassLevel(i int) {
	m.class_level = &i
	m.addclass_level = nil
}

// ClassLevel returns the value of the "class_level" field in the mutation.
func (m *SessionEventMutation) ClassLevel() (r int, exists bool) {
	v := m.class_level
	if v == nil {
		return
	}
	return *v, true
}

// OldClassLevel returns the old "class_level" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldClassLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassLevel: %w", err)
	}
	return oldValue.ClassLevel, nil
}

// AddClassLevel adds i to the "class_level" field.
func (m *SessionEventMutation) AddClassLevel(i int) {
	if m.addclass_level != nil {
		*m.addclass_level += i
	} else {
		m.addclass_level = &i
	}
}

// AddedClassLevel returns the value that was added to the "class_level" field in this mutation.
func (m *SessionEventMutation) AddedClassLevel() (r int, exists bool) {
	v := m.addclass_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetClassLevel resets all changes to the "class_level" field.
func (m *SessionEventMutation) ResetClassLevel() {
	m.class_level = nil
	m.addclass_level = nil
}

// SetSubtopics sets the "subtopics" field.
func (m *SessionEventMutation) SetSubtopics(s []string) {
	m.subtopics = &s
	m.appendsubtopics = nil
}

// Subtopics returns the value of the "subtopics" field in the mutation.
func (m *SessionEventMutation) Subtopics() (r []string, exists bool) {
	v := m.subtopics
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopics returns the old "subtopics" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSubtopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopics: %w", err)
	}
	return oldValue.Subtopics, nil
}

// AppendSubtopics adds s to the "subtopics" field.
func (m *SessionEventMutation) AppendSubtopics(s []string) {
	m.appendsubtopics = append(m.appendsubtopics, s...)
}

// AppendedSubtopics returns the list of values that were appended to the "subtopics" field in this mutation.
func (m *SessionEventMutation) AppendedSubtopics() ([]string, bool) {
	if len(m.appendsubtopics) == 0 {
		return nil, false
	}
	return m.appendsubtopics, true
}

// ClearSubtopics clears the value of the "subtopics" field.
func (m *SessionEventMutation) ClearSubtopics() {
	m.subtopics = nil
	m.appendsubtopics = nil
	m.clearedFields[sessionevent.FieldSubtopics] = struct{}{}
}

// SubtopicsCleared returns if the "subtopics" field was cleared in this mutation.
func (m *SessionEventMutation) SubtopicsCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldSubtopics]
	return ok
}

// ResetSubtopics resets all changes to the "subtopics" field.
func (m *SessionEventMutation) ResetSubtopics() {
	m.subtopics = nil
	m.appendsubtopics = nil
	delete(m.clearedFields, sessionevent.FieldSubtopics)
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (m *SessionEventMutation) SetMasteryPercentage(f float64) {
	m.mastery_percentage = &f
	m.addmastery_percentage = nil
}

// MasteryPercentage returns the value of the "mastery_percentage" field in the mutation.
func (m *SessionEventMutation) MasteryPercentage() (r float64, exists bool) {
	v := m.mastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryPercentage returns the old "mastery_percentage" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldMasteryPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryPercentage: %w", err)
	}
	return oldValue.MasteryPercentage, nil
}

// AddMasteryPercentage adds f to the "mastery_percentage" field.
func (m *SessionEventMutation) AddMasteryPercentage(f float64) {
	if m.addmastery_percentage != nil {
		*m.addmastery_percentage += f
	} else {
		m.addmastery_percentage = &f
	}
}

// AddedMasteryPercentage returns the value that was added to the "mastery_percentage" field in this mutation.
func (m *SessionEventMutation) AddedMasteryPercentage() (r float64, exists bool) {
	v := m.addmastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryPercentage resets all changes to the "mastery_percentage" field.
func (m *SessionEventMutation) ResetMasteryPercentage() {
	m.mastery_percentage = nil
	m.addmastery_percentage = nil
}

// SetQuestionsAsked sets the "questions_asked" field.
func (m *SessionEventMutation) SetQuestionsAsked(i int) {
	m.questions_asked = &i
	m.addquestions_asked = nil
}

// QuestionsAsked returns the value of the "questions_asked" field in the mutation.
func (m *SessionEventMutation) QuestionsAsked() (r int, exists bool) {
	v := m.questions_asked
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAsked returns the old "questions_asked" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldQuestionsAsked(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAsked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAsked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAsked: %w", err)
	}
	return oldValue.QuestionsAsked, nil
}

// AddQuestionsAsked adds i to the "questions_asked" field.
func (m *SessionEventMutation) AddQuestionsAsked(i int) {
	if m.addquestions_asked != nil {
		*m.addquestions_asked += i
	} else {
		m.addquestions_asked = &i
	}
}

// AddedQuestionsAsked returns the value that was added to the "questions_asked" field in this mutation.
func (m *SessionEventMutation) AddedQuestionsAsked() (r int, exists bool) {
	v := m.addquestions_asked
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAsked resets all changes to the "questions_asked" field.
func (m *SessionEventMutation) ResetQuestionsAsked() {
	m.questions_asked = nil
	m.addquestions_asked = nil
}

// SetInterventionCount sets the "intervention_count" field.
func (m *SessionEventMutation) SetInterventionCount(i int) {
	m.intervention_count = &i
	m.addintervention_count = nil
}

// InterventionCount returns the value of the "intervention_count" field in the mutation.
func (m *SessionEventMutation) InterventionCount() (r int, exists bool) {
	v := m.intervention_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInterventionCount returns the old "intervention_count" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldInterventionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterventionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterventionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterventionCount: %w", err)
	}
	return oldValue.InterventionCount, nil
}

// AddInterventionCount adds i to the "intervention_count" field.
func (m *SessionEventMutation) AddInterventionCount(i int) {
	if m.addintervention_count != nil {
		*m.addintervention_count += i
	} else {
		m.addintervention_count = &i
	}
}

// AddedInterventionCount returns the value that was added to the "intervention_count" field in this mutation.
func (m *SessionEventMutation) AddedInterventionCount() (r int, exists bool) {
	v := m.addintervention_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInterventionCount resets all changes to the "intervention_count" field.
func (m *SessionEventMutation) ResetInterventionCount() {
	m.intervention_count = nil
	m.addintervention_count = nil
}

// SetStopReason sets the "stop_reason" field.
func (m *SessionEventMutation) SetStopReason(s string) {
	m.stop_reason = &s
}

// StopReason returns the value of the "stop_reason" field in the mutation.
func (m *SessionEventMutation) StopReason() (r string, exists bool) {
	v := m.stop_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldStopReason returns the old "stop_reason" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldStopReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStopReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStopReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStopReason: %w", err)
	}
	return oldValue.StopReason, nil
}

// ResetStopReason resets all changes to the "stop_reason" field.
func (m *SessionEventMutation) ResetStopReason() {
	m.stop_reason = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.subject != nil {
		fields = append(fields, sessionevent.FieldSubject)
	}
	if m.chapter != nil {
		fields = append(fields, sessionevent.FieldChapter)
	}
	if m.topic != nil {
		fields = append(fields, sessionevent.FieldTopic)
	}
	if m.class_name != nil {
		fields = append(fields, sessionevent.FieldClassName)
	}
	if m.class_level != nil {
		fields = append(fields, sessionevent.FieldClassLevel)
	}
	if m.subtopics != nil {
		fields = append(fields, sessionevent.FieldSubtopics)
	}
	if m.mastery_percentage != nil {
		fields = append(fields, sessionevent.FieldMasteryPercentage)
	}
	if m.questions_asked != nil {
		fields = append(fields, sessionevent.FieldQuestionsAsked)
	}
	if m.intervention_count != nil {
		fields = append(fields, sessionevent.FieldInterventionCount)
	}
	if m.stop_reason != nil {
		fields = append(fields, sessionevent.FieldStopReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldSubject:
		return m.Subject()
	case sessionevent.FieldChapter:
		return m.Chapter()
	case sessionevent.FieldTopic:
		return m.Topic()
	case sessionevent.FieldClassName:
		return m.ClassName()
	case sessionevent.FieldClassLevel:
		return m.ClassLevel()
	case sessionevent.FieldSubtopics:
		return m.Subtopics()
	case sessionevent.FieldMasteryPercentage:
		return m.MasteryPercentage()
	case sessionevent.FieldQuestionsAsked:
		return m.QuestionsAsked()
	case sessionevent.FieldInterventionCount:
		return m.InterventionCount()
	case sessionevent.FieldStopReason:
		return m.StopReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldSubject:
		return m.OldSubject(ctx)
	case sessionevent.FieldChapter:
		return m.OldChapter(ctx)
	case sessionevent.FieldTopic:
		return m.OldTopic(ctx)
	case sessionevent.FieldClassName:
		return m.OldClassName(ctx)
	case sessionevent.FieldClassLevel:
		return m.OldClassLevel(ctx)
	case sessionevent.FieldSubtopics:
		return m.OldSubtopics(ctx)
	case sessionevent.FieldMasteryPercentage:
		return m.OldMasteryPercentage(ctx)
	case sessionevent.FieldQuestionsAsked:
		return m.OldQuestionsAsked(ctx)
	case sessionevent.FieldInterventionCount:
		return m.OldInterventionCount(ctx)
	case sessionevent.FieldStopReason:
		return m.OldStopReason(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case sessionevent.FieldChapter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapter(v)
		return nil
	case sessionevent.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case sessionevent.FieldClassName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassName(v)
		return nil
	case sessionevent.FieldClassLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassLevel(v)
		return nil
	case sessionevent.FieldSubtopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopics(v)
		return nil
	case sessionevent.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryPercentage(v)
		return nil
	case sessionevent.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAsked(v)
		return nil
	case sessionevent.FieldInterventionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterventionCount(v)
		return nil
	case sessionevent.FieldStopReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStopReason(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addclass_level != nil {
		fields = append(fields, sessionevent.FieldClassLevel)
	}
	if m.addmastery_percentage != nil {
		fields = append(fields, sessionevent.FieldMasteryPercentage)
	}
	if m.addquestions_asked != nil {
		fields = append(fields, sessionevent.FieldQuestionsAsked)
	}
	if m.addintervention_count != nil {
		fields = append(fields, sessionevent.FieldInterventionCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldClassLevel:
		return m.AddedClassLevel()
	case sessionevent.FieldMasteryPercentage:
		return m.AddedMasteryPercentage()
	case sessionevent.FieldQuestionsAsked:
		return m.AddedQuestionsAsked()
	case sessionevent.FieldInterventionCount:
		return m.AddedInterventionCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldClassLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClassLevel(v)
		return nil
	case sessionevent.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryPercentage(v)
		return nil
	case sessionevent.FieldQuestionsAsked:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAsked(v)
		return nil
	case sessionevent.FieldInterventionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInterventionCount(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldSubtopics) {
		fields = append(fields, sessionevent.FieldSubtopics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldSubtopics:
		m.ClearSubtopics()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldSubject:
		m.ResetSubject()
		return nil
	case sessionevent.FieldChapter:
		m.ResetChapter()
		return nil
	case sessionevent.FieldTopic:
		m.ResetTopic()
		return nil
	case sessionevent.FieldClassName:
		m.ResetClassName()
		return nil
	case sessionevent.FieldClassLevel:
		m.ResetClassLevel()
		return nil
	case sessionevent.FieldSubtopics:
		m.ResetSubtopics()
		return nil
	case sessionevent.FieldMasteryPercentage:
		m.ResetMasteryPercentage()
		return nil
	case sessionevent.FieldQuestionsAsked:
		m.ResetQuestionsAsked()
		return nil
	case sessionevent.FieldInterventionCount:
		m.ResetInterventionCount()
		return nil
	case sessionevent.FieldStopReason:
		m.ResetStopReason()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// SubmissionEventMutation represents an operation that mutates the SubmissionEvent nodes in the graph.
type SubmissionEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	session_id              *string
	question_id             *string
	subtopic                *string
	preset                  *string
	response_count          *int
	addresponse_count       *int
	correct_count           *int
	addcorrect_count        *int
	question_consistency    *float64
	addquestion_consistency *float64
	mastery_percentage      *float64
	addmastery_percentage   *float64
	outcome                 *string
	next_action             *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SubmissionEvent, error)
	predicates              []predicate.SubmissionEvent
}

var _ ent.Mutation = (*SubmissionEventMutation)(nil)

// submissioneventOption allows management of the mutation configuration using functional options.
type submissioneventOption func(*SubmissionEventMutation)

// newSubmissionEventMutation creates new mutation for the SubmissionEvent entity.
func newSubmissionEventMutation(c config, op Op, opts ...submissioneventOption) *SubmissionEventMutation {
	m := &SubmissionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionEventID sets the ID field of the mutation.
func withSubmissionEventID(id int) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionEvent
		)
		m.oldValue = func(ctx context.Context) (*SubmissionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionEvent sets the old SubmissionEvent of the mutation.
func withSubmissionEvent(node *SubmissionEvent) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		m.oldValue = func(context.Context) (*SubmissionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SubmissionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SubmissionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SubmissionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SubmissionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SubmissionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SubmissionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SubmissionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SubmissionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SubmissionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SubmissionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SubmissionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SubmissionEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SubmissionEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SubmissionEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetSubtopic sets the "subtopic" field.
func (m *SubmissionEventMutation) SetSubtopic(s string) {
	m.subtopic = &s
}

// Subtopic returns the value of the "subtopic" field in the mutation.
func (m *SubmissionEventMutation) Subtopic() (r string, exists bool) {
	v := m.subtopic
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopic returns the old "subtopic" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSubtopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopic: %w", err)
	}
	return oldValue.Subtopic, nil
}

// ResetSubtopic resets all changes to the "subtopic" field.
func (m *SubmissionEventMutation) ResetSubtopic() {
	m.subtopic = nil
}

// SetPreset sets the "preset" field.
func (m *SubmissionEventMutation) SetPreset(s string) {
	m.preset = &s
}

// Preset returns the value of the "preset" field in the mutation.
func (m *SubmissionEventMutation) Preset() (r string, exists bool) {
	v := m.preset
	if v == nil {
		return
	}
	return *v, true
}

// OldPreset returns the old "preset" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldPreset(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreset: %w", err)
	}
	return oldValue.Preset, nil
}

// ResetPreset resets all changes to the "preset" field.
func (m *SubmissionEventMutation) ResetPreset() {
	m.preset = nil
}

// SetResponseCount sets the "response_count" field.
func (m *SubmissionEventMutation) SetResponseCount(i int) {
	m.response_count = &i
	m.addresponse_count = nil
}

// ResponseCount returns the value of the "response_count" field in the mutation.
func (m *SubmissionEventMutation) ResponseCount() (r int, exists bool) {
	v := m.response_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseCount returns the old "response_count" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldResponseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseCount: %w", err)
	}
	return oldValue.ResponseCount, nil
}

// AddResponseCount adds i to the "response_count" field.
func (m *SubmissionEventMutation) AddResponseCount(i int) {
	if m.addresponse_count != nil {
		*m.addresponse_count += i
	} else {
		m.addresponse_count = &i
	}
}

// AddedResponseCount returns the value that was added to the "response_count" field in this mutation.
func (m *SubmissionEventMutation) AddedResponseCount() (r int, exists bool) {
	v := m.addresponse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseCount resets all changes to the "response_count" field.
func (m *SubmissionEventMutation) ResetResponseCount() {
	m.response_count = nil
	m.addresponse_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *SubmissionEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *SubmissionEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *SubmissionEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *SubmissionEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *SubmissionEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetQuestionConsistency sets the "question_consistency" field.
func (m *SubmissionEventMutation) SetQuestionConsistency(f float64) {
	m.question_consistency = &f
	m.addquestion_consistency = nil
}

// QuestionConsistency returns the value of the "question_consistency" field in the mutation.
func (m *SubmissionEventMutation) QuestionConsistency() (r float64, exists bool) {
	v := m.question_consistency
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionConsistency returns the old "question_consistency" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldQuestionConsistency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionConsistency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionConsistency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionConsistency: %w", err)
	}
	return oldValue.QuestionConsistency, nil
}

// AddQuestionConsistency adds f to the "question_consistency" field.
func (m *SubmissionEventMutation) AddQuestionConsistency(f float64) {
	if m.addquestion_consistency != nil {
		*m.addquestion_consistency += f
	} else {
		m.addquestion_consistency = &f
	}
}

// AddedQuestionConsistency returns the value that was added to the "question_consistency" field in this mutation.
func (m *SubmissionEventMutation) AddedQuestionConsistency() (r float64, exists bool) {
	v := m.addquestion_consistency
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionConsistency resets all changes to the "question_consistency" field.
func (m *SubmissionEventMutation) ResetQuestionConsistency() {
	m.question_consistency = nil
	m.addquestion_consistency = nil
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (m *SubmissionEventMutation) SetMasteryPercentage(f float64) {
	m.mastery_percentage = &f
	m.addmastery_percentage = nil
}

// MasteryPercentage returns the value of the "mastery_percentage" field in the mutation.
func (m *SubmissionEventMutation) MasteryPercentage() (r float64, exists bool) {
	v := m.mastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryPercentage returns the old "mastery_percentage" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldMasteryPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryPercentage: %w", err)
	}
	return oldValue.MasteryPercentage, nil
}

// AddMasteryPercentage adds f to the "mastery_percentage" field.
func (m *SubmissionEventMutation) AddMasteryPercentage(f float64) {
	if m.addmastery_percentage != nil {
		*m.addmastery_percentage += f
	} else {
		m.addmastery_percentage = &f
	}
}

// AddedMasteryPercentage returns the value that was added to the "mastery_percentage" field in this mutation.
func (m *SubmissionEventMutation) AddedMasteryPercentage() (r float64, exists bool) {
	v := m.addmastery_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryPercentage resets all changes to the "mastery_percentage" field.
func (m *SubmissionEventMutation) ResetMasteryPercentage() {
	m.mastery_percentage = nil
	m.addmastery_percentage = nil
}

// SetOutcome sets the "outcome" field.
func (m *SubmissionEventMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *SubmissionEventMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *SubmissionEventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetNextAction sets the "next_action" field.
func (m *SubmissionEventMutation) SetNextAction(s string) {
	m.next_action = &s
}

// NextAction returns the value of the "next_action" field in the mutation.
func (m *SubmissionEventMutation) NextAction() (r string, exists bool) {
	v := m.next_action
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAction returns the old "next_action" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldNextAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAction: %w", err)
	}
	return oldValue.NextAction, nil
}

// ResetNextAction resets all changes to the "next_action" field.
func (m *SubmissionEventMutation) ResetNextAction() {
	m.next_action = nil
}

// Where appends a list predicates to the SubmissionEventMutation builder.
func (m *SubmissionEventMutation) Where(ps ...predicate.SubmissionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionEvent).
func (m *SubmissionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, submissionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, submissionevent.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, submissionevent.FieldQuestionID)
	}
	if m.subtopic != nil {
		fields = append(fields, submissionevent.FieldSubtopic)
	}
	if m.preset != nil {
		fields = append(fields, submissionevent.FieldPreset)
	}
	if m.response_count != nil {
		fields = append(fields, submissionevent.FieldResponseCount)
	}
	if m.correct_count != nil {
		fields = append(fields, submissionevent.FieldCorrectCount)
	}
	if m.question_consistency != nil {
		fields = append(fields, submissionevent.FieldQuestionConsistency)
	}
	if m.mastery_percentage != nil {
		fields = append(fields, submissionevent.FieldMasteryPercentage)
	}
	if m.outcome != nil {
		fields = append(fields, submissionevent.FieldOutcome)
	}
	if m.next_action != nil {
		fields = append(fields, submissionevent.FieldNextAction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.Sequence()
	case submissionevent.FieldTimestamp:
		return m.Timestamp()
	case submissionevent.FieldSessionID:
		return m.SessionID()
	case submissionevent.FieldQuestionID:
		return m.QuestionID()
	case submissionevent.FieldSubtopic:
		return m.Subtopic()
	case submissionevent.FieldPreset:
		return m.Preset()
	case submissionevent.FieldResponseCount:
		return m.ResponseCount()
	case submissionevent.FieldCorrectCount:
		return m.CorrectCount()
	case submissionevent.FieldQuestionConsistency:
		return m.QuestionConsistency()
	case submissionevent.FieldMasteryPercentage:
		return m.MasteryPercentage()
	case submissionevent.FieldOutcome:
		return m.Outcome()
	case submissionevent.FieldNextAction:
		return m.NextAction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionevent.FieldSequence:
		return m.OldSequence(ctx)
	case submissionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case submissionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case submissionevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case submissionevent.FieldSubtopic:
		return m.OldSubtopic(ctx)
	case submissionevent.FieldPreset:
		return m.OldPreset(ctx)
	case submissionevent.FieldResponseCount:
		return m.OldResponseCount(ctx)
	case submissionevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case submissionevent.FieldQuestionConsistency:
		return m.OldQuestionConsistency(ctx)
	case submissionevent.FieldMasteryPercentage:
		return m.OldMasteryPercentage(ctx)
	case submissionevent.FieldOutcome:
		return m.OldOutcome(ctx)
	case submissionevent.FieldNextAction:
		return m.OldNextAction(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case submissionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case submissionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case submissionevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case submissionevent.FieldSubtopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopic(v)
		return nil
	case submissionevent.FieldPreset:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreset(v)
		return nil
	case submissionevent.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseCount(v)
		return nil
	case submissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case submissionevent.FieldQuestionConsistency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionConsistency(v)
		return nil
	case submissionevent.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryPercentage(v)
		return nil
	case submissionevent.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case submissionevent.FieldNextAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAction(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.addresponse_count != nil {
		fields = append(fields, submissionevent.FieldResponseCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, submissionevent.FieldCorrectCount)
	}
	if m.addquestion_consistency != nil {
		fields = append(fields, submissionevent.FieldQuestionConsistency)
	}
	if m.addmastery_percentage != nil {
		fields = append(fields, submissionevent.FieldMasteryPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.AddedSequence()
	case submissionevent.FieldResponseCount:
		return m.AddedResponseCount()
	case submissionevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case submissionevent.FieldQuestionConsistency:
		return m.AddedQuestionConsistency()
	case submissionevent.FieldMasteryPercentage:
		return m.AddedMasteryPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case submissionevent.FieldResponseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseCount(v)
		return nil
	case submissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case submissionevent.FieldQuestionConsistency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionConsistency(v)
		return nil
	case submissionevent.FieldMasteryPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmissionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ResetField(name string) error {
	switch name {
	case submissionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case submissionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case submissionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case submissionevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case submissionevent.FieldSubtopic:
		m.ResetSubtopic()
		return nil
	case submissionevent.FieldPreset:
		m.ResetPreset()
		return nil
	case submissionevent.FieldResponseCount:
		m.ResetResponseCount()
		return nil
	case submissionevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case submissionevent.FieldQuestionConsistency:
		m.ResetQuestionConsistency()
		return nil
	case submissionevent.FieldMasteryPercentage:
		m.ResetMasteryPercentage()
		return nil
	case submissionevent.FieldOutcome:
		m.ResetOutcome()
		return nil
	case submissionevent.FieldNextAction:
		m.ResetNextAction()
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent edge %s", name)
}
