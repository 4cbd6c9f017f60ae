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
	"github.com/walkinmyshoes/wims/ent/assessmentevent"
	"github.com/walkinmyshoes/wims/ent/certificate"
	"github.com/walkinmyshoes/wims/ent/predicate"
	"github.com/walkinmyshoes/wims/ent/profilesnapshot"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
	"github.com/walkinmyshoes/wims/ent/scoreevent"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentEvent = "AssessmentEvent"
	TypeCertificate     = "Certificate"
	TypeProfileSnapshot = "ProfileSnapshot"
	TypeScenarioEvent   = "ScenarioEvent"
	TypeScoreEvent      = "ScoreEvent"
	TypeSessionEvent    = "SessionEvent"
)

// AssessmentEventMutation represents an operation that mutates the AssessmentEvent nodes in the graph.
type AssessmentEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	user_id       *string
	phase         *string
	score         *float64
	addscore      *float64
	answers       *[]string
	appendanswers []string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AssessmentEvent, error)
	predicates    []predicate.AssessmentEvent
}

var _ ent.Mutation = (*AssessmentEventMutation)(nil)

// assessmenteventOption allows management of the mutation configuration using functional options.
type assessmenteventOption func(*AssessmentEventMutation)

// newAssessmentEventMutation creates new mutation for the AssessmentEvent entity.
func newAssessmentEventMutation(c config, op Op, opts ...assessmenteventOption) *AssessmentEventMutation {
	m := &AssessmentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentEventID sets the ID field of the mutation.
func withAssessmentEventID(id int) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessmentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentEvent sets the old AssessmentEvent of the mutation.
func withAssessmentEvent(node *AssessmentEvent) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		m.oldValue = func(context.Context) (*AssessmentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *AssessmentEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *AssessmentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *AssessmentEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AssessmentEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AssessmentEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AssessmentEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetPhase sets the "phase" field.
func (m *AssessmentEventMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AssessmentEventMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *AssessmentEventMutation) ResetPhase() {
	m.phase = nil
}

// SetScore sets the "score" field.
func (m *AssessmentEventMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AssessmentEventMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AssessmentEventMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AssessmentEventMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AssessmentEventMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAnswers sets the "answers" field.
func (m *AssessmentEventMutation) SetAnswers(s []string) {
	m.answers = &s
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *AssessmentEventMutation) Answers() (r []string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds s to the "answers" field.
func (m *AssessmentEventMutation) AppendAnswers(s []string) {
	m.appendanswers = append(m.appendanswers, s...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *AssessmentEventMutation) AppendedAnswers() ([]string, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ClearAnswers clears the value of the "answers" field.
func (m *AssessmentEventMutation) ClearAnswers() {
	m.answers = nil
	m.appendanswers = nil
	m.clearedFields[assessmentevent.FieldAnswers] = struct{}{}
}

// AnswersCleared returns if the "answers" field was cleared in this mutation.
func (m *AssessmentEventMutation) AnswersCleared() bool {
	_, ok := m.clearedFields[assessmentevent.FieldAnswers]
	return ok
}

// ResetAnswers resets all changes to the "answers" field.
func (m *AssessmentEventMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
	delete(m.clearedFields, assessmentevent.FieldAnswers)
}

// Where appends a list predicates to the AssessmentEventMutation builder.
func (m *AssessmentEventMutation) Where(ps ...predicate.AssessmentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentEvent).
func (m *AssessmentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, assessmentevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, assessmentevent.FieldUserID)
	}
	if m.phase != nil {
		fields = append(fields, assessmentevent.FieldPhase)
	}
	if m.score != nil {
		fields = append(fields, assessmentevent.FieldScore)
	}
	if m.answers != nil {
		fields = append(fields, assessmentevent.FieldAnswers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.Sequence()
	case assessmentevent.FieldTimestamp:
		return m.Timestamp()
	case assessmentevent.FieldSessionID:
		return m.SessionID()
	case assessmentevent.FieldUserID:
		return m.UserID()
	case assessmentevent.FieldPhase:
		return m.Phase()
	case assessmentevent.FieldScore:
		return m.Score()
	case assessmentevent.FieldAnswers:
		return m.Answers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessmentevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessmentevent.FieldUserID:
		return m.OldUserID(ctx)
	case assessmentevent.FieldPhase:
		return m.OldPhase(ctx)
	case assessmentevent.FieldScore:
		return m.OldScore(ctx)
	case assessmentevent.FieldAnswers:
		return m.OldAnswers(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessmentevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessmentevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case assessmentevent.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case assessmentevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case assessmentevent.FieldAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.addscore != nil {
		fields = append(fields, assessmentevent.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.AddedSequence()
	case assessmentevent.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentevent.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentevent.FieldAnswers) {
		fields = append(fields, assessmentevent.FieldAnswers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ClearField(name string) error {
	switch name {
	case assessmentevent.FieldAnswers:
		m.ClearAnswers()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ResetField(name string) error {
	switch name {
	case assessmentevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessmentevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessmentevent.FieldUserID:
		m.ResetUserID()
		return nil
	case assessmentevent.FieldPhase:
		m.ResetPhase()
		return nil
	case assessmentevent.FieldScore:
		m.ResetScore()
		return nil
	case assessmentevent.FieldAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent edge %s", name)
}

// CertificateMutation represents an operation that mutates the Certificate nodes in the graph.
type CertificateMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	cert_id                *string
	user_name              *string
	score                  *int
	addscore               *int
	date                   *string
	scenarios_completed    *int
	addscenarios_completed *int
	badge                  *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Certificate, error)
	predicates             []predicate.Certificate
}

var _ ent.Mutation = (*CertificateMutation)(nil)

// certificateOption allows management of the mutation configuration using functional options.
type certificateOption func(*CertificateMutation)

// newCertificateMutation creates new mutation for the Certificate entity.
func newCertificateMutation(c config, op Op, opts ...certificateOption) *CertificateMutation {
	m := &CertificateMutation{
		config:        c,
		op:            op,
		typ:           TypeCertificate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCertificateID sets the ID field of the mutation.
func withCertificateID(id int) certificateOption {
	return func(m *CertificateMutation) {
		var (
			err   error
			once  sync.Once
			value *Certificate
		)
		m.oldValue = func(ctx context.Context) (*Certificate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Certificate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCertificate sets the old Certificate of the mutation.
func withCertificate(node *Certificate) certificateOption {
	return func(m *CertificateMutation) {
		m.oldValue = func(context.Context) (*Certificate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CertificateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CertificateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CertificateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CertificateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Certificate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCertID sets the "cert_id" field.
func (m *CertificateMutation) SetCertID(s string) {
	m.cert_id = &s
}

// CertID returns the value of the "cert_id" field in the mutation.
func (m *CertificateMutation) CertID() (r string, exists bool) {
	v := m.cert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCertID returns the old "cert_id" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertID: %w", err)
	}
	return oldValue.CertID, nil
}

// ResetCertID resets all changes to the "cert_id" field.
func (m *CertificateMutation) ResetCertID() {
	m.cert_id = nil
}

// SetUserName sets the "user_name" field.
func (m *CertificateMutation) SetUserName(s string) {
	m.user_name = &s
}

// UserName returns the value of the "user_name" field in the mutation.
func (m *CertificateMutation) UserName() (r string, exists bool) {
	v := m.user_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserName returns the old "user_name" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldUserName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserName: %w", err)
	}
	return oldValue.UserName, nil
}

// ResetUserName resets all changes to the "user_name" field.
func (m *CertificateMutation) ResetUserName() {
	m.user_name = nil
}

// SetScore sets the "score" field.
func (m *CertificateMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *CertificateMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *CertificateMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *CertificateMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *CertificateMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDate sets the "date" field.
func (m *CertificateMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *CertificateMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *CertificateMutation) ResetDate() {
	m.date = nil
}

// SetScenariosCompleted sets the "scenarios_completed" field.
func (m *CertificateMutation) SetScenariosCompleted(i int) {
	m.scenarios_completed = &i
	m.addscenarios_completed = nil
}

// ScenariosCompleted returns the value of the "scenarios_completed" field in the mutation.
func (m *CertificateMutation) ScenariosCompleted() (r int, exists bool) {
	v := m.scenarios_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldScenariosCompleted returns the old "scenarios_completed" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldScenariosCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenariosCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenariosCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenariosCompleted: %w", err)
	}
	return oldValue.ScenariosCompleted, nil
}

// AddScenariosCompleted adds i to the "scenarios_completed" field.
func (m *CertificateMutation) AddScenariosCompleted(i int) {
	if m.addscenarios_completed != nil {
		*m.addscenarios_completed += i
	} else {
		m.addscenarios_completed = &i
	}
}

// AddedScenariosCompleted returns the value that was added to the "scenarios_completed" field in this mutation.
func (m *CertificateMutation) AddedScenariosCompleted() (r int, exists bool) {
	v := m.addscenarios_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetScenariosCompleted resets all changes to the "scenarios_completed" field.
func (m *CertificateMutation) ResetScenariosCompleted() {
	m.scenarios_completed = nil
	m.addscenarios_completed = nil
}

// SetBadge sets the "badge" field.
func (m *CertificateMutation) SetBadge(s string) {
	m.badge = &s
}

// Badge returns the value of the "badge" field in the mutation.
func (m *CertificateMutation) Badge() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadge returns the old "badge" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldBadge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadge: %w", err)
	}
	return oldValue.Badge, nil
}

// ResetBadge resets all changes to the "badge" field.
func (m *CertificateMutation) ResetBadge() {
	m.badge = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CertificateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CertificateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Certificate entity.
// If the Certificate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CertificateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CertificateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CertificateMutation builder.
func (m *CertificateMutation) Where(ps ...predicate.Certificate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CertificateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CertificateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Certificate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CertificateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CertificateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Certificate).
func (m *CertificateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CertificateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.cert_id != nil {
		fields = append(fields, certificate.FieldCertID)
	}
	if m.user_name != nil {
		fields = append(fields, certificate.FieldUserName)
	}
	if m.score != nil {
		fields = append(fields, certificate.FieldScore)
	}
	if m.date != nil {
		fields = append(fields, certificate.FieldDate)
	}
	if m.scenarios_completed != nil {
		fields = append(fields, certificate.FieldScenariosCompleted)
	}
	if m.badge != nil {
		fields = append(fields, certificate.FieldBadge)
	}
	if m.created_at != nil {
		fields = append(fields, certificate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CertificateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case certificate.FieldCertID:
		return m.CertID()
	case certificate.FieldUserName:
		return m.UserName()
	case certificate.FieldScore:
		return m.Score()
	case certificate.FieldDate:
		return m.Date()
	case certificate.FieldScenariosCompleted:
		return m.ScenariosCompleted()
	case certificate.FieldBadge:
		return m.Badge()
	case certificate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CertificateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case certificate.FieldCertID:
		return m.OldCertID(ctx)
	case certificate.FieldUserName:
		return m.OldUserName(ctx)
	case certificate.FieldScore:
		return m.OldScore(ctx)
	case certificate.FieldDate:
		return m.OldDate(ctx)
	case certificate.FieldScenariosCompleted:
		return m.OldScenariosCompleted(ctx)
	case certificate.FieldBadge:
		return m.OldBadge(ctx)
	case certificate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Certificate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case certificate.FieldCertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertID(v)
		return nil
	case certificate.FieldUserName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserName(v)
		return nil
	case certificate.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case certificate.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case certificate.FieldScenariosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenariosCompleted(v)
		return nil
	case certificate.FieldBadge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadge(v)
		return nil
	case certificate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CertificateMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, certificate.FieldScore)
	}
	if m.addscenarios_completed != nil {
		fields = append(fields, certificate.FieldScenariosCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CertificateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case certificate.FieldScore:
		return m.AddedScore()
	case certificate.FieldScenariosCompleted:
		return m.AddedScenariosCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CertificateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case certificate.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case certificate.FieldScenariosCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScenariosCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Certificate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CertificateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CertificateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CertificateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Certificate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CertificateMutation) ResetField(name string) error {
	switch name {
	case certificate.FieldCertID:
		m.ResetCertID()
		return nil
	case certificate.FieldUserName:
		m.ResetUserName()
		return nil
	case certificate.FieldScore:
		m.ResetScore()
		return nil
	case certificate.FieldDate:
		m.ResetDate()
		return nil
	case certificate.FieldScenariosCompleted:
		m.ResetScenariosCompleted()
		return nil
	case certificate.FieldBadge:
		m.ResetBadge()
		return nil
	case certificate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Certificate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CertificateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CertificateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CertificateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CertificateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CertificateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CertificateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CertificateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Certificate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CertificateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Certificate edge %s", name)
}

// ProfileSnapshotMutation represents an operation that mutates the ProfileSnapshot nodes in the graph.
type ProfileSnapshotMutation struct {
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
	oldValue      func(context.Context) (*ProfileSnapshot, error)
	predicates    []predicate.ProfileSnapshot
}

var _ ent.Mutation = (*ProfileSnapshotMutation)(nil)

// profilesnapshotOption allows management of the mutation configuration using functional options.
type profilesnapshotOption func(*ProfileSnapshotMutation)

// newProfileSnapshotMutation creates new mutation for the ProfileSnapshot entity.
func newProfileSnapshotMutation(c config, op Op, opts ...profilesnapshotOption) *ProfileSnapshotMutation {
	m := &ProfileSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeProfileSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileSnapshotID sets the ID field of the mutation.
func withProfileSnapshotID(id int) profilesnapshotOption {
	return func(m *ProfileSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ProfileSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ProfileSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProfileSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfileSnapshot sets the old ProfileSnapshot of the mutation.
func withProfileSnapshot(node *ProfileSnapshot) profilesnapshotOption {
	return func(m *ProfileSnapshotMutation) {
		m.oldValue = func(context.Context) (*ProfileSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProfileSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ProfileSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ProfileSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ProfileSnapshot entity.
// If the ProfileSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *ProfileSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ProfileSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ProfileSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ProfileSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ProfileSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ProfileSnapshot entity.
// If the ProfileSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *ProfileSnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *ProfileSnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the ProfileSnapshot entity.
// If the ProfileSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
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
func (m *ProfileSnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the ProfileSnapshotMutation builder.
func (m *ProfileSnapshotMutation) Where(ps ...predicate.ProfileSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProfileSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProfileSnapshot).
func (m *ProfileSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, profilesnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, profilesnapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, profilesnapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profilesnapshot.FieldSequence:
		return m.Sequence()
	case profilesnapshot.FieldTimestamp:
		return m.Timestamp()
	case profilesnapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profilesnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case profilesnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case profilesnapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profilesnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case profilesnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case profilesnapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, profilesnapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profilesnapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profilesnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ProfileSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileSnapshotMutation) ResetField(name string) error {
	switch name {
	case profilesnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case profilesnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case profilesnapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown ProfileSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProfileSnapshot edge %s", name)
}

// ScenarioEventMutation represents an operation that mutates the ScenarioEvent nodes in the graph.
type ScenarioEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	user_id               *string
	scenario              *string
	tasks_completed       *int
	addtasks_completed    *int
	total_tasks           *int
	addtotal_tasks        *int
	completion_time_ms    *int64
	addcompletion_time_ms *int64
	errors                *int
	adderrors             *int
	help_requests         *int
	addhelp_requests      *int
	frustration_events    *int
	addfrustration_events *int
	total                 *float64
	addtotal              *float64
	breakdown             *map[string]float64
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ScenarioEvent, error)
	predicates            []predicate.ScenarioEvent
}

var _ ent.Mutation = (*ScenarioEventMutation)(nil)

// scenarioeventOption allows management of the mutation configuration using functional options.
type scenarioeventOption func(*ScenarioEventMutation)

// newScenarioEventMutation creates new mutation for the ScenarioEvent entity.
func newScenarioEventMutation(c config, op Op, opts ...scenarioeventOption) *ScenarioEventMutation {
	m := &ScenarioEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScenarioEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScenarioEventID sets the ID field of the mutation.
func withScenarioEventID(id int) scenarioeventOption {
	return func(m *ScenarioEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScenarioEvent
		)
		m.oldValue = func(ctx context.Context) (*ScenarioEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScenarioEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScenarioEvent sets the old ScenarioEvent of the mutation.
func withScenarioEvent(node *ScenarioEvent) scenarioeventOption {
	return func(m *ScenarioEventMutation) {
		m.oldValue = func(context.Context) (*ScenarioEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScenarioEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScenarioEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScenarioEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScenarioEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScenarioEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScenarioEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScenarioEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *ScenarioEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScenarioEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScenarioEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScenarioEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScenarioEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *ScenarioEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ScenarioEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScenarioEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *ScenarioEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ScenarioEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScenarioEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScenarioEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetScenario sets the "scenario" field.
func (m *ScenarioEventMutation) SetScenario(s string) {
	m.scenario = &s
}

// Scenario returns the value of the "scenario" field in the mutation.
func (m *ScenarioEventMutation) Scenario() (r string, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenario returns the old "scenario" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldScenario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenario: %w", err)
	}
	return oldValue.Scenario, nil
}

// ResetScenario resets all changes to the "scenario" field.
func (m *ScenarioEventMutation) ResetScenario() {
	m.scenario = nil
}

// SetTasksCompleted sets the "tasks_completed" field.
func (m *ScenarioEventMutation) SetTasksCompleted(i int) {
	m.tasks_completed = &i
	m.addtasks_completed = nil
}

// TasksCompleted returns the value of the "tasks_completed" field in the mutation.
func (m *ScenarioEventMutation) TasksCompleted() (r int, exists bool) {
	v := m.tasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTasksCompleted returns the old "tasks_completed" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTasksCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasksCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasksCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasksCompleted: %w", err)
	}
	return oldValue.TasksCompleted, nil
}

// AddTasksCompleted adds i to the "tasks_completed" field.
func (m *ScenarioEventMutation) AddTasksCompleted(i int) {
	if m.addtasks_completed != nil {
		*m.addtasks_completed += i
	} else {
		m.addtasks_completed = &i
	}
}

// AddedTasksCompleted returns the value that was added to the "tasks_completed" field in this mutation.
func (m *ScenarioEventMutation) AddedTasksCompleted() (r int, exists bool) {
	v := m.addtasks_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTasksCompleted resets all changes to the "tasks_completed" field.
func (m *ScenarioEventMutation) ResetTasksCompleted() {
	m.tasks_completed = nil
	m.addtasks_completed = nil
}

// SetTotalTasks sets the "total_tasks" field.
func (m *ScenarioEventMutation) SetTotalTasks(i int) {
	m.total_tasks = &i
	m.addtotal_tasks = nil
}

// TotalTasks returns the value of the "total_tasks" field in the mutation.
func (m *ScenarioEventMutation) TotalTasks() (r int, exists bool) {
	v := m.total_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTasks returns the old "total_tasks" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTotalTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTasks: %w", err)
	}
	return oldValue.TotalTasks, nil
}

// AddTotalTasks adds i to the "total_tasks" field.
func (m *ScenarioEventMutation) AddTotalTasks(i int) {
	if m.addtotal_tasks != nil {
		*m.addtotal_tasks += i
	} else {
		m.addtotal_tasks = &i
	}
}

// AddedTotalTasks returns the value that was added to the "total_tasks" field in this mutation.
func (m *ScenarioEventMutation) AddedTotalTasks() (r int, exists bool) {
	v := m.addtotal_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTasks resets all changes to the "total_tasks" field.
func (m *ScenarioEventMutation) ResetTotalTasks() {
	m.total_tasks = nil
	m.addtotal_tasks = nil
}

// SetCompletionTimeMs sets the "completion_time_ms" field.
func (m *ScenarioEventMutation) SetCompletionTimeMs(i int64) {
	m.completion_time_ms = &i
	m.addcompletion_time_ms = nil
}

// CompletionTimeMs returns the value of the "completion_time_ms" field in the mutation.
func (m *ScenarioEventMutation) CompletionTimeMs() (r int64, exists bool) {
	v := m.completion_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTimeMs returns the old "completion_time_ms" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldCompletionTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTimeMs: %w", err)
	}
	return oldValue.CompletionTimeMs, nil
}

// AddCompletionTimeMs adds i to the "completion_time_ms" field.
func (m *ScenarioEventMutation) AddCompletionTimeMs(i int64) {
	if m.addcompletion_time_ms != nil {
		*m.addcompletion_time_ms += i
	} else {
		m.addcompletion_time_ms = &i
	}
}

// AddedCompletionTimeMs returns the value that was added to the "completion_time_ms" field in this mutation.
func (m *ScenarioEventMutation) AddedCompletionTimeMs() (r int64, exists bool) {
	v := m.addcompletion_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTimeMs resets all changes to the "completion_time_ms" field.
func (m *ScenarioEventMutation) ResetCompletionTimeMs() {
	m.completion_time_ms = nil
	m.addcompletion_time_ms = nil
}

// SetErrors sets the "errors" field.
func (m *ScenarioEventMutation) SetErrors(i int) {
	m.errors = &i
	m.adderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *ScenarioEventMutation) Errors() (r int, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AddErrors adds i to the "errors" field.
func (m *ScenarioEventMutation) AddErrors(i int) {
	if m.adderrors != nil {
		*m.adderrors += i
	} else {
		m.adderrors = &i
	}
}

// AddedErrors returns the value that was added to the "errors" field in this mutation.
func (m *ScenarioEventMutation) AddedErrors() (r int, exists bool) {
	v := m.adderrors
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrors resets all changes to the "errors" field.
func (m *ScenarioEventMutation) ResetErrors() {
	m.errors = nil
	m.adderrors = nil
}

// SetHelpRequests sets the "help_requests" field.
func (m *ScenarioEventMutation) SetHelpRequests(i int) {
	m.help_requests = &i
	m.addhelp_requests = nil
}

// HelpRequests returns the value of the "help_requests" field in the mutation.
func (m *ScenarioEventMutation) HelpRequests() (r int, exists bool) {
	v := m.help_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldHelpRequests returns the old "help_requests" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldHelpRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHelpRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHelpRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHelpRequests: %w", err)
	}
	return oldValue.HelpRequests, nil
}

// AddHelpRequests adds i to the "help_requests" field.
func (m *ScenarioEventMutation) AddHelpRequests(i int) {
	if m.addhelp_requests != nil {
		*m.addhelp_requests += i
	} else {
		m.addhelp_requests = &i
	}
}

// AddedHelpRequests returns the value that was added to the "help_requests" field in this mutation.
func (m *ScenarioEventMutation) AddedHelpRequests() (r int, exists bool) {
	v := m.addhelp_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetHelpRequests resets all changes to the "help_requests" field.
func (m *ScenarioEventMutation) ResetHelpRequests() {
	m.help_requests = nil
	m.addhelp_requests = nil
}

// SetFrustrationEvents sets the "frustration_events" field.
func (m *ScenarioEventMutation) SetFrustrationEvents(i int) {
	m.frustration_events = &i
	m.addfrustration_events = nil
}

// FrustrationEvents returns the value of the "frustration_events" field in the mutation.
func (m *ScenarioEventMutation) FrustrationEvents() (r int, exists bool) {
	v := m.frustration_events
	if v == nil {
		return
	}
	return *v, true
}

// OldFrustrationEvents returns the old "frustration_events" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldFrustrationEvents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrustrationEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrustrationEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrustrationEvents: %w", err)
	}
	return oldValue.FrustrationEvents, nil
}

// AddFrustrationEvents adds i to the "frustration_events" field.
func (m *ScenarioEventMutation) AddFrustrationEvents(i int) {
	if m.addfrustration_events != nil {
		*m.addfrustration_events += i
	} else {
		m.addfrustration_events = &i
	}
}

// AddedFrustrationEvents returns the value that was added to the "frustration_events" field in this mutation.
func (m *ScenarioEventMutation) AddedFrustrationEvents() (r int, exists bool) {
	v := m.addfrustration_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrustrationEvents resets all changes to the "frustration_events" field.
func (m *ScenarioEventMutation) ResetFrustrationEvents() {
	m.frustration_events = nil
	m.addfrustration_events = nil
}

// SetTotal sets the "total" field.
func (m *ScenarioEventMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ScenarioEventMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ScenarioEventMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ScenarioEventMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ScenarioEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetBreakdown sets the "breakdown" field.
func (m *ScenarioEventMutation) SetBreakdown(value map[string]float64) {
	m.breakdown = &value
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *ScenarioEventMutation) Breakdown() (r map[string]float64, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the ScenarioEvent entity.
// If the ScenarioEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScenarioEventMutation) OldBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *ScenarioEventMutation) ClearBreakdown() {
	m.breakdown = nil
	m.clearedFields[scenarioevent.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *ScenarioEventMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[scenarioevent.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *ScenarioEventMutation) ResetBreakdown() {
	m.breakdown = nil
	delete(m.clearedFields, scenarioevent.FieldBreakdown)
}

// Where appends a list predicates to the ScenarioEventMutation builder.
func (m *ScenarioEventMutation) Where(ps ...predicate.ScenarioEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScenarioEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScenarioEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScenarioEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScenarioEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScenarioEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScenarioEvent).
func (m *ScenarioEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScenarioEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, scenarioevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scenarioevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, scenarioevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, scenarioevent.FieldUserID)
	}
	if m.scenario != nil {
		fields = append(fields, scenarioevent.FieldScenario)
	}
	if m.tasks_completed != nil {
		fields = append(fields, scenarioevent.FieldTasksCompleted)
	}
	if m.total_tasks != nil {
		fields = append(fields, scenarioevent.FieldTotalTasks)
	}
	if m.completion_time_ms != nil {
		fields = append(fields, scenarioevent.FieldCompletionTimeMs)
	}
	if m.errors != nil {
		fields = append(fields, scenarioevent.FieldErrors)
	}
	if m.help_requests != nil {
		fields = append(fields, scenarioevent.FieldHelpRequests)
	}
	if m.frustration_events != nil {
		fields = append(fields, scenarioevent.FieldFrustrationEvents)
	}
	if m.total != nil {
		fields = append(fields, scenarioevent.FieldTotal)
	}
	if m.breakdown != nil {
		fields = append(fields, scenarioevent.FieldBreakdown)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScenarioEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.Sequence()
	case scenarioevent.FieldTimestamp:
		return m.Timestamp()
	case scenarioevent.FieldSessionID:
		return m.SessionID()
	case scenarioevent.FieldUserID:
		return m.UserID()
	case scenarioevent.FieldScenario:
		return m.Scenario()
	case scenarioevent.FieldTasksCompleted:
		return m.TasksCompleted()
	case scenarioevent.FieldTotalTasks:
		return m.TotalTasks()
	case scenarioevent.FieldCompletionTimeMs:
		return m.CompletionTimeMs()
	case scenarioevent.FieldErrors:
		return m.Errors()
	case scenarioevent.FieldHelpRequests:
		return m.HelpRequests()
	case scenarioevent.FieldFrustrationEvents:
		return m.FrustrationEvents()
	case scenarioevent.FieldTotal:
		return m.Total()
	case scenarioevent.FieldBreakdown:
		return m.Breakdown()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScenarioEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.OldSequence(ctx)
	case scenarioevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scenarioevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case scenarioevent.FieldUserID:
		return m.OldUserID(ctx)
	case scenarioevent.FieldScenario:
		return m.OldScenario(ctx)
	case scenarioevent.FieldTasksCompleted:
		return m.OldTasksCompleted(ctx)
	case scenarioevent.FieldTotalTasks:
		return m.OldTotalTasks(ctx)
	case scenarioevent.FieldCompletionTimeMs:
		return m.OldCompletionTimeMs(ctx)
	case scenarioevent.FieldErrors:
		return m.OldErrors(ctx)
	case scenarioevent.FieldHelpRequests:
		return m.OldHelpRequests(ctx)
	case scenarioevent.FieldFrustrationEvents:
		return m.OldFrustrationEvents(ctx)
	case scenarioevent.FieldTotal:
		return m.OldTotal(ctx)
	case scenarioevent.FieldBreakdown:
		return m.OldBreakdown(ctx)
	}
	return nil, fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scenarioevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scenarioevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scenarioevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scenarioevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scenarioevent.FieldScenario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenario(v)
		return nil
	case scenarioevent.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasksCompleted(v)
		return nil
	case scenarioevent.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTasks(v)
		return nil
	case scenarioevent.FieldCompletionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTimeMs(v)
		return nil
	case scenarioevent.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case scenarioevent.FieldHelpRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHelpRequests(v)
		return nil
	case scenarioevent.FieldFrustrationEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrustrationEvents(v)
		return nil
	case scenarioevent.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case scenarioevent.FieldBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScenarioEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scenarioevent.FieldSequence)
	}
	if m.addtasks_completed != nil {
		fields = append(fields, scenarioevent.FieldTasksCompleted)
	}
	if m.addtotal_tasks != nil {
		fields = append(fields, scenarioevent.FieldTotalTasks)
	}
	if m.addcompletion_time_ms != nil {
		fields = append(fields, scenarioevent.FieldCompletionTimeMs)
	}
	if m.adderrors != nil {
		fields = append(fields, scenarioevent.FieldErrors)
	}
	if m.addhelp_requests != nil {
		fields = append(fields, scenarioevent.FieldHelpRequests)
	}
	if m.addfrustration_events != nil {
		fields = append(fields, scenarioevent.FieldFrustrationEvents)
	}
	if m.addtotal != nil {
		fields = append(fields, scenarioevent.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScenarioEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scenarioevent.FieldSequence:
		return m.AddedSequence()
	case scenarioevent.FieldTasksCompleted:
		return m.AddedTasksCompleted()
	case scenarioevent.FieldTotalTasks:
		return m.AddedTotalTasks()
	case scenarioevent.FieldCompletionTimeMs:
		return m.AddedCompletionTimeMs()
	case scenarioevent.FieldErrors:
		return m.AddedErrors()
	case scenarioevent.FieldHelpRequests:
		return m.AddedHelpRequests()
	case scenarioevent.FieldFrustrationEvents:
		return m.AddedFrustrationEvents()
	case scenarioevent.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScenarioEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scenarioevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scenarioevent.FieldTasksCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTasksCompleted(v)
		return nil
	case scenarioevent.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTasks(v)
		return nil
	case scenarioevent.FieldCompletionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTimeMs(v)
		return nil
	case scenarioevent.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrors(v)
		return nil
	case scenarioevent.FieldHelpRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHelpRequests(v)
		return nil
	case scenarioevent.FieldFrustrationEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrustrationEvents(v)
		return nil
	case scenarioevent.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScenarioEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scenarioevent.FieldBreakdown) {
		fields = append(fields, scenarioevent.FieldBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScenarioEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScenarioEventMutation) ClearField(name string) error {
	switch name {
	case scenarioevent.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScenarioEventMutation) ResetField(name string) error {
	switch name {
	case scenarioevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scenarioevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scenarioevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scenarioevent.FieldUserID:
		m.ResetUserID()
		return nil
	case scenarioevent.FieldScenario:
		m.ResetScenario()
		return nil
	case scenarioevent.FieldTasksCompleted:
		m.ResetTasksCompleted()
		return nil
	case scenarioevent.FieldTotalTasks:
		m.ResetTotalTasks()
		return nil
	case scenarioevent.FieldCompletionTimeMs:
		m.ResetCompletionTimeMs()
		return nil
	case scenarioevent.FieldErrors:
		m.ResetErrors()
		return nil
	case scenarioevent.FieldHelpRequests:
		m.ResetHelpRequests()
		return nil
	case scenarioevent.FieldFrustrationEvents:
		m.ResetFrustrationEvents()
		return nil
	case scenarioevent.FieldTotal:
		m.ResetTotal()
		return nil
	case scenarioevent.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	}
	return fmt.Errorf("unknown ScenarioEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScenarioEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScenarioEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScenarioEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScenarioEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScenarioEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScenarioEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScenarioEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScenarioEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScenarioEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScenarioEvent edge %s", name)
}

// ScoreEventMutation represents an operation that mutates the ScoreEvent nodes in the graph.
type ScoreEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	user_id       *string
	user_name     *string
	total         *float64
	addtotal      *float64
	badge         *string
	breakdown     *map[string]float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScoreEvent, error)
	predicates    []predicate.ScoreEvent
}

var _ ent.Mutation = (*ScoreEventMutation)(nil)

// scoreeventOption allows management of the mutation configuration using functional options.
type scoreeventOption func(*ScoreEventMutation)

// newScoreEventMutation creates new mutation for the ScoreEvent entity.
func newScoreEventMutation(c config, op Op, opts ...scoreeventOption) *ScoreEventMutation {
	m := &ScoreEventMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreEventID sets the ID field of the mutation.
func withScoreEventID(id int) scoreeventOption {
	return func(m *ScoreEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreEvent
		)
		m.oldValue = func(ctx context.Context) (*ScoreEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreEvent sets the old ScoreEvent of the mutation.
func withScoreEvent(node *ScoreEvent) scoreeventOption {
	return func(m *ScoreEventMutation) {
		m.oldValue = func(context.Context) (*ScoreEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ScoreEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ScoreEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *ScoreEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ScoreEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ScoreEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ScoreEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ScoreEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *ScoreEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ScoreEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ScoreEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *ScoreEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ScoreEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ScoreEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ScoreEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetUserName sets the "user_name" field.
func (m *ScoreEventMutation) SetUserName(s string) {
	m.user_name = &s
}

// UserName returns the value of the "user_name" field in the mutation.
func (m *ScoreEventMutation) UserName() (r string, exists bool) {
	v := m.user_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUserName returns the old "user_name" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldUserName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserName: %w", err)
	}
	return oldValue.UserName, nil
}

// ClearUserName clears the value of the "user_name" field.
func (m *ScoreEventMutation) ClearUserName() {
	m.user_name = nil
	m.clearedFields[scoreevent.FieldUserName] = struct{}{}
}

// UserNameCleared returns if the "user_name" field was cleared in this mutation.
func (m *ScoreEventMutation) UserNameCleared() bool {
	_, ok := m.clearedFields[scoreevent.FieldUserName]
	return ok
}

// ResetUserName resets all changes to the "user_name" field.
func (m *ScoreEventMutation) ResetUserName() {
	m.user_name = nil
	delete(m.clearedFields, scoreevent.FieldUserName)
}

// SetTotal sets the "total" field.
func (m *ScoreEventMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ScoreEventMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ScoreEventMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ScoreEventMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ScoreEventMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetBadge sets the "badge" field.
func (m *ScoreEventMutation) SetBadge(s string) {
	m.badge = &s
}

// Badge returns the value of the "badge" field in the mutation.
func (m *ScoreEventMutation) Badge() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadge returns the old "badge" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldBadge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadge: %w", err)
	}
	return oldValue.Badge, nil
}

// ResetBadge resets all changes to the "badge" field.
func (m *ScoreEventMutation) ResetBadge() {
	m.badge = nil
}

// SetBreakdown sets the "breakdown" field.
func (m *ScoreEventMutation) SetBreakdown(value map[string]float64) {
	m.breakdown = &value
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *ScoreEventMutation) Breakdown() (r map[string]float64, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the ScoreEvent entity.
// If the ScoreEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreEventMutation) OldBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *ScoreEventMutation) ClearBreakdown() {
	m.breakdown = nil
	m.clearedFields[scoreevent.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *ScoreEventMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[scoreevent.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *ScoreEventMutation) ResetBreakdown() {
	m.breakdown = nil
	delete(m.clearedFields, scoreevent.FieldBreakdown)
}

// Where appends a list predicates to the ScoreEventMutation builder.
func (m *ScoreEventMutation) Where(ps ...predicate.ScoreEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreEvent).
func (m *ScoreEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, scoreevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, scoreevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, scoreevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, scoreevent.FieldUserID)
	}
	if m.user_name != nil {
		fields = append(fields, scoreevent.FieldUserName)
	}
	if m.total != nil {
		fields = append(fields, scoreevent.FieldTotal)
	}
	if m.badge != nil {
		fields = append(fields, scoreevent.FieldBadge)
	}
	if m.breakdown != nil {
		fields = append(fields, scoreevent.FieldBreakdown)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoreevent.FieldSequence:
		return m.Sequence()
	case scoreevent.FieldTimestamp:
		return m.Timestamp()
	case scoreevent.FieldSessionID:
		return m.SessionID()
	case scoreevent.FieldUserID:
		return m.UserID()
	case scoreevent.FieldUserName:
		return m.UserName()
	case scoreevent.FieldTotal:
		return m.Total()
	case scoreevent.FieldBadge:
		return m.Badge()
	case scoreevent.FieldBreakdown:
		return m.Breakdown()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoreevent.FieldSequence:
		return m.OldSequence(ctx)
	case scoreevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case scoreevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case scoreevent.FieldUserID:
		return m.OldUserID(ctx)
	case scoreevent.FieldUserName:
		return m.OldUserName(ctx)
	case scoreevent.FieldTotal:
		return m.OldTotal(ctx)
	case scoreevent.FieldBadge:
		return m.OldBadge(ctx)
	case scoreevent.FieldBreakdown:
		return m.OldBreakdown(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoreevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case scoreevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case scoreevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case scoreevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case scoreevent.FieldUserName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserName(v)
		return nil
	case scoreevent.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case scoreevent.FieldBadge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadge(v)
		return nil
	case scoreevent.FieldBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, scoreevent.FieldSequence)
	}
	if m.addtotal != nil {
		fields = append(fields, scoreevent.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoreevent.FieldSequence:
		return m.AddedSequence()
	case scoreevent.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoreevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case scoreevent.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoreevent.FieldUserName) {
		fields = append(fields, scoreevent.FieldUserName)
	}
	if m.FieldCleared(scoreevent.FieldBreakdown) {
		fields = append(fields, scoreevent.FieldBreakdown)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreEventMutation) ClearField(name string) error {
	switch name {
	case scoreevent.FieldUserName:
		m.ClearUserName()
		return nil
	case scoreevent.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreEventMutation) ResetField(name string) error {
	switch name {
	case scoreevent.FieldSequence:
		m.ResetSequence()
		return nil
	case scoreevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case scoreevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case scoreevent.FieldUserID:
		m.ResetUserID()
		return nil
	case scoreevent.FieldUserName:
		m.ResetUserName()
		return nil
	case scoreevent.FieldTotal:
		m.ResetTotal()
		return nil
	case scoreevent.FieldBadge:
		m.ResetBadge()
		return nil
	case scoreevent.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	}
	return fmt.Errorf("unknown ScoreEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScoreEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScoreEvent edge %s", name)
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
	user_id               *string
	action                *string
	scenario              *string
	duration_ms           *int64
	addduration_ms        *int64
	retries               *int
	addretries            *int
	help_requests         *int
	addhelp_requests      *int
	frustration_events    *int
	addfrustration_events *int
	errors_per_task       *map[string]int
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

// SetUserID sets the "user_id" field.
func (m *SessionEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionEventMutation) ResetUserID() {
	m.user_id = nil
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

// SetScenario sets the "scenario" field.
func (m *SessionEventMutation) SetScenario(s string) {
	m.scenario = &s
}

// Scenario returns the value of the "scenario" field in the mutation.
func (m *SessionEventMutation) Scenario() (r string, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenario returns the old "scenario" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldScenario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenario: %w", err)
	}
	return oldValue.Scenario, nil
}

// ClearScenario clears the value of the "scenario" field.
func (m *SessionEventMutation) ClearScenario() {
	m.scenario = nil
	m.clearedFields[sessionevent.FieldScenario] = struct{}{}
}

// ScenarioCleared returns if the "scenario" field was cleared in this mutation.
func (m *SessionEventMutation) ScenarioCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldScenario]
	return ok
}

// ResetScenario resets all changes to the "scenario" field.
func (m *SessionEventMutation) ResetScenario() {
	m.scenario = nil
	delete(m.clearedFields, sessionevent.FieldScenario)
}

// SetDurationMs sets the "duration_ms" field.
func (m *SessionEventMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SessionEventMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SessionEventMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SessionEventMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SessionEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetRetries sets the "retries" field.
func (m *SessionEventMutation) SetRetries(i int) {
	m.retries = &i
	m.addretries = nil
}

// Retries returns the value of the "retries" field in the mutation.
func (m *SessionEventMutation) Retries() (r int, exists bool) {
	v := m.retries
	if v == nil {
		return
	}
	return *v, true
}

// OldRetries returns the old "retries" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetries: %w", err)
	}
	return oldValue.Retries, nil
}

// AddRetries adds i to the "retries" field.
func (m *SessionEventMutation) AddRetries(i int) {
	if m.addretries != nil {
		*m.addretries += i
	} else {
		m.addretries = &i
	}
}

// AddedRetries returns the value that was added to the "retries" field in this mutation.
func (m *SessionEventMutation) AddedRetries() (r int, exists bool) {
	v := m.addretries
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetries resets all changes to the "retries" field.
func (m *SessionEventMutation) ResetRetries() {
	m.retries = nil
	m.addretries = nil
}

// SetHelpRequests sets the "help_requests" field.
func (m *SessionEventMutation) SetHelpRequests(i int) {
	m.help_requests = &i
	m.addhelp_requests = nil
}

// HelpRequests returns the value of the "help_requests" field in the mutation.
func (m *SessionEventMutation) HelpRequests() (r int, exists bool) {
	v := m.help_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldHelpRequests returns the old "help_requests" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldHelpRequests(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHelpRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHelpRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHelpRequests: %w", err)
	}
	return oldValue.HelpRequests, nil
}

// AddHelpRequests adds i to the "help_requests" field.
func (m *SessionEventMutation) AddHelpRequests(i int) {
	if m.addhelp_requests != nil {
		*m.addhelp_requests += i
	} else {
		m.addhelp_requests = &i
	}
}

// AddedHelpRequests returns the value that was added to the "help_requests" field in this mutation.
func (m *SessionEventMutation) AddedHelpRequests() (r int, exists bool) {
	v := m.addhelp_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetHelpRequests resets all changes to the "help_requests" field.
func (m *SessionEventMutation) ResetHelpRequests() {
	m.help_requests = nil
	m.addhelp_requests = nil
}

// SetFrustrationEvents sets the "frustration_events" field.
func (m *SessionEventMutation) SetFrustrationEvents(i int) {
	m.frustration_events = &i
	m.addfrustration_events = nil
}

// FrustrationEvents returns the value of the "frustration_events" field in the mutation.
func (m *SessionEventMutation) FrustrationEvents() (r int, exists bool) {
	v := m.frustration_events
	if v == nil {
		return
	}
	return *v, true
}

// OldFrustrationEvents returns the old "frustration_events" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldFrustrationEvents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrustrationEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrustrationEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrustrationEvents: %w", err)
	}
	return oldValue.FrustrationEvents, nil
}

// AddFrustrationEvents adds i to the "frustration_events" field.
func (m *SessionEventMutation) AddFrustrationEvents(i int) {
	if m.addfrustration_events != nil {
		*m.addfrustration_events += i
	} else {
		m.addfrustration_events = &i
	}
}

// AddedFrustrationEvents returns the value that was added to the "frustration_events" field in this mutation.
func (m *SessionEventMutation) AddedFrustrationEvents() (r int, exists bool) {
	v := m.addfrustration_events
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrustrationEvents resets all changes to the "frustration_events" field.
func (m *SessionEventMutation) ResetFrustrationEvents() {
	m.frustration_events = nil
	m.addfrustration_events = nil
}

// SetErrorsPerTask sets the "errors_per_task" field.
func (m *SessionEventMutation) SetErrorsPerTask(value map[string]int) {
	m.errors_per_task = &value
}

// ErrorsPerTask returns the value of the "errors_per_task" field in the mutation.
func (m *SessionEventMutation) ErrorsPerTask() (r map[string]int, exists bool) {
	v := m.errors_per_task
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorsPerTask returns the old "errors_per_task" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldErrorsPerTask(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorsPerTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorsPerTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorsPerTask: %w", err)
	}
	return oldValue.ErrorsPerTask, nil
}

// ClearErrorsPerTask clears the value of the "errors_per_task" field.
func (m *SessionEventMutation) ClearErrorsPerTask() {
	m.errors_per_task = nil
	m.clearedFields[sessionevent.FieldErrorsPerTask] = struct{}{}
}

// ErrorsPerTaskCleared returns if the "errors_per_task" field was cleared in this mutation.
func (m *SessionEventMutation) ErrorsPerTaskCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldErrorsPerTask]
	return ok
}

// ResetErrorsPerTask resets all changes to the "errors_per_task" field.
func (m *SessionEventMutation) ResetErrorsPerTask() {
	m.errors_per_task = nil
	delete(m.clearedFields, sessionevent.FieldErrorsPerTask)
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
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionevent.FieldUserID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.scenario != nil {
		fields = append(fields, sessionevent.FieldScenario)
	}
	if m.duration_ms != nil {
		fields = append(fields, sessionevent.FieldDurationMs)
	}
	if m.retries != nil {
		fields = append(fields, sessionevent.FieldRetries)
	}
	if m.help_requests != nil {
		fields = append(fields, sessionevent.FieldHelpRequests)
	}
	if m.frustration_events != nil {
		fields = append(fields, sessionevent.FieldFrustrationEvents)
	}
	if m.errors_per_task != nil {
		fields = append(fields, sessionevent.FieldErrorsPerTask)
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
	case sessionevent.FieldUserID:
		return m.UserID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldScenario:
		return m.Scenario()
	case sessionevent.FieldDurationMs:
		return m.DurationMs()
	case sessionevent.FieldRetries:
		return m.Retries()
	case sessionevent.FieldHelpRequests:
		return m.HelpRequests()
	case sessionevent.FieldFrustrationEvents:
		return m.FrustrationEvents()
	case sessionevent.FieldErrorsPerTask:
		return m.ErrorsPerTask()
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
	case sessionevent.FieldUserID:
		return m.OldUserID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldScenario:
		return m.OldScenario(ctx)
	case sessionevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case sessionevent.FieldRetries:
		return m.OldRetries(ctx)
	case sessionevent.FieldHelpRequests:
		return m.OldHelpRequests(ctx)
	case sessionevent.FieldFrustrationEvents:
		return m.OldFrustrationEvents(ctx)
	case sessionevent.FieldErrorsPerTask:
		return m.OldErrorsPerTask(ctx)
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
	case sessionevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldScenario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenario(v)
		return nil
	case sessionevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case sessionevent.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetries(v)
		return nil
	case sessionevent.FieldHelpRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHelpRequests(v)
		return nil
	case sessionevent.FieldFrustrationEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrustrationEvents(v)
		return nil
	case sessionevent.FieldErrorsPerTask:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorsPerTask(v)
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
	if m.addduration_ms != nil {
		fields = append(fields, sessionevent.FieldDurationMs)
	}
	if m.addretries != nil {
		fields = append(fields, sessionevent.FieldRetries)
	}
	if m.addhelp_requests != nil {
		fields = append(fields, sessionevent.FieldHelpRequests)
	}
	if m.addfrustration_events != nil {
		fields = append(fields, sessionevent.FieldFrustrationEvents)
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
	case sessionevent.FieldDurationMs:
		return m.AddedDurationMs()
	case sessionevent.FieldRetries:
		return m.AddedRetries()
	case sessionevent.FieldHelpRequests:
		return m.AddedHelpRequests()
	case sessionevent.FieldFrustrationEvents:
		return m.AddedFrustrationEvents()
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
	case sessionevent.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case sessionevent.FieldRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetries(v)
		return nil
	case sessionevent.FieldHelpRequests:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHelpRequests(v)
		return nil
	case sessionevent.FieldFrustrationEvents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrustrationEvents(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldScenario) {
		fields = append(fields, sessionevent.FieldScenario)
	}
	if m.FieldCleared(sessionevent.FieldErrorsPerTask) {
		fields = append(fields, sessionevent.FieldErrorsPerTask)
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
	case sessionevent.FieldScenario:
		m.ClearScenario()
		return nil
	case sessionevent.FieldErrorsPerTask:
		m.ClearErrorsPerTask()
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
	case sessionevent.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldScenario:
		m.ResetScenario()
		return nil
	case sessionevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case sessionevent.FieldRetries:
		m.ResetRetries()
		return nil
	case sessionevent.FieldHelpRequests:
		m.ResetHelpRequests()
		return nil
	case sessionevent.FieldFrustrationEvents:
		m.ResetFrustrationEvents()
		return nil
	case sessionevent.FieldErrorsPerTask:
		m.ResetErrorsPerTask()
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
