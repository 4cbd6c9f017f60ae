// Code generated by ent, DO NOT EDIT.

package scenarioevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/walkinmyshoes/wims/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldUserID, v))
}

// Scenario applies equality check predicate on the "scenario" field. It's identical to ScenarioEQ.
func Scenario(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenario, v))
}

// TasksCompleted applies equality check predicate on the "tasks_completed" field. It's identical to TasksCompletedEQ.
func TasksCompleted(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTasksCompleted, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalTasks, v))
}

// CompletionTimeMs applies equality check predicate on the "completion_time_ms" field. It's identical to CompletionTimeMsEQ.
func CompletionTimeMs(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldCompletionTimeMs, v))
}

// Errors applies equality check predicate on the "errors" field. It's identical to ErrorsEQ.
func Errors(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldErrors, v))
}

// HelpRequests applies equality check predicate on the "help_requests" field. It's identical to HelpRequestsEQ.
func HelpRequests(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldHelpRequests, v))
}

// FrustrationEvents applies equality check predicate on the "frustration_events" field. It's identical to FrustrationEventsEQ.
func FrustrationEvents(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldFrustrationEvents, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotal, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldUserID, v))
}

// ScenarioEQ applies the EQ predicate on the "scenario" field.
func ScenarioEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldScenario, v))
}

// ScenarioNEQ applies the NEQ predicate on the "scenario" field.
func ScenarioNEQ(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldScenario, v))
}

// ScenarioIn applies the In predicate on the "scenario" field.
func ScenarioIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldScenario, vs...))
}

// ScenarioNotIn applies the NotIn predicate on the "scenario" field.
func ScenarioNotIn(vs ...string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldScenario, vs...))
}

// ScenarioGT applies the GT predicate on the "scenario" field.
func ScenarioGT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldScenario, v))
}

// ScenarioGTE applies the GTE predicate on the "scenario" field.
func ScenarioGTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldScenario, v))
}

// ScenarioLT applies the LT predicate on the "scenario" field.
func ScenarioLT(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldScenario, v))
}

// ScenarioLTE applies the LTE predicate on the "scenario" field.
func ScenarioLTE(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldScenario, v))
}

// ScenarioContains applies the Contains predicate on the "scenario" field.
func ScenarioContains(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContains(FieldScenario, v))
}

// ScenarioHasPrefix applies the HasPrefix predicate on the "scenario" field.
func ScenarioHasPrefix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasPrefix(FieldScenario, v))
}

// ScenarioHasSuffix applies the HasSuffix predicate on the "scenario" field.
func ScenarioHasSuffix(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldHasSuffix(FieldScenario, v))
}

// ScenarioEqualFold applies the EqualFold predicate on the "scenario" field.
func ScenarioEqualFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEqualFold(FieldScenario, v))
}

// ScenarioContainsFold applies the ContainsFold predicate on the "scenario" field.
func ScenarioContainsFold(v string) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldContainsFold(FieldScenario, v))
}

// TasksCompletedEQ applies the EQ predicate on the "tasks_completed" field.
func TasksCompletedEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTasksCompleted, v))
}

// TasksCompletedNEQ applies the NEQ predicate on the "tasks_completed" field.
func TasksCompletedNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTasksCompleted, v))
}

// TasksCompletedIn applies the In predicate on the "tasks_completed" field.
func TasksCompletedIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTasksCompleted, vs...))
}

// TasksCompletedNotIn applies the NotIn predicate on the "tasks_completed" field.
func TasksCompletedNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTasksCompleted, vs...))
}

// TasksCompletedGT applies the GT predicate on the "tasks_completed" field.
func TasksCompletedGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTasksCompleted, v))
}

// TasksCompletedGTE applies the GTE predicate on the "tasks_completed" field.
func TasksCompletedGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTasksCompleted, v))
}

// TasksCompletedLT applies the LT predicate on the "tasks_completed" field.
func TasksCompletedLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTasksCompleted, v))
}

// TasksCompletedLTE applies the LTE predicate on the "tasks_completed" field.
func TasksCompletedLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTasksCompleted, v))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTotalTasks, v))
}

// CompletionTimeMsEQ applies the EQ predicate on the "completion_time_ms" field.
func CompletionTimeMsEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldCompletionTimeMs, v))
}

// CompletionTimeMsNEQ applies the NEQ predicate on the "completion_time_ms" field.
func CompletionTimeMsNEQ(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldCompletionTimeMs, v))
}

// CompletionTimeMsIn applies the In predicate on the "completion_time_ms" field.
func CompletionTimeMsIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldCompletionTimeMs, vs...))
}

// CompletionTimeMsNotIn applies the NotIn predicate on the "completion_time_ms" field.
func CompletionTimeMsNotIn(vs ...int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldCompletionTimeMs, vs...))
}

// CompletionTimeMsGT applies the GT predicate on the "completion_time_ms" field.
func CompletionTimeMsGT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldCompletionTimeMs, v))
}

// CompletionTimeMsGTE applies the GTE predicate on the "completion_time_ms" field.
func CompletionTimeMsGTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldCompletionTimeMs, v))
}

// CompletionTimeMsLT applies the LT predicate on the "completion_time_ms" field.
func CompletionTimeMsLT(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldCompletionTimeMs, v))
}

// CompletionTimeMsLTE applies the LTE predicate on the "completion_time_ms" field.
func CompletionTimeMsLTE(v int64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldCompletionTimeMs, v))
}

// ErrorsEQ applies the EQ predicate on the "errors" field.
func ErrorsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldErrors, v))
}

// ErrorsNEQ applies the NEQ predicate on the "errors" field.
func ErrorsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldErrors, v))
}

// ErrorsIn applies the In predicate on the "errors" field.
func ErrorsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldErrors, vs...))
}

// ErrorsNotIn applies the NotIn predicate on the "errors" field.
func ErrorsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldErrors, vs...))
}

// ErrorsGT applies the GT predicate on the "errors" field.
func ErrorsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldErrors, v))
}

// ErrorsGTE applies the GTE predicate on the "errors" field.
func ErrorsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldErrors, v))
}

// ErrorsLT applies the LT predicate on the "errors" field.
func ErrorsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldErrors, v))
}

// ErrorsLTE applies the LTE predicate on the "errors" field.
func ErrorsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldErrors, v))
}

// HelpRequestsEQ applies the EQ predicate on the "help_requests" field.
func HelpRequestsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldHelpRequests, v))
}

// HelpRequestsNEQ applies the NEQ predicate on the "help_requests" field.
func HelpRequestsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldHelpRequests, v))
}

// HelpRequestsIn applies the In predicate on the "help_requests" field.
func HelpRequestsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldHelpRequests, vs...))
}

// HelpRequestsNotIn applies the NotIn predicate on the "help_requests" field.
func HelpRequestsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldHelpRequests, vs...))
}

// HelpRequestsGT applies the GT predicate on the "help_requests" field.
func HelpRequestsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldHelpRequests, v))
}

// HelpRequestsGTE applies the GTE predicate on the "help_requests" field.
func HelpRequestsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldHelpRequests, v))
}

// HelpRequestsLT applies the LT predicate on the "help_requests" field.
func HelpRequestsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldHelpRequests, v))
}

// HelpRequestsLTE applies the LTE predicate on the "help_requests" field.
func HelpRequestsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldHelpRequests, v))
}

// FrustrationEventsEQ applies the EQ predicate on the "frustration_events" field.
func FrustrationEventsEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldFrustrationEvents, v))
}

// FrustrationEventsNEQ applies the NEQ predicate on the "frustration_events" field.
func FrustrationEventsNEQ(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldFrustrationEvents, v))
}

// FrustrationEventsIn applies the In predicate on the "frustration_events" field.
func FrustrationEventsIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldFrustrationEvents, vs...))
}

// FrustrationEventsNotIn applies the NotIn predicate on the "frustration_events" field.
func FrustrationEventsNotIn(vs ...int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldFrustrationEvents, vs...))
}

// FrustrationEventsGT applies the GT predicate on the "frustration_events" field.
func FrustrationEventsGT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldFrustrationEvents, v))
}

// FrustrationEventsGTE applies the GTE predicate on the "frustration_events" field.
func FrustrationEventsGTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldFrustrationEvents, v))
}

// FrustrationEventsLT applies the LT predicate on the "frustration_events" field.
func FrustrationEventsLT(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldFrustrationEvents, v))
}

// FrustrationEventsLTE applies the LTE predicate on the "frustration_events" field.
func FrustrationEventsLTE(v int) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldFrustrationEvents, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldLTE(FieldTotal, v))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.FieldNotNull(FieldBreakdown))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScenarioEvent) predicate.ScenarioEvent {
	return predicate.ScenarioEvent(sql.NotPredicates(p))
}
