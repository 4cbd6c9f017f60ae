// Code generated by ent, DO NOT EDIT.

package scenarioevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scenarioevent type in the database.
	Label = "scenario_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScenario holds the string denoting the scenario field in the database.
	FieldScenario = "scenario"
	// FieldTasksCompleted holds the string denoting the tasks_completed field in the database.
	FieldTasksCompleted = "tasks_completed"
	// FieldTotalTasks holds the string denoting the total_tasks field in the database.
	FieldTotalTasks = "total_tasks"
	// FieldCompletionTimeMs holds the string denoting the completion_time_ms field in the database.
	FieldCompletionTimeMs = "completion_time_ms"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldHelpRequests holds the string denoting the help_requests field in the database.
	FieldHelpRequests = "help_requests"
	// FieldFrustrationEvents holds the string denoting the frustration_events field in the database.
	FieldFrustrationEvents = "frustration_events"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// Table holds the table name of the scenarioevent in the database.
	Table = "scenario_events"
)

// Columns holds all SQL columns for scenarioevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldUserID,
	FieldScenario,
	FieldTasksCompleted,
	FieldTotalTasks,
	FieldCompletionTimeMs,
	FieldErrors,
	FieldHelpRequests,
	FieldFrustrationEvents,
	FieldTotal,
	FieldBreakdown,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ScenarioValidator is a validator for the "scenario" field. It is called by the builders before save.
	ScenarioValidator func(string) error
	// DefaultTasksCompleted holds the default value on creation for the "tasks_completed" field.
	DefaultTasksCompleted int
	// DefaultTotalTasks holds the default value on creation for the "total_tasks" field.
	DefaultTotalTasks int
	// DefaultCompletionTimeMs holds the default value on creation for the "completion_time_ms" field.
	DefaultCompletionTimeMs int64
	// DefaultErrors holds the default value on creation for the "errors" field.
	DefaultErrors int
	// DefaultHelpRequests holds the default value on creation for the "help_requests" field.
	DefaultHelpRequests int
	// DefaultFrustrationEvents holds the default value on creation for the "frustration_events" field.
	DefaultFrustrationEvents int
)

// OrderOption defines the ordering options for the ScenarioEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByScenario orders the results by the scenario field.
func ByScenario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenario, opts...).ToFunc()
}

// ByTasksCompleted orders the results by the tasks_completed field.
func ByTasksCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCompleted, opts...).ToFunc()
}

// ByTotalTasks orders the results by the total_tasks field.
func ByTotalTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTasks, opts...).ToFunc()
}

// ByCompletionTimeMs orders the results by the completion_time_ms field.
func ByCompletionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTimeMs, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// ByHelpRequests orders the results by the help_requests field.
func ByHelpRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHelpRequests, opts...).ToFunc()
}

// ByFrustrationEvents orders the results by the frustration_events field.
func ByFrustrationEvents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationEvents, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}
