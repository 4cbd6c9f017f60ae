// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
)

// ScenarioEvent is the model entity for the ScenarioEvent schema.
type ScenarioEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// visual, hearing, motor, or ar
	Scenario string `json:"scenario,omitempty"`
	// TasksCompleted holds the value of the "tasks_completed" field.
	TasksCompleted int `json:"tasks_completed,omitempty"`
	// TotalTasks holds the value of the "total_tasks" field.
	TotalTasks int `json:"total_tasks,omitempty"`
	// CompletionTimeMs holds the value of the "completion_time_ms" field.
	CompletionTimeMs int64 `json:"completion_time_ms,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors int `json:"errors,omitempty"`
	// HelpRequests holds the value of the "help_requests" field.
	HelpRequests int `json:"help_requests,omitempty"`
	// FrustrationEvents holds the value of the "frustration_events" field.
	FrustrationEvents int `json:"frustration_events,omitempty"`
	// Scenario score total (uncapped)
	Total float64 `json:"total,omitempty"`
	// Per-component point split
	Breakdown    map[string]float64 `json:"breakdown,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScenarioEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldBreakdown:
			values[i] = new([]byte)
		case scenarioevent.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case scenarioevent.FieldID, scenarioevent.FieldSequence, scenarioevent.FieldTasksCompleted, scenarioevent.FieldTotalTasks, scenarioevent.FieldCompletionTimeMs, scenarioevent.FieldErrors, scenarioevent.FieldHelpRequests, scenarioevent.FieldFrustrationEvents:
			values[i] = new(sql.NullInt64)
		case scenarioevent.FieldSessionID, scenarioevent.FieldUserID, scenarioevent.FieldScenario:
			values[i] = new(sql.NullString)
		case scenarioevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScenarioEvent fields.
func (_m *ScenarioEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scenarioevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scenarioevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case scenarioevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case scenarioevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case scenarioevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case scenarioevent.FieldScenario:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario", values[i])
			} else if value.Valid {
				_m.Scenario = value.String
			}
		case scenarioevent.FieldTasksCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_completed", values[i])
			} else if value.Valid {
				_m.TasksCompleted = int(value.Int64)
			}
		case scenarioevent.FieldTotalTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tasks", values[i])
			} else if value.Valid {
				_m.TotalTasks = int(value.Int64)
			}
		case scenarioevent.FieldCompletionTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_time_ms", values[i])
			} else if value.Valid {
				_m.CompletionTimeMs = value.Int64
			}
		case scenarioevent.FieldErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value.Valid {
				_m.Errors = int(value.Int64)
			}
		case scenarioevent.FieldHelpRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field help_requests", values[i])
			} else if value.Valid {
				_m.HelpRequests = int(value.Int64)
			}
		case scenarioevent.FieldFrustrationEvents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frustration_events", values[i])
			} else if value.Valid {
				_m.FrustrationEvents = int(value.Int64)
			}
		case scenarioevent.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case scenarioevent.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScenarioEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ScenarioEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScenarioEvent.
// Note that you need to call ScenarioEvent.Unwrap() before calling this method if this ScenarioEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScenarioEvent) Update() *ScenarioEventUpdateOne {
	return NewScenarioEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScenarioEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScenarioEvent) Unwrap() *ScenarioEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScenarioEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScenarioEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ScenarioEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("scenario=")
	builder.WriteString(_m.Scenario)
	builder.WriteString(", ")
	builder.WriteString("tasks_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTasks))
	builder.WriteString(", ")
	builder.WriteString("completion_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTimeMs))
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("help_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.HelpRequests))
	builder.WriteString(", ")
	builder.WriteString("frustration_events=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrustrationEvents))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteByte(')')
	return builder.String()
}

// ScenarioEvents is a parsable slice of ScenarioEvent.
type ScenarioEvents []*ScenarioEvent
