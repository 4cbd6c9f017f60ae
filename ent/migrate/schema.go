// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_phase",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[5]},
			},
		},
	}
	// CertificatesColumns holds the columns for the "certificates" table.
	CertificatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cert_id", Type: field.TypeString, Unique: true},
		{Name: "user_name", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "date", Type: field.TypeString},
		{Name: "scenarios_completed", Type: field.TypeInt},
		{Name: "badge", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CertificatesTable holds the schema information for the "certificates" table.
	CertificatesTable = &schema.Table{
		Name:       "certificates",
		Columns:    CertificatesColumns,
		PrimaryKey: []*schema.Column{CertificatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "certificate_cert_id",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[1]},
			},
			{
				Name:    "certificate_created_at",
				Unique:  false,
				Columns: []*schema.Column{CertificatesColumns[7]},
			},
		},
	}
	// ProfileSnapshotsColumns holds the columns for the "profile_snapshots" table.
	ProfileSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProfileSnapshotsTable holds the schema information for the "profile_snapshots" table.
	ProfileSnapshotsTable = &schema.Table{
		Name:       "profile_snapshots",
		Columns:    ProfileSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProfileSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilesnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[2]},
			},
			{
				Name:    "profilesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[1]},
			},
		},
	}
	// ScenarioEventsColumns holds the columns for the "scenario_events" table.
	ScenarioEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "scenario", Type: field.TypeString},
		{Name: "tasks_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_tasks", Type: field.TypeInt, Default: 0},
		{Name: "completion_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "errors", Type: field.TypeInt, Default: 0},
		{Name: "help_requests", Type: field.TypeInt, Default: 0},
		{Name: "frustration_events", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
	}
	// ScenarioEventsTable holds the schema information for the "scenario_events" table.
	ScenarioEventsTable = &schema.Table{
		Name:       "scenario_events",
		Columns:    ScenarioEventsColumns,
		PrimaryKey: []*schema.Column{ScenarioEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scenarioevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[1]},
			},
			{
				Name:    "scenarioevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[2]},
			},
			{
				Name:    "scenarioevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[3]},
			},
			{
				Name:    "scenarioevent_scenario",
				Unique:  false,
				Columns: []*schema.Column{ScenarioEventsColumns[5]},
			},
		},
	}
	// ScoreEventsColumns holds the columns for the "score_events" table.
	ScoreEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "user_name", Type: field.TypeString, Nullable: true},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "badge", Type: field.TypeString},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
	}
	// ScoreEventsTable holds the schema information for the "score_events" table.
	ScoreEventsTable = &schema.Table{
		Name:       "score_events",
		Columns:    ScoreEventsColumns,
		PrimaryKey: []*schema.Column{ScoreEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoreevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[1]},
			},
			{
				Name:    "scoreevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[2]},
			},
			{
				Name:    "scoreevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[3]},
			},
			{
				Name:    "scoreevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ScoreEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "scenario", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "help_requests", Type: field.TypeInt, Default: 0},
		{Name: "frustration_events", Type: field.TypeInt, Default: 0},
		{Name: "errors_per_task", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		CertificatesTable,
		ProfileSnapshotsTable,
		ScenarioEventsTable,
		ScoreEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
