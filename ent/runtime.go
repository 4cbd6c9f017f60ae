// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/walkinmyshoes/wims/ent/assessmentevent"
	"github.com/walkinmyshoes/wims/ent/certificate"
	"github.com/walkinmyshoes/wims/ent/profilesnapshot"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
	"github.com/walkinmyshoes/wims/ent/schema"
	"github.com/walkinmyshoes/wims/ent/scoreevent"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescUserID is the schema descriptor for user_id field.
	assessmenteventDescUserID := assessmenteventFields[1].Descriptor()
	// assessmentevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentevent.UserIDValidator = assessmenteventDescUserID.Validators[0].(func(string) error)
	// assessmenteventDescPhase is the schema descriptor for phase field.
	assessmenteventDescPhase := assessmenteventFields[2].Descriptor()
	// assessmentevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	assessmentevent.PhaseValidator = assessmenteventDescPhase.Validators[0].(func(string) error)
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescCertID is the schema descriptor for cert_id field.
	certificateDescCertID := certificateFields[0].Descriptor()
	// certificate.CertIDValidator is a validator for the "cert_id" field. It is called by the builders before save.
	certificate.CertIDValidator = certificateDescCertID.Validators[0].(func(string) error)
	// certificateDescUserName is the schema descriptor for user_name field.
	certificateDescUserName := certificateFields[1].Descriptor()
	// certificate.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	certificate.UserNameValidator = certificateDescUserName.Validators[0].(func(string) error)
	// certificateDescDate is the schema descriptor for date field.
	certificateDescDate := certificateFields[3].Descriptor()
	// certificate.DateValidator is a validator for the "date" field. It is called by the builders before save.
	certificate.DateValidator = certificateDescDate.Validators[0].(func(string) error)
	// certificateDescBadge is the schema descriptor for badge field.
	certificateDescBadge := certificateFields[5].Descriptor()
	// certificate.BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	certificate.BadgeValidator = certificateDescBadge.Validators[0].(func(string) error)
	// certificateDescCreatedAt is the schema descriptor for created_at field.
	certificateDescCreatedAt := certificateFields[6].Descriptor()
	// certificate.DefaultCreatedAt holds the default value on creation for the created_at field.
	certificate.DefaultCreatedAt = certificateDescCreatedAt.Default.(func() time.Time)
	profilesnapshotFields := schema.ProfileSnapshot{}.Fields()
	_ = profilesnapshotFields
	// profilesnapshotDescTimestamp is the schema descriptor for timestamp field.
	profilesnapshotDescTimestamp := profilesnapshotFields[1].Descriptor()
	// profilesnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	profilesnapshot.DefaultTimestamp = profilesnapshotDescTimestamp.Default.(func() time.Time)
	scenarioeventMixin := schema.ScenarioEvent{}.Mixin()
	scenarioeventMixinFields0 := scenarioeventMixin[0].Fields()
	_ = scenarioeventMixinFields0
	scenarioeventFields := schema.ScenarioEvent{}.Fields()
	_ = scenarioeventFields
	// scenarioeventDescTimestamp is the schema descriptor for timestamp field.
	scenarioeventDescTimestamp := scenarioeventMixinFields0[1].Descriptor()
	// scenarioevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scenarioevent.DefaultTimestamp = scenarioeventDescTimestamp.Default.(func() time.Time)
	// scenarioeventDescSessionID is the schema descriptor for session_id field.
	scenarioeventDescSessionID := scenarioeventFields[0].Descriptor()
	// scenarioevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scenarioevent.SessionIDValidator = scenarioeventDescSessionID.Validators[0].(func(string) error)
	// scenarioeventDescUserID is the schema descriptor for user_id field.
	scenarioeventDescUserID := scenarioeventFields[1].Descriptor()
	// scenarioevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	scenarioevent.UserIDValidator = scenarioeventDescUserID.Validators[0].(func(string) error)
	// scenarioeventDescScenario is the schema descriptor for scenario field.
	scenarioeventDescScenario := scenarioeventFields[2].Descriptor()
	// scenarioevent.ScenarioValidator is a validator for the "scenario" field. It is called by the builders before save.
	scenarioevent.ScenarioValidator = scenarioeventDescScenario.Validators[0].(func(string) error)
	// scenarioeventDescTasksCompleted is the schema descriptor for tasks_completed field.
	scenarioeventDescTasksCompleted := scenarioeventFields[3].Descriptor()
	// scenarioevent.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	scenarioevent.DefaultTasksCompleted = scenarioeventDescTasksCompleted.Default.(int)
	// scenarioeventDescTotalTasks is the schema descriptor for total_tasks field.
	scenarioeventDescTotalTasks := scenarioeventFields[4].Descriptor()
	// scenarioevent.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	scenarioevent.DefaultTotalTasks = scenarioeventDescTotalTasks.Default.(int)
	// scenarioeventDescCompletionTimeMs is the schema descriptor for completion_time_ms field.
	scenarioeventDescCompletionTimeMs := scenarioeventFields[5].Descriptor()
	// scenarioevent.DefaultCompletionTimeMs holds the default value on creation for the completion_time_ms field.
	scenarioevent.DefaultCompletionTimeMs = scenarioeventDescCompletionTimeMs.Default.(int64)
	// scenarioeventDescErrors is the schema descriptor for errors field.
	scenarioeventDescErrors := scenarioeventFields[6].Descriptor()
	// scenarioevent.DefaultErrors holds the default value on creation for the errors field.
	scenarioevent.DefaultErrors = scenarioeventDescErrors.Default.(int)
	// scenarioeventDescHelpRequests is the schema descriptor for help_requests field.
	scenarioeventDescHelpRequests := scenarioeventFields[7].Descriptor()
	// scenarioevent.DefaultHelpRequests holds the default value on creation for the help_requests field.
	scenarioevent.DefaultHelpRequests = scenarioeventDescHelpRequests.Default.(int)
	// scenarioeventDescFrustrationEvents is the schema descriptor for frustration_events field.
	scenarioeventDescFrustrationEvents := scenarioeventFields[8].Descriptor()
	// scenarioevent.DefaultFrustrationEvents holds the default value on creation for the frustration_events field.
	scenarioevent.DefaultFrustrationEvents = scenarioeventDescFrustrationEvents.Default.(int)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescSessionID is the schema descriptor for session_id field.
	scoreeventDescSessionID := scoreeventFields[0].Descriptor()
	// scoreevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scoreevent.SessionIDValidator = scoreeventDescSessionID.Validators[0].(func(string) error)
	// scoreeventDescUserID is the schema descriptor for user_id field.
	scoreeventDescUserID := scoreeventFields[1].Descriptor()
	// scoreevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	scoreevent.UserIDValidator = scoreeventDescUserID.Validators[0].(func(string) error)
	// scoreeventDescBadge is the schema descriptor for badge field.
	scoreeventDescBadge := scoreeventFields[4].Descriptor()
	// scoreevent.BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	scoreevent.BadgeValidator = scoreeventDescBadge.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDurationMs is the schema descriptor for duration_ms field.
	sessioneventDescDurationMs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sessionevent.DefaultDurationMs = sessioneventDescDurationMs.Default.(int64)
	// sessioneventDescRetries is the schema descriptor for retries field.
	sessioneventDescRetries := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultRetries holds the default value on creation for the retries field.
	sessionevent.DefaultRetries = sessioneventDescRetries.Default.(int)
	// sessioneventDescHelpRequests is the schema descriptor for help_requests field.
	sessioneventDescHelpRequests := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultHelpRequests holds the default value on creation for the help_requests field.
	sessionevent.DefaultHelpRequests = sessioneventDescHelpRequests.Default.(int)
	// sessioneventDescFrustrationEvents is the schema descriptor for frustration_events field.
	sessioneventDescFrustrationEvents := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultFrustrationEvents holds the default value on creation for the frustration_events field.
	sessionevent.DefaultFrustrationEvents = sessioneventDescFrustrationEvents.Default.(int)
}
