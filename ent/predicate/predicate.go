// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// ProfileSnapshot is the predicate function for profilesnapshot builders.
type ProfileSnapshot func(*sql.Selector)

// ScenarioEvent is the predicate function for scenarioevent builders.
type ScenarioEvent func(*sql.Selector)

// ScoreEvent is the predicate function for scoreevent builders.
type ScoreEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
