// Code generated by ent, DO NOT EDIT.

package scoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/walkinmyshoes/wims/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldUserID, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldUserName, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTotal, v))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldBadge, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldUserID, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameIsNil applies the IsNil predicate on the "user_name" field.
func UserNameIsNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIsNull(FieldUserName))
}

// UserNameNotNil applies the NotNil predicate on the "user_name" field.
func UserNameNotNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotNull(FieldUserName))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldUserName, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldTotal, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldContainsFold(FieldBadge, v))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.FieldNotNull(FieldBreakdown))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreEvent) predicate.ScoreEvent {
	return predicate.ScoreEvent(sql.NotPredicates(p))
}
