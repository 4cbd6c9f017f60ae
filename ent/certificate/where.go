// Code generated by ent, DO NOT EDIT.

package certificate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/walkinmyshoes/wims/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldID, id))
}

// CertID applies equality check predicate on the "cert_id" field. It's identical to CertIDEQ.
func CertID(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCertID, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUserName, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldScore, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldDate, v))
}

// ScenariosCompleted applies equality check predicate on the "scenarios_completed" field. It's identical to ScenariosCompletedEQ.
func ScenariosCompleted(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldScenariosCompleted, v))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldBadge, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// CertIDEQ applies the EQ predicate on the "cert_id" field.
func CertIDEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCertID, v))
}

// CertIDNEQ applies the NEQ predicate on the "cert_id" field.
func CertIDNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCertID, v))
}

// CertIDIn applies the In predicate on the "cert_id" field.
func CertIDIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCertID, vs...))
}

// CertIDNotIn applies the NotIn predicate on the "cert_id" field.
func CertIDNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCertID, vs...))
}

// CertIDGT applies the GT predicate on the "cert_id" field.
func CertIDGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCertID, v))
}

// CertIDGTE applies the GTE predicate on the "cert_id" field.
func CertIDGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCertID, v))
}

// CertIDLT applies the LT predicate on the "cert_id" field.
func CertIDLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCertID, v))
}

// CertIDLTE applies the LTE predicate on the "cert_id" field.
func CertIDLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCertID, v))
}

// CertIDContains applies the Contains predicate on the "cert_id" field.
func CertIDContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldCertID, v))
}

// CertIDHasPrefix applies the HasPrefix predicate on the "cert_id" field.
func CertIDHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldCertID, v))
}

// CertIDHasSuffix applies the HasSuffix predicate on the "cert_id" field.
func CertIDHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldCertID, v))
}

// CertIDEqualFold applies the EqualFold predicate on the "cert_id" field.
func CertIDEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldCertID, v))
}

// CertIDContainsFold applies the ContainsFold predicate on the "cert_id" field.
func CertIDContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldCertID, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldUserName, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldScore, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldDate, v))
}

// ScenariosCompletedEQ applies the EQ predicate on the "scenarios_completed" field.
func ScenariosCompletedEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldScenariosCompleted, v))
}

// ScenariosCompletedNEQ applies the NEQ predicate on the "scenarios_completed" field.
func ScenariosCompletedNEQ(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldScenariosCompleted, v))
}

// ScenariosCompletedIn applies the In predicate on the "scenarios_completed" field.
func ScenariosCompletedIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldScenariosCompleted, vs...))
}

// ScenariosCompletedNotIn applies the NotIn predicate on the "scenarios_completed" field.
func ScenariosCompletedNotIn(vs ...int) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldScenariosCompleted, vs...))
}

// ScenariosCompletedGT applies the GT predicate on the "scenarios_completed" field.
func ScenariosCompletedGT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldScenariosCompleted, v))
}

// ScenariosCompletedGTE applies the GTE predicate on the "scenarios_completed" field.
func ScenariosCompletedGTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldScenariosCompleted, v))
}

// ScenariosCompletedLT applies the LT predicate on the "scenarios_completed" field.
func ScenariosCompletedLT(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldScenariosCompleted, v))
}

// ScenariosCompletedLTE applies the LTE predicate on the "scenarios_completed" field.
func ScenariosCompletedLTE(v int) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldScenariosCompleted, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.Certificate {
	return predicate.Certificate(sql.FieldContainsFold(FieldBadge, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Certificate {
	return predicate.Certificate(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Certificate) predicate.Certificate {
	return predicate.Certificate(sql.NotPredicates(p))
}
