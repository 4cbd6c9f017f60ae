// Code generated by ent, DO NOT EDIT.

package certificate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the certificate type in the database.
	Label = "certificate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCertID holds the string denoting the cert_id field in the database.
	FieldCertID = "cert_id"
	// FieldUserName holds the string denoting the user_name field in the database.
	FieldUserName = "user_name"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldScenariosCompleted holds the string denoting the scenarios_completed field in the database.
	FieldScenariosCompleted = "scenarios_completed"
	// FieldBadge holds the string denoting the badge field in the database.
	FieldBadge = "badge"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the certificate in the database.
	Table = "certificates"
)

// Columns holds all SQL columns for certificate fields.
var Columns = []string{
	FieldID,
	FieldCertID,
	FieldUserName,
	FieldScore,
	FieldDate,
	FieldScenariosCompleted,
	FieldBadge,
	FieldCreatedAt,
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
	// CertIDValidator is a validator for the "cert_id" field. It is called by the builders before save.
	CertIDValidator func(string) error
	// UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	UserNameValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// BadgeValidator is a validator for the "badge" field. It is called by the builders before save.
	BadgeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Certificate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCertID orders the results by the cert_id field.
func ByCertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertID, opts...).ToFunc()
}

// ByUserName orders the results by the user_name field.
func ByUserName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserName, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByScenariosCompleted orders the results by the scenarios_completed field.
func ByScenariosCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenariosCompleted, opts...).ToFunc()
}

// ByBadge orders the results by the badge field.
func ByBadge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadge, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
