// Code generated by ent, DO NOT EDIT.

package dailyrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailyrun type in the database.
	Label = "daily_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldRunDate holds the string denoting the run_date field in the database.
	FieldRunDate = "run_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFetchedCount holds the string denoting the fetched_count field in the database.
	FieldFetchedCount = "fetched_count"
	// FieldFilteredCount holds the string denoting the filtered_count field in the database.
	FieldFilteredCount = "filtered_count"
	// Table holds the table name of the dailyrun in the database.
	Table = "daily_runs"
)

// Columns holds all SQL columns for dailyrun fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldRunDate,
	FieldStatus,
	FieldErrorMessage,
	FieldFetchedCount,
	FieldFilteredCount,
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
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultFetchedCount holds the default value on creation for the "fetched_count" field.
	DefaultFetchedCount int
	// DefaultFilteredCount holds the default value on creation for the "filtered_count" field.
	DefaultFilteredCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("dailyrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DailyRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByRunDate orders the results by the run_date field.
func ByRunDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFetchedCount orders the results by the fetched_count field.
func ByFetchedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedCount, opts...).ToFunc()
}

// ByFilteredCount orders the results by the filtered_count field.
func ByFilteredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilteredCount, opts...).ToFunc()
}
