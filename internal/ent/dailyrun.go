// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ai-news-tracker/internal/ent/dailyrun"
)

// DailyRun is the model entity for the DailyRun schema.
type DailyRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 日报日期，格式 2006-01-02
	RunDate string `json:"run_date,omitempty"`
	// 运行状态：pending=待执行, in_progress=执行中, completed=已完成, failed=失败
	Status dailyrun.Status `json:"status,omitempty"`
	// 错误信息
	ErrorMessage string `json:"error_message,omitempty"`
	// 抓取到的原始记录数
	FetchedCount int `json:"fetched_count,omitempty"`
	// 过滤后保留的资讯数
	FilteredCount int `json:"filtered_count,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyrun.FieldID, dailyrun.FieldFetchedCount, dailyrun.FieldFilteredCount:
			values[i] = new(sql.NullInt64)
		case dailyrun.FieldRunDate, dailyrun.FieldStatus, dailyrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case dailyrun.FieldCreateTime, dailyrun.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyRun fields.
func (_m *DailyRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailyrun.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				_m.CreateTime = value.Time
			}
		case dailyrun.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				_m.UpdateTime = value.Time
			}
		case dailyrun.FieldRunDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_date", values[i])
			} else if value.Valid {
				_m.RunDate = value.String
			}
		case dailyrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dailyrun.Status(value.String)
			}
		case dailyrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case dailyrun.FieldFetchedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_count", values[i])
			} else if value.Valid {
				_m.FetchedCount = int(value.Int64)
			}
		case dailyrun.FieldFilteredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field filtered_count", values[i])
			} else if value.Valid {
				_m.FilteredCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyRun.
// This includes values selected through modifiers, order, etc.
func (_m *DailyRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyRun.
// Note that you need to call DailyRun.Unwrap() before calling this method if this DailyRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyRun) Update() *DailyRunUpdateOne {
	return NewDailyRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyRun) Unwrap() *DailyRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyRun) String() string {
	var builder strings.Builder
	builder.WriteString("DailyRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("create_time=")
	builder.WriteString(_m.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(_m.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_date=")
	builder.WriteString(_m.RunDate)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("fetched_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchedCount))
	builder.WriteString(", ")
	builder.WriteString("filtered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilteredCount))
	builder.WriteByte(')')
	return builder.String()
}

// DailyRuns is a parsable slice of DailyRun.
type DailyRuns []*DailyRun
