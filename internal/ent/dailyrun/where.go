// Code generated by ent, DO NOT EDIT.

package dailyrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ai-news-tracker/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldUpdateTime, v))
}

// RunDate applies equality check predicate on the "run_date" field. It's identical to RunDateEQ.
func RunDate(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldRunDate, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldErrorMessage, v))
}

// FetchedCount applies equality check predicate on the "fetched_count" field. It's identical to FetchedCountEQ.
func FetchedCount(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldFetchedCount, v))
}

// FilteredCount applies equality check predicate on the "filtered_count" field. It's identical to FilteredCountEQ.
func FilteredCount(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldFilteredCount, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldUpdateTime, v))
}

// RunDateEQ applies the EQ predicate on the "run_date" field.
func RunDateEQ(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldRunDate, v))
}

// RunDateNEQ applies the NEQ predicate on the "run_date" field.
func RunDateNEQ(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldRunDate, v))
}

// RunDateIn applies the In predicate on the "run_date" field.
func RunDateIn(vs ...string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldRunDate, vs...))
}

// RunDateNotIn applies the NotIn predicate on the "run_date" field.
func RunDateNotIn(vs ...string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldRunDate, vs...))
}

// RunDateGT applies the GT predicate on the "run_date" field.
func RunDateGT(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldRunDate, v))
}

// RunDateGTE applies the GTE predicate on the "run_date" field.
func RunDateGTE(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldRunDate, v))
}

// RunDateLT applies the LT predicate on the "run_date" field.
func RunDateLT(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldRunDate, v))
}

// RunDateLTE applies the LTE predicate on the "run_date" field.
func RunDateLTE(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldRunDate, v))
}

// RunDateContains applies the Contains predicate on the "run_date" field.
func RunDateContains(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldContains(FieldRunDate, v))
}

// RunDateHasPrefix applies the HasPrefix predicate on the "run_date" field.
func RunDateHasPrefix(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldHasPrefix(FieldRunDate, v))
}

// RunDateHasSuffix applies the HasSuffix predicate on the "run_date" field.
func RunDateHasSuffix(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldHasSuffix(FieldRunDate, v))
}

// RunDateEqualFold applies the EqualFold predicate on the "run_date" field.
func RunDateEqualFold(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEqualFold(FieldRunDate, v))
}

// RunDateContainsFold applies the ContainsFold predicate on the "run_date" field.
func RunDateContainsFold(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldContainsFold(FieldRunDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FetchedCountEQ applies the EQ predicate on the "fetched_count" field.
func FetchedCountEQ(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldFetchedCount, v))
}

// FetchedCountNEQ applies the NEQ predicate on the "fetched_count" field.
func FetchedCountNEQ(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldFetchedCount, v))
}

// FetchedCountIn applies the In predicate on the "fetched_count" field.
func FetchedCountIn(vs ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldFetchedCount, vs...))
}

// FetchedCountNotIn applies the NotIn predicate on the "fetched_count" field.
func FetchedCountNotIn(vs ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldFetchedCount, vs...))
}

// FetchedCountGT applies the GT predicate on the "fetched_count" field.
func FetchedCountGT(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldFetchedCount, v))
}

// FetchedCountGTE applies the GTE predicate on the "fetched_count" field.
func FetchedCountGTE(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldFetchedCount, v))
}

// FetchedCountLT applies the LT predicate on the "fetched_count" field.
func FetchedCountLT(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldFetchedCount, v))
}

// FetchedCountLTE applies the LTE predicate on the "fetched_count" field.
func FetchedCountLTE(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldFetchedCount, v))
}

// FilteredCountEQ applies the EQ predicate on the "filtered_count" field.
func FilteredCountEQ(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldEQ(FieldFilteredCount, v))
}

// FilteredCountNEQ applies the NEQ predicate on the "filtered_count" field.
func FilteredCountNEQ(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNEQ(FieldFilteredCount, v))
}

// FilteredCountIn applies the In predicate on the "filtered_count" field.
func FilteredCountIn(vs ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldIn(FieldFilteredCount, vs...))
}

// FilteredCountNotIn applies the NotIn predicate on the "filtered_count" field.
func FilteredCountNotIn(vs ...int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldNotIn(FieldFilteredCount, vs...))
}

// FilteredCountGT applies the GT predicate on the "filtered_count" field.
func FilteredCountGT(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGT(FieldFilteredCount, v))
}

// FilteredCountGTE applies the GTE predicate on the "filtered_count" field.
func FilteredCountGTE(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldGTE(FieldFilteredCount, v))
}

// FilteredCountLT applies the LT predicate on the "filtered_count" field.
func FilteredCountLT(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLT(FieldFilteredCount, v))
}

// FilteredCountLTE applies the LTE predicate on the "filtered_count" field.
func FilteredCountLTE(v int) predicate.DailyRun {
	return predicate.DailyRun(sql.FieldLTE(FieldFilteredCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyRun) predicate.DailyRun {
	return predicate.DailyRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyRun) predicate.DailyRun {
	return predicate.DailyRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyRun) predicate.DailyRun {
	return predicate.DailyRun(sql.NotPredicates(p))
}
