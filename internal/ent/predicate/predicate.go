// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Article is the predicate function for article builders.
type Article func(*sql.Selector)

// DailyRun is the predicate function for dailyrun builders.
type DailyRun func(*sql.Selector)
