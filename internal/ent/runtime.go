// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/ai-news-tracker/internal/ent/article"
	"github.com/fachebot/ai-news-tracker/internal/ent/dailyrun"
	"github.com/fachebot/ai-news-tracker/internal/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleMixin := schema.Article{}.Mixin()
	articleMixinFields0 := articleMixin[0].Fields()
	_ = articleMixinFields0
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescCreateTime is the schema descriptor for create_time field.
	articleDescCreateTime := articleMixinFields0[0].Descriptor()
	// article.DefaultCreateTime holds the default value on creation for the create_time field.
	article.DefaultCreateTime = articleDescCreateTime.Default.(func() time.Time)
	// articleDescUpdateTime is the schema descriptor for update_time field.
	articleDescUpdateTime := articleMixinFields0[1].Descriptor()
	// article.DefaultUpdateTime holds the default value on creation for the update_time field.
	article.DefaultUpdateTime = articleDescUpdateTime.Default.(func() time.Time)
	// article.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	article.UpdateDefaultUpdateTime = articleDescUpdateTime.UpdateDefault.(func() time.Time)
	dailyrunMixin := schema.DailyRun{}.Mixin()
	dailyrunMixinFields0 := dailyrunMixin[0].Fields()
	_ = dailyrunMixinFields0
	dailyrunFields := schema.DailyRun{}.Fields()
	_ = dailyrunFields
	// dailyrunDescCreateTime is the schema descriptor for create_time field.
	dailyrunDescCreateTime := dailyrunMixinFields0[0].Descriptor()
	// dailyrun.DefaultCreateTime holds the default value on creation for the create_time field.
	dailyrun.DefaultCreateTime = dailyrunDescCreateTime.Default.(func() time.Time)
	// dailyrunDescUpdateTime is the schema descriptor for update_time field.
	dailyrunDescUpdateTime := dailyrunMixinFields0[1].Descriptor()
	// dailyrun.DefaultUpdateTime holds the default value on creation for the update_time field.
	dailyrun.DefaultUpdateTime = dailyrunDescUpdateTime.Default.(func() time.Time)
	// dailyrun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	dailyrun.UpdateDefaultUpdateTime = dailyrunDescUpdateTime.UpdateDefault.(func() time.Time)
	// dailyrunDescFetchedCount is the schema descriptor for fetched_count field.
	dailyrunDescFetchedCount := dailyrunFields[3].Descriptor()
	// dailyrun.DefaultFetchedCount holds the default value on creation for the fetched_count field.
	dailyrun.DefaultFetchedCount = dailyrunDescFetchedCount.Default.(int)
	// dailyrunDescFilteredCount is the schema descriptor for filtered_count field.
	dailyrunDescFilteredCount := dailyrunFields[4].Descriptor()
	// dailyrun.DefaultFilteredCount holds the default value on creation for the filtered_count field.
	dailyrun.DefaultFilteredCount = dailyrunDescFilteredCount.Default.(int)
}
