// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArticlesColumns holds the columns for the "articles" table.
	ArticlesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "run_date", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
	}
	// ArticlesTable holds the schema information for the "articles" table.
	ArticlesTable = &schema.Table{
		Name:       "articles",
		Columns:    ArticlesColumns,
		PrimaryKey: []*schema.Column{ArticlesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "article_run_date_url",
				Unique:  true,
				Columns: []*schema.Column{ArticlesColumns[3], ArticlesColumns[5]},
			},
			{
				Name:    "article_run_date",
				Unique:  false,
				Columns: []*schema.Column{ArticlesColumns[3]},
			},
		},
	}
	// DailyRunsColumns holds the columns for the "daily_runs" table.
	DailyRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "run_date", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "failed"}, Default: "in_progress"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "fetched_count", Type: field.TypeInt, Default: 0},
		{Name: "filtered_count", Type: field.TypeInt, Default: 0},
	}
	// DailyRunsTable holds the schema information for the "daily_runs" table.
	DailyRunsTable = &schema.Table{
		Name:       "daily_runs",
		Columns:    DailyRunsColumns,
		PrimaryKey: []*schema.Column{DailyRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dailyrun_run_date",
				Unique:  true,
				Columns: []*schema.Column{DailyRunsColumns[3]},
			},
			{
				Name:    "dailyrun_status",
				Unique:  false,
				Columns: []*schema.Column{DailyRunsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArticlesTable,
		DailyRunsTable,
	}
)

func init() {
}
