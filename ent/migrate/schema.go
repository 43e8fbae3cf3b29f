// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JudgeEventsColumns holds the columns for the "judge_events" table.
	JudgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// JudgeEventsTable holds the schema information for the "judge_events" table.
	JudgeEventsTable = &schema.Table{
		Name:       "judge_events",
		Columns:    JudgeEventsColumns,
		PrimaryKey: []*schema.Column{JudgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "judgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{JudgeEventsColumns[1]},
			},
			{
				Name:    "judgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{JudgeEventsColumns[2]},
			},
			{
				Name:    "judgeevent_provider",
				Unique:  false,
				Columns: []*schema.Column{JudgeEventsColumns[4]},
			},
			{
				Name:    "judgeevent_success",
				Unique:  false,
				Columns: []*schema.Column{JudgeEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JudgeEventsTable,
	}
)

func init() {
}
