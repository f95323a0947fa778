// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_hash", Type: field.TypeString, Unique: true},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_filename",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// ExtractionRunsColumns holds the columns for the "extraction_runs" table.
	ExtractionRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "pipeline_version", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "final_data", Type: field.TypeJSON, Nullable: true},
		{Name: "field_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "total_duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionRunsTable holds the schema information for the "extraction_runs" table.
	ExtractionRunsTable = &schema.Table{
		Name:       "extraction_runs",
		Columns:    ExtractionRunsColumns,
		PrimaryKey: []*schema.Column{ExtractionRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_runs_documents_runs",
				Columns:    []*schema.Column{ExtractionRunsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrun_document_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRunsColumns[10], ExtractionRunsColumns[4]},
			},
			{
				Name:    "extractionrun_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRunsColumns[1]},
			},
		},
	}
	// ServiceRecordsColumns holds the columns for the "service_records" table.
	ServiceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "service_date", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeFloat64, Default: 0},
		{Name: "vat_amount", Type: field.TypeFloat64, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "odometer_km", Type: field.TypeInt, Nullable: true},
		{Name: "work_descriptions", Type: field.TypeJSON, Nullable: true},
		{Name: "source_stem", Type: field.TypeString, Unique: true},
		{Name: "overridden", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ServiceRecordsTable holds the schema information for the "service_records" table.
	ServiceRecordsTable = &schema.Table{
		Name:       "service_records",
		Columns:    ServiceRecordsColumns,
		PrimaryKey: []*schema.Column{ServiceRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "servicerecord_service_date",
				Unique:  false,
				Columns: []*schema.Column{ServiceRecordsColumns[2]},
			},
			{
				Name:    "servicerecord_company",
				Unique:  false,
				Columns: []*schema.Column{ServiceRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionRunsTable,
		ServiceRecordsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionRunsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionRunsTable.Annotation = &entsql.Annotation{
		Table: "extraction_runs",
	}
	ServiceRecordsTable.Annotation = &entsql.Annotation{
		Table: "service_records",
	}
}
