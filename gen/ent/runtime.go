// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tkarvonen/huoltokirja/db/ent/schema"
	"github.com/tkarvonen/huoltokirja/gen/ent/document"
	"github.com/tkarvonen/huoltokirja/gen/ent/extractionrun"
	"github.com/tkarvonen/huoltokirja/gen/ent/servicerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileHash is the schema descriptor for file_hash field.
	documentDescFileHash := documentFields[3].Descriptor()
	// document.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	document.FileHashValidator = documentDescFileHash.Validators[0].(func(string) error)
	// documentDescPages is the schema descriptor for pages field.
	documentDescPages := documentFields[4].Descriptor()
	// document.DefaultPages holds the default value on creation for the pages field.
	document.DefaultPages = documentDescPages.Default.(int)
	// document.PagesValidator is a validator for the "pages" field. It is called by the builders before save.
	document.PagesValidator = documentDescPages.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[5].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionrunFields := schema.ExtractionRun{}.Fields()
	_ = extractionrunFields
	// extractionrunDescStatus is the schema descriptor for status field.
	extractionrunDescStatus := extractionrunFields[2].Descriptor()
	// extractionrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionrun.StatusValidator = func() func(string) error {
		validators := extractionrunDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionrunDescMode is the schema descriptor for mode field.
	extractionrunDescMode := extractionrunFields[3].Descriptor()
	// extractionrun.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	extractionrun.ModeValidator = func() func(string) error {
		validators := extractionrunDescMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mode string) error {
			for _, fn := range fns {
				if err := fn(mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionrunDescPipelineVersion is the schema descriptor for pipeline_version field.
	extractionrunDescPipelineVersion := extractionrunFields[4].Descriptor()
	// extractionrun.PipelineVersionValidator is a validator for the "pipeline_version" field. It is called by the builders before save.
	extractionrun.PipelineVersionValidator = extractionrunDescPipelineVersion.Validators[0].(func(string) error)
	// extractionrunDescStartedAt is the schema descriptor for started_at field.
	extractionrunDescStartedAt := extractionrunFields[5].Descriptor()
	// extractionrun.DefaultStartedAt holds the default value on creation for the started_at field.
	extractionrun.DefaultStartedAt = extractionrunDescStartedAt.Default.(func() time.Time)
	// extractionrunDescTotalDurationMs is the schema descriptor for total_duration_ms field.
	extractionrunDescTotalDurationMs := extractionrunFields[10].Descriptor()
	// extractionrun.DefaultTotalDurationMs holds the default value on creation for the total_duration_ms field.
	extractionrun.DefaultTotalDurationMs = extractionrunDescTotalDurationMs.Default.(int64)
	// extractionrun.TotalDurationMsValidator is a validator for the "total_duration_ms" field. It is called by the builders before save.
	extractionrun.TotalDurationMsValidator = extractionrunDescTotalDurationMs.Validators[0].(func(int64) error)
	// extractionrunDescID is the schema descriptor for id field.
	extractionrunDescID := extractionrunFields[0].Descriptor()
	// extractionrun.DefaultID holds the default value on creation for the id field.
	extractionrun.DefaultID = extractionrunDescID.Default.(func() uuid.UUID)
	servicerecordFields := schema.ServiceRecord{}.Fields()
	_ = servicerecordFields
	// servicerecordDescRecordID is the schema descriptor for record_id field.
	servicerecordDescRecordID := servicerecordFields[1].Descriptor()
	// servicerecord.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	servicerecord.RecordIDValidator = servicerecordDescRecordID.Validators[0].(func(string) error)
	// servicerecordDescServiceDate is the schema descriptor for service_date field.
	servicerecordDescServiceDate := servicerecordFields[2].Descriptor()
	// servicerecord.ServiceDateValidator is a validator for the "service_date" field. It is called by the builders before save.
	servicerecord.ServiceDateValidator = servicerecordDescServiceDate.Validators[0].(func(string) error)
	// servicerecordDescAmount is the schema descriptor for amount field.
	servicerecordDescAmount := servicerecordFields[4].Descriptor()
	// servicerecord.DefaultAmount holds the default value on creation for the amount field.
	servicerecord.DefaultAmount = servicerecordDescAmount.Default.(float64)
	// servicerecordDescSourceStem is the schema descriptor for source_stem field.
	servicerecordDescSourceStem := servicerecordFields[9].Descriptor()
	// servicerecord.SourceStemValidator is a validator for the "source_stem" field. It is called by the builders before save.
	servicerecord.SourceStemValidator = servicerecordDescSourceStem.Validators[0].(func(string) error)
	// servicerecordDescOverridden is the schema descriptor for overridden field.
	servicerecordDescOverridden := servicerecordFields[10].Descriptor()
	// servicerecord.DefaultOverridden holds the default value on creation for the overridden field.
	servicerecord.DefaultOverridden = servicerecordDescOverridden.Default.(bool)
	// servicerecordDescCreatedAt is the schema descriptor for created_at field.
	servicerecordDescCreatedAt := servicerecordFields[11].Descriptor()
	// servicerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	servicerecord.DefaultCreatedAt = servicerecordDescCreatedAt.Default.(func() time.Time)
	// servicerecordDescID is the schema descriptor for id field.
	servicerecordDescID := servicerecordFields[0].Descriptor()
	// servicerecord.DefaultID holds the default value on creation for the id field.
	servicerecord.DefaultID = servicerecordDescID.Default.(func() uuid.UUID)
}
