// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionRun is the predicate function for extractionrun builders.
type ExtractionRun func(*sql.Selector)

// ServiceRecord is the predicate function for servicerecord builders.
type ServiceRecord func(*sql.Selector)
