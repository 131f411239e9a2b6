// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// GeneratedForm is the predicate function for generatedform builders.
type GeneratedForm func(*sql.Selector)

// Person is the predicate function for person builders.
type Person func(*sql.Selector)

// Vehicle is the predicate function for vehicle builders.
type Vehicle func(*sql.Selector)
