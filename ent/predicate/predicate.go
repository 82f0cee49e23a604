// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIRequestEvent is the predicate function for apirequestevent builders.
type APIRequestEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
