package domain

import (
	"fmt"
	"time"
)

// Record is a single data record, such as one image sample with the
// text fields a vision-language model produced for it.
type Record struct {
	// ID is the unique identifier for the record.
	ID string

	// Fields holds the record's field values keyed by field name.
	// A present key with a nil value is a null field.
	Fields map[string]any

	// CreatedAt is when the record was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the record was last saved.
	UpdatedAt time.Time
}

// NewRecord creates an empty record with the given ID.
func NewRecord(id string) *Record {
	return &Record{
		ID:     id,
		Fields: make(map[string]any),
	}
}

// HasField reports whether the record carries the named field,
// including fields whose value is null.
func (r *Record) HasField(name string) bool {
	if r == nil || r.Fields == nil {
		return false
	}
	_, ok := r.Fields[name]
	return ok
}

// GetField returns the named field as a string.
// The boolean is false when the field is missing or null.
// Non-string values are formatted with their default representation.
func (r *Record) GetField(name string) (string, bool) {
	if !r.HasField(name) {
		return "", false
	}

	switch v := r.Fields[name].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// SetField sets the named field, creating it if needed.
func (r *Record) SetField(name string, value any) {
	if r.Fields == nil {
		r.Fields = make(map[string]any)
	}
	r.Fields[name] = value
}

// Clone returns a copy of the record with its own field map.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	c.Fields = make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		c.Fields[k] = v
	}
	return &c
}
