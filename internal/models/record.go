package models

import (
	"fmt"
	"math"
	"strconv"

	"dmbookAdmin/internal/docstore"
)

// Record is a stored document viewed as a flat set of fields. Records are
// never nil-dereferenced: lookups on a nil Record behave like an empty one.
type Record map[string]interface{}

// RecordOf returns the object stored in s, or an empty Record.
func RecordOf(s docstore.Snapshot) Record {
	if f := s.Fields(); f != nil {
		return Record(f)
	}
	return Record{}
}

// Truthy mirrors the falsy set the stored data was written against:
// nil, false, "", 0 and NaN are false, everything else is true.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	case uint32:
		return t != 0
	}
	return true
}

// Get returns the raw field value.
func (r Record) Get(field string) interface{} {
	return r[field]
}

// Has reports whether field is present at all.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Or returns the field when truthy and def otherwise.
func (r Record) Or(field string, def interface{}) interface{} {
	if v := r[field]; Truthy(v) {
		return v
	}
	return def
}

// Text returns the first truthy field among fields, rendered as a string,
// or def when none is set.
func (r Record) Text(def string, fields ...string) string {
	for _, f := range fields {
		v := r[f]
		if !Truthy(v) {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return def
}

// String returns the field only when it is stored as a string.
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Is compares a field with want using exact string equality. Numbers and
// booleans never match, even when they print the same.
func (r Record) Is(field, want string) bool {
	s, ok := r[field].(string)
	return ok && s == want
}

// Flag renders a "1"/other sentinel as Yes/No.
func (r Record) Flag(field string) YesNo {
	if r.Is(field, "1") {
		return Yes
	}
	return No
}

// Ref returns the field as a key usable in a store path. Strings are used
// as-is and integral numbers are printed without a fraction; anything else
// yields "".
func (r Record) Ref(field string) string {
	switch t := r[field].(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return ""
}
