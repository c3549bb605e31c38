// Package record defines the loosely structured record type that triage
// operates on, along with typed accessors over its recognized keys.
//
// A record is an arbitrary string-keyed mapping. Recognized keys:
//   - "status": string, treated as "unknown" when absent
//   - "priority": numeric
//   - "tags": list of strings
//   - "meta_*": free-form metadata, copied verbatim for pending records
//   - "next": a nested record forming a singly linked chain
package record

import (
	"encoding/json"
	"sort"
	"strings"
)

// MetaPrefix marks keys that carry free-form metadata.
const MetaPrefix = "meta_"

// StatusUnknown is the status assumed for records that carry none.
const StatusUnknown = "unknown"

// Record is a loosely structured input mapping.
type Record map[string]any

// Result holds the classification outcome for a single record.
// Values are booleans plus any copied meta_* values.
type Result map[string]any

// IsEmpty reports whether the record has no keys at all.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}

// Status returns the record's status, or StatusUnknown when the key is
// absent or not a string.
func (r Record) Status() string {
	if s, ok := r["status"].(string); ok {
		return s
	}
	return StatusUnknown
}

// Priority returns the record's numeric priority. The second return is
// false when the key is absent or non-numeric. All common numeric
// representations are accepted, including json.Number.
func (r Record) Priority() (float64, bool) {
	switch v := r["priority"].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Tags returns the record's string tags in order. Non-string entries are
// skipped; they can never match a flag tag anyway.
func (r Record) Tags() []string {
	switch v := r["tags"].(type) {
	case []string:
		return v
	case []any:
		tags := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	}
	return nil
}

// MetaKeys returns the record's meta_* keys in sorted order.
func (r Record) MetaKeys() []string {
	var keys []string
	for k := range r {
		if strings.HasPrefix(k, MetaPrefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Next returns the next record in the chain, if any. A "next" value that
// is not itself a mapping terminates the chain.
func (r Record) Next() (Record, bool) {
	switch v := r["next"].(type) {
	case Record:
		return v, true
	case map[string]any:
		return Record(v), true
	}
	return nil, false
}
