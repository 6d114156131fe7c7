// Package audit implements the alarm gap detection core: tag filtering,
// heuristic alarm/resource matching, and required-metric diffing.
package audit

import "github.com/mikkoval/alarmgap/pkg/model"

// TagFilter decides whether a resource is in scope for required-alarm
// enforcement. The zero value passes everything.
type TagFilter struct {
	Key   string
	Value string
}

// Passes returns true when the resource is in scope.
// With no key or no value configured every resource passes. Otherwise the
// resource must carry exactly the configured key/value pair; a resource
// without tags fails whenever a filter is configured.
func (f TagFilter) Passes(r model.Resource) bool {
	if f.Key == "" || f.Value == "" {
		return true
	}
	if len(r.Tags) == 0 {
		return false
	}
	return r.Tags[f.Key] == f.Value
}
