package audit

import "github.com/mikkoval/alarmgap/pkg/model"

// Policy maps a resource type to the logical metrics that must have at
// least one alarm. A type absent from the policy has no requirements.
type Policy map[model.ResourceType][]string

// Detector computes alarm gaps for one snapshot.
type Detector struct {
	policy Policy
	filter TagFilter
}

// NewDetector creates a detector for the given policy and tag filter.
func NewDetector(policy Policy, filter TagFilter) *Detector {
	return &Detector{policy: policy, filter: filter}
}

// Detect returns one GapRecord per in-scope resource that is missing at
// least one required logical metric. Output order follows model.TypeOrder
// then input resource order; a pure function of its inputs.
func (d *Detector) Detect(snapshot model.Snapshot, alarms []model.Alarm) []model.GapRecord {
	var gaps []model.GapRecord

	for _, rtype := range model.TypeOrder {
		required := d.policy[rtype]
		if len(required) == 0 {
			continue
		}

		for _, r := range snapshot[rtype] {
			if !d.filter.Passes(r) {
				continue
			}

			missing := missingMetrics(required, FindRelated(r, alarms))
			if len(missing) > 0 {
				gaps = append(gaps, model.GapRecord{
					ResourceID:   r.ID,
					ResourceType: rtype,
					Missing:      missing,
				})
			}
		}
	}

	return gaps
}

// missingMetrics returns the required logical metrics with no acceptable
// real metric name among the related alarms.
func missingMetrics(required []string, related []model.Alarm) []string {
	existing := make(map[string]bool, len(related))
	for _, alarm := range related {
		if alarm.MetricName != "" {
			existing[alarm.MetricName] = true
		}
	}

	var missing []string
	for _, logical := range required {
		if !anyPresent(RealNames(logical), existing) {
			// An unknown logical name has no real names and can never
			// be satisfied; it is always reported missing.
			missing = append(missing, logical)
		}
	}

	return missing
}

func anyPresent(names []string, existing map[string]bool) bool {
	for _, name := range names {
		if existing[name] {
			return true
		}
	}
	return false
}
