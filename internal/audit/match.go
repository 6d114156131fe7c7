package audit

import (
	"strings"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// dimensionNames maps a resource type to the alarm dimension that names
// an instance of it.
var dimensionNames = map[model.ResourceType]string{
	model.TypeEC2:    "InstanceId",
	model.TypeRDS:    "DBInstanceIdentifier",
	model.TypeALB:    "LoadBalancer",
	model.TypeNLB:    "LoadBalancer",
	model.TypeLambda: "FunctionName",
}

// FindRelated returns the alarms plausibly watching the given resource.
//
// This is a heuristic, not a guaranteed-correct mapping. An alarm is
// related when any of these hold:
//   - the resource ID appears anywhere in the alarm name
//   - a dimension matches the type's expected dimension name with the
//     resource ID as its exact value
//   - for load balancers only, the expected dimension's value is a suffix
//     of the resource ARN (CloudWatch uses "app/name/hash" rather than
//     the full ARN)
//
// Substring collisions in alarm names produce false positives and
// unconventional naming produces false negatives; both are accepted
// trade-offs, kept for behavior parity with the audits teams already run.
func FindRelated(r model.Resource, alarms []model.Alarm) []model.Alarm {
	expectedDim := dimensionNames[r.Type]
	isLB := r.Type == model.TypeALB || r.Type == model.TypeNLB

	var related []model.Alarm
	for _, alarm := range alarms {
		if strings.Contains(alarm.Name, r.ID) {
			related = append(related, alarm)
			continue
		}

		for _, dim := range alarm.Dimensions {
			if dim.Name != expectedDim {
				continue
			}
			if dim.Value == r.ID {
				related = append(related, alarm)
				break
			}
			if isLB && r.ARN != "" && strings.HasSuffix(r.ARN, dim.Value) {
				related = append(related, alarm)
				break
			}
		}
	}

	return related
}
