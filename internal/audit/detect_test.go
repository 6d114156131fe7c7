package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikkoval/alarmgap/pkg/model"
)

func TestDetectNoAlarmsReportsFullRequiredList(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {{ID: "i-123", Type: model.TypeEC2}},
	}
	policy := Policy{model.TypeEC2: {"CPUUtilization", "StatusCheckFailed"}}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, nil)

	require.Len(t, gaps, 1)
	assert.Equal(t, "i-123", gaps[0].ResourceID)
	assert.Equal(t, model.TypeEC2, gaps[0].ResourceType)
	assert.Equal(t, []string{"CPUUtilization", "StatusCheckFailed"}, gaps[0].Missing)
}

func TestDetectAlarmNameSubstringSatisfiesMetric(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {{ID: "i-123", Type: model.TypeEC2}},
	}
	policy := Policy{model.TypeEC2: {"CPUUtilization", "StatusCheckFailed"}}
	alarms := []model.Alarm{
		{Name: "i-123-cpu-high", MetricName: "CPUUtilization"},
	}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, alarms)

	require.Len(t, gaps, 1)
	assert.Equal(t, []string{"StatusCheckFailed"}, gaps[0].Missing)
}

func TestDetectFullyCoveredResourceProducesNoGap(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {{ID: "i-123", Type: model.TypeEC2}},
	}
	policy := Policy{model.TypeEC2: {"CPUUtilization", "StatusCheckFailed"}}
	alarms := []model.Alarm{
		{Name: "i-123-cpu-high", MetricName: "CPUUtilization"},
		{Name: "i-123-status", MetricName: "StatusCheckFailed"},
	}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, alarms)

	assert.Empty(t, gaps)
}

func TestDetectLoadBalancerARNSuffixAndMetricVariant(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeALB: {{
			ID:   "my-alb",
			ARN:  "arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/my-alb/abc123",
			Type: model.TypeALB,
		}},
	}
	policy := Policy{model.TypeALB: {"HTTPCode_ELB_5XX"}}
	alarms := []model.Alarm{
		{
			Name:       "elb-5xx-spike",
			MetricName: "HTTPCode_ELB_5XX_Count",
			Dimensions: []model.Dimension{{Name: "LoadBalancer", Value: "app/my-alb/abc123"}},
		},
	}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, alarms)

	assert.Empty(t, gaps)
}

func TestDetectTagFilterExcludesUntaggedResource(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {
			{ID: "i-prod", Type: model.TypeEC2, Tags: map[string]string{"env": "prod"}},
			{ID: "i-dev", Type: model.TypeEC2, Tags: map[string]string{"env": "dev"}},
			{ID: "i-bare", Type: model.TypeEC2},
		},
	}
	policy := Policy{model.TypeEC2: {"CPUUtilization"}}

	gaps := NewDetector(policy, TagFilter{Key: "env", Value: "prod"}).Detect(snapshot, nil)

	require.Len(t, gaps, 1)
	assert.Equal(t, "i-prod", gaps[0].ResourceID)
}

func TestDetectUnknownLogicalMetricAlwaysMissing(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {{ID: "i-123", Type: model.TypeEC2}},
	}
	policy := Policy{model.TypeEC2: {"NoSuchMetric"}}
	alarms := []model.Alarm{
		{Name: "i-123-everything", MetricName: "NoSuchMetric"},
	}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, alarms)

	require.Len(t, gaps, 1)
	assert.Equal(t, []string{"NoSuchMetric"}, gaps[0].Missing)
}

func TestDetectTypeAbsentFromPolicyHasNoRequirements(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeLambda: {{ID: "fn-1", Type: model.TypeLambda}},
	}
	policy := Policy{model.TypeEC2: {"CPUUtilization"}}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, nil)

	assert.Empty(t, gaps)
}

func TestDetectEmptySnapshot(t *testing.T) {
	policy := Policy{model.TypeEC2: {"CPUUtilization"}}

	gaps := NewDetector(policy, TagFilter{}).Detect(model.Snapshot{}, nil)

	assert.Empty(t, gaps)
}

func TestDetectIsIdempotent(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeEC2: {{ID: "i-123", Type: model.TypeEC2}},
		model.TypeRDS: {{ID: "my-db", Type: model.TypeRDS, ARN: "arn:aws:rds:us-east-1:123456789012:db:my-db"}},
	}
	policy := Policy{
		model.TypeEC2: {"CPUUtilization", "StatusCheckFailed"},
		model.TypeRDS: {"FreeStorageSpace"},
	}
	alarms := []model.Alarm{
		{Name: "my-db-storage", MetricName: "FreeStorageSpace"},
	}

	d := NewDetector(policy, TagFilter{})
	first := d.Detect(snapshot, alarms)
	second := d.Detect(snapshot, alarms)

	assert.Equal(t, first, second)
}

func TestDetectOutputFollowsTypeThenInputOrder(t *testing.T) {
	snapshot := model.Snapshot{
		model.TypeRDS: {{ID: "db-b", Type: model.TypeRDS}, {ID: "db-a", Type: model.TypeRDS}},
		model.TypeEC2: {{ID: "i-z", Type: model.TypeEC2}},
	}
	policy := Policy{
		model.TypeEC2: {"CPUUtilization"},
		model.TypeRDS: {"FreeStorageSpace"},
	}

	gaps := NewDetector(policy, TagFilter{}).Detect(snapshot, nil)

	require.Len(t, gaps, 3)
	assert.Equal(t, "i-z", gaps[0].ResourceID)
	assert.Equal(t, "db-b", gaps[1].ResourceID)
	assert.Equal(t, "db-a", gaps[2].ResourceID)
}
