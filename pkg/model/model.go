// Package model defines the domain model for alarmgap.
package model

// ResourceType identifies the kind of audited resource.
type ResourceType string

// Audited resource types. The required-metrics policy and the alarm
// matcher's dimension table are keyed by these values.
const (
	TypeEC2    ResourceType = "EC2"
	TypeRDS    ResourceType = "RDS"
	TypeALB    ResourceType = "ALB"
	TypeNLB    ResourceType = "NLB"
	TypeLambda ResourceType = "Lambda"
)

// Resource is one audited cloud resource in unified format.
// Built fresh each run from a collector call, never mutated.
type Resource struct {
	ID   string            `json:"id"`             // e.g. "i-abc123", "my-db", load balancer name
	ARN  string            `json:"arn,omitempty"`  // empty for kinds without one (EC2)
	Type ResourceType      `json:"type"`           // EC2, RDS, ALB, NLB, Lambda
	Tags map[string]string `json:"tags,omitempty"` // nil for kinds with no tag support
}

// Dimension is one name/value pair on a CloudWatch alarm identifying
// which resource instance it watches.
type Dimension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Alarm is one configured CloudWatch metric alarm.
type Alarm struct {
	Name       string      `json:"name"`
	MetricName string      `json:"metric_name,omitempty"` // empty for composite alarms
	Dimensions []Dimension `json:"dimensions,omitempty"`
}

// Snapshot holds one run's resource inventory grouped by type.
// Iteration over it follows TypeOrder so output is deterministic.
type Snapshot map[ResourceType][]Resource

// TypeOrder is the order resource types are audited and reported in.
var TypeOrder = []ResourceType{TypeEC2, TypeRDS, TypeALB, TypeNLB, TypeLambda}

// GapRecord reports one resource with at least one required logical
// metric that has no matching alarm. Missing is never empty.
type GapRecord struct {
	ResourceID   string       `json:"resource"`
	ResourceType ResourceType `json:"type"`
	Missing      []string     `json:"missing"`
}
