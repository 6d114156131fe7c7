// Package aws collects the resource inventory and alarm snapshot that
// the gap detector audits.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/rs/zerolog/log"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// Collector retrieves resources and alarms from one AWS region.
type Collector struct {
	region string

	// AWS clients (interfaces for testability)
	ec2Client    EC2API
	rdsClient    RDSAPI
	elbClient    ELBAPI
	lambdaClient LambdaAPI
	cwClient     CloudWatchAPI
}

// Config holds collector configuration.
type Config struct {
	Region string
}

// New creates a collector with real AWS clients.
func New(ctx context.Context, cfg Config) (*Collector, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewFromConfig(awsCfg, cfg.Region), nil
}

// NewFromConfig creates a collector from an already loaded AWS config.
func NewFromConfig(awsCfg aws.Config, region string) *Collector {
	return &Collector{
		region:       region,
		ec2Client:    ec2.NewFromConfig(awsCfg),
		rdsClient:    rds.NewFromConfig(awsCfg),
		elbClient:    elasticloadbalancingv2.NewFromConfig(awsCfg),
		lambdaClient: lambda.NewFromConfig(awsCfg),
		cwClient:     cloudwatch.NewFromConfig(awsCfg),
	}
}

type collector struct {
	rtype string
	fn    func(context.Context) ([]model.Resource, error)
}

func (c *Collector) collectors() []collector {
	return []collector{
		{"ec2", c.collectEC2},
		{"rds", c.collectRDS},
		{"elb", c.collectLoadBalancers},
		{"lambda", c.collectLambda},
	}
}

// CollectResources retrieves the full inventory, one collector at a
// time. Any collector failure aborts the run: a partial inventory would
// turn absent data into a clean report.
func (c *Collector) CollectResources(ctx context.Context) (model.Snapshot, error) {
	snapshot := make(model.Snapshot)

	for _, col := range c.collectors() {
		resources, err := col.fn(ctx)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", col.rtype, err)
		}
		for _, r := range resources {
			snapshot[r.Type] = append(snapshot[r.Type], r)
		}
		log.Debug().Str("collector", col.rtype).Int("count", len(resources)).Msg("collect complete")
	}

	return snapshot, nil
}
