package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// collectRDS collects RDS database instances.
func (c *Collector) collectRDS(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	var marker *string

	for {
		output, err := c.rdsClient.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}

		for _, instance := range output.DBInstances {
			resources = append(resources, convertRDSInstance(instance))
		}

		if output.Marker == nil {
			break
		}
		marker = output.Marker
	}

	return resources, nil
}

func convertRDSInstance(instance rdstypes.DBInstance) model.Resource {
	tags := make(map[string]string, len(instance.TagList))
	for _, tag := range instance.TagList {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return model.Resource{
		ID:   aws.ToString(instance.DBInstanceIdentifier),
		ARN:  aws.ToString(instance.DBInstanceArn),
		Type: model.TypeRDS,
		Tags: tags,
	}
}
