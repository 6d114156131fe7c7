package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// collectEC2 collects EC2 instances.
func (c *Collector) collectEC2(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	var nextToken *string

	for {
		output, err := c.ec2Client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, convertEC2Instance(instance))
			}
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return resources, nil
}

func convertEC2Instance(instance ec2types.Instance) model.Resource {
	tags := make(map[string]string, len(instance.Tags))
	for _, tag := range instance.Tags {
		tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return model.Resource{
		ID:   aws.ToString(instance.InstanceId),
		Type: model.TypeEC2,
		Tags: tags,
	}
}
