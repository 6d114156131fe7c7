package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// DescribeTags accepts at most 20 ARNs per call.
const elbTagBatchSize = 20

// collectLoadBalancers collects ALBs and NLBs with their tags.
func (c *Collector) collectLoadBalancers(ctx context.Context) ([]model.Resource, error) {
	var lbs []elbtypes.LoadBalancer
	var marker *string

	for {
		output, err := c.elbClient.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}

		lbs = append(lbs, output.LoadBalancers...)

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	tagsByARN, err := c.loadBalancerTags(ctx, lbs)
	if err != nil {
		return nil, err
	}

	resources := make([]model.Resource, 0, len(lbs))
	for _, lb := range lbs {
		arn := aws.ToString(lb.LoadBalancerArn)
		resources = append(resources, model.Resource{
			ID:   aws.ToString(lb.LoadBalancerName),
			ARN:  arn,
			Type: loadBalancerType(lb),
			Tags: tagsByARN[arn],
		})
	}

	return resources, nil
}

func loadBalancerType(lb elbtypes.LoadBalancer) model.ResourceType {
	if lb.Type == elbtypes.LoadBalancerTypeEnumApplication {
		return model.TypeALB
	}
	return model.TypeNLB
}

// loadBalancerTags fetches tags for all load balancers in batches.
func (c *Collector) loadBalancerTags(ctx context.Context, lbs []elbtypes.LoadBalancer) (map[string]map[string]string, error) {
	tagsByARN := make(map[string]map[string]string, len(lbs))

	arns := make([]string, 0, len(lbs))
	for _, lb := range lbs {
		arns = append(arns, aws.ToString(lb.LoadBalancerArn))
	}

	for start := 0; start < len(arns); start += elbTagBatchSize {
		end := min(start+elbTagBatchSize, len(arns))

		output, err := c.elbClient.DescribeTags(ctx, &elasticloadbalancingv2.DescribeTagsInput{
			ResourceArns: arns[start:end],
		})
		if err != nil {
			return nil, fmt.Errorf("describe load balancer tags: %w", err)
		}

		for _, desc := range output.TagDescriptions {
			tags := make(map[string]string, len(desc.Tags))
			for _, tag := range desc.Tags {
				tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
			}
			tagsByARN[aws.ToString(desc.ResourceArn)] = tags
		}
	}

	return tagsByARN, nil
}
