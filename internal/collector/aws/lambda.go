package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/rs/zerolog/log"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// collectLambda collects Lambda functions.
func (c *Collector) collectLambda(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource
	var marker *string

	for {
		output, err := c.lambdaClient.ListFunctions(ctx, &lambda.ListFunctionsInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}

		for _, fn := range output.Functions {
			arn := aws.ToString(fn.FunctionArn)
			resources = append(resources, model.Resource{
				ID:   aws.ToString(fn.FunctionName),
				ARN:  arn,
				Type: model.TypeLambda,
				Tags: c.functionTags(ctx, arn),
			})
		}

		if output.NextMarker == nil {
			break
		}
		marker = output.NextMarker
	}

	return resources, nil
}

// functionTags fetches a function's tags. Tag enrichment is best effort:
// a failure here leaves the function untagged rather than aborting the
// inventory, which matches how an untaggable kind behaves in the filter.
func (c *Collector) functionTags(ctx context.Context, arn string) map[string]string {
	output, err := c.lambdaClient.ListTags(ctx, &lambda.ListTagsInput{Resource: aws.String(arn)})
	if err != nil {
		log.Warn().Err(err).Str("arn", arn).Msg("list function tags failed")
		return nil
	}
	return output.Tags
}
