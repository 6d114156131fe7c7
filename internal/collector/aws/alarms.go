package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/mikkoval/alarmgap/pkg/model"
)

// CollectAlarms retrieves every configured CloudWatch metric alarm.
func (c *Collector) CollectAlarms(ctx context.Context) ([]model.Alarm, error) {
	var alarms []model.Alarm
	var nextToken *string

	for {
		output, err := c.cwClient.DescribeAlarms(ctx, &cloudwatch.DescribeAlarmsInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe alarms: %w", err)
		}

		for _, alarm := range output.MetricAlarms {
			alarms = append(alarms, convertAlarm(alarm))
		}

		if output.NextToken == nil {
			break
		}
		nextToken = output.NextToken
	}

	return alarms, nil
}

func convertAlarm(alarm cwtypes.MetricAlarm) model.Alarm {
	dimensions := make([]model.Dimension, 0, len(alarm.Dimensions))
	for _, dim := range alarm.Dimensions {
		dimensions = append(dimensions, model.Dimension{
			Name:  aws.ToString(dim.Name),
			Value: aws.ToString(dim.Value),
		})
	}

	return model.Alarm{
		Name:       aws.ToString(alarm.AlarmName),
		MetricName: aws.ToString(alarm.MetricName),
		Dimensions: dimensions,
	}
}
