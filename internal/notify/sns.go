package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

const snsSubject = "CloudWatch Alarm Gap Report"

// SNSAPI defines the SNS operations used by the publisher.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publishes the text report to a notification topic.
type SNSPublisher struct {
	client   SNSAPI
	topicARN string
}

// NewSNSPublisher creates an SNS sink. An empty topic ARN disables it.
func NewSNSPublisher(client SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

// Publish sends the message. Silently skipped when no topic is
// configured, matching the original behavior of this channel.
func (p *SNSPublisher) Publish(ctx context.Context, message string) error {
	if p.topicARN == "" {
		return nil
	}

	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(message),
		Subject:  aws.String(snsSubject),
	})
	if err != nil {
		return fmt.Errorf("publish to sns: %w", err)
	}

	return nil
}
