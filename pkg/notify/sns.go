package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"mercator-hq/snapper/pkg/telemetry/tracing"
)

// maxSubjectLength is the SNS limit on message subjects.
const maxSubjectLength = 100

// SNSAPI is the subset of the SNS client used by SNSPublisher.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// NewSNSClient creates an SNS client from an AWS configuration.
func NewSNSClient(cfg aws.Config) *sns.Client {
	return sns.NewFromConfig(cfg)
}

// SNSPublisher publishes reports to an SNS topic.
type SNSPublisher struct {
	api      SNSAPI
	topicARN string
}

// NewSNSPublisher creates a publisher for topicARN.
func NewSNSPublisher(api SNSAPI, topicARN string) *SNSPublisher {
	return &SNSPublisher{api: api, topicARN: topicARN}
}

// Publish sends message to the topic. The trace context of ctx, if any, is
// attached as message attributes. The remote error is returned unmodified.
func (p *SNSPublisher) Publish(ctx context.Context, subject, message string) error {
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength]
	}

	_, err := p.api.Publish(ctx, &sns.PublishInput{
		TopicArn:          aws.String(p.topicARN),
		Subject:           aws.String(subject),
		Message:           aws.String(message),
		MessageAttributes: traceAttributes(ctx),
	})
	return err
}

func traceAttributes(ctx context.Context) map[string]types.MessageAttributeValue {
	carrier := map[string]string{}
	tracing.InjectToMap(ctx, carrier)
	if len(carrier) == 0 {
		return nil
	}

	attrs := make(map[string]types.MessageAttributeValue, len(carrier))
	for k, v := range carrier {
		attrs[k] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(v),
		}
	}
	return attrs
}

// String identifies the publisher in logs.
func (p *SNSPublisher) String() string {
	return fmt.Sprintf("sns(%s)", p.topicARN)
}
