// Package cloud builds AWS SDK configuration from snapper configuration.
package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"mercator-hq/snapper/pkg/config"
)

// LoadAWSConfig resolves an aws.Config. Region, endpoint and static
// credentials are applied only when set; everything else comes from the
// SDK's default chain (environment, shared config, Lambda execution role).
func LoadAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	sdkConfig, err := awsConfig.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdkConfig, nil
}

func loadOptions(cfg config.AWSConfig) []func(*awsConfig.LoadOptions) error {
	var opts []func(*awsConfig.LoadOptions) error

	if cfg.Region != "" {
		opts = append(opts, awsConfig.WithRegion(cfg.Region))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, awsConfig.WithBaseEndpoint(cfg.Endpoint))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		))
	}

	return opts
}
