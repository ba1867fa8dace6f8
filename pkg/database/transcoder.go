package database

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/elastictranscoder"
)

// NewElasticTranscoderClient create an elastic transcoder client.
// Static keys are optional, the default credential chain (Lambda role) is used otherwise.
func NewElasticTranscoderClient(ctx context.Context, c TranscoderConnection) (*elastictranscoder.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// 每次通知只呼叫一次，不在 SDK 層重試
	return elastictranscoder.NewFromConfig(cfg, func(o *elastictranscoder.Options) {
		o.RetryMaxAttempts = 1
	}), nil
}
