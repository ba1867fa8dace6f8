package repository

import (
	"context"

	"video_transcode_trigger/internal/transcode/domain"
	"video_transcode_trigger/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elastictranscoder"
	"github.com/aws/aws-sdk-go-v2/service/elastictranscoder/types"
)

// ElasticTranscoderAPI the part of *elastictranscoder.Client used here
type ElasticTranscoderAPI interface {
	CreateJob(ctx context.Context, params *elastictranscoder.CreateJobInput, optFns ...func(*elastictranscoder.Options)) (*elastictranscoder.CreateJobOutput, error)
}

type elasticTranscoderSubmitter struct {
	api ElasticTranscoderAPI
}

// NewElasticTranscoderSubmitter create an elastic transcoder JobSubmitter
func NewElasticTranscoderSubmitter(api ElasticTranscoderAPI) JobSubmitter {
	return &elasticTranscoderSubmitter{api: api}
}

// NewCreateJobInput map a JobSpec to the CreateJob request
func NewCreateJobInput(job domain.JobSpec) *elastictranscoder.CreateJobInput {
	outputs := make([]types.CreateJobOutput, 0, len(job.Renditions))
	for _, r := range job.Renditions {
		outputs = append(outputs, types.CreateJobOutput{
			Key:      aws.String(r.Key),
			PresetId: aws.String(r.PresetID),
		})
	}

	return &elastictranscoder.CreateJobInput{
		PipelineId:      aws.String(job.PipelineID),
		OutputKeyPrefix: aws.String(job.OutputKeyPrefix),
		Input: &types.JobInput{
			Key: aws.String(job.SourceKey),
		},
		Outputs: outputs,
	}
}

func (s *elasticTranscoderSubmitter) Submit(ctx context.Context, job domain.JobSpec) (*domain.JobHandle, error) {
	out, err := s.api.CreateJob(ctx, NewCreateJobInput(job))
	if err != nil {
		return nil, &domain.SubmitError{Backend: config.SubmitterElasticTranscoder, Err: err}
	}

	handle := &domain.JobHandle{Backend: config.SubmitterElasticTranscoder}
	if out != nil && out.Job != nil {
		handle.ID = aws.ToString(out.Job.Id)
	}
	return handle, nil
}
