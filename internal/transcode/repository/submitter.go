package repository

import (
	"context"
	"encoding/json"
	"time"

	"video_transcode_trigger/internal/transcode/domain"

	"github.com/google/uuid"
)

// JobSubmitter definition transcoding backend, one call per job, no retry
type JobSubmitter interface {
	Submit(ctx context.Context, job domain.JobSpec) (*domain.JobHandle, error)
}

// 讓 test 可以固定 job id 與時間
var (
	newJobID = uuid.NewString
	now      = time.Now
)

// encodeQueuedJob wrap a JobSpec into the worker message
func encodeQueuedJob(job domain.JobSpec) (string, []byte, error) {
	id := newJobID()
	body, err := json.Marshal(domain.QueuedJob{
		JobID:       id,
		SubmittedAt: now().UTC(),
		Job:         job,
	})
	return id, body, err
}
