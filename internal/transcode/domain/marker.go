package domain

import "time"

const (
	// MarkerCollection root path of marker documents
	MarkerCollection = "videos"
	// SuccessAck invocation result on success
	SuccessAck = "Video Saved"
	// QueueName transcode job queue for self-hosted workers
	QueueName = "transcode"
)

// ProgressMarker 給前端 UI 的轉碼中標記
type ProgressMarker struct {
	Transcoding bool `json:"transcoding" bson:"transcoding"`
}

// MarkerPath returns videos/{groupKey}
func MarkerPath(groupKey string) string {
	return MarkerCollection + "/" + groupKey
}

// StartedMarker the marker written once a job is accepted
func StartedMarker() ProgressMarker {
	return ProgressMarker{Transcoding: true}
}

// VideoMarker progress marker row for the postgres backend
type VideoMarker struct {
	GroupKey    string `gorm:"primaryKey"`
	Transcoding bool
	UpdatedAt   time.Time
}

// TableName gorm table name
func (VideoMarker) TableName() string {
	return "video_markers"
}
