package domain

import "time"

// OutputExtension rendition file extension
const OutputExtension = ".mp4"

// RenditionPresets definition the four backend preset ids, loaded from config
type RenditionPresets struct {
	Web480p      string
	Generic720p  string
	Web720p      string
	Generic1080p string
}

// Rendition definition one output of a job
type Rendition struct {
	Key      string `json:"key"`
	PresetID string `json:"preset_id"`
}

// JobSpec definition a transcoding job request
type JobSpec struct {
	PipelineID      string      `json:"pipeline_id"`
	OutputKeyPrefix string      `json:"output_key_prefix"`
	SourceKey       string      `json:"source_key"`
	GroupKey        string      `json:"group_key"`
	Renditions      []Rendition `json:"renditions"`
}

// JobHandle definition backend acceptance of a job
type JobHandle struct {
	ID      string
	Backend string
}

// renditionSuffixes order is part of the job contract
func renditionSuffixes(p RenditionPresets) []Rendition {
	return []Rendition{
		{Key: "-web-480p", PresetID: p.Web480p},
		{Key: "-720p", PresetID: p.Generic720p},
		{Key: "-web-720p", PresetID: p.Web720p},
		{Key: "-1080p", PresetID: p.Generic1080p},
	}
}

// BuildJobSpec build the fixed four-rendition job for derived keys
func BuildJobSpec(keys DerivedKeys, pipelineID string, presets RenditionPresets) JobSpec {
	renditions := renditionSuffixes(presets)
	for i := range renditions {
		renditions[i].Key = keys.OutputKeyPrefix + renditions[i].Key + OutputExtension
	}

	return JobSpec{
		PipelineID:      pipelineID,
		OutputKeyPrefix: keys.OutputKeyPrefix + "/",
		SourceKey:       keys.SourceKey,
		GroupKey:        keys.GroupKey,
		Renditions:      renditions,
	}
}

// QueuedJob message published for self-hosted transcode workers
type QueuedJob struct {
	JobID       string    `json:"job_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Job         JobSpec   `json:"job"`
}
