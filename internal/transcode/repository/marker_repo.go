package repository

import "context"

// MarkerRepo definition progress marker store.
// SetTranscoding is an unconditional overwrite of videos/{groupKey}.
type MarkerRepo interface {
	SetTranscoding(ctx context.Context, groupKey string) error
}
