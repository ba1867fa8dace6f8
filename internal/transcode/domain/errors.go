package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyNotification the event carried no record
var ErrEmptyNotification = errors.New("notification has no records")

// ErrEmptyGroupKey a marker without group key would overwrite the whole collection
var ErrEmptyGroupKey = errors.New("empty group key")

// SubmitError backend rejected or could not accept the job
type SubmitError struct {
	Backend string
	Err     error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit transcoding job to %s: %v", e.Backend, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// WriteError progress marker write failed
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write progress marker %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
