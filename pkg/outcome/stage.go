package outcome

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// Stage identifies a step of the rotation sequence.
type Stage string

const (
	// StageCreate creates the new snapshot.
	StageCreate Stage = "create"
	// StageList lists existing snapshots.
	StageList Stage = "list"
	// StageDelete deletes expired snapshots.
	StageDelete Stage = "delete"
	// StagePublish publishes the outcome to the notification sink.
	StagePublish Stage = "publish"
)

var (
	// ErrCreateFailure matches failures of the create stage.
	ErrCreateFailure = errors.New("CreateFailure")
	// ErrListFailure matches failures of the list stage.
	ErrListFailure = errors.New("ListFailure")
	// ErrDeleteFailure matches failures of the delete stage.
	ErrDeleteFailure = errors.New("DeleteFailure")
	// ErrPublishFailure matches failures to publish an outcome.
	ErrPublishFailure = errors.New("PublishFailure")
)

// Kind returns the failure sentinel for s, or nil for unknown stages.
func (s Stage) Kind() error {
	switch s {
	case StageCreate:
		return ErrCreateFailure
	case StageList:
		return ErrListFailure
	case StageDelete:
		return ErrDeleteFailure
	case StagePublish:
		return ErrPublishFailure
	}
	return nil
}

// StageError tags a remote-call error with the stage it came from.
type StageError struct {
	Stage Stage // Stage that failed
	Cause error // Unmodified remote error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *StageError) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel of the failing stage.
func (e *StageError) Is(target error) bool {
	kind := e.Stage.Kind()
	return kind != nil && target == kind
}

// Kind returns the taxonomy name of the failure, e.g. "DeleteFailure".
func (e *StageError) Kind() string {
	if kind := e.Stage.Kind(); kind != nil {
		return kind.Error()
	}
	return "UnknownFailure"
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, cause error) *StageError {
	return &StageError{
		Stage: stage,
		Cause: cause,
	}
}

// ErrorCode returns the service error code carried by err, if any.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
