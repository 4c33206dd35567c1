package minio

import (
	"errors"
	"fmt"
)

const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeConnection     = "CONNECTION_FAILED"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
)

var (
	ErrManagerStopped = errors.New("minio: async upload manager not started")
	ErrQueueFull      = errors.New("minio: upload queue is full")
	ErrTaskNotFound   = errors.New("minio: upload task not found")
	ErrUploadTimeout  = errors.New("minio: timeout waiting for upload")
	ErrNotCancellable = errors.New("minio: upload can no longer be cancelled")
)

// StorageError describes a failed storage operation.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("minio: %s: %v", msg, e.Cause)
	}
	return "minio: " + msg
}

func (e *StorageError) Unwrap() error { return e.Cause }

func NewInvalidInputError(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: msg}
}

func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

// IsNotFound reports whether err means the bucket or object does not exist.
func IsNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && (se.Code == ErrCodeNotFound || se.Code == ErrCodeBucketNotFound)
}
