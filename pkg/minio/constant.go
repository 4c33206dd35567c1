package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	DefaultAsyncWorkers   = 4
	DefaultAsyncQueueSize = 100
	// MaxFileSizeBytes is the maximum upload file size (5GB).
	MaxFileSizeBytes = 5 * 1024 * 1024 * 1024
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry  = 7 * 24 * time.Hour
	DefaultEndpointPort = ":9000"
	// CleanupInterval is how often finished async tasks are swept.
	CleanupInterval = 5 * time.Minute
	CleanupMaxAge   = 1 * time.Hour

	waitPollInterval = 50 * time.Millisecond
)

const MethodGET = "GET"
