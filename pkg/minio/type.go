package minio

import (
	"context"
	"io"
	"sync"
	"time"

	"insight-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient    *minio.Client
	config         *config.MinIOConfig
	mu             sync.RWMutex
	connected      bool
	asyncUploadMgr *asyncUploadManager
}

// FileInfo represents metadata about a file stored in MinIO.
type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata"`
}

// UploadRequest contains the parameters for uploading a file to MinIO.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// PresignedURLRequest contains the parameters for generating a presigned URL.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
	// FileName sets the Content-Disposition served with the download.
	FileName string
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}

// UploadStatus represents the status of an async upload.
type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusCompleted UploadStatus = "completed"
	UploadStatusFailed    UploadStatus = "failed"
	UploadStatusCancelled UploadStatus = "cancelled"
)

func (s UploadStatus) finished() bool {
	return s == UploadStatusCompleted || s == UploadStatusFailed || s == UploadStatusCancelled
}

type asyncUploadTask struct {
	id      string
	request *UploadRequest
	ctx     context.Context
	cancel  context.CancelFunc
}

// AsyncUploadResult contains the result of an async upload.
type AsyncUploadResult struct {
	TaskID    string
	FileInfo  *FileInfo
	Error     error
	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// UploadProgress represents the progress of an upload.
type UploadProgress struct {
	TaskID        string       `json:"task_id"`
	BytesUploaded int64        `json:"bytes_uploaded"`
	TotalBytes    int64        `json:"total_bytes"`
	Percentage    float64      `json:"percentage"`
	Status        UploadStatus `json:"status"`
	Error         string       `json:"error,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type uploadFunc func(ctx context.Context, req *UploadRequest) (*FileInfo, error)

// asyncUploadManager manages async upload operations.
type asyncUploadManager struct {
	upload        uploadFunc
	workerPool    int
	uploadQueue   chan *asyncUploadTask
	statusTracker *uploadStatusTracker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	started       bool
	mu            sync.RWMutex

	tasksMu sync.Mutex
	tasks   map[string]*asyncUploadTask
}

// uploadStatusTracker tracks the status of async uploads.
type uploadStatusTracker struct {
	statuses map[string]*UploadProgress
	results  map[string]*AsyncUploadResult
	mu       sync.RWMutex
}

// progressReader wraps an io.Reader to track upload progress.
type progressReader struct {
	reader     io.Reader
	bytesRead  int64
	onProgress func(bytesRead int64)
}
