package minio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = m.Connect(ctx); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(1<<uint(i)) * time.Second):
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	connected := m.connected
	m.mu.RUnlock()
	if !connected {
		return NewConnectionError(errors.New("not connected"))
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

// Close stops the async upload workers.
func (m *implMinIO) Close() error {
	m.asyncUploadMgr.stop()
	m.mu.Lock()
	m.connected = false
	m.mu.Unlock()
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil || exists {
		return err
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "bucket_exists")
	}
	return exists, nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	if req.OriginalName != "" {
		metadata["original-name"] = req.OriginalName
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     metadata,
	}, nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}

	params := url.Values{}
	if req.FileName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", req.FileName))
	}

	u, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, params)
	if err != nil {
		return nil, handleMinIOError(err, "get_presigned_download_url")
	}
	return &PresignedURLResponse{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    MethodGET,
	}, nil
}

func (m *implMinIO) GetFileInfo(ctx context.Context, bucketName, objectName string) (*FileInfo, error) {
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	obj, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_file_info")
	}
	return &FileInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		OriginalName: obj.UserMetadata["Original-Name"],
		Size:         obj.Size,
		ContentType:  obj.ContentType,
		ETag:         obj.ETag,
		LastModified: obj.LastModified,
		Metadata:     obj.UserMetadata,
	}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := validateObjectName(objectName); err != nil {
		return err
	}
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_file")
	}
	return nil
}

func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.GetFileInfo(ctx, bucketName, objectName)
	if IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *implMinIO) UploadAsync(ctx context.Context, req *UploadRequest) (string, error) {
	return m.asyncUploadMgr.UploadAsync(ctx, req)
}

func (m *implMinIO) GetUploadStatus(taskID string) (*UploadProgress, error) {
	return m.asyncUploadMgr.GetUploadStatus(taskID)
}

func (m *implMinIO) WaitForUpload(ctx context.Context, taskID string, timeout time.Duration) (*AsyncUploadResult, error) {
	return m.asyncUploadMgr.WaitForUpload(ctx, taskID, timeout)
}

func (m *implMinIO) CancelUpload(taskID string) error {
	return m.asyncUploadMgr.CancelUpload(taskID)
}

func handleMinIOError(err error, operation string) *StorageError {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found", Operation: operation, Cause: err}
	case "NoSuchKey":
		return &StorageError{Code: ErrCodeNotFound, Message: "object not found", Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	case "":
		return &StorageError{Code: ErrCodeConnection, Message: "request failed", Operation: operation, Cause: err}
	default:
		return &StorageError{Code: ErrCodeConnection, Message: "operation failed: " + resp.Code, Operation: operation, Cause: err}
	}
}
