package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func readAll(_ context.Context, req *UploadRequest) (*FileInfo, error) {
	n, err := io.Copy(io.Discard, req.Reader)
	if err != nil {
		return nil, err
	}
	return &FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: n, ContentType: req.ContentType}, nil
}

func newRequest(body string) *UploadRequest {
	return &UploadRequest{
		BucketName:  "insight-reports",
		ObjectName:  "reports/r1.md",
		Reader:      strings.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "text/markdown",
	}
}

func TestAsyncUploadManager(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("completes", func(t *testing.T) {
		m := newAsyncUploadManager(readAll, 2, 4)
		m.start()
		defer m.stop()

		id, err := m.UploadAsync(context.Background(), newRequest("# report"))
		require.NoError(t, err)

		res, err := m.WaitForUpload(context.Background(), id, time.Second)
		require.NoError(t, err)
		require.NoError(t, res.Error)
		assert.Equal(t, int64(8), res.FileInfo.Size)

		status, err := m.GetUploadStatus(id)
		require.NoError(t, err)
		assert.Equal(t, UploadStatusCompleted, status.Status)
		assert.Equal(t, float64(100), status.Percentage)
	})

	t.Run("reports failure", func(t *testing.T) {
		boom := errors.New("boom")
		m := newAsyncUploadManager(func(context.Context, *UploadRequest) (*FileInfo, error) { return nil, boom }, 1, 1)
		m.start()
		defer m.stop()

		id, err := m.UploadAsync(context.Background(), newRequest("x"))
		require.NoError(t, err)

		res, err := m.WaitForUpload(context.Background(), id, time.Second)
		require.NoError(t, err)
		assert.ErrorIs(t, res.Error, boom)

		status, _ := m.GetUploadStatus(id)
		assert.Equal(t, UploadStatusFailed, status.Status)
		assert.Equal(t, "boom", status.Error)
	})

	t.Run("cancel in flight", func(t *testing.T) {
		started := make(chan struct{})
		blocking := func(ctx context.Context, _ *UploadRequest) (*FileInfo, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		m := newAsyncUploadManager(blocking, 1, 1)
		m.start()
		defer m.stop()

		id, err := m.UploadAsync(context.Background(), newRequest("x"))
		require.NoError(t, err)
		<-started

		require.NoError(t, m.CancelUpload(id))
		res, err := m.WaitForUpload(context.Background(), id, time.Second)
		require.NoError(t, err)
		assert.ErrorIs(t, res.Error, context.Canceled)

		status, _ := m.GetUploadStatus(id)
		assert.Equal(t, UploadStatusCancelled, status.Status)
		assert.ErrorIs(t, m.CancelUpload(id), ErrNotCancellable)
	})

	t.Run("stop releases blocked uploads", func(t *testing.T) {
		started := make(chan struct{})
		m := newAsyncUploadManager(func(ctx context.Context, _ *UploadRequest) (*FileInfo, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}, 1, 1)
		m.start()

		_, err := m.UploadAsync(context.Background(), newRequest("x"))
		require.NoError(t, err)
		<-started
		m.stop()

		_, err = m.UploadAsync(context.Background(), newRequest("x"))
		assert.ErrorIs(t, err, ErrManagerStopped)
	})

	t.Run("validation and unknown tasks", func(t *testing.T) {
		m := newAsyncUploadManager(readAll, 1, 1)
		m.start()
		defer m.stop()

		_, err := m.UploadAsync(context.Background(), &UploadRequest{BucketName: "b"})
		var se *StorageError
		assert.ErrorAs(t, err, &se)
		assert.Equal(t, ErrCodeInvalidInput, se.Code)

		_, err = m.GetUploadStatus("missing")
		assert.ErrorIs(t, err, ErrTaskNotFound)
		_, err = m.WaitForUpload(context.Background(), "missing", time.Millisecond)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestUploadStatusTrackerCleanup(t *testing.T) {
	tracker := newUploadStatusTracker()
	tracker.update("old", UploadProgress{Status: UploadStatusCompleted, UpdatedAt: time.Now().Add(-2 * time.Hour)})
	tracker.update("recent", UploadProgress{Status: UploadStatusCompleted, UpdatedAt: time.Now()})
	tracker.update("pending", UploadProgress{Status: UploadStatusPending, UpdatedAt: time.Now().Add(-2 * time.Hour)})

	tracker.cleanup(time.Hour)

	_, ok := tracker.get("old")
	assert.False(t, ok)
	_, ok = tracker.get("recent")
	assert.True(t, ok)
	_, ok = tracker.get("pending")
	assert.True(t, ok)
}

func TestValidateBucketName(t *testing.T) {
	tcs := map[string]bool{
		"insight-reports": true,
		"ab":              false,
		"Insight":         false,
		"a--b":            false,
		"-abc":            false,
	}
	for name, ok := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ok, validateBucketName(name) == nil)
		})
	}
}
