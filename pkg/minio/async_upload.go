package minio

import (
	"context"
	"time"

	"github.com/google/uuid"
)

func newAsyncUploadManager(upload uploadFunc, workerPoolSize, queueSize int) *asyncUploadManager {
	if workerPoolSize <= 0 {
		workerPoolSize = DefaultAsyncWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultAsyncQueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &asyncUploadManager{
		upload:        upload,
		workerPool:    workerPoolSize,
		uploadQueue:   make(chan *asyncUploadTask, queueSize),
		statusTracker: newUploadStatusTracker(),
		ctx:           ctx,
		cancel:        cancel,
		tasks:         make(map[string]*asyncUploadTask),
	}
}

func (m *asyncUploadManager) start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}

	for i := 0; i < m.workerPool; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	m.wg.Add(1)
	go m.cleanupWorker()

	m.started = true
}

// stop cancels in-flight uploads and waits for every worker to exit.
func (m *asyncUploadManager) stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	m.cancel()
	close(m.uploadQueue)
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *asyncUploadManager) UploadAsync(_ context.Context, req *UploadRequest) (string, error) {
	if err := validateUploadRequest(req); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.started {
		return "", ErrManagerStopped
	}

	taskCtx, cancel := context.WithCancel(m.ctx)
	task := &asyncUploadTask{
		id:      uuid.New().String(),
		request: req,
		ctx:     taskCtx,
		cancel:  cancel,
	}

	m.tasksMu.Lock()
	m.tasks[task.id] = task
	m.tasksMu.Unlock()
	m.statusTracker.update(task.id, UploadProgress{
		TotalBytes: req.Size,
		Status:     UploadStatusPending,
		UpdatedAt:  time.Now(),
	})

	select {
	case m.uploadQueue <- task:
		return task.id, nil
	default:
		m.forget(task)
		m.statusTracker.update(task.id, UploadProgress{Status: UploadStatusFailed, Error: ErrQueueFull.Error(), UpdatedAt: time.Now()})
		return "", ErrQueueFull
	}
}

func (m *asyncUploadManager) GetUploadStatus(taskID string) (*UploadProgress, error) {
	progress, ok := m.statusTracker.get(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	return &progress, nil
}

// WaitForUpload blocks until the task finishes, timeout elapses or ctx is done.
func (m *asyncUploadManager) WaitForUpload(ctx context.Context, taskID string, timeout time.Duration) (*AsyncUploadResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()

	for {
		progress, ok := m.statusTracker.get(taskID)
		if !ok {
			return nil, ErrTaskNotFound
		}
		if progress.Status.finished() {
			if result := m.statusTracker.result(taskID); result != nil {
				return result, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, ErrUploadTimeout
		case <-ticker.C:
		}
	}
}

func (m *asyncUploadManager) CancelUpload(taskID string) error {
	if _, ok := m.statusTracker.get(taskID); !ok {
		return ErrTaskNotFound
	}
	if !m.statusTracker.transition(taskID, UploadStatusCancelled, UploadStatusPending, UploadStatusUploading) {
		return ErrNotCancellable
	}

	m.tasksMu.Lock()
	task := m.tasks[taskID]
	m.tasksMu.Unlock()
	if task != nil {
		task.cancel()
	}
	return nil
}

func (m *asyncUploadManager) forget(task *asyncUploadTask) {
	task.cancel()
	m.tasksMu.Lock()
	delete(m.tasks, task.id)
	m.tasksMu.Unlock()
}

func (m *asyncUploadManager) worker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			return
		case task, ok := <-m.uploadQueue:
			if !ok {
				return
			}
			m.process(task)
		}
	}
}

func (m *asyncUploadManager) process(task *asyncUploadTask) {
	defer m.forget(task)

	start := time.Now()
	if !m.statusTracker.transition(task.id, UploadStatusUploading, UploadStatusPending) {
		m.statusTracker.finish(task.id, UploadProgress{UpdatedAt: time.Now()}, &AsyncUploadResult{
			TaskID:    task.id,
			Error:     context.Canceled,
			StartTime: start,
			EndTime:   start,
		})
		return
	}

	req := *task.request
	total := req.Size
	req.Reader = &progressReader{
		reader: task.request.Reader,
		onProgress: func(read int64) {
			m.statusTracker.update(task.id, UploadProgress{
				BytesUploaded: read,
				Percentage:    percentage(read, total),
				UpdatedAt:     time.Now(),
			})
		},
	}

	info, err := m.upload(task.ctx, &req)
	end := time.Now()
	result := &AsyncUploadResult{
		TaskID:    task.id,
		FileInfo:  info,
		Error:     err,
		Duration:  end.Sub(start),
		StartTime: start,
		EndTime:   end,
	}

	final := UploadProgress{UpdatedAt: end}
	switch {
	case err != nil && task.ctx.Err() != nil:
		// Cancelled by CancelUpload or by stop.
		m.statusTracker.transition(task.id, UploadStatusCancelled, UploadStatusUploading)
	case err != nil:
		final.Status = UploadStatusFailed
		final.Error = err.Error()
	default:
		final.Status = UploadStatusCompleted
		final.BytesUploaded = total
		final.Percentage = 100
	}
	m.statusTracker.finish(task.id, final, result)
}

func (m *asyncUploadManager) cleanupWorker() {
	defer m.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.statusTracker.cleanup(CleanupMaxAge)
		}
	}
}

func percentage(read, total int64) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(read) / float64(total) * 100
	if p > 100 {
		return 100
	}
	return p
}
