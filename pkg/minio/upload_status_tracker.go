package minio

import "time"

func newUploadStatusTracker() *uploadStatusTracker {
	return &uploadStatusTracker{
		statuses: make(map[string]*UploadProgress),
		results:  make(map[string]*AsyncUploadResult),
	}
}

// update merges the non-zero fields of progress into the task's status.
func (t *uploadStatusTracker) update(taskID string, progress UploadProgress) {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.statuses[taskID]
	if !ok {
		progress.TaskID = taskID
		t.statuses[taskID] = &progress
		return
	}
	if progress.BytesUploaded > 0 {
		existing.BytesUploaded = progress.BytesUploaded
	}
	if progress.TotalBytes > 0 {
		existing.TotalBytes = progress.TotalBytes
	}
	if progress.Percentage > 0 {
		existing.Percentage = progress.Percentage
	}
	if progress.Status != "" {
		existing.Status = progress.Status
	}
	if progress.Error != "" {
		existing.Error = progress.Error
	}
	existing.UpdatedAt = progress.UpdatedAt
}

// transition moves a task from one of the allowed statuses to next.
func (t *uploadStatusTracker) transition(taskID string, next UploadStatus, from ...UploadStatus) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.statuses[taskID]
	if !ok {
		return false
	}
	for _, s := range from {
		if existing.Status == s {
			existing.Status = next
			existing.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

func (t *uploadStatusTracker) get(taskID string) (UploadProgress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	progress, ok := t.statuses[taskID]
	if !ok {
		return UploadProgress{}, false
	}
	return *progress, true
}

func (t *uploadStatusTracker) finish(taskID string, progress UploadProgress, result *AsyncUploadResult) {
	t.update(taskID, progress)

	t.mu.Lock()
	t.results[taskID] = result
	t.mu.Unlock()
}

func (t *uploadStatusTracker) result(taskID string) *AsyncUploadResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.results[taskID]
}

// cleanup drops finished tasks last updated before maxAge ago.
func (t *uploadStatusTracker) cleanup(maxAge time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	for taskID, progress := range t.statuses {
		if progress.Status.finished() && now.Sub(progress.UpdatedAt) > maxAge {
			delete(t.statuses, taskID)
			delete(t.results, taskID)
		}
	}
}
