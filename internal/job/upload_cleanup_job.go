package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/foliogen/foliogen/internal/filestore"
	"github.com/foliogen/foliogen/internal/repo"
)

const cleanupBatchSize = 200

// UploadCleanupJob removes superseded resume uploads once they age out.
// Only the newest upload per user feeds the portfolio, so old rows and
// their stored files are pure cost.
type UploadCleanupJob struct {
	resumes *repo.ResumeRepo
	store   filestore.Store
	maxAge  time.Duration
}

func NewUploadCleanupJob(resumes *repo.ResumeRepo, store filestore.Store, maxAge time.Duration) *UploadCleanupJob {
	return &UploadCleanupJob{resumes: resumes, store: store, maxAge: maxAge}
}

func (j *UploadCleanupJob) Name() string {
	return "upload_cleanup"
}

func (j *UploadCleanupJob) Run(ctx context.Context) error {
	if j.resumes == nil {
		return nil
	}
	maxAge := j.maxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	cutoff := time.Now().Add(-maxAge).Unix()
	stale, err := j.resumes.ListStale(ctx, cutoff, cleanupBatchSize)
	if err != nil {
		return err
	}
	for _, item := range stale {
		if j.store != nil && item.FileKey != "" {
			if err := j.store.Delete(ctx, item.FileKey); err != nil {
				logutil.GetLogger(ctx).Warn("delete stored file failed",
					zap.String("file_key", item.FileKey), zap.Error(err))
			}
		}
		if err := j.resumes.Delete(ctx, item.ID); err != nil {
			return err
		}
	}
	if len(stale) > 0 {
		logutil.GetLogger(ctx).Info("stale uploads removed", zap.Int("count", len(stale)))
	}
	return nil
}
