package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/agroassist/engine/internal/models"
	"github.com/agroassist/engine/internal/repository"
	appErr "github.com/agroassist/engine/pkg/errors"
	"github.com/agroassist/engine/pkg/logger"
)

// TaskScanProcess is the asynq task type for disease-scan processing.
const TaskScanProcess = "scan:process"

// ScanTaskPayload is the payload of a scan:process task.
type ScanTaskPayload struct {
	ScanID string `json:"scan_id"`
}

// Enqueuer is the slice of asynq.Client the scan service needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ScanService owns the disease-scan lifecycle: accept an image, queue it for
// classification, and serve results back to the owning user.
type ScanService interface {
	CreateScan(ctx context.Context, userID uuid.UUID, image []byte) (*models.Scan, error)
	GetScan(ctx context.Context, scanID, userID uuid.UUID) (*models.Scan, error)
	ListScans(ctx context.Context, userID uuid.UUID) ([]models.Scan, error)
}

type scanService struct {
	scans repository.ScanRepository
	queue Enqueuer
}

func NewScanService(scans repository.ScanRepository, queue Enqueuer) ScanService {
	return &scanService{scans: scans, queue: queue}
}

func (s *scanService) CreateScan(ctx context.Context, userID uuid.UUID, image []byte) (*models.Scan, error) {
	if len(image) == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "no image provided")
	}

	scan := models.Scan{
		UserID: userID,
		Status: models.ScanStatusPending,
		Image:  image,
	}
	if err := s.scans.Create(ctx, &scan); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ScanTaskPayload{ScanID: scan.ID.String()})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "marshal scan task failed")
	}
	if _, err := s.queue.EnqueueContext(ctx, asynq.NewTask(TaskScanProcess, payload), asynq.MaxRetry(3)); err != nil {
		// The row exists but no worker will pick it up; mark it failed
		// rather than leaving it pending forever.
		if uerr := s.scans.UpdateStatus(ctx, scan.ID, models.ScanStatusFailed); uerr != nil {
			logger.L().Error("mark scan failed after enqueue error", zap.Error(uerr))
		}
		return nil, appErr.Wrap(err, appErr.CodeInternal, "enqueue scan task failed")
	}

	logger.L().Info("scan enqueued", zap.String("scan_id", scan.ID.String()))
	return &scan, nil
}

func (s *scanService) GetScan(ctx context.Context, scanID, userID uuid.UUID) (*models.Scan, error) {
	var scan models.Scan
	if err := s.scans.GetByID(ctx, scanID, &scan); err != nil {
		return nil, err
	}
	// A scan belonging to someone else is indistinguishable from a missing one.
	if scan.UserID != userID {
		return nil, appErr.New(appErr.CodeNotFound, "scan not found")
	}
	return &scan, nil
}

func (s *scanService) ListScans(ctx context.Context, userID uuid.UUID) ([]models.Scan, error) {
	return s.scans.ListByUser(ctx, userID)
}
