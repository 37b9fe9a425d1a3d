package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/agroassist/engine/internal/advisory"
	"github.com/agroassist/engine/internal/models"
	"github.com/agroassist/engine/internal/repository"
	"github.com/agroassist/engine/internal/services"
	"github.com/agroassist/engine/pkg/logger"
)

// ScanTaskHandler runs the disease classifier over queued scans.
type ScanTaskHandler struct {
	scans      repository.ScanRepository
	classifier advisory.Classifier
}

func NewScanTaskHandler(scans repository.ScanRepository, classifier advisory.Classifier) *ScanTaskHandler {
	return &ScanTaskHandler{scans: scans, classifier: classifier}
}

func (h *ScanTaskHandler) HandleProcess(ctx context.Context, t *asynq.Task) error {
	var p services.ScanTaskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid scan task payload", zap.Error(err))
		return fmt.Errorf("unmarshal scan payload: %w: %w", err, asynq.SkipRetry)
	}
	id, err := uuid.Parse(p.ScanID)
	if err != nil {
		logger.L().Error("invalid scan id in task", zap.Error(err))
		return fmt.Errorf("parse scan id: %w: %w", err, asynq.SkipRetry)
	}

	logger.L().Info("handling scan task", zap.String("scan_id", id.String()))

	var scan models.Scan
	if err := h.scans.GetByID(ctx, id, &scan); err != nil {
		logger.L().Error("get scan failed", zap.Error(err))
		return err
	}

	if err := h.scans.UpdateStatus(ctx, id, models.ScanStatusProcessing); err != nil {
		logger.L().Error("update scan status failed", zap.Error(err))
	}

	diagnosis, err := h.classifier.Classify(ctx, scan.Image)
	if err != nil {
		logger.L().Error("classify failed", zap.String("scan_id", id.String()), zap.Error(err))
		if uerr := h.scans.UpdateStatus(ctx, id, models.ScanStatusFailed); uerr != nil {
			logger.L().Error("mark scan failed", zap.Error(uerr))
		}
		return err
	}

	result, err := json.Marshal(diagnosis)
	if err != nil {
		return fmt.Errorf("marshal diagnosis: %w", err)
	}
	if err := h.scans.SaveResult(ctx, id, datatypes.JSON(result)); err != nil {
		logger.L().Error("save scan result failed", zap.Error(err))
		return err
	}

	logger.L().Info("scan completed",
		zap.String("scan_id", id.String()),
		zap.String("disease", diagnosis.Disease),
	)
	return nil
}
