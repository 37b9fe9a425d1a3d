package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/agroassist/engine/internal/models"
	appErr "github.com/agroassist/engine/pkg/errors"
)

type ScanRepository interface {
	BaseRepository[models.Scan]
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Scan, error)
	UpdateStatus(ctx context.Context, scanID uuid.UUID, status string) error
	SaveResult(ctx context.Context, scanID uuid.UUID, result datatypes.JSON) error
}

type scanRepository struct {
	BaseRepository[models.Scan]
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{BaseRepository: NewBaseRepository[models.Scan](db), db: db}
}

func (r *scanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Scan, error) {
	var out []models.Scan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list scans failed")
	}
	return out, nil
}

func (r *scanRepository) UpdateStatus(ctx context.Context, scanID uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&models.Scan{}).Where("id = ?", scanID).Update("status", status)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update scan status failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "scan not found")
	}
	return nil
}

func (r *scanRepository) SaveResult(ctx context.Context, scanID uuid.UUID, result datatypes.JSON) error {
	res := r.db.WithContext(ctx).Model(&models.Scan{}).Where("id = ?", scanID).
		Updates(map[string]any{"status": models.ScanStatusCompleted, "result": result})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "save scan result failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "scan not found")
	}
	return nil
}
