package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Scan statuses. A scan moves pending -> processing -> completed|failed.
const (
	ScanStatusPending    = "pending"
	ScanStatusProcessing = "processing"
	ScanStatusCompleted  = "completed"
	ScanStatusFailed     = "failed"
)

// Scan is one disease-detection request: an uploaded plant image and, once
// the worker has run the classifier over it, the resulting diagnosis.
type Scan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Status    string         `gorm:"type:varchar(32);index;not null" json:"status" validate:"required,oneof=pending processing completed failed"`
	Image     []byte         `gorm:"type:bytea" json:"-"`
	Result    datatypes.JSON `gorm:"type:jsonb" json:"result,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
