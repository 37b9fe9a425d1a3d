package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/agroassist/engine/internal/advisory"
	"github.com/agroassist/engine/internal/models"
	"github.com/agroassist/engine/internal/services"
	"github.com/agroassist/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by tasks)
	_, err := logger.Init("error", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockScanRepo struct {
	mock.Mock
}

func (m *mockScanRepo) Create(ctx context.Context, obj *models.Scan) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockScanRepo) GetByID(ctx context.Context, id any, dest *models.Scan) error {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		*dest = *(v.(*models.Scan))
	}
	return args.Error(1)
}

func (m *mockScanRepo) Update(ctx context.Context, obj *models.Scan) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockScanRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScanRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Scan, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Scan), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScanRepo) UpdateStatus(ctx context.Context, scanID uuid.UUID, status string) error {
	return m.Called(ctx, scanID, status).Error(0)
}

func (m *mockScanRepo) SaveResult(ctx context.Context, scanID uuid.UUID, result datatypes.JSON) error {
	return m.Called(ctx, scanID, result).Error(0)
}

type fixedClassifier struct {
	diagnosis advisory.Diagnosis
	err       error
}

func (c *fixedClassifier) Classify(ctx context.Context, image []byte) (advisory.Diagnosis, error) {
	return c.diagnosis, c.err
}

func newScanTask(t *testing.T, scanID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(services.ScanTaskPayload{ScanID: scanID})
	require.NoError(t, err)
	return asynq.NewTask(services.TaskScanProcess, payload)
}

func TestHandleProcessCompletesScan(t *testing.T) {
	scanID := uuid.New()
	scan := &models.Scan{ID: scanID, UserID: uuid.New(), Status: models.ScanStatusPending, Image: []byte("leaf")}
	diagnosis := advisory.Diagnosis{Disease: "Plant Rust", Confidence: 92, Treatments: []string{"Apply sulfur-based fungicide"}}

	repo := &mockScanRepo{}
	repo.On("GetByID", mock.Anything, scanID).Return(scan, nil)
	repo.On("UpdateStatus", mock.Anything, scanID, models.ScanStatusProcessing).Return(nil)
	repo.On("SaveResult", mock.Anything, scanID, mock.MatchedBy(func(b datatypes.JSON) bool {
		var d advisory.Diagnosis
		return json.Unmarshal(b, &d) == nil && d.Disease == "Plant Rust"
	})).Return(nil)

	h := NewScanTaskHandler(repo, &fixedClassifier{diagnosis: diagnosis})
	err := h.HandleProcess(context.Background(), newScanTask(t, scanID.String()))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHandleProcessClassifierFailureMarksFailed(t *testing.T) {
	scanID := uuid.New()
	scan := &models.Scan{ID: scanID, Status: models.ScanStatusPending, Image: []byte("leaf")}

	repo := &mockScanRepo{}
	repo.On("GetByID", mock.Anything, scanID).Return(scan, nil)
	repo.On("UpdateStatus", mock.Anything, scanID, models.ScanStatusProcessing).Return(nil)
	repo.On("UpdateStatus", mock.Anything, scanID, models.ScanStatusFailed).Return(nil)

	h := NewScanTaskHandler(repo, &fixedClassifier{err: errors.New("model exploded")})
	err := h.HandleProcess(context.Background(), newScanTask(t, scanID.String()))
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestHandleProcessBadPayloadSkipsRetry(t *testing.T) {
	h := NewScanTaskHandler(&mockScanRepo{}, &fixedClassifier{})

	err := h.HandleProcess(context.Background(), asynq.NewTask(services.TaskScanProcess, []byte("{not json")))
	require.Error(t, err)
	require.ErrorIs(t, err, asynq.SkipRetry)

	err = h.HandleProcess(context.Background(), newScanTask(t, "not-a-uuid"))
	require.Error(t, err)
	require.ErrorIs(t, err, asynq.SkipRetry)
}
