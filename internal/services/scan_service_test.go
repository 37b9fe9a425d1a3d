package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/agroassist/engine/internal/models"
	appErr "github.com/agroassist/engine/pkg/errors"
)

type fakeScanRepo struct {
	scans    map[uuid.UUID]*models.Scan
	statuses []string
}

func newFakeScanRepo() *fakeScanRepo {
	return &fakeScanRepo{scans: map[uuid.UUID]*models.Scan{}}
}

func (r *fakeScanRepo) Create(ctx context.Context, obj *models.Scan) error {
	obj.ID = uuid.New()
	cp := *obj
	r.scans[obj.ID] = &cp
	return nil
}

func (r *fakeScanRepo) GetByID(ctx context.Context, id any, dest *models.Scan) error {
	s, ok := r.scans[id.(uuid.UUID)]
	if !ok {
		return appErr.New(appErr.CodeNotFound, "scan not found")
	}
	*dest = *s
	return nil
}

func (r *fakeScanRepo) Update(ctx context.Context, obj *models.Scan) error { return nil }
func (r *fakeScanRepo) Delete(ctx context.Context, id any) error           { return nil }

func (r *fakeScanRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Scan, error) {
	var out []models.Scan
	for _, s := range r.scans {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeScanRepo) UpdateStatus(ctx context.Context, scanID uuid.UUID, status string) error {
	r.statuses = append(r.statuses, status)
	if s, ok := r.scans[scanID]; ok {
		s.Status = status
	}
	return nil
}

func (r *fakeScanRepo) SaveResult(ctx context.Context, scanID uuid.UUID, result datatypes.JSON) error {
	return nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (e *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestCreateScanEnqueuesTask(t *testing.T) {
	repo := newFakeScanRepo()
	queue := &fakeEnqueuer{}
	svc := NewScanService(repo, queue)

	scan, err := svc.CreateScan(context.Background(), uuid.New(), []byte("leaf"))
	require.NoError(t, err)
	require.Equal(t, models.ScanStatusPending, scan.Status)
	require.Len(t, queue.tasks, 1)
	require.Equal(t, TaskScanProcess, queue.tasks[0].Type())
}

func TestCreateScanRejectsEmptyImage(t *testing.T) {
	svc := NewScanService(newFakeScanRepo(), &fakeEnqueuer{})

	_, err := svc.CreateScan(context.Background(), uuid.New(), nil)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestCreateScanEnqueueFailureMarksScanFailed(t *testing.T) {
	repo := newFakeScanRepo()
	svc := NewScanService(repo, &fakeEnqueuer{err: errors.New("redis down")})

	_, err := svc.CreateScan(context.Background(), uuid.New(), []byte("leaf"))
	require.True(t, appErr.IsCode(err, appErr.CodeInternal))
	require.Contains(t, repo.statuses, models.ScanStatusFailed)
}

func TestGetScanHidesOtherUsersScans(t *testing.T) {
	repo := newFakeScanRepo()
	svc := NewScanService(repo, &fakeEnqueuer{})

	owner := uuid.New()
	scan, err := svc.CreateScan(context.Background(), owner, []byte("leaf"))
	require.NoError(t, err)

	got, err := svc.GetScan(context.Background(), scan.ID, owner)
	require.NoError(t, err)
	require.Equal(t, scan.ID, got.ID)

	_, err = svc.GetScan(context.Background(), scan.ID, uuid.New())
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound),
		"someone else's scan must look like a missing one")
}
