package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type lifecycleJobRepo struct {
	ownedJobRepo
	closed  []primitive.ObjectID
	deleted []primitive.ObjectID
}

func (f *lifecycleJobRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	f.closed = append(f.closed, id)
	return nil
}

func (f *lifecycleJobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAnalytics struct {
	views       []primitive.ObjectID
	viewErr     error
	invalidated []primitive.ObjectID
}

func (f *fakeAnalytics) RecordView(ctx context.Context, jobID primitive.ObjectID, source string, viewerID string) error {
	f.views = append(f.views, jobID)
	return f.viewErr
}

func (f *fakeAnalytics) RecordClickThrough(ctx context.Context, jobID primitive.ObjectID) error {
	return nil
}

func (f *fakeAnalytics) RecordApplication(ctx context.Context, jobID primitive.ObjectID, applicant *model.User) error {
	return nil
}

func (f *fakeAnalytics) GetJobAnalytics(ctx context.Context, jobID, employerID primitive.ObjectID) (*dto.JobAnalyticsDTO, error) {
	return nil, nil
}

func (f *fakeAnalytics) Backfill(ctx context.Context) (int, error) {
	return 0, nil
}

func (f *fakeAnalytics) InvalidateReportCache(ctx context.Context, jobID primitive.ObjectID) {
	f.invalidated = append(f.invalidated, jobID)
}

func lifecycleFixture() (*lifecycleJobRepo, primitive.ObjectID, primitive.ObjectID) {
	owner := primitive.NewObjectID()
	jobID := primitive.NewObjectID()
	repo := &lifecycleJobRepo{}
	repo.jobs = map[primitive.ObjectID]*model.Job{
		jobID: {ID: jobID, EmployerID: owner, Status: model.JobStatusOpen},
	}
	return repo, owner, jobID
}

func TestCloseJobDropsCachedReport(t *testing.T) {
	repo, owner, jobID := lifecycleFixture()
	analytics := &fakeAnalytics{}
	svc := NewJobService(repo, analytics)

	require.NoError(t, svc.CloseJob(context.Background(), owner, jobID))

	assert.Equal(t, []primitive.ObjectID{jobID}, repo.closed)
	assert.Equal(t, []primitive.ObjectID{jobID}, analytics.invalidated)
}

func TestCloseJobOwnershipGuard(t *testing.T) {
	repo, _, jobID := lifecycleFixture()
	analytics := &fakeAnalytics{}
	svc := NewJobService(repo, analytics)

	err := svc.CloseJob(context.Background(), primitive.NewObjectID(), jobID)

	assert.ErrorIs(t, err, ErrNotJobOwner)
	assert.Empty(t, repo.closed)
	assert.Empty(t, analytics.invalidated)
}

func TestDeleteJobDropsCachedReport(t *testing.T) {
	repo, owner, jobID := lifecycleFixture()
	analytics := &fakeAnalytics{}
	svc := NewJobService(repo, analytics)

	require.NoError(t, svc.DeleteJob(context.Background(), owner, jobID))

	assert.Equal(t, []primitive.ObjectID{jobID}, repo.deleted)
	assert.Equal(t, []primitive.ObjectID{jobID}, analytics.invalidated)
}

func TestGetJobSurvivesTrackingFailure(t *testing.T) {
	repo, _, jobID := lifecycleFixture()
	analytics := &fakeAnalytics{viewErr: errors.New("tracking store down")}
	svc := NewJobService(repo, analytics)

	job, err := svc.GetJob(context.Background(), jobID, "search", "viewer-1")

	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, []primitive.ObjectID{jobID}, analytics.views)
}
