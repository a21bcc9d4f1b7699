package service

import (
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/util"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeAnalyticsRepo mirrors the persistence contract in memory: one record
// per job, each mutation a single locked step the way the store applies a
// single atomic update.
type fakeAnalyticsRepo struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]*model.JobAnalytics
}

func newFakeAnalyticsRepo() *fakeAnalyticsRepo {
	return &fakeAnalyticsRepo{records: map[primitive.ObjectID]*model.JobAnalytics{}}
}

func (f *fakeAnalyticsRepo) EnsureForJob(ctx context.Context, jobID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[jobID]; !ok {
		f.records[jobID] = &model.JobAnalytics{
			JobID:          jobID,
			ViewSources:    map[string]int64{},
			LocationRollup: map[string]int64{},
			SkillRollup:    map[string]int64{},
		}
	}
	return nil
}

func (f *fakeAnalyticsRepo) GetByJobID(ctx context.Context, jobID primitive.ObjectID) (*model.JobAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records[jobID], nil
}

func (f *fakeAnalyticsRepo) IncView(ctx context.Context, jobID primitive.ObjectID, source string, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.records[jobID]
	rec.Views++
	rec.ViewSources[source]++
	bumpDaily(rec, day, 1, 0)
	return nil
}

func (f *fakeAnalyticsRepo) AddViewer(ctx context.Context, jobID primitive.ObjectID, viewerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.records[jobID]
	for _, v := range rec.Viewers {
		if v == viewerID {
			return false, nil
		}
	}
	rec.Viewers = append(rec.Viewers, viewerID)
	return true, nil
}

func (f *fakeAnalyticsRepo) IncUniqueView(ctx context.Context, jobID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[jobID].UniqueViews++
	return nil
}

func (f *fakeAnalyticsRepo) IncClickThrough(ctx context.Context, jobID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[jobID].ClickThroughs++
	return nil
}

func (f *fakeAnalyticsRepo) IncApplication(ctx context.Context, jobID primitive.ObjectID, day time.Time, location string, skills []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.records[jobID]
	rec.Applications++
	if location != "" {
		rec.LocationRollup[util.SanitizeMapKey(location)]++
	}
	for _, skill := range skills {
		rec.SkillRollup[util.SanitizeMapKey(skill)]++
	}
	bumpDaily(rec, day, 0, 1)
	return nil
}

func bumpDaily(rec *model.JobAnalytics, day time.Time, views, apps int64) {
	if rec.Daily == nil {
		rec.Daily = map[string]model.DailyCounters{}
	}
	key := util.DateKey(day)
	bucket := rec.Daily[key]
	bucket.Views += views
	bucket.Applications += apps
	rec.Daily[key] = bucket
}

type ownedJobRepo struct {
	fakeJobRepo
	jobs map[primitive.ObjectID]*model.Job
}

func (f *ownedJobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return f.jobs[id], nil
}

func TestRecordViewAggregation(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo, &fakeJobRepo{})
	jobID := primitive.NewObjectID()

	// Two views on a job with no prior record: one attributed, one untagged.
	require.NoError(t, svc.RecordView(context.Background(), jobID, "search", ""))
	require.NoError(t, svc.RecordView(context.Background(), jobID, "", ""))

	rec := repo.records[jobID]
	require.NotNil(t, rec)
	assert.Equal(t, int64(2), rec.Views)
	assert.Equal(t, int64(1), rec.ViewSources["search"])
	assert.Equal(t, int64(1), rec.ViewSources["other"])

	require.Len(t, rec.Daily, 1)
	assert.Equal(t, int64(2), rec.Daily[util.DateKey(time.Now())].Views)
}

func TestRecordViewConcurrentFirstOfDay(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo, &fakeJobRepo{})
	jobID := primitive.NewObjectID()

	// Simultaneous first views of the day must land in a single bucket.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.RecordView(context.Background(), jobID, "search", ""))
		}()
	}
	wg.Wait()

	rec := repo.records[jobID]
	require.NotNil(t, rec)
	assert.Equal(t, int64(16), rec.Views)
	require.Len(t, rec.Daily, 1)
	assert.Equal(t, int64(16), rec.Daily[util.DateKey(time.Now())].Views)
}

func TestRecordViewUnknownSourceCoerced(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo, &fakeJobRepo{})
	jobID := primitive.NewObjectID()

	require.NoError(t, svc.RecordView(context.Background(), jobID, "carrier-pigeon", ""))

	rec := repo.records[jobID]
	assert.Equal(t, int64(1), rec.ViewSources["other"])
	_, present := rec.ViewSources["carrier-pigeon"]
	assert.False(t, present)
}

func TestRecordViewUniqueDedup(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo, &fakeJobRepo{})
	jobID := primitive.NewObjectID()

	require.NoError(t, svc.RecordView(context.Background(), jobID, "direct", "viewer-1"))
	require.NoError(t, svc.RecordView(context.Background(), jobID, "direct", "viewer-1"))
	require.NoError(t, svc.RecordView(context.Background(), jobID, "direct", "viewer-2"))
	require.NoError(t, svc.RecordView(context.Background(), jobID, "direct", ""))

	rec := repo.records[jobID]
	assert.Equal(t, int64(4), rec.Views)
	assert.Equal(t, int64(2), rec.UniqueViews, "repeat and anonymous viewers never bump unique views")
}

func TestRecordApplicationRollups(t *testing.T) {
	repo := newFakeAnalyticsRepo()
	svc := NewAnalyticsService(repo, &fakeJobRepo{})
	jobID := primitive.NewObjectID()

	applicant := &model.User{
		Location: "Berlin",
		Skills:   []string{"Go", "React"},
	}
	require.NoError(t, svc.RecordApplication(context.Background(), jobID, applicant))

	rec := repo.records[jobID]
	assert.Equal(t, int64(1), rec.Applications)
	assert.Equal(t, int64(1), rec.LocationRollup["berlin"])
	assert.Equal(t, int64(1), rec.SkillRollup["go"])
	assert.Equal(t, int64(1), rec.SkillRollup["react"])
	require.Len(t, rec.Daily, 1)
	assert.Equal(t, int64(1), rec.Daily[util.DateKey(time.Now())].Applications)
}

func TestGetJobAnalyticsOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	jobID := primitive.NewObjectID()
	jobRepo := &ownedJobRepo{jobs: map[primitive.ObjectID]*model.Job{
		jobID: {ID: jobID, EmployerID: owner, Status: model.JobStatusOpen},
	}}
	svc := NewAnalyticsService(newFakeAnalyticsRepo(), jobRepo)

	_, err := svc.GetJobAnalytics(context.Background(), jobID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotJobOwner)

	_, err = svc.GetJobAnalytics(context.Background(), primitive.NewObjectID(), owner)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestGetJobAnalyticsZeroRecord(t *testing.T) {
	owner := primitive.NewObjectID()
	jobID := primitive.NewObjectID()
	jobRepo := &ownedJobRepo{jobs: map[primitive.ObjectID]*model.Job{
		jobID: {ID: jobID, EmployerID: owner, Status: model.JobStatusOpen},
	}}
	svc := NewAnalyticsService(newFakeAnalyticsRepo(), jobRepo)

	result, err := svc.GetJobAnalytics(context.Background(), jobID, owner)
	require.NoError(t, err)

	// A job never viewed still reads as an all-zero model, not an error.
	assert.Equal(t, jobID.Hex(), result.JobID)
	assert.Zero(t, result.Views)
	assert.NotNil(t, result.ViewSources)
	assert.NotNil(t, result.Daily)
}

func TestGetJobAnalyticsDailySorted(t *testing.T) {
	owner := primitive.NewObjectID()
	jobID := primitive.NewObjectID()
	jobRepo := &ownedJobRepo{jobs: map[primitive.ObjectID]*model.Job{
		jobID: {ID: jobID, EmployerID: owner, Status: model.JobStatusOpen},
	}}
	repo := newFakeAnalyticsRepo()
	repo.records[jobID] = &model.JobAnalytics{
		JobID: jobID,
		Daily: map[string]model.DailyCounters{
			"2026-03-02": {Views: 1},
			"2026-02-28": {Views: 3},
			"2026-03-01": {Views: 2, Applications: 1},
		},
	}
	svc := NewAnalyticsService(repo, jobRepo)

	result, err := svc.GetJobAnalytics(context.Background(), jobID, owner)
	require.NoError(t, err)

	require.Len(t, result.Daily, 3)
	assert.Equal(t, "2026-02-28", result.Daily[0].Date)
	assert.Equal(t, "2026-03-01", result.Daily[1].Date)
	assert.Equal(t, "2026-03-02", result.Daily[2].Date)
	assert.Equal(t, int64(1), result.Daily[1].Applications)
}

func TestNormalizeSource(t *testing.T) {
	assert.Equal(t, "search", normalizeSource("search"))
	assert.Equal(t, "email", normalizeSource("email"))
	assert.Equal(t, "other", normalizeSource(""))
	assert.Equal(t, "other", normalizeSource("Search"))
	assert.Equal(t, "other", normalizeSource("billboard"))
}
