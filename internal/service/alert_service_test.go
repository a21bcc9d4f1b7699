package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAlertRepo struct {
	alerts   map[primitive.ObjectID]*model.Alert
	due      []*model.Alert
	advanced map[primitive.ObjectID]time.Time
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{
		alerts:   map[primitive.ObjectID]*model.Alert{},
		advanced: map[primitive.ObjectID]time.Time{},
	}
}

func (f *fakeAlertRepo) Create(ctx context.Context, alert *model.Alert) error {
	alert.ID = primitive.NewObjectID()
	f.alerts[alert.ID] = alert
	return nil
}

func (f *fakeAlertRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Alert, error) {
	return f.alerts[id], nil
}

func (f *fakeAlertRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}

func (f *fakeAlertRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(f.alerts, id)
	return nil
}

func (f *fakeAlertRepo) ListBySeeker(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Alert, error) {
	var out []*model.Alert
	for _, a := range f.alerts {
		if a.SeekerID == seekerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAlertRepo) ListDue(ctx context.Context, frequency string) ([]*model.Alert, error) {
	return f.due, nil
}

func (f *fakeAlertRepo) AdvanceLastSent(ctx context.Context, id primitive.ObjectID, sentAt time.Time) error {
	f.advanced[id] = sentAt
	return nil
}

type fakeJobRepo struct {
	matching map[primitive.ObjectID][]*model.Job
}

func (f *fakeJobRepo) Create(ctx context.Context, job *model.Job) error { return nil }
func (f *fakeJobRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}
func (f *fakeJobRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return nil
}
func (f *fakeJobRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeJobRepo) List(ctx context.Context, query repository.JobListQuery) ([]*model.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]*model.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	return nil, nil
}
func (f *fakeJobRepo) FindMatching(ctx context.Context, alert *model.Alert, since *time.Time) ([]*model.Job, error) {
	return f.matching[alert.ID], nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return nil
}

type fakeNotify struct {
	sent   []primitive.ObjectID
	result bool
}

func (f *fakeNotify) SendAlert(ctx context.Context, seeker *model.User, alert *model.Alert, jobs []*model.Job) bool {
	f.sent = append(f.sent, alert.ID)
	return f.result
}

func seekerFixture(enabled bool) *model.User {
	return &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "seeker@example.com",
		Name:     "Dana",
		Role:     model.RoleSeeker,
		Settings: model.UserSettings{AlertsEnabled: enabled},
	}
}

func alertFixture(seekerID primitive.ObjectID) *model.Alert {
	return &model.Alert{
		ID:        primitive.NewObjectID(),
		SeekerID:  seekerID,
		Name:      "react jobs",
		Keywords:  []string{"react"},
		Frequency: model.FrequencyDaily,
		Active:    true,
	}
}

func TestProcessAlertsEmptyBatch(t *testing.T) {
	alertRepo := newFakeAlertRepo()
	notify := &fakeNotify{result: true}
	svc := NewAlertService(alertRepo, &fakeJobRepo{}, &fakeUserRepo{}, notify)

	svc.ProcessAlerts(context.Background(), model.FrequencyDaily)

	assert.Empty(t, notify.sent)
	assert.Empty(t, alertRepo.advanced)
}

func TestProcessAlertsSendsAndAdvances(t *testing.T) {
	seeker := seekerFixture(true)
	alert := alertFixture(seeker.ID)

	alertRepo := newFakeAlertRepo()
	alertRepo.due = []*model.Alert{alert}
	jobRepo := &fakeJobRepo{matching: map[primitive.ObjectID][]*model.Job{
		alert.ID: {{ID: primitive.NewObjectID(), Title: "Senior React Engineer"}},
	}}
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{seeker.ID: seeker}}
	notify := &fakeNotify{result: true}
	svc := NewAlertService(alertRepo, jobRepo, userRepo, notify)

	before := time.Now()
	svc.ProcessAlerts(context.Background(), model.FrequencyDaily)

	require.Len(t, notify.sent, 1)
	sentAt, ok := alertRepo.advanced[alert.ID]
	require.True(t, ok, "successful send must advance the last-sent timestamp")
	// The timestamp is captured before matching so mid-run jobs land in the
	// next tick.
	assert.False(t, sentAt.Before(before))
	assert.False(t, sentAt.After(time.Now()))
}

func TestProcessAlertsSkipsDisabledUser(t *testing.T) {
	seeker := seekerFixture(false)
	alert := alertFixture(seeker.ID)

	alertRepo := newFakeAlertRepo()
	alertRepo.due = []*model.Alert{alert}
	jobRepo := &fakeJobRepo{matching: map[primitive.ObjectID][]*model.Job{
		alert.ID: {{ID: primitive.NewObjectID()}},
	}}
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{seeker.ID: seeker}}
	notify := &fakeNotify{result: true}
	svc := NewAlertService(alertRepo, jobRepo, userRepo, notify)

	svc.ProcessAlerts(context.Background(), model.FrequencyDaily)

	assert.Empty(t, notify.sent)
	assert.Empty(t, alertRepo.advanced)
}

func TestProcessAlertsZeroMatchesSendsNothing(t *testing.T) {
	seeker := seekerFixture(true)
	alert := alertFixture(seeker.ID)

	alertRepo := newFakeAlertRepo()
	alertRepo.due = []*model.Alert{alert}
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{seeker.ID: seeker}}
	notify := &fakeNotify{result: true}
	svc := NewAlertService(alertRepo, &fakeJobRepo{}, userRepo, notify)

	svc.ProcessAlerts(context.Background(), model.FrequencyDaily)

	assert.Empty(t, notify.sent)
	assert.Empty(t, alertRepo.advanced)
}

func TestProcessAlertsFailedSendLeavesTimestamp(t *testing.T) {
	seeker := seekerFixture(true)
	alert := alertFixture(seeker.ID)

	alertRepo := newFakeAlertRepo()
	alertRepo.due = []*model.Alert{alert}
	jobRepo := &fakeJobRepo{matching: map[primitive.ObjectID][]*model.Job{
		alert.ID: {{ID: primitive.NewObjectID()}},
	}}
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{seeker.ID: seeker}}
	notify := &fakeNotify{result: false}
	svc := NewAlertService(alertRepo, jobRepo, userRepo, notify)

	svc.ProcessAlerts(context.Background(), model.FrequencyDaily)

	require.Len(t, notify.sent, 1)
	assert.Empty(t, alertRepo.advanced, "failed send must not move last-sent forward")
}

func TestPreviewMatchesRequiresOwnership(t *testing.T) {
	owner := primitive.NewObjectID()
	alert := alertFixture(owner)

	alertRepo := newFakeAlertRepo()
	alertRepo.alerts[alert.ID] = alert
	svc := NewAlertService(alertRepo, &fakeJobRepo{}, &fakeUserRepo{}, &fakeNotify{})

	_, err := svc.PreviewMatches(context.Background(), primitive.NewObjectID(), alert.ID)
	assert.ErrorIs(t, err, ErrNotAlertOwner)

	_, err = svc.PreviewMatches(context.Background(), owner, alert.ID)
	assert.NoError(t, err)
	assert.Empty(t, alertRepo.advanced, "preview must not touch last-sent state")
}

func TestUpdateAlertRejectsEmptyPatch(t *testing.T) {
	owner := primitive.NewObjectID()
	alert := alertFixture(owner)

	alertRepo := newFakeAlertRepo()
	alertRepo.alerts[alert.ID] = alert
	svc := NewAlertService(alertRepo, &fakeJobRepo{}, &fakeUserRepo{}, &fakeNotify{})

	err := svc.UpdateAlert(context.Background(), owner, alert.ID, &dto.UpdateAlertDTO{})
	assert.ErrorIs(t, err, ErrParamInvalid)
}
