package service

import (
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/mail"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type captureSender struct {
	messages []mail.Message
	err      error
}

func (f *captureSender) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

type staticPersonalizer struct {
	text string
}

func (s *staticPersonalizer) Describe(ctx context.Context, seeker *model.User, jobs []*model.Job) string {
	return s.text
}

func jobFixture(title string) *model.Job {
	return &model.Job{
		ID:       primitive.NewObjectID(),
		Title:    title,
		Company:  "Acme",
		Location: "Remote, US",
		Type:     model.JobTypeFullTime,
		Salary:   model.SalaryRange{Min: 90000, Max: 120000, Currency: "USD"},
		Status:   model.JobStatusOpen,
	}
}

func TestSendAlertEmptyJobsSendsNothing(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotifyService(sender, &staticPersonalizer{}, "https://portal.example.com")

	ok := svc.SendAlert(context.Background(), seekerFixture(true), alertFixture(primitive.NewObjectID()), nil)

	assert.False(t, ok)
	assert.Empty(t, sender.messages)
}

func TestSendAlertRendersJobsAndLinks(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotifyService(sender, &staticPersonalizer{}, "https://portal.example.com/")

	seeker := seekerFixture(true)
	alert := alertFixture(seeker.ID)
	job := jobFixture("Senior React Engineer")

	ok := svc.SendAlert(context.Background(), seeker, alert, []*model.Job{job})

	require.True(t, ok)
	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]

	assert.Equal(t, seeker.Email, msg.To)
	assert.Contains(t, msg.Subject, "1 new job(s)")
	assert.Contains(t, msg.Subject, alert.Name)
	assert.Contains(t, msg.HTMLBody, "Senior React Engineer")
	// Trailing slash on the base URL must not double up in links.
	assert.Contains(t, msg.HTMLBody, "https://portal.example.com/jobs/"+job.ID.Hex())
	assert.Contains(t, msg.TextBody, "Senior React Engineer")
}

func TestSendAlertIncludesRationaleWhenPresent(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotifyService(sender, &staticPersonalizer{text: "Your Go background lines up well."}, "http://localhost")

	ok := svc.SendAlert(context.Background(), seekerFixture(true), alertFixture(primitive.NewObjectID()), []*model.Job{jobFixture("Go Developer")})

	require.True(t, ok)
	assert.Contains(t, sender.messages[0].HTMLBody, "Your Go background lines up well.")
}

func TestSendAlertOmitsRationaleSectionWhenAbsent(t *testing.T) {
	sender := &captureSender{}
	svc := NewNotifyService(sender, &staticPersonalizer{}, "http://localhost")

	ok := svc.SendAlert(context.Background(), seekerFixture(true), alertFixture(primitive.NewObjectID()), []*model.Job{jobFixture("Go Developer")})

	require.True(t, ok)
	assert.NotContains(t, sender.messages[0].HTMLBody, "Why these could fit you")
}

func TestSendAlertReportsTransportFailure(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	svc := NewNotifyService(sender, &staticPersonalizer{}, "http://localhost")

	ok := svc.SendAlert(context.Background(), seekerFixture(true), alertFixture(primitive.NewObjectID()), []*model.Job{jobFixture("Go Developer")})

	assert.False(t, ok)
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "salary not specified", FormatSalary(model.SalaryRange{}))
	assert.Equal(t, "from 50000 USD", FormatSalary(model.SalaryRange{Min: 50000}))
	assert.Equal(t, "50000 - 80000 EUR", FormatSalary(model.SalaryRange{Min: 50000, Max: 80000, Currency: "EUR"}))
}
