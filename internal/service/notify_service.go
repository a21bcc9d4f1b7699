package service

import (
	"bytes"
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/mail"
	"context"
	"fmt"
	"html/template"
	log "log/slog"
	"strings"
)

// NotifyService renders and dispatches alert emails. Send failures are
// reported as false, never propagated; the pipeline retries naturally on the
// next scheduled tick because the alert's last-sent timestamp did not move.
type NotifyService interface {
	SendAlert(ctx context.Context, seeker *model.User, alert *model.Alert, jobs []*model.Job) bool
}

type notifyServiceImpl struct {
	sender       mail.Sender
	personalizer Personalizer
	baseURL      string
	tmpl         *template.Template
}

func NewNotifyService(sender mail.Sender, personalizer Personalizer, portalBaseURL string) NotifyService {
	return &notifyServiceImpl{
		sender:       sender,
		personalizer: personalizer,
		baseURL:      strings.TrimRight(portalBaseURL, "/"),
		tmpl:         template.Must(template.New("alert_email").Parse(alertEmailTemplate)),
	}
}

func (s *notifyServiceImpl) SendAlert(ctx context.Context, seeker *model.User, alert *model.Alert, jobs []*model.Job) bool {
	if len(jobs) == 0 {
		return false
	}

	rationale := s.personalizer.Describe(ctx, seeker, jobs)

	htmlBody, err := s.renderHTML(seeker, alert, jobs, rationale)
	if err != nil {
		log.ErrorContext(ctx, "alert email render failed", "alert_id", alert.ID.Hex(), "err", err)
		return false
	}

	subject := fmt.Sprintf("%d new job(s) matching \"%s\"", len(jobs), alert.Name)

	err = s.sender.Send(mail.Message{
		To:       seeker.Email,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: s.renderText(seeker, alert, jobs),
	})
	if err != nil {
		log.ErrorContext(ctx, "alert email send failed",
			"alert_id", alert.ID.Hex(),
			"seeker_id", seeker.ID.Hex(),
			"err", err)
		return false
	}

	log.InfoContext(ctx, "alert email sent",
		"alert_id", alert.ID.Hex(),
		"seeker_id", seeker.ID.Hex(),
		"job_count", len(jobs))
	return true
}

type alertEmailData struct {
	Name      string
	AlertName string
	Count     int
	Jobs      []alertEmailJob
	Rationale string
}

type alertEmailJob struct {
	Title    string
	Company  string
	Location string
	Type     string
	Salary   string
	Link     string
}

func (s *notifyServiceImpl) renderHTML(seeker *model.User, alert *model.Alert, jobs []*model.Job, rationale string) (string, error) {
	data := alertEmailData{
		Name:      seeker.Name,
		AlertName: alert.Name,
		Count:     len(jobs),
		Rationale: rationale,
	}
	for _, job := range jobs {
		data.Jobs = append(data.Jobs, alertEmailJob{
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Type:     job.Type,
			Salary:   FormatSalary(job.Salary),
			Link:     fmt.Sprintf("%s/jobs/%s", s.baseURL, job.ID.Hex()),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *notifyServiceImpl) renderText(seeker *model.User, alert *model.Alert, jobs []*model.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n%d new job(s) match your alert \"%s\":\n\n", seeker.Name, len(jobs), alert.Name)
	for _, job := range jobs {
		fmt.Fprintf(&b, "- %s at %s (%s, %s) %s\n  %s/jobs/%s\n",
			job.Title, job.Company, job.Location, job.Type,
			FormatSalary(job.Salary), s.baseURL, job.ID.Hex())
	}
	return b.String()
}

// FormatSalary renders a salary range for human consumption.
func FormatSalary(s model.SalaryRange) string {
	if s.Min == 0 && s.Max == 0 {
		return "salary not specified"
	}
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}
	if s.Max == 0 {
		return fmt.Sprintf("from %d %s", s.Min, currency)
	}
	return fmt.Sprintf("%d - %d %s", s.Min, s.Max, currency)
}

const alertEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hi {{.Name}},</h2>
  <p>{{.Count}} new job(s) match your alert <strong>{{.AlertName}}</strong>:</p>
  {{range .Jobs}}
  <div style="border: 1px solid #ddd; border-radius: 6px; padding: 12px; margin-bottom: 10px;">
    <h3 style="margin: 0 0 4px 0;"><a href="{{.Link}}">{{.Title}}</a></h3>
    <p style="margin: 0;">{{.Company}} | {{.Location}} | {{.Type}}</p>
    <p style="margin: 4px 0 0 0; color: #666;">{{.Salary}}</p>
  </div>
  {{end}}
  {{if .Rationale}}
  <h3>Why these could fit you</h3>
  <p style="white-space: pre-line;">{{.Rationale}}</p>
  {{end}}
  <p style="color: #999; font-size: 12px;">You receive this email because job alerts are enabled in your account settings.</p>
</body>
</html>`
