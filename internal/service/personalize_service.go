package service

import (
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/llm"
	"careerbridge/internal/pkg/util"
	"context"
	"fmt"
	log "log/slog"
	"strings"
)

const personalizeSystemPrompt = `You are a career assistant for a job portal.
Given a candidate profile and a list of job postings, write a short paragraph
per job explaining why it could be a good fit for this candidate. Be concrete,
reference the candidate's actual skills and experience, and keep the whole
answer under 200 words. Plain text only.`

// Personalizer produces an optional per-job fit rationale. An empty result
// means "no personalization"; callers must never treat it as a failure.
type Personalizer interface {
	Describe(ctx context.Context, seeker *model.User, jobs []*model.Job) string
}

// NewPersonalizer picks the model-backed implementation when a credential is
// configured and the no-op otherwise, so notification code never branches on
// configuration.
func NewPersonalizer() Personalizer {
	if llm.Enabled() {
		return &llmPersonalizer{}
	}
	return &noopPersonalizer{}
}

type noopPersonalizer struct{}

func (s *noopPersonalizer) Describe(ctx context.Context, seeker *model.User, jobs []*model.Job) string {
	return ""
}

type llmPersonalizer struct{}

func (s *llmPersonalizer) Describe(ctx context.Context, seeker *model.User, jobs []*model.Job) string {
	if len(jobs) == 0 {
		return ""
	}

	prompt := buildPersonalizePrompt(seeker, jobs)

	text, err := llm.GenerateText(ctx, personalizeSystemPrompt, prompt)
	if err != nil {
		log.WarnContext(ctx, "personalization call failed, skipping", "err", err)
		return ""
	}
	return strings.TrimSpace(text)
}

func buildPersonalizePrompt(seeker *model.User, jobs []*model.Job) string {
	var b strings.Builder

	b.WriteString("Candidate profile:\n")
	b.WriteString(profileSummary(seeker))
	b.WriteString("\nMatched jobs:\n")
	for i, job := range jobs {
		fmt.Fprintf(&b, "%d. %s at %s: %s\n", i+1, job.Title, job.Company, util.Truncate(job.Description, 300))
	}

	return b.String()
}

func profileSummary(seeker *model.User) string {
	var parts []string

	if seeker.Headline != "" {
		parts = append(parts, seeker.Headline)
	}
	if len(seeker.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(seeker.Skills, ", "))
	}
	for _, exp := range seeker.Experience {
		parts = append(parts, fmt.Sprintf("Worked as %s at %s", exp.Title, exp.Company))
	}
	for _, edu := range seeker.Education {
		parts = append(parts, fmt.Sprintf("%s from %s", edu.Degree, edu.Institution))
	}

	if len(parts) == 0 {
		return "No profile details provided.\n"
	}
	return strings.Join(parts, "\n") + "\n"
}
