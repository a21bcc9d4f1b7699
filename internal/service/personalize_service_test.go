package service

import (
	"careerbridge/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalizerDefaultsToNoop(t *testing.T) {
	// No credential configured in tests, so the factory must hand back the
	// no-op implementation.
	p := NewPersonalizer()
	assert.Equal(t, "", p.Describe(context.Background(), seekerFixture(true), []*model.Job{jobFixture("Go Developer")}))
}

func TestBuildPersonalizePromptIncludesProfileAndJobs(t *testing.T) {
	seeker := &model.User{
		Headline: "Backend engineer",
		Skills:   []string{"Go", "Kubernetes"},
		Experience: []model.Experience{
			{Title: "SRE", Company: "Initech"},
		},
	}

	prompt := buildPersonalizePrompt(seeker, []*model.Job{jobFixture("Platform Engineer")})

	assert.Contains(t, prompt, "Backend engineer")
	assert.Contains(t, prompt, "Skills: Go, Kubernetes")
	assert.Contains(t, prompt, "Worked as SRE at Initech")
	assert.Contains(t, prompt, "Platform Engineer")
}

func TestProfileSummaryEmptyProfile(t *testing.T) {
	assert.Equal(t, "No profile details provided.\n", profileSummary(&model.User{}))
}
