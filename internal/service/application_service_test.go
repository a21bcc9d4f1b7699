package service

import (
	"careerbridge/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingAveragesEmpty(t *testing.T) {
	assert.Nil(t, RatingAverages(nil))
	assert.Nil(t, RatingAverages([]model.InterviewRating{}))
}

func TestRatingAveragesAcrossRaters(t *testing.T) {
	ratings := []model.InterviewRating{
		{Scores: model.RatingScores{Overall: 5, Technical: 4, Communication: 3, CulturalFit: 5, ProblemSolving: 4}},
		{Scores: model.RatingScores{Overall: 3, Technical: 4, Communication: 5, CulturalFit: 3, ProblemSolving: 2}},
	}

	avg := RatingAverages(ratings)
	require.NotNil(t, avg)

	assert.Equal(t, 2, avg.Count)
	assert.InDelta(t, 4.0, avg.Overall, 1e-9)
	assert.InDelta(t, 4.0, avg.Technical, 1e-9)
	assert.InDelta(t, 4.0, avg.Communication, 1e-9)
	assert.InDelta(t, 4.0, avg.CulturalFit, 1e-9)
	assert.InDelta(t, 3.0, avg.ProblemSolving, 1e-9)
}

func TestRatingAveragesSingleRater(t *testing.T) {
	ratings := []model.InterviewRating{
		{Scores: model.RatingScores{Overall: 2, Technical: 3, Communication: 4, CulturalFit: 5, ProblemSolving: 1}},
	}

	avg := RatingAverages(ratings)
	require.NotNil(t, avg)
	assert.Equal(t, 1, avg.Count)
	assert.InDelta(t, 2.0, avg.Overall, 1e-9)
	assert.InDelta(t, 1.0, avg.ProblemSolving, 1e-9)
}
