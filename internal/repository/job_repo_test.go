package repository

import (
	"careerbridge/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAlertMatchFilterOnlyOpenJobs(t *testing.T) {
	alert := &model.Alert{Keywords: []string{"react"}}

	filter := AlertMatchFilter(alert, nil)

	assert.Equal(t, model.JobStatusOpen, filter["status"])
	_, hasCreatedAt := filter["created_at"]
	assert.False(t, hasCreatedAt, "no since timestamp means no recency bound")
}

func TestAlertMatchFilterKeywordSearchesAllTextFields(t *testing.T) {
	alert := &model.Alert{Keywords: []string{"react", "golang"}}

	filter := AlertMatchFilter(alert, nil)

	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 1)

	ors, ok := clauses[0]["$or"].([]bson.M)
	require.True(t, ok)
	// three text fields per keyword
	require.Len(t, ors, 6)

	re, ok := ors[0]["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "react", re.Pattern)
	assert.Equal(t, "i", re.Options)

	fields := map[string]int{}
	for _, or := range ors {
		for field := range or {
			fields[field]++
		}
	}
	assert.Equal(t, map[string]int{"title": 2, "description": 2, "requirements": 2}, fields)
}

func TestAlertMatchFilterLocationIsSubstringInsensitive(t *testing.T) {
	alert := &model.Alert{Locations: []string{"remote"}}

	filter := AlertMatchFilter(alert, nil)

	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 1)

	ors, ok := clauses[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, ors, 1)

	re, ok := ors[0]["location"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "remote", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestAlertMatchFilterSalaryBand(t *testing.T) {
	alert := &model.Alert{Salary: &model.SalaryBand{Min: 50000, Max: 80000}}

	filter := AlertMatchFilter(alert, nil)

	// A job floor below the alert floor must not match; the filter pins the
	// job minimum against the alert minimum.
	assert.Equal(t, bson.M{"$gte": int64(50000)}, filter["salary.min"])
	assert.Equal(t, bson.M{"$lte": int64(80000)}, filter["salary.max"])
}

func TestAlertMatchFilterSalaryOpenEnded(t *testing.T) {
	alert := &model.Alert{Salary: &model.SalaryBand{Min: 60000}}

	filter := AlertMatchFilter(alert, nil)

	assert.Equal(t, bson.M{"$gte": int64(60000)}, filter["salary.min"])
	_, hasMax := filter["salary.max"]
	assert.False(t, hasMax, "zero max means no upper bound")
}

func TestAlertMatchFilterJobTypes(t *testing.T) {
	alert := &model.Alert{JobTypes: []string{model.JobTypeFullTime, model.JobTypeContract}}

	filter := AlertMatchFilter(alert, nil)

	assert.Equal(t, bson.M{"$in": []string{model.JobTypeFullTime, model.JobTypeContract}}, filter["type"])
}

func TestAlertMatchFilterSinceBound(t *testing.T) {
	since := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	alert := &model.Alert{}

	filter := AlertMatchFilter(alert, &since)

	assert.Equal(t, bson.M{"$gt": since}, filter["created_at"])
}

func TestAlertMatchFilterEmptyCriteria(t *testing.T) {
	filter := AlertMatchFilter(&model.Alert{}, nil)

	// Every dimension left empty imposes no constraint beyond openness.
	assert.Equal(t, bson.M{"status": model.JobStatusOpen}, filter)
}

func TestAlertMatchFilterEscapesRegexMeta(t *testing.T) {
	alert := &model.Alert{Keywords: []string{"c++ (senior)"}}

	filter := AlertMatchFilter(alert, nil)

	clauses := filter["$and"].([]bson.M)
	ors := clauses[0]["$or"].([]bson.M)
	re := ors[0]["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(senior\)`, re.Pattern)
}
