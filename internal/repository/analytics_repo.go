package repository

import (
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/util"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnalyticsRepo expresses every counter mutation as a single atomic
// field-level update ($inc/$addToSet) so concurrent events on the same job
// record cannot lose increments or duplicate daily buckets.
type AnalyticsRepo interface {
	EnsureForJob(ctx context.Context, jobID primitive.ObjectID) error
	GetByJobID(ctx context.Context, jobID primitive.ObjectID) (*model.JobAnalytics, error)
	IncView(ctx context.Context, jobID primitive.ObjectID, source string, day time.Time) error
	AddViewer(ctx context.Context, jobID primitive.ObjectID, viewerID string) (bool, error)
	IncUniqueView(ctx context.Context, jobID primitive.ObjectID) error
	IncClickThrough(ctx context.Context, jobID primitive.ObjectID) error
	IncApplication(ctx context.Context, jobID primitive.ObjectID, day time.Time, location string, skills []string) error
}

type analyticsRepoImpl struct {
	col *mongo.Collection
}

func NewAnalyticsRepo(db *mongo.Database) AnalyticsRepo {
	return &analyticsRepoImpl{
		col: db.Collection("job_analytics"),
	}
}

// EnsureForJob creates the zeroed record if absent. The unique index on
// job_id makes concurrent upserts collapse to one document.
func (s *analyticsRepoImpl) EnsureForJob(ctx context.Context, jobID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{"$setOnInsert": bson.M{
			"job_id":         jobID,
			"views":          int64(0),
			"unique_views":   int64(0),
			"click_throughs": int64(0),
			"applications":   int64(0),
			"updated_at":     time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *analyticsRepoImpl) GetByJobID(ctx context.Context, jobID primitive.ObjectID) (*model.JobAnalytics, error) {
	var rec model.JobAnalytics
	err := s.col.FindOne(ctx, bson.M{"job_id": jobID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// IncView bumps the total, the per-source counter, and the day's bucket in
// a single update.
func (s *analyticsRepoImpl) IncView(ctx context.Context, jobID primitive.ObjectID, source string, day time.Time) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{
			"$inc": viewIncrement(source, util.DateKey(day)),
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	return err
}

// viewIncrement covers the totals and the day's bucket in one $inc. The
// date-keyed bucket path means a first-of-day event creates and increments
// the bucket atomically, so racing writers cannot produce two buckets for
// the same date.
func viewIncrement(source, dateKey string) bson.M {
	inc := bson.M{"views": int64(1)}
	inc["view_sources."+source] = int64(1)
	inc["daily."+dateKey+".views"] = int64(1)
	return inc
}

// AddViewer records a viewer id in the dedup set and reports whether it was
// new for this job.
func (s *analyticsRepoImpl) AddViewer(ctx context.Context, jobID primitive.ObjectID, viewerID string) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{"$addToSet": bson.M{"viewers": viewerID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *analyticsRepoImpl) IncUniqueView(ctx context.Context, jobID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{"$inc": bson.M{"unique_views": int64(1)}},
	)
	return err
}

func (s *analyticsRepoImpl) IncClickThrough(ctx context.Context, jobID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{
			"$inc": bson.M{"click_throughs": int64(1)},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	return err
}

// IncApplication bumps the application counter, the day's bucket, and the
// demographic rollups derived from the applicant profile in a single update.
func (s *analyticsRepoImpl) IncApplication(ctx context.Context, jobID primitive.ObjectID, day time.Time, location string, skills []string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"job_id": jobID},
		bson.M{
			"$inc": applicationIncrement(util.DateKey(day), location, skills),
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	return err
}

func applicationIncrement(dateKey, location string, skills []string) bson.M {
	inc := bson.M{"applications": int64(1)}
	inc["daily."+dateKey+".applications"] = int64(1)
	if location != "" {
		inc["location_rollup."+util.SanitizeMapKey(location)] = int64(1)
	}
	for _, skill := range skills {
		inc["skill_rollup."+util.SanitizeMapKey(skill)] = int64(1)
	}
	return inc
}
