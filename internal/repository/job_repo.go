package repository

import (
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/consts"
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRepo interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, query JobListQuery) ([]*model.Job, error)
	ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]*model.Job, error)
	ListIDs(ctx context.Context) ([]primitive.ObjectID, error)
	FindMatching(ctx context.Context, alert *model.Alert, since *time.Time) ([]*model.Job, error)
}

// JobListQuery drives the public browse endpoint. Empty fields impose no
// constraint.
type JobListQuery struct {
	Keyword  string
	Location string
	Type     string
	Page     int64
	PageSize int64
}

type jobRepoImpl struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepo {
	return &jobRepoImpl{
		col: db.Collection("jobs"),
	}
}

func (s *jobRepoImpl) Create(ctx context.Context, job *model.Job) error {
	res, err := s.col.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func (s *jobRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	var job model.Job
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (s *jobRepoImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (s *jobRepoImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	return s.Update(ctx, id, bson.M{"status": status})
}

func (s *jobRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// List returns open jobs matching the browse query, newest first.
func (s *jobRepoImpl) List(ctx context.Context, query JobListQuery) ([]*model.Job, error) {
	filter := bson.M{"status": model.JobStatusOpen}

	if query.Keyword != "" {
		re := containsPattern(query.Keyword)
		filter["$or"] = []bson.M{
			{"title": re},
			{"description": re},
			{"requirements": re},
		}
	}
	if query.Location != "" {
		filter["location"] = containsPattern(query.Location)
	}
	if query.Type != "" {
		filter["type"] = query.Type
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	return s.find(ctx, filter, findOptions)
}

func (s *jobRepoImpl) ListByEmployer(ctx context.Context, employerID primitive.ObjectID) ([]*model.Job, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, bson.M{"employer_id": employerID}, findOptions)
}

func (s *jobRepoImpl) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

// FindMatching returns jobs satisfying the alert's criteria, newest first,
// capped at the match limit.
func (s *jobRepoImpl) FindMatching(ctx context.Context, alert *model.Alert, since *time.Time) ([]*model.Job, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(consts.MatchLimit)

	return s.find(ctx, AlertMatchFilter(alert, since), findOptions)
}

func (s *jobRepoImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Job, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var jobs []*model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AlertMatchFilter builds the matcher query for one alert. Only open jobs
// are considered; a since timestamp restricts to jobs created strictly after
// it. Criteria dimensions left empty impose no constraint; present ones
// combine with AND.
func AlertMatchFilter(alert *model.Alert, since *time.Time) bson.M {
	filter := bson.M{"status": model.JobStatusOpen}

	if since != nil {
		filter["created_at"] = bson.M{"$gt": *since}
	}

	var clauses []bson.M

	if len(alert.Keywords) > 0 {
		var ors []bson.M
		for _, kw := range alert.Keywords {
			re := containsPattern(kw)
			ors = append(ors,
				bson.M{"title": re},
				bson.M{"description": re},
				bson.M{"requirements": re},
			)
		}
		clauses = append(clauses, bson.M{"$or": ors})
	}

	if len(alert.Locations) > 0 {
		var ors []bson.M
		for _, loc := range alert.Locations {
			ors = append(ors, bson.M{"location": containsPattern(loc)})
		}
		clauses = append(clauses, bson.M{"$or": ors})
	}

	if len(clauses) > 0 {
		filter["$and"] = clauses
	}

	if len(alert.JobTypes) > 0 {
		filter["type"] = bson.M{"$in": alert.JobTypes}
	}

	if alert.Salary != nil {
		// Job floor must clear the alert floor; a zero alert Min still pins
		// salary.min >= 0 so both bounds behave uniformly.
		filter["salary.min"] = bson.M{"$gte": alert.Salary.Min}
		if alert.Salary.Max > 0 {
			filter["salary.max"] = bson.M{"$lte": alert.Salary.Max}
		}
	}

	return filter
}

// containsPattern is a case-insensitive substring match.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
