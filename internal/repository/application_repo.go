package repository

import (
	"careerbridge/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepo interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error)
	GetByJobAndSeeker(ctx context.Context, jobID, seekerID primitive.ObjectID) (*model.Application, error)
	ListByJob(ctx context.Context, jobID primitive.ObjectID) ([]*model.Application, error)
	ListBySeeker(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Application, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
	AppendRating(ctx context.Context, id primitive.ObjectID, rating model.InterviewRating) error
}

type applicationRepoImpl struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepo {
	return &applicationRepoImpl{
		col: db.Collection("applications"),
	}
}

func (s *applicationRepoImpl) Create(ctx context.Context, app *model.Application) error {
	res, err := s.col.InsertOne(ctx, app)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		app.ID = oid
	}
	return nil
}

func (s *applicationRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	var app model.Application
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (s *applicationRepoImpl) GetByJobAndSeeker(ctx context.Context, jobID, seekerID primitive.ObjectID) (*model.Application, error) {
	var app model.Application
	err := s.col.FindOne(ctx, bson.M{"job_id": jobID, "seeker_id": seekerID}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (s *applicationRepoImpl) ListByJob(ctx context.Context, jobID primitive.ObjectID) ([]*model.Application, error) {
	return s.find(ctx, bson.M{"job_id": jobID})
}

func (s *applicationRepoImpl) ListBySeeker(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Application, error) {
	return s.find(ctx, bson.M{"seeker_id": seekerID})
}

func (s *applicationRepoImpl) find(ctx context.Context, filter bson.M) ([]*model.Application, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var apps []*model.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *applicationRepoImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	return err
}

// AppendRating pushes a rating onto the ordered embedded list. Ratings
// accumulate; none overwrite previous ones.
func (s *applicationRepoImpl) AppendRating(ctx context.Context, id primitive.ObjectID, rating model.InterviewRating) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"ratings": rating},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	return err
}
