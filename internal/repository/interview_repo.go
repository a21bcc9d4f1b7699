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

type InterviewRepo interface {
	Create(ctx context.Context, interview *model.Interview) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Interview, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	ListByApplication(ctx context.Context, applicationID primitive.ObjectID) ([]*model.Interview, error)
	ListByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*model.Interview, error)
}

type interviewRepoImpl struct {
	col *mongo.Collection
}

func NewInterviewRepo(db *mongo.Database) InterviewRepo {
	return &interviewRepoImpl{
		col: db.Collection("interviews"),
	}
}

func (s *interviewRepoImpl) Create(ctx context.Context, interview *model.Interview) error {
	res, err := s.col.InsertOne(ctx, interview)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		interview.ID = oid
	}
	return nil
}

func (s *interviewRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Interview, error) {
	var interview model.Interview
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&interview)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

func (s *interviewRepoImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (s *interviewRepoImpl) ListByApplication(ctx context.Context, applicationID primitive.ObjectID) ([]*model.Interview, error) {
	return s.find(ctx, bson.M{"application_id": applicationID})
}

func (s *interviewRepoImpl) ListByParticipant(ctx context.Context, userID primitive.ObjectID) ([]*model.Interview, error) {
	return s.find(ctx, bson.M{"$or": []bson.M{
		{"seeker_id": userID},
		{"employer_id": userID},
	}})
}

func (s *interviewRepoImpl) find(ctx context.Context, filter bson.M) ([]*model.Interview, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var interviews []*model.Interview
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}
