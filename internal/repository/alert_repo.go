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

type AlertRepo interface {
	Create(ctx context.Context, alert *model.Alert) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Alert, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListBySeeker(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Alert, error)
	ListDue(ctx context.Context, frequency string) ([]*model.Alert, error)
	AdvanceLastSent(ctx context.Context, id primitive.ObjectID, sentAt time.Time) error
}

type alertRepoImpl struct {
	col *mongo.Collection
}

func NewAlertRepo(db *mongo.Database) AlertRepo {
	return &alertRepoImpl{
		col: db.Collection("alerts"),
	}
}

func (s *alertRepoImpl) Create(ctx context.Context, alert *model.Alert) error {
	res, err := s.col.InsertOne(ctx, alert)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = oid
	}
	return nil
}

func (s *alertRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Alert, error) {
	var alert model.Alert
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&alert)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (s *alertRepoImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (s *alertRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *alertRepoImpl) ListBySeeker(ctx context.Context, seekerID primitive.ObjectID) ([]*model.Alert, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"seeker_id": seekerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var alerts []*model.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListDue returns every active alert of the given frequency.
func (s *alertRepoImpl) ListDue(ctx context.Context, frequency string) ([]*model.Alert, error) {
	cursor, err := s.col.Find(ctx, bson.M{"frequency": frequency, "active": true})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var alerts []*model.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// AdvanceLastSent moves last_sent_at forward with $max so overlapping runs
// can never rewind it.
func (s *alertRepoImpl) AdvanceLastSent(ctx context.Context, id primitive.ObjectID, sentAt time.Time) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$max": bson.M{"last_sent_at": sentAt},
	})
	return err
}
