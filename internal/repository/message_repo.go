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

type MessageRepo interface {
	UpsertConversation(ctx context.Context, seekerID, employerID primitive.ObjectID, jobID *primitive.ObjectID) (*model.Conversation, error)
	GetConversation(ctx context.Context, id primitive.ObjectID) (*model.Conversation, error)
	ListConversations(ctx context.Context, userID primitive.ObjectID) ([]*model.Conversation, error)
	SaveMessage(ctx context.Context, msg *model.Message, unreadField string) error
	GetHistory(ctx context.Context, convID primitive.ObjectID, before time.Time, pageSize int) ([]*model.Message, error)
	MarkRead(ctx context.Context, convID primitive.ObjectID, unreadField string) error
}

type messageRepoImpl struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) MessageRepo {
	return &messageRepoImpl{
		conversations: db.Collection("conversations"),
		messages:      db.Collection("messages"),
	}
}

// UpsertConversation finds or creates the single conversation between a
// seeker and an employer.
func (s *messageRepoImpl) UpsertConversation(ctx context.Context, seekerID, employerID primitive.ObjectID, jobID *primitive.ObjectID) (*model.Conversation, error) {
	now := time.Now()
	setOnInsert := bson.M{
		"seeker_id":       seekerID,
		"employer_id":     employerID,
		"seeker_unread":   int64(0),
		"employer_unread": int64(0),
		"last_message_at": now,
		"created_at":      now,
	}
	if jobID != nil {
		setOnInsert["job_id"] = *jobID
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conv model.Conversation
	err := s.conversations.FindOneAndUpdate(ctx,
		bson.M{"seeker_id": seekerID, "employer_id": employerID},
		bson.M{"$setOnInsert": setOnInsert},
		opts,
	).Decode(&conv)
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *messageRepoImpl) GetConversation(ctx context.Context, id primitive.ObjectID) (*model.Conversation, error) {
	var conv model.Conversation
	err := s.conversations.FindOne(ctx, bson.M{"_id": id}).Decode(&conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (s *messageRepoImpl) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]*model.Conversation, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}})
	cursor, err := s.conversations.Find(ctx, bson.M{"$or": []bson.M{
		{"seeker_id": userID},
		{"employer_id": userID},
	}}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var convs []*model.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, err
	}
	return convs, nil
}

// SaveMessage stores the message and bumps the recipient's unread counter
// atomically on the conversation.
func (s *messageRepoImpl) SaveMessage(ctx context.Context, msg *model.Message, unreadField string) error {
	res, err := s.messages.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid
	}

	_, err = s.conversations.UpdateOne(ctx, bson.M{"_id": msg.ConversationID}, bson.M{
		"$inc": bson.M{unreadField: int64(1)},
		"$set": bson.M{"last_message_at": msg.CreatedAt},
	})
	return err
}

// GetHistory pages backwards from before, newest first.
func (s *messageRepoImpl) GetHistory(ctx context.Context, convID primitive.ObjectID, before time.Time, pageSize int) ([]*model.Message, error) {
	filter := bson.M{"conversation_id": convID}
	if !before.IsZero() {
		filter["created_at"] = bson.M{"$lt": before}
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(pageSize))

	cursor, err := s.messages.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var messages []*model.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *messageRepoImpl) MarkRead(ctx context.Context, convID primitive.ObjectID, unreadField string) error {
	_, err := s.conversations.UpdateOne(ctx, bson.M{"_id": convID}, bson.M{
		"$set": bson.M{unreadField: int64(0)},
	})
	return err
}
