package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation pairs one seeker with one employer, optionally anchored to a
// job posting.
type Conversation struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SeekerID       primitive.ObjectID  `bson:"seeker_id" json:"seekerId"`
	EmployerID     primitive.ObjectID  `bson:"employer_id" json:"employerId"`
	JobID          *primitive.ObjectID `bson:"job_id,omitempty" json:"jobId,omitempty"`
	SeekerUnread   int64               `bson:"seeker_unread" json:"seekerUnread"`
	EmployerUnread int64               `bson:"employer_unread" json:"employerUnread"`
	LastMessageAt  time.Time           `bson:"last_message_at" json:"lastMessageAt"`
	CreatedAt      time.Time           `bson:"created_at" json:"createdAt"`
}

type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID primitive.ObjectID `bson:"conversation_id" json:"conversationId"`
	SenderID       primitive.ObjectID `bson:"sender_id" json:"senderId"`
	Body           string             `bson:"body" json:"body"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
