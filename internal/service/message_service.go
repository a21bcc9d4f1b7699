package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"careerbridge/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageService interface {
	SendMessage(ctx context.Context, sender *model.User, req *dto.SendMessageDTO) (*model.Message, error)
	History(ctx context.Context, userID, convID primitive.ObjectID, before time.Time, pageSize int) ([]*model.Message, error)
	ListConversations(ctx context.Context, userID primitive.ObjectID) ([]*model.Conversation, error)
	MarkRead(ctx context.Context, userID, convID primitive.ObjectID) error
}

type messageServiceImpl struct {
	messageRepo repository.MessageRepo
	userRepo    repository.UserRepo
}

func NewMessageService(messageRepo repository.MessageRepo, userRepo repository.UserRepo) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessage resolves the seeker/employer pair from the two roles, finds or
// creates their conversation, and appends the message. The recipient's unread
// counter is bumped in the same repository call.
func (s *messageServiceImpl) SendMessage(ctx context.Context, sender *model.User, req *dto.SendMessageDTO) (*model.Message, error) {
	recipientID, err := primitive.ObjectIDFromHex(req.RecipientID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, UnExpectedError
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}
	if sender.Role == recipient.Role {
		return nil, ErrParamInvalid
	}

	var seekerID, employerID primitive.ObjectID
	var unreadField string
	if sender.Role == model.RoleSeeker {
		seekerID, employerID = sender.ID, recipient.ID
		unreadField = "employer_unread"
	} else {
		seekerID, employerID = recipient.ID, sender.ID
		unreadField = "seeker_unread"
	}

	var jobID *primitive.ObjectID
	if req.JobID != "" {
		oid, err := primitive.ObjectIDFromHex(req.JobID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		jobID = &oid
	}

	conv, err := s.messageRepo.UpsertConversation(ctx, seekerID, employerID, jobID)
	if err != nil {
		return nil, UnExpectedError
	}

	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       sender.ID,
		Body:           req.Body,
		CreatedAt:      time.Now(),
	}
	if err := s.messageRepo.SaveMessage(ctx, msg, unreadField); err != nil {
		return nil, UnExpectedError
	}
	return msg, nil
}

func (s *messageServiceImpl) History(ctx context.Context, userID, convID primitive.ObjectID, before time.Time, pageSize int) ([]*model.Message, error) {
	if _, err := s.participantConversation(ctx, userID, convID); err != nil {
		return nil, err
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 50
	}

	messages, err := s.messageRepo.GetHistory(ctx, convID, before, pageSize)
	if err != nil {
		return nil, UnExpectedError
	}
	return messages, nil
}

func (s *messageServiceImpl) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]*model.Conversation, error) {
	convs, err := s.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	return convs, nil
}

func (s *messageServiceImpl) MarkRead(ctx context.Context, userID, convID primitive.ObjectID) error {
	conv, err := s.participantConversation(ctx, userID, convID)
	if err != nil {
		return err
	}

	unreadField := "employer_unread"
	if conv.SeekerID == userID {
		unreadField = "seeker_unread"
	}
	if err := s.messageRepo.MarkRead(ctx, convID, unreadField); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *messageServiceImpl) participantConversation(ctx context.Context, userID, convID primitive.ObjectID) (*model.Conversation, error) {
	conv, err := s.messageRepo.GetConversation(ctx, convID)
	if err != nil {
		return nil, UnExpectedError
	}
	if conv == nil {
		return nil, ErrConversationNotFound
	}
	if conv.SeekerID != userID && conv.EmployerID != userID {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
