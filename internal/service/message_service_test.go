package service

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMessageRepo struct {
	convs       map[primitive.ObjectID]*model.Conversation
	saved       []*model.Message
	unreadField string
	readField   string
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{convs: map[primitive.ObjectID]*model.Conversation{}}
}

func (f *fakeMessageRepo) UpsertConversation(ctx context.Context, seekerID, employerID primitive.ObjectID, jobID *primitive.ObjectID) (*model.Conversation, error) {
	for _, conv := range f.convs {
		if conv.SeekerID == seekerID && conv.EmployerID == employerID {
			return conv, nil
		}
	}
	conv := &model.Conversation{
		ID:         primitive.NewObjectID(),
		SeekerID:   seekerID,
		EmployerID: employerID,
		JobID:      jobID,
		CreatedAt:  time.Now(),
	}
	f.convs[conv.ID] = conv
	return conv, nil
}

func (f *fakeMessageRepo) GetConversation(ctx context.Context, id primitive.ObjectID) (*model.Conversation, error) {
	return f.convs[id], nil
}

func (f *fakeMessageRepo) ListConversations(ctx context.Context, userID primitive.ObjectID) ([]*model.Conversation, error) {
	return nil, nil
}

func (f *fakeMessageRepo) SaveMessage(ctx context.Context, msg *model.Message, unreadField string) error {
	msg.ID = primitive.NewObjectID()
	f.saved = append(f.saved, msg)
	f.unreadField = unreadField
	return nil
}

func (f *fakeMessageRepo) GetHistory(ctx context.Context, convID primitive.ObjectID, before time.Time, pageSize int) ([]*model.Message, error) {
	return nil, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, convID primitive.ObjectID, unreadField string) error {
	f.readField = unreadField
	return nil
}

func TestSendMessagePairsRolesAndBumpsRecipientUnread(t *testing.T) {
	seeker := seekerFixture(true)
	employer := &model.User{ID: primitive.NewObjectID(), Role: model.RoleEmployer, Name: "Acme HR"}

	msgRepo := newFakeMessageRepo()
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{
		seeker.ID:   seeker,
		employer.ID: employer,
	}}
	svc := NewMessageService(msgRepo, userRepo)

	msg, err := svc.SendMessage(context.Background(), seeker, &dto.SendMessageDTO{
		RecipientID: employer.ID.Hex(),
		Body:        "Hello, I am interested in the role.",
	})
	require.NoError(t, err)
	require.NotNil(t, msg)

	assert.Equal(t, seeker.ID, msg.SenderID)
	// A seeker's message is unread on the employer side.
	assert.Equal(t, "employer_unread", msgRepo.unreadField)

	require.Len(t, msgRepo.convs, 1)
	for _, conv := range msgRepo.convs {
		assert.Equal(t, seeker.ID, conv.SeekerID)
		assert.Equal(t, employer.ID, conv.EmployerID)
	}

	// Replying reuses the same conversation and flips the unread side.
	_, err = svc.SendMessage(context.Background(), employer, &dto.SendMessageDTO{
		RecipientID: seeker.ID.Hex(),
		Body:        "Thanks, let's talk.",
	})
	require.NoError(t, err)
	assert.Equal(t, "seeker_unread", msgRepo.unreadField)
	assert.Len(t, msgRepo.convs, 1)
}

func TestSendMessageRejectsSameRole(t *testing.T) {
	a := seekerFixture(true)
	b := seekerFixture(true)

	msgRepo := newFakeMessageRepo()
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*model.User{a.ID: a, b.ID: b}}
	svc := NewMessageService(msgRepo, userRepo)

	_, err := svc.SendMessage(context.Background(), a, &dto.SendMessageDTO{
		RecipientID: b.ID.Hex(),
		Body:        "hi",
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestHistoryRequiresParticipant(t *testing.T) {
	msgRepo := newFakeMessageRepo()
	conv := &model.Conversation{
		ID:         primitive.NewObjectID(),
		SeekerID:   primitive.NewObjectID(),
		EmployerID: primitive.NewObjectID(),
	}
	msgRepo.convs[conv.ID] = conv
	svc := NewMessageService(msgRepo, &fakeUserRepo{})

	_, err := svc.History(context.Background(), primitive.NewObjectID(), conv.ID, time.Time{}, 20)
	assert.ErrorIs(t, err, ErrNotParticipant)

	_, err = svc.History(context.Background(), conv.SeekerID, conv.ID, time.Time{}, 20)
	assert.NoError(t, err)
}

func TestMarkReadClearsCallerSide(t *testing.T) {
	msgRepo := newFakeMessageRepo()
	conv := &model.Conversation{
		ID:         primitive.NewObjectID(),
		SeekerID:   primitive.NewObjectID(),
		EmployerID: primitive.NewObjectID(),
	}
	msgRepo.convs[conv.ID] = conv
	svc := NewMessageService(msgRepo, &fakeUserRepo{})

	require.NoError(t, svc.MarkRead(context.Background(), conv.SeekerID, conv.ID))
	assert.Equal(t, "seeker_unread", msgRepo.readField)

	require.NoError(t, svc.MarkRead(context.Background(), conv.EmployerID, conv.ID))
	assert.Equal(t, "employer_unread", msgRepo.readField)
}
