package handler

import (
	"careerbridge/internal/api/dto"
	"careerbridge/internal/pkg/response"
	"careerbridge/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageSvc service.MessageService
	userSvc    service.UserService
}

func NewMessageHandler(messageSvc service.MessageService, userSvc service.UserService) *MessageHandler {
	return &MessageHandler{
		messageSvc: messageSvc,
		userSvc:    userSvc,
	}
}

func (s *MessageHandler) Send(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	var req dto.SendMessageDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	sender, err := s.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	msg, err := s.messageSvc.SendMessage(c.Request.Context(), sender, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, msg)
}

// History pages backwards. The before query param is RFC3339; zero means
// "from the latest".
func (s *MessageHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	convID, err := pathObjectID(c, "conversation_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var before time.Time
	if raw := c.Query("before"); raw != "" {
		before, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	messages, err := s.messageSvc.History(c.Request.Context(), userID, convID, before, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	convs, err := s.messageSvc.ListConversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, convs)
}

func (s *MessageHandler) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Error(c, service.UnauthorizedError)
		return
	}
	convID, err := pathObjectID(c, "conversation_id")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.messageSvc.MarkRead(c.Request.Context(), userID, convID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
