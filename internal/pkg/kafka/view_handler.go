package kafka

import (
	"careerbridge/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ViewEvent is the wire shape published by frontends and partner embeds when
// a posting is opened outside the API path.
type ViewEvent struct {
	JobID    string `json:"job_id"`
	Source   string `json:"source"`
	ViewerID string `json:"viewer_id,omitempty"`
}

type ViewsHandler struct {
	analyticsService service.AnalyticsService
}

func NewViewsHandler(analyticsService service.AnalyticsService) *ViewsHandler {
	return &ViewsHandler{
		analyticsService: analyticsService,
	}
}

func (s *ViewsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("job view consumer setup")
	return nil
}

func (s *ViewsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("job view consumer cleanup")
	return nil
}

func (s *ViewsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-view consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-view process batch error", "err", err)
		return err
	}
	return nil
}

func (s *ViewsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event ViewEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// A malformed payload never becomes valid; drop it rather than
		// retrying forever.
		log.ErrorContext(ctx, "unmarshal view event error", "err", err)
		return nil
	}

	jobID, err := primitive.ObjectIDFromHex(event.JobID)
	if err != nil {
		log.ErrorContext(ctx, "view event carries bad job id", "job_id", event.JobID)
		return nil
	}

	return s.analyticsService.RecordView(ctx, jobID, event.Source, event.ViewerID)
}
