package wire

import (
	"careerbridge/internal/api"
	"careerbridge/internal/api/config"
	"careerbridge/internal/api/handler"
	"careerbridge/internal/job"
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/cron"
	"careerbridge/internal/pkg/kafka"
	"careerbridge/internal/pkg/mail"
	"careerbridge/internal/repository"
	"careerbridge/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer bundles every top-level component the process runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	Mongo        *mongo.Database
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	jobRepo := repository.NewJobRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	applicationRepo := repository.NewApplicationRepo(db)
	interviewRepo := repository.NewInterviewRepo(db)
	messageRepo := repository.NewMessageRepo(db)

	mailSender := mail.NewSender(cfg.SMTP)
	personalizer := service.NewPersonalizer()
	notifyService := service.NewNotifyService(mailSender, personalizer, cfg.Alerts.PortalBaseURL)

	userService := service.NewUserService(userRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, jobRepo)
	jobService := service.NewJobService(jobRepo, analyticsService)
	alertService := service.NewAlertService(alertRepo, jobRepo, userRepo, notifyService)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, analyticsService)
	interviewService := service.NewInterviewService(interviewRepo, applicationRepo)
	messageService := service.NewMessageService(messageRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		JobHandler:         handler.NewJobHandler(jobService, userService),
		AlertHandler:       handler.NewAlertHandler(alertService),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
		ApplicationHandler: handler.NewApplicationHandler(applicationService, userService),
		InterviewHandler:   handler.NewInterviewHandler(interviewService),
		MessageHandler:     handler.NewMessageHandler(messageService, userService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, analyticsService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewAlertJob(alertService, model.FrequencyDaily),
		job.NewAlertJob(alertService, model.FrequencyWeekly),
		job.NewAlertJob(alertService, model.FrequencyImmediate),
		job.NewAnalyticsBackfillJob(analyticsService),
	)

	return &ApplicationContainer{
		Router:       router,
		Mongo:        db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
