package api

import "careerbridge/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	JobHandler         *handler.JobHandler
	AlertHandler       *handler.AlertHandler
	AnalyticsHandler   *handler.AnalyticsHandler
	ApplicationHandler *handler.ApplicationHandler
	InterviewHandler   *handler.InterviewHandler
	MessageHandler     *handler.MessageHandler
}
