package api

import (
	"careerbridge/internal/api/middleware"
	"careerbridge/internal/model"
	"careerbridge/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.CommonMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/profile", group.UserHandler.GetProfile)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
				authGroup.PUT("/settings", group.UserHandler.UpdateSettings)
			}
		}

		jobGroup := apiGroup.Group("/job")
		{
			// Browsing is public; a valid token still attributes the view.
			publicGroup := jobGroup.Group("")
			publicGroup.Use(middleware.AuthOptionalMiddleware())
			{
				publicGroup.GET("", group.JobHandler.List)
				publicGroup.GET("/:job_id", group.JobHandler.Get)
				publicGroup.POST("/:job_id/view", group.AnalyticsHandler.TrackView)
				publicGroup.POST("/:job_id/click", group.AnalyticsHandler.TrackClick)
			}

			employerGroup := jobGroup.Group("")
			employerGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleEmployer, model.RoleAdmin))
			{
				employerGroup.POST("", group.JobHandler.Create)
				employerGroup.GET("/mine", group.JobHandler.ListMine)
				employerGroup.PUT("/:job_id", group.JobHandler.Update)
				employerGroup.POST("/:job_id/close", group.JobHandler.Close)
				employerGroup.DELETE("/:job_id", group.JobHandler.Delete)
				employerGroup.GET("/:job_id/analytics", group.AnalyticsHandler.Get)
				employerGroup.GET("/:job_id/applications", group.ApplicationHandler.ListByJob)
			}

			seekerGroup := jobGroup.Group("")
			seekerGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleSeeker))
			{
				seekerGroup.POST("/:job_id/apply", group.ApplicationHandler.Apply)
			}
		}

		alertGroup := apiGroup.Group("/alert")
		alertGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleSeeker))
		{
			alertGroup.POST("", group.AlertHandler.Create)
			alertGroup.GET("", group.AlertHandler.List)
			alertGroup.PUT("/:alert_id", group.AlertHandler.Update)
			alertGroup.DELETE("/:alert_id", group.AlertHandler.Delete)
			alertGroup.GET("/:alert_id/preview", group.AlertHandler.Preview)
		}

		applicationGroup := apiGroup.Group("/application")
		applicationGroup.Use(middleware.AuthMiddleware())
		{
			applicationGroup.GET("/mine", group.ApplicationHandler.ListMine)
			applicationGroup.GET("/:application_id/interviews", group.InterviewHandler.ListByApplication)

			employerGroup := applicationGroup.Group("")
			employerGroup.Use(middleware.CheckRoles(model.RoleEmployer, model.RoleAdmin))
			{
				employerGroup.PUT("/:application_id/status", group.ApplicationHandler.UpdateStatus)
				employerGroup.POST("/:application_id/rating", group.ApplicationHandler.AddRating)
			}
		}

		interviewGroup := apiGroup.Group("/interview")
		interviewGroup.Use(middleware.AuthMiddleware())
		{
			interviewGroup.GET("/mine", group.InterviewHandler.ListMine)

			employerGroup := interviewGroup.Group("")
			employerGroup.Use(middleware.CheckRoles(model.RoleEmployer, model.RoleAdmin))
			{
				employerGroup.POST("", group.InterviewHandler.Schedule)
				employerGroup.PUT("/:interview_id", group.InterviewHandler.Reschedule)
				employerGroup.POST("/:interview_id/cancel", group.InterviewHandler.Cancel)
				employerGroup.POST("/:interview_id/complete", group.InterviewHandler.Complete)
			}
		}

		messageGroup := apiGroup.Group("/message")
		messageGroup.Use(middleware.AuthMiddleware())
		{
			messageGroup.POST("", group.MessageHandler.Send)
			messageGroup.GET("/conversations", group.MessageHandler.ListConversations)
			messageGroup.GET("/conversations/:conversation_id", group.MessageHandler.History)
			messageGroup.POST("/conversations/:conversation_id/read", group.MessageHandler.MarkRead)
		}
	}

	return r
}
