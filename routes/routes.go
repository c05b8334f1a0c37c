package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poolhub/consultant-pool-backend/controllers"
	"github.com/poolhub/consultant-pool-backend/middleware"
	"github.com/poolhub/consultant-pool-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.Use(middleware.MetricsMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)
	r.GET("/metrics", controllers.Metrics)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/password-reset/request", controllers.RequestPasswordReset)
		auth.POST("/password-reset/confirm", controllers.ConfirmPasswordReset)
	}

	api := r.Group("/")
	{
		api.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db))

		api.POST("/attendance/mark", controllers.MarkAttendance)
		api.GET("/attendance/summary/:user_id", controllers.GetAttendanceSummary)

		api.POST("/assessments/submit", controllers.SubmitAssessment)
		api.GET("/assessments/:user_id", controllers.GetAssessments)

		api.POST("/resume/upload-text", controllers.UploadResumeText)
		api.POST("/resume/upload-file", controllers.UploadResumeFile)
		api.POST("/resume/process-ai", controllers.ProcessResumeAI)
		api.GET("/resume/download/:user_id/:filename", controllers.DownloadResume)

		api.GET("/training/recommendations/:user_id", controllers.GetTrainingRecommendations)
		api.POST("/training/certificate", controllers.UploadCertificate)
		api.GET("/training/recommend-learning/:user_id", controllers.RecommendLearning)
		api.POST("/training/progress", controllers.UpdateLearningProgress)

		api.GET("/dashboard/consultant/:user_id", controllers.ConsultantDashboard)

		api.POST("/notify", controllers.SendNotification)
	}

	admin := r.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db), middleware.RequireRoles("admin"))

		admin.GET("/consultants", controllers.ListConsultants)
		admin.GET("/consultants/:user_id", controllers.GetConsultantDetail)
		admin.GET("/consultants/:user_id/report.csv", controllers.DownloadConsultantReportCSV)
		admin.GET("/consultants/:user_id/report.xlsx", controllers.DownloadConsultantReportXLSX)

		admin.POST("/jd", controllers.SubmitJD)
		admin.GET("/match-profiles", controllers.MatchProfiles)
	}

	r.GET("/ws/admin/feed", ws.HandleAdminFeed)

	return r
}
