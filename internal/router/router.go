package router

import (
	"campus/config"
	"campus/internal/domain"
	"campus/internal/events"
	"campus/internal/handler"
	"campus/internal/middleware"
	"campus/internal/repository"
	"campus/internal/service"
	"campus/internal/stream"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default()) // the React client runs on its own origin in dev

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	gradebookRepo := repository.NewGradebookRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	healthRepo := repository.NewHealthRepository(db)
	disciplineRepo := repository.NewDisciplineRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)

	// Event bus and streaming hub live for the process lifetime.
	bus := events.NewBus()
	hub := stream.NewHub()

	// Services
	authSvc := service.NewAuthService(&cfg.Session, userRepo, sessionRepo)
	routing := service.NewStudentParentRouter(linkRepo)
	notifSvc := service.NewNotificationService(notificationRepo, routing)
	gradebookSvc := service.NewGradebookService(gradebookRepo, assignmentRepo, feedbackRepo, bus)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, bus)
	healthSvc := service.NewHealthService(healthRepo, bus)
	disciplineSvc := service.NewDisciplineService(disciplineRepo, bus)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, linkRepo)
	dashboardSvc := service.NewDashboardService(studentRepo, linkRepo, sectionRepo, gradebookRepo, attendanceRepo, feedbackRepo, healthRepo, disciplineRepo)
	accessSvc := service.NewAccessControlService(permissionRepo, userRepo)

	// Fan-out: notification rows first, then live push, per registration order.
	notifSvc.SubscribeTo(bus)
	hub.SubscribeTo(bus)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	sectionHandler := handler.NewSectionHandler(sectionRepo)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	gradebookHandler := handler.NewGradebookHandler(gradebookSvc, notifSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	healthHandler := handler.NewHealthHandler(healthSvc)
	disciplineHandler := handler.NewDisciplineHandler(disciplineSvc)
	notificationHandler := handler.NewNotificationHandler(notifSvc)

	authMw := middleware.AuthRequired(authSvc)

	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		// EventSource cannot send an Authorization header.
		api.GET("/events/:userId", stream.ServeSSE(&cfg.Stream, hub))

		authed := api.Group("")
		authed.Use(authMw)
		{
			authed.POST("/logout", authHandler.Logout)
			authed.GET("/sections", sectionHandler.List)
			authed.GET("/students/:id/sections", sectionHandler.ListByStudent)
			authed.POST("/enrollments", enrollmentHandler.Enroll)
			authed.POST("/parent-links", enrollmentHandler.LinkParent)
			authed.GET("/dashboard/student/:id", dashboardHandler.Student)
			authed.GET("/dashboard/parent/:id", dashboardHandler.Parent)
			authed.POST("/grades", middleware.RequirePermission(accessSvc, domain.PermGradeUpdate), gradebookHandler.SubmitGrade)
			authed.POST("/attendance", middleware.RequirePermission(accessSvc, domain.PermAttendanceMark), attendanceHandler.Mark)
			authed.POST("/nurse-visits", middleware.RequirePermission(accessSvc, domain.PermHealthRecord), healthHandler.RecordVisit)
			authed.POST("/discipline", middleware.RequirePermission(accessSvc, domain.PermDisciplineRecord), disciplineHandler.Record)
			authed.POST("/feedback", gradebookHandler.SubmitFeedback)
			authed.GET("/notifications/:userId", notificationHandler.List)
			authed.POST("/notifications/teacher-message", notificationHandler.TeacherMessage)
			authed.POST("/notifications/:id/read", notificationHandler.MarkRead)
		}
	}

	r.GET("/ws/events", stream.ServeWS(&cfg.Stream, hub))

	return r
}
