package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"smart-healthcare-backend/internal/config"
	"smart-healthcare-backend/internal/database"
	"smart-healthcare-backend/internal/handler"
	"smart-healthcare-backend/internal/middleware"
	"smart-healthcare-backend/internal/ocr"
	"smart-healthcare-backend/internal/repository"
	"smart-healthcare-backend/internal/service"
	"smart-healthcare-backend/internal/storage"
	"smart-healthcare-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize external collaborators
	blobStore, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}
	extractor := ocr.NewTesseractExtractor(cfg)

	// 5. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	recordRepo := repository.NewMedicalRecordRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 6. Initialize services
	authService := service.NewAuthService(userRepo, doctorRepo, hospitalRepo, auditRepo)
	hospitalService := service.NewHospitalService(hospitalRepo, doctorRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo, auditRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, doctorRepo, userRepo, auditRepo)
	recordService := service.NewMedicalRecordService(recordRepo, userRepo, blobStore, extractor, auditRepo)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	recordHandler := handler.NewMedicalRecordHandler(recordService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "smart-healthcare-backend",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Hospital routes (authenticated; mutations are admin-only)
	hospitals := api.Group("/hospitals")
	hospitals.Use(middleware.AuthMiddleware())
	{
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/find-nearest", hospitalHandler.FindNearestHospitals)
		hospitals.GET("/:id", hospitalHandler.GetHospital)
		hospitals.POST("", middleware.RequireAdmin(), hospitalHandler.CreateHospital)
		hospitals.POST("/bulk", middleware.RequireAdmin(), hospitalHandler.CreateHospitals)
		hospitals.PUT("/:id", middleware.RequireAdmin(), hospitalHandler.UpdateHospital)
		hospitals.DELETE("/:id", middleware.RequireAdmin(), hospitalHandler.DeleteHospital)
	}

	// Doctor routes (authenticated; mutations are admin-only)
	doctors := api.Group("/doctors")
	doctors.Use(middleware.AuthMiddleware())
	{
		doctors.GET("", doctorHandler.GetAllDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.GET("/hospital/:hospitalId", doctorHandler.GetDoctorsByHospital)
		doctors.POST("", middleware.RequireAdmin(), doctorHandler.CreateDoctor)
		doctors.PUT("/:id", middleware.RequireAdmin(), doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", middleware.RequireAdmin(), doctorHandler.DeleteDoctor)
	}

	// Appointment routes (authenticated)
	appointments := api.Group("/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.POST("", appointmentHandler.BookAppointment)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.GET("/patient/:patientId", appointmentHandler.GetAppointmentsByPatient)
		appointments.GET("/doctor/:doctorId", appointmentHandler.GetAppointmentsByDoctor)
		appointments.PUT("/:id/cancel", appointmentHandler.CancelAppointment)
	}

	// Medical record routes (authenticated)
	records := api.Group("/medical-records")
	records.Use(middleware.AuthMiddleware())
	{
		records.POST("/upload", recordHandler.UploadMedicalRecord)
		records.GET("/:id", recordHandler.GetMedicalRecord)
		records.GET("/patient/:patientId", recordHandler.GetMedicalRecordsByPatient)
	}

	// 11. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
