package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/contracts"
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/app/delivery/http/routers"
	"spectrumconnect-service/internal/app/drivers/database"
	"spectrumconnect-service/internal/app/drivers/logger"
	"spectrumconnect-service/internal/app/drivers/messaging"
	"spectrumconnect-service/internal/app/drivers/storage"
	api_appointments "spectrumconnect-service/internal/app/services/backend_api/appointments"
	api_community "spectrumconnect-service/internal/app/services/backend_api/community"
	api_therapists "spectrumconnect-service/internal/app/services/backend_api/therapists"
	api_users "spectrumconnect-service/internal/app/services/backend_api/users"
	"spectrumconnect-service/internal/app/services/core/appointments"
	"spectrumconnect-service/internal/app/services/core/community"
	"spectrumconnect-service/internal/app/services/core/dashboards"
	"spectrumconnect-service/internal/app/services/core/resources"
	"spectrumconnect-service/internal/app/services/core/therapists"
	"spectrumconnect-service/internal/app/services/core/users"
	"spectrumconnect-service/internal/app/services/shared/backend"
	"spectrumconnect-service/internal/app/services/shared/events"
	sessionRedis "spectrumconnect-service/internal/app/services/shared/redis"
	sharedStorage "spectrumconnect-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	log.Printf("Starting spectrumconnect gateway version %s (%s)", Version, Tag)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		Lifecycle:      log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Session storage
	sessionTTL := time.Duration(internalConfig.App.SessionExpiredTimeInHours) * time.Hour
	sessionStorageFactory := sessionRedis.NewSessionStorageFactory(bootstrap.Redis, sessionTTL)

	// Backend API
	backendClient := backend.NewBackendClient(internalConfig, log)
	userBackendClient := api_users.NewUserBackendClient(backendClient, log)
	therapistBackendClient := api_therapists.NewTherapistBackendClient(backendClient, log)
	appointmentBackendClient := api_appointments.NewAppointmentBackendClient(backendClient, log)
	communityBackendClient := api_community.NewCommunityBackendClient(backendClient, log)

	// Appointment events
	var eventPublisher contracts.AppointmentEventPublisher = events.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AppointmentExchange)
		if err != nil {
			bootstrap.Lifecycle.Fatalf("Error declaring appointment exchange: %v", err)
		}
		eventPublisher = publisher
	}

	// Resource downloads
	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Usecases
	userUsecase := users.NewUserUsecase(userBackendClient, internalConfig.App.ProfileImageMaxUploadSizeMB, log)
	therapistUsecase := therapists.NewTherapistUsecase(therapistBackendClient, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentBackendClient, eventPublisher, location, log)
	dashboardUsecase := dashboards.NewDashboardUsecase(appointmentUsecase, therapistUsecase, location, log)
	communityUsecase := community.NewCommunityUsecase(communityBackendClient, log)
	resourceUsecase := resources.NewResourceUsecase(
		objectStorage,
		internalConfig.Minio.BucketName,
		time.Duration(internalConfig.Minio.PreSignedUrlObjectExpiryInHours)*time.Hour,
		log,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig, sessionStorageFactory, userBackendClient)

	// Controllers
	routeControllers := &routers.Controllers{
		Auth:        controllers.NewAuthController(log),
		Session:     controllers.NewSessionController(log),
		Therapist:   controllers.NewTherapistController(log, therapistUsecase),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase, therapistUsecase, location),
		Dashboard:   controllers.NewDashboardController(log, dashboardUsecase),
		Community:   controllers.NewCommunityController(log, communityUsecase),
		Resource:    controllers.NewResourceController(log, resourceUsecase),
		Account:     controllers.NewAccountController(log, userUsecase, internalConfig.App.ProfileImageMaxUploadSizeMB),
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, bootstrap.Lifecycle, middlewares, routeControllers)
}
