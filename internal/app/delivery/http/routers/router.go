package routers

import (
	"fmt"
	"spectrumconnect-service/internal/app/config"
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"
	"spectrumconnect-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Auth        *controllers.AuthController
	Session     *controllers.SessionController
	Therapist   *controllers.TherapistController
	Appointment *controllers.AppointmentController
	Dashboard   *controllers.DashboardController
	Community   *controllers.CommunityController
	Resource    *controllers.ResourceController
	Account     *controllers.AccountController
}

var (
	publicPage    = middlewares.GuardOptions{}
	loginRequired = middlewares.GuardOptions{RedirectToLogin: true}
	userOnly      = middlewares.GuardOptions{RequiredRole: constvars.RoleUser, RedirectToLogin: true}
	therapistOnly = middlewares.GuardOptions{RequiredRole: constvars.RoleTherapist, RedirectToLogin: true}
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	lifecycleLog *logrus.Logger,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID", "X-Session-Token"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-ID", "X-Session-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RequestLogger(internalConfig.App, lifecycleLog))
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.Session)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, controllers.Auth)
			})

			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, controllers.Session)
			})

			r.Route("/therapists", func(r chi.Router) {
				attachTherapistRoutes(r, middlewares, controllers.Therapist)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, controllers.Appointment)
			})

			attachDashboardRoutes(r, middlewares, controllers.Dashboard)

			r.Route("/community", func(r chi.Router) {
				attachCommunityRoutes(r, middlewares, controllers.Community)
			})

			r.Route("/resources", func(r chi.Router) {
				attachResourceRoutes(r, middlewares, controllers.Resource)
			})

			r.Route("/account", func(r chi.Router) {
				attachAccountRoutes(r, middlewares, controllers.Account)
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
