package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *controllers.DashboardController) {
	router.With(middlewares.Guard(userOnly)).Get("/user-dashboard", dashboardController.UserDashboard)
	router.With(middlewares.Guard(therapistOnly)).Get("/therapist-dashboard", dashboardController.TherapistDashboard)
}
