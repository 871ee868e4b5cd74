package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTherapistRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapistController *controllers.TherapistController) {
	router.With(middlewares.Guard(loginRequired)).Get("/", therapistController.FindAll)
	router.With(middlewares.Guard(therapistOnly)).Post("/profile", therapistController.CreateProfile)
	router.With(middlewares.Guard(therapistOnly)).Get("/profile/status", therapistController.ProfileStatus)
	router.With(middlewares.Guard(loginRequired)).Get("/{id}", therapistController.FindByID)
}
