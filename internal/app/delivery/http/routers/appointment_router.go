package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Guard(loginRequired)).Get("/", appointmentController.FindAll)
	router.With(middlewares.Guard(loginRequired)).Post("/", appointmentController.Book)
	router.With(middlewares.Guard(therapistOnly)).Put("/{id}/confirm", appointmentController.Confirm)
}
